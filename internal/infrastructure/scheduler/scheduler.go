// Package scheduler ejecuta el escaneo periódico de alertas con robfig/cron.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/hotel-inventory/internal/application/dto"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scanner escanea un sitio y notifica (inventory.AlertScanUseCase.Run).
type Scanner interface {
	Run(ctx context.Context, siteID string, now time.Time) (*dto.AlertScanResponse, error)
}

// Scheduler dispara el escaneo de cada sitio configurado según una expresión cron.
// Un ciclo que aún corre cuando llega el siguiente se omite.
type Scheduler struct {
	cron    *cron.Cron
	scanner Scanner
	sites   []string
	clock   func() time.Time
	log     zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

// New registra el trabajo; spec es una expresión cron estándar o un descriptor ("@every 5m").
func New(spec string, scanner Scanner, sites []string, clock func() time.Time, log zerolog.Logger) (*Scheduler, error) {
	if clock == nil {
		clock = time.Now
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		scanner: scanner,
		sites:   sites,
		clock:   clock,
		log:     log,
		ctx:     ctx,
		cancel:  cancel,
	}
	cl := cronLogger{log: log}
	s.cron = cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)))
	if _, err := s.cron.AddFunc(spec, func() { s.RunOnce(s.ctx) }); err != nil {
		cancel()
		return nil, fmt.Errorf("programar escaneo %q: %w", spec, err)
	}
	return s, nil
}

// Start arranca el planificador en su propia goroutine.
func (s *Scheduler) Start() {
	s.log.Info().Strs("sites", s.sites).Msg("planificador de alertas iniciado")
	s.cron.Start()
}

// Stop cancela el escaneo en curso (se interrumpe entre páginas) y espera a que termine o a ctx.
func (s *Scheduler) Stop(ctx context.Context) {
	s.cancel()
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.log.Warn().Msg("planificador detenido sin esperar el escaneo en curso")
	}
}

// RunOnce escanea todos los sitios una vez. Un sitio fallido no impide escanear los demás.
func (s *Scheduler) RunOnce(ctx context.Context) {
	now := s.clock()
	for _, site := range s.sites {
		if ctx.Err() != nil {
			return
		}
		if _, err := s.scanner.Run(ctx, site, now); err != nil {
			s.log.Error().Err(err).Str("site_id", site).Msg("escaneo periódico")
		}
	}
}

// cronLogger adapta zerolog a cron.Logger.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
