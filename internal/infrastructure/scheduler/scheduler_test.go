package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jhoicas/hotel-inventory/internal/application/dto"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScanner struct {
	mu    sync.Mutex
	sites []string
	fail  map[string]bool
}

func (f *fakeScanner) Run(_ context.Context, siteID string, now time.Time) (*dto.AlertScanResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sites = append(f.sites, siteID)
	if f.fail[siteID] {
		return nil, errors.New("fallo")
	}
	return &dto.AlertScanResponse{SiteID: siteID, ScannedAt: now}, nil
}

func TestRunOnce_ContinuaTrasFalloDeUnSitio(t *testing.T) {
	fs := &fakeScanner{fail: map[string]bool{"a": true}}
	s, err := New("@every 1h", fs, []string{"a", "b"}, nil, zerolog.Nop())
	require.NoError(t, err)

	s.RunOnce(context.Background())
	assert.Equal(t, []string{"a", "b"}, fs.sites)
}

func TestRunOnce_SeDetieneAlCancelar(t *testing.T) {
	fs := &fakeScanner{}
	s, err := New("@every 1h", fs, []string{"a", "b"}, nil, zerolog.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.RunOnce(ctx)
	assert.Empty(t, fs.sites)
}

func TestNew_ExpresionInvalida(t *testing.T) {
	_, err := New("cada cinco minutos", &fakeScanner{}, nil, nil, zerolog.Nop())
	assert.Error(t, err)
}

func TestStartStop(t *testing.T) {
	s, err := New("@every 1h", &fakeScanner{}, []string{"a"}, nil, zerolog.Nop())
	require.NoError(t, err)
	s.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
	assert.Error(t, s.ctx.Err())
}
