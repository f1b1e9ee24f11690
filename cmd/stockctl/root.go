package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/jhoicas/hotel-inventory/internal/bootstrap"
	domaininv "github.com/jhoicas/hotel-inventory/internal/domain/inventory"
	"github.com/jhoicas/hotel-inventory/pkg/config"
	"github.com/jhoicas/hotel-inventory/pkg/logger"
	"github.com/spf13/cobra"
)

// env dependencias comunes de los subcomandos, cargadas en PersistentPreRunE.
type env struct {
	cfg     *config.Config
	log     *logger.Logger
	rules   domaininv.Rules
	verbose bool
}

func newRootCmd() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:          "stockctl",
		Short:        "Herramientas de línea de comandos del inventario hotelero",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			e.cfg = cfg
			if e.verbose {
				e.log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "stockctl", Out: cmd.ErrOrStderr()})
			} else {
				e.log = logger.Nop()
			}
			e.rules, err = bootstrap.Rules(cfg.Stock)
			return err
		},
	}
	root.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "Escribir logs en stderr")

	root.AddCommand(newScanCmd(e), newReplenishCmd(e), newTokenCmd(e))
	return root
}

// open conecta al almacén configurado; el llamador debe cerrar el backend.
func (e *env) open(ctx context.Context) (*bootstrap.Backend, error) {
	return bootstrap.Open(ctx, e.cfg, e.log)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
