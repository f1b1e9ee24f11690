package main

import (
	"time"

	"github.com/jhoicas/hotel-inventory/internal/application/inventory"
	"github.com/jhoicas/hotel-inventory/internal/infrastructure/notify"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

func newScanCmd(e *env) *cobra.Command {
	var (
		siteID  string
		publish bool
	)
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Escanear las alertas de un sitio e imprimirlas en JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			backend, err := e.open(ctx)
			if err != nil {
				return err
			}
			defer backend.Close()

			notifiers := notify.Multi{notify.NewLogNotifier(e.log.Component("alerts"))}
			if publish && e.cfg.Redis.Enabled() {
				rdb := redis.NewClient(&redis.Options{Addr: e.cfg.Redis.Addr, Password: e.cfg.Redis.Password, DB: e.cfg.Redis.DB})
				defer rdb.Close()
				ttl := time.Duration(e.cfg.Redis.DedupTTLMinutes) * time.Minute
				notifiers = append(notifiers, notify.NewRedisNotifier(rdb, e.cfg.Redis.AlertChannel, ttl))
			}

			uc := inventory.NewAlertScanUseCase(backend.Tx, notifiers, nil, e.rules, e.cfg.Scan.PageSize, e.log.Component("alert-scan"))
			out, err := uc.Run(ctx, siteID, time.Now())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVarP(&siteID, "site", "s", "", "ID del sitio (hotel)")
	cmd.Flags().BoolVar(&publish, "publish", false, "Publicar también en Redis si REDIS_ADDR está definido")
	_ = cmd.MarkFlagRequired("site")
	return cmd
}
