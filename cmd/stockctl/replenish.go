package main

import (
	"time"

	"github.com/jhoicas/hotel-inventory/internal/application/inventory"
	"github.com/spf13/cobra"
)

func newReplenishCmd(e *env) *cobra.Command {
	var (
		siteID      string
		autoReorder bool
	)
	cmd := &cobra.Command{
		Use:   "replenish",
		Short: "Imprimir la lista de reposición de un sitio",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			backend, err := e.open(ctx)
			if err != nil {
				return err
			}
			defer backend.Close()

			uc := inventory.NewReplenishmentUseCase(backend.Tx, e.rules, e.cfg.Scan.PageSize)
			list, err := uc.GenerateReplenishmentList(ctx, siteID, time.Now(), autoReorder)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"total":          len(list),
				"replenishments": list,
			})
		},
	}
	cmd.Flags().StringVarP(&siteID, "site", "s", "", "ID del sitio (hotel)")
	cmd.Flags().BoolVar(&autoReorder, "auto-reorder", false, "Solo productos con reorden automático")
	_ = cmd.MarkFlagRequired("site")
	return cmd
}
