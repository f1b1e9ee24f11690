package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/hotel-inventory/pkg/jwt"
	"github.com/spf13/cobra"
)

// newTokenCmd emite un JWT firmado con JWT_SECRET. Solo para desarrollo: en producción
// los tokens los emite el servicio de identidad.
func newTokenCmd(e *env) *cobra.Command {
	var siteID, userID, role string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Generar un token de desarrollo para la API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if userID == "" {
				userID = uuid.New().String()
			}
			tok, err := jwt.Generate(e.cfg.JWT.Secret, userID, siteID, role, e.cfg.JWT.Issuer, e.cfg.JWT.Expiration)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
			return err
		},
	}
	cmd.Flags().StringVarP(&siteID, "site", "s", "", "ID del sitio (hotel)")
	cmd.Flags().StringVar(&userID, "user", "", "ID del usuario (por defecto uno aleatorio)")
	cmd.Flags().StringVar(&role, "role", "admin", "Rol: admin, almacen, cocina, housekeeping")
	_ = cmd.MarkFlagRequired("site")
	return cmd
}
