// Command stockctl ejecuta operaciones de inventario desde la terminal: escaneo de alertas,
// lista de reposición y emisión de tokens de desarrollo.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
