// Package main provee petctl, la herramienta de operación sobre los
// archivos de datos: exportar e importar mascotas en texto plano y
// verificar el estado de los stores.
package main

import (
	"os"
)

var (
	// Version la fijan los build flags
	Version = "dev"
)

func main() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
