package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pettrackr/internal/config"
)

var (
	cfgFile string
	cfg     config.Config
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "petctl",
		Short: "petctl opera sobre los archivos de datos de pettrackr",
		Long: `petctl trabaja directo sobre el directorio de datos (los archivos
.db y el directorio de imágenes), sin pasar por el servidor HTTP.

Comandos:
  export   vuelca las mascotas a un archivo de texto
  import   carga mascotas desde un volcado
  check    verifica la conexión a cada store

La configuración sale del mismo archivo y las mismas variables
PETTRACKR_* que usa el servidor.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg = loaded
			if cfg.DataDir == "" {
				return fmt.Errorf("data_dir vacío: petctl necesita stores en disco")
			}
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "ruta al archivo de configuración")

	rootCmd.AddCommand(getExportCmd())
	rootCmd.AddCommand(getImportCmd())
	rootCmd.AddCommand(getCheckCmd())
	return rootCmd
}
