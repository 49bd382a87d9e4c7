package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pettrackr/internal/adapters/storage/sqlite"
	"pettrackr/internal/domain/pets"
	"pettrackr/internal/export"
)

func getExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Vuelca las mascotas a un archivo de texto",
		Long: `Vuelca todas las mascotas del store a un archivo de texto plano,
un bloque por mascota.

Examples:
  petctl export
  petctl export --out respaldo.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			stores, err := sqlite.OpenStores(cfg.DataDir)
			if err != nil {
				return fmt.Errorf("open stores: %w", err)
			}
			defer stores.Close()

			withOwners, err := stores.Pets.ListWithOwners(ctx)
			if err != nil {
				return fmt.Errorf("list pets: %w", err)
			}

			list := make([]pets.Pet, 0, len(withOwners))
			for _, pw := range withOwners {
				list = append(list, pw.Pet)
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer f.Close()

			if err := export.WritePets(f, list); err != nil {
				return fmt.Errorf("write export: %w", err)
			}

			fmt.Printf("Exported %d pets to %s\n", len(list), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "pets_export.txt", "archivo de salida")
	return cmd
}
