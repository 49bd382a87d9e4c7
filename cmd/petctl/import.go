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

func getImportCmd() *cobra.Command {
	var in string
	var ownerName string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Carga mascotas desde un volcado de texto",
		Long: `Lee un volcado generado por "petctl export" y da de alta cada
mascota. El volcado no lleva dueños, así que todas quedan bajo un
único dueño de importación (--owner). Los ids del archivo se ignoran:
el store asigna los propios.

Examples:
  petctl import
  petctl import --in respaldo.txt --owner "Migración 2026"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			f, err := os.Open(in)
			if err != nil {
				return fmt.Errorf("open dump: %w", err)
			}
			defer f.Close()

			list, err := export.ReadPets(f)
			if err != nil {
				return fmt.Errorf("read dump: %w", err)
			}

			stores, err := sqlite.OpenStores(cfg.DataDir)
			if err != nil {
				return fmt.Errorf("open stores: %w", err)
			}
			defer stores.Close()

			// El dueño de importación no tiene contacto, y sin contacto
			// el upsert nunca colisiona: se resuelve una sola vez para
			// no crear un dueño por mascota.
			ownerID, err := stores.Pets.EnsureOwner(ctx, pets.Owner{Name: ownerName})
			if err != nil {
				return fmt.Errorf("ensure owner %q: %w", ownerName, err)
			}

			imported := 0
			for _, p := range list {
				// El path de imagen del volcado se conserva tal cual,
				// sin copiar archivos: apunta dentro del data dir.
				var materialize pets.ImageFunc
				if rel := p.ImagePath; rel != "" {
					materialize = func(int64) (string, error) { return rel, nil }
				}

				pet := pets.Pet{Name: p.Name, Breed: p.Breed, Birthdate: p.Birthdate}
				if _, err := stores.Pets.AddPetToOwner(ctx, pet, ownerID, materialize); err != nil {
					return fmt.Errorf("import pet %q: %w", p.Name, err)
				}
				imported++
			}

			fmt.Printf("Imported %d pets from %s\n", imported, in)
			return nil
		},
	}

	cmd.Flags().StringVar(&in, "in", "pets_export.txt", "archivo de entrada")
	cmd.Flags().StringVar(&ownerName, "owner", "Imported", "dueño bajo el que quedan las mascotas importadas")
	return cmd
}
