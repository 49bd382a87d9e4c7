package main

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"pettrackr/internal/adapters/storage/sqlite"
)

func getCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verifica la conexión a cada store",
		Long: `Abre todos los stores bajo el directorio de datos y hace ping a
cada uno. Sale con error si alguno falla.

Examples:
  petctl check`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			stores, err := sqlite.OpenStores(cfg.DataDir)
			if err != nil {
				return fmt.Errorf("open stores: %w", err)
			}
			defer stores.Close()

			results := stores.Ping(ctx)
			failed := 0
			files := make([]string, 0, len(results))
			for file := range results {
				files = append(files, file)
			}
			slices.Sort(files)
			for _, file := range files {
				if err := results[file]; err != nil {
					failed++
					fmt.Printf("%-22s FAIL: %v\n", file, err)
				} else {
					fmt.Printf("%-22s ok\n", file)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d store(s) failed", failed)
			}
			return nil
		},
	}
	return cmd
}
