package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"storefront.GO/config"
	catalogService "storefront.GO/service/catalog"
)

var importBatchSize int

var catalogImportCmd = &cobra.Command{
	Use:   "catalog:import <file.json>",
	Short: "Import products from a JSON file (array of product rows)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatalf("read %s: %v", args[0], err)
		}
		var rows []catalogService.ProductRow
		if err := json.Unmarshal(raw, &rows); err != nil {
			log.Fatalf("parse %s: %v", args[0], err)
		}

		db, err := config.NewDB()
		if err != nil {
			log.Fatalf("failed to connect to DB: %v", err)
		}
		res, err := catalogService.ImportProductsJSON(db, rows, importBatchSize)
		if err != nil {
			log.Fatalf("import: %v", err)
		}
		fmt.Printf("Imported %d products, skipped %d\n", res.Imported, res.Skipped)
		for _, w := range res.Warnings {
			fmt.Println("  warning:", w)
		}
	},
}

func init() {
	catalogImportCmd.Flags().IntVarP(&importBatchSize, "batch-size", "b", 200, "Insert batch size")
	rootCmd.AddCommand(catalogImportCmd)
}
