package main

import (
	"compress/gzip"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"labs/internal/model"

	"gopkg.in/yaml.v3"
)

// generateSampleCatalog writes sample catalogue seeds for CATALOG_SEED_FILE.
// catalog.yaml is plain YAML, catalog.yaml.gz is the same list gzipped
// (the form uploaded under S3_PREFIX).
func main() {
	dataDir := "data/catalog"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	products := []model.Product{
		{ID: 1, Nombre: "Laptop", Precio: 1200},
		{ID: 2, Nombre: "Mouse", Precio: 25},
		{ID: 3, Nombre: "Teclado", Precio: 45},
		{ID: 4, Nombre: "Monitor", Precio: 299},
		{ID: 5, Nombre: "Auriculares", Precio: 59.9},
		{ID: 8, Nombre: "Webcam", Precio: 74.5},
	}

	for _, filename := range []string{"catalog.yaml", "catalog.yaml.gz"} {
		filePath := filepath.Join(dataDir, filename)

		if err := createSeedFile(filePath, products); err != nil {
			log.Fatalf("Failed to create %s: %v", filename, err)
		}

		fmt.Printf("Created %s with %d products\n", filePath, len(products))
	}

	fmt.Println("\nSample catalogue seeds created successfully!")
	fmt.Println("\nUse one with:")
	fmt.Printf("  CATALOG_SEED_FILE=%s go run ./cmd/api\n", filepath.Join(dataDir, "catalog.yaml"))
	fmt.Println("\nThe next product created gets ID 9 (highest seeded ID plus one).")
}

func createSeedFile(filePath string, products []model.Product) (err error) {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	data, err := yaml.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to encode products: %w", err)
	}

	if filepath.Ext(filePath) != ".gz" {
		_, err = file.Write(data)
		return err
	}

	gzipWriter := gzip.NewWriter(file)
	if _, err := gzipWriter.Write(data); err != nil {
		return fmt.Errorf("failed to write products: %w", err)
	}
	return gzipWriter.Close()
}
