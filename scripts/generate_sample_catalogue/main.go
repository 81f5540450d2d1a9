package main

import (
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"showcase/internal/model"

	"gopkg.in/yaml.v3"
)

// generateSampleCatalogue writes catalogue documents for CATALOG_FILE,
// S3 uploads and the seed command.
// catalogue.yaml.gz: the built-in sample data
// extras.yaml: two more products (a tie at 40) and rated items around the
// rating threshold of 4
func main() {
	dataDir := "data/catalogue"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	documents := map[string]model.Catalogue{
		"catalogue.yaml.gz": model.DefaultCatalogue(),
		"extras.yaml": {
			Products: []model.Product{
				{ID: "P004", Name: "Lamp", Price: 40, Category: "Home"},
				{ID: "P005", Name: "Chair", Price: 40, Category: "Home"},
			},
			Items: []model.RatedItem{
				{Title: "Book D", Rating: 4.0},
				{Title: "Book E", Rating: 3.99},
			},
		},
	}

	for filename, c := range documents {
		filePath := filepath.Join(dataDir, filename)

		if err := writeCatalogue(filePath, c); err != nil {
			log.Fatalf("Failed to create %s: %v", filename, err)
		}

		fmt.Printf("Created %s with %d products and %d rated items\n", filePath, len(c.Products), len(c.Items))
	}

	fmt.Println("\nSample catalogue files created successfully!")
	fmt.Printf("\nServe them with:\n  CATALOG_SOURCE=file CATALOG_FILE=%s,%s showcase serve\n",
		filepath.Join(dataDir, "catalogue.yaml.gz"), filepath.Join(dataDir, "extras.yaml"))
}

func writeCatalogue(filePath string, c model.Catalogue) (err error) {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	var w io.Writer = file
	if strings.HasSuffix(filePath, ".gz") {
		gzipWriter := gzip.NewWriter(file)
		defer func() {
			if closeErr := gzipWriter.Close(); err == nil {
				err = closeErr
			}
		}()
		w = gzipWriter
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to encode catalogue: %w", err)
	}

	return enc.Close()
}
