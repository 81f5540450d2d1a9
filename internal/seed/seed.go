// Package seed loads catalogue data from YAML documents on disk or in S3.
package seed

import (
	"bufio"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"showcase/internal/model"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// ErrDuplicateProductID is returned by LoadAll when two products, in the
// same document or in different ones, share a non-empty ID.
var ErrDuplicateProductID = errors.New("duplicate product id")

// Loader defines the interface for loading catalogue documents.
type Loader interface {
	// Load reads a catalogue document. Names ending in ".gz" are gunzipped.
	Load(ctx context.Context, name string) (*model.Catalogue, error)
}

// decode parses a YAML catalogue from r, gunzipping first when compressed
// is set.
func decode(r io.Reader, compressed bool) (*model.Catalogue, error) {
	if compressed {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	var c model.Catalogue
	dec := yaml.NewDecoder(bufio.NewReader(r))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if err == io.EOF {
			return &c, nil
		}
		return nil, fmt.Errorf("failed to decode catalogue: %w", err)
	}

	return &c, nil
}

func isCompressed(name string) bool {
	return strings.HasSuffix(name, ".gz")
}

// LoadAll loads every named document concurrently and merges them in
// argument order. Product IDs must be unique across all documents; products
// without an ID are exempt.
func LoadAll(ctx context.Context, loader Loader, names ...string) (*model.Catalogue, error) {
	results := make([]*model.Catalogue, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			c, err := loader.Load(gctx, name)
			if err != nil {
				return err
			}
			results[i] = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &model.Catalogue{
		Products: []model.Product{},
		Items:    []model.RatedItem{},
	}
	seen := make(map[string]string)
	for i, c := range results {
		for _, p := range c.Products {
			if p.ID == "" {
				continue
			}
			if first, ok := seen[p.ID]; ok {
				return nil, fmt.Errorf("%w %q in %s and %s", ErrDuplicateProductID, p.ID, first, names[i])
			}
			seen[p.ID] = names[i]
		}

		merged.Products = append(merged.Products, c.Products...)
		merged.Items = append(merged.Items, c.Items...)
	}

	return merged, nil
}
