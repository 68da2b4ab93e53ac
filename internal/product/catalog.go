// Package product serves the fulfilment product reference data.
package product

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"contactcentre/internal/cases/models"
)

//go:embed products.yaml
var defaultProducts []byte

// Catalog is an immutable in-memory product list. Search results keep file order.
type Catalog struct {
	products []models.Product
}

type file struct {
	Products []models.Product `yaml:"products"`
}

// NewDefault loads the embedded product list.
func NewDefault() (*Catalog, error) {
	return Parse(defaultProducts)
}

// Load reads a product file from disk, replacing the embedded list.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read product file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates product YAML.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	seen := make(map[string]struct{}, len(f.Products))
	for i, p := range f.Products {
		if p.FulfilmentCode == "" {
			return nil, fmt.Errorf("product %d: fulfilmentCode is required", i)
		}
		key := p.FulfilmentCode + "/" + string(p.DeliveryChannel)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("product %s: duplicate entry for channel %s", p.FulfilmentCode, p.DeliveryChannel)
		}
		seen[key] = struct{}{}
		switch p.DeliveryChannel {
		case models.DeliveryChannelPost, models.DeliveryChannelSMS:
		default:
			return nil, fmt.Errorf("product %s: unknown delivery channel %q", p.FulfilmentCode, p.DeliveryChannel)
		}
	}
	return &Catalog{products: f.Products}, nil
}

// Search returns every product matching criteria, in catalog order.
func (c *Catalog) Search(_ context.Context, criteria models.ProductCriteria) ([]models.Product, error) {
	var out []models.Product
	for _, p := range c.products {
		if criteria.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Len reports how many products are loaded.
func (c *Catalog) Len() int { return len(c.products) }
