package inmemory

import (
	"encoding/json"
	"io"
	"os"

	"catalog-service/internal/domain/product"
	"catalog-service/internal/pkg/errs"
	"catalog-service/internal/usecase/shared"
)

type seedProduct struct {
	ProductID     string `json:"product_id"`
	ProductNumber string `json:"product_number"`
	Links         []struct {
		Type string `json:"type"`
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"links"`
	FabricComposition []struct {
		FabricType string `json:"fabric_type"`
		Percentage int    `json:"percentage"`
	} `json:"fabric_composition"`
}

// DecodeProducts reads a JSON array of products in the shape of the products table.
func DecodeProducts(r io.Reader) ([]shared.ProductSnapshot, error) {
	var raw []seedProduct
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errs.Wrap(err, "decode seed products")
	}

	snaps := make([]shared.ProductSnapshot, 0, len(raw))
	for i, p := range raw {
		if p.ProductID == "" {
			return nil, errs.Newf("seed product %d has no product_id", i)
		}
		number, err := product.NewProductNumber(p.ProductNumber)
		if err != nil {
			return nil, errs.Wrapf(err, "seed product %s", p.ProductID)
		}
		snap := shared.ProductSnapshot{ProductID: p.ProductID, ProductNumber: string(number)}
		for _, l := range p.Links {
			link, err := product.NewLink(l.Type, l.ID, l.Name)
			if err != nil {
				return nil, errs.Wrapf(err, "seed product %s", p.ProductID)
			}
			snap.Links = append(snap.Links, link)
		}
		for _, f := range p.FabricComposition {
			item, err := product.NewFabricCompositionItem(f.FabricType, f.Percentage)
			if err != nil {
				return nil, errs.Wrapf(err, "seed product %s", p.ProductID)
			}
			snap.FabricComposition = append(snap.FabricComposition, item)
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}

// SeedProductsFile loads the products of a seed file into the product lookup and returns
// how many were stored.
func (s *Store) SeedProductsFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errs.Wrapf(err, "open seed file %s", path)
	}
	defer f.Close()

	snaps, err := DecodeProducts(f)
	if err != nil {
		return 0, err
	}
	for _, p := range snaps {
		s.PutProduct(p)
	}
	return len(snaps), nil
}
