package readstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"catalog-service/internal/domain/product"
	"catalog-service/internal/infra"
	"catalog-service/internal/infra/db"
	"catalog-service/internal/usecase/shared"
)

const findProductSQL = `SELECT id, product_number, links, fabric_composition FROM products WHERE id = $1`

// ProductReadStore reads the products table, which the product service owns.
type ProductReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewProductReadStore(dbtx db.DBTX, logger *slog.Logger) *ProductReadStore {
	return &ProductReadStore{db: dbtx, logger: logger}
}

type productLinkJSON struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

type productFabricJSON struct {
	FabricType string `json:"fabric_type"`
	Percentage int    `json:"percentage"`
}

func (r *ProductReadStore) FindByID(ctx context.Context, productID string) (*shared.ProductSnapshot, error) {
	var (
		snap       shared.ProductSnapshot
		linksRaw   []byte
		fabricsRaw []byte
	)
	err := r.db.QueryRow(ctx, findProductSQL, productID).Scan(&snap.ProductID, &snap.ProductNumber, &linksRaw, &fabricsRaw)
	if err != nil {
		kind := infra.ClassifyPgError(err)
		if kind == infra.KindNotFound {
			return nil, infra.WrapRepoErr(r.logger, kind, "product not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find product", err)
	}

	var links []productLinkJSON
	if err := json.Unmarshal(linksRaw, &links); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode product links", err)
	}
	for _, l := range links {
		link, err := product.NewLink(l.Type, l.ID, l.Name)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "invalid stored product link", err)
		}
		snap.Links = append(snap.Links, link)
	}

	var fabrics []productFabricJSON
	if err := json.Unmarshal(fabricsRaw, &fabrics); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to decode fabric composition", err)
	}
	for _, f := range fabrics {
		item, err := product.NewFabricCompositionItem(f.FabricType, f.Percentage)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "invalid stored fabric item", err)
		}
		snap.FabricComposition = append(snap.FabricComposition, item)
	}
	return &snap, nil
}
