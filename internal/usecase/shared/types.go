package shared

import (
	"catalog-service/internal/domain/product"
)

// ProductSnapshot is what the product lookup knows about a product when an offer is created.
type ProductSnapshot struct {
	ProductID         string
	ProductNumber     string
	Links             []product.Link
	FabricComposition []product.FabricCompositionItem
}
