//go:build unit || e2e

package builder

import (
	"time"

	"catalog-service/internal/domain/money"
	"catalog-service/internal/domain/offer"
	"catalog-service/internal/domain/product"
	reqdto "catalog-service/internal/handler/dto/request"
	"catalog-service/internal/usecase/readmodel"
	"catalog-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type OfferBuilder struct {
	ID            uuid.UUID
	Title         string
	Size          string
	Categories    []string
	ProductID     string
	ProductNumber string
	Links         []product.Link
	Fabric        []product.FabricCompositionItem
	Images        []string
	PriceAmount   int64
	Currency      string
	Description   string
	Contains      string
	Care          string
	Safety        string
	CreatedAt     time.Time
}

func NewOfferBuilder() *OfferBuilder {
	return &OfferBuilder{
		ID:            uuid.New(),
		Title:         "Summer Dress Linen Blue",
		Size:          "M",
		Categories:    []string{"dresses", "summer"},
		ProductID:     "product-1",
		ProductNumber: "P-0001",
		Links: []product.Link{
			{Type: product.LinkTypePattern, ID: "pattern-1", Name: "Wrap Dress"},
			{Type: product.LinkTypeFabric, ID: "fabric-1", Name: "Blue Linen"},
		},
		Fabric: []product.FabricCompositionItem{
			{FabricType: product.FabricLinen, Percentage: 10000},
		},
		Images:      []string{"img-1", "img-2"},
		PriceAmount: 2999,
		Currency:    "EUR",
		Description: "Handmade linen dress",
		Care:        "Wash at 30 degrees",
		CreatedAt:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(b)
	return b
}

func (b *OfferBuilder) BuildCreateCommand() (offer.Create, error) {
	title, err := offer.NewTitle(b.Title)
	if err != nil {
		return offer.Create{}, err
	}
	size, err := offer.NewSize(b.Size)
	if err != nil {
		return offer.Create{}, err
	}
	categories, err := offer.NewCategories(b.Categories)
	if err != nil {
		return offer.Create{}, err
	}
	images, err := offer.NewImages(b.Images)
	if err != nil {
		return offer.Create{}, err
	}
	price, err := money.New(b.PriceAmount, b.Currency)
	if err != nil {
		return offer.Create{}, err
	}
	pricing, err := offer.NewPricing(price)
	if err != nil {
		return offer.Create{}, err
	}
	notes, err := offer.NewNotes(b.Description, b.Contains, b.Care, b.Safety)
	if err != nil {
		return offer.Create{}, err
	}
	snapshot, err := b.BuildProductSnapshot()
	if err != nil {
		return offer.Create{}, err
	}
	return offer.Create{
		ID:         b.ID,
		Title:      title,
		Size:       size,
		Categories: categories,
		Product:    snapshot,
		Images:     images,
		Pricing:    pricing,
		Notes:      notes,
	}, nil
}

func (b *OfferBuilder) BuildProductSnapshot() (offer.ProductSnapshot, error) {
	composition, err := product.NewFabricComposition(b.Fabric)
	if err != nil {
		return offer.ProductSnapshot{}, err
	}
	return offer.NewProductSnapshot(b.ProductID, product.ProductNumber(b.ProductNumber), b.Links, composition)
}

// BuildDomain returns a freshly created draft at version 0.
func (b *OfferBuilder) BuildDomain() (*offer.Offer, error) {
	cmd, err := b.BuildCreateCommand()
	if err != nil {
		return nil, err
	}
	o, _, err := offer.Apply(nil, cmd, b.CreatedAt)
	return o, err
}

// BuildProductRecord is the product row the offer snapshots on create.
func (b *OfferBuilder) BuildProductRecord() shared.ProductSnapshot {
	return shared.ProductSnapshot{
		ProductID:         b.ProductID,
		ProductNumber:     b.ProductNumber,
		Links:             append([]product.Link(nil), b.Links...),
		FabricComposition: append([]product.FabricCompositionItem(nil), b.Fabric...),
	}
}

func (b *OfferBuilder) BuildCreateRequestDTO() reqdto.CreateOfferRequest {
	return reqdto.CreateOfferRequest{
		Title:      b.Title,
		Size:       b.Size,
		Categories: append([]string(nil), b.Categories...),
		ProductID:  b.ProductID,
		Images:     append([]string(nil), b.Images...),
		Price:      reqdto.MoneyRequest{Amount: b.PriceAmount, Currency: b.Currency},
		Notes: reqdto.NotesRequest{
			Description: b.Description,
			Contains:    b.Contains,
			Care:        b.Care,
			Safety:      b.Safety,
		},
	}
}

func (b *OfferBuilder) BuildView() (*readmodel.OfferRM, error) {
	o, err := b.BuildDomain()
	if err != nil {
		return nil, err
	}
	rm := readmodel.ProjectOffer(o, b.CreatedAt)
	return &rm, nil
}
