package request

import (
	"catalog-service/internal/domain/aggregate"
	"catalog-service/internal/usecase/commands"
)

type MoneyRequest struct {
	Amount   int64  `json:"amount" binding:"min=0"`
	Currency string `json:"currency" binding:"required,len=3"`
}

func (m MoneyRequest) ToInput() commands.MoneyInput {
	return commands.MoneyInput{Amount: m.Amount, Currency: m.Currency}
}

type NotesRequest struct {
	Description string `json:"description" binding:"required"`
	Contains    string `json:"contains"`
	Care        string `json:"care"`
	Safety      string `json:"safety"`
}

func (n NotesRequest) ToInput() commands.NotesInput {
	return commands.NotesInput{
		Description: n.Description,
		Contains:    n.Contains,
		Care:        n.Care,
		Safety:      n.Safety,
	}
}

type CreateOfferRequest struct {
	Title      string       `json:"title" binding:"required,max=200"`
	Size       string       `json:"size" binding:"required,max=32"`
	Categories []string     `json:"categories"`
	ProductID  string       `json:"product_id" binding:"required"`
	Images     []string     `json:"images" binding:"required,min=1,max=50"`
	Price      MoneyRequest `json:"price" binding:"required"`
	Notes      NotesRequest `json:"notes" binding:"required"`
}

func (r *CreateOfferRequest) ToUseCase() commands.CreateOfferRequest {
	return commands.CreateOfferRequest{
		Title:      r.Title,
		Size:       r.Size,
		Categories: r.Categories,
		ProductID:  r.ProductID,
		Images:     r.Images,
		Price:      r.Price.ToInput(),
		Notes:      r.Notes.ToInput(),
	}
}

// VersionRequest carries the version the client last read. Every mutation must send it.
type VersionRequest struct {
	ExpectedVersion *int64 `json:"expected_version" binding:"required,min=0"`
}

func (r VersionRequest) Expected() aggregate.Version {
	if r.ExpectedVersion == nil {
		return 0
	}
	return aggregate.Version(*r.ExpectedVersion)
}

type UpdateTitleRequest struct {
	VersionRequest
	Title string `json:"title" binding:"required"`
}

type UpdateSizeRequest struct {
	VersionRequest
	Size string `json:"size" binding:"required"`
}

type UpdateCategoriesRequest struct {
	VersionRequest
	Categories []string `json:"categories"`
}

type UpdateImagesRequest struct {
	VersionRequest
	Images []string `json:"images" binding:"required"`
}

type UpdateNotesRequest struct {
	VersionRequest
	Notes NotesRequest `json:"notes" binding:"required"`
}

type UpdatePriceRequest struct {
	VersionRequest
	Price MoneyRequest `json:"price" binding:"required"`
}

type AddDiscountRequest struct {
	VersionRequest
	DiscountedPrice MoneyRequest `json:"discounted_price" binding:"required"`
}
