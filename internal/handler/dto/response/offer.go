package response

import (
	"catalog-service/internal/usecase/commands"
	"catalog-service/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CommandResponse struct {
	ID      string `json:"id"`
	Version int64  `json:"version"`
}

func FromCommandResult(r *commands.CommandResult) *CommandResponse {
	return &CommandResponse{ID: r.OfferID.String(), Version: r.Version.Int64()}
}

type MoneyResponse struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type PriceHistoryResponse struct {
	Price        MoneyResponse `json:"price"`
	SupersededAt int64         `json:"superseded_at"`
}

type LinkResponse struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

type FabricItemResponse struct {
	FabricType string `json:"fabric_type"`
	Percentage int    `json:"percentage"`
}

type NotesResponse struct {
	Description string `json:"description"`
	Contains    string `json:"contains,omitempty"`
	Care        string `json:"care,omitempty"`
	Safety      string `json:"safety,omitempty"`
}

type OfferResponse struct {
	ID                string                 `json:"id"`
	Version           int64                  `json:"version"`
	State             string                 `json:"state"`
	Title             string                 `json:"title"`
	Alias             string                 `json:"alias"`
	Size              string                 `json:"size"`
	Categories        []string               `json:"categories"`
	ProductID         string                 `json:"product_id"`
	ProductNumber     string                 `json:"product_number"`
	Links             []LinkResponse         `json:"links"`
	FabricComposition []FabricItemResponse   `json:"fabric_composition"`
	Images            []string               `json:"images"`
	Price             MoneyResponse          `json:"price"`
	DiscountedPrice   *MoneyResponse         `json:"discounted_price,omitempty"`
	EffectivePrice    MoneyResponse          `json:"effective_price"`
	PriceHistory      []PriceHistoryResponse `json:"price_history"`
	Notes             NotesResponse          `json:"notes"`
	ArchivedAt        *int64                 `json:"archived_at,omitempty"`
	CreatedAt         int64                  `json:"created_at"`
	UpdatedAt         int64                  `json:"updated_at"`
}

func money(m readmodel.MoneyRM) MoneyResponse {
	return MoneyResponse{Amount: m.Amount, Currency: m.Currency}
}

func FromOfferRM(rm *readmodel.OfferRM) *OfferResponse {
	res := &OfferResponse{
		ID:             rm.ID.String(),
		Version:        rm.Version,
		State:          rm.State,
		Title:          rm.Title,
		Alias:          rm.Alias,
		Size:           rm.Size,
		Categories:     append([]string{}, rm.Categories...),
		ProductID:      rm.ProductID,
		ProductNumber:  rm.ProductNumber,
		Images:         append([]string{}, rm.Images...),
		Price:          money(rm.Price),
		EffectivePrice: money(rm.EffectivePrice),
		Notes: NotesResponse{
			Description: rm.Notes.Description,
			Contains:    rm.Notes.Contains,
			Care:        rm.Notes.Care,
			Safety:      rm.Notes.Safety,
		},
		Links:             make([]LinkResponse, 0, len(rm.Links)),
		FabricComposition: make([]FabricItemResponse, 0, len(rm.FabricComposition)),
		PriceHistory:      make([]PriceHistoryResponse, 0, len(rm.PriceHistory)),
		CreatedAt:         rm.CreatedAt.Unix(),
		UpdatedAt:         rm.UpdatedAt.Unix(),
	}
	if rm.DiscountedPrice != nil {
		d := money(*rm.DiscountedPrice)
		res.DiscountedPrice = &d
	}
	if rm.ArchivedAt != nil {
		at := rm.ArchivedAt.Unix()
		res.ArchivedAt = &at
	}
	for _, l := range rm.Links {
		res.Links = append(res.Links, LinkResponse{Type: l.Type, ID: l.ID, Name: l.Name})
	}
	for _, f := range rm.FabricComposition {
		res.FabricComposition = append(res.FabricComposition, FabricItemResponse{FabricType: f.FabricType, Percentage: f.Percentage})
	}
	for _, h := range rm.PriceHistory {
		res.PriceHistory = append(res.PriceHistory, PriceHistoryResponse{Price: money(h.Price), SupersededAt: h.SupersededAt.Unix()})
	}
	return res
}

type OfferIDsResponse struct {
	ProductID string   `json:"product_id"`
	OfferIDs  []string `json:"offer_ids"`
}

func FromOfferIDs(productID string, ids []uuid.UUID) *OfferIDsResponse {
	res := &OfferIDsResponse{ProductID: productID, OfferIDs: make([]string, 0, len(ids))}
	for _, id := range ids {
		res.OfferIDs = append(res.OfferIDs, id.String())
	}
	return res
}
