package readmodel

import (
	"time"

	"catalog-service/internal/domain/money"
	"catalog-service/internal/domain/offer"

	"github.com/google/uuid"
)

type MoneyRM struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type PriceHistoryRM struct {
	Price        MoneyRM   `json:"price"`
	SupersededAt time.Time `json:"superseded_at"`
}

type LinkRM struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

type FabricItemRM struct {
	FabricType string `json:"fabric_type"`
	Percentage int    `json:"percentage"`
}

type NotesRM struct {
	Description string `json:"description"`
	Contains    string `json:"contains,omitempty"`
	Care        string `json:"care,omitempty"`
	Safety      string `json:"safety,omitempty"`
}

// OfferRM is the lookup row for one offer. It is rebuilt from the full snapshot after every
// committed write.
type OfferRM struct {
	ID                uuid.UUID        `json:"id"`
	Version           int64            `json:"version"`
	Title             string           `json:"title"`
	Alias             string           `json:"alias"`
	Size              string           `json:"size"`
	Categories        []string         `json:"categories"`
	ProductID         string           `json:"product_id"`
	ProductNumber     string           `json:"product_number"`
	Links             []LinkRM         `json:"links"`
	FabricComposition []FabricItemRM   `json:"fabric_composition"`
	Images            []string         `json:"images"`
	Price             MoneyRM          `json:"price"`
	DiscountedPrice   *MoneyRM         `json:"discounted_price,omitempty"`
	EffectivePrice    MoneyRM          `json:"effective_price"`
	PriceHistory      []PriceHistoryRM `json:"price_history"`
	Notes             NotesRM          `json:"notes"`
	State             string           `json:"state"`
	Published         bool             `json:"published"`
	Reserved          bool             `json:"reserved"`
	ArchivedAt        *time.Time       `json:"archived_at,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

func ProjectOffer(o *offer.Offer, updatedAt time.Time) OfferRM {
	p := o.Product()
	pricing := o.Pricing()

	links := make([]LinkRM, 0)
	for _, l := range p.Links() {
		links = append(links, LinkRM{Type: string(l.Type), ID: l.ID, Name: l.Name})
	}
	fabric := make([]FabricItemRM, 0)
	for _, it := range p.FabricComposition().Items() {
		fabric = append(fabric, FabricItemRM{FabricType: string(it.FabricType), Percentage: it.Percentage})
	}
	history := make([]PriceHistoryRM, 0)
	for _, h := range pricing.History() {
		history = append(history, PriceHistoryRM{Price: toMoneyRM(h.Price), SupersededAt: h.SupersededAt})
	}

	rm := OfferRM{
		ID:                o.ID(),
		Version:           o.Version().Int64(),
		Title:             o.Title().String(),
		Alias:             o.Alias().String(),
		Size:              o.Size().String(),
		Categories:        o.Categories().IDs(),
		ProductID:         p.ProductID(),
		ProductNumber:     p.ProductNumber().String(),
		Links:             links,
		FabricComposition: fabric,
		Images:            o.Images().IDs(),
		Price:             toMoneyRM(pricing.Price()),
		EffectivePrice:    toMoneyRM(pricing.Effective()),
		PriceHistory:      history,
		Notes: NotesRM{
			Description: o.Notes().Description(),
			Contains:    o.Notes().Contains(),
			Care:        o.Notes().Care(),
			Safety:      o.Notes().Safety(),
		},
		State:     string(o.State()),
		Published: o.IsPublished(),
		Reserved:  o.IsReserved(),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: updatedAt,
	}
	if d, ok := pricing.DiscountedPrice(); ok {
		dm := toMoneyRM(d)
		rm.DiscountedPrice = &dm
	}
	if at, ok := o.ArchivedAt(); ok {
		rm.ArchivedAt = &at
	}
	return rm
}

func toMoneyRM(m money.Money) MoneyRM {
	return MoneyRM{Amount: m.Amount(), Currency: m.Currency().String()}
}
