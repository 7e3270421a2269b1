package converter

import (
	"encoding/json"
	"time"

	"catalog-service/internal/domain/aggregate"
	"catalog-service/internal/domain/money"
	"catalog-service/internal/domain/offer"
	"catalog-service/internal/domain/product"
	"catalog-service/internal/pkg/errs"
	"catalog-service/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

var ErrCorruptOfferRow = errs.New("stored offer row cannot be reconstructed")

// OfferRow mirrors the offers table.
type OfferRow struct {
	ID                 uuid.UUID
	Version            int64
	Title              string
	Size               string
	Categories         []string
	ProductID          string
	ProductNumber      string
	ProductLinks       []byte
	FabricComposition  []byte
	Images             []string
	PriceAmount        int64
	PriceCurrency      string
	DiscountedAmount   pgtype.Int8
	DiscountedCurrency pgtype.Text
	PriceHistory       []byte
	NotesDescription   string
	NotesContains      string
	NotesCare          string
	NotesSafety        string
	Published          bool
	Reserved           bool
	ArchivedAt         pgtype.Timestamptz
	CreatedAt          time.Time
}

type linkJSON struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

type fabricJSON struct {
	FabricType string `json:"fabric_type"`
	Percentage int    `json:"percentage"`
}

type historyJSON struct {
	Amount       int64     `json:"amount"`
	Currency     string    `json:"currency"`
	SupersededAt time.Time `json:"superseded_at"`
}

func OfferToRow(o *offer.Offer) (OfferRow, error) {
	p := o.Product()
	links := make([]linkJSON, 0)
	for _, l := range p.Links() {
		links = append(links, linkJSON{Type: string(l.Type), ID: l.ID, Name: l.Name})
	}
	fabric := make([]fabricJSON, 0)
	for _, it := range p.FabricComposition().Items() {
		fabric = append(fabric, fabricJSON{FabricType: string(it.FabricType), Percentage: it.Percentage})
	}
	history := make([]historyJSON, 0)
	for _, h := range o.Pricing().History() {
		history = append(history, historyJSON{
			Amount:       h.Price.Amount(),
			Currency:     h.Price.Currency().String(),
			SupersededAt: h.SupersededAt,
		})
	}

	linksJSON, err := json.Marshal(links)
	if err != nil {
		return OfferRow{}, errs.Wrap(err, "marshal product links")
	}
	fabricBytes, err := json.Marshal(fabric)
	if err != nil {
		return OfferRow{}, errs.Wrap(err, "marshal fabric composition")
	}
	historyBytes, err := json.Marshal(history)
	if err != nil {
		return OfferRow{}, errs.Wrap(err, "marshal price history")
	}

	row := OfferRow{
		ID:                o.ID(),
		Version:           o.Version().Int64(),
		Title:             o.Title().String(),
		Size:              o.Size().String(),
		Categories:        o.Categories().IDs(),
		ProductID:         p.ProductID(),
		ProductNumber:     p.ProductNumber().String(),
		ProductLinks:      linksJSON,
		FabricComposition: fabricBytes,
		Images:            o.Images().IDs(),
		PriceAmount:       o.Pricing().Price().Amount(),
		PriceCurrency:     o.Pricing().Price().Currency().String(),
		PriceHistory:      historyBytes,
		NotesDescription:  o.Notes().Description(),
		NotesContains:     o.Notes().Contains(),
		NotesCare:         o.Notes().Care(),
		NotesSafety:       o.Notes().Safety(),
		Published:         o.IsPublished(),
		Reserved:          o.IsReserved(),
		CreatedAt:         o.CreatedAt(),
	}
	if d, ok := o.Pricing().DiscountedPrice(); ok {
		amount, currency := d.Amount(), d.Currency().String()
		row.DiscountedAmount = pgconv.Int64PtrToPgtype(&amount)
		row.DiscountedCurrency = pgconv.StringPtrToPgtype(&currency)
	}
	if at, ok := o.ArchivedAt(); ok {
		row.ArchivedAt = pgconv.TimePtrToPgtype(&at)
	}
	return row, nil
}

func RowToOffer(row OfferRow) (*offer.Offer, error) {
	corrupt := func(err error) (*offer.Offer, error) {
		return nil, errs.Wrapf(errs.Mark(err, ErrCorruptOfferRow), "offer %s", row.ID)
	}

	title, err := offer.NewTitle(row.Title)
	if err != nil {
		return corrupt(err)
	}
	size, err := offer.NewSize(row.Size)
	if err != nil {
		return corrupt(err)
	}
	categories, err := offer.NewCategories(row.Categories)
	if err != nil {
		return corrupt(err)
	}
	images, err := offer.NewImages(row.Images)
	if err != nil {
		return corrupt(err)
	}
	notes, err := offer.NewNotes(row.NotesDescription, row.NotesContains, row.NotesCare, row.NotesSafety)
	if err != nil {
		return corrupt(err)
	}

	var links []linkJSON
	if err := json.Unmarshal(row.ProductLinks, &links); err != nil {
		return corrupt(err)
	}
	domLinks := make([]product.Link, 0, len(links))
	for _, l := range links {
		link, err := product.NewLink(l.Type, l.ID, l.Name)
		if err != nil {
			return corrupt(err)
		}
		domLinks = append(domLinks, link)
	}

	var fabric []fabricJSON
	if err := json.Unmarshal(row.FabricComposition, &fabric); err != nil {
		return corrupt(err)
	}
	items := make([]product.FabricCompositionItem, 0, len(fabric))
	for _, f := range fabric {
		item, err := product.NewFabricCompositionItem(f.FabricType, f.Percentage)
		if err != nil {
			return corrupt(err)
		}
		items = append(items, item)
	}
	composition, err := product.NewFabricComposition(items)
	if err != nil {
		return corrupt(err)
	}
	snapshot, err := offer.NewProductSnapshot(row.ProductID, product.ProductNumber(row.ProductNumber), domLinks, composition)
	if err != nil {
		return corrupt(err)
	}

	price, err := money.New(row.PriceAmount, row.PriceCurrency)
	if err != nil {
		return corrupt(err)
	}
	var discounted *money.Money
	amount, currency := pgconv.Int64PtrFromPgtype(row.DiscountedAmount), pgconv.StringPtrFromPgtype(row.DiscountedCurrency)
	if amount != nil && currency != nil {
		d, err := money.New(*amount, *currency)
		if err != nil {
			return corrupt(err)
		}
		discounted = &d
	}
	var history []historyJSON
	if err := json.Unmarshal(row.PriceHistory, &history); err != nil {
		return corrupt(err)
	}
	entries := make([]offer.PriceHistoryEntry, 0, len(history))
	for _, h := range history {
		m, err := money.New(h.Amount, h.Currency)
		if err != nil {
			return corrupt(err)
		}
		entries = append(entries, offer.PriceHistoryEntry{Price: m, SupersededAt: h.SupersededAt})
	}

	return offer.Reconstruct(offer.Snapshot{
		ID:         row.ID,
		Version:    aggregate.Version(row.Version),
		Title:      title,
		Size:       size,
		Categories: categories,
		Product:    snapshot,
		Images:     images,
		Pricing:    offer.ReconstructPricing(price, discounted, entries),
		Notes:      notes,
		Published:  row.Published,
		Reserved:   row.Reserved,
		ArchivedAt: pgconv.TimePtrFromPgtype(row.ArchivedAt),
		CreatedAt:  row.CreatedAt,
	}), nil
}

// EventRow mirrors the offer_events table.
type EventRow struct {
	EventID    uuid.UUID
	OfferID    uuid.UUID
	Version    int64
	EventType  string
	Payload    []byte
	AgentKind  string
	AgentID    *uuid.UUID
	AgentRole  string
	OccurredAt time.Time
}

func EventToRow(ev offer.Event) (EventRow, error) {
	var payload []byte
	if ev.Payload != nil {
		b, err := json.Marshal(ev.Payload)
		if err != nil {
			return EventRow{}, errs.Wrapf(err, "marshal %s payload", ev.Type)
		}
		payload = b
	}
	row := EventRow{
		EventID:    ev.ID,
		OfferID:    ev.OfferID,
		Version:    ev.Version.Int64(),
		EventType:  string(ev.Type),
		Payload:    payload,
		AgentKind:  string(ev.Agent.Kind()),
		AgentRole:  ev.Agent.Role(),
		OccurredAt: ev.OccurredAt,
	}
	if row.AgentKind == "" {
		row.AgentKind = string(aggregate.AgentAnonymous)
	}
	if id := ev.Agent.ID(); id != uuid.Nil {
		row.AgentID = &id
	}
	return row, nil
}
