package offer

import (
	"time"

	"catalog-service/internal/domain/aggregate"

	"github.com/google/uuid"
)

type EventType string

const (
	EventCreated                  EventType = "OFFER_CREATED"
	EventPublished                EventType = "OFFER_PUBLISHED"
	EventUnpublished              EventType = "OFFER_UNPUBLISHED"
	EventReserved                 EventType = "OFFER_RESERVED"
	EventUnreserved               EventType = "OFFER_UNRESERVED"
	EventArchived                 EventType = "OFFER_ARCHIVED"
	EventDeleted                  EventType = "OFFER_DELETED"
	EventTitleUpdated             EventType = "TITLE_UPDATED"
	EventSizeUpdated              EventType = "SIZE_UPDATED"
	EventCategoriesUpdated        EventType = "CATEGORIES_UPDATED"
	EventImagesUpdated            EventType = "IMAGES_UPDATED"
	EventNotesUpdated             EventType = "NOTES_UPDATED"
	EventPriceUpdated             EventType = "PRICE_UPDATED"
	EventDiscountAdded            EventType = "DISCOUNT_ADDED"
	EventDiscountRemoved          EventType = "DISCOUNT_REMOVED"
	EventProductLinkAdded         EventType = "PRODUCT_LINK_ADDED"
	EventProductLinkRemoved       EventType = "PRODUCT_LINK_REMOVED"
	EventProductLinkRenamed       EventType = "PRODUCT_LINK_RENAMED"
	EventFabricCompositionUpdated EventType = "FABRIC_COMPOSITION_UPDATED"
	EventProductNumberUpdated     EventType = "PRODUCT_NUMBER_UPDATED"
)

// Event describes one accepted mutation. Version is the version the offer reached.
// ID and Agent are filled in by the caller when the event is recorded.
type Event struct {
	ID         uuid.UUID
	Type       EventType
	OfferID    uuid.UUID
	Version    aggregate.Version
	OccurredAt time.Time
	Agent      aggregate.Agent
	Payload    any
}

func (e Event) WithMetadata(id uuid.UUID, agent aggregate.Agent) Event {
	e.ID = id
	e.Agent = agent
	return e
}

type MoneyPayload struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type LinkPayload struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type CreatedPayload struct {
	Title      string       `json:"title"`
	Alias      string       `json:"alias"`
	Size       string       `json:"size"`
	Categories []string     `json:"categories"`
	ProductID  string       `json:"productId"`
	Images     []string     `json:"images"`
	Price      MoneyPayload `json:"price"`
}

type TitleUpdatedPayload struct {
	Title string `json:"title"`
	Alias string `json:"alias"`
}

type SizeUpdatedPayload struct {
	Size string `json:"size"`
}

type CategoriesUpdatedPayload struct {
	Categories []string `json:"categories"`
}

type ImagesUpdatedPayload struct {
	Images []string `json:"images"`
}

type NotesUpdatedPayload struct {
	Description string `json:"description"`
	Contains    string `json:"contains,omitempty"`
	Care        string `json:"care,omitempty"`
	Safety      string `json:"safety,omitempty"`
}

type PriceUpdatedPayload struct {
	Price    MoneyPayload `json:"price"`
	Previous MoneyPayload `json:"previous"`
}

type DiscountAddedPayload struct {
	DiscountedPrice MoneyPayload `json:"discountedPrice"`
}

type ArchivedPayload struct {
	ArchivedAt time.Time `json:"archivedAt"`
}

type FabricCompositionPayload struct {
	Items []FabricItemPayload `json:"items"`
}

type FabricItemPayload struct {
	FabricType string `json:"fabricType"`
	Percentage int    `json:"percentage"`
}

type ProductNumberPayload struct {
	ProductNumber string `json:"productNumber"`
}
