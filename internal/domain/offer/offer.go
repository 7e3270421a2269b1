// Package offer implements the offer lifecycle aggregate. Offers are immutable snapshots;
// Apply computes the next snapshot and the event describing the change.
package offer

import (
	"time"

	"catalog-service/internal/domain/aggregate"

	"github.com/google/uuid"
)

type State string

const (
	StateDraft     State = "DRAFT"
	StatePublished State = "PUBLISHED"
	StateReserved  State = "RESERVED"
	StateArchived  State = "ARCHIVED"
)

type Offer struct {
	id         uuid.UUID
	version    aggregate.Version
	title      Title
	size       Size
	categories Categories
	product    ProductSnapshot
	images     Images
	pricing    Pricing
	notes      Notes
	published  bool
	reserved   bool
	archivedAt *time.Time
	createdAt  time.Time
}

type Snapshot struct {
	ID         uuid.UUID
	Version    aggregate.Version
	Title      Title
	Size       Size
	Categories Categories
	Product    ProductSnapshot
	Images     Images
	Pricing    Pricing
	Notes      Notes
	Published  bool
	Reserved   bool
	ArchivedAt *time.Time
	CreatedAt  time.Time
}

// Reconstruct rebuilds an offer from persisted state without running any guards.
func Reconstruct(s Snapshot) *Offer {
	return &Offer{
		id:         s.ID,
		version:    s.Version,
		title:      s.Title,
		size:       s.Size,
		categories: s.Categories,
		product:    s.Product,
		images:     s.Images,
		pricing:    s.Pricing,
		notes:      s.Notes,
		published:  s.Published,
		reserved:   s.Reserved,
		archivedAt: s.ArchivedAt,
		createdAt:  s.CreatedAt,
	}
}

func (o *Offer) ID() uuid.UUID              { return o.id }
func (o *Offer) Version() aggregate.Version { return o.version }
func (o *Offer) Title() Title               { return o.title }
func (o *Offer) Alias() Alias               { return o.title.Alias() }
func (o *Offer) Size() Size                 { return o.size }
func (o *Offer) Categories() Categories     { return o.categories }
func (o *Offer) Product() ProductSnapshot   { return o.product }
func (o *Offer) Images() Images             { return o.images }
func (o *Offer) Pricing() Pricing           { return o.pricing }
func (o *Offer) Notes() Notes               { return o.notes }
func (o *Offer) IsPublished() bool          { return o.published }
func (o *Offer) IsReserved() bool           { return o.reserved }
func (o *Offer) CreatedAt() time.Time       { return o.createdAt }

func (o *Offer) ArchivedAt() (time.Time, bool) {
	if o.archivedAt == nil {
		return time.Time{}, false
	}
	return *o.archivedAt, true
}

func (o *Offer) IsArchived() bool { return o.archivedAt != nil }

func (o *Offer) State() State {
	switch {
	case o.archivedAt != nil:
		return StateArchived
	case o.reserved:
		return StateReserved
	case o.published:
		return StatePublished
	default:
		return StateDraft
	}
}

func (o *Offer) Snapshot() Snapshot {
	return Snapshot{
		ID:         o.id,
		Version:    o.version,
		Title:      o.title,
		Size:       o.size,
		Categories: o.categories,
		Product:    o.product,
		Images:     o.images,
		Pricing:    o.pricing,
		Notes:      o.notes,
		Published:  o.published,
		Reserved:   o.reserved,
		ArchivedAt: o.archivedAt,
		CreatedAt:  o.createdAt,
	}
}

// next copies o with the version bumped. Callers mutate the copy only.
func (o *Offer) next() *Offer {
	c := *o
	c.version = o.version.Next()
	return &c
}
