package offer

import (
	"time"

	"catalog-service/internal/domain/aggregate"
	"catalog-service/internal/domain/money"
	"catalog-service/internal/domain/product"
	"catalog-service/internal/pkg/errs"

	"github.com/google/uuid"
)

// Apply decides a command against the current snapshot. It never mutates current.
//
// Create requires current to be nil. Every other command runs the version guard first, then
// the archived guard, then its own guard. A successful Delete returns a nil offer.
func Apply(current *Offer, cmd Command, now time.Time) (*Offer, Event, error) {
	if c, ok := cmd.(Create); ok {
		return applyCreate(current, c, now)
	}

	target, ok := TargetOf(cmd)
	if !ok {
		return nil, Event{}, errs.Newf("unsupported offer command %T", cmd)
	}
	if current == nil {
		return nil, Event{}, aggregate.NewNotFound(aggregate.TypeOffer, target.OfferID.String())
	}
	if err := aggregate.CheckVersion(aggregate.TypeOffer, current.id.String(), current.version, target.ExpectedVersion); err != nil {
		return nil, Event{}, err
	}
	if current.archivedAt != nil {
		return nil, Event{}, &AlreadyArchivedError{guardError{current.id}}
	}

	next := current.next()
	ev := Event{OfferID: current.id, Version: next.version, OccurredAt: now}
	guard := guardError{current.id}

	switch c := cmd.(type) {
	case Publish:
		if current.published {
			return nil, Event{}, &AlreadyPublishedError{guard}
		}
		next.published = true
		ev.Type = EventPublished

	case Unpublish:
		if current.reserved {
			return nil, Event{}, &CannotUnpublishReservedError{guard}
		}
		if !current.published {
			return nil, Event{}, &AlreadyUnpublishedError{guard}
		}
		next.published = false
		ev.Type = EventUnpublished

	case Reserve:
		if !current.published {
			return nil, Event{}, &NotPublishedError{guard}
		}
		if current.reserved {
			return nil, Event{}, &AlreadyReservedError{guard}
		}
		next.reserved = true
		ev.Type = EventReserved

	case Unreserve:
		if !current.reserved {
			return nil, Event{}, &NotReservedError{guard}
		}
		next.reserved = false
		ev.Type = EventUnreserved

	case Archive:
		if !current.reserved {
			return nil, Event{}, &NotReservedForArchiveError{guard}
		}
		at := now
		next.archivedAt = &at
		next.published = false
		next.reserved = false
		ev.Type = EventArchived
		ev.Payload = ArchivedPayload{ArchivedAt: at}

	case Delete:
		if current.published || current.reserved {
			return nil, Event{}, &CannotDeleteNonDraftError{guardError: guard, State: current.State()}
		}
		ev.Type = EventDeleted
		return nil, ev, nil

	case UpdateTitle:
		next.title = c.Title
		ev.Type = EventTitleUpdated
		ev.Payload = TitleUpdatedPayload{Title: c.Title.String(), Alias: c.Title.Alias().String()}

	case UpdateSize:
		next.size = c.Size
		ev.Type = EventSizeUpdated
		ev.Payload = SizeUpdatedPayload{Size: c.Size.String()}

	case UpdateCategories:
		next.categories = c.Categories
		ev.Type = EventCategoriesUpdated
		ev.Payload = CategoriesUpdatedPayload{Categories: c.Categories.IDs()}

	case UpdateImages:
		next.images = c.Images
		ev.Type = EventImagesUpdated
		ev.Payload = ImagesUpdatedPayload{Images: c.Images.IDs()}

	case UpdateNotes:
		next.notes = c.Notes
		ev.Type = EventNotesUpdated
		ev.Payload = NotesUpdatedPayload{
			Description: c.Notes.Description(),
			Contains:    c.Notes.Contains(),
			Care:        c.Notes.Care(),
			Safety:      c.Notes.Safety(),
		}

	case UpdatePrice:
		pricing, err := current.pricing.UpdatePrice(c.Price, now)
		if err != nil {
			return nil, Event{}, err
		}
		next.pricing = pricing
		ev.Type = EventPriceUpdated
		ev.Payload = PriceUpdatedPayload{Price: moneyPayload(c.Price), Previous: moneyPayload(current.pricing.Price())}

	case AddDiscount:
		pricing, err := current.pricing.AddDiscount(c.DiscountedPrice)
		if err != nil {
			return nil, Event{}, err
		}
		next.pricing = pricing
		ev.Type = EventDiscountAdded
		ev.Payload = DiscountAddedPayload{DiscountedPrice: moneyPayload(c.DiscountedPrice)}

	case RemoveDiscount:
		// Removing an absent discount still succeeds and takes a version.
		next.pricing = current.pricing.RemoveDiscount()
		ev.Type = EventDiscountRemoved

	case AddProductLink:
		links := current.product.links
		if links.Contains(c.Link.Key()) {
			return nil, Event{}, ErrNoChange
		}
		links = append(links.Clone(), c.Link)
		next.product = current.product.withLinks(links)
		ev.Type = EventProductLinkAdded
		ev.Payload = linkPayload(c.Link)

	case RemoveProductLink:
		idx := current.product.links.IndexOf(c.Key)
		if idx < 0 {
			return nil, Event{}, ErrNoChange
		}
		links := current.product.links.Clone()
		links = append(links[:idx], links[idx+1:]...)
		next.product = current.product.withLinks(links)
		ev.Type = EventProductLinkRemoved
		ev.Payload = LinkPayload{Type: string(c.Key.Type), ID: c.Key.ID}

	case RenameProductLink:
		idx := current.product.links.IndexOf(c.Key)
		if idx < 0 || current.product.links[idx].Name == c.Name {
			return nil, Event{}, ErrNoChange
		}
		links := current.product.links.Clone()
		links[idx].Name = c.Name
		next.product = current.product.withLinks(links)
		ev.Type = EventProductLinkRenamed
		ev.Payload = linkPayload(links[idx])

	case UpdateFabricComposition:
		if current.product.fabricComposition.Equal(c.Composition) {
			return nil, Event{}, ErrNoChange
		}
		next.product = current.product.withComposition(c.Composition)
		ev.Type = EventFabricCompositionUpdated
		ev.Payload = compositionPayload(c.Composition)

	case UpdateProductNumber:
		if current.product.productNumber == c.Number {
			return nil, Event{}, ErrNoChange
		}
		next.product = current.product.withNumber(c.Number)
		ev.Type = EventProductNumberUpdated
		ev.Payload = ProductNumberPayload{ProductNumber: c.Number.String()}

	default:
		return nil, Event{}, errs.Newf("unsupported offer command %T", cmd)
	}

	return next, ev, nil
}

func applyCreate(current *Offer, c Create, now time.Time) (*Offer, Event, error) {
	if current != nil {
		return nil, Event{}, ErrAlreadyExists
	}
	if c.Pricing.Price().Amount() <= 0 {
		return nil, Event{}, ErrNonPositivePrice
	}
	if c.Images.Len() == 0 {
		return nil, Event{}, ErrNoImages
	}
	if c.Title.String() == "" {
		return nil, Event{}, ErrEmptyTitle
	}
	if c.Product.ProductID() == "" {
		return nil, Event{}, ErrMissingProductID
	}
	id := c.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	o := &Offer{
		id:         id,
		title:      c.Title,
		size:       c.Size,
		categories: c.Categories,
		product:    c.Product,
		images:     c.Images,
		pricing:    c.Pricing,
		notes:      c.Notes,
		createdAt:  now,
	}
	ev := Event{
		Type:       EventCreated,
		OfferID:    id,
		Version:    o.version,
		OccurredAt: now,
		Payload: CreatedPayload{
			Title:      c.Title.String(),
			Alias:      c.Title.Alias().String(),
			Size:       c.Size.String(),
			Categories: c.Categories.IDs(),
			ProductID:  c.Product.ProductID(),
			Images:     c.Images.IDs(),
			Price:      moneyPayload(c.Pricing.Price()),
		},
	}
	return o, ev, nil
}

func moneyPayload(m money.Money) MoneyPayload {
	return MoneyPayload{Amount: m.Amount(), Currency: m.Currency().String()}
}

func linkPayload(l product.Link) LinkPayload {
	return LinkPayload{Type: string(l.Type), ID: l.ID, Name: l.Name}
}

func compositionPayload(c product.FabricComposition) FabricCompositionPayload {
	items := c.Items()
	out := make([]FabricItemPayload, 0, len(items))
	for _, it := range items {
		out = append(out, FabricItemPayload{FabricType: string(it.FabricType), Percentage: it.Percentage})
	}
	return FabricCompositionPayload{Items: out}
}
