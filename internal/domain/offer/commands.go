package offer

import (
	"catalog-service/internal/domain/aggregate"
	"catalog-service/internal/domain/money"
	"catalog-service/internal/domain/permission"
	"catalog-service/internal/domain/product"

	"github.com/google/uuid"
)

// Command is the closed set of inputs Apply accepts.
type Command interface {
	Action() permission.Action
	isCommand()
}

// Target addresses an existing offer at the version the caller last read.
type Target struct {
	OfferID         uuid.UUID
	ExpectedVersion aggregate.Version
}

func (Target) isCommand() {}

type Create struct {
	ID         uuid.UUID
	Title      Title
	Size       Size
	Categories Categories
	Product    ProductSnapshot
	Images     Images
	Pricing    Pricing
	Notes      Notes
}

func (Create) isCommand() {}

type Publish struct{ Target }

type Unpublish struct{ Target }

type Reserve struct{ Target }

type Unreserve struct{ Target }

type Archive struct{ Target }

type Delete struct{ Target }

type UpdateTitle struct {
	Target
	Title Title
}

type UpdateSize struct {
	Target
	Size Size
}

type UpdateCategories struct {
	Target
	Categories Categories
}

type UpdateImages struct {
	Target
	Images Images
}

type UpdateNotes struct {
	Target
	Notes Notes
}

type UpdatePrice struct {
	Target
	Price money.Money
}

type AddDiscount struct {
	Target
	DiscountedPrice money.Money
}

type RemoveDiscount struct{ Target }

// Product sync commands. They are issued by the synchronizer, never by end users.

type AddProductLink struct {
	Target
	Link product.Link
}

type RemoveProductLink struct {
	Target
	Key product.LinkKey
}

type RenameProductLink struct {
	Target
	Key  product.LinkKey
	Name string
}

type UpdateFabricComposition struct {
	Target
	Composition product.FabricComposition
}

type UpdateProductNumber struct {
	Target
	Number product.ProductNumber
}

func (Create) Action() permission.Action                  { return permission.ActionCreate }
func (Publish) Action() permission.Action                 { return permission.ActionPublish }
func (Unpublish) Action() permission.Action               { return permission.ActionUnpublish }
func (Reserve) Action() permission.Action                 { return permission.ActionReserve }
func (Unreserve) Action() permission.Action               { return permission.ActionUnreserve }
func (Archive) Action() permission.Action                 { return permission.ActionArchive }
func (Delete) Action() permission.Action                  { return permission.ActionDelete }
func (UpdateTitle) Action() permission.Action             { return permission.ActionUpdateTitle }
func (UpdateSize) Action() permission.Action              { return permission.ActionUpdateSize }
func (UpdateCategories) Action() permission.Action        { return permission.ActionUpdateCategories }
func (UpdateImages) Action() permission.Action            { return permission.ActionUpdateImages }
func (UpdateNotes) Action() permission.Action             { return permission.ActionUpdateNotes }
func (UpdatePrice) Action() permission.Action             { return permission.ActionUpdatePrice }
func (AddDiscount) Action() permission.Action             { return permission.ActionAddDiscount }
func (RemoveDiscount) Action() permission.Action          { return permission.ActionRemoveDiscount }
func (AddProductLink) Action() permission.Action          { return permission.ActionUpdateProduct }
func (RemoveProductLink) Action() permission.Action       { return permission.ActionUpdateProduct }
func (RenameProductLink) Action() permission.Action       { return permission.ActionUpdateProduct }
func (UpdateFabricComposition) Action() permission.Action { return permission.ActionUpdateProduct }
func (UpdateProductNumber) Action() permission.Action     { return permission.ActionUpdateProduct }

// TargetOf returns the addressed offer for every command except Create.
func TargetOf(cmd Command) (Target, bool) {
	if t, ok := cmd.(interface{ target() Target }); ok {
		return t.target(), true
	}
	return Target{}, false
}

func (t Target) target() Target { return t }
