package product

import (
	"strings"
)

type NotificationKind string

const (
	KindLinkAdded                NotificationKind = "LINK_ADDED"
	KindLinkRemoved              NotificationKind = "LINK_REMOVED"
	KindLinkRenamed              NotificationKind = "LINK_RENAMED"
	KindFabricCompositionChanged NotificationKind = "FABRIC_COMPOSITION_CHANGED"
	KindProductNumberChanged     NotificationKind = "PRODUCT_NUMBER_CHANGED"
)

// Notification is a product-scoped change that offers denormalize. Each variant carries the
// full new value of the field it touches, so redelivery and reordering across kinds converge.
type Notification interface {
	ProductID() string
	Kind() NotificationKind
	isNotification()
}

type notificationBase struct {
	productID string
}

func (n notificationBase) ProductID() string { return n.productID }
func (notificationBase) isNotification()     {}

type LinkAdded struct {
	notificationBase
	Link Link
}

type LinkRemoved struct {
	notificationBase
	Key LinkKey
}

type LinkRenamed struct {
	notificationBase
	Key  LinkKey
	Name string
}

type FabricCompositionChanged struct {
	notificationBase
	Composition FabricComposition
}

type ProductNumberChanged struct {
	notificationBase
	Number ProductNumber
}

func (LinkAdded) Kind() NotificationKind                { return KindLinkAdded }
func (LinkRemoved) Kind() NotificationKind              { return KindLinkRemoved }
func (LinkRenamed) Kind() NotificationKind              { return KindLinkRenamed }
func (FabricCompositionChanged) Kind() NotificationKind { return KindFabricCompositionChanged }
func (ProductNumberChanged) Kind() NotificationKind     { return KindProductNumberChanged }

func base(productID string) (notificationBase, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return notificationBase{}, ErrEmptyProductID
	}
	return notificationBase{productID: productID}, nil
}

func NewLinkAdded(productID string, link Link) (LinkAdded, error) {
	b, err := base(productID)
	if err != nil {
		return LinkAdded{}, err
	}
	return LinkAdded{notificationBase: b, Link: link}, nil
}

func NewLinkRemoved(productID string, key LinkKey) (LinkRemoved, error) {
	b, err := base(productID)
	if err != nil {
		return LinkRemoved{}, err
	}
	return LinkRemoved{notificationBase: b, Key: key}, nil
}

func NewLinkRenamed(productID string, key LinkKey, name string) (LinkRenamed, error) {
	b, err := base(productID)
	if err != nil {
		return LinkRenamed{}, err
	}
	return LinkRenamed{notificationBase: b, Key: key, Name: strings.TrimSpace(name)}, nil
}

func NewFabricCompositionChanged(productID string, c FabricComposition) (FabricCompositionChanged, error) {
	b, err := base(productID)
	if err != nil {
		return FabricCompositionChanged{}, err
	}
	return FabricCompositionChanged{notificationBase: b, Composition: c}, nil
}

func NewProductNumberChanged(productID string, n ProductNumber) (ProductNumberChanged, error) {
	b, err := base(productID)
	if err != nil {
		return ProductNumberChanged{}, err
	}
	return ProductNumberChanged{notificationBase: b, Number: n}, nil
}
