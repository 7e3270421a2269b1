// Package product holds the value objects that offers denormalize from the upstream
// product aggregate, and the change notifications the product side emits.
package product

import (
	"errors"
	"slices"
	"strings"

	"catalog-service/internal/pkg/errs"
)

const MaxPercentage = 10000

var (
	ErrInvalidLinkType     = errs.Mark(errors.New("invalid link type"), errs.ErrValidation)
	ErrEmptyLinkID         = errs.Mark(errors.New("link id cannot be empty"), errs.ErrValidation)
	ErrInvalidFabricType   = errs.Mark(errors.New("invalid fabric type"), errs.ErrValidation)
	ErrInvalidPercentage   = errs.Mark(errors.New("percentage must be between 0 and 10000"), errs.ErrValidation)
	ErrEmptyProductID      = errs.Mark(errors.New("product id cannot be empty"), errs.ErrValidation)
	ErrEmptyProductNumber  = errs.Mark(errors.New("product number cannot be empty"), errs.ErrValidation)
	ErrDuplicateFabricType = errs.Mark(errors.New("fabric type listed twice in composition"), errs.ErrValidation)
)

type LinkType string

const (
	LinkTypePattern LinkType = "PATTERN"
	LinkTypeFabric  LinkType = "FABRIC"
)

func NewLinkType(s string) (LinkType, error) {
	t := LinkType(strings.ToUpper(strings.TrimSpace(s)))
	switch t {
	case LinkTypePattern, LinkTypeFabric:
		return t, nil
	default:
		return "", ErrInvalidLinkType
	}
}

// LinkKey identifies a link independently of its cached display name.
type LinkKey struct {
	Type LinkType
	ID   string
}

// Link points from a product to another catalog entity. Name is a cached display label
// refreshed when the target is renamed.
type Link struct {
	Type LinkType
	ID   string
	Name string
}

func NewLink(linkType, id, name string) (Link, error) {
	t, err := NewLinkType(linkType)
	if err != nil {
		return Link{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return Link{}, ErrEmptyLinkID
	}
	return Link{Type: t, ID: id, Name: strings.TrimSpace(name)}, nil
}

func (l Link) Key() LinkKey { return LinkKey{Type: l.Type, ID: l.ID} }

type Links []Link

func (ls Links) IndexOf(key LinkKey) int {
	return slices.IndexFunc(ls, func(l Link) bool { return l.Key() == key })
}

func (ls Links) Contains(key LinkKey) bool { return ls.IndexOf(key) >= 0 }

func (ls Links) Clone() Links { return slices.Clone(ls) }

type FabricType string

const (
	FabricCotton    FabricType = "COTTON"
	FabricLinen     FabricType = "LINEN"
	FabricSilk      FabricType = "SILK"
	FabricWool      FabricType = "WOOL"
	FabricPolyester FabricType = "POLYESTER"
	FabricViscose   FabricType = "VISCOSE"
	FabricElastane  FabricType = "ELASTANE"
	FabricOther     FabricType = "OTHER"
)

var fabricTypes = []FabricType{
	FabricCotton, FabricLinen, FabricSilk, FabricWool,
	FabricPolyester, FabricViscose, FabricElastane, FabricOther,
}

func NewFabricType(s string) (FabricType, error) {
	t := FabricType(strings.ToUpper(strings.TrimSpace(s)))
	if !slices.Contains(fabricTypes, t) {
		return "", ErrInvalidFabricType
	}
	return t, nil
}

// FabricCompositionItem percentage is fixed-point: 10000 means 100.00%.
type FabricCompositionItem struct {
	FabricType FabricType
	Percentage int
}

func NewFabricCompositionItem(fabricType string, percentage int) (FabricCompositionItem, error) {
	t, err := NewFabricType(fabricType)
	if err != nil {
		return FabricCompositionItem{}, err
	}
	if percentage < 0 || percentage > MaxPercentage {
		return FabricCompositionItem{}, ErrInvalidPercentage
	}
	return FabricCompositionItem{FabricType: t, Percentage: percentage}, nil
}

// FabricComposition has set semantics; percentages are not required to sum to 100% here.
type FabricComposition struct {
	items []FabricCompositionItem
}

func NewFabricComposition(items []FabricCompositionItem) (FabricComposition, error) {
	seen := make(map[FabricType]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it.FabricType]; dup {
			return FabricComposition{}, ErrDuplicateFabricType
		}
		seen[it.FabricType] = struct{}{}
	}
	sorted := slices.Clone(items)
	slices.SortFunc(sorted, func(a, b FabricCompositionItem) int {
		return strings.Compare(string(a.FabricType), string(b.FabricType))
	})
	return FabricComposition{items: sorted}, nil
}

func (c FabricComposition) Items() []FabricCompositionItem { return slices.Clone(c.items) }

func (c FabricComposition) Equal(other FabricComposition) bool {
	return slices.Equal(c.items, other.items)
}

type ProductNumber string

func NewProductNumber(s string) (ProductNumber, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyProductNumber
	}
	return ProductNumber(s), nil
}

func (n ProductNumber) String() string { return string(n) }
