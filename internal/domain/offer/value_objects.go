package offer

import (
	"errors"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"catalog-service/internal/domain/product"
	"catalog-service/internal/pkg/errs"
)

const (
	MaxTitleLength       = 200
	MaxSizeLength        = 32
	MaxCategoryLength    = 64
	MaxImageIDLength     = 128
	MaxImages            = 50
	MaxDescriptionLength = 5000
	MaxNoteLength        = 2000
)

var (
	ErrEmptyTitle       = errs.Mark(errors.New("title cannot be empty"), errs.ErrValidation)
	ErrTitleTooLong     = errs.Mark(errors.New("title exceeds maximum length"), errs.ErrValidation)
	ErrEmptyAlias       = errs.Mark(errors.New("title does not produce a usable alias"), errs.ErrValidation)
	ErrEmptySize        = errs.Mark(errors.New("size cannot be empty"), errs.ErrValidation)
	ErrSizeTooLong      = errs.Mark(errors.New("size exceeds maximum length"), errs.ErrValidation)
	ErrInvalidCategory  = errs.Mark(errors.New("invalid category id"), errs.ErrValidation)
	ErrNoImages         = errs.Mark(errors.New("at least one image is required"), errs.ErrValidation)
	ErrTooManyImages    = errs.Mark(errors.New("too many images"), errs.ErrValidation)
	ErrInvalidImageID   = errs.Mark(errors.New("invalid image id"), errs.ErrValidation)
	ErrDuplicateImage   = errs.Mark(errors.New("image listed twice"), errs.ErrValidation)
	ErrEmptyDescription = errs.Mark(errors.New("notes description cannot be empty"), errs.ErrValidation)
	ErrNoteTooLong      = errs.Mark(errors.New("note exceeds maximum length"), errs.ErrValidation)
	ErrMissingProductID = errs.Mark(errors.New("product id cannot be empty"), errs.ErrValidation)
)

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Title{}, ErrEmptyTitle
	}
	if utf8.RuneCountInString(s) > MaxTitleLength {
		return Title{}, ErrTitleTooLong
	}
	if DeriveAlias(s) == "" {
		return Title{}, ErrEmptyAlias
	}
	return Title{value: s}, nil
}

func (t Title) String() string { return t.value }

// Alias derives the URL-safe alias for the title.
func (t Title) Alias() Alias { return DeriveAlias(t.value) }

// Alias is unique across all offers. Uniqueness is arbitrated outside the aggregate.
type Alias string

func (a Alias) String() string { return string(a) }

var foldings = map[rune]string{
	'ä': "ae", 'ö': "oe", 'ü': "ue", 'ß': "ss",
	'à': "a", 'á': "a", 'â': "a", 'ã': "a", 'å': "a", 'æ': "ae",
	'ç': "c", 'è': "e", 'é': "e", 'ê': "e", 'ë': "e",
	'ì': "i", 'í': "i", 'î': "i", 'ï': "i", 'ñ': "n",
	'ò': "o", 'ó': "o", 'ô': "o", 'õ': "o", 'ø': "o", 'œ': "oe",
	'ù': "u", 'ú': "u", 'û': "u", 'ý': "y", 'ÿ': "y",
}

// DeriveAlias lowercases s, folds common Latin letters to ASCII and collapses every run of
// other characters into a single dash.
func DeriveAlias(s string) Alias {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(s) {
		var chunk string
		switch {
		case r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			chunk = string(r)
		case foldings[r] != "":
			chunk = foldings[r]
		default:
			pendingDash = true
			continue
		}
		if pendingDash && b.Len() > 0 {
			b.WriteByte('-')
		}
		pendingDash = false
		b.WriteString(chunk)
	}
	return Alias(b.String())
}

type Size struct {
	value string
}

func NewSize(s string) (Size, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Size{}, ErrEmptySize
	}
	if utf8.RuneCountInString(s) > MaxSizeLength {
		return Size{}, ErrSizeTooLong
	}
	return Size{value: s}, nil
}

func (s Size) String() string { return s.value }

// Categories has set semantics; it is kept sorted so equal sets compare equal.
type Categories struct {
	ids []string
}

func NewCategories(ids []string) (Categories, error) {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || len(id) > MaxCategoryLength {
			return Categories{}, ErrInvalidCategory
		}
		out = append(out, id)
	}
	slices.Sort(out)
	return Categories{ids: slices.Compact(out)}, nil
}

func (c Categories) IDs() []string { return slices.Clone(c.ids) }

func (c Categories) Contains(id string) bool {
	_, found := slices.BinarySearch(c.ids, id)
	return found
}

// Images keeps the caller's order.
type Images struct {
	ids []string
}

func NewImages(ids []string) (Images, error) {
	if len(ids) == 0 {
		return Images{}, ErrNoImages
	}
	if len(ids) > MaxImages {
		return Images{}, ErrTooManyImages
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || len(id) > MaxImageIDLength {
			return Images{}, ErrInvalidImageID
		}
		if _, dup := seen[id]; dup {
			return Images{}, ErrDuplicateImage
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return Images{ids: out}, nil
}

func (i Images) IDs() []string { return slices.Clone(i.ids) }

func (i Images) Len() int { return len(i.ids) }

// Notes is replaced wholesale; an empty optional field clears the previous value.
type Notes struct {
	description string
	contains    string
	care        string
	safety      string
}

func NewNotes(description, contains, care, safety string) (Notes, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Notes{}, ErrEmptyDescription
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return Notes{}, ErrNoteTooLong
	}
	n := Notes{
		description: description,
		contains:    strings.TrimSpace(contains),
		care:        strings.TrimSpace(care),
		safety:      strings.TrimSpace(safety),
	}
	for _, v := range []string{n.contains, n.care, n.safety} {
		if utf8.RuneCountInString(v) > MaxNoteLength {
			return Notes{}, ErrNoteTooLong
		}
	}
	return n, nil
}

func (n Notes) Description() string { return n.description }
func (n Notes) Contains() string    { return n.contains }
func (n Notes) Care() string        { return n.care }
func (n Notes) Safety() string      { return n.safety }

// ProductSnapshot is the offer's denormalized copy of its product. Only the synchronizer
// refreshes it after creation.
type ProductSnapshot struct {
	productID         string
	productNumber     product.ProductNumber
	links             product.Links
	fabricComposition product.FabricComposition
}

func NewProductSnapshot(
	productID string,
	number product.ProductNumber,
	links []product.Link,
	composition product.FabricComposition,
) (ProductSnapshot, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return ProductSnapshot{}, ErrMissingProductID
	}
	return ProductSnapshot{
		productID:         productID,
		productNumber:     number,
		links:             slices.Clone(links),
		fabricComposition: composition,
	}, nil
}

func (p ProductSnapshot) ProductID() string                            { return p.productID }
func (p ProductSnapshot) ProductNumber() product.ProductNumber         { return p.productNumber }
func (p ProductSnapshot) Links() product.Links                         { return p.links.Clone() }
func (p ProductSnapshot) FabricComposition() product.FabricComposition { return p.fabricComposition }

func (p ProductSnapshot) withLinks(links product.Links) ProductSnapshot {
	p.links = links
	return p
}

func (p ProductSnapshot) withNumber(n product.ProductNumber) ProductSnapshot {
	p.productNumber = n
	return p
}

func (p ProductSnapshot) withComposition(c product.FabricComposition) ProductSnapshot {
	p.fabricComposition = c
	return p
}
