package product

import (
	"catalog-service/internal/pkg/errs"
)

var ErrUnknownNotificationKind = errs.Mark(errs.New("unknown product notification kind"), errs.ErrValidation)

// Message is the wire form of a Notification as the product service publishes it.
type Message struct {
	Kind              NotificationKind `json:"kind"`
	ProductID         string           `json:"product_id"`
	LinkType          string           `json:"link_type,omitempty"`
	LinkID            string           `json:"link_id,omitempty"`
	LinkName          string           `json:"link_name,omitempty"`
	FabricComposition []MessageFabric  `json:"fabric_composition,omitempty"`
	ProductNumber     string           `json:"product_number,omitempty"`
}

type MessageFabric struct {
	FabricType string `json:"fabric_type"`
	Percentage int    `json:"percentage"`
}

func (m Message) Notification() (Notification, error) {
	switch m.Kind {
	case KindLinkAdded:
		link, err := NewLink(m.LinkType, m.LinkID, m.LinkName)
		if err != nil {
			return nil, err
		}
		return NewLinkAdded(m.ProductID, link)
	case KindLinkRemoved:
		key, err := m.linkKey()
		if err != nil {
			return nil, err
		}
		return NewLinkRemoved(m.ProductID, key)
	case KindLinkRenamed:
		key, err := m.linkKey()
		if err != nil {
			return nil, err
		}
		return NewLinkRenamed(m.ProductID, key, m.LinkName)
	case KindFabricCompositionChanged:
		items := make([]FabricCompositionItem, 0, len(m.FabricComposition))
		for _, f := range m.FabricComposition {
			item, err := NewFabricCompositionItem(f.FabricType, f.Percentage)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		composition, err := NewFabricComposition(items)
		if err != nil {
			return nil, err
		}
		return NewFabricCompositionChanged(m.ProductID, composition)
	case KindProductNumberChanged:
		number, err := NewProductNumber(m.ProductNumber)
		if err != nil {
			return nil, err
		}
		return NewProductNumberChanged(m.ProductID, number)
	default:
		return nil, errs.Wrapf(ErrUnknownNotificationKind, "kind %q", m.Kind)
	}
}

func (m Message) linkKey() (LinkKey, error) {
	link, err := NewLink(m.LinkType, m.LinkID, "")
	if err != nil {
		return LinkKey{}, err
	}
	return link.Key(), nil
}

func MessageOf(n Notification) Message {
	m := Message{Kind: n.Kind(), ProductID: n.ProductID()}
	switch v := n.(type) {
	case LinkAdded:
		m.LinkType, m.LinkID, m.LinkName = string(v.Link.Type), v.Link.ID, v.Link.Name
	case LinkRemoved:
		m.LinkType, m.LinkID = string(v.Key.Type), v.Key.ID
	case LinkRenamed:
		m.LinkType, m.LinkID, m.LinkName = string(v.Key.Type), v.Key.ID, v.Name
	case FabricCompositionChanged:
		for _, it := range v.Composition.Items() {
			m.FabricComposition = append(m.FabricComposition, MessageFabric{
				FabricType: string(it.FabricType),
				Percentage: it.Percentage,
			})
		}
	case ProductNumberChanged:
		m.ProductNumber = v.Number.String()
	}
	return m
}
