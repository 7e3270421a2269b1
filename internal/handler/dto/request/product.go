package request

import (
	"catalog-service/internal/domain/product"
)

type FabricItemRequest struct {
	FabricType string `json:"fabric_type" binding:"required"`
	Percentage int    `json:"percentage" binding:"min=0,max=10000"`
}

// ProductNotificationRequest mirrors the message the product service publishes on the bus.
type ProductNotificationRequest struct {
	Kind              string              `json:"kind" binding:"required"`
	LinkType          string              `json:"link_type"`
	LinkID            string              `json:"link_id"`
	LinkName          string              `json:"link_name"`
	FabricComposition []FabricItemRequest `json:"fabric_composition"`
	ProductNumber     string              `json:"product_number"`
}

func (r *ProductNotificationRequest) ToDomain(productID string) (product.Notification, error) {
	msg := product.Message{
		Kind:          product.NotificationKind(r.Kind),
		ProductID:     productID,
		LinkType:      r.LinkType,
		LinkID:        r.LinkID,
		LinkName:      r.LinkName,
		ProductNumber: r.ProductNumber,
	}
	for _, f := range r.FabricComposition {
		msg.FabricComposition = append(msg.FabricComposition, product.MessageFabric{
			FabricType: f.FabricType,
			Percentage: f.Percentage,
		})
	}
	return msg.Notification()
}
