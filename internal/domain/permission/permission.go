package permission

import (
	"fmt"

	"catalog-service/internal/domain/aggregate"
	"catalog-service/internal/pkg/errs"
)

type Action string

const (
	ActionCreate           Action = "CREATE"
	ActionPublish          Action = "PUBLISH"
	ActionUnpublish        Action = "UNPUBLISH"
	ActionReserve          Action = "RESERVE"
	ActionUnreserve        Action = "UNRESERVE"
	ActionArchive          Action = "ARCHIVE"
	ActionDelete           Action = "DELETE"
	ActionUpdateTitle      Action = "UPDATE_TITLE"
	ActionUpdateSize       Action = "UPDATE_SIZE"
	ActionUpdateCategories Action = "UPDATE_CATEGORIES"
	ActionUpdateImages     Action = "UPDATE_IMAGES"
	ActionUpdateNotes      Action = "UPDATE_NOTES"
	ActionUpdatePrice      Action = "UPDATE_PRICE"
	ActionAddDiscount      Action = "ADD_DISCOUNT"
	ActionRemoveDiscount   Action = "REMOVE_DISCOUNT"
	ActionUpdateProduct    Action = "UPDATE_PRODUCT"
	ActionRead             Action = "READ"
)

// Resource references what an action targets. An empty ID means the whole type,
// which is how CREATE is checked before any id exists.
type Resource struct {
	Type aggregate.Type
	ID   string
}

func TypeResource(t aggregate.Type) Resource { return Resource{Type: t} }

func InstanceResource(t aggregate.Type, id string) Resource { return Resource{Type: t, ID: id} }

func (r Resource) IsType() bool { return r.ID == "" }

func (r Resource) String() string {
	if r.IsType() {
		return string(r.Type)
	}
	return fmt.Sprintf("%s/%s", r.Type, r.ID)
}

type MissingPermissionError struct {
	Holder   aggregate.Agent
	Action   Action
	Resource Resource
}

func (e *MissingPermissionError) Error() string {
	return fmt.Sprintf("%s is missing permission %s on %s", e.Holder, e.Action, e.Resource)
}

func (e *MissingPermissionError) Is(target error) bool {
	return target == errs.ErrUnauthorized
}

func NewMissingPermission(holder aggregate.Agent, action Action, res Resource) error {
	return &MissingPermissionError{Holder: holder, Action: action, Resource: res}
}
