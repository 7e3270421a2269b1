package offer

import (
	"errors"
	"fmt"

	"catalog-service/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrNoChange is returned by product sync commands when the offer already reflects the
// value. Nothing is written.
var ErrNoChange = errors.New("offer already reflects the change")

var ErrAlreadyExists = errs.Mark(errors.New("offer already exists"), errs.ErrConflict)

// guardError is embedded by every state-machine guard error.
type guardError struct {
	OfferID uuid.UUID
}

func (guardError) Is(target error) bool { return target == errs.ErrStateGuard }

type AlreadyArchivedError struct{ guardError }

type AlreadyPublishedError struct{ guardError }

type AlreadyUnpublishedError struct{ guardError }

type CannotUnpublishReservedError struct{ guardError }

type NotPublishedError struct{ guardError }

type AlreadyReservedError struct{ guardError }

type NotReservedError struct{ guardError }

type NotReservedForArchiveError struct{ guardError }

type CannotDeleteNonDraftError struct {
	guardError
	State State
}

func (e *AlreadyArchivedError) Error() string {
	return fmt.Sprintf("offer %s is archived", e.OfferID)
}

func (e *AlreadyPublishedError) Error() string {
	return fmt.Sprintf("offer %s is already published", e.OfferID)
}

func (e *AlreadyUnpublishedError) Error() string {
	return fmt.Sprintf("offer %s is already unpublished", e.OfferID)
}

func (e *CannotUnpublishReservedError) Error() string {
	return fmt.Sprintf("offer %s is reserved and cannot be unpublished", e.OfferID)
}

func (e *NotPublishedError) Error() string {
	return fmt.Sprintf("offer %s is not published", e.OfferID)
}

func (e *AlreadyReservedError) Error() string {
	return fmt.Sprintf("offer %s is already reserved", e.OfferID)
}

func (e *NotReservedError) Error() string {
	return fmt.Sprintf("offer %s is not reserved", e.OfferID)
}

func (e *NotReservedForArchiveError) Error() string {
	return fmt.Sprintf("offer %s must be reserved before it can be archived", e.OfferID)
}

func (e *CannotDeleteNonDraftError) Error() string {
	return fmt.Sprintf("offer %s is %s; only drafts can be deleted", e.OfferID, e.State)
}

// AliasAlreadyInUseError is raised by alias arbitration, outside the aggregate.
type AliasAlreadyInUseError struct {
	ConflictingOfferID uuid.UUID
	Alias              Alias
}

func (e *AliasAlreadyInUseError) Error() string {
	return fmt.Sprintf("alias %q is already used by offer %s", e.Alias, e.ConflictingOfferID)
}

func (e *AliasAlreadyInUseError) Is(target error) bool { return target == errs.ErrConflict }

func NewAliasAlreadyInUse(conflicting uuid.UUID, alias Alias) error {
	return &AliasAlreadyInUseError{ConflictingOfferID: conflicting, Alias: alias}
}
