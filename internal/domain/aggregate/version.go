// Package aggregate holds the pieces shared by every versioned aggregate: the version
// guard, the not-found/outdated errors and the acting identity carried by commands.
package aggregate

import (
	"fmt"

	"catalog-service/internal/pkg/errs"
)

// Version is the number of accepted mutations since creation. A freshly created aggregate
// is at version 0.
type Version int64

func (v Version) Next() Version { return v + 1 }

func (v Version) Int64() int64 { return int64(v) }

type Type string

const TypeOffer Type = "OFFER"

type AggregateVersionOutdatedError struct {
	AggregateType Type
	AggregateID   string
	ActualVersion Version
}

func (e *AggregateVersionOutdatedError) Error() string {
	return fmt.Sprintf("%s %s is outdated: actual version is %d", e.AggregateType, e.AggregateID, e.ActualVersion)
}

func (e *AggregateVersionOutdatedError) Is(target error) bool {
	return target == errs.ErrConflict
}

type AggregateNotFoundError struct {
	AggregateType Type
	AggregateID   string
}

func (e *AggregateNotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.AggregateType, e.AggregateID)
}

func (e *AggregateNotFoundError) Is(target error) bool {
	return target == errs.ErrNotFound
}

func NewNotFound(t Type, id string) error {
	return &AggregateNotFoundError{AggregateType: t, AggregateID: id}
}

// CheckVersion accepts a mutation only when the caller saw the currently persisted version.
// It knows nothing about transitions and must run before any of them.
func CheckVersion(t Type, id string, actual, expected Version) error {
	if actual != expected {
		return &AggregateVersionOutdatedError{AggregateType: t, AggregateID: id, ActualVersion: actual}
	}
	return nil
}

func IsOutdated(err error) bool {
	var outdated *AggregateVersionOutdatedError
	return errs.As(err, &outdated)
}

func IsNotFound(err error) bool {
	var notFound *AggregateNotFoundError
	return errs.As(err, &notFound)
}
