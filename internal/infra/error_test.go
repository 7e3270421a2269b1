//go:build unit

package infra_test

import (
	"errors"
	"log/slog"
	"testing"

	"catalog-service/internal/infra"
	"catalog-service/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifyPgError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{"no rows", pgx.ErrNoRows, infra.KindNotFound},
		{"unique", &pgconn.PgError{Code: "23505"}, infra.KindDuplicateKey},
		{"foreign key", &pgconn.PgError{Code: "23503"}, infra.KindForeignKeyViolated},
		{"other pg", &pgconn.PgError{Code: "42P01"}, infra.KindDBFailure},
		{"plain", errors.New("connection reset"), infra.KindDBFailure},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, infra.ClassifyPgError(tc.err))
		})
	}
}

func TestIsRetryablePgError(t *testing.T) {
	assert.True(t, infra.IsRetryablePgError(&pgconn.PgError{Code: "40001"}))
	assert.True(t, infra.IsRetryablePgError(&pgconn.PgError{Code: "40P01"}))
	assert.False(t, infra.IsRetryablePgError(&pgconn.PgError{Code: "23505"}))
	assert.False(t, infra.IsRetryablePgError(errors.New("40001")))
}

func TestRepositoryErrorCategories(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	notFound := infra.WrapRepoErr(logger, infra.KindNotFound, "offer not found", pgx.ErrNoRows)
	assert.True(t, infra.IsKind(notFound, infra.KindNotFound))
	assert.True(t, errs.Is(notFound, errs.ErrNotFound))
	assert.ErrorIs(t, notFound, pgx.ErrNoRows)

	conflict := infra.WrapRepoErr(logger, infra.KindVersionConflict, "stale write", nil)
	assert.True(t, errs.Is(conflict, errs.ErrConflict))
	assert.False(t, errs.Is(conflict, errs.ErrNotFound))
}
