package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"catalog-service/internal/domain/aggregate"
	"catalog-service/internal/infra"
	"catalog-service/internal/infra/db"
	"catalog-service/internal/infra/readstore"
	"catalog-service/internal/infra/repository"
	"catalog-service/internal/pkg/errs"
	"catalog-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPostgresUoW(pool *pgxpool.Pool, logger *slog.Logger) *PostgresUoW {
	return &PostgresUoW{
		pool:   pool,
		logger: logger,
	}
}

// ReadCommitted is enough: every offer write is a conditional update on its version, and
// the alias claim serializes on the alias row.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{
		offers:   readstore.NewOfferReadStore(u.pool, u.logger),
		products: readstore.NewProductReadStore(u.pool, u.logger),
	}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx:   pgxTx,
			logger: u.logger,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				u.logger.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && infra.IsRetryablePgError(err) {
				u.logger.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		u.logger.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return infra.IsRetryablePgError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked to a non-negative value above
	return int64(uval) % n
}

type pgTx struct {
	dbtx   db.DBTX
	logger *slog.Logger

	// Lazy-initialized repositories
	offerRepo    shared.OfferRepository
	aliases      shared.AliasRegistry
	lookupWriter shared.OfferLookupWriter
}

func (t *pgTx) Offers() shared.OfferRepository {
	if t.offerRepo == nil {
		t.offerRepo = repository.NewOfferRepository(t.dbtx, t.logger)
	}
	return t.offerRepo
}

func (t *pgTx) Aliases() shared.AliasRegistry {
	if t.aliases == nil {
		t.aliases = repository.NewAliasRegistry(t.dbtx, t.logger)
	}
	return t.aliases
}

func (t *pgTx) Lookup() shared.OfferLookupWriter {
	if t.lookupWriter == nil {
		t.lookupWriter = repository.NewLookupWriter(t.dbtx, t.logger)
	}
	return t.lookupWriter
}

type commandReads struct {
	offers   *readstore.OfferReadStore
	products *readstore.ProductReadStore
}

func (r *commandReads) OfferIDsByProduct(ctx context.Context, productID string) ([]uuid.UUID, error) {
	return r.offers.FindIDsByProduct(ctx, productID)
}

func (r *commandReads) CurrentVersion(ctx context.Context, id uuid.UUID) (aggregate.Version, error) {
	return r.offers.CurrentVersion(ctx, id)
}

func (r *commandReads) ProductByID(ctx context.Context, productID string) (*shared.ProductSnapshot, error) {
	return r.products.FindByID(ctx, productID)
}

var (
	_ shared.UnitOfWork = (*PostgresUoW)(nil)
	_ shared.Tx         = (*pgTx)(nil)
)
