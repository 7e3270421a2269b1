package commands

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"catalog-service/internal/domain/aggregate"
	"catalog-service/internal/domain/offer"
	"catalog-service/internal/domain/product"
	"catalog-service/internal/pkg/errs"
	"catalog-service/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

type SyncOutcome string

const (
	SyncUpdated SyncOutcome = "updated"
	SyncSkipped SyncOutcome = "skipped"
	SyncFailed  SyncOutcome = "failed"
)

// SyncReport summarizes one notification. A failure on one offer never prevents the
// others from being updated.
type SyncReport struct {
	ProductID string
	Kind      product.NotificationKind
	Updated   []uuid.UUID
	Skipped   []uuid.UUID
	Failed    map[uuid.UUID]error
}

func (r *SyncReport) HasFailures() bool { return len(r.Failed) > 0 }

func (r *SyncReport) Outcome(id uuid.UUID) SyncOutcome {
	if _, ok := r.Failed[id]; ok {
		return SyncFailed
	}
	for _, u := range r.Updated {
		if u == id {
			return SyncUpdated
		}
	}
	return SyncSkipped
}

type SyncOptions struct {
	Concurrency int
	Retry       shared.RetryPolicy
}

type ProductSync interface {
	Handle(ctx context.Context, n product.Notification) (*SyncReport, error)
}

type productSyncImpl struct {
	uow    shared.UnitOfWork
	offers OfferCommands
	opts   SyncOptions
	logger *slog.Logger
}

func NewProductSync(uow shared.UnitOfWork, offers OfferCommands, opts SyncOptions, logger *slog.Logger) ProductSync {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	return &productSyncImpl{uow: uow, offers: offers, opts: opts, logger: logger}
}

func (s *productSyncImpl) Handle(ctx context.Context, n product.Notification) (*SyncReport, error) {
	ctx, span := tracer.Start(ctx, "product.Sync", trace.WithAttributes(
		attribute.String("product.id", n.ProductID()),
		attribute.String("product.change", string(n.Kind())),
	))
	defer span.End()

	ids, err := s.uow.CommandReads().OfferIDsByProduct(ctx, n.ProductID())
	if err != nil {
		return nil, recordErr(span, errs.Wrapf(err, "resolve offers of product %s", n.ProductID()))
	}

	report := &SyncReport{
		ProductID: n.ProductID(),
		Kind:      n.Kind(),
		Failed:    make(map[uuid.UUID]error),
	}
	var mu sync.Mutex

	// Jobs never return an error so one offer cannot cancel its siblings.
	var g errgroup.Group
	g.SetLimit(s.opts.Concurrency)
	for _, id := range ids {
		g.Go(func() error {
			outcome, err := s.syncOffer(ctx, id, n)
			mu.Lock()
			defer mu.Unlock()
			switch outcome {
			case SyncUpdated:
				report.Updated = append(report.Updated, id)
			case SyncSkipped:
				report.Skipped = append(report.Skipped, id)
			default:
				report.Failed[id] = err
			}
			return nil
		})
	}
	_ = g.Wait()

	span.SetAttributes(
		attribute.Int("sync.updated", len(report.Updated)),
		attribute.Int("sync.skipped", len(report.Skipped)),
		attribute.Int("sync.failed", len(report.Failed)),
	)
	level := slog.LevelInfo
	if report.HasFailures() {
		level = slog.LevelWarn
	}
	s.logger.Log(ctx, level, "product change synchronized",
		"product_id", report.ProductID,
		"kind", string(report.Kind),
		"offers", len(ids),
		"updated", len(report.Updated),
		"skipped", len(report.Skipped),
		"failed", len(report.Failed))
	return report, nil
}

// syncOffer is one independently retryable job: read the current version, apply the
// field change and commit through the guarded write path.
func (s *productSyncImpl) syncOffer(ctx context.Context, id uuid.UUID, n product.Notification) (SyncOutcome, error) {
	ctx, span := tracer.Start(ctx, "product.SyncOffer", trace.WithAttributes(
		attribute.String("offer.id", id.String()),
	))
	defer span.End()

	logger := s.logger.With("offer_id", id.String(), "product_id", n.ProductID())
	_, err := shared.RetryOnConflict(ctx, logger, s.opts.Retry, func(ctx context.Context) (*CommandResult, error) {
		version, err := s.uow.CommandReads().CurrentVersion(ctx, id)
		if err != nil {
			return nil, err
		}
		cmd, err := SyncCommand(n, offer.Target{OfferID: id, ExpectedVersion: version})
		if err != nil {
			return nil, err
		}
		return s.offers.Execute(ctx, aggregate.System(), cmd)
	})

	var archived *offer.AlreadyArchivedError
	switch {
	case err == nil:
		return SyncUpdated, nil
	case errors.Is(err, offer.ErrNoChange), errors.As(err, &archived), aggregate.IsNotFound(err):
		return SyncSkipped, nil
	default:
		s.logger.Warn("offer sync failed",
			"offer_id", id.String(),
			"product_id", n.ProductID(),
			"kind", string(n.Kind()),
			"error", err.Error())
		return SyncFailed, recordErr(span, err)
	}
}

// SyncCommand maps a product notification onto the offer command that carries it.
func SyncCommand(n product.Notification, t offer.Target) (offer.Command, error) {
	switch n := n.(type) {
	case product.LinkAdded:
		return offer.AddProductLink{Target: t, Link: n.Link}, nil
	case product.LinkRemoved:
		return offer.RemoveProductLink{Target: t, Key: n.Key}, nil
	case product.LinkRenamed:
		return offer.RenameProductLink{Target: t, Key: n.Key, Name: n.Name}, nil
	case product.FabricCompositionChanged:
		return offer.UpdateFabricComposition{Target: t, Composition: n.Composition}, nil
	case product.ProductNumberChanged:
		return offer.UpdateProductNumber{Target: t, Number: n.Number}, nil
	default:
		return nil, errs.Newf("unsupported product notification %T", n)
	}
}
