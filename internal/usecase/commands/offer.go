package commands

import (
	"context"
	"errors"
	"log/slog"

	"catalog-service/internal/domain/aggregate"
	"catalog-service/internal/domain/money"
	"catalog-service/internal/domain/offer"
	"catalog-service/internal/domain/permission"
	"catalog-service/internal/domain/product"
	"catalog-service/internal/pkg/clock"
	"catalog-service/internal/pkg/errs"
	"catalog-service/internal/usecase/readmodel"
	"catalog-service/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var ErrUnknownProduct = errs.Mark(errors.New("referenced product does not exist"), errs.ErrValidation)

var tracer = otel.Tracer("catalog-service/usecase/commands")

type MoneyInput struct {
	Amount   int64
	Currency string
}

type NotesInput struct {
	Description string
	Contains    string
	Care        string
	Safety      string
}

type CreateOfferRequest struct {
	Title      string
	Size       string
	Categories []string
	ProductID  string
	Images     []string
	Price      MoneyInput
	Notes      NotesInput
}

type CommandResult struct {
	OfferID uuid.UUID
	Version aggregate.Version
}

type OfferCommands interface {
	Create(ctx context.Context, agent aggregate.Agent, req CreateOfferRequest) (*CommandResult, error)
	Publish(ctx context.Context, agent aggregate.Agent, id uuid.UUID, expected aggregate.Version) (*CommandResult, error)
	Unpublish(ctx context.Context, agent aggregate.Agent, id uuid.UUID, expected aggregate.Version) (*CommandResult, error)
	Reserve(ctx context.Context, agent aggregate.Agent, id uuid.UUID, expected aggregate.Version) (*CommandResult, error)
	Unreserve(ctx context.Context, agent aggregate.Agent, id uuid.UUID, expected aggregate.Version) (*CommandResult, error)
	Archive(ctx context.Context, agent aggregate.Agent, id uuid.UUID, expected aggregate.Version) (*CommandResult, error)
	Delete(ctx context.Context, agent aggregate.Agent, id uuid.UUID, expected aggregate.Version) (*CommandResult, error)
	UpdateTitle(ctx context.Context, agent aggregate.Agent, id uuid.UUID, expected aggregate.Version, title string) (*CommandResult, error)
	UpdateSize(ctx context.Context, agent aggregate.Agent, id uuid.UUID, expected aggregate.Version, size string) (*CommandResult, error)
	UpdateCategories(ctx context.Context, agent aggregate.Agent, id uuid.UUID, expected aggregate.Version, categories []string) (*CommandResult, error)
	UpdateImages(ctx context.Context, agent aggregate.Agent, id uuid.UUID, expected aggregate.Version, images []string) (*CommandResult, error)
	UpdateNotes(ctx context.Context, agent aggregate.Agent, id uuid.UUID, expected aggregate.Version, notes NotesInput) (*CommandResult, error)
	UpdatePrice(ctx context.Context, agent aggregate.Agent, id uuid.UUID, expected aggregate.Version, price MoneyInput) (*CommandResult, error)
	AddDiscount(ctx context.Context, agent aggregate.Agent, id uuid.UUID, expected aggregate.Version, discounted MoneyInput) (*CommandResult, error)
	RemoveDiscount(ctx context.Context, agent aggregate.Agent, id uuid.UUID, expected aggregate.Version) (*CommandResult, error)
	// Execute runs an already validated command through the permission check and the
	// guarded write path. The product synchronizer uses it for its field updates.
	Execute(ctx context.Context, agent aggregate.Agent, cmd offer.Command) (*CommandResult, error)
}

type offerUseCaseImpl struct {
	uow         shared.UnitOfWork
	permissions shared.PermissionChecker
	clock       clock.Clock
	logger      *slog.Logger
}

func NewOfferCommands(uow shared.UnitOfWork, permissions shared.PermissionChecker, clk clock.Clock, logger *slog.Logger) OfferCommands {
	return &offerUseCaseImpl{uow: uow, permissions: permissions, clock: clk, logger: logger}
}

func (uc *offerUseCaseImpl) Create(ctx context.Context, agent aggregate.Agent, req CreateOfferRequest) (*CommandResult, error) {
	ctx, span := tracer.Start(ctx, "offer.Create")
	defer span.End()

	if err := uc.permissions.Check(ctx, agent, permission.ActionCreate, permission.TypeResource(aggregate.TypeOffer)); err != nil {
		return nil, recordErr(span, err)
	}

	cmd, err := buildCreate(req)
	if err != nil {
		return nil, recordErr(span, err)
	}

	snap, err := uc.uow.CommandReads().ProductByID(ctx, req.ProductID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, recordErr(span, errs.Wrapf(ErrUnknownProduct, "product %s", req.ProductID))
		}
		return nil, recordErr(span, err)
	}
	cmd.Product, err = toProductSnapshot(snap)
	if err != nil {
		return nil, recordErr(span, err)
	}

	now := uc.clock.Now()
	created, ev, err := offer.Apply(nil, cmd, now)
	if err != nil {
		return nil, recordErr(span, err)
	}
	ev = ev.WithMetadata(uuid.New(), agent)

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Aliases().Claim(ctx, created.Alias(), created.ID()); err != nil {
			return err
		}
		if err := tx.Offers().Insert(ctx, created, ev); err != nil {
			return err
		}
		return tx.Lookup().Upsert(ctx, readmodel.ProjectOffer(created, now))
	})
	if err != nil {
		return nil, recordErr(span, err)
	}

	span.SetAttributes(attribute.String("offer.id", created.ID().String()))
	uc.logger.Info("offer created",
		"offer_id", created.ID().String(),
		"product_id", req.ProductID,
		"agent", agent.String())
	return &CommandResult{OfferID: created.ID(), Version: created.Version()}, nil
}

func (uc *offerUseCaseImpl) Publish(ctx context.Context, agent aggregate.Agent, id uuid.UUID, expected aggregate.Version) (*CommandResult, error) {
	return uc.Execute(ctx, agent, offer.Publish{Target: target(id, expected)})
}

func (uc *offerUseCaseImpl) Unpublish(ctx context.Context, agent aggregate.Agent, id uuid.UUID, expected aggregate.Version) (*CommandResult, error) {
	return uc.Execute(ctx, agent, offer.Unpublish{Target: target(id, expected)})
}

func (uc *offerUseCaseImpl) Reserve(ctx context.Context, agent aggregate.Agent, id uuid.UUID, expected aggregate.Version) (*CommandResult, error) {
	return uc.Execute(ctx, agent, offer.Reserve{Target: target(id, expected)})
}

func (uc *offerUseCaseImpl) Unreserve(ctx context.Context, agent aggregate.Agent, id uuid.UUID, expected aggregate.Version) (*CommandResult, error) {
	return uc.Execute(ctx, agent, offer.Unreserve{Target: target(id, expected)})
}

func (uc *offerUseCaseImpl) Archive(ctx context.Context, agent aggregate.Agent, id uuid.UUID, expected aggregate.Version) (*CommandResult, error) {
	return uc.Execute(ctx, agent, offer.Archive{Target: target(id, expected)})
}

func (uc *offerUseCaseImpl) Delete(ctx context.Context, agent aggregate.Agent, id uuid.UUID, expected aggregate.Version) (*CommandResult, error) {
	return uc.Execute(ctx, agent, offer.Delete{Target: target(id, expected)})
}

func (uc *offerUseCaseImpl) RemoveDiscount(ctx context.Context, agent aggregate.Agent, id uuid.UUID, expected aggregate.Version) (*CommandResult, error) {
	return uc.Execute(ctx, agent, offer.RemoveDiscount{Target: target(id, expected)})
}

func (uc *offerUseCaseImpl) UpdateTitle(ctx context.Context, agent aggregate.Agent, id uuid.UUID, expected aggregate.Version, title string) (*CommandResult, error) {
	return validated(ctx, uc, agent, permission.ActionUpdateTitle, id, func() (offer.Command, error) {
		t, err := offer.NewTitle(title)
		return offer.UpdateTitle{Target: target(id, expected), Title: t}, err
	})
}

func (uc *offerUseCaseImpl) UpdateSize(ctx context.Context, agent aggregate.Agent, id uuid.UUID, expected aggregate.Version, size string) (*CommandResult, error) {
	return validated(ctx, uc, agent, permission.ActionUpdateSize, id, func() (offer.Command, error) {
		s, err := offer.NewSize(size)
		return offer.UpdateSize{Target: target(id, expected), Size: s}, err
	})
}

func (uc *offerUseCaseImpl) UpdateCategories(ctx context.Context, agent aggregate.Agent, id uuid.UUID, expected aggregate.Version, categories []string) (*CommandResult, error) {
	return validated(ctx, uc, agent, permission.ActionUpdateCategories, id, func() (offer.Command, error) {
		c, err := offer.NewCategories(categories)
		return offer.UpdateCategories{Target: target(id, expected), Categories: c}, err
	})
}

func (uc *offerUseCaseImpl) UpdateImages(ctx context.Context, agent aggregate.Agent, id uuid.UUID, expected aggregate.Version, images []string) (*CommandResult, error) {
	return validated(ctx, uc, agent, permission.ActionUpdateImages, id, func() (offer.Command, error) {
		i, err := offer.NewImages(images)
		return offer.UpdateImages{Target: target(id, expected), Images: i}, err
	})
}

func (uc *offerUseCaseImpl) UpdateNotes(ctx context.Context, agent aggregate.Agent, id uuid.UUID, expected aggregate.Version, notes NotesInput) (*CommandResult, error) {
	return validated(ctx, uc, agent, permission.ActionUpdateNotes, id, func() (offer.Command, error) {
		n, err := offer.NewNotes(notes.Description, notes.Contains, notes.Care, notes.Safety)
		return offer.UpdateNotes{Target: target(id, expected), Notes: n}, err
	})
}

func (uc *offerUseCaseImpl) UpdatePrice(ctx context.Context, agent aggregate.Agent, id uuid.UUID, expected aggregate.Version, price MoneyInput) (*CommandResult, error) {
	return validated(ctx, uc, agent, permission.ActionUpdatePrice, id, func() (offer.Command, error) {
		m, err := money.New(price.Amount, price.Currency)
		return offer.UpdatePrice{Target: target(id, expected), Price: m}, err
	})
}

func (uc *offerUseCaseImpl) AddDiscount(ctx context.Context, agent aggregate.Agent, id uuid.UUID, expected aggregate.Version, discounted MoneyInput) (*CommandResult, error) {
	return validated(ctx, uc, agent, permission.ActionAddDiscount, id, func() (offer.Command, error) {
		m, err := money.New(discounted.Amount, discounted.Currency)
		return offer.AddDiscount{Target: target(id, expected), DiscountedPrice: m}, err
	})
}

func (uc *offerUseCaseImpl) Execute(ctx context.Context, agent aggregate.Agent, cmd offer.Command) (*CommandResult, error) {
	t, ok := offer.TargetOf(cmd)
	if !ok {
		return nil, errs.Newf("command %T has no target offer", cmd)
	}
	if err := uc.authorize(ctx, agent, cmd.Action(), t.OfferID); err != nil {
		return nil, err
	}
	return uc.write(ctx, agent, cmd)
}

func (uc *offerUseCaseImpl) authorize(ctx context.Context, agent aggregate.Agent, action permission.Action, id uuid.UUID) error {
	return uc.permissions.Check(ctx, agent, action, permission.InstanceResource(aggregate.TypeOffer, id.String()))
}

// validated checks permission before input validation so an unauthorized caller learns
// nothing about the offer or about its own input.
func validated(
	ctx context.Context,
	uc *offerUseCaseImpl,
	agent aggregate.Agent,
	action permission.Action,
	id uuid.UUID,
	build func() (offer.Command, error),
) (*CommandResult, error) {
	if err := uc.authorize(ctx, agent, action, id); err != nil {
		return nil, err
	}
	cmd, err := build()
	if err != nil {
		return nil, err
	}
	return uc.write(ctx, agent, cmd)
}

func (uc *offerUseCaseImpl) write(ctx context.Context, agent aggregate.Agent, cmd offer.Command) (*CommandResult, error) {
	t, _ := offer.TargetOf(cmd)
	ctx, span := tracer.Start(ctx, "offer."+string(cmd.Action()), trace.WithAttributes(
		attribute.String("offer.id", t.OfferID.String()),
		attribute.Int64("offer.expected_version", t.ExpectedVersion.Int64()),
	))
	defer span.End()

	var result CommandResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Offers().Load(ctx, t.OfferID)
		if err != nil {
			return err
		}

		now := uc.clock.Now()
		next, ev, err := offer.Apply(current, cmd, now)
		if err != nil {
			return err
		}
		ev = ev.WithMetadata(uuid.New(), agent)
		result = CommandResult{OfferID: t.OfferID, Version: ev.Version}

		if next == nil {
			if err := tx.Offers().Delete(ctx, t.OfferID, t.ExpectedVersion, ev); err != nil {
				return err
			}
			if err := tx.Aliases().Release(ctx, t.OfferID); err != nil {
				return err
			}
			return tx.Lookup().Remove(ctx, t.OfferID)
		}

		if next.Alias() != current.Alias() {
			if err := tx.Aliases().Claim(ctx, next.Alias(), t.OfferID); err != nil {
				return err
			}
		}
		if err := tx.Offers().Commit(ctx, t.ExpectedVersion, next, ev); err != nil {
			return err
		}
		return tx.Lookup().Upsert(ctx, readmodel.ProjectOffer(next, now))
	})
	if err != nil {
		if !errors.Is(err, offer.ErrNoChange) {
			uc.logger.Debug("offer command rejected",
				"offer_id", t.OfferID.String(),
				"action", string(cmd.Action()),
				"expected_version", t.ExpectedVersion.Int64(),
				"error", err.Error())
		}
		return nil, recordErr(span, err)
	}

	uc.logger.Info("offer command applied",
		"offer_id", t.OfferID.String(),
		"action", string(cmd.Action()),
		"version", result.Version.Int64(),
		"agent", agent.String())
	return &result, nil
}

func buildCreate(req CreateOfferRequest) (offer.Create, error) {
	title, err := offer.NewTitle(req.Title)
	if err != nil {
		return offer.Create{}, err
	}
	size, err := offer.NewSize(req.Size)
	if err != nil {
		return offer.Create{}, err
	}
	categories, err := offer.NewCategories(req.Categories)
	if err != nil {
		return offer.Create{}, err
	}
	images, err := offer.NewImages(req.Images)
	if err != nil {
		return offer.Create{}, err
	}
	price, err := money.New(req.Price.Amount, req.Price.Currency)
	if err != nil {
		return offer.Create{}, err
	}
	pricing, err := offer.NewPricing(price)
	if err != nil {
		return offer.Create{}, err
	}
	notes, err := offer.NewNotes(req.Notes.Description, req.Notes.Contains, req.Notes.Care, req.Notes.Safety)
	if err != nil {
		return offer.Create{}, err
	}
	if req.ProductID == "" {
		return offer.Create{}, offer.ErrMissingProductID
	}
	return offer.Create{
		ID:         uuid.New(),
		Title:      title,
		Size:       size,
		Categories: categories,
		Images:     images,
		Pricing:    pricing,
		Notes:      notes,
	}, nil
}

func toProductSnapshot(s *shared.ProductSnapshot) (offer.ProductSnapshot, error) {
	composition, err := product.NewFabricComposition(s.FabricComposition)
	if err != nil {
		return offer.ProductSnapshot{}, err
	}
	return offer.NewProductSnapshot(s.ProductID, product.ProductNumber(s.ProductNumber), s.Links, composition)
}

func target(id uuid.UUID, expected aggregate.Version) offer.Target {
	return offer.Target{OfferID: id, ExpectedVersion: expected}
}

func recordErr(span trace.Span, err error) error {
	if err != nil && !errors.Is(err, offer.ErrNoChange) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
