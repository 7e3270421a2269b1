package bus

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"catalog-service/internal/domain/product"
	"catalog-service/internal/pkg/config"
	"catalog-service/internal/pkg/errs"
	"catalog-service/internal/usecase/commands"

	goredis "github.com/redis/go-redis/v9"
)

// NewRedisClient connects and pings so a bad address fails at startup.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errs.Wrap(err, "redis ping")
	}
	return rdb, nil
}

// ProductSubscriber feeds product notifications published on a Redis channel into the
// synchronizer. Messages are handled one at a time in arrival order.
type ProductSubscriber struct {
	rdb     *goredis.Client
	channel string
	sync    commands.ProductSync
	timeout time.Duration
	logger  *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewProductSubscriber(rdb *goredis.Client, cfg config.RedisConfig, syncer commands.ProductSync, syncCfg config.SyncConfig, logger *slog.Logger) *ProductSubscriber {
	return &ProductSubscriber{
		rdb:     rdb,
		channel: cfg.Channel,
		sync:    syncer,
		timeout: syncCfg.HandleTimeout,
		logger:  logger.With("component", "ProductSubscriber", "channel", cfg.Channel),
	}
}

func (s *ProductSubscriber) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return errs.New("product subscriber already started")
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	sub := s.rdb.Subscribe(runCtx, s.channel)

	// ensures subscription actually started
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		cancel()
		return errs.Wrapf(err, "redis subscribe %s", s.channel)
	}

	s.cancel = cancel
	s.done = make(chan struct{})
	go s.loop(runCtx, sub, s.done)

	s.logger.Info("Product subscriber started")
	return nil
}

func (s *ProductSubscriber) loop(ctx context.Context, sub *goredis.PubSub, done chan<- struct{}) {
	defer close(done)
	defer func() { _ = sub.Close() }()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-ch:
			if !ok || m == nil {
				s.logger.Warn("Product subscription channel closed")
				return
			}
			s.handle(ctx, m.Payload)
		}
	}
}

// Stop cancels the subscription and waits for the in-flight message to finish.
func (s *ProductSubscriber) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	select {
	case <-done:
		s.logger.Info("Product subscriber stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *ProductSubscriber) handle(ctx context.Context, payload string) {
	var msg product.Message
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		s.logger.Warn("Discarding undecodable product message", "error", err.Error())
		return
	}
	n, err := msg.Notification()
	if err != nil {
		s.logger.Warn("Discarding invalid product message",
			"product_id", msg.ProductID,
			"kind", string(msg.Kind),
			"error", err.Error())
		return
	}

	handleCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		handleCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	report, err := s.sync.Handle(handleCtx, n)
	if err != nil {
		s.logger.Error("Product synchronization failed",
			"product_id", n.ProductID(),
			"kind", string(n.Kind()),
			"error", err.Error())
		return
	}
	level := slog.LevelInfo
	if report.HasFailures() {
		level = slog.LevelWarn
	}
	s.logger.Log(ctx, level, "Product synchronization finished",
		"product_id", report.ProductID,
		"kind", string(report.Kind),
		"updated", len(report.Updated),
		"skipped", len(report.Skipped),
		"failed", len(report.Failed))
}

// ProductPublisher writes notifications in the wire format ProductSubscriber reads.
type ProductPublisher struct {
	rdb     *goredis.Client
	channel string
}

func NewProductPublisher(rdb *goredis.Client, cfg config.RedisConfig) *ProductPublisher {
	return &ProductPublisher{rdb: rdb, channel: cfg.Channel}
}

func (p *ProductPublisher) Publish(ctx context.Context, n product.Notification) error {
	raw, err := json.Marshal(product.MessageOf(n))
	if err != nil {
		return errs.Wrap(err, "encode product message")
	}
	if err := p.rdb.Publish(ctx, p.channel, raw).Err(); err != nil {
		return errs.Wrapf(err, "publish to %s", p.channel)
	}
	return nil
}
