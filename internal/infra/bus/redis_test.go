//go:build unit

package bus

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"catalog-service/internal/domain/product"
	"catalog-service/internal/pkg/config"
	"catalog-service/internal/pkg/errs"
	"catalog-service/internal/usecase/commands"
	commandsmock "catalog-service/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestSubscriber(t *testing.T, timeout time.Duration) (*ProductSubscriber, *commandsmock.MockProductSync) {
	t.Helper()
	ctrl := gomock.NewController(t)
	syncer := commandsmock.NewMockProductSync(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := NewProductSubscriber(nil, config.RedisConfig{Channel: "catalog.products"}, syncer, config.SyncConfig{HandleTimeout: timeout}, logger)
	return s, syncer
}

func TestProductSubscriberHandle(t *testing.T) {
	t.Run("dispatches decoded notification", func(t *testing.T) {
		s, syncer := newTestSubscriber(t, time.Second)

		syncer.EXPECT().Handle(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, n product.Notification) (*commands.SyncReport, error) {
				renamed, ok := n.(product.LinkRenamed)
				assert.True(t, ok)
				assert.Equal(t, "p-1", renamed.ProductID())
				assert.Equal(t, "Wrap Dress", renamed.Name)
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)
				return &commands.SyncReport{ProductID: "p-1", Kind: product.KindLinkRenamed}, nil
			}).Times(1)

		s.handle(context.Background(), `{"kind":"LINK_RENAMED","product_id":"p-1","link_type":"PATTERN","link_id":"pat-1","link_name":"Wrap Dress"}`)
	})

	t.Run("no deadline without timeout", func(t *testing.T) {
		s, syncer := newTestSubscriber(t, 0)

		syncer.EXPECT().Handle(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ product.Notification) (*commands.SyncReport, error) {
				_, hasDeadline := ctx.Deadline()
				assert.False(t, hasDeadline)
				return &commands.SyncReport{ProductID: "p-1", Kind: product.KindProductNumberChanged}, nil
			}).Times(1)

		s.handle(context.Background(), `{"kind":"PRODUCT_NUMBER_CHANGED","product_id":"p-1","product_number":"P-2"}`)
	})

	t.Run("drops undecodable payload", func(t *testing.T) {
		s, syncer := newTestSubscriber(t, time.Second)
		syncer.EXPECT().Handle(gomock.Any(), gomock.Any()).Times(0)

		s.handle(context.Background(), `{"kind":`)
	})

	t.Run("drops unknown kind", func(t *testing.T) {
		s, syncer := newTestSubscriber(t, time.Second)
		syncer.EXPECT().Handle(gomock.Any(), gomock.Any()).Times(0)

		s.handle(context.Background(), `{"kind":"PRICE_CHANGED","product_id":"p-1"}`)
	})

	t.Run("synchronizer error does not stop the subscriber", func(t *testing.T) {
		s, syncer := newTestSubscriber(t, time.Second)
		syncer.EXPECT().Handle(gomock.Any(), gomock.Any()).
			Return(nil, errs.New("boom")).Times(1)

		s.handle(context.Background(), `{"kind":"LINK_REMOVED","product_id":"p-1","link_type":"FABRIC","link_id":"fab-1"}`)
	})
}

func TestProductSubscriberStopWithoutStart(t *testing.T) {
	s, _ := newTestSubscriber(t, time.Second)
	assert.NoError(t, s.Stop(context.Background()))
}
