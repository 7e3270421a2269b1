//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"catalog-service/internal/domain/aggregate"
	"catalog-service/internal/domain/permission"
	"catalog-service/internal/domain/product"
	"catalog-service/internal/handler/api"
	resdto "catalog-service/internal/handler/dto/response"
	"catalog-service/internal/handler/middleware"
	"catalog-service/internal/pkg/errs"
	"catalog-service/internal/pkg/jwt"
	"catalog-service/internal/usecase"
	"catalog-service/internal/usecase/commands"
	"catalog-service/tests/common/httptest"
	commandsmock "catalog-service/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProductHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockSync      *commandsmock.MockProductSync
	systemToken   string
	operatorToken string
}

func (s *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSync = commandsmock.NewMockProductSync(s.mockCtrl)
	handler := api.NewProductHandler(s.mockSync)

	jwtService := jwt.NewService("test-secret", time.Hour)
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwtService))

	var err error
	s.systemToken, err = jwtService.GenerateToken(aggregate.System())
	s.Require().NoError(err)
	s.operatorToken, err = jwtService.GenerateToken(aggregate.User(uuid.New(), string(permission.RoleOperator)))
	s.Require().NoError(err)

	s.router.POST("/products/:productId/notifications", auth.RequireAuth(), auth.RequireSystem(), handler.Notify)
}

func (s *ProductHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProductHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}

func (s *ProductHandlerTestSuite) TestNotify() {
	url := "/products/product-1/notifications"
	body := map[string]any{"kind": "PRODUCT_NUMBER_CHANGED", "product_number": "P-0002"}

	s.Run("success: system agent triggers synchronization", func() {
		updated := uuid.New()
		s.mockSync.EXPECT().Handle(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n product.Notification) (*commands.SyncReport, error) {
				changed, ok := n.(product.ProductNumberChanged)
				s.Require().True(ok)
				s.Equal("product-1", changed.ProductID())
				s.Equal(product.ProductNumber("P-0002"), changed.Number)
				return &commands.SyncReport{
					ProductID: "product-1",
					Kind:      product.KindProductNumberChanged,
					Updated:   []uuid.UUID{updated},
					Failed:    map[uuid.UUID]error{},
				}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.systemToken)

		var res resdto.SyncReportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal([]string{updated.String()}, res.Updated)
		s.Empty(res.Skipped)
	})

	s.Run("error: operators cannot push product changes", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.operatorToken)
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("error: unknown kind is rejected before synchronization", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"kind": "PRICE_CHANGED"}, s.systemToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid notification")
	})

	s.Run("error: missing kind", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, s.systemToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: storage failure is masked", func() {
		s.mockSync.EXPECT().Handle(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("connection reset"), errs.ErrDatabaseOperationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.systemToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
