//go:build e2e

package offer_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"catalog-service/internal/domain/permission"
	"catalog-service/internal/domain/product"
	"catalog-service/internal/handler/dto/response"
	"catalog-service/tests/common/authtest"
	"catalog-service/tests/common/builder"
	"catalog-service/tests/common/dbtest"
	"catalog-service/tests/common/httptest"
	"catalog-service/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	offersURL        = "/api/offers"
	offerURL         = "/api/offers/%s"
	offerActionURL   = "/api/offers/%s/%s"
	aliasURL         = "/api/offer-aliases/%s"
	productOffersURL = "/api/products/%s/offers"
	notificationsURL = "/api/products/%s/notifications"
)

type OfferSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *OfferSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *OfferSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestOfferSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(OfferSuite))
}

func (s *OfferSuite) createOffer(t *testing.T, b *builder.OfferBuilder, token string) response.CommandResponse {
	t.Helper()
	dbtest.UpsertProduct(t, s.DB, b.BuildProductRecord())

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, offersURL, b.BuildCreateRequestDTO(), token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.CommandResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	return created
}

func (s *OfferSuite) getOffer(t *testing.T, id string) response.OfferResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(offerURL, id), nil, "")
	var res response.OfferResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return res
}

// =============================================================================
// TestCreateOffer
// =============================================================================

func (s *OfferSuite) TestCreateOffer() {
	s.Run("Normal case: operator creates a draft that snapshots the product", func() {
		t := s.T()
		token := s.jwt.UserToken(t, permission.RoleOperator)

		created := s.createOffer(t, builder.NewOfferBuilder(), token)
		require.Equal(t, int64(0), created.Version)

		actual := s.getOffer(t, created.ID)
		expected := response.OfferResponse{
			ID:            created.ID,
			Version:       0,
			State:         "DRAFT",
			Title:         "Summer Dress Linen Blue",
			Alias:         "summer-dress-linen-blue",
			Size:          "M",
			Categories:    []string{"dresses", "summer"},
			ProductID:     "product-1",
			ProductNumber: "P-0001",
			Links: []response.LinkResponse{
				{Type: "PATTERN", ID: "pattern-1", Name: "Wrap Dress"},
				{Type: "FABRIC", ID: "fabric-1", Name: "Blue Linen"},
			},
			FabricComposition: []response.FabricItemResponse{{FabricType: "LINEN", Percentage: 10000}},
			Images:            []string{"img-1", "img-2"},
			Price:             response.MoneyResponse{Amount: 2999, Currency: "EUR"},
			EffectivePrice:    response.MoneyResponse{Amount: 2999, Currency: "EUR"},
			PriceHistory:      []response.PriceHistoryResponse{},
			Notes:             response.NotesResponse{Description: "Handmade linen dress", Care: "Wash at 30 degrees"},
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.OfferResponse{}, "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, actual, opts...); diff != "" {
			t.Errorf("offer response mismatch (-want +got):\n%s", diff)
		}

		byAlias := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(aliasURL, "Summer-Dress-Linen-Blue"), nil, "")
		require.Equal(t, http.StatusOK, byAlias.Code)
	})

	s.Run("Error case: unknown product", func() {
		t := s.T()
		token := s.jwt.UserToken(t, permission.RoleOperator)
		reqBody := builder.NewOfferBuilder().With(func(b *builder.OfferBuilder) { b.ProductID = "missing" }).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, offersURL, reqBody, token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("Error case: alias already taken by another offer", func() {
		t := s.T()
		token := s.jwt.UserToken(t, permission.RoleOperator)
		first := s.createOffer(t, builder.NewOfferBuilder(), token)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, offersURL,
			builder.NewOfferBuilder().With(func(b *builder.OfferBuilder) { b.Title = "summer dress, linen blue" }).BuildCreateRequestDTO(), token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
		require.Contains(t, w.Body.String(), first.ID)
	})

	s.Run("Error case: viewers cannot create", func() {
		t := s.T()
		b := builder.NewOfferBuilder()
		dbtest.UpsertProduct(t, s.DB, b.BuildProductRecord())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, offersURL, b.BuildCreateRequestDTO(), s.jwt.UserToken(t, permission.RoleViewer))
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestLifecycle
// =============================================================================

func (s *OfferSuite) TestLifecycle() {
	s.Run("Normal case: publish, reserve and archive with version checks", func() {
		t := s.T()
		token := s.jwt.UserToken(t, permission.RoleOperator)
		id := s.createOffer(t, builder.NewOfferBuilder(), token).ID

		step := func(action string, expected int64, wantStatus int) *response.CommandResponse {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(offerActionURL, id, action),
				map[string]any{"expected_version": expected}, token)
			require.Equal(t, wantStatus, w.Code, w.Body.String())
			if wantStatus != http.StatusOK {
				return nil
			}
			var res response.CommandResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
			return &res
		}

		require.Equal(t, int64(1), step("publish", 0, http.StatusOK).Version)
		// stale version
		step("reserve", 0, http.StatusConflict)
		require.Equal(t, int64(2), step("reserve", 1, http.StatusOK).Version)
		// reserved offers cannot be unpublished
		step("unpublish", 2, http.StatusConflict)
		require.Equal(t, int64(3), step("archive", 2, http.StatusOK).Version)
		step("archive", 3, http.StatusConflict)

		actual := s.getOffer(t, id)
		require.Equal(t, "ARCHIVED", actual.State)
		require.NotNil(t, actual.ArchivedAt)
		require.Equal(t, 4, dbtest.CountEvents(t, s.DB, id))
	})

	s.Run("Normal case: price update keeps history and discount rules", func() {
		t := s.T()
		token := s.jwt.UserToken(t, permission.RoleOperator)
		id := s.createOffer(t, builder.NewOfferBuilder(), token).ID

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(offerActionURL, id, "discount"),
			map[string]any{"expected_version": 0, "discounted_price": map[string]any{"amount": 1999, "currency": "EUR"}}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(offerActionURL, id, "price"),
			map[string]any{"expected_version": 1, "price": map[string]any{"amount": 3999, "currency": "EUR"}}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		actual := s.getOffer(t, id)
		require.Equal(t, int64(3999), actual.Price.Amount)
		require.Len(t, actual.PriceHistory, 1)
		require.Equal(t, int64(2999), actual.PriceHistory[0].Price.Amount)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(offerActionURL, id, "discount"),
			map[string]any{"expected_version": 2, "discounted_price": map[string]any{"amount": 3999, "currency": "EUR"}}, token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("Normal case: renaming frees the old alias", func() {
		t := s.T()
		token := s.jwt.UserToken(t, permission.RoleOperator)
		id := s.createOffer(t, builder.NewOfferBuilder(), token).ID

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(offerActionURL, id, "title"),
			map[string]any{"expected_version": 0, "title": "Autumn Coat"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		require.Equal(t, http.StatusNotFound, httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(aliasURL, "summer-dress-linen-blue"), nil, "").Code)
		require.Equal(t, http.StatusOK, httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(aliasURL, "autumn-coat"), nil, "").Code)

		// the freed alias can be claimed again
		s.createOffer(t, builder.NewOfferBuilder(), token)
	})

	s.Run("Normal case: admin deletes a draft", func() {
		t := s.T()
		id := s.createOffer(t, builder.NewOfferBuilder(), s.jwt.UserToken(t, permission.RoleOperator)).ID

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(offerURL, id),
			map[string]any{"expected_version": 0}, s.jwt.UserToken(t, permission.RoleOperator))
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(offerURL, id),
			map[string]any{"expected_version": 0}, s.jwt.UserToken(t, permission.RoleAdmin))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		require.Equal(t, http.StatusNotFound, httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(offerURL, id), nil, "").Code)
	})
}

// =============================================================================
// TestProductSynchronization
// =============================================================================

func (s *OfferSuite) TestProductSynchronization() {
	s.Run("Normal case: link rename reaches every offer of the product", func() {
		t := s.T()
		token := s.jwt.UserToken(t, permission.RoleOperator)
		first := s.createOffer(t, builder.NewOfferBuilder(), token)
		second := s.createOffer(t, builder.NewOfferBuilder().With(func(b *builder.OfferBuilder) {
			b.Title = "Summer Dress Linen Blue XL"
			b.Size = "XL"
		}), token)

		body := map[string]any{
			"kind":      string(product.KindLinkRenamed),
			"link_type": "PATTERN",
			"link_id":   "pattern-1",
			"link_name": "Wrap Dress v2",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(notificationsURL, "product-1"), body, s.jwt.SystemToken(t))
		var report response.SyncReportResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &report)
		require.ElementsMatch(t, []string{first.ID, second.ID}, report.Updated)
		require.Empty(t, report.Failed)

		for _, id := range []string{first.ID, second.ID} {
			actual := s.getOffer(t, id)
			require.Equal(t, int64(1), actual.Version)
			require.Equal(t, "Wrap Dress v2", actual.Links[0].Name)
		}

		// redelivery is a no-op
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(notificationsURL, "product-1"), body, s.jwt.SystemToken(t))
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &report)
		require.Empty(t, report.Updated)
		require.ElementsMatch(t, []string{first.ID, second.ID}, report.Skipped)

		list := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(productOffersURL, "product-1"), nil, "")
		var ids response.OfferIDsResponse
		httptest.AssertSuccessResponse(t, list, http.StatusOK, &ids)
		require.ElementsMatch(t, []string{first.ID, second.ID}, ids.OfferIDs)
	})

	s.Run("Normal case: dependent offers are resolved through the lookup view", func() {
		t := s.T()
		token := s.jwt.UserToken(t, permission.RoleOperator)
		first := s.createOffer(t, builder.NewOfferBuilder(), token)
		second := s.createOffer(t, builder.NewOfferBuilder().With(func(b *builder.OfferBuilder) {
			b.Title = "Summer Dress Linen Blue XL"
			b.Size = "XL"
		}), token)

		_, err := s.DB.Exec(context.Background(), `UPDATE offer_lookup SET product_id = $1 WHERE id = $2`, "product-2", second.ID)
		require.NoError(t, err)

		body := map[string]any{"kind": string(product.KindProductNumberChanged), "product_number": "P-0002"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(notificationsURL, "product-1"), body, s.jwt.SystemToken(t))
		var report response.SyncReportResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &report)
		require.Equal(t, []string{first.ID}, report.Updated)
		require.Empty(t, report.Skipped)

		var version int64
		require.NoError(t, s.DB.QueryRow(context.Background(), `SELECT version FROM offers WHERE id = $1`, second.ID).Scan(&version))
		require.Equal(t, int64(0), version)
		require.Equal(t, int64(1), s.getOffer(t, first.ID).Version)
	})

	s.Run("Error case: only system agents push product changes", func() {
		t := s.T()
		body := map[string]any{"kind": string(product.KindProductNumberChanged), "product_number": "P-9"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(notificationsURL, "product-1"), body, s.jwt.UserToken(t, permission.RoleAdmin))
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
