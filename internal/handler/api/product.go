package api

import (
	"net/http"

	reqdto "catalog-service/internal/handler/dto/request"
	resdto "catalog-service/internal/handler/dto/response"
	"catalog-service/internal/handler/httperr"
	"catalog-service/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// ProductHandler accepts product change notifications over HTTP for producers that do not
// publish to the bus.
type ProductHandler struct {
	sync commands.ProductSync
}

func NewProductHandler(sync commands.ProductSync) *ProductHandler {
	return &ProductHandler{sync: sync}
}

// @Summary Apply product change
// @Description Propagate a product change to every offer that snapshots the product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Param request body reqdto.ProductNotificationRequest true "Product change"
// @Success 200 {object} resdto.SyncReportResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /products/{productId}/notifications [post]
func (h *ProductHandler) Notify(c *gin.Context) {
	var req reqdto.ProductNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	n, err := req.ToDomain(c.Param("productId"))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Invalid notification")
		return
	}
	report, err := h.sync.Handle(c.Request.Context(), n)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Synchronization failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSyncReport(report))
}
