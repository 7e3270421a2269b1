package api

import (
	"context"
	"net/http"

	"catalog-service/internal/domain/aggregate"
	reqdto "catalog-service/internal/handler/dto/request"
	resdto "catalog-service/internal/handler/dto/response"
	"catalog-service/internal/handler/httperr"
	"catalog-service/internal/handler/middleware"
	"catalog-service/internal/usecase/commands"
	"catalog-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OfferHandler struct {
	cmds commands.OfferCommands
	q    queries.OfferQueries
}

func NewOfferHandler(cmds commands.OfferCommands, q queries.OfferQueries) *OfferHandler {
	return &OfferHandler{cmds: cmds, q: q}
}

// @Summary Create offer
// @Description Create a draft offer for an existing product
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOfferRequest true "Create offer request"
// @Success 201 {object} resdto.CommandResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /offers [post]
func (h *OfferHandler) Create(c *gin.Context) {
	var req reqdto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), middleware.GetAgent(c), req.ToUseCase())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Create offer failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCommandResult(result))
}

// @Summary Get offer
// @Description Get an offer by ID
// @Tags offers
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /offers/{id} [get]
func (h *OfferHandler) Get(c *gin.Context) {
	id, ok := parseOfferID(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), middleware.GetAgent(c), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Offer not available")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferRM(view))
}

// @Summary Get offer by alias
// @Description Resolve an offer from its URL alias
// @Tags offers
// @Produce json
// @Param alias path string true "Offer alias"
// @Success 200 {object} resdto.OfferResponse
// @Failure 404 {object} httperr.Response
// @Router /offer-aliases/{alias} [get]
func (h *OfferHandler) GetByAlias(c *gin.Context) {
	view, err := h.q.GetByAlias(c.Request.Context(), middleware.GetAgent(c), c.Param("alias"))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Offer not available")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferRM(view))
}

// @Summary List offers of a product
// @Tags offers
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} resdto.OfferIDsResponse
// @Router /products/{productId}/offers [get]
func (h *OfferHandler) ListByProduct(c *gin.Context) {
	productID := c.Param("productId")
	ids, err := h.q.ListIDsByProduct(c.Request.Context(), middleware.GetAgent(c), productID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Listing offers failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferIDs(productID, ids))
}

type versionedCommand func(ctx context.Context, agent aggregate.Agent, id uuid.UUID, expected aggregate.Version) (*commands.CommandResult, error)

// transition serves every command whose only input is the expected version.
func (h *OfferHandler) transition(run versionedCommand, failure string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseOfferID(c)
		if !ok {
			return
		}
		var req reqdto.VersionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
		result, err := run(c.Request.Context(), middleware.GetAgent(c), id, req.Expected())
		if err != nil {
			httperr.AbortWithUseCaseError(c, err, failure)
			return
		}
		c.JSON(http.StatusOK, resdto.FromCommandResult(result))
	}
}

// @Summary Publish offer
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param request body reqdto.VersionRequest true "Expected version"
// @Success 200 {object} resdto.CommandResponse
// @Failure 409 {object} httperr.Response
// @Router /offers/{id}/publish [post]
func (h *OfferHandler) Publish() gin.HandlerFunc {
	return h.transition(h.cmds.Publish, "Publish failed")
}

// @Summary Unpublish offer
// @Tags offers
// @Router /offers/{id}/unpublish [post]
func (h *OfferHandler) Unpublish() gin.HandlerFunc {
	return h.transition(h.cmds.Unpublish, "Unpublish failed")
}

// @Summary Reserve offer
// @Tags offers
// @Router /offers/{id}/reserve [post]
func (h *OfferHandler) Reserve() gin.HandlerFunc {
	return h.transition(h.cmds.Reserve, "Reserve failed")
}

// @Summary Release reservation
// @Tags offers
// @Router /offers/{id}/unreserve [post]
func (h *OfferHandler) Unreserve() gin.HandlerFunc {
	return h.transition(h.cmds.Unreserve, "Unreserve failed")
}

// @Summary Archive offer
// @Tags offers
// @Router /offers/{id}/archive [post]
func (h *OfferHandler) Archive() gin.HandlerFunc {
	return h.transition(h.cmds.Archive, "Archive failed")
}

// @Summary Delete draft offer
// @Tags offers
// @Router /offers/{id} [delete]
func (h *OfferHandler) Delete() gin.HandlerFunc {
	return h.transition(h.cmds.Delete, "Delete failed")
}

// @Summary Remove discount
// @Tags offers
// @Router /offers/{id}/discount [delete]
func (h *OfferHandler) RemoveDiscount() gin.HandlerFunc {
	return h.transition(h.cmds.RemoveDiscount, "Remove discount failed")
}

// @Summary Update title
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Param request body reqdto.UpdateTitleRequest true "New title"
// @Success 200 {object} resdto.CommandResponse
// @Failure 409 {object} httperr.Response
// @Router /offers/{id}/title [put]
func (h *OfferHandler) UpdateTitle(c *gin.Context) {
	var req reqdto.UpdateTitleRequest
	h.update(c, &req, func(ctx context.Context, agent aggregate.Agent, id uuid.UUID) (*commands.CommandResult, error) {
		return h.cmds.UpdateTitle(ctx, agent, id, req.Expected(), req.Title)
	})
}

// @Summary Update size
// @Tags offers
// @Router /offers/{id}/size [put]
func (h *OfferHandler) UpdateSize(c *gin.Context) {
	var req reqdto.UpdateSizeRequest
	h.update(c, &req, func(ctx context.Context, agent aggregate.Agent, id uuid.UUID) (*commands.CommandResult, error) {
		return h.cmds.UpdateSize(ctx, agent, id, req.Expected(), req.Size)
	})
}

// @Summary Update categories
// @Tags offers
// @Router /offers/{id}/categories [put]
func (h *OfferHandler) UpdateCategories(c *gin.Context) {
	var req reqdto.UpdateCategoriesRequest
	h.update(c, &req, func(ctx context.Context, agent aggregate.Agent, id uuid.UUID) (*commands.CommandResult, error) {
		return h.cmds.UpdateCategories(ctx, agent, id, req.Expected(), req.Categories)
	})
}

// @Summary Update images
// @Tags offers
// @Router /offers/{id}/images [put]
func (h *OfferHandler) UpdateImages(c *gin.Context) {
	var req reqdto.UpdateImagesRequest
	h.update(c, &req, func(ctx context.Context, agent aggregate.Agent, id uuid.UUID) (*commands.CommandResult, error) {
		return h.cmds.UpdateImages(ctx, agent, id, req.Expected(), req.Images)
	})
}

// @Summary Update notes
// @Tags offers
// @Router /offers/{id}/notes [put]
func (h *OfferHandler) UpdateNotes(c *gin.Context) {
	var req reqdto.UpdateNotesRequest
	h.update(c, &req, func(ctx context.Context, agent aggregate.Agent, id uuid.UUID) (*commands.CommandResult, error) {
		return h.cmds.UpdateNotes(ctx, agent, id, req.Expected(), req.Notes.ToInput())
	})
}

// @Summary Update price
// @Description Replace the price. The previous price moves to the history and any discount is dropped.
// @Tags offers
// @Router /offers/{id}/price [put]
func (h *OfferHandler) UpdatePrice(c *gin.Context) {
	var req reqdto.UpdatePriceRequest
	h.update(c, &req, func(ctx context.Context, agent aggregate.Agent, id uuid.UUID) (*commands.CommandResult, error) {
		return h.cmds.UpdatePrice(ctx, agent, id, req.Expected(), req.Price.ToInput())
	})
}

// @Summary Add discount
// @Tags offers
// @Router /offers/{id}/discount [post]
func (h *OfferHandler) AddDiscount(c *gin.Context) {
	var req reqdto.AddDiscountRequest
	h.update(c, &req, func(ctx context.Context, agent aggregate.Agent, id uuid.UUID) (*commands.CommandResult, error) {
		return h.cmds.AddDiscount(ctx, agent, id, req.Expected(), req.DiscountedPrice.ToInput())
	})
}

func (h *OfferHandler) update(c *gin.Context, req any, run func(ctx context.Context, agent aggregate.Agent, id uuid.UUID) (*commands.CommandResult, error)) {
	id, ok := parseOfferID(c)
	if !ok {
		return
	}
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := run(c.Request.Context(), middleware.GetAgent(c), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, "Update failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCommandResult(result))
}

func parseOfferID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
