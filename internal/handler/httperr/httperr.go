package httperr

import (
	"net/http"

	"catalog-service/internal/domain/aggregate"
	"catalog-service/internal/domain/offer"
	"catalog-service/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusOf maps an error category onto an HTTP status.
func StatusOf(err error) int {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrUnauthorized):
		return http.StatusForbidden
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrConflict), errs.Is(err, errs.ErrStateGuard):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// AbortWithUseCaseError responds with the status of the error category. Version conflicts
// carry the current version so the client can re-read.
func AbortWithUseCaseError(c *gin.Context, err error, msg string) {
	status := StatusOf(err)
	var detail any
	var outdated *aggregate.AggregateVersionOutdatedError
	var aliasTaken *offer.AliasAlreadyInUseError
	switch {
	case errs.As(err, &outdated):
		detail = gin.H{"current_version": outdated.ActualVersion.Int64()}
	case errs.As(err, &aliasTaken):
		detail = gin.H{"alias": aliasTaken.Alias.String(), "conflicting_offer_id": aliasTaken.ConflictingOfferID.String()}
	case status == http.StatusInternalServerError:
		msg = "Internal server error"
	default:
		detail = gin.H{"reason": err.Error()}
	}
	AbortWithError(c, status, err, msg, detail)
}
