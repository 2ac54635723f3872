package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/KKK-90/POSTRKR-App/config"
	"github.com/KKK-90/POSTRKR-App/internal/service"
	apperrors "github.com/KKK-90/POSTRKR-App/pkg/errors"
	"github.com/KKK-90/POSTRKR-App/pkg/response"
)

// Handler aggregates every handler.
type Handler struct {
	Auth     *AuthHandler
	Location *LocationHandler
	Transfer *TransferHandler
}

// NewHandler creates the Handler aggregate.
func NewHandler(svc *service.Service, cfg *config.Config) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(svc.Auth, &cfg.Auth.Cookie),
		Location: NewLocationHandler(svc.Location),
		Transfer: NewTransferHandler(svc.Transfer),
	}
}

// Health liveness check.
// GET /api/health
func Health(c *gin.Context) {
	response.Ack(c)
}

// handleServiceError maps an error kind to its status. Anything without a
// kind is a 500 carrying the error text.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, apperrors.ErrInvalidInput):
		response.BadRequest(c, err.Error())
	case errors.Is(err, apperrors.ErrUnauthorized):
		response.Unauthorized(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
