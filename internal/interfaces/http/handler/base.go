package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brewery/backend/internal/domain/shared"
	"github.com/brewery/backend/internal/infrastructure/logger"
	"github.com/brewery/backend/internal/interfaces/http/dto"
	"github.com/brewery/backend/internal/interfaces/http/middleware"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// parseID extracts and parses the named uuid path parameter. On
// failure it writes a 404: an unparseable id can never name an
// existing resource.
func (h *BaseHandler) parseID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		h.NotFound(c, "Not Found")
		return uuid.Nil, false
	}
	return id, true
}

// Error translates a domain error into the matching HTTP response.
// Persistence constraint violations come back in the same field map
// shape as binding failures.
func (h *BaseHandler) Error(c *gin.Context, err error) {
	var constraintErr *shared.ConstraintViolationError
	if errors.As(err, &constraintErr) {
		c.JSON(http.StatusBadRequest,
			dto.NewConstraintErrorResponse(constraintErr.Field, constraintErr.Message))
		return
	}

	var domainErr *shared.DomainError
	if !errors.As(err, &domainErr) {
		h.internalError(c, err)
		return
	}

	switch domainErr.Code {
	case shared.ErrNotFound.Code:
		h.NotFound(c, domainErr.Message)
	case shared.ErrConcurrencyConflict.Code, shared.ErrAlreadyExists.Code, shared.ErrInvalidState.Code:
		h.status(c, http.StatusConflict, domainErr.Message)
	case shared.ErrInvalidInput.Code:
		h.status(c, http.StatusBadRequest, domainErr.Message)
	case shared.ErrUnauthorized.Code:
		h.status(c, http.StatusUnauthorized, domainErr.Message)
	case shared.ErrForbidden.Code:
		h.status(c, http.StatusForbidden, domainErr.Message)
	default:
		h.internalError(c, domainErr)
	}
}

// NotFound sends a 404 response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.status(c, http.StatusNotFound, message)
}

// BindingError sends a 400 response for a failed request binding
func (h *BaseHandler) BindingError(c *gin.Context, err error) {
	middleware.HandleBindingError(c, err)
}

func (h *BaseHandler) internalError(c *gin.Context, err error) {
	logger.GetGinLogger(c).Error("Unhandled error", zap.Error(err))
	h.status(c, http.StatusInternalServerError, "Internal server error")
}

func (h *BaseHandler) status(c *gin.Context, code int, message string) {
	c.JSON(code, dto.NewErrorResponse(code, message, c.Request.URL.Path))
}
