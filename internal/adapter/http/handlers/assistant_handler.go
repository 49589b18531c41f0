package handlers

import (
	"errors"
	"net/http"

	"sublime_ops/internal/adapter/http/dto/request"
	"sublime_ops/internal/usecase"
	"sublime_ops/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAssistantPayload = pkg.NewDomainErrorSimple("INVALID_ASSISTANT_INPUT", "Invalid assistant payload", http.StatusBadRequest)

// AssistantHandler serves the natural-language analytics endpoint. Model
// output never executes; it is parsed into a validated plan or rejected.

type AssistantHandler struct {
	usecase usecase.IAssistantUseCase
}

func NewAssistantHandler(uc usecase.IAssistantUseCase) *AssistantHandler {
	return &AssistantHandler{usecase: uc}
}

func (h *AssistantHandler) Ask(c *gin.Context) {
	var payload request.AssistantRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssistantPayload.HTTPStatus, errInvalidAssistantPayload.ToHTTPError())
		return
	}

	answer, err := h.usecase.Ask(c.Request.Context(), payload.Question)
	if err != nil {
		appErr := mapAssistantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, answer)
}

func mapAssistantError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyQuestion):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnusablePlan):
		return pkg.NewDomainErrorSimple("UNUSABLE_PLAN", "The model did not produce a usable query plan", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrTextGenMissing):
		return pkg.NewDomainErrorSimple("ASSISTANT_UNAVAILABLE", "Text generation service is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
