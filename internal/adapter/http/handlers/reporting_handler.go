package handlers

import (
	"net/http"

	"sublime_ops/internal/usecase"
	"sublime_ops/pkg"

	"github.com/gin-gonic/gin"
)

// ReportingHandler serves the analytics dashboard figures.

type ReportingHandler struct {
	usecase usecase.IReportingUseCase
}

func NewReportingHandler(uc usecase.IReportingUseCase) *ReportingHandler {
	return &ReportingHandler{usecase: uc}
}

func (h *ReportingHandler) Summary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, summary)
}
