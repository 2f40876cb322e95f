package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pixvault/internal/application/usecase/abstraction"
	"pixvault/internal/domain/dto"
)

type ImageURLHandler struct {
	resolver abstraction.URLResolver
}

func NewImageURLHandler(resolver abstraction.URLResolver) *ImageURLHandler {
	return &ImageURLHandler{
		resolver: resolver,
	}
}

// HandleResolve handles GET /image-url requests.
func (h *ImageURLHandler) HandleResolve(c echo.Context) error {
	fileName := c.QueryParam("fileName")

	urls, status, err := h.resolver.Resolve(c.Request().Context(), fileName)
	if err != nil {
		return c.JSON(status, dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, dto.DataResponse{Success: true, Data: urls})
}
