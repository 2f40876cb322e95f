package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pixvault/internal/application/usecase/abstraction"
	"pixvault/internal/domain/dto"
	"pixvault/internal/presentation"
)

type GalleryHandler struct {
	lister abstraction.GalleryLister
	getter abstraction.ImageGetter
}

func NewGalleryHandler(lister abstraction.GalleryLister, getter abstraction.ImageGetter) *GalleryHandler {
	return &GalleryHandler{
		lister: lister,
		getter: getter,
	}
}

// HandleList handles GET /gallery requests.
func (h *GalleryHandler) HandleList(c echo.Context) error {
	params := dto.GalleryParams{
		Page:     c.QueryParam("page"),
		Limit:    c.QueryParam("limit"),
		Tag:      c.QueryParam("tag"),
		Tags:     c.QueryParam("tags"),
		Visible:  c.QueryParam("visible"),
		Author:   c.QueryParam("author"),
		AuthorID: c.QueryParam("author_id"),
		IllustID: c.QueryParam("illust_id"),
	}

	page, status, err := h.lister.List(c.Request().Context(), params)
	if err != nil {
		return c.JSON(status, dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, page)
}

// HandleGet handles GET /gallery/:id requests.
func (h *GalleryHandler) HandleGet(c echo.Context) error {
	id := c.Param(presentation.IDParam)
	if id == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "missing image id"})
	}

	image, status, err := h.getter.Get(c.Request().Context(), id)
	if err != nil {
		return c.JSON(status, dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, dto.DataResponse{Success: true, Data: image})
}
