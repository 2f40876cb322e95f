package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixvault/internal/domain/dto"
	"pixvault/internal/presentation"
)

type fakeLister struct {
	page      *dto.GalleryPage
	status    int
	err       error
	gotParams dto.GalleryParams
}

func (f *fakeLister) List(_ context.Context, params dto.GalleryParams) (*dto.GalleryPage, int, error) {
	f.gotParams = params

	return f.page, f.status, f.err
}

type fakeGetter struct {
	image  *dto.GalleryImage
	status int
	err    error
}

func (f *fakeGetter) Get(_ context.Context, _ string) (*dto.GalleryImage, int, error) {
	return f.image, f.status, f.err
}

func TestHandleList(t *testing.T) {
	t.Parallel()

	page := &dto.GalleryPage{
		Data: []dto.GalleryImage{
			{ID: "65f000000000000000000001", DisplayURL: "https://storage.example/a?show"},
		},
		Pagination: dto.Pagination{Page: 1, Limit: 20, Total: 1, TotalPages: 1},
	}

	lister := &fakeLister{page: page, status: http.StatusOK}
	h := NewGalleryHandler(lister, &fakeGetter{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet,
		"/gallery?page=1&limit=20&tags=landscape,sunset&visible=true", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.HandleList(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, dto.GalleryParams{
		Page:    "1",
		Limit:   "20",
		Tags:    "landscape,sunset",
		Visible: "true",
	}, lister.gotParams)

	var got dto.GalleryPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, page.Pagination, got.Pagination)
	require.Len(t, got.Data, 1)
	assert.Equal(t, page.Data[0].ID, got.Data[0].ID)
}

func TestHandleListErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		lister         *fakeLister
		expectedStatus int
	}{
		{
			name:           "client input error",
			lister:         &fakeLister{status: http.StatusBadRequest, err: errors.New("invalid 'visible' value")},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "storage failure",
			lister:         &fakeLister{status: http.StatusInternalServerError, err: errors.New("failed to query gallery")},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := NewGalleryHandler(tc.lister, &fakeGetter{})

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/gallery", http.NoBody)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, h.HandleList(c))
			assert.Equal(t, tc.expectedStatus, rec.Code)

			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.lister.err.Error(), body.Error)
		})
	}
}

func TestHandleGet(t *testing.T) {
	t.Parallel()

	image := &dto.GalleryImage{ID: "65f000000000000000000001", Title: "untitled"}
	h := NewGalleryHandler(&fakeLister{}, &fakeGetter{image: image, status: http.StatusOK})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/gallery/:" + presentation.IDParam)
	c.SetParamNames(presentation.IDParam)
	c.SetParamValues(image.ID)

	require.NoError(t, h.HandleGet(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool             `json:"success"`
		Data    dto.GalleryImage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, image.ID, body.Data.ID)
}

func TestHandleGetNotFound(t *testing.T) {
	t.Parallel()

	h := NewGalleryHandler(&fakeLister{},
		&fakeGetter{status: http.StatusNotFound, err: errors.New("image not found")})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/gallery/:" + presentation.IDParam)
	c.SetParamNames(presentation.IDParam)
	c.SetParamValues("65f000000000000000000099")

	require.NoError(t, h.HandleGet(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "image not found", body.Error)
}
