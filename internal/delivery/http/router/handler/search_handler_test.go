package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverymiddleware "mugclub/internal/delivery/http/middleware"
	"mugclub/internal/delivery/http/validator"
	"mugclub/internal/domain/entity"
	mockRepo "mugclub/internal/mocks/repository"
	"mugclub/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSearchTestServer(t *testing.T) (*echo.Echo, *mockRepo.MockSearchRepository) {
	t.Helper()

	mockSearchRepo := mockRepo.NewMockSearchRepository(t)
	uc := impl.NewSearchService(impl.SearchServiceParams{
		SearchRepo: mockSearchRepo,
		Logger:     testLogger(),
	})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = deliverymiddleware.NewErrorMiddleware(testLogger()).HandleHTTPError

	h := NewSearchHandler(uc, testLogger())
	e.GET("/search/beer", h.SearchBeers)
	e.GET("/search/brewery", h.SearchBreweries)

	return e, mockSearchRepo
}

func TestSearchHandler_SearchBeers(t *testing.T) {
	e, mockSearchRepo := newSearchTestServer(t)

	mockSearchRepo.EXPECT().
		SearchBeers(mock.Anything, "julius:*").
		Return([]*entity.BeerSearchResult{
			{ID: 15, Name: "Julius", Brewery: "Tree House", Rank: 0.91},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/search/beer?query=julius", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	beers, ok := data["beers"].([]any)
	require.True(t, ok)
	require.Len(t, beers, 1)

	first, ok := beers[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Julius", first["name"])
	assert.Equal(t, "Tree House", first["brewery"])
}

func TestSearchHandler_SearchBeers_EmptyQuery(t *testing.T) {
	e, _ := newSearchTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/search/beer?query=%21%21", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "fail", body["status"])
	assert.Nil(t, body["data"])
}

func TestSearchHandler_SearchBreweries(t *testing.T) {
	e, mockSearchRepo := newSearchTestServer(t)

	mockSearchRepo.EXPECT().
		SearchBreweries(mock.Anything, "tree:* <-> house:*").
		Return([]*entity.BrewerySearchResult{
			{ID: 8, Name: "Tree House", Rank: 0.87},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/search/brewery?query=tree+house", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
}
