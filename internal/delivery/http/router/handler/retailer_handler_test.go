package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"guildhall/config"
	"guildhall/internal/domain/entity"
	domainerrors "guildhall/internal/domain/errors"
	"guildhall/internal/infra/metrics"
	mockRepo "guildhall/internal/mocks/repository"
	"guildhall/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNearbyHandlerForTest(t *testing.T) (*RetailerHandler, *mockRepo.MockRetailerRepository) {
	t.Helper()

	retailerRepo := mockRepo.NewMockRetailerRepository(t)
	proximityUc := impl.NewProximityService(impl.ProximityServiceParams{
		RetailerRepo: retailerRepo,
		Metrics:      metrics.New(),
		Config: &config.Config{
			Search: &config.SearchConfig{
				DefaultRadiusMiles: 10,
				MaxRadiusMiles:     100,
			},
		},
	})

	return &RetailerHandler{proximityUc: proximityUc}, retailerRepo
}

func postNearby(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/retailers/nearby", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestRetailerHandler_FindNearby_ReturnsSortedMatches(t *testing.T) {
	handler, retailerRepo := newNearbyHandlerForTest(t)

	near := &entity.Retailer{
		ID:        uuid.New(),
		Name:      "Near Store",
		Latitude:  39.775,
		Longitude: -86.158,
		Status:    entity.RetailerStatusActive,
	}

	retailerRepo.EXPECT().
		FindActive(mock.Anything).
		Return([]*entity.Retailer{near}, nil)

	c, rec := postNearby(`{"latitude": 39.768, "longitude": -86.158}`)
	err := handler.FindNearby(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Near Store")
	assert.Contains(t, rec.Body.String(), "distance_miles")
}

func TestRetailerHandler_FindNearby_PositionErrorSurfacesCapability(t *testing.T) {
	handler, _ := newNearbyHandlerForTest(t)

	c, _ := postNearby(`{"position_error": "permission_denied"}`)
	err := handler.FindNearby(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPositionPermissionDenied)
}

func TestRetailerHandler_FindNearby_MissingOriginRejected(t *testing.T) {
	handler, _ := newNearbyHandlerForTest(t)

	c, _ := postNearby(`{}`)
	err := handler.FindNearby(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRetailerHandler_FindNearby_RadiusPassedThrough(t *testing.T) {
	handler, retailerRepo := newNearbyHandlerForTest(t)

	// ~6 miles out; excluded by a 2 mile radius.
	mid := &entity.Retailer{
		ID:        uuid.New(),
		Name:      "Mid Store",
		Latitude:  39.85,
		Longitude: -86.2,
		Status:    entity.RetailerStatusActive,
	}

	retailerRepo.EXPECT().
		FindActive(mock.Anything).
		Return([]*entity.Retailer{mid}, nil)

	c, rec := postNearby(`{"latitude": 39.768, "longitude": -86.158, "radius_miles": 2}`)
	err := handler.FindNearby(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Mid Store")
}
