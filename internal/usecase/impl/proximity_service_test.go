package impl

import (
	"context"
	"math"
	"testing"

	"guildhall/config"
	"guildhall/internal/domain/entity"
	domainerrors "guildhall/internal/domain/errors"
	"guildhall/internal/geo"
	"guildhall/internal/infra/metrics"
	mockRepo "guildhall/internal/mocks/repository"
	"guildhall/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProximityServiceForTest(t *testing.T) (usecase.ProximityUsecase, *mockRepo.MockRetailerRepository) {
	t.Helper()

	retailerRepo := mockRepo.NewMockRetailerRepository(t)
	service := NewProximityService(ProximityServiceParams{
		RetailerRepo: retailerRepo,
		Metrics:      metrics.New(),
		Config: &config.Config{
			Search: &config.SearchConfig{
				DefaultRadiusMiles: 10,
				MaxRadiusMiles:     100,
			},
		},
	})

	return service, retailerRepo
}

func retailerAt(name string, lat, lng float64) *entity.Retailer {
	return &entity.Retailer{
		ID:        uuid.New(),
		Name:      name,
		Latitude:  lat,
		Longitude: lng,
		Status:    entity.RetailerStatusActive,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestProximityService_FindNearby_SortsByDistance(t *testing.T) {
	service, retailerRepo := newProximityServiceForTest(t)

	ctx := context.Background()

	// Origin in downtown Indianapolis; one store a few blocks away, one a
	// few miles out, one across the state.
	near := retailerAt("Near Store", 39.775, -86.158)
	mid := retailerAt("Mid Store", 39.85, -86.2)
	far := retailerAt("Far Store", 41.5, -87.3)

	retailerRepo.EXPECT().
		FindActive(ctx).
		Return([]*entity.Retailer{far, mid, near}, nil)

	matches, err := service.FindNearby(ctx, usecase.NearbyQuery{
		Latitude:  39.768,
		Longitude: -86.158,
		HasOrigin: true,
	})
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "Near Store", matches[0].Retailer.Name)
	assert.Equal(t, "Mid Store", matches[1].Retailer.Name)
	assert.Less(t, matches[0].DistanceMiles, matches[1].DistanceMiles)
}

func TestProximityService_FindNearby_BoundaryDistanceIncluded(t *testing.T) {
	service, retailerRepo := newProximityServiceForTest(t)

	ctx := context.Background()
	origin := orb.Point{-86.158, 39.768}
	store := retailerAt("Edge Store", 39.85, -86.2)

	// A radius exactly equal to the store's distance keeps it in the result.
	exact := geo.DistanceMiles(origin, store.Point())

	retailerRepo.EXPECT().
		FindActive(ctx).
		Return([]*entity.Retailer{store}, nil)

	matches, err := service.FindNearby(ctx, usecase.NearbyQuery{
		Latitude:    39.768,
		Longitude:   -86.158,
		HasOrigin:   true,
		RadiusMiles: floatPtr(exact),
	})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Edge Store", matches[0].Retailer.Name)
}

func TestProximityService_FindNearby_LargerRadiusIsSuperset(t *testing.T) {
	service, retailerRepo := newProximityServiceForTest(t)

	ctx := context.Background()
	stores := []*entity.Retailer{
		retailerAt("A", 39.775, -86.158),
		retailerAt("B", 39.85, -86.2),
		retailerAt("C", 40.2, -86.5),
	}

	retailerRepo.EXPECT().
		FindActive(ctx).
		Return(stores, nil).Times(2)

	small, err := service.FindNearby(ctx, usecase.NearbyQuery{
		Latitude:    39.768,
		Longitude:   -86.158,
		HasOrigin:   true,
		RadiusMiles: floatPtr(5),
	})
	require.NoError(t, err)

	large, err := service.FindNearby(ctx, usecase.NearbyQuery{
		Latitude:    39.768,
		Longitude:   -86.158,
		HasOrigin:   true,
		RadiusMiles: floatPtr(50),
	})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(large), len(small))
	for i, match := range small {
		assert.Equal(t, match.Retailer.ID, large[i].Retailer.ID)
	}
}

func TestProximityService_FindNearby_EmptyResult(t *testing.T) {
	service, retailerRepo := newProximityServiceForTest(t)

	ctx := context.Background()

	retailerRepo.EXPECT().
		FindActive(ctx).
		Return([]*entity.Retailer{}, nil)

	matches, err := service.FindNearby(ctx, usecase.NearbyQuery{
		Latitude:  39.768,
		Longitude: -86.158,
		HasOrigin: true,
	})
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestProximityService_FindNearby_PositionPermissionDenied(t *testing.T) {
	service, _ := newProximityServiceForTest(t)

	_, err := service.FindNearby(context.Background(), usecase.NearbyQuery{
		PositionError: usecase.PositionErrorPermissionDenied,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPositionPermissionDenied)
}

func TestProximityService_FindNearby_PositionUnavailable(t *testing.T) {
	service, _ := newProximityServiceForTest(t)

	_, err := service.FindNearby(context.Background(), usecase.NearbyQuery{
		PositionError: usecase.PositionErrorUnavailable,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPositionUnavailable)
}

func TestProximityService_FindNearby_MissingOrigin(t *testing.T) {
	service, _ := newProximityServiceForTest(t)

	_, err := service.FindNearby(context.Background(), usecase.NearbyQuery{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProximityService_FindNearby_InvalidCoordinates(t *testing.T) {
	service, _ := newProximityServiceForTest(t)

	_, err := service.FindNearby(context.Background(), usecase.NearbyQuery{
		Latitude:  91,
		Longitude: 0,
		HasOrigin: true,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
}

func TestProximityService_FindNearby_InvalidRadius(t *testing.T) {
	service, _ := newProximityServiceForTest(t)

	cases := []struct {
		name   string
		radius float64
	}{
		{"zero", 0},
		{"negative", -5},
		{"nan", math.NaN()},
		{"infinite", math.Inf(1)},
		{"above maximum", 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.FindNearby(context.Background(), usecase.NearbyQuery{
				Latitude:    39.768,
				Longitude:   -86.158,
				HasOrigin:   true,
				RadiusMiles: floatPtr(tc.radius),
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidRadius)
		})
	}
}

func TestProximityService_FindNearby_RepositoryError(t *testing.T) {
	service, retailerRepo := newProximityServiceForTest(t)

	ctx := context.Background()

	retailerRepo.EXPECT().
		FindActive(ctx).
		Return(nil, errors.New("connection refused"))

	matches, err := service.FindNearby(ctx, usecase.NearbyQuery{
		Latitude:  39.768,
		Longitude: -86.158,
		HasOrigin: true,
	})
	require.Error(t, err)
	assert.Nil(t, matches)
}
