package impl

import (
	"context"
	"math"
	"sort"

	"guildhall/config"
	domainerrors "guildhall/internal/domain/errors"
	"guildhall/internal/domain/repository"
	"guildhall/internal/geo"
	"guildhall/internal/infra/metrics"
	"guildhall/internal/usecase"

	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

type proximityService struct {
	retailerRepo repository.RetailerRepository
	metrics      *metrics.Metrics
	config       *config.Config
}

// ProximityServiceParams holds dependencies for ProximityService, injected by Fx.
type ProximityServiceParams struct {
	fx.In

	RetailerRepo repository.RetailerRepository
	Metrics      *metrics.Metrics
	Config       *config.Config
}

// NewProximityService creates a new proximity search service instance
func NewProximityService(params ProximityServiceParams) usecase.ProximityUsecase {
	return &proximityService{
		retailerRepo: params.RetailerRepo,
		metrics:      params.Metrics,
		config:       params.Config,
	}
}

// FindNearby returns the active retailers within the query radius of the
// origin, sorted by distance ascending.
func (s *proximityService) FindNearby(ctx context.Context, query usecase.NearbyQuery) ([]*usecase.NearbyRetailer, error) {
	if err := s.validateQuery(query); err != nil {
		s.metrics.ProximitySearches.WithLabelValues("rejected").Inc()

		return nil, err
	}

	origin := orb.Point{query.Longitude, query.Latitude}
	radius := s.resolveRadius(query.RadiusMiles)

	retailers, err := s.retailerRepo.FindActive(ctx)
	if err != nil {
		s.metrics.ProximitySearches.WithLabelValues("error").Inc()

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load retailers for proximity search")
	}

	// Recomputed wholesale on every call. Boundary ties are inside.
	matches := make([]*usecase.NearbyRetailer, 0, len(retailers))
	for _, retailer := range retailers {
		distance := geo.DistanceMiles(origin, retailer.Point())
		if distance <= radius {
			matches = append(matches, &usecase.NearbyRetailer{
				Retailer:      retailer,
				DistanceMiles: distance,
			})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].DistanceMiles < matches[j].DistanceMiles
	})

	s.metrics.ProximitySearches.WithLabelValues("success").Inc()
	s.metrics.ProximityMatches.Observe(float64(len(matches)))

	return matches, nil
}

// validateQuery rejects position failures and malformed coordinates before
// any storage work happens.
func (s *proximityService) validateQuery(query usecase.NearbyQuery) error {
	if query.PositionError != "" {
		switch query.PositionError {
		case usecase.PositionErrorPermissionDenied:
			return domainerrors.ErrPositionPermissionDenied
		case usecase.PositionErrorUnavailable:
			return domainerrors.ErrPositionUnavailable
		default:
			return domainerrors.ErrValidationFailed.WrapMessage("unknown position error reason")
		}
	}

	if !query.HasOrigin {
		return domainerrors.ErrValidationFailed.WrapMessage("origin coordinates are required")
	}

	if !geo.Valid(orb.Point{query.Longitude, query.Latitude}) {
		return domainerrors.ErrInvalidCoordinates
	}

	if query.RadiusMiles != nil {
		radius := *query.RadiusMiles
		if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
			return domainerrors.ErrInvalidRadius
		}
		if max := s.maxRadius(); max > 0 && radius > max {
			return domainerrors.ErrInvalidRadius
		}
	}

	return nil
}

func (s *proximityService) resolveRadius(requested *float64) float64 {
	if requested != nil {
		return *requested
	}
	if s.config.Search != nil && s.config.Search.DefaultRadiusMiles > 0 {
		return s.config.Search.DefaultRadiusMiles
	}

	return geo.DefaultSearchRadiusMiles
}

func (s *proximityService) maxRadius() float64 {
	if s.config.Search != nil {
		return s.config.Search.MaxRadiusMiles
	}

	return 0
}
