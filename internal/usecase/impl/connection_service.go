// Package impl provides the concrete application services behind the
// usecase interfaces.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"guildhall/config"
	"guildhall/internal/domain/entity"
	domainerrors "guildhall/internal/domain/errors"
	"guildhall/internal/domain/repository"
	"guildhall/internal/domain/service"
	"guildhall/internal/infra/metrics"
	"guildhall/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultOperationTimeout  = 10 * time.Second
	defaultAvailablePageSize = 10
	defaultCacheTTL          = 5 * time.Minute
)

type connectionService struct {
	playerRepo     repository.PlayerRepository
	retailerRepo   repository.RetailerRepository
	connectionRepo repository.ConnectionRepository
	cache          service.CacheStore
	publisher      service.EventPublisher
	metrics        *metrics.Metrics
	config         *config.Config
	logger         *slog.Logger
}

// ConnectionServiceParams holds dependencies for ConnectionService, injected by Fx.
type ConnectionServiceParams struct {
	fx.In

	PlayerRepo     repository.PlayerRepository
	RetailerRepo   repository.RetailerRepository
	ConnectionRepo repository.ConnectionRepository
	Cache          service.CacheStore
	Publisher      service.EventPublisher
	Metrics        *metrics.Metrics
	Config         *config.Config
	Logger         *slog.Logger
}

// NewConnectionService creates a new connection service instance
func NewConnectionService(params ConnectionServiceParams) usecase.ConnectionUsecase {
	return &connectionService{
		playerRepo:     params.PlayerRepo,
		retailerRepo:   params.RetailerRepo,
		connectionRepo: params.ConnectionRepo,
		cache:          params.Cache,
		publisher:      params.Publisher,
		metrics:        params.Metrics,
		config:         params.Config,
		logger:         params.Logger,
	}
}

// ListConnected retrieves the retailers the player is actively connected to.
func (s *connectionService) ListConnected(ctx context.Context, authID, playerID uuid.UUID) ([]*entity.Retailer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout())
	defer cancel()

	if _, err := s.verifyOwnership(ctx, authID, playerID); err != nil {
		return nil, err
	}

	cacheKey := connectedCacheKey(playerID)
	if cached, ok := s.cacheGet(ctx, cacheKey); ok {
		var retailers []*entity.Retailer
		if err := json.Unmarshal(cached, &retailers); err == nil {
			return retailers, nil
		}
	}

	retailers, err := s.connectionRepo.FindConnectedRetailers(ctx, playerID)
	if err != nil {
		return nil, s.wrapStorageErr(ctx, err, "failed to find connected retailers")
	}

	s.cacheSet(ctx, cacheKey, retailers)

	return retailers, nil
}

// ListAvailable retrieves active retailers the player is not connected to,
// filtered and capped at the configured page size.
func (s *connectionService) ListAvailable(ctx context.Context, authID, playerID uuid.UUID, filter string) ([]*entity.Retailer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout())
	defer cancel()

	if _, err := s.verifyOwnership(ctx, authID, playerID); err != nil {
		return nil, err
	}

	// Only the unfiltered listing is cached; filtered variants would need
	// pattern invalidation.
	var cacheKey string
	if filter == "" {
		cacheKey = availableCacheKey(playerID)
		if cached, ok := s.cacheGet(ctx, cacheKey); ok {
			var retailers []*entity.Retailer
			if err := json.Unmarshal(cached, &retailers); err == nil {
				return retailers, nil
			}
		}
	}

	retailers, err := s.retailerRepo.FindAvailableForPlayer(ctx, playerID, filter, s.availablePageSize())
	if err != nil {
		return nil, s.wrapStorageErr(ctx, err, "failed to find available retailers")
	}

	if cacheKey != "" {
		s.cacheSet(ctx, cacheKey, retailers)
	}

	return retailers, nil
}

// Connect creates or reactivates the player's link to a retailer.
func (s *connectionService) Connect(ctx context.Context, authID, playerID, retailerID uuid.UUID) (*entity.PlayerRetailerConnection, error) {
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout())
	defer cancel()

	if _, err := s.verifyOwnership(ctx, authID, playerID); err != nil {
		s.countConnection("connect", "error")

		return nil, err
	}

	retailer, err := s.retailerRepo.FindByID(ctx, retailerID)
	if err != nil {
		s.countConnection("connect", "error")
		if errors.Is(err, repository.ErrRetailerNotFound) {
			return nil, domainerrors.ErrRetailerNotFound
		}

		return nil, s.wrapStorageErr(ctx, err, "failed to find retailer")
	}
	if retailer.Status != entity.RetailerStatusActive {
		s.countConnection("connect", "error")

		return nil, domainerrors.ErrRetailerNotFound
	}

	conn, err := s.upsertConnection(ctx, playerID, retailerID)
	if err != nil {
		s.countConnection("connect", "error")

		return nil, err
	}

	s.countConnection("connect", "success")
	s.invalidateCaches(ctx, playerID)
	s.publishEvent(ctx, playerID, retailerID, retailer.Name, service.ConnectionActionConnected)

	return conn, nil
}

// upsertConnection finds or creates the edge and makes it active. The
// unique (player_id, retailer_id) index collapses concurrent inserts, so a
// duplicate-key failure means another request won the race and the edge
// can be re-read.
func (s *connectionService) upsertConnection(ctx context.Context, playerID, retailerID uuid.UUID) (*entity.PlayerRetailerConnection, error) {
	existing, err := s.connectionRepo.FindConnection(ctx, playerID, retailerID)
	if err != nil && !errors.Is(err, repository.ErrConnectionNotFound) {
		return nil, s.wrapStorageErr(ctx, err, "failed to find connection")
	}

	if existing != nil {
		if existing.Active() {
			return existing, nil
		}
		if err := s.connectionRepo.UpdateConnectionStatus(ctx, existing.ID, entity.ConnectionStatusActive); err != nil {
			return nil, s.wrapStorageErr(ctx, err, "failed to reactivate connection")
		}
		existing.Status = entity.ConnectionStatusActive
		existing.UpdatedAt = time.Now()

		return existing, nil
	}

	conn := &entity.PlayerRetailerConnection{
		PlayerID:   playerID,
		RetailerID: retailerID,
		Status:     entity.ConnectionStatusActive,
	}
	if err := s.connectionRepo.CreateConnection(ctx, conn); err != nil {
		if errors.Is(err, repository.ErrDuplicateConnection) {
			raced, findErr := s.connectionRepo.FindConnection(ctx, playerID, retailerID)
			if findErr != nil {
				return nil, s.wrapStorageErr(ctx, findErr, "failed to find connection after duplicate insert")
			}
			if !raced.Active() {
				if err := s.connectionRepo.UpdateConnectionStatus(ctx, raced.ID, entity.ConnectionStatusActive); err != nil {
					return nil, s.wrapStorageErr(ctx, err, "failed to reactivate connection")
				}
				raced.Status = entity.ConnectionStatusActive
			}

			return raced, nil
		}

		return nil, s.wrapStorageErr(ctx, err, "failed to create connection")
	}

	return conn, nil
}

// Disconnect deactivates the player's link to a retailer.
func (s *connectionService) Disconnect(ctx context.Context, authID, playerID, retailerID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout())
	defer cancel()

	if _, err := s.verifyOwnership(ctx, authID, playerID); err != nil {
		s.countConnection("disconnect", "error")

		return err
	}

	conn, err := s.connectionRepo.FindConnection(ctx, playerID, retailerID)
	if err != nil {
		if errors.Is(err, repository.ErrConnectionNotFound) {
			// Nothing to disconnect; success by idempotence.
			s.countConnection("disconnect", "success")

			return nil
		}
		s.countConnection("disconnect", "error")

		return s.wrapStorageErr(ctx, err, "failed to find connection")
	}

	if !conn.Active() {
		s.countConnection("disconnect", "success")

		return nil
	}

	if err := s.connectionRepo.UpdateConnectionStatus(ctx, conn.ID, entity.ConnectionStatusInactive); err != nil {
		s.countConnection("disconnect", "error")

		return s.wrapStorageErr(ctx, err, "failed to deactivate connection")
	}

	s.countConnection("disconnect", "success")
	s.invalidateCaches(ctx, playerID)

	retailerName := ""
	if retailer, err := s.retailerRepo.FindByID(ctx, retailerID); err == nil {
		retailerName = retailer.Name
	}
	s.publishEvent(ctx, playerID, retailerID, retailerName, service.ConnectionActionDisconnected)

	return nil
}

// verifyOwnership checks the target player belongs to the authenticated
// subject. A mismatch is fatal before any write happens.
func (s *connectionService) verifyOwnership(ctx context.Context, authID, playerID uuid.UUID) (*entity.Player, error) {
	return verifyPlayerOwnership(ctx, s.playerRepo, authID, playerID)
}

func (s *connectionService) publishEvent(ctx context.Context, playerID, retailerID uuid.UUID, retailerName, action string) {
	event := &service.ConnectionEvent{
		EventID:      uuid.New().String(),
		PlayerID:     playerID.String(),
		RetailerID:   retailerID.String(),
		RetailerName: retailerName,
		Action:       action,
	}

	// Event delivery is best-effort; the write already committed.
	if err := s.publisher.PublishConnectionEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish connection event",
			slog.String("event_id", event.EventID),
			slog.String("action", action),
			slog.String("error", err.Error()),
		)
	}
}

func (s *connectionService) invalidateCaches(ctx context.Context, playerID uuid.UUID) {
	keys := []string{connectedCacheKey(playerID), availableCacheKey(playerID)}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.Warn("failed to invalidate connection caches",
			slog.String("player_id", playerID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func (s *connectionService) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	val, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache lookup failed", slog.String("key", key), slog.String("error", err.Error()))

		return nil, false
	}
	if ok {
		s.metrics.CacheHits.WithLabelValues("hit").Inc()
	} else {
		s.metrics.CacheHits.WithLabelValues("miss").Inc()
	}

	return val, ok
}

func (s *connectionService) cacheSet(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cacheTTL()); err != nil {
		s.logger.Warn("cache store failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// wrapStorageErr converts a repository failure into the domain's typed
// storage error, surfacing timeouts distinctly.
func (s *connectionService) wrapStorageErr(ctx context.Context, err error, msg string) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return domainerrors.ErrStorageTimeout
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.NewDatabaseExecuteError(err, msg)
}

func (s *connectionService) countConnection(action, result string) {
	s.metrics.ConnectionOps.WithLabelValues(action, result).Inc()
}

func (s *connectionService) operationTimeout() time.Duration {
	if s.config.Connections != nil && s.config.Connections.OperationTimeout > 0 {
		return s.config.Connections.OperationTimeout
	}

	return defaultOperationTimeout
}

func (s *connectionService) availablePageSize() int {
	if s.config.Connections != nil && s.config.Connections.AvailablePageSize > 0 {
		return s.config.Connections.AvailablePageSize
	}

	return defaultAvailablePageSize
}

func (s *connectionService) cacheTTL() time.Duration {
	if s.config.Connections != nil && s.config.Connections.CacheTTL > 0 {
		return s.config.Connections.CacheTTL
	}

	return defaultCacheTTL
}

func connectedCacheKey(playerID uuid.UUID) string {
	return "connections:connected:" + playerID.String()
}

func availableCacheKey(playerID uuid.UUID) string {
	return "connections:available:" + playerID.String()
}
