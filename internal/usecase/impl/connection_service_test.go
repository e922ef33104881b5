package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"guildhall/config"
	"guildhall/internal/domain/entity"
	domainerrors "guildhall/internal/domain/errors"
	"guildhall/internal/domain/repository"
	"guildhall/internal/infra/metrics"
	mockRepo "guildhall/internal/mocks/repository"
	mockSvc "guildhall/internal/mocks/service"
	"guildhall/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type connectionServiceMocks struct {
	playerRepo     *mockRepo.MockPlayerRepository
	retailerRepo   *mockRepo.MockRetailerRepository
	connectionRepo *mockRepo.MockConnectionRepository
	cache          *mockSvc.MockCacheStore
	publisher      *mockSvc.MockEventPublisher
}

func newConnectionServiceForTest(t *testing.T) (usecase.ConnectionUsecase, *connectionServiceMocks) {
	t.Helper()

	m := &connectionServiceMocks{
		playerRepo:     mockRepo.NewMockPlayerRepository(t),
		retailerRepo:   mockRepo.NewMockRetailerRepository(t),
		connectionRepo: mockRepo.NewMockConnectionRepository(t),
		cache:          mockSvc.NewMockCacheStore(t),
		publisher:      mockSvc.NewMockEventPublisher(t),
	}

	service := NewConnectionService(ConnectionServiceParams{
		PlayerRepo:     m.playerRepo,
		RetailerRepo:   m.retailerRepo,
		ConnectionRepo: m.connectionRepo,
		Cache:          m.cache,
		Publisher:      m.publisher,
		Metrics:        metrics.New(),
		Config:         &config.Config{},
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, m
}

func ownedPlayer(authID, playerID uuid.UUID) *entity.Player {
	return &entity.Player{
		ID:     playerID,
		AuthID: authID,
		Alias:  "tabletop-tim",
		Status: entity.PlayerStatusActive,
	}
}

func activeRetailer(id uuid.UUID, name string) *entity.Retailer {
	return &entity.Retailer{
		ID:     id,
		Name:   name,
		Status: entity.RetailerStatusActive,
	}
}

func TestConnectionService_Connect_NewConnection(t *testing.T) {
	service, m := newConnectionServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()
	retailerID := uuid.New()

	m.playerRepo.EXPECT().
		FindByID(mock.Anything, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	m.retailerRepo.EXPECT().
		FindByID(mock.Anything, retailerID).
		Return(activeRetailer(retailerID, "Dragon's Hoard Games"), nil)

	m.connectionRepo.EXPECT().
		FindConnection(mock.Anything, playerID, retailerID).
		Return(nil, repository.ErrConnectionNotFound)

	m.connectionRepo.EXPECT().
		CreateConnection(mock.Anything, mock.AnythingOfType("*entity.PlayerRetailerConnection")).
		Return(nil)

	m.cache.EXPECT().
		Delete(mock.Anything, mock.Anything, mock.Anything).
		Return(nil)

	m.publisher.EXPECT().
		PublishConnectionEvent(mock.Anything, mock.AnythingOfType("*service.ConnectionEvent")).
		Return(nil)

	conn, err := service.Connect(ctx, authID, playerID, retailerID)
	require.NoError(t, err)
	assert.NotNil(t, conn)
	assert.Equal(t, playerID, conn.PlayerID)
	assert.Equal(t, retailerID, conn.RetailerID)
	assert.True(t, conn.Active())
}

func TestConnectionService_Connect_AlreadyConnected(t *testing.T) {
	service, m := newConnectionServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()
	retailerID := uuid.New()

	existing := &entity.PlayerRetailerConnection{
		ID:         uuid.New(),
		PlayerID:   playerID,
		RetailerID: retailerID,
		Status:     entity.ConnectionStatusActive,
	}

	m.playerRepo.EXPECT().
		FindByID(mock.Anything, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	m.retailerRepo.EXPECT().
		FindByID(mock.Anything, retailerID).
		Return(activeRetailer(retailerID, "Dragon's Hoard Games"), nil)

	m.connectionRepo.EXPECT().
		FindConnection(mock.Anything, playerID, retailerID).
		Return(existing, nil)

	m.cache.EXPECT().
		Delete(mock.Anything, mock.Anything, mock.Anything).
		Return(nil)

	m.publisher.EXPECT().
		PublishConnectionEvent(mock.Anything, mock.AnythingOfType("*service.ConnectionEvent")).
		Return(nil)

	conn, err := service.Connect(ctx, authID, playerID, retailerID)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, conn.ID)
	assert.True(t, conn.Active())
}

func TestConnectionService_Connect_ReactivatesInactiveEdge(t *testing.T) {
	service, m := newConnectionServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()
	retailerID := uuid.New()
	connID := uuid.New()

	existing := &entity.PlayerRetailerConnection{
		ID:         connID,
		PlayerID:   playerID,
		RetailerID: retailerID,
		Status:     entity.ConnectionStatusInactive,
	}

	m.playerRepo.EXPECT().
		FindByID(mock.Anything, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	m.retailerRepo.EXPECT().
		FindByID(mock.Anything, retailerID).
		Return(activeRetailer(retailerID, "Dragon's Hoard Games"), nil)

	m.connectionRepo.EXPECT().
		FindConnection(mock.Anything, playerID, retailerID).
		Return(existing, nil)

	m.connectionRepo.EXPECT().
		UpdateConnectionStatus(mock.Anything, connID, entity.ConnectionStatusActive).
		Return(nil)

	m.cache.EXPECT().
		Delete(mock.Anything, mock.Anything, mock.Anything).
		Return(nil)

	m.publisher.EXPECT().
		PublishConnectionEvent(mock.Anything, mock.AnythingOfType("*service.ConnectionEvent")).
		Return(nil)

	conn, err := service.Connect(ctx, authID, playerID, retailerID)
	require.NoError(t, err)
	assert.Equal(t, connID, conn.ID)
	assert.True(t, conn.Active())
}

func TestConnectionService_Connect_RecoversFromInsertRace(t *testing.T) {
	service, m := newConnectionServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()
	retailerID := uuid.New()

	raced := &entity.PlayerRetailerConnection{
		ID:         uuid.New(),
		PlayerID:   playerID,
		RetailerID: retailerID,
		Status:     entity.ConnectionStatusActive,
	}

	m.playerRepo.EXPECT().
		FindByID(mock.Anything, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	m.retailerRepo.EXPECT().
		FindByID(mock.Anything, retailerID).
		Return(activeRetailer(retailerID, "Dragon's Hoard Games"), nil)

	m.connectionRepo.EXPECT().
		FindConnection(mock.Anything, playerID, retailerID).
		Return(nil, repository.ErrConnectionNotFound).Once()

	m.connectionRepo.EXPECT().
		CreateConnection(mock.Anything, mock.AnythingOfType("*entity.PlayerRetailerConnection")).
		Return(repository.ErrDuplicateConnection)

	m.connectionRepo.EXPECT().
		FindConnection(mock.Anything, playerID, retailerID).
		Return(raced, nil).Once()

	m.cache.EXPECT().
		Delete(mock.Anything, mock.Anything, mock.Anything).
		Return(nil)

	m.publisher.EXPECT().
		PublishConnectionEvent(mock.Anything, mock.AnythingOfType("*service.ConnectionEvent")).
		Return(nil)

	conn, err := service.Connect(ctx, authID, playerID, retailerID)
	require.NoError(t, err)
	assert.Equal(t, raced.ID, conn.ID)
	assert.True(t, conn.Active())
}

func TestConnectionService_Connect_OwnershipViolation(t *testing.T) {
	service, m := newConnectionServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()
	retailerID := uuid.New()

	// The player exists but belongs to a different auth subject.
	m.playerRepo.EXPECT().
		FindByID(mock.Anything, playerID).
		Return(ownedPlayer(uuid.New(), playerID), nil)

	conn, err := service.Connect(ctx, authID, playerID, retailerID)
	require.Error(t, err)
	assert.Nil(t, conn)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}

func TestConnectionService_Connect_RetailerNotFound(t *testing.T) {
	service, m := newConnectionServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()
	retailerID := uuid.New()

	m.playerRepo.EXPECT().
		FindByID(mock.Anything, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	m.retailerRepo.EXPECT().
		FindByID(mock.Anything, retailerID).
		Return(nil, repository.ErrRetailerNotFound)

	conn, err := service.Connect(ctx, authID, playerID, retailerID)
	require.Error(t, err)
	assert.Nil(t, conn)
	assert.ErrorIs(t, err, domainerrors.ErrRetailerNotFound)
}

func TestConnectionService_Connect_InactiveRetailerRejected(t *testing.T) {
	service, m := newConnectionServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()
	retailerID := uuid.New()

	inactive := &entity.Retailer{
		ID:     retailerID,
		Name:   "Closed Shop",
		Status: "inactive",
	}

	m.playerRepo.EXPECT().
		FindByID(mock.Anything, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	m.retailerRepo.EXPECT().
		FindByID(mock.Anything, retailerID).
		Return(inactive, nil)

	conn, err := service.Connect(ctx, authID, playerID, retailerID)
	require.Error(t, err)
	assert.Nil(t, conn)
	assert.ErrorIs(t, err, domainerrors.ErrRetailerNotFound)
}

func TestConnectionService_Disconnect_ActiveEdge(t *testing.T) {
	service, m := newConnectionServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()
	retailerID := uuid.New()
	connID := uuid.New()

	active := &entity.PlayerRetailerConnection{
		ID:         connID,
		PlayerID:   playerID,
		RetailerID: retailerID,
		Status:     entity.ConnectionStatusActive,
	}

	m.playerRepo.EXPECT().
		FindByID(mock.Anything, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	m.connectionRepo.EXPECT().
		FindConnection(mock.Anything, playerID, retailerID).
		Return(active, nil)

	m.connectionRepo.EXPECT().
		UpdateConnectionStatus(mock.Anything, connID, entity.ConnectionStatusInactive).
		Return(nil)

	m.cache.EXPECT().
		Delete(mock.Anything, mock.Anything, mock.Anything).
		Return(nil)

	m.retailerRepo.EXPECT().
		FindByID(mock.Anything, retailerID).
		Return(activeRetailer(retailerID, "Dragon's Hoard Games"), nil)

	m.publisher.EXPECT().
		PublishConnectionEvent(mock.Anything, mock.AnythingOfType("*service.ConnectionEvent")).
		Return(nil)

	err := service.Disconnect(ctx, authID, playerID, retailerID)
	require.NoError(t, err)
}

func TestConnectionService_Disconnect_AbsentEdgeIsIdempotent(t *testing.T) {
	service, m := newConnectionServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()
	retailerID := uuid.New()

	m.playerRepo.EXPECT().
		FindByID(mock.Anything, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	m.connectionRepo.EXPECT().
		FindConnection(mock.Anything, playerID, retailerID).
		Return(nil, repository.ErrConnectionNotFound)

	err := service.Disconnect(ctx, authID, playerID, retailerID)
	require.NoError(t, err)
}

func TestConnectionService_Disconnect_TwiceIsIdempotent(t *testing.T) {
	service, m := newConnectionServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()
	retailerID := uuid.New()

	// Second disconnect sees the edge already flipped to inactive and
	// succeeds without writing anything.
	inactive := &entity.PlayerRetailerConnection{
		ID:         uuid.New(),
		PlayerID:   playerID,
		RetailerID: retailerID,
		Status:     entity.ConnectionStatusInactive,
	}

	m.playerRepo.EXPECT().
		FindByID(mock.Anything, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	m.connectionRepo.EXPECT().
		FindConnection(mock.Anything, playerID, retailerID).
		Return(inactive, nil)

	err := service.Disconnect(ctx, authID, playerID, retailerID)
	require.NoError(t, err)
}

func TestConnectionService_Disconnect_OwnershipViolation(t *testing.T) {
	service, m := newConnectionServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()
	retailerID := uuid.New()

	m.playerRepo.EXPECT().
		FindByID(mock.Anything, playerID).
		Return(ownedPlayer(uuid.New(), playerID), nil)

	err := service.Disconnect(ctx, authID, playerID, retailerID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}

func TestConnectionService_ListConnected_CacheMiss(t *testing.T) {
	service, m := newConnectionServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()

	retailers := []*entity.Retailer{
		activeRetailer(uuid.New(), "Alpha Games"),
		activeRetailer(uuid.New(), "Beta Boards"),
	}

	m.playerRepo.EXPECT().
		FindByID(mock.Anything, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	m.cache.EXPECT().
		Get(mock.Anything, connectedCacheKey(playerID)).
		Return(nil, false, nil)

	m.connectionRepo.EXPECT().
		FindConnectedRetailers(mock.Anything, playerID).
		Return(retailers, nil)

	m.cache.EXPECT().
		Set(mock.Anything, connectedCacheKey(playerID), mock.Anything, mock.Anything).
		Return(nil)

	result, err := service.ListConnected(ctx, authID, playerID)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Alpha Games", result[0].Name)
	assert.Equal(t, "Beta Boards", result[1].Name)
}

func TestConnectionService_ListConnected_CacheHit(t *testing.T) {
	service, m := newConnectionServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()

	cached := []*entity.Retailer{activeRetailer(uuid.New(), "Cached Games")}
	data, err := json.Marshal(cached)
	require.NoError(t, err)

	m.playerRepo.EXPECT().
		FindByID(mock.Anything, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	m.cache.EXPECT().
		Get(mock.Anything, connectedCacheKey(playerID)).
		Return(data, true, nil)

	// No repository call expected; the cached payload is served directly.
	result, err := service.ListConnected(ctx, authID, playerID)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Cached Games", result[0].Name)
}

func TestConnectionService_ListAvailable_FilteredBypassesCache(t *testing.T) {
	service, m := newConnectionServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()

	matches := []*entity.Retailer{activeRetailer(uuid.New(), "Smith Family Games")}

	m.playerRepo.EXPECT().
		FindByID(mock.Anything, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	m.retailerRepo.EXPECT().
		FindAvailableForPlayer(mock.Anything, playerID, "Smith", defaultAvailablePageSize).
		Return(matches, nil)

	result, err := service.ListAvailable(ctx, authID, playerID, "Smith")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Smith Family Games", result[0].Name)
}

func TestConnectionService_ListAvailable_UnfilteredIsCached(t *testing.T) {
	service, m := newConnectionServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()

	matches := []*entity.Retailer{activeRetailer(uuid.New(), "Open Table Games")}

	m.playerRepo.EXPECT().
		FindByID(mock.Anything, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	m.cache.EXPECT().
		Get(mock.Anything, availableCacheKey(playerID)).
		Return(nil, false, nil)

	m.retailerRepo.EXPECT().
		FindAvailableForPlayer(mock.Anything, playerID, "", defaultAvailablePageSize).
		Return(matches, nil)

	m.cache.EXPECT().
		Set(mock.Anything, availableCacheKey(playerID), mock.Anything, mock.Anything).
		Return(nil)

	result, err := service.ListAvailable(ctx, authID, playerID, "")
	require.NoError(t, err)
	require.Len(t, result, 1)
}

func TestConnectionService_ListConnected_StorageTimeout(t *testing.T) {
	service, m := newConnectionServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()

	m.playerRepo.EXPECT().
		FindByID(mock.Anything, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	m.cache.EXPECT().
		Get(mock.Anything, connectedCacheKey(playerID)).
		Return(nil, false, nil)

	m.connectionRepo.EXPECT().
		FindConnectedRetailers(mock.Anything, playerID).
		Return(nil, context.DeadlineExceeded)

	result, err := service.ListConnected(ctx, authID, playerID)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrStorageTimeout)
}

func TestConnectionService_ListConnected_PlayerNotFound(t *testing.T) {
	service, m := newConnectionServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()

	m.playerRepo.EXPECT().
		FindByID(mock.Anything, playerID).
		Return(nil, repository.ErrPlayerNotFound)

	result, err := service.ListConnected(ctx, authID, playerID)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrPlayerNotFound)
}
