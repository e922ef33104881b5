package impl

import (
	"context"
	"testing"
	"time"

	"guildhall/internal/domain/entity"
	domainerrors "guildhall/internal/domain/errors"
	"guildhall/internal/domain/service"
	mockRepo "guildhall/internal/mocks/repository"
	"guildhall/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNotificationServiceForTest(t *testing.T) (usecase.NotificationUsecase, *mockRepo.MockPlayerRepository, *mockRepo.MockNotificationRepository) {
	t.Helper()

	playerRepo := mockRepo.NewMockPlayerRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(NotificationServiceParams{
		PlayerRepo:       playerRepo,
		NotificationRepo: notificationRepo,
	})

	return service, playerRepo, notificationRepo
}

func TestNotificationService_ListNotifications_Success(t *testing.T) {
	service, playerRepo, notificationRepo := newNotificationServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()

	playerRepo.EXPECT().
		FindByID(ctx, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	notificationRepo.EXPECT().
		FindByPlayer(ctx, playerID).
		Return([]*entity.PlayerNotification{
			{ID: uuid.New(), PlayerID: playerID, Type: entity.NotificationTypeRetailerConnected},
		}, nil)

	notifications, err := service.ListNotifications(ctx, authID, playerID)
	require.NoError(t, err)
	assert.Len(t, notifications, 1)
}

func TestNotificationService_ListNotifications_OwnershipViolation(t *testing.T) {
	service, playerRepo, _ := newNotificationServiceForTest(t)

	ctx := context.Background()
	playerID := uuid.New()

	playerRepo.EXPECT().
		FindByID(ctx, playerID).
		Return(ownedPlayer(uuid.New(), playerID), nil)

	notifications, err := service.ListNotifications(ctx, uuid.New(), playerID)
	require.Error(t, err)
	assert.Nil(t, notifications)
	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}

func TestNotificationService_MarkRead_Success(t *testing.T) {
	service, playerRepo, notificationRepo := newNotificationServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()
	notificationID := uuid.New()

	playerRepo.EXPECT().
		FindByID(ctx, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	notificationRepo.EXPECT().
		FindByPlayer(ctx, playerID).
		Return([]*entity.PlayerNotification{
			{ID: notificationID, PlayerID: playerID},
		}, nil)

	notificationRepo.EXPECT().
		MarkRead(ctx, notificationID).
		Return(nil)

	err := service.MarkRead(ctx, authID, playerID, notificationID)
	require.NoError(t, err)
}

func TestNotificationService_MarkRead_AlreadyReadIsIdempotent(t *testing.T) {
	service, playerRepo, notificationRepo := newNotificationServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()
	notificationID := uuid.New()
	readAt := time.Now().Add(-time.Hour)

	playerRepo.EXPECT().
		FindByID(ctx, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	notificationRepo.EXPECT().
		FindByPlayer(ctx, playerID).
		Return([]*entity.PlayerNotification{
			{ID: notificationID, PlayerID: playerID, ReadAt: &readAt},
		}, nil)

	err := service.MarkRead(ctx, authID, playerID, notificationID)
	require.NoError(t, err)
}

func TestNotificationService_MarkRead_UnknownNotification(t *testing.T) {
	service, playerRepo, notificationRepo := newNotificationServiceForTest(t)

	ctx := context.Background()
	authID := uuid.New()
	playerID := uuid.New()

	playerRepo.EXPECT().
		FindByID(ctx, playerID).
		Return(ownedPlayer(authID, playerID), nil)

	notificationRepo.EXPECT().
		FindByPlayer(ctx, playerID).
		Return([]*entity.PlayerNotification{}, nil)

	err := service.MarkRead(ctx, authID, playerID, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestNotificationService_RecordConnectionEvent_Connected(t *testing.T) {
	svc, _, notificationRepo := newNotificationServiceForTest(t)

	ctx := context.Background()
	playerID := uuid.New()

	notificationRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *entity.PlayerNotification) bool {
			return n.PlayerID == playerID &&
				n.Type == entity.NotificationTypeRetailerConnected &&
				n.Message == "You connected to Gryphon Games"
		})).
		Return(nil)

	err := svc.RecordConnectionEvent(ctx, &service.ConnectionEvent{
		EventID:      uuid.New().String(),
		PlayerID:     playerID.String(),
		RetailerID:   uuid.New().String(),
		RetailerName: "Gryphon Games",
		Action:       service.ConnectionActionConnected,
	})
	require.NoError(t, err)
}

func TestNotificationService_RecordConnectionEvent_Disconnected(t *testing.T) {
	svc, _, notificationRepo := newNotificationServiceForTest(t)

	ctx := context.Background()
	playerID := uuid.New()

	notificationRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *entity.PlayerNotification) bool {
			return n.Type == entity.NotificationTypeRetailerDisconnected &&
				n.Message == "You disconnected from Gryphon Games"
		})).
		Return(nil)

	err := svc.RecordConnectionEvent(ctx, &service.ConnectionEvent{
		EventID:      uuid.New().String(),
		PlayerID:     playerID.String(),
		RetailerID:   uuid.New().String(),
		RetailerName: "Gryphon Games",
		Action:       service.ConnectionActionDisconnected,
	})
	require.NoError(t, err)
}

func TestNotificationService_RecordConnectionEvent_InvalidPlayerID(t *testing.T) {
	svc, _, _ := newNotificationServiceForTest(t)

	err := svc.RecordConnectionEvent(context.Background(), &service.ConnectionEvent{
		EventID:  uuid.New().String(),
		PlayerID: "not-a-uuid",
		Action:   service.ConnectionActionConnected,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestNotificationService_RecordConnectionEvent_UnknownAction(t *testing.T) {
	svc, _, _ := newNotificationServiceForTest(t)

	err := svc.RecordConnectionEvent(context.Background(), &service.ConnectionEvent{
		EventID:  uuid.New().String(),
		PlayerID: uuid.New().String(),
		Action:   "renamed",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
