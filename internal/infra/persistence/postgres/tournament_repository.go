package postgres

import (
	"context"
	"time"

	"guildhall/internal/domain/entity"
	domainerrors "guildhall/internal/domain/errors"
	"guildhall/internal/domain/repository"
	"guildhall/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tournamentRepository implements the repository.TournamentRepository interface.
type tournamentRepository struct {
	db *gorm.DB
}

// NewTournamentRepository is the constructor for tournamentRepository.
func NewTournamentRepository(db *gorm.DB) repository.TournamentRepository {
	return &tournamentRepository{
		db: db,
	}
}

// FindByID retrieves a tournament by its unique ID.
func (repo *tournamentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tournament, error) {
	var tournamentM model.TournamentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tournamentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTournamentNotFound
		}

		return nil, errors.Wrap(err, "failed to find tournament by ID")
	}

	return toTournamentDomain(&tournamentM), nil
}

// FindUpcoming retrieves tournaments whose start date is in the future.
func (repo *tournamentRepository) FindUpcoming(ctx context.Context) ([]*entity.Tournament, error) {
	var tournamentModels []*model.TournamentModel

	if err := repo.db.WithContext(ctx).
		Where("start_date > ?", time.Now()).
		Order("start_date ASC").
		Find(&tournamentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find upcoming tournaments")
	}

	tournaments := make([]*entity.Tournament, 0, len(tournamentModels))
	for _, tournamentM := range tournamentModels {
		tournaments = append(tournaments, toTournamentDomain(tournamentM))
	}

	return tournaments, nil
}

// CreateEntry persists a new tournament entry.
func (repo *tournamentRepository) CreateEntry(ctx context.Context, e *entity.TournamentEntry) error {
	entryM := fromEntryDomain(e)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEntry
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid tournament or player reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tournament entry")
	}

	e.ID = entryM.ID
	e.CreatedAt = entryM.CreatedAt
	e.UpdatedAt = entryM.UpdatedAt

	return nil
}

// FindEntry retrieves the entry for a (tournament, player) pair regardless of status.
func (repo *tournamentRepository) FindEntry(ctx context.Context, tournamentID, playerID uuid.UUID) (*entity.TournamentEntry, error) {
	var entryM model.TournamentEntryModel

	if err := repo.db.WithContext(ctx).
		Where("tournament_id = ? AND player_id = ?", tournamentID, playerID).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find tournament entry")
	}

	return toEntryDomain(&entryM), nil
}

// FindEntriesByPlayer retrieves the player's registered entries.
func (repo *tournamentRepository) FindEntriesByPlayer(ctx context.Context, playerID uuid.UUID) ([]*entity.TournamentEntry, error) {
	var entryModels []*model.TournamentEntryModel

	if err := repo.db.WithContext(ctx).
		Where("player_id = ? AND status = ?", playerID, entity.EntryStatusRegistered).
		Order("registration_date DESC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find entries by player")
	}

	tournamentEntries := make([]*entity.TournamentEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		tournamentEntries = append(tournamentEntries, toEntryDomain(entryM))
	}

	return tournamentEntries, nil
}

// CountRegistered counts registered entries for a tournament.
func (repo *tournamentRepository) CountRegistered(ctx context.Context, tournamentID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.TournamentEntryModel{}).
		Where("tournament_id = ? AND status = ?", tournamentID, entity.EntryStatusRegistered).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count registered entries")
	}

	return count, nil
}

// UpdateEntryStatus flips the status of an entry by ID.
func (repo *tournamentRepository) UpdateEntryStatus(ctx context.Context, id uuid.UUID, status string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TournamentEntryModel{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update entry status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEntryNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toTournamentDomain(data *model.TournamentModel) *entity.Tournament {
	if data == nil {
		return nil
	}

	return &entity.Tournament{
		ID:                   data.ID,
		GameSystemID:         data.GameSystemID,
		Title:                data.Title,
		Description:          data.Description,
		StartDate:            data.StartDate,
		EndDate:              data.EndDate,
		Location:             data.Location,
		Venue:                data.Venue,
		PrizePool:            data.PrizePool,
		MaxParticipants:      data.MaxParticipants,
		RegistrationDeadline: data.RegistrationDeadline,
		ImageURL:             data.ImageURL,
		IsFeatured:           data.IsFeatured,
		Status:               data.Status,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

func toEntryDomain(data *model.TournamentEntryModel) *entity.TournamentEntry {
	if data == nil {
		return nil
	}

	return &entity.TournamentEntry{
		ID:               data.ID,
		TournamentID:     data.TournamentID,
		PlayerID:         data.PlayerID,
		RegistrationDate: data.RegistrationDate,
		Status:           data.Status,
		FinalRank:        data.FinalRank,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromEntryDomain(data *entity.TournamentEntry) *model.TournamentEntryModel {
	if data == nil {
		return nil
	}

	return &model.TournamentEntryModel{
		ID:               data.ID,
		TournamentID:     data.TournamentID,
		PlayerID:         data.PlayerID,
		RegistrationDate: data.RegistrationDate,
		Status:           data.Status,
		FinalRank:        data.FinalRank,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
