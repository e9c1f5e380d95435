package postgres

import (
	"context"

	"minbar/internal/domain/entity"
	domainerrors "minbar/internal/domain/errors"
	"minbar/internal/domain/repository"
	"minbar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// outcomeRepository implements the repository.OutcomeRepository interface.
// The ledger is append-only, so only Create and List are implemented.
type outcomeRepository struct {
	db *gorm.DB
}

// NewOutcomeRepository is the constructor for outcomeRepository.
func NewOutcomeRepository(db *gorm.DB) repository.OutcomeRepository {
	return &outcomeRepository{
		db: db,
	}
}

// CreateOutcome appends one outcome row.
func (repo *outcomeRepository) CreateOutcome(ctx context.Context, outcome *entity.DeliveryOutcome) error {
	outcomeM := fromOutcomeDomain(outcome)

	if err := repo.db.WithContext(ctx).Create(outcomeM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery outcome")
	}

	outcome.ID = outcomeM.ID
	outcome.CreatedAt = outcomeM.CreatedAt

	return nil
}

// ListOutcomesByNotification retrieves the ledger rows for one notification
// in write order.
func (repo *outcomeRepository) ListOutcomesByNotification(ctx context.Context, notificationID uuid.UUID, limit, offset int) ([]*entity.DeliveryOutcome, error) {
	var outcomeModels []*model.DeliveryOutcomeModel

	query := repo.db.WithContext(ctx).
		Where("notification_id = ?", notificationID).
		Order("created_at ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&outcomeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list delivery outcomes")
	}

	outcomes := make([]*entity.DeliveryOutcome, 0, len(outcomeModels))
	for _, outcomeM := range outcomeModels {
		outcomes = append(outcomes, toOutcomeDomain(outcomeM))
	}

	return outcomes, nil
}

// --- Mapper Functions ---

// toOutcomeDomain converts a GORM DeliveryOutcomeModel to a domain DeliveryOutcome entity.
func toOutcomeDomain(data *model.DeliveryOutcomeModel) *entity.DeliveryOutcome {
	if data == nil {
		return nil
	}

	return &entity.DeliveryOutcome{
		ID:                data.ID,
		NotificationID:    data.NotificationID,
		TokenID:           data.TokenID,
		Platform:          data.Platform,
		Status:            data.Status,
		ProviderMessageID: data.ProviderMessageID,
		ErrorCode:         data.ErrorCode,
		ErrorMessage:      data.ErrorMessage,
		Endpoint:          data.Endpoint,
		EndpointHost:      data.EndpointHost,
		Browser:           data.Browser,
		Stage:             data.Stage,
		CreatedAt:         data.CreatedAt,
	}
}

// fromOutcomeDomain converts a domain DeliveryOutcome entity to a GORM DeliveryOutcomeModel.
func fromOutcomeDomain(data *entity.DeliveryOutcome) *model.DeliveryOutcomeModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryOutcomeModel{
		ID:                data.ID,
		NotificationID:    data.NotificationID,
		TokenID:           data.TokenID,
		Platform:          data.Platform,
		Status:            data.Status,
		ProviderMessageID: data.ProviderMessageID,
		ErrorCode:         data.ErrorCode,
		ErrorMessage:      data.ErrorMessage,
		Endpoint:          data.Endpoint,
		EndpointHost:      data.EndpointHost,
		Browser:           data.Browser,
		Stage:             data.Stage,
		CreatedAt:         data.CreatedAt,
	}
}
