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

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// CreateToken persists a newly registered device token.
func (repo *deviceRepository) CreateToken(ctx context.Context, token *entity.DeviceToken) error {
	tokenM := fromDeviceTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateToken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("missing required token fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device token")
	}

	// Update the entity with generated values
	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt
	token.UpdatedAt = tokenM.UpdatedAt

	return nil
}

// FindTokenByID retrieves a token by its unique ID, enabled or not.
func (repo *deviceRepository) FindTokenByID(ctx context.Context, id uuid.UUID) (*entity.DeviceToken, error) {
	var tokenM model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find device token by ID")
	}

	return toDeviceTokenDomain(&tokenM), nil
}

// FindEligibleTokens retrieves enabled tokens matching the filter, in
// registration order.
func (repo *deviceRepository) FindEligibleTokens(ctx context.Context, filter repository.TokenFilter) ([]*entity.DeviceToken, error) {
	var tokenModels []*model.DeviceTokenModel

	query := repo.db.WithContext(ctx).
		Where("enabled = ?", true).
		Order("created_at ASC")

	if len(filter.Platforms) > 0 {
		query = query.Where("platform IN ?", filter.Platforms)
	}
	if filter.DeviceID != "" {
		query = query.Where("device_id = ?", filter.DeviceID)
	}
	if filter.TokenID != nil {
		query = query.Where("id = ?", *filter.TokenID)
	}

	if err := query.Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find eligible device tokens")
	}

	tokens := make([]*entity.DeviceToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, toDeviceTokenDomain(tokenM))
	}

	return tokens, nil
}

// ListTokens retrieves all tokens, including disabled ones, for diagnostics.
func (repo *deviceRepository) ListTokens(ctx context.Context, limit, offset int) ([]*entity.DeviceToken, error) {
	var tokenModels []*model.DeviceTokenModel

	query := repo.db.WithContext(ctx).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list device tokens")
	}

	tokens := make([]*entity.DeviceToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, toDeviceTokenDomain(tokenM))
	}

	return tokens, nil
}

// DisableToken clears the enabled flag. Disabling an already-disabled token
// is a no-op, and a missing row is also treated as success so that repeated
// rejections from the push provider stay idempotent.
func (repo *deviceRepository) DisableToken(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceTokenModel{}).
		Where("id = ?", id).
		Update("enabled", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to disable device token")
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceTokenDomain converts a GORM DeviceTokenModel to a domain DeviceToken entity.
func toDeviceTokenDomain(data *model.DeviceTokenModel) *entity.DeviceToken {
	if data == nil {
		return nil
	}

	return &entity.DeviceToken{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		FCMToken:  data.FCMToken,
		Endpoint:  data.Endpoint,
		P256dh:    data.P256dh,
		Auth:      data.Auth,
		Enabled:   data.Enabled,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromDeviceTokenDomain converts a domain DeviceToken entity to a GORM DeviceTokenModel.
func fromDeviceTokenDomain(data *entity.DeviceToken) *model.DeviceTokenModel {
	if data == nil {
		return nil
	}

	return &model.DeviceTokenModel{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		FCMToken:  data.FCMToken,
		Endpoint:  data.Endpoint,
		P256dh:    data.P256dh,
		Auth:      data.Auth,
		Enabled:   data.Enabled,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
