package postgres

import (
	"context"

	"minbar/internal/domain/entity"
	domainerrors "minbar/internal/domain/errors"
	"minbar/internal/domain/repository"
	"minbar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// prayerLogRepository implements the repository.PrayerLogRepository interface.
type prayerLogRepository struct {
	db *gorm.DB
}

// NewPrayerLogRepository is the constructor for prayerLogRepository.
func NewPrayerLogRepository(db *gorm.DB) repository.PrayerLogRepository {
	return &prayerLogRepository{
		db: db,
	}
}

// CreateLog records that a reminder for (prayer, day) was sent. A unique
// index on (prayer, day) backs the scheduler's once-per-day guarantee even
// when two worker instances race.
func (repo *prayerLogRepository) CreateLog(ctx context.Context, log *entity.PrayerNotificationLog) error {
	logM := fromPrayerLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Another instance won the race. The reminder is out either way.
			return nil
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create prayer notification log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// Exists reports whether a reminder for (prayer, day) was already recorded.
func (repo *prayerLogRepository) Exists(ctx context.Context, prayer, day string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PrayerNotificationLogModel{}).
		Where("prayer = ? AND day = ?", prayer, day).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check prayer notification log")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

// fromPrayerLogDomain converts a domain PrayerNotificationLog entity to its GORM model.
func fromPrayerLogDomain(data *entity.PrayerNotificationLog) *model.PrayerNotificationLogModel {
	if data == nil {
		return nil
	}

	return &model.PrayerNotificationLogModel{
		ID:             data.ID,
		Prayer:         data.Prayer,
		Day:            data.Day,
		NotificationID: data.NotificationID,
		CreatedAt:      data.CreatedAt,
	}
}
