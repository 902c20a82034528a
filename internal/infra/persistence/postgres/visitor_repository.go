package postgres

import (
	"context"

	domainerrors "saletafood/internal/domain/errors"
	"saletafood/internal/domain/repository"
	"saletafood/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// visitorRepository implements the repository.VisitorRepository interface
// using GORM. The counter is a singleton row; increments happen server-side
// in a single statement so concurrent calls never lose an update.
type visitorRepository struct {
	db *gorm.DB
}

// NewVisitorRepository is the constructor for visitorRepository.
func NewVisitorRepository(db *gorm.DB) repository.VisitorRepository {
	return &visitorRepository{db: db}
}

// Count returns the current visitor count, 0 when no row exists yet.
func (repo *visitorRepository) Count(ctx context.Context) (int64, error) {
	var visitorM model.VisitorModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		First(&visitorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}

		return 0, errors.Wrap(err, "failed to read visitor count")
	}

	return visitorM.Count, nil
}

// Increment atomically bumps the singleton counter and returns the new
// count. The update runs entirely in the database, so two concurrent calls
// serialize on the row instead of racing a read-modify-write cycle. When no
// row exists yet the first caller creates it with count 1.
func (repo *visitorRepository) Increment(ctx context.Context) (int64, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Raw(`UPDATE visitors SET count = count + 1
		     WHERE id = (SELECT id FROM visitors ORDER BY id LIMIT 1)
		     RETURNING count`).
		Scan(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to increment visitor count")
	}

	// No row updated: the table is empty. Seed the singleton row. A unique
	// race here at most inserts a second row once; Count and Increment both
	// address the first row only, preserving the singleton semantics.
	if count == 0 {
		var seeded model.VisitorModel
		if err := repo.db.WithContext(ctx).
			Raw(`INSERT INTO visitors (count) VALUES (1) RETURNING id, count`).
			Scan(&seeded).Error; err != nil {
			return 0, domainerrors.NewDatabaseExecuteError(err, "failed to seed visitor counter")
		}

		return seeded.Count, nil
	}

	return count, nil
}
