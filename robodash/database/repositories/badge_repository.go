package repositories

import (
	"context"
	"time"

	"github.com/mascotlabs/robodash/robodash/database/models"
	"github.com/uptrace/bun"
)

type BadgeRepository interface {
	GetByUser(ctx context.Context, userID string) ([]*models.UserBadge, error)
	Has(ctx context.Context, userID, badgeID string) (bool, error)
	Insert(ctx context.Context, badge *models.UserBadge) (bool, error)
	Delete(ctx context.Context, userID, badgeID string) (bool, error)
}

type badgeRepository struct {
	db *bun.DB
}

func NewBadgeRepository(db *bun.DB) BadgeRepository {
	return &badgeRepository{db: db}
}

func (r *badgeRepository) GetByUser(ctx context.Context, userID string) ([]*models.UserBadge, error) {
	var badges []*models.UserBadge
	err := r.db.NewSelect().
		Model(&badges).
		Where("user_id = ?", userID).
		Order("date_awarded ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return badges, nil
}

func (r *badgeRepository) Has(ctx context.Context, userID, badgeID string) (bool, error) {
	return r.db.NewSelect().
		Model((*models.UserBadge)(nil)).
		Where("user_id = ? AND badge_id = ?", userID, badgeID).
		Exists(ctx)
}

// Insert creates the award record. The unique (user_id, badge_id) index
// makes concurrent duplicate awards collapse to one row; the return value
// reports whether a row was actually created.
func (r *badgeRepository) Insert(ctx context.Context, badge *models.UserBadge) (bool, error) {
	if badge.DateAwarded.IsZero() {
		badge.DateAwarded = time.Now()
	}
	res, err := r.db.NewInsert().
		Model(badge).
		On("CONFLICT (user_id, badge_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *badgeRepository) Delete(ctx context.Context, userID, badgeID string) (bool, error) {
	res, err := r.db.NewDelete().
		Model((*models.UserBadge)(nil)).
		Where("user_id = ? AND badge_id = ?", userID, badgeID).
		Exec(ctx)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
