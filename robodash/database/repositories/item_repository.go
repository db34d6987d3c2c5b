package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mascotlabs/robodash/robodash/database/models"
	"github.com/uptrace/bun"
)

type ItemRepository interface {
	GetByUser(ctx context.Context, userID string) ([]*models.UserItem, error)
	Get(ctx context.Context, userID, instanceID string) (*models.UserItem, error)
	Add(ctx context.Context, item *models.UserItem) error
	Purchase(ctx context.Context, item *models.UserItem, price int64) (int64, error)
	Equip(ctx context.Context, userID, mascotID, instanceID string) error
	Unequip(ctx context.Context, userID, mascotID, instanceID string) (bool, error)
	GetEquipment(ctx context.Context, userID, mascotID string) ([]*models.Equipment, error)
	GetUserEquipment(ctx context.Context, userID string) ([]*models.Equipment, error)
	IsEquipped(ctx context.Context, userID, instanceID string) (bool, error)
}

type itemRepository struct {
	db *bun.DB
}

func NewItemRepository(db *bun.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) GetByUser(ctx context.Context, userID string) ([]*models.UserItem, error) {
	var items []*models.UserItem
	err := r.db.NewSelect().
		Model(&items).
		Where("user_id = ?", userID).
		Order("obtained_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) Get(ctx context.Context, userID, instanceID string) (*models.UserItem, error) {
	item := new(models.UserItem)
	err := r.db.NewSelect().
		Model(item).
		Where("user_id = ? AND instance_id = ?", userID, instanceID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *itemRepository) Add(ctx context.Context, item *models.UserItem) error {
	if item.ObtainedAt.IsZero() {
		item.ObtainedAt = time.Now()
	}
	_, err := r.db.NewInsert().Model(item).Exec(ctx)
	return err
}

// Purchase debits the account and mints the instance in one transaction,
// returning the remaining balance.
func (r *itemRepository) Purchase(ctx context.Context, item *models.UserItem, price int64) (int64, error) {
	var remaining int64

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model((*models.Account)(nil)).
			Set("points = points - ?", price).
			Set("level = (points - ?) / ? + 1", price, models.PointsPerLevel).
			Set("updated_at = ?", time.Now()).
			Where("user_id = ? AND points >= ?", item.UserID, price).
			Exec(ctx)
		if err != nil {
			return err
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrInsufficientPoints
		}

		if item.ObtainedAt.IsZero() {
			item.ObtainedAt = time.Now()
		}
		if _, err := tx.NewInsert().Model(item).Exec(ctx); err != nil {
			return err
		}

		return tx.NewSelect().
			Model((*models.Account)(nil)).
			Column("points").
			Where("user_id = ?", item.UserID).
			Scan(ctx, &remaining)
	})
	if err != nil {
		return 0, err
	}
	return remaining, nil
}

// Equip revalidates capacity and exclusivity inside the transaction before
// inserting the assignment, so two racing equips cannot both pass.
func (r *itemRepository) Equip(ctx context.Context, userID, mascotID, instanceID string) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		count, err := tx.NewSelect().
			Model((*models.Equipment)(nil)).
			Where("user_id = ? AND mascot_id = ?", userID, mascotID).
			Count(ctx)
		if err != nil {
			return err
		}
		if count >= models.MaxEquippedPerMascot {
			return ErrMascotFull
		}

		equipped, err := tx.NewSelect().
			Model((*models.Equipment)(nil)).
			Where("user_id = ? AND instance_id = ?", userID, instanceID).
			Exists(ctx)
		if err != nil {
			return err
		}
		if equipped {
			return ErrAlreadyEquipped
		}

		assignment := &models.Equipment{
			UserID:     userID,
			MascotID:   mascotID,
			InstanceID: instanceID,
			EquippedAt: time.Now(),
		}
		_, err = tx.NewInsert().Model(assignment).Exec(ctx)
		return err
	})
}

func (r *itemRepository) Unequip(ctx context.Context, userID, mascotID, instanceID string) (bool, error) {
	res, err := r.db.NewDelete().
		Model((*models.Equipment)(nil)).
		Where("user_id = ? AND mascot_id = ? AND instance_id = ?", userID, mascotID, instanceID).
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

func (r *itemRepository) GetEquipment(ctx context.Context, userID, mascotID string) ([]*models.Equipment, error) {
	var equipment []*models.Equipment
	err := r.db.NewSelect().
		Model(&equipment).
		Where("user_id = ? AND mascot_id = ?", userID, mascotID).
		Order("equipped_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return equipment, nil
}

func (r *itemRepository) GetUserEquipment(ctx context.Context, userID string) ([]*models.Equipment, error) {
	var equipment []*models.Equipment
	err := r.db.NewSelect().
		Model(&equipment).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return equipment, nil
}

func (r *itemRepository) IsEquipped(ctx context.Context, userID, instanceID string) (bool, error) {
	return r.db.NewSelect().
		Model((*models.Equipment)(nil)).
		Where("user_id = ? AND instance_id = ?", userID, instanceID).
		Exists(ctx)
}
