package shopping

import (
	"context"

	"dispensa-backend/entities"

	"gorm.io/gorm"
)

type (
	ShoppingRepository interface {
		GetEntries(ctx context.Context) ([]entities.ShoppingEntry, error)
		GetEntryByID(ctx context.Context, id string) (*entities.ShoppingEntry, error)
		SaveEntry(ctx context.Context, entry *entities.ShoppingEntry) error
		SaveEntries(ctx context.Context, entries []entities.ShoppingEntry) error
		DeleteEntry(ctx context.Context, id string) error
		DeleteChecked(ctx context.Context) (int64, error)
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

func (r *shoppingRepository) GetEntries(ctx context.Context) ([]entities.ShoppingEntry, error) {
	var entries []entities.ShoppingEntry
	if err := r.db.WithContext(ctx).Order("date_added asc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *shoppingRepository) GetEntryByID(ctx context.Context, id string) (*entities.ShoppingEntry, error) {
	var entry entities.ShoppingEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *shoppingRepository) SaveEntry(ctx context.Context, entry *entities.ShoppingEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// SaveEntries writes the whole merged list back; the list is read and
// written wholesale rather than row by row.
func (r *shoppingRepository) SaveEntries(ctx context.Context, entries []entities.ShoppingEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Save(&entries).Error
}

func (r *shoppingRepository) DeleteEntry(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ShoppingEntry{}).Error
}

func (r *shoppingRepository) DeleteChecked(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("checked = ?", true).Delete(&entities.ShoppingEntry{})
	return result.RowsAffected, result.Error
}
