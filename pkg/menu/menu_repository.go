package menu

import (
	"context"
	"errors"

	"Trattoria-Backend/domain"
	"Trattoria-Backend/entities"

	"gorm.io/gorm"
)

type (
	// MenuRepository covers categories, menu items and the settings
	// singleton. Two implementations exist: GORM over Postgres and pgx over
	// the hosted backend; both translate their driver's not-found into the
	// domain sentinels so services never see driver errors.
	MenuRepository interface {
		ListCategories(ctx context.Context) ([]entities.Category, error)
		GetCategoryByID(ctx context.Context, id string) (*entities.Category, error)
		CreateCategory(ctx context.Context, category *entities.Category) error
		DeleteCategoryCascade(ctx context.Context, id string) error

		ListMenuItems(ctx context.Context) ([]entities.MenuItem, error)
		ListMenuItemsByCategory(ctx context.Context, categoryID string) ([]entities.MenuItem, error)
		GetMenuItemByID(ctx context.Context, id string) (*entities.MenuItem, error)
		CreateMenuItem(ctx context.Context, item *entities.MenuItem) error
		UpdateMenuItem(ctx context.Context, item *entities.MenuItem) error
		DeleteMenuItem(ctx context.Context, id string) error

		GetSettings(ctx context.Context) (*entities.Settings, error)
		SaveSettings(ctx context.Context, settings *entities.Settings) error
	}

	menuRepository struct {
		db *gorm.DB
	}
)

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) ListCategories(ctx context.Context) ([]entities.Category, error) {
	var categories []entities.Category
	if err := r.db.WithContext(ctx).
		Order("display_order asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *menuRepository) GetCategoryByID(ctx context.Context, id string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *menuRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// DeleteCategoryCascade removes the category and every menu item that
// references it in one transaction, so a failed cascade never leaves
// orphaned items behind a deleted category.
func (r *menuRepository) DeleteCategoryCascade(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&entities.Category{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrCategoryNotFound
		}
		return tx.Where("category_id = ?", id).Delete(&entities.MenuItem{}).Error
	})
}

func (r *menuRepository) ListMenuItems(ctx context.Context) ([]entities.MenuItem, error) {
	var items []entities.MenuItem
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuRepository) ListMenuItemsByCategory(ctx context.Context, categoryID string) ([]entities.MenuItem, error) {
	var items []entities.MenuItem
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("category_id = ?", categoryID).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuRepository) GetMenuItemByID(ctx context.Context, id string) (*entities.MenuItem, error) {
	var item entities.MenuItem
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMenuItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) CreateMenuItem(ctx context.Context, item *entities.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuRepository) UpdateMenuItem(ctx context.Context, item *entities.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *menuRepository) DeleteMenuItem(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.MenuItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}

func (r *menuRepository) GetSettings(ctx context.Context) (*entities.Settings, error) {
	var settings entities.Settings
	if err := r.db.WithContext(ctx).First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, err
	}
	return &settings, nil
}

func (r *menuRepository) SaveSettings(ctx context.Context, settings *entities.Settings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
