package menu

import (
	"context"
	"errors"

	"Trattoria-Backend/domain"
	"Trattoria-Backend/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// menuSupabaseRepository talks to the hosted Postgres backend over a plain
// pgx pool. Same tables and columns as the GORM adapter, so the two are
// interchangeable at deployment time.
type menuSupabaseRepository struct {
	pool *pgxpool.Pool
}

func NewMenuSupabaseRepository(pool *pgxpool.Pool) MenuRepository {
	return &menuSupabaseRepository{pool: pool}
}

func (r *menuSupabaseRepository) ListCategories(ctx context.Context) ([]entities.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, name, display_order FROM categories
		ORDER BY display_order ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []entities.Category
	for rows.Next() {
		var id, name string
		var displayOrder int
		if err := rows.Scan(&id, &name, &displayOrder); err != nil {
			return nil, err
		}
		categoryID, err := uuid.Parse(id)
		if err != nil {
			return nil, err
		}
		categories = append(categories, entities.Category{
			ID:           categoryID,
			Name:         name,
			DisplayOrder: displayOrder,
		})
	}
	return categories, rows.Err()
}

func (r *menuSupabaseRepository) GetCategoryByID(ctx context.Context, id string) (*entities.Category, error) {
	var category entities.Category
	var rawID string
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, name, display_order FROM categories
		WHERE id = $1`,
		id,
	).Scan(&rawID, &category.Name, &category.DisplayOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	category.ID, err = uuid.Parse(rawID)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *menuSupabaseRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO categories (id, name, display_order)
		VALUES ($1, $2, $3)`,
		category.ID, category.Name, category.DisplayOrder,
	)
	return err
}

func (r *menuSupabaseRepository) DeleteCategoryCascade(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	if _, err := tx.Exec(ctx, `DELETE FROM menu_items WHERE category_id = $1`, id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

const menuItemColumns = `
	mi.id::text, mi.name, mi.price, mi.description, mi.is_special, mi.image, mi.created_at,
	c.id::text, c.name, c.display_order`

func scanMenuItem(rows pgx.Rows) (entities.MenuItem, error) {
	var item entities.MenuItem
	var category entities.Category
	var itemID, categoryID string
	if err := rows.Scan(
		&itemID, &item.Name, &item.Price, &item.Description,
		&item.IsSpecial, &item.Image, &item.CreatedAt,
		&categoryID, &category.Name, &category.DisplayOrder,
	); err != nil {
		return entities.MenuItem{}, err
	}

	var err error
	if item.ID, err = uuid.Parse(itemID); err != nil {
		return entities.MenuItem{}, err
	}
	if category.ID, err = uuid.Parse(categoryID); err != nil {
		return entities.MenuItem{}, err
	}
	item.CategoryID = category.ID
	item.Category = &category
	return item, nil
}

func (r *menuSupabaseRepository) queryMenuItems(ctx context.Context, query string, args ...any) ([]entities.MenuItem, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entities.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *menuSupabaseRepository) ListMenuItems(ctx context.Context) ([]entities.MenuItem, error) {
	return r.queryMenuItems(ctx, `
		SELECT `+menuItemColumns+`
		FROM menu_items mi
		JOIN categories c ON c.id = mi.category_id
		ORDER BY mi.created_at ASC`,
	)
}

func (r *menuSupabaseRepository) ListMenuItemsByCategory(ctx context.Context, categoryID string) ([]entities.MenuItem, error) {
	return r.queryMenuItems(ctx, `
		SELECT `+menuItemColumns+`
		FROM menu_items mi
		JOIN categories c ON c.id = mi.category_id
		WHERE mi.category_id = $1
		ORDER BY mi.created_at ASC`,
		categoryID,
	)
}

func (r *menuSupabaseRepository) GetMenuItemByID(ctx context.Context, id string) (*entities.MenuItem, error) {
	items, err := r.queryMenuItems(ctx, `
		SELECT `+menuItemColumns+`
		FROM menu_items mi
		JOIN categories c ON c.id = mi.category_id
		WHERE mi.id = $1`,
		id,
	)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrMenuItemNotFound
	}
	return &items[0], nil
}

func (r *menuSupabaseRepository) CreateMenuItem(ctx context.Context, item *entities.MenuItem) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO menu_items (id, name, category_id, price, description, is_special, image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		item.ID, item.Name, item.CategoryID, item.Price,
		item.Description, item.IsSpecial, item.Image, item.CreatedAt,
	)
	return err
}

func (r *menuSupabaseRepository) UpdateMenuItem(ctx context.Context, item *entities.MenuItem) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE menu_items
		SET name = $2, category_id = $3, price = $4, description = $5, is_special = $6, image = $7
		WHERE id = $1`,
		item.ID, item.Name, item.CategoryID, item.Price,
		item.Description, item.IsSpecial, item.Image,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}

func (r *menuSupabaseRepository) DeleteMenuItem(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}

func (r *menuSupabaseRepository) GetSettings(ctx context.Context) (*entities.Settings, error) {
	var settings entities.Settings
	var rawID string
	err := r.pool.QueryRow(ctx, `
		SELECT id::text, show_prices, updated_at FROM settings
		LIMIT 1`,
	).Scan(&rawID, &settings.ShowPrices, &settings.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, err
	}
	settings.ID, err = uuid.Parse(rawID)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *menuSupabaseRepository) SaveSettings(ctx context.Context, settings *entities.Settings) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO settings (id, show_prices, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET show_prices = EXCLUDED.show_prices, updated_at = EXCLUDED.updated_at`,
		settings.ID, settings.ShowPrices, settings.UpdatedAt,
	)
	return err
}
