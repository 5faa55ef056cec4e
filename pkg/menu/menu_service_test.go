package menu

import (
	"context"
	"errors"
	"sort"
	"testing"

	"Trattoria-Backend/domain"
	"Trattoria-Backend/entities"
)

type fakeMenuRepository struct {
	categories map[string]entities.Category
	items      map[string]entities.MenuItem
	settings   *entities.Settings
}

func newFakeMenuRepository() *fakeMenuRepository {
	return &fakeMenuRepository{
		categories: make(map[string]entities.Category),
		items:      make(map[string]entities.MenuItem),
	}
}

func (f *fakeMenuRepository) ListCategories(context.Context) ([]entities.Category, error) {
	var categories []entities.Category
	for _, c := range f.categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].DisplayOrder < categories[j].DisplayOrder
	})
	return categories, nil
}

func (f *fakeMenuRepository) GetCategoryByID(_ context.Context, id string) (*entities.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return &c, nil
}

func (f *fakeMenuRepository) CreateCategory(_ context.Context, category *entities.Category) error {
	f.categories[category.ID.String()] = *category
	return nil
}

func (f *fakeMenuRepository) DeleteCategoryCascade(_ context.Context, id string) error {
	if _, ok := f.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(f.categories, id)
	for itemID, item := range f.items {
		if item.CategoryID.String() == id {
			delete(f.items, itemID)
		}
	}
	return nil
}

func (f *fakeMenuRepository) joined(item entities.MenuItem) entities.MenuItem {
	if c, ok := f.categories[item.CategoryID.String()]; ok {
		category := c
		item.Category = &category
	}
	return item
}

func (f *fakeMenuRepository) ListMenuItems(context.Context) ([]entities.MenuItem, error) {
	var items []entities.MenuItem
	for _, item := range f.items {
		items = append(items, f.joined(item))
	}
	return items, nil
}

func (f *fakeMenuRepository) ListMenuItemsByCategory(_ context.Context, categoryID string) ([]entities.MenuItem, error) {
	var items []entities.MenuItem
	for _, item := range f.items {
		if item.CategoryID.String() == categoryID {
			items = append(items, f.joined(item))
		}
	}
	return items, nil
}

func (f *fakeMenuRepository) GetMenuItemByID(_ context.Context, id string) (*entities.MenuItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, domain.ErrMenuItemNotFound
	}
	joined := f.joined(item)
	return &joined, nil
}

func (f *fakeMenuRepository) CreateMenuItem(_ context.Context, item *entities.MenuItem) error {
	f.items[item.ID.String()] = *item
	return nil
}

func (f *fakeMenuRepository) UpdateMenuItem(_ context.Context, item *entities.MenuItem) error {
	if _, ok := f.items[item.ID.String()]; !ok {
		return domain.ErrMenuItemNotFound
	}
	f.items[item.ID.String()] = *item
	return nil
}

func (f *fakeMenuRepository) DeleteMenuItem(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrMenuItemNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeMenuRepository) GetSettings(context.Context) (*entities.Settings, error) {
	if f.settings == nil {
		return nil, domain.ErrSettingsNotFound
	}
	s := *f.settings
	return &s, nil
}

func (f *fakeMenuRepository) SaveSettings(_ context.Context, settings *entities.Settings) error {
	s := *settings
	f.settings = &s
	return nil
}

func mustCreateCategory(t *testing.T, svc MenuService, name string, order int) domain.CategoryResponse {
	t.Helper()
	res, err := svc.CreateCategory(context.Background(), domain.CreateCategoryRequest{
		Name:         name,
		DisplayOrder: order,
	})
	if err != nil {
		t.Fatalf("CreateCategory(%q): %v", name, err)
	}
	return res
}

func TestListCategoriesSortedByDisplayOrder(t *testing.T) {
	svc := NewMenuService(newFakeMenuRepository())

	mustCreateCategory(t, svc, "Desserts", 3)
	mustCreateCategory(t, svc, "Tea", 1)
	mustCreateCategory(t, svc, "Mains", 2)

	categories, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}

	got := make([]string, 0, len(categories))
	for _, c := range categories {
		got = append(got, c.Name)
	}
	want := []string{"Tea", "Mains", "Desserts"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("categories = %v, want %v", got, want)
		}
	}
}

func TestDeleteCategoryCascadesToMenuItems(t *testing.T) {
	svc := NewMenuService(newFakeMenuRepository())
	ctx := context.Background()

	drinks := mustCreateCategory(t, svc, "Drinks", 1)
	food := mustCreateCategory(t, svc, "Food", 2)

	for _, name := range []string{"Espresso", "Cappuccino", "Latte"} {
		if _, err := svc.CreateMenuItem(ctx, domain.MenuItemRequest{
			Name:     name,
			Category: drinks.ID,
		}); err != nil {
			t.Fatalf("CreateMenuItem(%q): %v", name, err)
		}
	}
	if _, err := svc.CreateMenuItem(ctx, domain.MenuItemRequest{
		Name:     "Margherita",
		Category: food.ID,
	}); err != nil {
		t.Fatalf("CreateMenuItem: %v", err)
	}

	if err := svc.DeleteCategory(ctx, drinks.ID); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}

	items, err := svc.ListMenuItems(ctx, "")
	if err != nil {
		t.Fatalf("ListMenuItems: %v", err)
	}
	for _, item := range items {
		if item.Category.ID == drinks.ID {
			t.Errorf("item %q still references deleted category", item.Name)
		}
	}
	if len(items) != 1 {
		t.Errorf("items remaining = %d, want 1", len(items))
	}
}

func TestDeleteCategoryUnknownID(t *testing.T) {
	svc := NewMenuService(newFakeMenuRepository())

	err := svc.DeleteCategory(context.Background(), "d7f9a9c2-4f6e-4d5a-9aeb-2f45c1a9f001")
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("DeleteCategory(unknown) = %v, want ErrCategoryNotFound", err)
	}

	err = svc.DeleteCategory(context.Background(), "not-a-uuid")
	if !errors.Is(err, domain.ErrParseUUID) {
		t.Errorf("DeleteCategory(bad id) = %v, want ErrParseUUID", err)
	}
}

func TestCreateMenuItemRequiresExistingCategory(t *testing.T) {
	svc := NewMenuService(newFakeMenuRepository())

	_, err := svc.CreateMenuItem(context.Background(), domain.MenuItemRequest{
		Name:     "Tiramisu",
		Category: "d7f9a9c2-4f6e-4d5a-9aeb-2f45c1a9f001",
	})
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("CreateMenuItem(unknown category) = %v, want ErrCategoryNotFound", err)
	}

	_, err = svc.CreateMenuItem(context.Background(), domain.MenuItemRequest{
		Name:     "Tiramisu",
		Category: "nope",
	})
	if !errors.Is(err, domain.ErrParseUUID) {
		t.Errorf("CreateMenuItem(bad category id) = %v, want ErrParseUUID", err)
	}
}

func TestCreateMenuItemReturnsJoinedCategory(t *testing.T) {
	svc := NewMenuService(newFakeMenuRepository())

	category := mustCreateCategory(t, svc, "Desserts", 1)
	item, err := svc.CreateMenuItem(context.Background(), domain.MenuItemRequest{
		Name:      "Tiramisu",
		Category:  category.ID,
		Price:     6.5,
		IsSpecial: true,
	})
	if err != nil {
		t.Fatalf("CreateMenuItem: %v", err)
	}
	if item.Category.Name != "Desserts" {
		t.Errorf("joined category = %q, want %q", item.Category.Name, "Desserts")
	}
	if item.Price != 6.5 || !item.IsSpecial {
		t.Errorf("item fields not persisted: %+v", item)
	}
	if item.CreatedAt.IsZero() {
		t.Error("item creation timestamp not set")
	}
}

func TestUpdateMenuItemNotFound(t *testing.T) {
	svc := NewMenuService(newFakeMenuRepository())
	category := mustCreateCategory(t, svc, "Drinks", 1)

	_, err := svc.UpdateMenuItem(
		context.Background(),
		"d7f9a9c2-4f6e-4d5a-9aeb-2f45c1a9f001",
		domain.MenuItemRequest{Name: "Espresso", Category: category.ID},
	)
	if !errors.Is(err, domain.ErrMenuItemNotFound) {
		t.Errorf("UpdateMenuItem(unknown) = %v, want ErrMenuItemNotFound", err)
	}
}

func TestUpdateMenuItemOverwritesFields(t *testing.T) {
	svc := NewMenuService(newFakeMenuRepository())
	ctx := context.Background()

	category := mustCreateCategory(t, svc, "Drinks", 1)
	created, err := svc.CreateMenuItem(ctx, domain.MenuItemRequest{
		Name:     "Espresso",
		Category: category.ID,
		Price:    2,
	})
	if err != nil {
		t.Fatalf("CreateMenuItem: %v", err)
	}

	updated, err := svc.UpdateMenuItem(ctx, created.ID, domain.MenuItemRequest{
		Name:        "Double Espresso",
		Category:    category.ID,
		Price:       3,
		Description: "two shots",
	})
	if err != nil {
		t.Fatalf("UpdateMenuItem: %v", err)
	}
	if updated.Name != "Double Espresso" || updated.Price != 3 || updated.Description != "two shots" {
		t.Errorf("updated item = %+v", updated)
	}
}

func TestSettingsDefaultPersistedOnFirstRead(t *testing.T) {
	repo := newFakeMenuRepository()
	svc := NewMenuService(repo)

	settings, err := svc.GetSettings(context.Background())
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if !settings.ShowPrices {
		t.Error("default settings should show prices")
	}
	if repo.settings == nil {
		t.Error("default settings were not persisted")
	}
}

func TestSettingsUpsertRoundTrip(t *testing.T) {
	svc := NewMenuService(newFakeMenuRepository())
	ctx := context.Background()

	hide := false
	if _, err := svc.UpdateSettings(ctx, domain.UpdateSettingsRequest{ShowPrices: &hide}); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}

	settings, err := svc.GetSettings(ctx)
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if settings.ShowPrices {
		t.Error("ShowPrices = true after setting false")
	}

	// Upsert is idempotent.
	if _, err := svc.UpdateSettings(ctx, domain.UpdateSettingsRequest{ShowPrices: &hide}); err != nil {
		t.Fatalf("UpdateSettings (repeat): %v", err)
	}
	settings, err = svc.GetSettings(ctx)
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if settings.ShowPrices {
		t.Error("ShowPrices = true after repeated upsert")
	}
}

func TestDeleteMenuItemUnknownID(t *testing.T) {
	svc := NewMenuService(newFakeMenuRepository())

	err := svc.DeleteMenuItem(context.Background(), "d7f9a9c2-4f6e-4d5a-9aeb-2f45c1a9f001")
	if !errors.Is(err, domain.ErrMenuItemNotFound) {
		t.Errorf("DeleteMenuItem(unknown) = %v, want ErrMenuItemNotFound", err)
	}
}
