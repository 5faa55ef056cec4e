package menu

import (
	"context"
	"time"

	"Trattoria-Backend/domain"
	"Trattoria-Backend/entities"

	"github.com/google/uuid"
)

type (
	MenuService interface {
		ListCategories(ctx context.Context) ([]domain.CategoryResponse, error)
		CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryResponse, error)
		DeleteCategory(ctx context.Context, id string) error

		ListMenuItems(ctx context.Context, categoryID string) ([]domain.MenuItemResponse, error)
		CreateMenuItem(ctx context.Context, req domain.MenuItemRequest) (domain.MenuItemResponse, error)
		UpdateMenuItem(ctx context.Context, id string, req domain.MenuItemRequest) (domain.MenuItemResponse, error)
		DeleteMenuItem(ctx context.Context, id string) error

		GetSettings(ctx context.Context) (domain.SettingsResponse, error)
		UpdateSettings(ctx context.Context, req domain.UpdateSettingsRequest) (domain.SettingsResponse, error)
	}

	menuService struct {
		menuRepository MenuRepository
	}
)

func NewMenuService(menuRepository MenuRepository) MenuService {
	return &menuService{menuRepository: menuRepository}
}

func categoryResponse(category *entities.Category) domain.CategoryResponse {
	return domain.CategoryResponse{
		ID:           category.ID.String(),
		Name:         category.Name,
		DisplayOrder: category.DisplayOrder,
	}
}

func menuItemResponse(item *entities.MenuItem) domain.MenuItemResponse {
	res := domain.MenuItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Price:       item.Price,
		Description: item.Description,
		IsSpecial:   item.IsSpecial,
		Image:       item.Image,
		CreatedAt:   item.CreatedAt,
	}
	if item.Category != nil {
		res.Category = categoryResponse(item.Category)
	}
	return res
}

func (s *menuService) ListCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.menuRepository.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.CategoryResponse, 0, len(categories))
	for i := range categories {
		res = append(res, categoryResponse(&categories[i]))
	}
	return res, nil
}

func (s *menuService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryResponse, error) {
	category := &entities.Category{
		ID:           uuid.New(),
		Name:         req.Name,
		DisplayOrder: req.DisplayOrder,
	}

	if err := s.menuRepository.CreateCategory(ctx, category); err != nil {
		return domain.CategoryResponse{}, err
	}
	return categoryResponse(category), nil
}

func (s *menuService) DeleteCategory(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}
	return s.menuRepository.DeleteCategoryCascade(ctx, id)
}

func (s *menuService) ListMenuItems(ctx context.Context, categoryID string) ([]domain.MenuItemResponse, error) {
	var (
		items []entities.MenuItem
		err   error
	)
	if categoryID == "" {
		items, err = s.menuRepository.ListMenuItems(ctx)
	} else {
		if _, parseErr := uuid.Parse(categoryID); parseErr != nil {
			return nil, domain.ErrParseUUID
		}
		items, err = s.menuRepository.ListMenuItemsByCategory(ctx, categoryID)
	}
	if err != nil {
		return nil, err
	}

	res := make([]domain.MenuItemResponse, 0, len(items))
	for i := range items {
		res = append(res, menuItemResponse(&items[i]))
	}
	return res, nil
}

func (s *menuService) CreateMenuItem(ctx context.Context, req domain.MenuItemRequest) (domain.MenuItemResponse, error) {
	categoryID, err := uuid.Parse(req.Category)
	if err != nil {
		return domain.MenuItemResponse{}, domain.ErrParseUUID
	}

	// Reject references to categories that do not exist.
	category, err := s.menuRepository.GetCategoryByID(ctx, categoryID.String())
	if err != nil {
		return domain.MenuItemResponse{}, err
	}

	item := &entities.MenuItem{
		ID:          uuid.New(),
		Name:        req.Name,
		CategoryID:  categoryID,
		Price:       req.Price,
		Description: req.Description,
		IsSpecial:   req.IsSpecial,
		Image:       req.Image,
		CreatedAt:   time.Now(),
		Category:    category,
	}

	if err := s.menuRepository.CreateMenuItem(ctx, item); err != nil {
		return domain.MenuItemResponse{}, err
	}
	return menuItemResponse(item), nil
}

func (s *menuService) UpdateMenuItem(ctx context.Context, id string, req domain.MenuItemRequest) (domain.MenuItemResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.MenuItemResponse{}, domain.ErrParseUUID
	}

	item, err := s.menuRepository.GetMenuItemByID(ctx, id)
	if err != nil {
		return domain.MenuItemResponse{}, err
	}

	categoryID, err := uuid.Parse(req.Category)
	if err != nil {
		return domain.MenuItemResponse{}, domain.ErrParseUUID
	}
	category, err := s.menuRepository.GetCategoryByID(ctx, categoryID.String())
	if err != nil {
		return domain.MenuItemResponse{}, err
	}

	item.Name = req.Name
	item.CategoryID = categoryID
	item.Price = req.Price
	item.Description = req.Description
	item.IsSpecial = req.IsSpecial
	item.Image = req.Image
	item.Category = category

	if err := s.menuRepository.UpdateMenuItem(ctx, item); err != nil {
		return domain.MenuItemResponse{}, err
	}
	return menuItemResponse(item), nil
}

func (s *menuService) DeleteMenuItem(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}
	return s.menuRepository.DeleteMenuItem(ctx, id)
}

// GetSettings returns the singleton settings row, creating the default
// (prices shown) on first read so later writes have a row to land on.
func (s *menuService) GetSettings(ctx context.Context) (domain.SettingsResponse, error) {
	settings, err := s.menuRepository.GetSettings(ctx)
	if err == nil {
		return domain.SettingsResponse{
			ShowPrices: settings.ShowPrices,
			UpdatedAt:  settings.UpdatedAt,
		}, nil
	}
	if err != domain.ErrSettingsNotFound {
		return domain.SettingsResponse{}, err
	}

	settings = &entities.Settings{
		ID:         uuid.New(),
		ShowPrices: true,
		UpdatedAt:  time.Now(),
	}
	if err := s.menuRepository.SaveSettings(ctx, settings); err != nil {
		return domain.SettingsResponse{}, err
	}
	return domain.SettingsResponse{
		ShowPrices: settings.ShowPrices,
		UpdatedAt:  settings.UpdatedAt,
	}, nil
}

func (s *menuService) UpdateSettings(ctx context.Context, req domain.UpdateSettingsRequest) (domain.SettingsResponse, error) {
	settings, err := s.menuRepository.GetSettings(ctx)
	if err != nil {
		if err != domain.ErrSettingsNotFound {
			return domain.SettingsResponse{}, err
		}
		settings = &entities.Settings{ID: uuid.New()}
	}

	settings.ShowPrices = *req.ShowPrices
	settings.UpdatedAt = time.Now()

	if err := s.menuRepository.SaveSettings(ctx, settings); err != nil {
		return domain.SettingsResponse{}, err
	}
	return domain.SettingsResponse{
		ShowPrices: settings.ShowPrices,
		UpdatedAt:  settings.UpdatedAt,
	}, nil
}
