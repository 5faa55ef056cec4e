package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessDeleteCategory = "Category deleted successfully"
	MessageSuccessDeleteMenuItem = "Menu item deleted successfully"

	MessageFailedGetCategories   = "Error fetching categories"
	MessageFailedCreateCategory  = "Error creating category"
	MessageFailedDeleteCategory  = "Error deleting category"
	MessageFailedGetMenuItems    = "Error fetching menu items"
	MessageFailedCreateMenuItem  = "Error creating menu item"
	MessageFailedUpdateMenuItem  = "Error updating menu item"
	MessageFailedDeleteMenuItem  = "Error deleting menu item"
	MessageFailedGetSettings     = "Error fetching settings"
	MessageFailedUpdateSettings  = "Error updating settings"
	MessageCategoryNotFound      = "Category not found"
	MessageMenuItemNotFound      = "Menu item not found"
	MessageCategoryDoesNotExist  = "Referenced category does not exist"

	ErrCategoryNotFound = errors.New("category not found")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrSettingsNotFound = errors.New("settings not found")
)

type (
	CreateCategoryRequest struct {
		Name         string `json:"name" validate:"required"`
		DisplayOrder int    `json:"displayOrder"`
	}

	CategoryResponse struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		DisplayOrder int    `json:"displayOrder"`
	}

	MenuItemRequest struct {
		Name        string  `json:"name" validate:"required"`
		Category    string  `json:"category" validate:"required,uuid"`
		Price       float64 `json:"price"`
		Description string  `json:"description"`
		IsSpecial   bool    `json:"isSpecial"`
		Image       string  `json:"image"`
	}

	MenuItemResponse struct {
		ID          string           `json:"id"`
		Name        string           `json:"name"`
		Category    CategoryResponse `json:"category"`
		Price       float64          `json:"price"`
		Description string           `json:"description"`
		IsSpecial   bool             `json:"isSpecial"`
		Image       string           `json:"image"`
		CreatedAt   time.Time        `json:"createdAt"`
	}

	UpdateSettingsRequest struct {
		ShowPrices *bool `json:"showPrices" validate:"required"`
	}

	SettingsResponse struct {
		ShowPrices bool      `json:"showPrices"`
		UpdatedAt  time.Time `json:"updatedAt"`
	}
)
