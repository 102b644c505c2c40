package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateCategory = "category created successfully"
	MessageSuccessGetCategories  = "categories retrieved successfully"
	MessageSuccessUpdateCategory = "category updated successfully"
	MessageSuccessDeleteCategory = "category deleted successfully"

	MessageFailedCreateCategory = "failed to create category"
	MessageFailedGetCategories  = "failed to retrieve categories"
	MessageFailedUpdateCategory = "failed to update category"
	MessageFailedDeleteCategory = "failed to delete category"

	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryNameTaken = errors.New("category name already exists")
)

type (
	CreateCategoryRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description" validate:"omitempty"`
		Icon        string `json:"icon" validate:"omitempty"`
		Color       string `json:"color" validate:"omitempty,hexcolor"`
	}

	UpdateCategoryRequest struct {
		Name        string `json:"name" validate:"omitempty"`
		Description string `json:"description" validate:"omitempty"`
		Icon        string `json:"icon" validate:"omitempty"`
		Color       string `json:"color" validate:"omitempty,hexcolor"`
	}

	CategoryResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description,omitempty"`
		Icon        string    `json:"icon,omitempty"`
		Color       string    `json:"color"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
