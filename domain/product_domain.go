package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetProducts        = "products retrieved successfully"
	MessageSuccessUpdateProduct      = "product updated successfully"
	MessageSuccessUploadProductImage = "product image uploaded successfully"
	MessageSuccessDeleteProductImage = "product image deleted successfully"

	MessageFailedGetProducts        = "failed to retrieve products"
	MessageFailedUpdateProduct      = "failed to update product"
	MessageFailedUploadProductImage = "failed to upload product image"
	MessageFailedDeleteProductImage = "failed to delete product image"

	ErrProductNotFound = errors.New("product not found")
	ErrNoProductImage  = errors.New("product has no image")
)

type (
	ProductResponse struct {
		ID          string    `json:"id"`
		QRCode      string    `json:"qr_code"`
		Name        string    `json:"name"`
		Brand       string    `json:"brand,omitempty"`
		Category    string    `json:"category,omitempty"`
		Description string    `json:"description,omitempty"`
		ImageURL    string    `json:"image_url,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}

	UpdateProductRequest struct {
		Name        string `json:"name" validate:"omitempty"`
		Brand       string `json:"brand" validate:"omitempty"`
		Category    string `json:"category" validate:"omitempty"`
		Description string `json:"description" validate:"omitempty"`
	}

	UploadProductImageRequest struct {
		ProductID string                `json:"product_id" form:"product_id" validate:"required,uuid"`
		Image     *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}
)
