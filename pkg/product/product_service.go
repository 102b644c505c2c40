package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/freshalert/freshalert-backend/domain"
	"github.com/freshalert/freshalert-backend/entities"
	"github.com/freshalert/freshalert-backend/internal/utils/storage"
	"gorm.io/gorm"
)

type (
	ProductService interface {
		GetProducts(ctx context.Context, qrCode string, page, limit int) ([]domain.ProductResponse, int64, error)
		GetProductByID(ctx context.Context, id string) (domain.ProductResponse, error)
		UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest) error
		UploadProductImage(ctx context.Context, req domain.UploadProductImageRequest) (string, error)
		DeleteProductImage(ctx context.Context, id string) error
	}

	productService struct {
		productRepository ProductRepository
		s3                storage.AwsS3
	}
)

func NewProductService(productRepository ProductRepository, s3 storage.AwsS3) ProductService {
	return &productService{
		productRepository: productRepository,
		s3:                s3,
	}
}

func ToProductResponse(product *entities.Product) domain.ProductResponse {
	return domain.ProductResponse{
		ID:          product.ID.String(),
		QRCode:      product.QRCode,
		Name:        product.Name,
		Brand:       product.Brand,
		Category:    product.Category,
		Description: product.Description,
		ImageURL:    product.ImageURL,
		CreatedAt:   product.CreatedAt,
	}
}

func (s *productService) GetProducts(ctx context.Context, qrCode string, page, limit int) ([]domain.ProductResponse, int64, error) {
	products, count, err := s.productRepository.GetProducts(ctx, qrCode, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.ProductResponse
	for _, product := range products {
		response = append(response, ToProductResponse(product))
	}

	return response, count, nil
}

func (s *productService) GetProductByID(ctx context.Context, id string) (domain.ProductResponse, error) {
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProductResponse{}, domain.ErrProductNotFound
		}
		return domain.ProductResponse{}, err
	}

	return ToProductResponse(product), nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, req domain.UpdateProductRequest) error {
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Brand != "" {
		product.Brand = req.Brand
	}
	if req.Category != "" {
		product.Category = req.Category
	}
	if req.Description != "" {
		product.Description = req.Description
	}

	return s.productRepository.UpdateProduct(ctx, product)
}

func (s *productService) UploadProductImage(ctx context.Context, req domain.UploadProductImageRequest) (string, error) {
	product, err := s.productRepository.GetProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrProductNotFound
		}
		return "", err
	}

	fileName := fmt.Sprintf("product-%s", product.ID.String())
	var objectKey string
	var uploadErr error

	if product.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(product.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "products", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "products", storage.AllowImage...)
	}

	if uploadErr != nil {
		return "", uploadErr
	}

	product.ImageURL = s.s3.GetPublicLinkKey(objectKey)

	if err := s.productRepository.UpdateProduct(ctx, product); err != nil {
		return "", err
	}

	return product.ImageURL, nil
}

func (s *productService) DeleteProductImage(ctx context.Context, id string) error {
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	if product.ImageURL == "" {
		return domain.ErrNoProductImage
	}

	if objectKey := s.s3.GetObjectKeyFromLink(product.ImageURL); objectKey != "" {
		if err := s.s3.DeleteFile(objectKey); err != nil {
			return err
		}
	}

	product.ImageURL = ""
	return s.productRepository.UpdateProduct(ctx, product)
}
