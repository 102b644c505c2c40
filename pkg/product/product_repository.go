package product

import (
	"context"
	"errors"

	"github.com/freshalert/freshalert-backend/entities"
	"gorm.io/gorm"
)

type (
	ProductRepository interface {
		GetProductByID(ctx context.Context, id string) (*entities.Product, error)
		GetProductByQRCode(ctx context.Context, qrCode string) (*entities.Product, error)
		GetOrCreateProduct(ctx context.Context, product *entities.Product) (*entities.Product, error)
		GetProducts(ctx context.Context, qrCode string, page, limit int) ([]*entities.Product, int64, error)
		UpdateProduct(ctx context.Context, product *entities.Product) error
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) GetProductByID(ctx context.Context, id string) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetProductByQRCode(ctx context.Context, qrCode string) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).Where("qr_code = ?", qrCode).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// GetOrCreateProduct resolves a scan code to exactly one product. The unique
// index on qr_code arbitrates concurrent creates of the same new code: the
// loser sees a duplicate-key error and falls back to reading the winner's row.
func (r *productRepository) GetOrCreateProduct(ctx context.Context, product *entities.Product) (*entities.Product, error) {
	existing, err := r.GetProductByQRCode(ctx, product.QRCode)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.GetProductByQRCode(ctx, product.QRCode)
		}
		return nil, err
	}
	return product, nil
}

func (r *productRepository) GetProducts(ctx context.Context, qrCode string, page, limit int) ([]*entities.Product, int64, error) {
	var products []*entities.Product
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Product{})
	if qrCode != "" {
		query = query.Where("qr_code = ?", qrCode)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, count, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}
