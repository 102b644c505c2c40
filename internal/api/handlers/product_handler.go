package handlers

import (
	"errors"
	"strconv"

	"github.com/freshalert/freshalert-backend/domain"
	"github.com/freshalert/freshalert-backend/internal/api/presenters"
	"github.com/freshalert/freshalert-backend/pkg/product"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProductHandler interface {
		GetProducts(c *fiber.Ctx) error
		GetProductDetails(c *fiber.Ctx) error
		UpdateProduct(c *fiber.Ctx) error
		UploadProductImage(c *fiber.Ctx) error
		DeleteProductImage(c *fiber.Ctx) error
	}

	productHandler struct {
		productService product.ProductService
		validator      *validator.Validate
	}
)

func NewProductHandler(productService product.ProductService, validator *validator.Validate) ProductHandler {
	return &productHandler{
		productService: productService,
		validator:      validator,
	}
}

func productErrorStatus(err error) int {
	if errors.Is(err, domain.ErrProductNotFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusBadRequest
}

func (h *productHandler) GetProducts(c *fiber.Ctx) error {
	qrCode := c.Query("qr_code")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	products, count, err := h.productService.GetProducts(c.Context(), qrCode, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"products": products,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) GetProductDetails(c *fiber.Ctx) error {
	productID := c.Params("id")

	res, err := h.productService.GetProductByID(c.Context(), productID)
	if err != nil {
		return presenters.ErrorResponse(c, productErrorStatus(err), domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) UpdateProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	req := new(domain.UpdateProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProduct, err)
	}

	if err := h.productService.UpdateProduct(c.Context(), productID, *req); err != nil {
		return presenters.ErrorResponse(c, productErrorStatus(err), domain.MessageFailedUpdateProduct, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateProduct)
}

func (h *productHandler) UploadProductImage(c *fiber.Ctx) error {
	req := new(domain.UploadProductImageRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadProductImage, err)
	}

	imageURL, err := h.productService.UploadProductImage(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, productErrorStatus(err), domain.MessageFailedUploadProductImage, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"image_url": imageURL,
	}, fiber.StatusOK, domain.MessageSuccessUploadProductImage)
}

func (h *productHandler) DeleteProductImage(c *fiber.Ctx) error {
	productID := c.Params("id")

	if err := h.productService.DeleteProductImage(c.Context(), productID); err != nil {
		return presenters.ErrorResponse(c, productErrorStatus(err), domain.MessageFailedDeleteProductImage, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteProductImage)
}
