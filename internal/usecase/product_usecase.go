package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"shopapi/internal/domain/model"
	repo "shopapi/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 想定外のストア障害を500に寄せる。障害の内容は本文に埋め込む。
func storeFault(msg string, err error) error {
	return NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("%s: %v", msg, err))
}

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// POST /newProduct・PUT /updateProduct の入力DTO。
// Priceはポインタで「未指定」と「0」を区別する。
type ProductInput struct {
	Name    string
	Details string
	Price   *int64
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if strings.TrimSpace(in.Details) == "" {
		return NewHTTPError(http.StatusBadRequest, "details required")
	}
	if in.Price == nil {
		return NewHTTPError(http.StatusBadRequest, "price required")
	}
	return nil
}

// GET /product/:id の出力DTO。仕様通りidは含めない。
type ProductDetailOutput struct {
	Name    string `json:"name"`
	Details string `json:"details"`
	Price   int64  `json:"price"`
}

func (u *ProductUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	items, err := u.productRepo.ListAll(ctx)
	if err != nil {
		return []model.Product{}, storeFault("Error fetching products", err)
	}
	return items, nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, productID int64) (ProductDetailOutput, error) {
	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return ProductDetailOutput{}, NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return ProductDetailOutput{}, storeFault("Error fetching product", err)
	}

	return ProductDetailOutput{
		Name:    p.Name,
		Details: p.Details,
		Price:   p.Price,
	}, nil
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in ProductInput) error {
	if err := in.validate(); err != nil {
		return err
	}

	_, err := u.productRepo.Create(ctx, model.Product{
		Name:    in.Name,
		Details: in.Details,
		Price:   *in.Price,
	})
	if err != nil {
		return storeFault("Error creating product", err)
	}
	return nil
}

func (u *ProductUsecase) UpdateProduct(ctx context.Context, productID int64, in ProductInput) error {
	if err := in.validate(); err != nil {
		return err
	}

	err := u.productRepo.Update(ctx, model.Product{
		ID:      productID,
		Name:    in.Name,
		Details: in.Details,
		Price:   *in.Price,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return storeFault("Error updating product", err)
	}
	return nil
}
