package usecase

import (
	"context"
	"net/http"
	"strings"

	"shopapi/internal/domain/model"
	repo "shopapi/internal/repository"
)

type CustomerUsecase struct {
	customerRepo repo.CustomerRepository
}

// DI
func NewCustomerUsecase(customerRepo repo.CustomerRepository) *CustomerUsecase {
	return &CustomerUsecase{customerRepo: customerRepo}
}

// POST /newCustomer・PUT /updateCustomer の入力DTO。
type CustomerInput struct {
	Name     string
	Email    string
	Password string
}

func (in CustomerInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return NewHTTPError(http.StatusBadRequest, "email required")
	}
	if in.Password == "" {
		return NewHTTPError(http.StatusBadRequest, "password required")
	}
	return nil
}

func (u *CustomerUsecase) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	items, err := u.customerRepo.ListAll(ctx)
	if err != nil {
		return []model.Customer{}, storeFault("Error fetching customers", err)
	}
	return items, nil
}

func (u *CustomerUsecase) GetCustomer(ctx context.Context, customerID int64) (model.Customer, error) {
	c, err := u.customerRepo.FindByID(ctx, customerID)
	if err == repo.ErrNotFound {
		return model.Customer{}, NewHTTPError(http.StatusNotFound, "Customer not found")
	}
	if err != nil {
		return model.Customer{}, storeFault("Error fetching customer", err)
	}
	return c, nil
}

// 顧客の作成。email重複は409で失敗させ、ストアは変更されない。
func (u *CustomerUsecase) CreateCustomer(ctx context.Context, in CustomerInput) error {
	if err := in.validate(); err != nil {
		return err
	}

	// email重複の事前チェック（最終判断はストアのunique制約）
	existing, err := u.customerRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return storeFault("Error creating customer", err)
	}
	if existing != nil {
		return NewHTTPError(http.StatusConflict, "email already used")
	}

	_, err = u.customerRepo.Create(ctx, model.Customer{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
	})
	if err == repo.ErrDuplicateEmail {
		return NewHTTPError(http.StatusConflict, "email already used")
	}
	if err != nil {
		return storeFault("Error creating customer", err)
	}
	return nil
}

func (u *CustomerUsecase) UpdateCustomer(ctx context.Context, customerID int64, in CustomerInput) error {
	if err := in.validate(); err != nil {
		return err
	}

	err := u.customerRepo.Update(ctx, model.Customer{
		ID:       customerID,
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Customer not found")
	}
	if err == repo.ErrDuplicateEmail {
		return NewHTTPError(http.StatusConflict, "email already used")
	}
	if err != nil {
		return storeFault("Error updating customer", err)
	}
	return nil
}

// 顧客のハード削除。依存するOrderは残る（孤児化を許す。DESIGN.md参照）。
func (u *CustomerUsecase) DeleteCustomer(ctx context.Context, customerID int64) error {
	err := u.customerRepo.Delete(ctx, customerID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "Customer not found")
	}
	if err != nil {
		return storeFault("Error deleting customer", err)
	}
	return nil
}
