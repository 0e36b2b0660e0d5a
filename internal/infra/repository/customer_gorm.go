package repository

import (
	"context"
	"errors"
	"strings"

	"shopapi/internal/domain/model"
	repo "shopapi/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

// DI
func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

// unique制約違反をErrDuplicateEmailに寄せる。
// postgres: SQLSTATE 23505 / sqlite: "UNIQUE constraint failed"
func translateUniqueViolation(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return repo.ErrDuplicateEmail
	}

	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return repo.ErrDuplicateEmail
	}

	return err
}

// 全顧客をストア順（id昇順）で返す。
func (r *CustomerGormRepository) ListAll(ctx context.Context) ([]model.Customer, error) {
	customers := []model.Customer{}
	if err := r.db.WithContext(ctx).Order("id asc").Find(&customers).Error; err != nil {
		return []model.Customer{}, err
	}
	return customers, nil
}

// IDで顧客を取得
func (r *CustomerGormRepository) FindByID(ctx context.Context, id int64) (model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Customer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

// emailで顧客を1件取得。見つからなければ (nil, nil)。
func (r *CustomerGormRepository) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	var c model.Customer

	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&c).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &c, nil
}

// 顧客の作成。email重複はErrDuplicateEmailで失敗し、ストアは変更されない。
func (r *CustomerGormRepository) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	c.ID = 0
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return model.Customer{}, translateUniqueViolation(err)
	}
	return c, nil
}

// 顧客の更新
func (r *CustomerGormRepository) Update(ctx context.Context, c model.Customer) error {
	res := r.db.WithContext(ctx).Model(&model.Customer{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"name":     c.Name,
		"email":    c.Email,
		"password": c.Password,
	})
	if res.Error != nil {
		return translateUniqueViolation(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 顧客のハード削除。依存するOrderには触らない。
func (r *CustomerGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Customer{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
