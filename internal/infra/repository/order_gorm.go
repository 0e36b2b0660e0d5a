package repository

import (
	"context"

	"shopapi/internal/domain/model"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// 全注文をストア順（id昇順）で返す。
func (r *OrderGormRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	orders := []model.Order{}
	if err := r.db.WithContext(ctx).Order("id asc").Find(&orders).Error; err != nil {
		return []model.Order{}, err
	}
	return orders, nil
}

// 注文の作成。参照先の存在チェックはしない（ストア任せ）。
func (r *OrderGormRepository) Create(ctx context.Context, o model.Order) (model.Order, error) {
	o.ID = 0
	if err := r.db.WithContext(ctx).Create(&o).Error; err != nil {
		return model.Order{}, err
	}
	return o, nil
}
