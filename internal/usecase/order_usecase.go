package usecase

import (
	"context"

	"shopapi/internal/domain/model"
	repo "shopapi/internal/repository"
)

type OrderUsecase struct {
	orderRepo repo.OrderRepository
}

// DI
func NewOrderUsecase(orderRepo repo.OrderRepository) *OrderUsecase {
	return &OrderUsecase{orderRepo: orderRepo}
}

// 注文の一覧。ストア障害は本文に障害内容を含む500で返す。
func (u *OrderUsecase) ListOrders(ctx context.Context) ([]model.Order, error) {
	items, err := u.orderRepo.ListAll(ctx)
	if err != nil {
		return []model.Order{}, storeFault("Error fetching orders", err)
	}
	return items, nil
}
