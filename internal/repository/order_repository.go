package repository

import (
	"context"

	"shopapi/internal/domain/model"
)

// 注文の永続化を約束。APIが公開するのは一覧だけだが、
// ストア契約としてのinsertはここに置く（seedやテストが使う）。
type OrderRepository interface {
	ListAll(ctx context.Context) ([]model.Order, error)
	Create(ctx context.Context, o model.Order) (model.Order, error)
}
