package repository

import (
	"context"
	"errors"

	"shopapi/internal/domain/model"
)

// emailのunique制約違反を統一
var ErrDuplicateEmail = errors.New("email already used")

// 顧客の永続化を約束。
type CustomerRepository interface {
	ListAll(ctx context.Context) ([]model.Customer, error)
	FindByID(ctx context.Context, id int64) (model.Customer, error)
	//メールから顧客を1件取得する。見つからなければ (nil, nil)。
	FindByEmail(ctx context.Context, email string) (*model.Customer, error)

	Create(ctx context.Context, c model.Customer) (model.Customer, error)
	Update(ctx context.Context, c model.Customer) error
	//ハード削除。依存するOrderは消さない（孤児行を許す）。
	Delete(ctx context.Context, id int64) error
}
