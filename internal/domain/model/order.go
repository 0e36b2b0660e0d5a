package model

// 注文はProduct/Customerへの外部キーだけを持つ。
// 制約はスキーマ宣言のみで、削除時のカスケードや参照ガードは行わない。
type Order struct {
	ID         int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID  int64 `gorm:"not null;index" json:"product_id"`
	CustomerID int64 `gorm:"not null;index" json:"customer_id"`
}
