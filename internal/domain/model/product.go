package model

type Product struct {
	ID      int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"type:varchar(100);not null" json:"name"`
	Details string `gorm:"type:varchar(255);not null" json:"details"`
	Price   int64  `gorm:"not null" json:"price"`
}
