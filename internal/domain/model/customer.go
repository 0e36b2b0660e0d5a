package model

type Customer struct {
	ID    int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"type:varchar(50);not null" json:"name"`
	Email string `gorm:"type:varchar(50);uniqueIndex;not null" json:"email"`
	//平文のまま保存（元システムの契約に合わせる。DESIGN.md参照）
	Password string `gorm:"type:varchar(50);not null" json:"password"`
}
