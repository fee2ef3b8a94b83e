package models

type PaymentModel struct {
	ID              uint    `gorm:"primaryKey"`
	SupporterID     uint    `gorm:"index;not null"`
	CreatorID       uint    `gorm:"index;not null"`
	PaymentMethodID uint    `gorm:"not null"`
	PaymentAmount   int64   `gorm:"not null"`
	Currency        string  `gorm:"size:3;not null;default:'USD'"`
	PaidAt          UTCTime `gorm:"not null"`
	CreatedAt       UTCTime `gorm:"autoCreateTime:false"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
