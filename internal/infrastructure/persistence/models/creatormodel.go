package models

import "gorm.io/datatypes"

type CreatorModel struct {
	ID             uint   `gorm:"primaryKey"`
	Slug           string `gorm:"uniqueIndex;size:255;not null"`
	DisplayName    string `gorm:"size:255;not null"`
	WebURL         string `gorm:"size:2048;not null"`
	FeedURL        *string
	Description    string               `gorm:"type:text"`
	PaymentMethods []PaymentMethodModel `gorm:"foreignKey:CreatorID"`
	CreatedAt      UTCTime              `gorm:"autoCreateTime:false"`
	UpdatedAt      UTCTime              `gorm:"autoUpdateTime:false"`
}

func (CreatorModel) TableName() string {
	return "creators"
}

// PaymentMethodModel holds every payment method variant; Type selects the
// variant and Details carries its fields.
type PaymentMethodModel struct {
	ID        uint           `gorm:"primaryKey"`
	CreatorID uint           `gorm:"index;not null"`
	Type      string         `gorm:"size:64;not null"`
	Details   datatypes.JSON `gorm:"not null"`
	CreatedAt UTCTime        `gorm:"autoCreateTime:false"`
}

func (PaymentMethodModel) TableName() string {
	return "payment_methods"
}
