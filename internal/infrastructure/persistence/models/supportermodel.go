package models

type SupporterModel struct {
	ID             uint    `gorm:"primaryKey"`
	BudgetPerMonth int64   `gorm:"not null;default:0"`
	CreatedAt      UTCTime `gorm:"autoCreateTime:false"`
	UpdatedAt      UTCTime `gorm:"autoUpdateTime:false"`
}

func (SupporterModel) TableName() string {
	return "supporters"
}

type SupportModel struct {
	SupporterID              uint    `gorm:"primaryKey;autoIncrement:false"`
	CreatorID                uint    `gorm:"primaryKey;autoIncrement:false"`
	WantToPay                bool    `gorm:"not null;default:false"`
	MinimumPaymentPerMonth   int64   `gorm:"not null;default:0"`
	PaymentAmountOutstanding int64   `gorm:"not null;default:0"`
	CreatedAt                UTCTime `gorm:"autoCreateTime:false"`
	UpdatedAt                UTCTime `gorm:"autoUpdateTime:false"`
}

func (SupportModel) TableName() string {
	return "supporter_to_creator"
}

type BudgetAllocationModel struct {
	ID                  uint    `gorm:"primaryKey"`
	SupporterID         uint    `gorm:"index;not null"`
	AllocationAmount    int64   `gorm:"not null"`
	UndistributedAmount int64   `gorm:"not null;default:0"`
	CreatedAt           UTCTime `gorm:"autoCreateTime:false"`
}

func (BudgetAllocationModel) TableName() string {
	return "budget_allocations"
}
