package http

import (
	"gorm.io/gorm"

	"github.com/creatorfund/creatorfund/internal/domain/budget"
	"github.com/creatorfund/creatorfund/internal/domain/creator"
	"github.com/creatorfund/creatorfund/internal/domain/payment"
	"github.com/creatorfund/creatorfund/internal/domain/supporter"
	"github.com/creatorfund/creatorfund/internal/infrastructure/repository"
	"github.com/creatorfund/creatorfund/internal/shared/db"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	creatorRepo    creator.Repository
	supporterRepo  supporter.Repository
	supportRepo    supporter.SupportRepository
	allocationRepo budget.AllocationRepository
	paymentRepo    payment.PaymentRepository
	txMgr          *db.TransactionManager
}

func newRepositories(gdb *gorm.DB) *repositories {
	return &repositories{
		creatorRepo:    repository.NewCreatorRepository(gdb),
		supporterRepo:  repository.NewSupporterRepository(gdb),
		supportRepo:    repository.NewSupportRepository(gdb),
		allocationRepo: repository.NewAllocationRepository(gdb),
		paymentRepo:    repository.NewPaymentRepository(gdb),
		txMgr:          db.NewTransactionManager(gdb),
	}
}
