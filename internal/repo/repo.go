package repo

import (
	"github.com/helapesa/helapesa/internal/pg"
	applicationrepo "github.com/helapesa/helapesa/internal/repo/application-repo"
	disbursementrepo "github.com/helapesa/helapesa/internal/repo/disbursement-repo"
	savingsrepo "github.com/helapesa/helapesa/internal/repo/savings-repo"
	supportrepo "github.com/helapesa/helapesa/internal/repo/support-repo"
	userrepo "github.com/helapesa/helapesa/internal/repo/user-repo"
	withdrawalrepo "github.com/helapesa/helapesa/internal/repo/withdrawal-repo"
)

type Repositories struct {
	UserRepo         *userrepo.Repository
	ApplicationRepo  *applicationrepo.Repository
	DisbursementRepo *disbursementrepo.Repository
	SavingsRepo      *savingsrepo.Repository
	WithdrawalRepo   *withdrawalrepo.Repository
	SupportRepo      *supportrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn),
		ApplicationRepo:  applicationrepo.New(conn),
		DisbursementRepo: disbursementrepo.New(conn),
		SavingsRepo:      savingsrepo.New(conn),
		WithdrawalRepo:   withdrawalrepo.New(conn),
		SupportRepo:      supportrepo.New(conn),
	}
}
