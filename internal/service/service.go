package service

import (
	"github.com/helapesa/helapesa/internal/chat"
	"github.com/helapesa/helapesa/internal/config"
	adminhandlers "github.com/helapesa/helapesa/internal/handlers/admin"
	authhandlers "github.com/helapesa/helapesa/internal/handlers/auth"
	chathandlers "github.com/helapesa/helapesa/internal/handlers/chathandler"
	loanshandlers "github.com/helapesa/helapesa/internal/handlers/loans"
	paymentshandlers "github.com/helapesa/helapesa/internal/handlers/payments"
	savingshandlers "github.com/helapesa/helapesa/internal/handlers/savings"
	supporthandlers "github.com/helapesa/helapesa/internal/handlers/support"
	"github.com/helapesa/helapesa/internal/otp"
	"github.com/helapesa/helapesa/internal/paystack"
	"github.com/helapesa/helapesa/internal/pg"
	"github.com/helapesa/helapesa/internal/realtime"
	"github.com/helapesa/helapesa/internal/repo"
	"github.com/helapesa/helapesa/internal/service/adminservice"
	"github.com/helapesa/helapesa/internal/service/authservice"
	"github.com/helapesa/helapesa/internal/service/loanservice"
	"github.com/helapesa/helapesa/internal/service/savingsservice"
	"github.com/helapesa/helapesa/internal/service/supportservice"
	"github.com/helapesa/helapesa/internal/service/withdrawalservice"
	"github.com/helapesa/helapesa/internal/sms"
	pkgauth "github.com/helapesa/helapesa/pkg/auth"
)

type SavingsService interface {
	savingshandlers.Service
	adminhandlers.SavingsService
}

type WithdrawalService interface {
	savingshandlers.WithdrawalService
	adminhandlers.WithdrawalService
}

type LoanService interface {
	loanshandlers.Service
	adminhandlers.LoanService
}

type SupportService interface {
	supporthandlers.Service
	adminhandlers.SupportService
}

type Services struct {
	AuthService       authhandlers.Service
	LoanService       LoanService
	SavingsService    SavingsService
	WithdrawalService WithdrawalService
	SupportService    SupportService
	AdminService      adminhandlers.Service
	PaymentService    paymentshandlers.Service
	ChatService       chathandlers.Service
}

func New(cfg *config.Config, repos *repo.Repositories, txManager pg.TXManager, jwtService pkgauth.JWTServiceInterface, otpStore *otp.Store, hub *realtime.Hub) *Services {
	savingsService := savingsservice.New(repos.SavingsRepo, txManager, hub)
	withdrawalService := withdrawalservice.New(repos.WithdrawalRepo, repos.SavingsRepo, txManager, hub)
	loanService := loanservice.New(repos.ApplicationRepo, repos.DisbursementRepo, repos.SavingsRepo, txManager, hub)
	supportService := supportservice.New(repos.SupportRepo, hub)
	smsClient := sms.New(cfg, nil)
	authService := authservice.New(repos.UserRepo, savingsService, &pkgauth.HashService{}, jwtService, otpStore, smsClient)
	adminService := adminservice.New(repos.ApplicationRepo, repos.SupportRepo, repos.WithdrawalRepo, repos.SavingsRepo, repos.DisbursementRepo)
	paymentService := paystack.New(cfg, repos.DisbursementRepo, repos.SavingsRepo, txManager, hub, nil)
	chatService := chat.New(cfg, nil)

	return &Services{
		AuthService:       authService,
		LoanService:       loanService,
		SavingsService:    savingsService,
		WithdrawalService: withdrawalService,
		SupportService:    supportService,
		AdminService:      adminService,
		PaymentService:    paymentService,
		ChatService:       chatService,
	}
}
