package handlers

import (
	"net/http"

	_ "github.com/helapesa/helapesa/docs"
	adminhandlers "github.com/helapesa/helapesa/internal/handlers/admin"
	authhandlers "github.com/helapesa/helapesa/internal/handlers/auth"
	chathandlers "github.com/helapesa/helapesa/internal/handlers/chathandler"
	loanshandlers "github.com/helapesa/helapesa/internal/handlers/loans"
	paymentshandlers "github.com/helapesa/helapesa/internal/handlers/payments"
	savingshandlers "github.com/helapesa/helapesa/internal/handlers/savings"
	supporthandlers "github.com/helapesa/helapesa/internal/handlers/support"
	"github.com/helapesa/helapesa/internal/metrics"
	"github.com/helapesa/helapesa/internal/realtime"
	"github.com/helapesa/helapesa/internal/service"
	"github.com/helapesa/helapesa/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	RequestReset(w http.ResponseWriter, r *http.Request)
	ResetPassword(w http.ResponseWriter, r *http.Request)
}

type LoanHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	GetApplications(w http.ResponseWriter, r *http.Request)
	Disburse(w http.ResponseWriter, r *http.Request)
}

type SavingsHandler interface {
	SubmitDeposit(w http.ResponseWriter, r *http.Request)
	GetDeposits(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
}

type SupportHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetRequests(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
	DecideApplication(w http.ResponseWriter, r *http.Request)
	VerifyDeposit(w http.ResponseWriter, r *http.Request)
	ApproveWithdrawal(w http.ResponseWriter, r *http.Request)
	RejectWithdrawal(w http.ResponseWriter, r *http.Request)
	ReplySupport(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Charge(w http.ResponseWriter, r *http.Request)
	Webhook(w http.ResponseWriter, r *http.Request)
}

type ChatHandler interface {
	Chat(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	LoanHandler    LoanHandler
	SavingsHandler SavingsHandler
	SupportHandler SupportHandler
	AdminHandler   AdminHandler
	PaymentHandler PaymentHandler
	ChatHandler    ChatHandler

	jwtService auth.JWTServiceInterface
	hub        *realtime.Hub
}

func New(s *service.Services, jwtService auth.JWTServiceInterface, hub *realtime.Hub) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		LoanHandler:    loanshandlers.New(s.LoanService),
		SavingsHandler: savingshandlers.New(s.SavingsService, s.WithdrawalService),
		SupportHandler: supporthandlers.New(s.SupportService),
		AdminHandler:   adminhandlers.New(s.AdminService, s.LoanService, s.SavingsService, s.WithdrawalService, s.SupportService),
		PaymentHandler: paymentshandlers.New(s.PaymentService),
		ChatHandler:    chathandlers.New(s.ChatService),
		jwtService:     jwtService,
		hub:            hub,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.Middleware,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
			r.Post("/reset/request", h.AuthHandler.RequestReset)
			r.Post("/reset", h.AuthHandler.ResetPassword)
		})

		// Signed by the gateway, not by a user token.
		r.Post("/payments/webhook", h.PaymentHandler.Webhook)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))

			r.Route("/loans", func(r chi.Router) {
				r.Post("/apply", h.LoanHandler.Apply)
				r.Get("/", h.LoanHandler.GetApplications)
				r.Post("/disburse", h.LoanHandler.Disburse)
			})
			r.Route("/savings", func(r chi.Router) {
				r.Get("/balance", h.SavingsHandler.GetBalance)
				r.Post("/deposits", h.SavingsHandler.SubmitDeposit)
				r.Get("/deposits", h.SavingsHandler.GetDeposits)
				r.Post("/withdrawals", h.SavingsHandler.Withdraw)
				r.Get("/withdrawals", h.SavingsHandler.GetWithdrawals)
			})
			r.Route("/support", func(r chi.Router) {
				r.Post("/", h.SupportHandler.Create)
				r.Get("/", h.SupportHandler.GetRequests)
			})
			r.Post("/payments/charge", h.PaymentHandler.Charge)
			r.Post("/chat", h.ChatHandler.Chat)
			r.Get("/realtime", h.serveRealtime)

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.RequireAdmin)
				r.Get("/overview", h.AdminHandler.Overview)
				r.Post("/applications/{id}/decide", h.AdminHandler.DecideApplication)
				r.Post("/deposits/{id}/verify", h.AdminHandler.VerifyDeposit)
				r.Post("/withdrawals/{id}/approve", h.AdminHandler.ApproveWithdrawal)
				r.Post("/withdrawals/{id}/reject", h.AdminHandler.RejectWithdrawal)
				r.Post("/support/{id}/reply", h.AdminHandler.ReplySupport)
			})
		})
	})

	return r
}

func (h *Handlers) serveRealtime(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	h.hub.ServeWS(w, r, userID)
}
