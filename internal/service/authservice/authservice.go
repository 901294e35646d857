package authservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/helapesa/helapesa/internal/domain"
	"github.com/helapesa/helapesa/pkg/auth"
	"github.com/helapesa/helapesa/pkg/validate"
	"go.uber.org/zap"
)

const resetCodeValidity = 5 * time.Minute

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID int, passwordHash string) error
	AssignRole(ctx context.Context, userID int, role string) error
	FindRole(ctx context.Context, userID int) (string, error)
}

type SavingsService interface {
	CreateBalance(ctx context.Context, userID int) (*domain.UserSavings, error)
}

// OTPStore keeps issued reset codes with expiry; Verify consumes the stored
// code so it can only be used once.
type OTPStore interface {
	Store(ctx context.Context, phone, code string, ttl time.Duration) error
	Consume(ctx context.Context, phone string) (string, error)
}

type SMSSender interface {
	Send(ctx context.Context, to, message string) error
}

type Service struct {
	userRepo       Repo
	savingsService SavingsService
	hashService    auth.HashServiceInterface
	jwtService     auth.JWTServiceInterface
	otpStore       OTPStore
	smsSender      SMSSender
}

func New(repo Repo, savingsService SavingsService, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, otpStore OTPStore, smsSender SMSSender) *Service {
	return &Service{
		userRepo:       repo,
		savingsService: savingsService,
		hashService:    hashService,
		jwtService:     jwtService,
		otpStore:       otpStore,
		smsSender:      smsSender,
	}
}

var (
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
	ErrUserExists         = errors.New("phone number already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidResetCode   = errors.New("invalid or expired reset code")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
)

func (s *Service) Register(ctx context.Context, phone, password string) (*domain.User, error) {
	if !validate.IsPhone(phone) {
		return nil, ErrInvalidPhoneNumber
	}
	if len(password) < 6 {
		return nil, ErrWeakPassword
	}

	existingUser, err := s.userRepo.FindByLogin(ctx, phone)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("login", phone))
		return nil, ErrUserExists
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Login:        phone,
		PasswordHash: hashedPassword,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	if err := s.userRepo.AssignRole(ctx, newUser.ID, domain.RoleUser); err != nil {
		zap.L().Error("can't assign role: ", zap.Error(err))
		return nil, err
	}
	if _, err := s.savingsService.CreateBalance(ctx, newUser.ID); err != nil {
		zap.L().Error("can't create savings balance: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", phone))
	return newUser, nil
}

func (s *Service) Role(ctx context.Context, userID int) (string, error) {
	return s.userRepo.FindRole(ctx, userID)
}

func (s *Service) Authenticate(ctx context.Context, phone, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, phone)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", phone))
	return user, nil
}

func (s *Service) GenerateToken(ctx context.Context, userID int) (string, error) {
	role, err := s.userRepo.FindRole(ctx, userID)
	if err != nil {
		zap.L().Error("can't find role: ", zap.Error(err))
		return "", err
	}

	expirationTime := time.Now().Add(15 * time.Minute)
	token, err := s.jwtService.GenerateJWT(userID, role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// RequestPasswordReset issues a single-use 6-digit code with a 5-minute
// validity and texts it to the account's phone number.
func (s *Service) RequestPasswordReset(ctx context.Context, phone string) error {
	if !validate.IsPhone(phone) {
		return ErrInvalidPhoneNumber
	}

	user, err := s.userRepo.FindByLogin(ctx, phone)
	if err != nil {
		return err
	}
	if user == nil {
		// Do not reveal whether the phone number is registered.
		zap.L().Info("reset requested for unknown phone")
		return nil
	}

	code, err := generateCode()
	if err != nil {
		zap.L().Error("can't generate reset code", zap.Error(err))
		return err
	}
	if err := s.otpStore.Store(ctx, phone, code, resetCodeValidity); err != nil {
		zap.L().Error("can't store reset code", zap.Error(err))
		return err
	}

	message := fmt.Sprintf("Your Hela Pesa password reset code is: %s. Valid for 5 minutes.", code)
	if err := s.smsSender.Send(ctx, validate.FormatE164(phone), message); err != nil {
		zap.L().Error("can't send reset sms", zap.Error(err))
		return err
	}

	zap.L().Info("reset code sent", zap.String("phone", phone))
	return nil
}

// ResetPassword compares the submitted code against the stored one exactly;
// the stored code is consumed whether or not the comparison succeeds.
func (s *Service) ResetPassword(ctx context.Context, phone, code, newPassword string) error {
	if !validate.IsPhone(phone) {
		return ErrInvalidPhoneNumber
	}
	if len(newPassword) < 6 {
		return ErrWeakPassword
	}

	stored, err := s.otpStore.Consume(ctx, phone)
	if err != nil || stored == "" || stored != code {
		return ErrInvalidResetCode
	}

	user, err := s.userRepo.FindByLogin(ctx, phone)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidResetCode
	}

	hashedPassword, err := s.hashService.HashPassword(newPassword)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		zap.L().Error("can't update password: ", zap.Error(err))
		return err
	}

	zap.L().Info("password reset successful", zap.Int("userID", user.ID))
	return nil
}
