package supportservice

import (
	"context"
	"errors"

	"github.com/helapesa/helapesa/internal/domain"
	"go.uber.org/zap"
)

type SupportRepo interface {
	Create(ctx context.Context, req *domain.SupportRequest) (*domain.SupportRequest, error)
	GetByUserID(ctx context.Context, userID int) ([]domain.SupportRequest, error)
	List(ctx context.Context) ([]domain.SupportRequest, error)
	Reply(ctx context.Context, id int, reply string) (bool, error)
}

type Publisher interface {
	Publish(table, action string, id int)
}

type Service struct {
	supportRepo SupportRepo
	publisher   Publisher
}

func New(supportRepo SupportRepo, publisher Publisher) *Service {
	return &Service{
		supportRepo: supportRepo,
		publisher:   publisher,
	}
}

var (
	ErrEmptyMessage    = errors.New("message cannot be empty")
	ErrEmptyReply      = errors.New("reply cannot be empty")
	ErrAlreadyResolved = errors.New("support request already resolved")
)

func (s *Service) Create(ctx context.Context, userID int, message string) (*domain.SupportRequest, error) {
	if message == "" {
		return nil, ErrEmptyMessage
	}

	req := &domain.SupportRequest{
		UserID:  userID,
		Message: message,
		Status:  domain.SupportPending,
	}
	req, err := s.supportRepo.Create(ctx, req)
	if err != nil {
		zap.L().Error("failed to create support request", zap.Error(err))
		return nil, err
	}

	s.publisher.Publish("support_requests", "INSERT", req.ID)
	return req, nil
}

func (s *Service) GetRequests(ctx context.Context, userID int) ([]domain.SupportRequest, error) {
	requests, err := s.supportRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch support requests", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

func (s *Service) List(ctx context.Context) ([]domain.SupportRequest, error) {
	requests, err := s.supportRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list support requests", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

// Reply resolves the request with the reply in a single write.
func (s *Service) Reply(ctx context.Context, id int, reply string) error {
	if reply == "" {
		return ErrEmptyReply
	}

	ok, err := s.supportRepo.Reply(ctx, id, reply)
	if err != nil {
		zap.L().Error("failed to reply to support request", zap.Error(err))
		return err
	}
	if !ok {
		return ErrAlreadyResolved
	}

	s.publisher.Publish("support_requests", "UPDATE", id)
	return nil
}
