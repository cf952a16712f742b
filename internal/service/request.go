package service

import (
	"context"

	"shareit-backend/internal/clock"
	"shareit-backend/internal/domain"
	"shareit-backend/internal/logger"
	"shareit-backend/internal/repository"
)

type requestService struct {
	requestRepo repository.RequestRepository
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	clock       clock.Clock
}

func NewRequestService(
	requestRepo repository.RequestRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	clk clock.Clock,
) RequestService {
	return &requestService{
		requestRepo: requestRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		clock:       clk,
	}
}

func (s *requestService) CreateRequest(ctx context.Context, authorID int64, description string) (*domain.ItemRequest, error) {
	if _, err := s.userRepo.GetByID(ctx, authorID); err != nil {
		return nil, err
	}
	req := &domain.ItemRequest{
		Description: description,
		AuthorID:    authorID,
		Created:     s.clock.Now(),
	}
	if err := s.requestRepo.Create(ctx, req); err != nil {
		logger.ExitMethodWithError("requestService.CreateRequest", err, "authorID", authorID)
		return nil, err
	}
	logger.Info("Item request created", "requestID", req.ID, "authorID", authorID)
	return req, nil
}

func (s *requestService) ListOwnRequests(ctx context.Context, authorID int64) ([]domain.RequestView, error) {
	if _, err := s.userRepo.GetByID(ctx, authorID); err != nil {
		return nil, err
	}
	reqs, err := s.requestRepo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	return s.withResponses(ctx, reqs)
}

func (s *requestService) ListOtherRequests(ctx context.Context, userID int64) ([]domain.ItemRequest, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.requestRepo.ListExcludingAuthor(ctx, userID)
}

func (s *requestService) GetRequest(ctx context.Context, requestID int64) (*domain.RequestView, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	views, err := s.withResponses(ctx, []domain.ItemRequest{*req})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *requestService) withResponses(ctx context.Context, reqs []domain.ItemRequest) ([]domain.RequestView, error) {
	if len(reqs) == 0 {
		return []domain.RequestView{}, nil
	}
	items, err := s.itemRepo.ListByRequests(ctx, requestIDs(reqs))
	if err != nil {
		return nil, err
	}
	return AttachResponses(reqs, items), nil
}
