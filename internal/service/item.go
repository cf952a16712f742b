package service

import (
	"context"
	"strings"

	"shareit-backend/internal/clock"
	"shareit-backend/internal/domain"
	"shareit-backend/internal/logger"
	"shareit-backend/internal/repository"
)

type itemService struct {
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	requestRepo repository.RequestRepository
	bookingRepo repository.BookingRepository
	commentRepo repository.CommentRepository
	aggregator  *AvailabilityAggregator
	clock       clock.Clock
}

func NewItemService(
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	requestRepo repository.RequestRepository,
	bookingRepo repository.BookingRepository,
	commentRepo repository.CommentRepository,
	clk clock.Clock,
) ItemService {
	return &itemService{
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		requestRepo: requestRepo,
		bookingRepo: bookingRepo,
		commentRepo: commentRepo,
		aggregator:  NewAvailabilityAggregator(bookingRepo, commentRepo),
		clock:       clk,
	}
}

func (s *itemService) CreateItem(ctx context.Context, ownerID int64, item *domain.Item) (*domain.Item, error) {
	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	if item.RequestID != nil {
		if _, err := s.requestRepo.GetByID(ctx, *item.RequestID); err != nil {
			return nil, err
		}
	}
	item.OwnerID = ownerID
	if err := s.itemRepo.Create(ctx, item); err != nil {
		logger.ExitMethodWithError("itemService.CreateItem", err, "ownerID", ownerID)
		return nil, err
	}
	logger.Info("Item created", "itemID", item.ID, "ownerID", ownerID)
	return item, nil
}

// ownedItem loads an item and checks that userID owns it.
func (s *itemService) ownedItem(ctx context.Context, itemID, userID int64) (*domain.Item, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != userID {
		return nil, domain.AccessDenied("user id = %d is not the owner of item id = %d", userID, itemID)
	}
	return item, nil
}

func (s *itemService) UpdateItem(ctx context.Context, itemID, ownerID int64, patch domain.ItemPatch) (*domain.Item, error) {
	item, err := s.ownedItem(ctx, itemID, ownerID)
	if err != nil {
		logger.ExitMethodWithError("itemService.UpdateItem", err, "itemID", itemID, "ownerID", ownerID)
		return nil, err
	}
	patch.Apply(item)
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) DeleteItem(ctx context.Context, itemID, ownerID int64) error {
	if _, err := s.ownedItem(ctx, itemID, ownerID); err != nil {
		logger.ExitMethodWithError("itemService.DeleteItem", err, "itemID", itemID, "ownerID", ownerID)
		return err
	}
	return s.itemRepo.Delete(ctx, itemID)
}

func (s *itemService) GetItem(ctx context.Context, itemID int64) (*domain.ItemView, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	view, err := s.aggregator.EnrichSingleItem(ctx, *item)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *itemService) ListOwnerItems(ctx context.Context, ownerID int64) ([]domain.ItemView, error) {
	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	items, err := s.itemRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.aggregator.EnrichItems(ctx, items, s.clock.Now())
}

func (s *itemService) Search(ctx context.Context, text string) ([]domain.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []domain.Item{}, nil
	}
	return s.itemRepo.Search(ctx, text)
}

// AddComment requires the author to hold at least one booking of the item
// whose end is not after now. The booking status is not considered.
func (s *itemService) AddComment(ctx context.Context, itemID, authorID int64, text string) (*domain.Comment, error) {
	logger.EnterMethod("itemService.AddComment", "itemID", itemID, "authorID", authorID)

	if _, err := s.itemRepo.GetByID(ctx, itemID); err != nil {
		logger.ExitMethodWithError("itemService.AddComment", err, "itemID", itemID)
		return nil, err
	}
	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		logger.ExitMethodWithError("itemService.AddComment", err, "authorID", authorID)
		return nil, err
	}

	now := s.clock.Now()
	completed, err := s.bookingRepo.HasCompleted(ctx, itemID, authorID, now)
	if err != nil {
		return nil, err
	}
	if !completed {
		err := domain.CommentRejected("user id = %d has no completed booking of item id = %d", authorID, itemID)
		logger.ExitMethodWithError("itemService.AddComment", err, "itemID", itemID, "authorID", authorID)
		return nil, err
	}

	comment := &domain.Comment{
		ItemID:     itemID,
		AuthorID:   authorID,
		Text:       text,
		Created:    now,
		AuthorName: author.Name,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		logger.ExitMethodWithError("itemService.AddComment", err, "itemID", itemID)
		return nil, err
	}

	logger.Info("Comment added", "commentID", comment.ID, "itemID", itemID, "authorID", authorID)
	return comment, nil
}
