package service

import (
	"context"
	"fmt"
	"time"

	"shareit-backend/internal/clock"
	"shareit-backend/internal/domain"
	"shareit-backend/internal/logger"
	"shareit-backend/internal/repository"
)

const (
	reasonOwnItem       = "cannot book own item"
	reasonNotAvailable  = "item not available"
	reasonInvalidWindow = "invalid time window"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	clock       clock.Clock
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	clk clock.Clock,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		clock:       clk,
	}
}

// CreateBooking checks its preconditions in a fixed order and persists a
// WAITING booking only when all of them hold. Overlapping windows on the same
// item are accepted.
func (s *bookingService) CreateBooking(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*domain.Booking, error) {
	logger.EnterMethod("bookingService.CreateBooking", "bookerID", bookerID, "itemID", itemID)

	booker, err := s.userRepo.GetByID(ctx, bookerID)
	if err != nil {
		logger.ExitMethodWithError("bookingService.CreateBooking", err, "bookerID", bookerID)
		return nil, err
	}
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		logger.ExitMethodWithError("bookingService.CreateBooking", err, "itemID", itemID)
		return nil, err
	}

	var reason string
	switch {
	case item.OwnerID == bookerID:
		reason = reasonOwnItem
	case !item.Available:
		reason = reasonNotAvailable
	case !start.Before(end):
		reason = reasonInvalidWindow
	}
	if reason != "" {
		err := domain.BookingRejected(reason)
		logger.ExitMethodWithError("bookingService.CreateBooking", err, "bookerID", bookerID, "itemID", itemID)
		return nil, err
	}

	booking := &domain.Booking{
		ItemID:   itemID,
		BookerID: bookerID,
		Start:    start,
		End:      end,
		Status:   domain.BookingStatusWaiting,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		logger.ExitMethodWithError("bookingService.CreateBooking", err, "itemID", itemID)
		return nil, err
	}
	booking.Item = item
	booking.Booker = booker

	logger.Info("Booking created", "bookingID", booking.ID, "itemID", itemID, "bookerID", bookerID)
	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID, requesterID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Item == nil {
		return nil, domain.NotFound("item id = %d does not exist", booking.ItemID)
	}
	if requesterID != booking.BookerID && requesterID != booking.Item.OwnerID {
		return nil, domain.AccessDenied("user id = %d may not view booking id = %d", requesterID, bookingID)
	}
	return booking, nil
}

// ApproveBooking overwrites the status unconditionally, so repeating a call
// with the same flag leaves the booking unchanged.
func (s *bookingService) ApproveBooking(ctx context.Context, bookingID, ownerID int64, approved bool) (*domain.Booking, error) {
	logger.EnterMethod("bookingService.ApproveBooking", "bookingID", bookingID, "ownerID", ownerID, "approved", approved)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		logger.ExitMethodWithError("bookingService.ApproveBooking", err, "bookingID", bookingID)
		return nil, err
	}
	if booking.Item == nil {
		err := domain.NotFound("item id = %d does not exist", booking.ItemID)
		logger.ExitMethodWithError("bookingService.ApproveBooking", err, "bookingID", bookingID)
		return nil, err
	}
	if booking.Item.OwnerID != ownerID {
		err := domain.AccessDenied("user id = %d is not the owner of item id = %d", ownerID, booking.ItemID)
		logger.ExitMethodWithError("bookingService.ApproveBooking", err, "bookingID", bookingID)
		return nil, err
	}

	status := domain.BookingStatusRejected
	if approved {
		status = domain.BookingStatusApproved
	}
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, status); err != nil {
		logger.ExitMethodWithError("bookingService.ApproveBooking", err, "bookingID", bookingID)
		return nil, err
	}
	booking.Status = status

	logger.Info("Booking status set", "bookingID", bookingID, "status", status)
	return booking, nil
}

func (s *bookingService) ListForBooker(ctx context.Context, bookerID int64, state domain.BookingState) ([]domain.Booking, error) {
	if _, err := s.userRepo.GetByID(ctx, bookerID); err != nil {
		return nil, err
	}
	q, err := stateQuery(state, s.clock.Now())
	if err != nil {
		return nil, err
	}
	return s.bookingRepo.ListByBooker(ctx, bookerID, q)
}

func (s *bookingService) ListForOwner(ctx context.Context, ownerID int64, state domain.BookingState) ([]domain.Booking, error) {
	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	q, err := stateQuery(state, s.clock.Now())
	if err != nil {
		return nil, err
	}
	return s.bookingRepo.ListByOwner(ctx, ownerID, q)
}

// stateQuery maps every state filter to its store query relative to now.
// CURRENT, PAST and FUTURE split approved bookings without overlap.
func stateQuery(state domain.BookingState, now time.Time) (repository.BookingQuery, error) {
	switch state {
	case domain.BookingStateAll:
		return repository.BookingQuery{}, nil
	case domain.BookingStateCurrent:
		return repository.BookingQuery{
			Status:        domain.BookingStatusApproved,
			StartNotAfter: &now,
			EndAfter:      &now,
		}, nil
	case domain.BookingStatePast:
		return repository.BookingQuery{
			Status:      domain.BookingStatusApproved,
			EndNotAfter: &now,
		}, nil
	case domain.BookingStateFuture:
		return repository.BookingQuery{
			Status:     domain.BookingStatusApproved,
			StartAfter: &now,
		}, nil
	case domain.BookingStateWaiting:
		return repository.BookingQuery{Status: domain.BookingStatusWaiting}, nil
	case domain.BookingStateRejected:
		return repository.BookingQuery{Status: domain.BookingStatusRejected}, nil
	}
	return repository.BookingQuery{}, domain.Invalid(fmt.Sprintf("Unknown state: %s", state))
}
