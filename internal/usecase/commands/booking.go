package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"lendit/internal/domain/booking"
	reqdto "lendit/internal/handler/dto/request"
	"lendit/internal/infra"
	"lendit/internal/pkg/errs"
	"lendit/internal/usecase/queries"
	"lendit/internal/usecase/shared"
)

var (
	ErrItemNotFound         = errs.New("item not found")
	ErrItemUnavailable      = errs.New("item is not available")
	ErrBookingByOwner       = errs.New("owner cannot book own item")
	ErrInvalidBookingPeriod = errs.New("invalid booking period")
	ErrApproveNotOwner      = errs.New("only the item owner can decide a booking")
	ErrAlreadyApproved      = errs.New("booking already decided")
)

type BookingCommands interface {
	Create(ctx context.Context, req reqdto.CreateBookingRequest, bookerID uuid.UUID) (*queries.BookingView, error)
	Approve(ctx context.Context, ownerID, bookingID uuid.UUID, approved bool) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	factory        *booking.Factory
	bookingQueries queries.BookingQueries
}

func NewBookingCommands(uow shared.UnitOfWork, factory *booking.Factory, bookingQueries queries.BookingQueries) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		factory:        factory,
		bookingQueries: bookingQueries,
	}
}

func (b *bookingCommandsImpl) Create(ctx context.Context, req reqdto.CreateBookingRequest, bookerID uuid.UUID) (*queries.BookingView, error) {
	itemID, start, end, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingPeriod)
	}

	reads := b.uow.CommandReads()

	itemSnap, err := reads.ItemByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	entity, err := b.factory.NewBooking(booking.ItemSpec{
		ID:        itemSnap.ID,
		OwnerID:   itemSnap.OwnerID,
		Available: itemSnap.Available,
	}, bookerID, start, end)
	if err != nil {
		return nil, markFactoryErr(err)
	}

	// The booker lookup runs last: availability and ownership failures
	// take precedence over an unknown requester.
	if _, err := reads.UserByID(ctx, bookerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var bookingID uuid.UUID
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Bookings().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			return createErr
		}
		bookingID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: the booker always passes the visibility check
	return b.bookingQueries.GetByID(ctx, bookerID, bookingID)
}

// Approve decides a WAITING booking inside a row lock so concurrent
// decisions on the same booking serialize. A decision on an unknown
// booking ID is a silent no-op and yields an empty result.
func (b *bookingCommandsImpl) Approve(ctx context.Context, ownerID, bookingID uuid.UUID, approved bool) (*queries.BookingView, error) {
	missing := false

	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, itemOwnerID, lockErr := tx.Bookings().FindForUpdate(ctx, tx.DB(), bookingID)
		if lockErr != nil {
			if infra.IsKind(lockErr, infra.KindNotFound) {
				missing = true
				return nil
			}
			return lockErr
		}

		if itemOwnerID != ownerID {
			return ErrApproveNotOwner
		}

		if decideErr := entity.Decide(approved); decideErr != nil {
			return errs.Mark(decideErr, ErrAlreadyApproved)
		}

		return tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, entity.Status())
	})
	if err != nil {
		return nil, err
	}

	if missing {
		return nil, nil
	}

	return b.bookingQueries.GetByID(ctx, ownerID, bookingID)
}

func markFactoryErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrItemUnavailable):
		return errs.Mark(err, ErrItemUnavailable)
	case errors.Is(err, booking.ErrBookedByOwner):
		return errs.Mark(err, ErrBookingByOwner)
	case errors.Is(err, booking.ErrInvalidPeriod):
		return errs.Mark(err, ErrInvalidBookingPeriod)
	default:
		return err
	}
}
