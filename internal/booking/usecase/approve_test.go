package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"shareit/internal/booking"
	"shareit/internal/booking/repository"
	"shareit/internal/booking/usecase"
	"shareit/internal/model"
)

func waitingRecord(id int64) repository.Record {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	return repository.Record{
		Booking: model.Booking{
			ID: id, ItemID: 10, BookerID: 2,
			Start: start, End: start.Add(48 * time.Hour),
			Status: model.BookingStatusWaiting,
		},
		ItemName:    "Drill",
		ItemOwnerID: 1,
		BookerName:  "Bob",
	}
}

func TestApprove(t *testing.T) {
	input := booking.ApproveInput{OwnerID: 1, BookingID: 5, Approved: true}

	t.Run("Booking Not Found", func(t *testing.T) {
		uc := usecase.New(&mockBookingRepo{}, &mockItemRepo{}, &mockLogger{})
		_, err := uc.Approve(context.Background(), input)
		if !errors.Is(err, booking.ErrBookingNotFound) {
			t.Errorf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("Non Owner Forbidden", func(t *testing.T) {
		repoMock := &mockBookingRepo{
			getOneFunc: func(id int64) (repository.Record, error) { return waitingRecord(id), nil },
		}
		uc := usecase.New(repoMock, &mockItemRepo{}, &mockLogger{})
		stranger := input
		stranger.OwnerID = 99
		_, err := uc.Approve(context.Background(), stranger)
		if !errors.Is(err, booking.ErrNotOwner) {
			t.Errorf("expected ErrNotOwner, got %v", err)
		}
	})

	t.Run("Already Decided Conflict", func(t *testing.T) {
		repoMock := &mockBookingRepo{
			getOneFunc: func(id int64) (repository.Record, error) {
				rec := waitingRecord(id)
				rec.Booking.Status = model.BookingStatusApproved
				return rec, nil
			},
		}
		uc := usecase.New(repoMock, &mockItemRepo{}, &mockLogger{})
		_, err := uc.Approve(context.Background(), input)
		if !errors.Is(err, booking.ErrAlreadyDecided) {
			t.Errorf("expected ErrAlreadyDecided, got %v", err)
		}
	})

	t.Run("Concurrent Decision Loses", func(t *testing.T) {
		// Read sees WAITING but the conditional update matches no row.
		repoMock := &mockBookingRepo{
			getOneFunc: func(id int64) (repository.Record, error) { return waitingRecord(id), nil },
			decideFunc: func(opt repository.DecideBookingOptions) (model.Booking, bool, error) {
				return model.Booking{}, false, nil
			},
		}
		uc := usecase.New(repoMock, &mockItemRepo{}, &mockLogger{})
		_, err := uc.Approve(context.Background(), input)
		if !errors.Is(err, booking.ErrAlreadyDecided) {
			t.Errorf("expected ErrAlreadyDecided on lost race, got %v", err)
		}
	})

	t.Run("Approval Collides With Approved Period", func(t *testing.T) {
		// Another booking for the same item and period was approved after
		// this one was created; the transition must fail with a conflict.
		repoMock := &mockBookingRepo{
			getOneFunc: func(id int64) (repository.Record, error) { return waitingRecord(id), nil },
			decideFunc: func(opt repository.DecideBookingOptions) (model.Booking, bool, error) {
				return model.Booking{}, false, booking.ErrOverlap
			},
		}
		uc := usecase.New(repoMock, &mockItemRepo{}, &mockLogger{})
		_, err := uc.Approve(context.Background(), input)
		if !errors.Is(err, booking.ErrOverlap) {
			t.Errorf("expected ErrOverlap, got %v", err)
		}
	})

	t.Run("Approve Sets Approved", func(t *testing.T) {
		repoMock := &mockBookingRepo{
			getOneFunc: func(id int64) (repository.Record, error) { return waitingRecord(id), nil },
			decideFunc: func(opt repository.DecideBookingOptions) (model.Booking, bool, error) {
				if opt.Status != model.BookingStatusApproved {
					t.Errorf("expected APPROVED transition, got %s", opt.Status)
				}
				rec := waitingRecord(opt.ID)
				rec.Booking.Status = opt.Status
				return rec.Booking, true, nil
			},
		}
		uc := usecase.New(repoMock, &mockItemRepo{}, &mockLogger{})
		out, err := uc.Approve(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.View.Booking.Status != model.BookingStatusApproved {
			t.Errorf("expected APPROVED, got %s", out.View.Booking.Status)
		}
	})

	t.Run("Reject Sets Rejected", func(t *testing.T) {
		repoMock := &mockBookingRepo{
			getOneFunc: func(id int64) (repository.Record, error) { return waitingRecord(id), nil },
			decideFunc: func(opt repository.DecideBookingOptions) (model.Booking, bool, error) {
				rec := waitingRecord(opt.ID)
				rec.Booking.Status = opt.Status
				return rec.Booking, true, nil
			},
		}
		uc := usecase.New(repoMock, &mockItemRepo{}, &mockLogger{})
		rejected := input
		rejected.Approved = false
		out, err := uc.Approve(context.Background(), rejected)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.View.Booking.Status != model.BookingStatusRejected {
			t.Errorf("expected REJECTED, got %s", out.View.Booking.Status)
		}
	})
}

func TestDetail(t *testing.T) {
	repoMock := &mockBookingRepo{
		getOneFunc: func(id int64) (repository.Record, error) {
			if id != 5 {
				return repository.Record{}, nil
			}
			return waitingRecord(id), nil
		},
	}
	uc := usecase.New(repoMock, &mockItemRepo{}, &mockLogger{})

	t.Run("Visible To Booker", func(t *testing.T) {
		out, err := uc.Detail(context.Background(), 2, 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.View.Booking.ID != 5 {
			t.Errorf("expected booking 5, got %d", out.View.Booking.ID)
		}
	})

	t.Run("Visible To Item Owner", func(t *testing.T) {
		if _, err := uc.Detail(context.Background(), 1, 5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Hidden From Strangers", func(t *testing.T) {
		_, err := uc.Detail(context.Background(), 42, 5)
		if !errors.Is(err, booking.ErrBookingNotFound) {
			t.Errorf("expected ErrBookingNotFound for stranger, got %v", err)
		}
	})

	t.Run("Missing Booking", func(t *testing.T) {
		_, err := uc.Detail(context.Background(), 2, 404)
		if !errors.Is(err, booking.ErrBookingNotFound) {
			t.Errorf("expected ErrBookingNotFound, got %v", err)
		}
	})
}
