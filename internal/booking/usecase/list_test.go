package usecase_test

import (
	"context"
	"errors"
	"testing"

	"shareit/internal/booking"
	"shareit/internal/booking/repository"
	"shareit/internal/booking/usecase"
)

func TestList(t *testing.T) {
	input := booking.ListInput{UserID: 2, State: booking.StateFuture, From: 0, Size: 20}

	t.Run("Booker Options Pass Through", func(t *testing.T) {
		repoMock := &mockBookingRepo{
			listByBookerFunc: func(opt repository.ListBookingsOptions) ([]repository.Record, error) {
				if opt.UserID != 2 || opt.State != booking.StateFuture {
					t.Errorf("unexpected options: %+v", opt)
				}
				if opt.Now.IsZero() {
					t.Errorf("expected Now to anchor time-window states")
				}
				return []repository.Record{waitingRecord(5)}, nil
			},
		}
		uc := usecase.New(repoMock, &mockItemRepo{}, &mockLogger{})
		out, err := uc.ListForBooker(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Views) != 1 || out.Views[0].Booking.ID != 5 {
			t.Errorf("unexpected views: %+v", out.Views)
		}
	})

	t.Run("Owner Repository Error", func(t *testing.T) {
		repoMock := &mockBookingRepo{
			listByOwnerFunc: func(opt repository.ListBookingsOptions) ([]repository.Record, error) {
				return nil, errors.New("db down")
			},
		}
		uc := usecase.New(repoMock, &mockItemRepo{}, &mockLogger{})
		if _, err := uc.ListForOwner(context.Background(), input); err == nil {
			t.Errorf("expected repository error to surface")
		}
	})

	t.Run("Empty Result Is Not An Error", func(t *testing.T) {
		uc := usecase.New(&mockBookingRepo{}, &mockItemRepo{}, &mockLogger{})
		out, err := uc.ListForOwner(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Views) != 0 {
			t.Errorf("expected empty views, got %d", len(out.Views))
		}
	})
}
