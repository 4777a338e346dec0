package usecase_test

import (
	"context"

	"shareit/internal/booking/repository"
	itemRepo "shareit/internal/item/repository"
	"shareit/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock booking repository with overridable behavior per method.
type mockBookingRepo struct {
	createFunc       func(opt repository.CreateBookingOptions) (model.Booking, error)
	getOneFunc       func(id int64) (repository.Record, error)
	decideFunc       func(opt repository.DecideBookingOptions) (model.Booking, bool, error)
	listByBookerFunc func(opt repository.ListBookingsOptions) ([]repository.Record, error)
	listByOwnerFunc  func(opt repository.ListBookingsOptions) ([]repository.Record, error)
}

func (m *mockBookingRepo) CreateBooking(ctx context.Context, opt repository.CreateBookingOptions) (model.Booking, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.Booking{}, nil
}

func (m *mockBookingRepo) GetOneBooking(ctx context.Context, id int64) (repository.Record, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(id)
	}
	return repository.Record{}, nil
}

func (m *mockBookingRepo) DecideBooking(ctx context.Context, opt repository.DecideBookingOptions) (model.Booking, bool, error) {
	if m.decideFunc != nil {
		return m.decideFunc(opt)
	}
	return model.Booking{}, false, nil
}

func (m *mockBookingRepo) ListByBooker(ctx context.Context, opt repository.ListBookingsOptions) ([]repository.Record, error) {
	if m.listByBookerFunc != nil {
		return m.listByBookerFunc(opt)
	}
	return nil, nil
}

func (m *mockBookingRepo) ListByOwner(ctx context.Context, opt repository.ListBookingsOptions) ([]repository.Record, error) {
	if m.listByOwnerFunc != nil {
		return m.listByOwnerFunc(opt)
	}
	return nil, nil
}

// Mock item repository; only GetOneItem matters for booking flows.
type mockItemRepo struct {
	getOneItemFunc func(opt itemRepo.GetOneItemOptions) (model.Item, error)
}

func (m *mockItemRepo) CreateItem(ctx context.Context, opt itemRepo.CreateItemOptions) (model.Item, error) {
	return model.Item{}, nil
}

func (m *mockItemRepo) GetOneItem(ctx context.Context, opt itemRepo.GetOneItemOptions) (model.Item, error) {
	if m.getOneItemFunc != nil {
		return m.getOneItemFunc(opt)
	}
	return model.Item{}, nil
}

func (m *mockItemRepo) UpdateItem(ctx context.Context, opt itemRepo.UpdateItemOptions) (model.Item, error) {
	return model.Item{}, nil
}

func (m *mockItemRepo) ListByOwner(ctx context.Context, opt itemRepo.ListItemsOptions) ([]model.Item, error) {
	return nil, nil
}

func (m *mockItemRepo) SearchItems(ctx context.Context, opt itemRepo.SearchItemsOptions) ([]model.Item, error) {
	return nil, nil
}

func (m *mockItemRepo) CreateComment(ctx context.Context, opt itemRepo.CreateCommentOptions) (model.Comment, error) {
	return model.Comment{}, nil
}

func (m *mockItemRepo) ListComments(ctx context.Context, opt itemRepo.ListCommentsOptions) ([]model.Comment, error) {
	return nil, nil
}

func (m *mockItemRepo) HasFinishedBooking(ctx context.Context, opt itemRepo.HasFinishedBookingOptions) (bool, error) {
	return false, nil
}

func (m *mockItemRepo) BookingEdges(ctx context.Context, opt itemRepo.BookingEdgesOptions) (map[int64]itemRepo.BookingEdges, error) {
	return nil, nil
}
