package usecase_test

import (
	"context"

	"shareit/internal/item/repository"
	"shareit/internal/model"
	requestRepo "shareit/internal/request/repository"
	userRepo "shareit/internal/user/repository"
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

// Mock item repository with overridable behavior per method.
type mockItemRepo struct {
	createFunc      func(opt repository.CreateItemOptions) (model.Item, error)
	getOneFunc      func(opt repository.GetOneItemOptions) (model.Item, error)
	updateFunc      func(opt repository.UpdateItemOptions) (model.Item, error)
	listByOwnerFunc func(opt repository.ListItemsOptions) ([]model.Item, error)
	searchFunc      func(opt repository.SearchItemsOptions) ([]model.Item, error)
	createCmtFunc   func(opt repository.CreateCommentOptions) (model.Comment, error)
	listCmtFunc     func(opt repository.ListCommentsOptions) ([]model.Comment, error)
	finishedFunc    func(opt repository.HasFinishedBookingOptions) (bool, error)
	edgesFunc       func(opt repository.BookingEdgesOptions) (map[int64]repository.BookingEdges, error)
}

func (m *mockItemRepo) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (model.Item, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.Item{}, nil
}

func (m *mockItemRepo) GetOneItem(ctx context.Context, opt repository.GetOneItemOptions) (model.Item, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return model.Item{}, nil
}

func (m *mockItemRepo) UpdateItem(ctx context.Context, opt repository.UpdateItemOptions) (model.Item, error) {
	if m.updateFunc != nil {
		return m.updateFunc(opt)
	}
	return model.Item{}, nil
}

func (m *mockItemRepo) ListByOwner(ctx context.Context, opt repository.ListItemsOptions) ([]model.Item, error) {
	if m.listByOwnerFunc != nil {
		return m.listByOwnerFunc(opt)
	}
	return nil, nil
}

func (m *mockItemRepo) SearchItems(ctx context.Context, opt repository.SearchItemsOptions) ([]model.Item, error) {
	if m.searchFunc != nil {
		return m.searchFunc(opt)
	}
	return nil, nil
}

func (m *mockItemRepo) CreateComment(ctx context.Context, opt repository.CreateCommentOptions) (model.Comment, error) {
	if m.createCmtFunc != nil {
		return m.createCmtFunc(opt)
	}
	return model.Comment{}, nil
}

func (m *mockItemRepo) ListComments(ctx context.Context, opt repository.ListCommentsOptions) ([]model.Comment, error) {
	if m.listCmtFunc != nil {
		return m.listCmtFunc(opt)
	}
	return nil, nil
}

func (m *mockItemRepo) HasFinishedBooking(ctx context.Context, opt repository.HasFinishedBookingOptions) (bool, error) {
	if m.finishedFunc != nil {
		return m.finishedFunc(opt)
	}
	return false, nil
}

func (m *mockItemRepo) BookingEdges(ctx context.Context, opt repository.BookingEdgesOptions) (map[int64]repository.BookingEdges, error) {
	if m.edgesFunc != nil {
		return m.edgesFunc(opt)
	}
	return map[int64]repository.BookingEdges{}, nil
}

// Mock user repository; only GetOneUser matters for item flows.
type mockUserRepo struct {
	getOneFunc func(opt userRepo.GetOneUserOptions) (model.User, error)
}

func (m *mockUserRepo) CreateUser(ctx context.Context, opt userRepo.CreateUserOptions) (model.User, error) {
	return model.User{}, nil
}

func (m *mockUserRepo) GetOneUser(ctx context.Context, opt userRepo.GetOneUserOptions) (model.User, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return model.User{}, nil
}

func (m *mockUserRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	return nil, nil
}

func (m *mockUserRepo) UpdateUser(ctx context.Context, opt userRepo.UpdateUserOptions) (model.User, error) {
	return model.User{}, nil
}

func (m *mockUserRepo) DeleteUser(ctx context.Context, id int64) error {
	return nil
}

// Mock request repository; only GetOneRequest matters for item flows.
type mockRequestRepo struct {
	getOneFunc func(opt requestRepo.GetOneRequestOptions) (model.ItemRequest, error)
}

func (m *mockRequestRepo) CreateRequest(ctx context.Context, opt requestRepo.CreateRequestOptions) (model.ItemRequest, error) {
	return model.ItemRequest{}, nil
}

func (m *mockRequestRepo) GetOneRequest(ctx context.Context, opt requestRepo.GetOneRequestOptions) (model.ItemRequest, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return model.ItemRequest{}, nil
}

func (m *mockRequestRepo) ListByAuthor(ctx context.Context, authorID int64) ([]model.ItemRequest, error) {
	return nil, nil
}

func (m *mockRequestRepo) ListOthers(ctx context.Context, opt requestRepo.ListOthersOptions) ([]model.ItemRequest, error) {
	return nil, nil
}

func (m *mockRequestRepo) ListAnswers(ctx context.Context, requestIDs []int64) (map[int64][]model.Item, error) {
	return map[int64][]model.Item{}, nil
}
