package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"shareit/internal/model"
	"shareit/internal/request"
	"shareit/internal/request/repository"
	"shareit/internal/request/usecase"
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

// Mock request repository with overridable behavior per method.
type mockRequestRepo struct {
	createFunc       func(opt repository.CreateRequestOptions) (model.ItemRequest, error)
	getOneFunc       func(opt repository.GetOneRequestOptions) (model.ItemRequest, error)
	listByAuthorFunc func(authorID int64) ([]model.ItemRequest, error)
	listOthersFunc   func(opt repository.ListOthersOptions) ([]model.ItemRequest, error)
	listAnswersFunc  func(requestIDs []int64) (map[int64][]model.Item, error)
}

func (m *mockRequestRepo) CreateRequest(ctx context.Context, opt repository.CreateRequestOptions) (model.ItemRequest, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.ItemRequest{}, nil
}

func (m *mockRequestRepo) GetOneRequest(ctx context.Context, opt repository.GetOneRequestOptions) (model.ItemRequest, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return model.ItemRequest{}, nil
}

func (m *mockRequestRepo) ListByAuthor(ctx context.Context, authorID int64) ([]model.ItemRequest, error) {
	if m.listByAuthorFunc != nil {
		return m.listByAuthorFunc(authorID)
	}
	return nil, nil
}

func (m *mockRequestRepo) ListOthers(ctx context.Context, opt repository.ListOthersOptions) ([]model.ItemRequest, error) {
	if m.listOthersFunc != nil {
		return m.listOthersFunc(opt)
	}
	return nil, nil
}

func (m *mockRequestRepo) ListAnswers(ctx context.Context, requestIDs []int64) (map[int64][]model.Item, error) {
	if m.listAnswersFunc != nil {
		return m.listAnswersFunc(requestIDs)
	}
	return map[int64][]model.Item{}, nil
}

func TestCreateRequest(t *testing.T) {
	t.Run("Blank Description Rejected", func(t *testing.T) {
		uc := usecase.New(&mockRequestRepo{}, &mockLogger{})
		_, err := uc.Create(context.Background(), request.CreateInput{AuthorID: 1, Description: "   "})
		if !errors.Is(err, request.ErrBlankDescription) {
			t.Errorf("expected ErrBlankDescription, got %v", err)
		}
	})

	t.Run("Created Instant Is Stamped", func(t *testing.T) {
		repoMock := &mockRequestRepo{
			createFunc: func(opt repository.CreateRequestOptions) (model.ItemRequest, error) {
				if opt.Created.IsZero() {
					t.Errorf("expected creation instant to be stamped")
				}
				return model.ItemRequest{
					ID: 3, AuthorID: opt.AuthorID,
					Description: opt.Description, Created: opt.Created,
				}, nil
			},
		}
		uc := usecase.New(repoMock, &mockLogger{})
		out, err := uc.Create(context.Background(), request.CreateInput{AuthorID: 1, Description: "need a drill"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if time.Since(out.Request.Created) > time.Minute {
			t.Errorf("creation instant should be recent")
		}
	})
}

func TestListRequests(t *testing.T) {
	reqs := []model.ItemRequest{
		{ID: 2, AuthorID: 1, Description: "need a ladder"},
		{ID: 1, AuthorID: 1, Description: "need a drill"},
	}

	t.Run("Mine With Answers", func(t *testing.T) {
		repoMock := &mockRequestRepo{
			listByAuthorFunc: func(authorID int64) ([]model.ItemRequest, error) {
				if authorID != 1 {
					t.Errorf("expected author 1, got %d", authorID)
				}
				return reqs, nil
			},
			listAnswersFunc: func(requestIDs []int64) (map[int64][]model.Item, error) {
				if len(requestIDs) != 2 {
					t.Errorf("expected a single batched answer lookup, got %v", requestIDs)
				}
				return map[int64][]model.Item{
					1: {{ID: 10, Name: "Drill", RequestID: &requestIDs[1]}},
				}, nil
			},
		}
		uc := usecase.New(repoMock, &mockLogger{})
		out, err := uc.ListMine(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Views) != 2 {
			t.Fatalf("expected 2 views, got %d", len(out.Views))
		}
		if len(out.Views[0].Items) != 0 {
			t.Errorf("request 2 has no answers")
		}
		if len(out.Views[1].Items) != 1 {
			t.Errorf("request 1 should carry its answering item")
		}
	})

	t.Run("Others Excludes The Caller", func(t *testing.T) {
		repoMock := &mockRequestRepo{
			listOthersFunc: func(opt repository.ListOthersOptions) ([]model.ItemRequest, error) {
				if opt.ExcludeAuthorID != 1 {
					t.Errorf("expected caller excluded, got %+v", opt)
				}
				if opt.Limit != 20 || opt.Offset != 0 {
					t.Errorf("unexpected paging: %+v", opt)
				}
				return []model.ItemRequest{{ID: 7, AuthorID: 5, Description: "need a tent"}}, nil
			},
		}
		uc := usecase.New(repoMock, &mockLogger{})
		out, err := uc.ListOthers(context.Background(), request.ListOthersInput{AuthorID: 1, From: 0, Size: 20})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Views) != 1 || out.Views[0].Request.AuthorID != 5 {
			t.Errorf("unexpected views: %+v", out.Views)
		}
	})

	t.Run("Empty List Short-Circuits Answers", func(t *testing.T) {
		repoMock := &mockRequestRepo{
			listAnswersFunc: func(requestIDs []int64) (map[int64][]model.Item, error) {
				t.Fatal("answers must not be fetched for an empty request list")
				return nil, nil
			},
		}
		uc := usecase.New(repoMock, &mockLogger{})
		out, err := uc.ListMine(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Views) != 0 {
			t.Errorf("expected no views, got %d", len(out.Views))
		}
	})
}

func TestRequestDetail(t *testing.T) {
	t.Run("Missing Request", func(t *testing.T) {
		uc := usecase.New(&mockRequestRepo{}, &mockLogger{})
		_, err := uc.Detail(context.Background(), 404)
		if !errors.Is(err, request.ErrRequestNotFound) {
			t.Errorf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("Detail Carries Answers", func(t *testing.T) {
		repoMock := &mockRequestRepo{
			getOneFunc: func(opt repository.GetOneRequestOptions) (model.ItemRequest, error) {
				return model.ItemRequest{ID: opt.ID, AuthorID: 1, Description: "need a drill"}, nil
			},
			listAnswersFunc: func(requestIDs []int64) (map[int64][]model.Item, error) {
				return map[int64][]model.Item{requestIDs[0]: {{ID: 10, Name: "Drill"}}}, nil
			},
		}
		uc := usecase.New(repoMock, &mockLogger{})
		out, err := uc.Detail(context.Background(), 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.View.Request.ID != 3 || len(out.View.Items) != 1 {
			t.Errorf("unexpected view: %+v", out.View)
		}
	})
}
