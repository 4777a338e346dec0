package usecase_test

import (
	"context"
	"errors"
	"testing"

	"shareit/internal/model"
	"shareit/internal/user"
	"shareit/internal/user/repository"
	"shareit/internal/user/usecase"
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

// Mock user repository with overridable behavior per method.
type mockUserRepo struct {
	createFunc func(opt repository.CreateUserOptions) (model.User, error)
	getOneFunc func(opt repository.GetOneUserOptions) (model.User, error)
	listFunc   func() ([]model.User, error)
	updateFunc func(opt repository.UpdateUserOptions) (model.User, error)
	deleteFunc func(id int64) error
}

func (m *mockUserRepo) CreateUser(ctx context.Context, opt repository.CreateUserOptions) (model.User, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.User{}, nil
}

func (m *mockUserRepo) GetOneUser(ctx context.Context, opt repository.GetOneUserOptions) (model.User, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return model.User{}, nil
}

func (m *mockUserRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	if m.listFunc != nil {
		return m.listFunc()
	}
	return nil, nil
}

func (m *mockUserRepo) UpdateUser(ctx context.Context, opt repository.UpdateUserOptions) (model.User, error) {
	if m.updateFunc != nil {
		return m.updateFunc(opt)
	}
	return model.User{}, nil
}

func (m *mockUserRepo) DeleteUser(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return nil
}

type mockIdentityCache struct {
	forgotten []int64
}

func (m *mockIdentityCache) ForgetUser(id int64) {
	m.forgotten = append(m.forgotten, id)
}

func TestCreateUser(t *testing.T) {
	input := user.CreateInput{Name: "Alice", Email: "alice@example.com"}

	t.Run("Invalid Email Rejected", func(t *testing.T) {
		uc := usecase.New(&mockUserRepo{}, nil, &mockLogger{})
		_, err := uc.Create(context.Background(), user.CreateInput{Name: "Alice", Email: "not-an-email"})
		if !errors.Is(err, user.ErrInvalidEmail) {
			t.Errorf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("Duplicate Email Conflict", func(t *testing.T) {
		repoMock := &mockUserRepo{
			getOneFunc: func(opt repository.GetOneUserOptions) (model.User, error) {
				if opt.Email == input.Email {
					return model.User{ID: 9, Name: "Other", Email: input.Email}, nil
				}
				return model.User{}, nil
			},
		}
		uc := usecase.New(repoMock, nil, &mockLogger{})
		_, err := uc.Create(context.Background(), input)
		if !errors.Is(err, user.ErrDuplicateEmail) {
			t.Errorf("expected ErrDuplicateEmail, got %v", err)
		}
	})

	t.Run("Successful Create", func(t *testing.T) {
		repoMock := &mockUserRepo{
			createFunc: func(opt repository.CreateUserOptions) (model.User, error) {
				return model.User{ID: 1, Name: opt.Name, Email: opt.Email}, nil
			},
		}
		uc := usecase.New(repoMock, nil, &mockLogger{})
		out, err := uc.Create(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User.ID != 1 || out.User.Email != input.Email {
			t.Errorf("unexpected user: %+v", out.User)
		}
	})
}

func TestUpdateUser(t *testing.T) {
	alice := model.User{ID: 1, Name: "Alice", Email: "alice@example.com"}

	byID := func(opt repository.GetOneUserOptions) (model.User, error) {
		if opt.ID == alice.ID {
			return alice, nil
		}
		return model.User{}, nil
	}

	t.Run("User Not Found", func(t *testing.T) {
		uc := usecase.New(&mockUserRepo{}, nil, &mockLogger{})
		_, err := uc.Update(context.Background(), user.UpdateInput{ID: 404, Name: "X"})
		if !errors.Is(err, user.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("Email Taken By Another User", func(t *testing.T) {
		repoMock := &mockUserRepo{
			getOneFunc: func(opt repository.GetOneUserOptions) (model.User, error) {
				if opt.Email == "bob@example.com" {
					return model.User{ID: 2, Name: "Bob", Email: opt.Email}, nil
				}
				return byID(opt)
			},
		}
		uc := usecase.New(repoMock, nil, &mockLogger{})
		_, err := uc.Update(context.Background(), user.UpdateInput{ID: 1, Email: "bob@example.com"})
		if !errors.Is(err, user.ErrDuplicateEmail) {
			t.Errorf("expected ErrDuplicateEmail, got %v", err)
		}
	})

	t.Run("Partial Patch Keeps Untouched Fields", func(t *testing.T) {
		repoMock := &mockUserRepo{
			getOneFunc: byID,
			updateFunc: func(opt repository.UpdateUserOptions) (model.User, error) {
				if opt.Email != alice.Email {
					t.Errorf("email should survive a name-only patch, got %q", opt.Email)
				}
				return model.User{ID: opt.ID, Name: opt.Name, Email: opt.Email}, nil
			},
		}
		uc := usecase.New(repoMock, nil, &mockLogger{})
		out, err := uc.Update(context.Background(), user.UpdateInput{ID: 1, Name: "Alicia"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User.Name != "Alicia" {
			t.Errorf("expected patched name, got %q", out.User.Name)
		}
	})

	t.Run("Re-Submitting Own Email Is Fine", func(t *testing.T) {
		repoMock := &mockUserRepo{
			getOneFunc: byID,
			updateFunc: func(opt repository.UpdateUserOptions) (model.User, error) {
				return model.User{ID: opt.ID, Name: opt.Name, Email: opt.Email}, nil
			},
		}
		uc := usecase.New(repoMock, nil, &mockLogger{})
		if _, err := uc.Update(context.Background(), user.UpdateInput{ID: 1, Email: alice.Email}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("Missing User", func(t *testing.T) {
		uc := usecase.New(&mockUserRepo{}, nil, &mockLogger{})
		err := uc.Delete(context.Background(), 404)
		if !errors.Is(err, user.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("Successful Delete", func(t *testing.T) {
		deleted := int64(0)
		repoMock := &mockUserRepo{
			getOneFunc: func(opt repository.GetOneUserOptions) (model.User, error) {
				return model.User{ID: opt.ID, Name: "Alice"}, nil
			},
			deleteFunc: func(id int64) error {
				deleted = id
				return nil
			},
		}
		uc := usecase.New(repoMock, nil, &mockLogger{})
		if err := uc.Delete(context.Background(), 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted != 1 {
			t.Errorf("expected repository delete for id 1, got %d", deleted)
		}
	})

	t.Run("Evicts Identity Cache", func(t *testing.T) {
		// Without eviction a deleted user keeps passing the identity
		// check until the cache TTL runs out.
		repoMock := &mockUserRepo{
			getOneFunc: func(opt repository.GetOneUserOptions) (model.User, error) {
				return model.User{ID: opt.ID, Name: "Alice"}, nil
			},
			deleteFunc: func(id int64) error { return nil },
		}
		cache := &mockIdentityCache{}
		uc := usecase.New(repoMock, cache, &mockLogger{})
		if err := uc.Delete(context.Background(), 7); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cache.forgotten) != 1 || cache.forgotten[0] != 7 {
			t.Errorf("expected id 7 forgotten, got %v", cache.forgotten)
		}
	})

	t.Run("Failed Delete Keeps Cache", func(t *testing.T) {
		repoMock := &mockUserRepo{
			getOneFunc: func(opt repository.GetOneUserOptions) (model.User, error) {
				return model.User{ID: opt.ID, Name: "Alice"}, nil
			},
			deleteFunc: func(id int64) error { return errors.New("connection reset") },
		}
		cache := &mockIdentityCache{}
		uc := usecase.New(repoMock, cache, &mockLogger{})
		if err := uc.Delete(context.Background(), 7); err == nil {
			t.Fatal("expected delete error")
		}
		if len(cache.forgotten) != 0 {
			t.Errorf("cache must stay untouched when delete fails, got %v", cache.forgotten)
		}
	})
}
