package postgres

import (
	"context"
	"errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"shareit/internal/model"
	"shareit/internal/user"
	"shareit/internal/user/repository"
	"shareit/pkg/log"
)

const (
	tableUsers = "users"

	colID    = "id"
	colName  = "name"
	colEmail = "email"

	dialectPostgres   = "postgres"
	pgUniqueViolation = "23505"
)

type implRepository struct {
	pool *pgxpool.Pool
	l    log.Logger
}

// New creates a PostgreSQL-backed user repository.
func New(pool *pgxpool.Pool, l log.Logger) *implRepository {
	return &implRepository{pool: pool, l: l}
}

func (r *implRepository) CreateUser(ctx context.Context, opt repository.CreateUserOptions) (model.User, error) {
	sql, args, err := goqu.Dialect(dialectPostgres).
		Insert(tableUsers).
		Rows(goqu.Record{colName: opt.Name, colEmail: opt.Email}).
		Returning(colID, colName, colEmail).
		Prepared(true).
		ToSQL()
	if err != nil {
		return model.User{}, err
	}

	var u model.User
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&u.ID, &u.Name, &u.Email); err != nil {
		return model.User{}, mapPgError(err)
	}
	return u, nil
}

func (r *implRepository) GetOneUser(ctx context.Context, opt repository.GetOneUserOptions) (model.User, error) {
	ds := goqu.Dialect(dialectPostgres).
		From(tableUsers).
		Select(colID, colName, colEmail)

	switch {
	case opt.ID != 0:
		ds = ds.Where(goqu.C(colID).Eq(opt.ID))
	case opt.Email != "":
		ds = ds.Where(goqu.C(colEmail).Eq(opt.Email))
	default:
		return model.User{}, errors.New("GetOneUser: no selector provided")
	}

	sql, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return model.User{}, err
	}

	var u model.User
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&u.ID, &u.Name, &u.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, nil
		}
		return model.User{}, err
	}
	return u, nil
}

func (r *implRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	sql, args, err := goqu.Dialect(dialectPostgres).
		From(tableUsers).
		Select(colID, colName, colEmail).
		Order(goqu.I(colID).Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *implRepository) UpdateUser(ctx context.Context, opt repository.UpdateUserOptions) (model.User, error) {
	sql, args, err := goqu.Dialect(dialectPostgres).
		Update(tableUsers).
		Set(goqu.Record{colName: opt.Name, colEmail: opt.Email}).
		Where(goqu.C(colID).Eq(opt.ID)).
		Returning(colID, colName, colEmail).
		Prepared(true).
		ToSQL()
	if err != nil {
		return model.User{}, err
	}

	var u model.User
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&u.ID, &u.Name, &u.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, user.ErrUserNotFound
		}
		return model.User{}, mapPgError(err)
	}
	return u, nil
}

func (r *implRepository) DeleteUser(ctx context.Context, id int64) error {
	sql, args, err := goqu.Dialect(dialectPostgres).
		Delete(tableUsers).
		Where(goqu.C(colID).Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// mapPgError converts a unique-constraint violation on the email column into
// the domain duplicate-email error. Catches races the usecase pre-check misses.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return user.ErrDuplicateEmail
	}
	return err
}
