package postgres

import (
	"context"
	"errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shareit/internal/model"
	"shareit/internal/request/repository"
	"shareit/pkg/log"
)

const (
	tableRequests = "requests"
	tableItems    = "items"

	colID          = "id"
	colAuthorID    = "author_id"
	colDescription = "description"
	colCreated     = "created"

	dialectPostgres = "postgres"
)

var requestColumns = []any{colID, colAuthorID, colDescription, colCreated}

type implRepository struct {
	pool *pgxpool.Pool
	l    log.Logger
}

// New creates a PostgreSQL-backed item-request repository.
func New(pool *pgxpool.Pool, l log.Logger) *implRepository {
	return &implRepository{pool: pool, l: l}
}

func (r *implRepository) CreateRequest(ctx context.Context, opt repository.CreateRequestOptions) (model.ItemRequest, error) {
	sql, args, err := goqu.Dialect(dialectPostgres).
		Insert(tableRequests).
		Rows(goqu.Record{
			colAuthorID:    opt.AuthorID,
			colDescription: opt.Description,
			colCreated:     opt.Created,
		}).
		Returning(requestColumns...).
		Prepared(true).
		ToSQL()
	if err != nil {
		return model.ItemRequest{}, err
	}

	return scanRequest(r.pool.QueryRow(ctx, sql, args...))
}

func (r *implRepository) GetOneRequest(ctx context.Context, opt repository.GetOneRequestOptions) (model.ItemRequest, error) {
	sql, args, err := goqu.Dialect(dialectPostgres).
		From(tableRequests).
		Select(requestColumns...).
		Where(goqu.C(colID).Eq(opt.ID)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return model.ItemRequest{}, err
	}

	req, err := scanRequest(r.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ItemRequest{}, nil
		}
		return model.ItemRequest{}, err
	}
	return req, nil
}

func (r *implRepository) ListByAuthor(ctx context.Context, authorID int64) ([]model.ItemRequest, error) {
	ds := goqu.Dialect(dialectPostgres).
		From(tableRequests).
		Select(requestColumns...).
		Where(goqu.C(colAuthorID).Eq(authorID)).
		Order(goqu.I(colCreated).Desc())

	sql, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}
	return r.queryRequests(ctx, sql, args)
}

func (r *implRepository) ListOthers(ctx context.Context, opt repository.ListOthersOptions) ([]model.ItemRequest, error) {
	ds := goqu.Dialect(dialectPostgres).
		From(tableRequests).
		Select(requestColumns...).
		Where(goqu.C(colAuthorID).Neq(opt.ExcludeAuthorID)).
		Order(goqu.I(colCreated).Desc())

	if opt.Limit > 0 {
		ds = ds.Limit(uint(opt.Limit)).Offset(uint(opt.Offset))
	}

	sql, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}
	return r.queryRequests(ctx, sql, args)
}

func (r *implRepository) ListAnswers(ctx context.Context, requestIDs []int64) (map[int64][]model.Item, error) {
	if len(requestIDs) == 0 {
		return map[int64][]model.Item{}, nil
	}

	sql, args, err := goqu.Dialect(dialectPostgres).
		From(tableItems).
		Select("id", "owner_id", "name", "description", "available", "request_id").
		Where(goqu.C("request_id").In(requestIDs)).
		Order(goqu.I("id").Asc()).
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

	answers := make(map[int64][]model.Item)
	for rows.Next() {
		var it model.Item
		err := rows.Scan(&it.ID, &it.OwnerID, &it.Name, &it.Description, &it.Available, &it.RequestID)
		if err != nil {
			return nil, err
		}
		if it.RequestID != nil {
			answers[*it.RequestID] = append(answers[*it.RequestID], it)
		}
	}
	return answers, rows.Err()
}

func (r *implRepository) queryRequests(ctx context.Context, sql string, args []any) ([]model.ItemRequest, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []model.ItemRequest
	for rows.Next() {
		var req model.ItemRequest
		if err := rows.Scan(&req.ID, &req.AuthorID, &req.Description, &req.Created); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (model.ItemRequest, error) {
	var req model.ItemRequest
	err := row.Scan(&req.ID, &req.AuthorID, &req.Description, &req.Created)
	if err != nil {
		return model.ItemRequest{}, err
	}
	return req, nil
}
