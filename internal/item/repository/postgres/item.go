package postgres

import (
	"context"
	"errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shareit/internal/item"
	"shareit/internal/item/repository"
	"shareit/internal/model"
	"shareit/pkg/log"
)

const (
	tableItems    = "items"
	tableComments = "comments"
	tableBookings = "bookings"
	tableUsers    = "users"

	colID          = "id"
	colOwnerID     = "owner_id"
	colName        = "name"
	colDescription = "description"
	colAvailable   = "available"
	colRequestID   = "request_id"

	dialectPostgres = "postgres"
)

var itemColumns = []any{colID, colOwnerID, colName, colDescription, colAvailable, colRequestID}

type implRepository struct {
	pool *pgxpool.Pool
	l    log.Logger
}

// New creates a PostgreSQL-backed item repository.
func New(pool *pgxpool.Pool, l log.Logger) *implRepository {
	return &implRepository{pool: pool, l: l}
}

func (r *implRepository) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (model.Item, error) {
	rec := goqu.Record{
		colOwnerID:     opt.OwnerID,
		colName:        opt.Name,
		colDescription: opt.Description,
		colAvailable:   opt.Available,
	}
	if opt.RequestID != nil {
		rec[colRequestID] = *opt.RequestID
	}

	sql, args, err := goqu.Dialect(dialectPostgres).
		Insert(tableItems).
		Rows(rec).
		Returning(itemColumns...).
		Prepared(true).
		ToSQL()
	if err != nil {
		return model.Item{}, err
	}

	return scanItem(r.pool.QueryRow(ctx, sql, args...))
}

func (r *implRepository) GetOneItem(ctx context.Context, opt repository.GetOneItemOptions) (model.Item, error) {
	sql, args, err := goqu.Dialect(dialectPostgres).
		From(tableItems).
		Select(itemColumns...).
		Where(goqu.C(colID).Eq(opt.ID)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return model.Item{}, err
	}

	it, err := scanItem(r.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Item{}, nil
		}
		return model.Item{}, err
	}
	return it, nil
}

func (r *implRepository) UpdateItem(ctx context.Context, opt repository.UpdateItemOptions) (model.Item, error) {
	sql, args, err := goqu.Dialect(dialectPostgres).
		Update(tableItems).
		Set(goqu.Record{
			colName:        opt.Name,
			colDescription: opt.Description,
			colAvailable:   opt.Available,
		}).
		Where(goqu.C(colID).Eq(opt.ID)).
		Returning(itemColumns...).
		Prepared(true).
		ToSQL()
	if err != nil {
		return model.Item{}, err
	}

	it, err := scanItem(r.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Item{}, item.ErrItemNotFound
		}
		return model.Item{}, err
	}
	return it, nil
}

func (r *implRepository) ListByOwner(ctx context.Context, opt repository.ListItemsOptions) ([]model.Item, error) {
	ds := goqu.Dialect(dialectPostgres).
		From(tableItems).
		Select(itemColumns...).
		Where(goqu.C(colOwnerID).Eq(opt.OwnerID)).
		Order(goqu.I(colID).Asc())

	if opt.Limit > 0 {
		ds = ds.Limit(uint(opt.Limit)).Offset(uint(opt.Offset))
	}

	sql, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}
	return r.queryItems(ctx, sql, args)
}

func (r *implRepository) SearchItems(ctx context.Context, opt repository.SearchItemsOptions) ([]model.Item, error) {
	pattern := "%" + opt.Text + "%"

	ds := goqu.Dialect(dialectPostgres).
		From(tableItems).
		Select(itemColumns...).
		Where(
			goqu.C(colAvailable).IsTrue(),
			goqu.Or(
				goqu.C(colName).ILike(pattern),
				goqu.C(colDescription).ILike(pattern),
			),
		).
		Order(goqu.I(colID).Asc())

	if opt.Limit > 0 {
		ds = ds.Limit(uint(opt.Limit)).Offset(uint(opt.Offset))
	}

	sql, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}
	return r.queryItems(ctx, sql, args)
}

func (r *implRepository) queryItems(ctx context.Context, sql string, args []any) ([]model.Item, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (model.Item, error) {
	var it model.Item
	err := row.Scan(&it.ID, &it.OwnerID, &it.Name, &it.Description, &it.Available, &it.RequestID)
	if err != nil {
		return model.Item{}, err
	}
	return it, nil
}
