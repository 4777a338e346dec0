package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shareit/internal/booking"
	"shareit/internal/booking/repository"
	"shareit/internal/model"
	"shareit/pkg/log"
)

const (
	tableBookings = "bookings"
	tableItems    = "items"
	tableUsers    = "users"

	colID        = "id"
	colItemID    = "item_id"
	colBookerID  = "booker_id"
	colStartDate = "start_date"
	colEndDate   = "end_date"
	colStatus    = "status"

	dialectPostgres = "postgres"
)

// recordColumns is the join projection shared by every read query:
// booking row + item name/owner + booker name.
var recordColumns = []any{
	goqu.I("b.id"), goqu.I("b.item_id"), goqu.I("b.booker_id"),
	goqu.I("b.start_date"), goqu.I("b.end_date"), goqu.I("b.status"),
	goqu.I("i.name"), goqu.I("i.owner_id"), goqu.I("u.name"),
}

type implRepository struct {
	pool *pgxpool.Pool
	l    log.Logger
}

// New creates a PostgreSQL-backed booking repository.
func New(pool *pgxpool.Pool, l log.Logger) *implRepository {
	return &implRepository{pool: pool, l: l}
}

// CreateBooking locks the item row, rejects periods overlapping an APPROVED
// booking of the same item, and inserts the WAITING booking, all in one
// transaction so concurrent writers cannot double-book.
func (r *implRepository) CreateBooking(ctx context.Context, opt repository.CreateBookingOptions) (model.Booking, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return model.Booking{}, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	lockSQL, lockArgs, err := goqu.Dialect(dialectPostgres).
		From(tableItems).
		Select(colID).
		Where(goqu.C(colID).Eq(opt.ItemID)).
		ForUpdate(exp.Wait).
		Prepared(true).
		ToSQL()
	if err != nil {
		return model.Booking{}, err
	}
	var lockedID int64
	if err := tx.QueryRow(ctx, lockSQL, lockArgs...).Scan(&lockedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Booking{}, booking.ErrItemNotFound
		}
		return model.Booking{}, err
	}

	// Half-open interval collision: [start, end) intersects [s, e) iff
	// start < e AND end > s.
	overlapSQL, overlapArgs, err := goqu.Dialect(dialectPostgres).
		From(tableBookings).
		Select(goqu.L("1")).
		Where(
			goqu.C(colItemID).Eq(opt.ItemID),
			goqu.C(colStatus).Eq(string(model.BookingStatusApproved)),
			goqu.C(colStartDate).Lt(opt.End),
			goqu.C(colEndDate).Gt(opt.Start),
		).
		Limit(1).
		Prepared(true).
		ToSQL()
	if err != nil {
		return model.Booking{}, err
	}
	var one int
	err = tx.QueryRow(ctx, overlapSQL, overlapArgs...).Scan(&one)
	if err == nil {
		return model.Booking{}, booking.ErrOverlap
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return model.Booking{}, err
	}

	insertSQL, insertArgs, err := goqu.Dialect(dialectPostgres).
		Insert(tableBookings).
		Rows(goqu.Record{
			colItemID:    opt.ItemID,
			colBookerID:  opt.BookerID,
			colStartDate: opt.Start,
			colEndDate:   opt.End,
			colStatus:    string(model.BookingStatusWaiting),
		}).
		Returning(colID, colItemID, colBookerID, colStartDate, colEndDate, colStatus).
		Prepared(true).
		ToSQL()
	if err != nil {
		return model.Booking{}, err
	}

	b, err := scanBooking(tx.QueryRow(ctx, insertSQL, insertArgs...))
	if err != nil {
		return model.Booking{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Booking{}, err
	}
	return b, nil
}

func (r *implRepository) GetOneBooking(ctx context.Context, id int64) (repository.Record, error) {
	sql, args, err := recordQuery().
		Where(goqu.I("b.id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return repository.Record{}, err
	}

	rec, err := scanRecord(r.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.Record{}, nil
		}
		return repository.Record{}, err
	}
	return rec, nil
}

// DecideBooking flips a WAITING booking to its terminal status inside one
// transaction. The item row is locked first, so approvals serialize with
// CreateBooking and with each other; approving a period that now collides
// with an APPROVED booking of the same item fails with ErrOverlap. The
// conditional WHERE on the final UPDATE handles concurrent deciders: only
// the first caller matches a row, the loser gets decided=false.
func (r *implRepository) DecideBooking(ctx context.Context, opt repository.DecideBookingOptions) (model.Booking, bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return model.Booking{}, false, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	readSQL, readArgs, err := goqu.Dialect(dialectPostgres).
		From(tableBookings).
		Select(colItemID, colStartDate, colEndDate).
		Where(goqu.C(colID).Eq(opt.ID)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return model.Booking{}, false, err
	}
	var target struct {
		itemID     int64
		start, end time.Time
	}
	if err := tx.QueryRow(ctx, readSQL, readArgs...).Scan(&target.itemID, &target.start, &target.end); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Booking{}, false, nil
		}
		return model.Booking{}, false, err
	}

	lockSQL, lockArgs, err := goqu.Dialect(dialectPostgres).
		From(tableItems).
		Select(colID).
		Where(goqu.C(colID).Eq(target.itemID)).
		ForUpdate(exp.Wait).
		Prepared(true).
		ToSQL()
	if err != nil {
		return model.Booking{}, false, err
	}
	var lockedID int64
	if err := tx.QueryRow(ctx, lockSQL, lockArgs...).Scan(&lockedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Booking{}, false, nil
		}
		return model.Booking{}, false, err
	}

	if opt.Status == model.BookingStatusApproved {
		overlapSQL, overlapArgs, err := goqu.Dialect(dialectPostgres).
			From(tableBookings).
			Select(goqu.L("1")).
			Where(
				goqu.C(colID).Neq(opt.ID),
				goqu.C(colItemID).Eq(target.itemID),
				goqu.C(colStatus).Eq(string(model.BookingStatusApproved)),
				goqu.C(colStartDate).Lt(target.end),
				goqu.C(colEndDate).Gt(target.start),
			).
			Limit(1).
			Prepared(true).
			ToSQL()
		if err != nil {
			return model.Booking{}, false, err
		}
		var one int
		err = tx.QueryRow(ctx, overlapSQL, overlapArgs...).Scan(&one)
		if err == nil {
			return model.Booking{}, false, booking.ErrOverlap
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return model.Booking{}, false, err
		}
	}

	updateSQL, updateArgs, err := goqu.Dialect(dialectPostgres).
		Update(tableBookings).
		Set(goqu.Record{colStatus: string(opt.Status)}).
		Where(
			goqu.C(colID).Eq(opt.ID),
			goqu.C(colStatus).Eq(string(model.BookingStatusWaiting)),
		).
		Returning(colID, colItemID, colBookerID, colStartDate, colEndDate, colStatus).
		Prepared(true).
		ToSQL()
	if err != nil {
		return model.Booking{}, false, err
	}

	b, err := scanBooking(tx.QueryRow(ctx, updateSQL, updateArgs...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Booking{}, false, nil
		}
		return model.Booking{}, false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Booking{}, false, err
	}
	return b, true, nil
}

func (r *implRepository) ListByBooker(ctx context.Context, opt repository.ListBookingsOptions) ([]repository.Record, error) {
	return r.list(ctx, goqu.I("b.booker_id").Eq(opt.UserID), opt)
}

func (r *implRepository) ListByOwner(ctx context.Context, opt repository.ListBookingsOptions) ([]repository.Record, error) {
	return r.list(ctx, goqu.I("i.owner_id").Eq(opt.UserID), opt)
}

func (r *implRepository) list(ctx context.Context, side exp.BooleanExpression, opt repository.ListBookingsOptions) ([]repository.Record, error) {
	ds := recordQuery().
		Where(side).
		Order(goqu.I("b.start_date").Desc())

	if cond, ok := stateCondition(opt); ok {
		ds = ds.Where(cond)
	}
	if opt.Limit > 0 {
		ds = ds.Limit(uint(opt.Limit)).Offset(uint(opt.Offset))
	}

	sql, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []repository.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// stateCondition translates a booking.State into a WHERE clause.
// ALL has no condition; the caller is expected to have parsed the token
// already, so an unknown value here falls through as ALL.
func stateCondition(opt repository.ListBookingsOptions) (exp.Expression, bool) {
	switch opt.State {
	case booking.StateCurrent:
		return goqu.And(
			goqu.I("b.start_date").Lte(opt.Now),
			goqu.I("b.end_date").Gte(opt.Now),
		), true
	case booking.StatePast:
		return goqu.I("b.end_date").Lt(opt.Now), true
	case booking.StateFuture:
		return goqu.I("b.start_date").Gt(opt.Now), true
	case booking.StateWaiting, booking.StateApproved, booking.StateRejected:
		return goqu.I("b.status").Eq(string(opt.State)), true
	default:
		return nil, false
	}
}

func recordQuery() *goqu.SelectDataset {
	return goqu.Dialect(dialectPostgres).
		From(goqu.T(tableBookings).As("b")).
		Join(goqu.T(tableItems).As("i"), goqu.On(goqu.I("b.item_id").Eq(goqu.I("i.id")))).
		Join(goqu.T(tableUsers).As("u"), goqu.On(goqu.I("b.booker_id").Eq(goqu.I("u.id")))).
		Select(recordColumns...)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (model.Booking, error) {
	var (
		b      model.Booking
		status string
	)
	if err := row.Scan(&b.ID, &b.ItemID, &b.BookerID, &b.Start, &b.End, &status); err != nil {
		return model.Booking{}, err
	}
	b.Status = model.BookingStatus(status)
	return b, nil
}

func scanRecord(row rowScanner) (repository.Record, error) {
	var (
		rec    repository.Record
		status string
	)
	err := row.Scan(
		&rec.Booking.ID, &rec.Booking.ItemID, &rec.Booking.BookerID,
		&rec.Booking.Start, &rec.Booking.End, &status,
		&rec.ItemName, &rec.ItemOwnerID, &rec.BookerName,
	)
	if err != nil {
		return repository.Record{}, err
	}
	rec.Booking.Status = model.BookingStatus(status)
	return rec, nil
}
