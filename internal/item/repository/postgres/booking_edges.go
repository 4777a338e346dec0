package postgres

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"shareit/internal/item/repository"
	"shareit/internal/model"
)

// BookingEdges resolves, per item, the last booking (latest start at or
// before At) and the next booking (earliest start after At), considering
// APPROVED bookings only. Uses DISTINCT ON to take one row per item.
func (r *implRepository) BookingEdges(ctx context.Context, opt repository.BookingEdgesOptions) (map[int64]repository.BookingEdges, error) {
	if len(opt.ItemIDs) == 0 {
		return map[int64]repository.BookingEdges{}, nil
	}

	edges := make(map[int64]repository.BookingEdges, len(opt.ItemIDs))

	last, err := r.edgeQuery(ctx, opt,
		goqu.C("start_date").Lte(opt.At),
		goqu.I("start_date").Desc(),
	)
	if err != nil {
		return nil, err
	}
	for id, b := range last {
		e := edges[id]
		e.Last = b
		edges[id] = e
	}

	next, err := r.edgeQuery(ctx, opt,
		goqu.C("start_date").Gt(opt.At),
		goqu.I("start_date").Asc(),
	)
	if err != nil {
		return nil, err
	}
	for id, b := range next {
		e := edges[id]
		e.Next = b
		edges[id] = e
	}

	return edges, nil
}

func (r *implRepository) edgeQuery(
	ctx context.Context,
	opt repository.BookingEdgesOptions,
	cond exp.Expression,
	order exp.OrderedExpression,
) (map[int64]*model.Booking, error) {
	sql, args, err := goqu.Dialect(dialectPostgres).
		From(tableBookings).
		Select("id", "item_id", "booker_id", "start_date", "end_date", "status").
		Distinct("item_id").
		Where(
			goqu.C("item_id").In(opt.ItemIDs),
			goqu.C("status").Eq(string(model.BookingStatusApproved)),
			cond,
		).
		Order(goqu.I("item_id").Asc(), order).
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

	result := make(map[int64]*model.Booking)
	for rows.Next() {
		var (
			b      model.Booking
			status string
		)
		err := rows.Scan(&b.ID, &b.ItemID, &b.BookerID, &b.Start, &b.End, &status)
		if err != nil {
			return nil, err
		}
		b.Status = model.BookingStatus(status)
		result[b.ItemID] = &b
	}
	return result, rows.Err()
}
