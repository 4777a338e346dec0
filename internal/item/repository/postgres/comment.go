package postgres

import (
	"context"
	"errors"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"

	"shareit/internal/item/repository"
	"shareit/internal/model"
)

const (
	colItemID   = "item_id"
	colAuthorID = "author_id"
	colText     = "text"
	colCreated  = "created"
)

func (r *implRepository) CreateComment(ctx context.Context, opt repository.CreateCommentOptions) (model.Comment, error) {
	sql, args, err := goqu.Dialect(dialectPostgres).
		Insert(tableComments).
		Rows(goqu.Record{
			colItemID:   opt.ItemID,
			colAuthorID: opt.AuthorID,
			colText:     opt.Text,
			colCreated:  opt.Created,
		}).
		Returning(colID, colItemID, colAuthorID, colText, colCreated).
		Prepared(true).
		ToSQL()
	if err != nil {
		return model.Comment{}, err
	}

	var cm model.Comment
	err = r.pool.QueryRow(ctx, sql, args...).
		Scan(&cm.ID, &cm.ItemID, &cm.AuthorID, &cm.Text, &cm.Created)
	if err != nil {
		return model.Comment{}, err
	}
	return cm, nil
}

func (r *implRepository) ListComments(ctx context.Context, opt repository.ListCommentsOptions) ([]model.Comment, error) {
	if len(opt.ItemIDs) == 0 {
		return nil, nil
	}

	sql, args, err := goqu.Dialect(dialectPostgres).
		From(goqu.T(tableComments).As("c")).
		Join(goqu.T(tableUsers).As("u"), goqu.On(goqu.I("c.author_id").Eq(goqu.I("u.id")))).
		Select(
			goqu.I("c.id"), goqu.I("c.item_id"), goqu.I("c.author_id"),
			goqu.I("u.name"), goqu.I("c.text"), goqu.I("c.created"),
		).
		Where(goqu.I("c.item_id").In(opt.ItemIDs)).
		Order(goqu.I("c.created").Asc()).
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

	var comments []model.Comment
	for rows.Next() {
		var cm model.Comment
		err := rows.Scan(&cm.ID, &cm.ItemID, &cm.AuthorID, &cm.AuthorName, &cm.Text, &cm.Created)
		if err != nil {
			return nil, err
		}
		comments = append(comments, cm)
	}
	return comments, rows.Err()
}

func (r *implRepository) HasFinishedBooking(ctx context.Context, opt repository.HasFinishedBookingOptions) (bool, error) {
	sql, args, err := goqu.Dialect(dialectPostgres).
		From(tableBookings).
		Select(goqu.L("1")).
		Where(
			goqu.C("item_id").Eq(opt.ItemID),
			goqu.C("booker_id").Eq(opt.AuthorID),
			goqu.C("status").Eq(string(model.BookingStatusApproved)),
			goqu.C("end_date").Lt(opt.Before),
		).
		Limit(1).
		Prepared(true).
		ToSQL()
	if err != nil {
		return false, err
	}

	var one int
	err = r.pool.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
