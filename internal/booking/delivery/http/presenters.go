package http

import (
	"time"

	"shareit/internal/booking"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// --- Request DTOs ---

type createReq struct {
	BookerID int64     `json:"-"` // populated from X-Sharer-User-Id
	ItemID   int64     `json:"itemId" binding:"required,gt=0"`
	Start    time.Time `json:"start"  binding:"required"`
	End      time.Time `json:"end"    binding:"required"`
}

func (r createReq) toInput() booking.CreateInput {
	return booking.CreateInput{
		BookerID: r.BookerID,
		ItemID:   r.ItemID,
		Start:    r.Start,
		End:      r.End,
	}
}

// ---

type approveReq struct {
	OwnerID   int64
	BookingID int64
	Approved  bool
}

func (r approveReq) toInput() booking.ApproveInput {
	return booking.ApproveInput{
		OwnerID:   r.OwnerID,
		BookingID: r.BookingID,
		Approved:  r.Approved,
	}
}

// ---

type listReq struct {
	UserID int64  `form:"-"`
	State  string `form:"state"`
	From   int    `form:"from"`
	Size   int    `form:"size"`

	parsedState booking.State
}

func (r listReq) toInput() booking.ListInput {
	size := r.Size
	if size <= 0 || size > maxPageSize {
		size = defaultPageSize
	}
	from := r.From
	if from < 0 {
		from = 0
	}
	return booking.ListInput{
		UserID: r.UserID,
		State:  r.parsedState,
		From:   from,
		Size:   size,
	}
}

// --- Response DTOs ---

type bookingUserResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

type bookingItemResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type bookingResp struct {
	ID     int64           `json:"id"`
	Start  time.Time       `json:"start"`
	End    time.Time       `json:"end"`
	Status string          `json:"status"`
	Booker bookingUserResp `json:"booker"`
	Item   bookingItemResp `json:"item"`
}

func newBookingResp(v booking.View) bookingResp {
	return bookingResp{
		ID:     v.Booking.ID,
		Start:  v.Booking.Start,
		End:    v.Booking.End,
		Status: string(v.Booking.Status),
		Booker: bookingUserResp{ID: v.Booking.BookerID, Name: v.BookerName},
		Item:   bookingItemResp{ID: v.Booking.ItemID, Name: v.ItemName},
	}
}

func newBookingListResp(out booking.ListOutput) []bookingResp {
	views := make([]bookingResp, len(out.Views))
	for i, v := range out.Views {
		views[i] = newBookingResp(v)
	}
	return views
}
