package http

import (
	"time"

	"shareit/internal/item"
	"shareit/internal/model"
	"shareit/pkg/response"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// --- Request DTOs ---

type createReq struct {
	OwnerID     int64  `json:"-"` // populated from X-Sharer-User-Id
	Name        string `json:"name"        binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"required,min=1,max=1000"`
	Available   *bool  `json:"available"   binding:"required"`
	RequestID   *int64 `json:"requestId"   binding:"omitempty,gt=0"`
}

func (r createReq) toInput() item.CreateInput {
	return item.CreateInput{
		OwnerID:     r.OwnerID,
		Name:        r.Name,
		Description: r.Description,
		Available:   *r.Available,
		RequestID:   r.RequestID,
	}
}

// ---

type updateReq struct {
	OwnerID     int64  `json:"-"`
	ItemID      int64  `json:"-"`
	Name        string `json:"name"        binding:"omitempty,min=1,max=255"`
	Description string `json:"description" binding:"omitempty,min=1,max=1000"`
	Available   *bool  `json:"available"`
}

func (r updateReq) toInput() item.UpdateInput {
	return item.UpdateInput{
		OwnerID:     r.OwnerID,
		ItemID:      r.ItemID,
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
	}
}

// ---

type listReq struct {
	OwnerID int64 `form:"-"`
	From    int   `form:"from"`
	Size    int   `form:"size"`
}

func (r listReq) toInput() item.ListInput {
	from, size := clampPage(r.From, r.Size)
	return item.ListInput{
		OwnerID: r.OwnerID,
		From:    from,
		Size:    size,
	}
}

// ---

type searchReq struct {
	Text string `form:"text"`
	From int    `form:"from"`
	Size int    `form:"size"`
}

func (r searchReq) toInput() item.SearchInput {
	from, size := clampPage(r.From, r.Size)
	return item.SearchInput{
		Text: r.Text,
		From: from,
		Size: size,
	}
}

// ---

type commentReq struct {
	AuthorID int64  `json:"-"`
	ItemID   int64  `json:"-"`
	Text     string `json:"text" binding:"required,min=1,max=2000"`
}

func (r commentReq) toInput() item.AddCommentInput {
	return item.AddCommentInput{
		AuthorID: r.AuthorID,
		ItemID:   r.ItemID,
		Text:     r.Text,
	}
}

func clampPage(from, size int) (int, int) {
	if size <= 0 || size > maxPageSize {
		size = defaultPageSize
	}
	if from < 0 {
		from = 0
	}
	return from, size
}

// --- Response DTOs ---

type itemResp struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

func newItemResp(it model.Item) itemResp {
	return itemResp{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
	}
}

func newItemListResp(out item.SearchOutput) []itemResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	return items
}

type bookingEdgeResp struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"bookerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

type commentResp struct {
	ID         int64             `json:"id"`
	Text       string            `json:"text"`
	AuthorName string            `json:"authorName"`
	Created    response.DateTime `json:"created"`
}

func newCommentResp(cm model.Comment) commentResp {
	return commentResp{
		ID:         cm.ID,
		Text:       cm.Text,
		AuthorName: cm.AuthorName,
		Created:    response.DateTime(cm.Created),
	}
}

type itemViewResp struct {
	itemResp
	Comments    []commentResp    `json:"comments"`
	LastBooking *bookingEdgeResp `json:"lastBooking,omitempty"`
	NextBooking *bookingEdgeResp `json:"nextBooking,omitempty"`
}

func newItemViewResp(v item.View) itemViewResp {
	comments := make([]commentResp, len(v.Comments))
	for i, cm := range v.Comments {
		comments[i] = newCommentResp(cm)
	}
	return itemViewResp{
		itemResp:    newItemResp(v.Item),
		Comments:    comments,
		LastBooking: newBookingEdgeResp(v.LastBooking),
		NextBooking: newBookingEdgeResp(v.NextBooking),
	}
}

func newBookingEdgeResp(b *model.Booking) *bookingEdgeResp {
	if b == nil {
		return nil
	}
	return &bookingEdgeResp{
		ID:       b.ID,
		BookerID: b.BookerID,
		Start:    b.Start,
		End:      b.End,
	}
}

func newItemViewListResp(out item.ListOutput) []itemViewResp {
	views := make([]itemViewResp, len(out.Views))
	for i, v := range out.Views {
		views[i] = newItemViewResp(v)
	}
	return views
}
