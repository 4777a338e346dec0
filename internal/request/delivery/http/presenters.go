package http

import (
	"shareit/internal/model"
	"shareit/internal/request"
	"shareit/pkg/response"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// --- Request DTOs ---

type createReq struct {
	AuthorID    int64  `json:"-"` // populated from X-Sharer-User-Id
	Description string `json:"description" binding:"required,min=1,max=1000"`
}

func (r createReq) toInput() request.CreateInput {
	return request.CreateInput{
		AuthorID:    r.AuthorID,
		Description: r.Description,
	}
}

// ---

type listOthersReq struct {
	AuthorID int64 `form:"-"`
	From     int   `form:"from"`
	Size     int   `form:"size"`
}

func (r listOthersReq) toInput() request.ListOthersInput {
	size := r.Size
	if size <= 0 || size > maxPageSize {
		size = defaultPageSize
	}
	from := r.From
	if from < 0 {
		from = 0
	}
	return request.ListOthersInput{
		AuthorID: r.AuthorID,
		From:     from,
		Size:     size,
	}
}

// --- Response DTOs ---

type requestResp struct {
	ID          int64             `json:"id"`
	Description string            `json:"description"`
	Created     response.DateTime `json:"created"`
}

func newRequestResp(req model.ItemRequest) requestResp {
	return requestResp{
		ID:          req.ID,
		Description: req.Description,
		Created:     response.DateTime(req.Created),
	}
}

type answerResp struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	OwnerID   int64  `json:"ownerId"`
	Available bool   `json:"available"`
	RequestID int64  `json:"requestId"`
}

type requestViewResp struct {
	requestResp
	Items []answerResp `json:"items"`
}

func newRequestViewResp(v request.View) requestViewResp {
	items := make([]answerResp, len(v.Items))
	for i, it := range v.Items {
		items[i] = answerResp{
			ID:        it.ID,
			Name:      it.Name,
			OwnerID:   it.OwnerID,
			Available: it.Available,
			RequestID: v.Request.ID,
		}
	}
	return requestViewResp{
		requestResp: newRequestResp(v.Request),
		Items:       items,
	}
}

func newRequestViewListResp(out request.ListOutput) []requestViewResp {
	views := make([]requestViewResp, len(out.Views))
	for i, v := range out.Views {
		views[i] = newRequestViewResp(v)
	}
	return views
}
