package http

import (
	"github.com/gin-gonic/gin"

	"shareit/pkg/response"
)

// Create godoc
// @Summary     List a new item
// @Description Creates an item owned by the acting user, optionally answering an item request.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Acting user (owner)"
// @Param       body             body   createReq true "Item data"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Owner or item request not found"
// @Router      /items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(output.Item))
}

// Update godoc
// @Summary     Patch an item
// @Description Partially updates name, description and/or availability. Owner only.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Acting user (owner)"
// @Param       id               path   int       true "Item ID"
// @Param       body             body   updateReq true "Fields to update"
// @Success     200 {object} itemResp
// @Failure     403 {object} response.Resp "Forbidden - not the owner"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /items/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(output.Item))
}

// Detail godoc
// @Summary     Get an item
// @Description Returns the item with comments; booking edges when the viewer owns it.
// @Tags        Items
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Acting user"
// @Param       id               path   int true "Item ID"
// @Success     200 {object} itemViewResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, actingUser(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemViewResp(output.View))
}

// ListByOwner godoc
// @Summary     List own items
// @Description Items owned by the acting user, with comments and booking edges.
// @Tags        Items
// @Produce     json
// @Param       X-Sharer-User-Id header int   true  "Acting user (owner)"
// @Param       from query int false "Page offset (default 0)"
// @Param       size query int false "Page size (default 50)"
// @Success     200 {object} []itemViewResp
// @Router      /items [GET]
func (h *handler) ListByOwner(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListByOwner(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListByOwner: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemViewListResp(output))
}

// Search godoc
// @Summary     Search items
// @Description Case-insensitive substring search over available items. Blank text yields an empty list.
// @Tags        Items
// @Produce     json
// @Param       X-Sharer-User-Id header int    true  "Acting user"
// @Param       text query string true  "Search text"
// @Param       from query int    false "Page offset (default 0)"
// @Param       size query int    false "Page size (default 50)"
// @Success     200 {object} []itemResp
// @Router      /items/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Search(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemListResp(output))
}

// AddComment godoc
// @Summary     Comment on an item
// @Description Adds a comment; requires a finished APPROVED booking of the item by the author.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int        true "Acting user (author)"
// @Param       id               path   int        true "Item ID"
// @Param       body             body   commentReq true "Comment text"
// @Success     200 {object} commentResp
// @Failure     400 {object} response.Resp "No completed booking of this item"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /items/{id}/comment [POST]
func (h *handler) AddComment(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCommentReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.AddComment(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddComment: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCommentResp(output.Comment))
}
