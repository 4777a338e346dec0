package http

import (
	"github.com/gin-gonic/gin"

	"shareit/pkg/response"
)

// Create godoc
// @Summary     Post an item request
// @Description Creates a request for an item not currently listed.
// @Tags        Requests
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Acting user (author)"
// @Param       body             body   createReq true "Request description"
// @Success     200 {object} requestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /requests [POST]
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

	response.OK(c, newRequestResp(output.Request))
}

// ListMine godoc
// @Summary     List own item requests
// @Description The acting user's requests, newest first, with answering items.
// @Tags        Requests
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Acting user (author)"
// @Success     200 {object} []requestViewResp
// @Router      /requests [GET]
func (h *handler) ListMine(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListMine(ctx, actingUser(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListMine: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRequestViewListResp(output))
}

// ListOthers godoc
// @Summary     Browse other users' item requests
// @Description Paginated requests excluding the acting user's own, newest first.
// @Tags        Requests
// @Produce     json
// @Param       X-Sharer-User-Id header int   true  "Acting user"
// @Param       from query int false "Page offset (default 0)"
// @Param       size query int false "Page size (default 50)"
// @Success     200 {object} []requestViewResp
// @Router      /requests/all [GET]
func (h *handler) ListOthers(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListOthersReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListOthers(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListOthers: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRequestViewListResp(output))
}

// Detail godoc
// @Summary     Get an item request
// @Description Returns a request with the items created to answer it.
// @Tags        Requests
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Acting user"
// @Param       id               path   int true "Request ID"
// @Success     200 {object} requestViewResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /requests/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRequestViewResp(output.View))
}
