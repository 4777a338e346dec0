package http

import (
	"github.com/gin-gonic/gin"

	"shareit/pkg/response"
)

// Create godoc
// @Summary     Book an item
// @Description Opens a booking request in the WAITING state.
// @Tags        Bookings
// @Accept      json
// @Produce     json
// @Param       X-Sharer-User-Id header int       true "Acting user (booker)"
// @Param       body             body   createReq true "Booking period"
// @Success     200 {object} bookingResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Item not found"
// @Failure     409 {object} response.Resp "Conflict - overlapping booking"
// @Router      /bookings [POST]
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

	response.OK(c, newBookingResp(output.View))
}

// Approve godoc
// @Summary     Decide a booking
// @Description Approves or rejects a WAITING booking. Item owner only, once.
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int    true "Acting user (item owner)"
// @Param       id               path   int    true "Booking ID"
// @Param       approved         query  bool   true "true to approve, false to reject"
// @Success     200 {object} bookingResp
// @Failure     403 {object} response.Resp "Forbidden - not the item owner"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - already decided"
// @Router      /bookings/{id} [PATCH]
func (h *handler) Approve(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processApproveReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Approve(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Approve: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBookingResp(output.View))
}

// Detail godoc
// @Summary     Get a booking
// @Description Returns a booking to its booker or the booked item's owner.
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int true "Acting user"
// @Param       id               path   int true "Booking ID"
// @Success     200 {object} bookingResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /bookings/{id} [GET]
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

	response.OK(c, newBookingResp(output.View))
}

// ListForBooker godoc
// @Summary     List own bookings
// @Description Bookings made by the acting user, newest start first.
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int    true  "Acting user (booker)"
// @Param       state query string false "ALL|CURRENT|PAST|FUTURE|WAITING|APPROVED|REJECTED (default ALL)"
// @Param       from  query int    false "Page offset (default 0)"
// @Param       size  query int    false "Page size (default 50)"
// @Success     200 {object} []bookingResp
// @Failure     400 {object} response.Resp "Unknown state value"
// @Router      /bookings [GET]
func (h *handler) ListForBooker(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListForBooker(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListForBooker: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBookingListResp(output))
}

// ListForOwner godoc
// @Summary     List bookings of owned items
// @Description Bookings targeting items the acting user owns, newest start first.
// @Tags        Bookings
// @Produce     json
// @Param       X-Sharer-User-Id header int    true  "Acting user (item owner)"
// @Param       state query string false "ALL|CURRENT|PAST|FUTURE|WAITING|APPROVED|REJECTED (default ALL)"
// @Param       from  query int    false "Page offset (default 0)"
// @Param       size  query int    false "Page size (default 50)"
// @Success     200 {object} []bookingResp
// @Failure     400 {object} response.Resp "Unknown state value"
// @Router      /bookings/owner [GET]
func (h *handler) ListForOwner(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListForOwner(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListForOwner: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBookingListResp(output))
}
