package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/booking"
	"shareit/internal/middleware"
	pkgErrors "shareit/pkg/errors"
)

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgErrors.NewHTTPError(400, "invalid id")
	}
	return id, nil
}

func actingUser(c *gin.Context) int64 {
	return middleware.ActingUser(c)
}

// processCreateReq binds and validates the booking creation body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.BookerID = actingUser(c)
	return req, nil
}

// processApproveReq reads the booking id and the approved query flag.
func (h *handler) processApproveReq(c *gin.Context) (approveReq, error) {
	var req approveReq

	id, err := pathID(c)
	if err != nil {
		return req, err
	}
	req.BookingID = id
	req.OwnerID = actingUser(c)

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		return req, pkgErrors.NewHTTPError(400, "approved must be true or false")
	}
	req.Approved = approved
	return req, nil
}

// processListReq reads the state filter and pagination query parameters.
// The state token is parsed strictly: an unknown value is a 400, not ALL.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}

	state, err := booking.ParseState(req.State)
	if err != nil {
		return req, err
	}
	req.parsedState = state
	req.UserID = actingUser(c)
	return req, nil
}
