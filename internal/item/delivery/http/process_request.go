package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

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

// processCreateReq binds and validates the item creation body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.OwnerID = actingUser(c)
	return req, nil
}

// processUpdateReq binds the patch body plus the URI param and header.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := pathID(c)
	if err != nil {
		return req, err
	}
	req.ItemID = id
	req.OwnerID = actingUser(c)
	return req, nil
}

// processListReq binds pagination query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.OwnerID = actingUser(c)
	return req, nil
}

// processSearchReq binds the search text and pagination.
func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCommentReq binds the comment body plus the URI param and header.
func (h *handler) processCommentReq(c *gin.Context) (commentReq, error) {
	var req commentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := pathID(c)
	if err != nil {
		return req, err
	}
	req.ItemID = id
	req.AuthorID = actingUser(c)
	return req, nil
}
