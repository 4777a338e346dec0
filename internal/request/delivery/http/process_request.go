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

// processCreateReq binds and validates the request creation body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.AuthorID = actingUser(c)
	return req, nil
}

// processListOthersReq binds pagination query parameters.
func (h *handler) processListOthersReq(c *gin.Context) (listOthersReq, error) {
	var req listOthersReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.AuthorID = actingUser(c)
	return req, nil
}
