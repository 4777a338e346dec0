package middleware

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	userRepo "shareit/internal/user/repository"
	pkgErrors "shareit/pkg/errors"
	"shareit/pkg/response"
)

// HeaderSharerUserID identifies the acting user on every domain route.
const HeaderSharerUserID = "X-Sharer-User-Id"

const ctxUserIDKey = "actingUserID"

// Identity parses the X-Sharer-User-Id header, verifies the user exists
// (with a TTL-bounded cache in front of the store), and exposes the id to
// handlers via ActingUser.
func (m Middleware) Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderSharerUserID)
		if raw == "" {
			response.Error(c, pkgErrors.NewHTTPError(400, "X-Sharer-User-Id header is required"))
			c.Abort()
			return
		}

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.Error(c, pkgErrors.NewHTTPError(400, "X-Sharer-User-Id header must be a positive integer"))
			c.Abort()
			return
		}

		known, err := m.knownUser(c.Request.Context(), id)
		if err != nil {
			m.l.Errorf(c.Request.Context(), "identity lookup for user %d: %v", id, err)
			response.InternalError(c)
			c.Abort()
			return
		}
		if !known {
			response.NotFound(c, "user not found")
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, id)
		c.Next()
	}
}

// ActingUser returns the id stored by Identity. Zero when the route was
// not wrapped by the middleware.
func ActingUser(c *gin.Context) int64 {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return 0
	}
	id, _ := v.(int64)
	return id
}

// ForgetUser drops a cached identity so a deleted user stops passing the
// check immediately instead of after the cache TTL.
func (m Middleware) ForgetUser(id int64) {
	m.userIDs.Remove(id)
}

func (m Middleware) knownUser(ctx context.Context, id int64) (bool, error) {
	if _, ok := m.userIDs.Get(id); ok {
		return true, nil
	}

	u, err := m.users.GetOneUser(ctx, userRepo.GetOneUserOptions{ID: id})
	if err != nil {
		return false, err
	}
	if u.ID == 0 {
		return false, nil
	}

	m.userIDs.Add(id, struct{}{})
	return true, nil
}
