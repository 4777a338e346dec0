package http

import (
	"shareit/internal/model"
	"shareit/internal/user"
)

// --- Request DTOs ---

type createReq struct {
	Name  string `json:"name"  binding:"required,min=1,max=255"`
	Email string `json:"email" binding:"required,email,max=512"`
}

func (r createReq) toInput() user.CreateInput {
	return user.CreateInput{
		Name:  r.Name,
		Email: r.Email,
	}
}

// ---

type updateReq struct {
	ID    int64  `json:"-"` // populated from URI param
	Name  string `json:"name"  binding:"omitempty,min=1,max=255"`
	Email string `json:"email" binding:"omitempty,email,max=512"`
}

func (r updateReq) toInput() user.UpdateInput {
	return user.UpdateInput{
		ID:    r.ID,
		Name:  r.Name,
		Email: r.Email,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

func newUserListResp(out user.ListOutput) []userResp {
	users := make([]userResp, len(out.Users))
	for i, u := range out.Users {
		users[i] = newUserResp(u)
	}
	return users
}
