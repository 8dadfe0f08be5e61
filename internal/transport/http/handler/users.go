package handler

import (
	"github.com/gin-gonic/gin"

	"fittrack/internal/apperr"
	"fittrack/internal/domain"
	"fittrack/internal/query"
	"fittrack/internal/transport/http/middleware"
	"fittrack/internal/transport/http/response"
	"fittrack/internal/validation"
)

type UserHandler struct {
	users domain.UserRepository
}

func NewUserHandler(users domain.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// briefUser is all a non-admin caller gets to see of other users.
type briefUser struct {
	ID       uint64  `json:"id"`
	NickName *string `json:"nickName"`
}

type profileOut struct {
	Name     *string `json:"name"`
	Surname  *string `json:"surname"`
	Age      *int    `json:"age"`
	NickName *string `json:"nickName"`
}

// List returns all users. Admins see every profile field except password;
// regular users see id and nickname only.
func (h *UserHandler) List(c *gin.Context) {
	caller := middleware.CurrentUser(c)
	p := query.Parse(c.Request.URL.Query())

	users, total, err := h.users.List(c.Request.Context(), p)
	if err != nil {
		fail(c, apperr.Internal("list users", err))
		return
	}

	meta := response.NewMeta(total, p)
	if caller.Role == domain.RoleAdmin {
		response.List(c, users, msg(c, "LIST_OF_USERS"), meta)
		return
	}
	brief := make([]briefUser, 0, len(users))
	for _, u := range users {
		brief = append(brief, briefUser{ID: u.ID, NickName: u.NickName})
	}
	response.List(c, brief, msg(c, "LIST_OF_USERS"), meta)
}

// Me returns the caller's own profile.
func (h *UserHandler) Me(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	u, err := h.users.FindByID(c.Request.Context(), caller.ID)
	if err != nil {
		fail(c, apperr.Internal("fetch own profile", err))
		return
	}
	if u == nil {
		fail(c, apperr.NotFound("USER_NOT_FOUND"))
		return
	}
	response.OK(c, profileOut{Name: u.Name, Surname: u.Surname, Age: u.Age, NickName: u.NickName}, msg(c, "USER_DETAIL"))
}

func (h *UserHandler) Get(c *gin.Context) {
	ids, verr := validation.IDParams(c, "id")
	if verr != nil {
		fail(c, verr)
		return
	}

	u, err := h.users.FindByID(c.Request.Context(), ids[0])
	if err != nil {
		fail(c, apperr.Internal("fetch user", err))
		return
	}
	if u == nil {
		fail(c, apperr.NotFound("USER_NOT_FOUND"))
		return
	}
	response.OK(c, u, msg(c, "USER_DETAIL"))
}

type updateUserIn struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=100"`
	Surname  *string `json:"surname" validate:"omitempty,min=2,max=100"`
	NickName *string `json:"nickName" validate:"omitempty,min=2,max=100"`
	Age      *int    `json:"age" validate:"omitempty,gte=1"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin user"`
}

// Update applies the whitelisted profile fields; anything else in the body
// is dropped by the typed binding.
func (h *UserHandler) Update(c *gin.Context) {
	var in updateUserIn
	if verr := validation.Body(c, &in); verr != nil {
		fail(c, verr)
		return
	}
	ids, verr := validation.IDParams(c, "id")
	if verr != nil {
		fail(c, verr)
		return
	}

	ctx := c.Request.Context()
	u, err := h.users.FindByID(ctx, ids[0])
	if err != nil {
		fail(c, apperr.Internal("update user", err))
		return
	}
	if u == nil {
		fail(c, apperr.NotFound("USER_NOT_FOUND"))
		return
	}

	if in.Name != nil {
		u.Name = in.Name
	}
	if in.Surname != nil {
		u.Surname = in.Surname
	}
	if in.NickName != nil {
		u.NickName = in.NickName
	}
	if in.Age != nil {
		u.Age = in.Age
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if err := h.users.Update(ctx, u); err != nil {
		fail(c, apperr.Internal("update user", err))
		return
	}
	response.OK(c, gin.H{"id": u.ID}, msg(c, "USER_UPDATED"))
}

// Delete soft-deletes the user; the row stays for auditing but leaves all
// normal queries.
func (h *UserHandler) Delete(c *gin.Context) {
	ids, verr := validation.IDParams(c, "id")
	if verr != nil {
		fail(c, verr)
		return
	}

	ok, err := h.users.SoftDelete(c.Request.Context(), ids[0])
	if err != nil {
		fail(c, apperr.Internal("delete user", err))
		return
	}
	if !ok {
		fail(c, apperr.NotFound("USER_NOT_FOUND"))
		return
	}
	response.OK(c, gin.H{"id": ids[0]}, msg(c, "USER_DELETED"))
}
