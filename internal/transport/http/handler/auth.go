package handler

import (
	"github.com/gin-gonic/gin"

	"fittrack/internal/apperr"
	"fittrack/internal/core/auth"
	"fittrack/internal/domain"
	"fittrack/internal/transport/http/response"
	"fittrack/internal/validation"
	"fittrack/pkg/utils"
)

type AuthHandler struct {
	users domain.UserRepository
	jwt   *auth.JWTer
}

func NewAuthHandler(users domain.UserRepository, jwt *auth.JWTer) *AuthHandler {
	return &AuthHandler{users: users, jwt: jwt}
}

type registerIn struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=50"`
	Surname  *string `json:"surname" validate:"omitempty,min=2,max=50"`
	NickName *string `json:"nickName" validate:"omitempty,min=2,max=30"`
	Email    string  `json:"email" validate:"required,email"`
	Age      *int    `json:"age" validate:"omitempty,gte=1"`
	Role     string  `json:"role" validate:"required,oneof=admin user"`
	Password string  `json:"password" validate:"required,min=8"`
}

// Register creates a user account. A taken email is a conflict, never a
// second row.
func (h *AuthHandler) Register(c *gin.Context) {
	var in registerIn
	if verr := validation.Body(c, &in); verr != nil {
		fail(c, verr)
		return
	}

	ctx := c.Request.Context()
	existing, err := h.users.FindByEmail(ctx, in.Email)
	if err != nil {
		fail(c, apperr.Internal("register user", err))
		return
	}
	if existing != nil {
		fail(c, apperr.Conflict("EMAIL_TAKEN"))
		return
	}

	u := &domain.User{
		Name:     in.Name,
		Surname:  in.Surname,
		NickName: in.NickName,
		Age:      in.Age,
		Email:    in.Email,
		Role:     in.Role,
		Password: utils.HashPassword(in.Password),
	}
	if err := h.users.Create(ctx, u); err != nil {
		fail(c, apperr.Internal("register user", err))
		return
	}

	token, err := h.jwt.Issue(u.ID, u.Role)
	if err != nil {
		fail(c, apperr.Internal("issue token", err))
		return
	}
	response.OK(c, gin.H{"token": token, "id": u.ID}, msg(c, "USER_REGISTERED"))
}

type loginIn struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Login answers with the same message for an unknown email and a wrong
// password so responses cannot be used as an account-existence oracle.
func (h *AuthHandler) Login(c *gin.Context) {
	var in loginIn
	if verr := validation.Body(c, &in); verr != nil {
		fail(c, verr)
		return
	}

	u, err := h.users.FindByEmail(c.Request.Context(), in.Email)
	if err != nil {
		fail(c, apperr.Internal("login user", err))
		return
	}
	if u == nil || !utils.CheckPassword(in.Password, u.Password) {
		fail(c, apperr.Unauthorized("INVALID_CREDENTIALS"))
		return
	}

	token, err := h.jwt.Issue(u.ID, u.Role)
	if err != nil {
		fail(c, apperr.Internal("issue token", err))
		return
	}
	response.OK(c, gin.H{"token": token, "id": u.ID}, msg(c, "LOGIN_SUCCESS"))
}
