// Account HTTP handlers.
//
// This file exposes registration:
//   - POST /users  (register an account)
//
// Passwords are stored as received; hashing belongs to the auth layer in
// front of this service. The response omits the password field.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tilevista/go-store-backend/internal/domain"
	"github.com/tilevista/go-store-backend/internal/services"
)

// UserResponse is the registration result without the credential.
type UserResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// RegisterUser godoc
// @ID          registerUser
// @Summary     Register an account
// @Description Creates an account with a unique username and returns it without the password.
// @Tags        Users
// @Accept      json
// @Produce     json
//
// @Param       body  body  domain.NewUser  true  "Registration payload"
//
// @Success     201  {object}  handlers.UserResponse
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     409  {object}  handlers.ErrorResponse "Username taken"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /users [post]
func (h *Handlers) RegisterUser(c *gin.Context) {
	var req domain.NewUser
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	u, err := h.users.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		case errors.Is(err, services.ErrUsernameTaken):
			fail(c, http.StatusConflict, ErrCodeConflict, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, UserResponse{ID: u.ID, Username: u.Username})
}
