package handlers

import (
	"github.com/gin-gonic/gin"

	userdomain "github.com/merseybathrooms/jobtracker/internal/domain/user"
	"github.com/merseybathrooms/jobtracker/internal/dto"
	"github.com/merseybathrooms/jobtracker/internal/httperr"
	"github.com/merseybathrooms/jobtracker/internal/httpresp"
	"github.com/merseybathrooms/jobtracker/internal/middleware"
)

type MeHandler struct {
	users userdomain.Repository
}

func NewMeHandler(users userdomain.Repository) *MeHandler {
	return &MeHandler{users: users}
}

// GetMe returns the account behind the token. A token for a deleted
// account is treated as unauthenticated.
func (h *MeHandler) GetMe(c *gin.Context) {
	user, err := h.users.GetUser(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if httperr.IsBusiness(err, httperr.CodeUserNotFound) {
		httperr.From(c, httperr.ErrBusiness(httperr.CodeUnauthorized))
		return
	}
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, gin.H{"user": dto.NewUserDTO(user)})
}
