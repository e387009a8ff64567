package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/merseybathrooms/jobtracker/internal/dto"
	"github.com/merseybathrooms/jobtracker/internal/httperr"
	"github.com/merseybathrooms/jobtracker/internal/httpresp"
	"github.com/merseybathrooms/jobtracker/internal/middleware"
	ucAuth "github.com/merseybathrooms/jobtracker/internal/usecase/auth"
)

type AuthHandler struct {
	register *ucAuth.Register
	login    *ucAuth.Login
}

func NewAuthHandler(register *ucAuth.Register, login *ucAuth.Login) *AuthHandler {
	return &AuthHandler{register: register, login: login}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.From(c, httperr.ErrBusinessMsg(httperr.CodeValidation, "email and password are required"))
		return
	}

	user, err := h.register.Execute(c.Request.Context(), ucAuth.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,

		CallerRole: c.GetString(middleware.ContextUserRole),
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, gin.H{"user": dto.NewUserDTO(user)})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.From(c, httperr.ErrBusinessMsg(httperr.CodeValidation, "email and password are required"))
		return
	}

	token, user, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"token": token,
		"user":  dto.NewUserDTO(user),
	})
}
