package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"gateapp-http-service/internal/domain/services"
	"gateapp-http-service/internal/domain/services/container"
	"gateapp-http-service/internal/error/code"
	"gateapp-http-service/internal/error/response"
)

// LoginRequest is the login request body
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// InterfaceAuthController handles authentication endpoints
type InterfaceAuthController interface {
	Login()
}

// AuthController implements InterfaceAuthController
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController creates an AuthController
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleAuthFunc dispatches auth endpoints
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)
		switch method {
		case "login":
			controller.Login()
		default:
			response.NotFound(ctx, "method not found")
		}
	}
}

// Login godoc
// @Summary      Log in to the dashboard
// @Description  Verifies credentials and returns a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Credentials"
// @Success      200      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)

	user, err := userService.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			response.Fail(c.Ctx, code.ErrUserNotFound, nil)
		case errors.Is(err, services.ErrPasswordIncorrect):
			response.Fail(c.Ctx, code.ErrUserPasswordIncorrect, nil)
		default:
			response.Fail(c.Ctx, code.ErrDatabase, nil)
		}
		return
	}

	token, err := jwtService.GenerateToken(user)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{
		"token": token,
		"user":  user,
	})
}
