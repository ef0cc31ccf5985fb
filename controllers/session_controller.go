package controllers

import (
	"bookmart/middleware"
	"bookmart/models"
	"bookmart/services"
	"bookmart/utils"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	Auth *services.AuthService
}

func sessionResponse(c *gin.Context) models.SessionResponse {
	session := middleware.State(c).Session
	return models.SessionResponse{
		User:            session.User(),
		IsAuthenticated: session.IsAuthenticated(),
		IsAdmin:         session.IsAdmin(),
	}
}

// @Summary Login
// @Description Sign in against the BookMart backend and start a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /api/auth/login [post]
func (ctrl *SessionController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Email and password are required", err)
		return
	}

	ctx := c.Request.Context()
	identity, err := ctrl.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		backendError(c, err, "Invalid credentials")
		return
	}
	// The visitor went away while we waited; do not sign in a session
	// nobody is looking at.
	if ctx.Err() != nil {
		return
	}

	middleware.State(c).Session.SetUser(identity)
	ok(c, "Login successful", sessionResponse(c))
}

// @Summary Register
// @Description Create an account, then sign in with it
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Account"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/auth/register [post]
func (ctrl *SessionController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Name, email and password are required", err)
		return
	}
	if err := utils.ValidateRegistrationPassword(req.Password, req.ConfirmPassword); err != nil {
		badRequest(c, err.Error(), nil)
		return
	}

	ctx := c.Request.Context()
	confirmation, err := ctrl.Auth.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		backendError(c, err, "Registration failed")
		return
	}
	log.Printf("Registered %s: %s", req.Email, confirmation)

	identity, err := ctrl.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		backendError(c, err, "Registration succeeded but sign in failed")
		return
	}
	if ctx.Err() != nil {
		return
	}

	middleware.State(c).Session.SetUser(identity)
	ok(c, "Registration successful", sessionResponse(c))
}

// Logout ends the signed-in session. The cart stays.
func (ctrl *SessionController) Logout(c *gin.Context) {
	middleware.State(c).Session.Logout()
	ok(c, "Logged out", sessionResponse(c))
}

func (ctrl *SessionController) Me(c *gin.Context) {
	ok(c, "Session retrieved", sessionResponse(c))
}

// Welcome reports whether the welcome message should be shown, which is
// only on the first call of a browser session.
func (ctrl *SessionController) Welcome(c *gin.Context) {
	ctx := c.Request.Context()
	flag := middleware.State(c).Welcome

	seen, err := flag.Seen(ctx)
	if err != nil {
		log.Printf("Failed to read welcome flag: %v", err)
	}
	if !seen {
		if err := flag.MarkSeen(ctx); err != nil {
			log.Printf("Failed to persist welcome flag: %v", err)
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "show": !seen})
}
