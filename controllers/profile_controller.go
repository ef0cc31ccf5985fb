package controllers

import (
	"bookmart/middleware"
	"bookmart/models"
	"bookmart/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	Users *services.UserService
}

// @Summary Profile
// @Tags Profile
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/profile [get]
func (ctrl *ProfileController) GetProfile(c *gin.Context) {
	session := middleware.State(c).Session
	user := session.User()
	// A logout on the same session can land after the auth guard ran.
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Success:  false,
			Message:  "Please sign in to continue",
			Redirect: "/login",
		})
		return
	}

	profile, err := ctrl.Users.Profile(c.Request.Context(), session.Token(), user.Email)
	if err != nil {
		backendError(c, err, "Failed to load profile")
		return
	}
	ok(c, "Profile retrieved", profile)
}
