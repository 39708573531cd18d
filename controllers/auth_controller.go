package controllers

import (
	"net/http"

	"hotel-booking/middleware"
	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

type registerPayload struct {
	Username string `form:"username" json:"username" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

type loginPayload struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

type AuthController struct {
	Identity      *services.IdentityService
	Sessions      *utils.SessionManager
	SecureCookies bool
}

func NewAuthController(identity *services.IdentityService, sessions *utils.SessionManager, secureCookies bool) *AuthController {
	return &AuthController{Identity: identity, Sessions: sessions, SecureCookies: secureCookies}
}

func (ctrl *AuthController) Welcome(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Welcome to the Hotel Booking App!"})
}

func (ctrl *AuthController) RegisterForm(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{"form": "register", "fields": []string{"username", "email", "password"}})
}

func (ctrl *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBind(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := ctrl.Identity.Register(c.Request.Context(), payload.Username, payload.Email, payload.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, http.StatusCreated, user, "/login")
}

func (ctrl *AuthController) LoginForm(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{"form": "login", "fields": []string{"username", "password"}})
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBind(&payload); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := ctrl.Identity.Authenticate(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := ctrl.Sessions.Issue(user.ID, user.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.SessionCookieName, token, int(ctrl.Sessions.TTL().Seconds()), "/", "", ctrl.SecureCookies, true)

	if wantsJSON(c) {
		utils.JSONSuccess(c, http.StatusOK, gin.H{"token": token, "user": user})
		return
	}
	c.Redirect(http.StatusSeeOther, "/index")
}

// Logout drops the session cookie. Tokens are stateless, so a copied bearer
// token stays valid until it expires.
func (ctrl *AuthController) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.SessionCookieName, "", -1, "/", "", ctrl.SecureCookies, true)

	name := ""
	if u := middleware.CurrentUser(c); u != nil {
		name = u.Username
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "You have been logged out.", "username": name})
}
