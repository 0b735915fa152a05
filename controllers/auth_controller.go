package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"goblog/config"
	"goblog/models"
	"goblog/services"
	"goblog/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	cfg         *config.Config
	userService *services.UserService
}

func NewAuthController(db *gorm.DB, cfg *config.Config) *AuthController {
	return &AuthController{
		cfg:         cfg,
		userService: services.NewUserService(db),
	}
}

func (ac *AuthController) ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", gin.H{"Title": "Register"})
}

func (ac *AuthController) Register(c *gin.Context) {
	var form models.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusOK, "register.html", gin.H{
			"Title":  "Register",
			"Form":   form,
			"Errors": utils.FieldErrors(err),
		})
		return
	}

	user, err := ac.userService.CreateUser(&form)
	if err != nil {
		fieldErrors := map[string]string{}
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			fieldErrors["username"] = "That username is taken. Please choose a different one."
		case errors.Is(err, services.ErrEmailTaken):
			fieldErrors["email"] = "That e-mail is already registered."
		default:
			render(c, http.StatusInternalServerError, "error.html", gin.H{
				"Title":   "Error",
				"Code":    http.StatusInternalServerError,
				"Message": "Could not create your account. Please try again.",
			})
			return
		}
		render(c, http.StatusOK, "register.html", gin.H{
			"Title":  "Register",
			"Form":   form,
			"Errors": fieldErrors,
		})
		return
	}

	utils.SetFlash(c, fmt.Sprintf("Account created for %s!", user.Username), "success")
	c.Redirect(http.StatusSeeOther, "/login")
}

func (ac *AuthController) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{
		"Title": "Login",
		"Next":  c.Query("next"),
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var form models.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusOK, "login.html", gin.H{
			"Title":  "Login",
			"Form":   form,
			"Next":   c.PostForm("next"),
			"Errors": utils.FieldErrors(err),
		})
		return
	}

	user, err := ac.userService.GetUserByEmail(form.Email)
	if err != nil || !user.CheckPassword(form.Password) {
		// Same message for unknown e-mail and wrong password.
		render(c, http.StatusOK, "login.html", gin.H{
			"Title": "Login",
			"Form":  form,
			"Next":  c.PostForm("next"),
			"Flash": &utils.Flash{
				Message:  "Login unsuccessful. Please check your e-mail and password.",
				Category: "danger",
			},
		})
		return
	}

	ttl := ac.cfg.SessionTTL
	maxAge := 0 // browser-session cookie unless remembered
	if form.Remember {
		ttl = ac.cfg.RememberTTL
		maxAge = int(ttl.Seconds())
	}

	token, err := utils.GenerateSessionToken(ac.cfg.SessionSecret, user.ID, ttl)
	if err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{
			"Title":   "Error",
			"Code":    http.StatusInternalServerError,
			"Message": "Could not sign you in. Please try again.",
		})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.SessionCookie, token, maxAge, "/", "", false, true)

	utils.SetFlash(c, "You have been logged in!", "success")
	c.Redirect(http.StatusSeeOther, safeNext(c.PostForm("next")))
}

func (ac *AuthController) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}

// safeNext only follows relative targets so login cannot be used as an
// open redirect.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
