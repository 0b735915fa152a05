package middleware

import (
	"net/http"
	"net/url"

	"goblog/config"
	"goblog/models"
	"goblog/services"
	"goblog/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const userKey = "current_user"

// CurrentUser resolves the session cookie into a *models.User for every
// request. Anonymous requests and stale or tampered cookies simply leave
// no user in the context.
func CurrentUser(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	userService := services.NewUserService(db)

	return func(c *gin.Context) {
		token, err := c.Cookie(utils.SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		userID, err := utils.ValidateSessionToken(cfg.SessionSecret, token)
		if err != nil {
			c.Next()
			return
		}

		user, err := userService.GetUserByID(userID)
		if err != nil {
			c.Next()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RedirectToLogin sends an anonymous request to the login page, keeping
// the original path so login can send the user back.
func RedirectToLogin(c *gin.Context) {
	next := url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusSeeOther, "/login?next="+next)
	c.Abort()
}

func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserFromContext(c) == nil {
			RedirectToLogin(c)
			return
		}
		c.Next()
	}
}

func UserFromContext(c *gin.Context) *models.User {
	value, exists := c.Get(userKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
