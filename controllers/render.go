package controllers

import (
	"net/http"

	"goblog/middleware"
	"goblog/utils"

	"github.com/gin-gonic/gin"
)

// render adds the data every template expects: the current user for the
// navbar and the pending flash notice. Handlers that re-render a form
// with an inline notice set "Flash" themselves.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["User"] = middleware.UserFromContext(c)
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = utils.GetFlash(c)
	}
	c.HTML(status, name, data)
}

func abortNotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "error.html", gin.H{
		"Title":   "Not Found",
		"Code":    http.StatusNotFound,
		"Message": "The page you requested does not exist.",
	})
	c.Abort()
}

func abortForbidden(c *gin.Context) {
	render(c, http.StatusForbidden, "error.html", gin.H{
		"Title":   "Forbidden",
		"Code":    http.StatusForbidden,
		"Message": "You don't have permission to do that.",
	})
	c.Abort()
}

func About(c *gin.Context) {
	render(c, http.StatusOK, "about.html", gin.H{"Title": "About"})
}
