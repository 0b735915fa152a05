package routes

import (
	"net/http"

	"goblog/controllers"
	"goblog/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authController *controllers.AuthController, postController *controllers.PostController) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", postController.Home)
	r.GET("/home", postController.Home)
	r.GET("/about", controllers.About)

	r.GET("/register", authController.ShowRegister)
	r.POST("/register", authController.Register)
	r.GET("/login", authController.ShowLogin)
	r.POST("/login", authController.Login)
	r.GET("/logout", authController.Logout)

	requireLogin := middleware.LoginRequired()

	// gin's router cannot hold the static /post/new beside the /post/:id
	// wildcard, so "new" is dispatched from the wildcard handler.
	post := r.Group("/post")
	{
		post.GET("/:id", dispatchNew(postController.New, postController.Show))
		post.POST("/:id", dispatchNew(postController.Create, postController.Show))
		post.GET("/:id/update", requireLogin, postController.Edit)
		post.POST("/:id/update", requireLogin, postController.Update)
		post.GET("/:id/delete", requireLogin, postController.Delete)
		post.POST("/:id/delete", requireLogin, postController.Delete)
	}
}

// dispatchNew sends /post/new to the login-guarded create handler and
// every other id to show.
func dispatchNew(create, show gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Param("id") != "new" {
			show(c)
			return
		}
		if middleware.UserFromContext(c) == nil {
			middleware.RedirectToLogin(c)
			return
		}
		create(c)
	}
}
