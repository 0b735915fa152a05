package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"goblog/middleware"
	"goblog/models"
	"goblog/services"
	"goblog/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostController struct {
	postService *services.PostService
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{
		postService: services.NewPostService(db),
	}
}

func (pc *PostController) Home(c *gin.Context) {
	posts, err := pc.postService.GetAllPosts()
	if err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{
			"Title":   "Error",
			"Code":    http.StatusInternalServerError,
			"Message": "Could not load posts.",
		})
		return
	}

	render(c, http.StatusOK, "home.html", gin.H{"Posts": posts})
}

func (pc *PostController) Show(c *gin.Context) {
	post, ok := pc.loadPost(c)
	if !ok {
		return
	}

	render(c, http.StatusOK, "post.html", gin.H{
		"Title":       post.Title,
		"Post":        post,
		"ContentHTML": utils.RenderMarkdown(post.Content),
	})
}

func (pc *PostController) New(c *gin.Context) {
	render(c, http.StatusOK, "create_post.html", gin.H{"Title": "New Post"})
}

func (pc *PostController) Create(c *gin.Context) {
	var form models.PostForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusOK, "create_post.html", gin.H{
			"Title":  "New Post",
			"Form":   form,
			"Errors": utils.FieldErrors(err),
		})
		return
	}

	user := middleware.UserFromContext(c)
	if _, err := pc.postService.CreatePost(user.ID, &form); err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{
			"Title":   "Error",
			"Code":    http.StatusInternalServerError,
			"Message": "Could not create the post.",
		})
		return
	}

	utils.SetFlash(c, "The post has been created!", "success")
	c.Redirect(http.StatusSeeOther, "/")
}

func (pc *PostController) Edit(c *gin.Context) {
	post, ok := pc.loadOwnedPost(c)
	if !ok {
		return
	}

	render(c, http.StatusOK, "create_post.html", gin.H{
		"Title": "Update Post",
		"Form":  models.PostForm{Title: post.Title, Content: post.Content},
	})
}

func (pc *PostController) Update(c *gin.Context) {
	post, ok := pc.loadOwnedPost(c)
	if !ok {
		return
	}

	var form models.PostForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusOK, "create_post.html", gin.H{
			"Title":  "Update Post",
			"Form":   form,
			"Errors": utils.FieldErrors(err),
		})
		return
	}

	if err := pc.postService.UpdatePost(post, &form); err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{
			"Title":   "Error",
			"Code":    http.StatusInternalServerError,
			"Message": "Could not update the post.",
		})
		return
	}

	utils.SetFlash(c, "Your post has been updated!", "success")
	c.Redirect(http.StatusSeeOther, "/post/"+strconv.FormatUint(uint64(post.ID), 10))
}

func (pc *PostController) Delete(c *gin.Context) {
	post, ok := pc.loadOwnedPost(c)
	if !ok {
		return
	}

	log.Printf("deleting post %d by %s", post.ID, post.Author.Username)

	if err := pc.postService.DeletePost(post); err != nil {
		render(c, http.StatusInternalServerError, "error.html", gin.H{
			"Title":   "Error",
			"Code":    http.StatusInternalServerError,
			"Message": "Could not delete the post.",
		})
		return
	}

	utils.SetFlash(c, "Your post has been deleted!", "success")
	c.Redirect(http.StatusSeeOther, "/")
}

// loadPost fetches the post named in the path, answering 404 for
// non-numeric and unknown ids alike.
func (pc *PostController) loadPost(c *gin.Context) (*models.Post, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		abortNotFound(c)
		return nil, false
	}

	post, err := pc.postService.GetPostByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			abortNotFound(c)
		} else {
			render(c, http.StatusInternalServerError, "error.html", gin.H{
				"Title":   "Error",
				"Code":    http.StatusInternalServerError,
				"Message": "Could not load the post.",
			})
			c.Abort()
		}
		return nil, false
	}

	return post, true
}

// loadOwnedPost additionally enforces ownership: the check runs before
// any mutation, so a forbidden request leaves the post untouched.
func (pc *PostController) loadOwnedPost(c *gin.Context) (*models.Post, bool) {
	post, ok := pc.loadPost(c)
	if !ok {
		return nil, false
	}

	user := middleware.UserFromContext(c)
	if user == nil || post.UserID != user.ID {
		abortForbidden(c)
		return nil, false
	}

	return post, true
}
