package services

import (
	"goblog/models"

	"gorm.io/gorm"
)

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

func (s *PostService) GetAllPosts() ([]models.Post, error) {
	var posts []models.Post
	err := s.db.Preload("Author").Find(&posts).Error
	return posts, err
}

func (s *PostService) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	err := s.db.Preload("Author").First(&post, id).Error
	return &post, err
}

func (s *PostService) CreatePost(userID uint, form *models.PostForm) (*models.Post, error) {
	post := &models.Post{
		Title:   form.Title,
		Content: form.Content,
		UserID:  userID,
	}

	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}

	return post, nil
}

// UpdatePost overwrites title and content only; id, owner and creation
// time never change.
func (s *PostService) UpdatePost(post *models.Post, form *models.PostForm) error {
	return s.db.Model(post).Select("title", "content").
		Updates(map[string]interface{}{"title": form.Title, "content": form.Content}).Error
}

func (s *PostService) DeletePost(post *models.Post) error {
	return s.db.Delete(post).Error
}
