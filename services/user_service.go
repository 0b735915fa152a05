package services

import (
	"errors"

	"goblog/models"

	"gorm.io/gorm"
)

// Uniqueness is enforced by the database's unique indexes; the insert
// error is inspected afterwards only to tell the caller which field
// collided. There is no read-then-write window for two registrations
// to slip through.
var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrEmailTaken    = errors.New("email already registered")
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) CreateUser(form *models.RegisterForm) (*models.User, error) {
	user := &models.User{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
	}

	if err := user.HashPassword(); err != nil {
		return nil, err
	}

	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var count int64
			s.db.Model(&models.User{}).Where("username = ?", form.Username).Count(&count)
			if count > 0 {
				return nil, ErrUsernameTaken
			}
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, id).Error
	return &user, err
}

func (s *UserService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	return &user, err
}
