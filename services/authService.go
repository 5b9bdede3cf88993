package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"mart-api/config"
	"mart-api/dtos"
	"mart-api/models"
	"mart-api/utils/token"
)

type AuthService interface {
	Register(input dtos.RegisterInput) (*dtos.AuthResponse, error)
	Login(input dtos.LoginInput) (*dtos.AuthResponse, error)
}

type authService struct{}

func NewAuthService() AuthService {
	return &authService{}
}

func (s *authService) Register(input dtos.RegisterInput) (*dtos.AuthResponse, error) {
	var existing models.User
	if err := config.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return nil, errors.New("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("Failed to hash password")
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hash),
		Phone:    input.Phone,
		Role:     "customer",
	}

	if err := config.DB.Create(&user).Error; err != nil {
		return nil, errors.New("Failed to create user")
	}

	t, err := token.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.New("Failed to generate token")
	}

	return &dtos.AuthResponse{
		Message: "Registration successful",
		Token:   t,
		Role:    user.Role,
	}, nil
}

func (s *authService) Login(input dtos.LoginInput) (*dtos.AuthResponse, error) {
	var user models.User
	if err := config.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		return nil, errors.New("User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, errors.New("Incorrect password")
	}

	t, err := token.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.New("Failed to generate token")
	}

	return &dtos.AuthResponse{
		Message: "Login successful",
		Token:   t,
		Role:    user.Role,
	}, nil
}
