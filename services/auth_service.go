package services

import (
	"bookmart/models"
	"context"
	"net/http"
)

type AuthService struct {
	api *APIClient
}

func NewAuthService(api *APIClient) *AuthService {
	return &AuthService{api: api}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Identity, error) {
	var identity models.Identity
	body := models.LoginRequest{Email: email, Password: password}
	if err := s.api.Do(ctx, http.MethodPost, "/api/auth/login", "", body, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

// Register returns the backend's confirmation message.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	var message string
	body := map[string]string{"name": name, "email": email, "password": password}
	if err := s.api.Do(ctx, http.MethodPost, "/api/auth/register", "", body, &message); err != nil {
		return "", err
	}
	return message, nil
}
