package services

import (
	"bookmart/models"
	"context"
	"net/http"
	"net/url"
)

type UserService struct {
	api *APIClient
}

func NewUserService(api *APIClient) *UserService {
	return &UserService{api: api}
}

func (s *UserService) Profile(ctx context.Context, token, email string) (*models.User, error) {
	var user models.User
	if err := s.api.Do(ctx, http.MethodGet, "/api/users/me/"+url.PathEscape(email), token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	users := []models.User{}
	if err := s.api.Do(ctx, http.MethodGet, "/api/admin/users", token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) UpdateRole(ctx context.Context, token, email string, role models.Role) error {
	path := "/api/admin/users/" + url.PathEscape(email) + "/role?" + url.Values{"role": {string(role)}}.Encode()
	return s.api.Do(ctx, http.MethodPut, path, token, nil, nil)
}

func (s *UserService) DeleteUser(ctx context.Context, token, id string) error {
	return s.api.Do(ctx, http.MethodDelete, "/api/admin/user/"+url.PathEscape(id), token, nil, nil)
}
