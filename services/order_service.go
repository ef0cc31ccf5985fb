package services

import (
	"bookmart/models"
	"context"
	"net/http"
	"net/url"
)

type OrderService struct {
	api *APIClient
}

func NewOrderService(api *APIClient) *OrderService {
	return &OrderService{api: api}
}

func (s *OrderService) PlaceOrder(ctx context.Context, token string, lines []models.CartLine) (*models.Order, error) {
	var order models.Order
	if err := s.api.Do(ctx, http.MethodPost, "/api/orders/", token, models.NewOrderRequest(lines), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) MyOrders(ctx context.Context, token string) ([]models.Order, error) {
	orders := []models.Order{}
	if err := s.api.Do(ctx, http.MethodGet, "/api/orders/my-orders", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) AllOrders(ctx context.Context, token string) ([]models.Order, error) {
	orders := []models.Order{}
	if err := s.api.Do(ctx, http.MethodGet, "/api/orders/orders", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, token, orderID string, status models.OrderStatus) (*models.Order, error) {
	var order models.Order
	body := models.UpdateOrderStatusRequest{Status: status}
	path := "/api/orders/" + url.PathEscape(orderID) + "/status"
	if err := s.api.Do(ctx, http.MethodPatch, path, token, body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
