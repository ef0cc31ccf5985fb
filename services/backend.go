package services

// Backend groups the service wrappers that share one API client.
type Backend struct {
	Auth   *AuthService
	Books  *BookService
	Orders *OrderService
	Users  *UserService
}

func NewBackend(api *APIClient) *Backend {
	return &Backend{
		Auth:   NewAuthService(api),
		Books:  NewBookService(api),
		Orders: NewOrderService(api),
		Users:  NewUserService(api),
	}
}
