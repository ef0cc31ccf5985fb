package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Error    string `json:"error,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

// ApiError is the error body the BookMart backend sends.
type ApiError struct {
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
	Details   string `json:"details"`
}

type SessionResponse struct {
	User            *Identity `json:"user"`
	IsAuthenticated bool      `json:"isAuthenticated"`
	IsAdmin         bool      `json:"isAdmin"`
}

type CheckoutResponse struct {
	OrderNumber string `json:"orderNumber"`
	Order       *Order `json:"order"`
}

type DashboardStats struct {
	TotalBooks  int     `json:"totalBooks"`
	TotalOrders int     `json:"totalOrders"`
	TotalUsers  int     `json:"totalUsers"`
	Revenue     float64 `json:"revenue"`
	Pending     int     `json:"pendingOrders"`
}
