package models

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID          string      `json:"id"`
	OrderDate   string      `json:"orderDate"`
	TotalAmount float64     `json:"totalAmount"`
	Status      OrderStatus `json:"status"`
	Items       []OrderItem `json:"items"`
}

type OrderItem struct {
	ID         string  `json:"id"`
	BookID     string  `json:"bookId"`
	BookTitle  string  `json:"bookTitle"`
	BookAuthor string  `json:"bookAuthor"`
	Quantity   int     `json:"quantity"`
	OrderPrice float64 `json:"orderPrice"`
	Subtotal   float64 `json:"subtotal"`
}

type OrderLineRequest struct {
	BookID   string `json:"bookId"`
	Quantity int    `json:"quantity"`
}

type OrderRequest struct {
	Items []OrderLineRequest `json:"items"`
}

// NewOrderRequest converts cart lines into the backend order payload.
func NewOrderRequest(lines []CartLine) OrderRequest {
	req := OrderRequest{Items: make([]OrderLineRequest, 0, len(lines))}
	for _, line := range lines {
		req.Items = append(req.Items, OrderLineRequest{BookID: line.Book.ID, Quantity: line.Quantity})
	}
	return req
}
