package models

type RegisterRequest struct {
	Name            string `json:"name" form:"name" binding:"required,min=2"`
	Email           string `json:"email" form:"email" binding:"required,email"`
	Password        string `json:"password" form:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword" binding:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type AddToCartRequest struct {
	BookID   string `json:"bookId" binding:"required"`
	Quantity *int   `json:"quantity" binding:"omitempty,gt=0"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type BookRequest struct {
	Title         string  `json:"title" form:"title" binding:"required"`
	Author        string  `json:"author" form:"author" binding:"required"`
	Description   string  `json:"description" form:"description"`
	Price         float64 `json:"price" form:"price" binding:"gte=0"`
	ISBN          string  `json:"isbn" form:"isbn"`
	StockQuantity int     `json:"stockQuantity" form:"stockQuantity" binding:"gte=0"`
	Category      string  `json:"category" form:"category" binding:"required"`
	ImageURL      string  `json:"imageUrl" form:"imageUrl"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" binding:"required"`
}

type UpdateRoleRequest struct {
	Role Role `json:"role" form:"role" binding:"required"`
}
