package controllers

import (
	"bookmart/middleware"
	"bookmart/models"
	"bookmart/services"
	"bookmart/store"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Books *services.BookService
}

// @Summary Get cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /api/cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	ok(c, "Cart retrieved", cartSummary(middleware.State(c).Cart))
}

// @Summary Add to cart
// @Description Fetches the book so the line holds its current price and checks stock
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Book and quantity"
// @Success 200 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /api/cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid cart item", err)
		return
	}
	quantity := store.DefaultQuantity
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	book, err := ctrl.Books.GetBook(c.Request.Context(), req.BookID)
	if err != nil {
		backendError(c, err, "Book not found")
		return
	}
	if !book.InStock() {
		c.JSON(http.StatusConflict, models.ErrorResponse{Success: false, Message: "Out of stock"})
		return
	}
	cart := middleware.State(c).Cart
	inCart := 0
	if line, found := cartLine(cart, book.ID); found {
		inCart = line.Quantity
	}
	if inCart+quantity > book.StockQuantity {
		stockConflict(c, book.StockQuantity)
		return
	}

	cart.AddItem(*book, quantity)
	ok(c, fmt.Sprintf("%s added to cart", book.Title), cartSummary(cart))
}

// UpdateItem sets a line's quantity; zero or less removes the line.
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Quantity is required", err)
		return
	}

	cart := middleware.State(c).Cart
	bookID := c.Param("bookId")
	// The cap uses the stock captured when the line was added.
	if line, found := cartLine(cart, bookID); found && *req.Quantity > line.Book.StockQuantity {
		stockConflict(c, line.Book.StockQuantity)
		return
	}
	cart.UpdateQuantity(bookID, *req.Quantity)
	ok(c, "Cart updated", cartSummary(cart))
}

func (ctrl *CartController) RemoveItem(c *gin.Context) {
	cart := middleware.State(c).Cart
	cart.RemoveItem(c.Param("bookId"))
	ok(c, "Item removed", cartSummary(cart))
}

func (ctrl *CartController) ClearCart(c *gin.Context) {
	cart := middleware.State(c).Cart
	cart.ClearCart()
	ok(c, "Cart cleared", cartSummary(cart))
}

func cartLine(cart *store.CartStore, bookID string) (models.CartLine, bool) {
	for _, line := range cart.Items() {
		if line.Book.ID == bookID {
			return line, true
		}
	}
	return models.CartLine{}, false
}

func stockConflict(c *gin.Context, stock int) {
	c.JSON(http.StatusConflict, models.ErrorResponse{
		Success: false,
		Message: fmt.Sprintf("Only %d in stock", stock),
	})
}
