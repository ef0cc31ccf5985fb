package controllers

import (
	"bookmart/libs"
	"bookmart/middleware"
	"bookmart/models"
	"bookmart/services"
	"bookmart/utils"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
	// Mailer is optional; without it no confirmation is sent.
	Mailer libs.OrderMailer
	Now    func() time.Time
}

func (ctrl *OrderController) now() time.Time {
	if ctrl.Now == nil {
		return time.Now()
	}
	return ctrl.Now()
}

// @Summary Checkout
// @Description Places an order for every cart line, then removes the ordered lines
// @Tags Orders
// @Produce json
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /api/checkout [post]
func (ctrl *OrderController) Checkout(c *gin.Context) {
	state := middleware.State(c)
	lines := state.Cart.Items()
	if len(lines) == 0 {
		badRequest(c, "Your cart is empty", nil)
		return
	}

	order, err := ctrl.Orders.PlaceOrder(c.Request.Context(), state.Session.Token(), lines)
	if err != nil {
		backendError(c, err, "Failed to place order")
		return
	}
	// The order exists now, so its lines go even if the request was
	// cancelled meanwhile. Anything added during the call stays.
	state.Cart.RemoveOrdered(lines)

	orderNumber := utils.OrderNumber(ctrl.now())
	if user := state.Session.User(); user != nil && ctrl.Mailer != nil {
		go func(mailer libs.OrderMailer, to, name string) {
			if err := mailer.SendOrderConfirmation(to, name, orderNumber, order); err != nil {
				log.Printf("Failed to send order confirmation for %s: %v", orderNumber, err)
			}
		}(ctrl.Mailer, user.Email, user.Name)
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order placed successfully",
		Data:    models.CheckoutResponse{OrderNumber: orderNumber, Order: order},
	})
}

// @Summary My orders
// @Tags Orders
// @Produce json
// @Success 200 {object} models.Response
// @Router /api/orders [get]
func (ctrl *OrderController) MyOrders(c *gin.Context) {
	token := middleware.State(c).Session.Token()
	orders, err := ctrl.Orders.MyOrders(c.Request.Context(), token)
	if err != nil {
		backendError(c, err, "Failed to load orders")
		return
	}
	ok(c, "Orders retrieved", orders)
}
