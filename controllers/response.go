package controllers

import (
	"bookmart/models"
	"bookmart/services"
	"bookmart/store"
	"bookmart/utils"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func ok(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, models.Response{Success: true, Message: message, Data: data})
}

func badRequest(c *gin.Context, message string, err error) {
	resp := models.ErrorResponse{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(http.StatusBadRequest, resp)
}

// backendError relays a failed backend call. The backend's own message
// wins over fallback.
func backendError(c *gin.Context, err error, fallback string) {
	log.Printf("%s: %v", fallback, err)
	c.JSON(services.StatusCode(err), models.ErrorResponse{
		Success: false,
		Message: services.ErrorMessage(err, fallback),
		Error:   err.Error(),
	})
}

func cartSummary(cart *store.CartStore) models.CartSummary {
	total := cart.TotalPrice()
	return models.CartSummary{
		Items:             cart.Items(),
		TotalItems:        cart.TotalItems(),
		TotalPrice:        total,
		TotalPriceDisplay: utils.FormatPrice(total),
	}
}
