package controllers

import (
	"bookmart/libs"
	"bookmart/middleware"
	"bookmart/models"
	"bookmart/services"
	"bookmart/utils"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

type AdminController struct {
	Backend *services.Backend
	// Uploader is nil when cloudinary is not configured.
	Uploader libs.CoverUploader
}

func token(c *gin.Context) string {
	return middleware.State(c).Session.Token()
}

// @Summary Admin dashboard
// @Description Counts of books, orders and users plus completed revenue
// @Tags Admin
// @Produce json
// @Success 200 {object} models.Response
// @Failure 403 {object} models.ErrorResponse
// @Router /api/admin/dashboard [get]
func (ctrl *AdminController) Dashboard(c *gin.Context) {
	var (
		books  []models.Book
		orders []models.Order
		users  []models.User
	)
	tok := token(c)

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		books, err = ctrl.Backend.Books.ListBooks(ctx)
		return err
	})
	g.Go(func() (err error) {
		orders, err = ctrl.Backend.Orders.AllOrders(ctx, tok)
		return err
	})
	g.Go(func() (err error) {
		users, err = ctrl.Backend.Users.ListUsers(ctx, tok)
		return err
	})
	if err := g.Wait(); err != nil {
		backendError(c, err, "Failed to load dashboard")
		return
	}

	ok(c, "Dashboard retrieved", dashboardStats(books, orders, users))
}

func dashboardStats(books []models.Book, orders []models.Order, users []models.User) models.DashboardStats {
	stats := models.DashboardStats{
		TotalBooks:  len(books),
		TotalOrders: len(orders),
		TotalUsers:  len(users),
	}
	for _, order := range orders {
		switch order.Status {
		case models.OrderStatusCompleted:
			stats.Revenue += order.TotalAmount
		case models.OrderStatusPending:
			stats.Pending++
		}
	}
	return stats
}

func (ctrl *AdminController) ListBooks(c *gin.Context) {
	books, err := ctrl.Backend.Books.ListBooks(c.Request.Context())
	if err != nil {
		backendError(c, err, "Failed to load books")
		return
	}
	category := c.DefaultQuery("category", models.CategoryAll)
	ok(c, "Books retrieved", services.FilterBooks(books, c.Query("search"), category))
}

// @Summary Create book
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body models.BookRequest true "Book"
// @Success 200 {object} models.Response
// @Router /api/admin/books [post]
func (ctrl *AdminController) CreateBook(c *gin.Context) {
	var req models.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid book", err)
		return
	}
	req.Category = strings.ToUpper(req.Category)

	message, err := ctrl.Backend.Books.AddBook(c.Request.Context(), token(c), req)
	if err != nil {
		backendError(c, err, "Failed to add book")
		return
	}
	ok(c, message, nil)
}

func (ctrl *AdminController) UpdateBook(c *gin.Context) {
	var req models.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid book", err)
		return
	}
	req.Category = strings.ToUpper(req.Category)

	message, err := ctrl.Backend.Books.UpdateBook(c.Request.Context(), token(c), c.Param("id"), req)
	if err != nil {
		backendError(c, err, "Failed to update book")
		return
	}
	ok(c, message, nil)
}

func (ctrl *AdminController) DeleteBook(c *gin.Context) {
	message, err := ctrl.Backend.Books.DeleteBook(c.Request.Context(), token(c), c.Param("id"))
	if err != nil {
		backendError(c, err, "Failed to delete book")
		return
	}
	ok(c, message, nil)
}

// @Summary Upload book cover
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param cover formData file true "Cover image"
// @Success 200 {object} models.Response
// @Failure 503 {object} models.ErrorResponse
// @Router /api/admin/books/cover [post]
func (ctrl *AdminController) UploadCover(c *gin.Context) {
	if ctrl.Uploader == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Success: false,
			Message: "Cover uploads are not configured",
		})
		return
	}

	fileHeader, err := c.FormFile("cover")
	if err != nil {
		badRequest(c, "Cover image is required", err)
		return
	}
	if err := utils.ValidateCoverImage(fileHeader); err != nil {
		badRequest(c, err.Error(), nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		badRequest(c, "Failed to read cover image", err)
		return
	}
	defer file.Close()

	url, publicID, err := ctrl.Uploader.UploadCover(c.Request.Context(), file, fileHeader.Filename)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Success: false,
			Message: "Failed to upload cover",
			Error:   err.Error(),
		})
		return
	}
	ok(c, "Cover uploaded", gin.H{"imageUrl": url, "publicId": publicID})
}

// DeleteCover drops an uploaded cover that ended up unused.
func (ctrl *AdminController) DeleteCover(c *gin.Context) {
	if ctrl.Uploader == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Success: false,
			Message: "Cover uploads are not configured",
		})
		return
	}
	publicID := c.Query("publicId")
	if publicID == "" {
		badRequest(c, "publicId is required", nil)
		return
	}
	if err := ctrl.Uploader.DeleteCover(c.Request.Context(), publicID); err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Success: false,
			Message: "Failed to delete cover",
			Error:   err.Error(),
		})
		return
	}
	ok(c, "Cover deleted", nil)
}

func (ctrl *AdminController) ListOrders(c *gin.Context) {
	orders, err := ctrl.Backend.Orders.AllOrders(c.Request.Context(), token(c))
	if err != nil {
		backendError(c, err, "Failed to load orders")
		return
	}
	if status := models.OrderStatus(strings.ToUpper(c.Query("status"))); status.Valid() {
		filtered := make([]models.Order, 0, len(orders))
		for _, order := range orders {
			if order.Status == status {
				filtered = append(filtered, order)
			}
		}
		orders = filtered
	}
	ok(c, "Orders retrieved", orders)
}

// @Summary Update order status
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "Status"
// @Success 200 {object} models.Response
// @Router /api/admin/orders/{id}/status [patch]
func (ctrl *AdminController) UpdateOrderStatus(c *gin.Context) {
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Status is required", err)
		return
	}
	status := models.OrderStatus(strings.ToUpper(string(req.Status)))
	if !status.Valid() {
		badRequest(c, fmt.Sprintf("Invalid status %q", req.Status), nil)
		return
	}

	order, err := ctrl.Backend.Orders.UpdateStatus(c.Request.Context(), token(c), c.Param("id"), status)
	if err != nil {
		backendError(c, err, "Failed to update order status")
		return
	}
	ok(c, "Order status updated", order)
}

func (ctrl *AdminController) ListUsers(c *gin.Context) {
	users, err := ctrl.Backend.Users.ListUsers(c.Request.Context(), token(c))
	if err != nil {
		backendError(c, err, "Failed to load users")
		return
	}
	ok(c, "Users retrieved", users)
}

// UpdateUserRole takes the role from ?role= or a JSON body.
func (ctrl *AdminController) UpdateUserRole(c *gin.Context) {
	role := models.Role(c.Query("role"))
	if role == "" {
		var req models.UpdateRoleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Role is required", err)
			return
		}
		role = req.Role
	}
	role = models.Role(strings.ToUpper(string(role)))
	if !role.Valid() {
		badRequest(c, fmt.Sprintf("Invalid role %q", role), nil)
		return
	}

	if err := ctrl.Backend.Users.UpdateRole(c.Request.Context(), token(c), c.Param("email"), role); err != nil {
		backendError(c, err, "Failed to update role")
		return
	}
	ok(c, "Role updated", nil)
}

func (ctrl *AdminController) DeleteUser(c *gin.Context) {
	if err := ctrl.Backend.Users.DeleteUser(c.Request.Context(), token(c), c.Param("id")); err != nil {
		backendError(c, err, "Failed to delete user")
		return
	}
	ok(c, "User deleted", nil)
}
