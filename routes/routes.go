package routes

import (
	"bookmart/controllers"
	"bookmart/libs"
	"bookmart/middleware"
	"bookmart/services"
	"bookmart/store"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies is everything the handlers need. Mailer and Uploader may
// be nil.
type Dependencies struct {
	Registry      *store.Registry
	Backend       *services.Backend
	Mailer        libs.OrderMailer
	Uploader      libs.CoverUploader
	SessionCookie string
	SecureCookie  bool
	Now           func() time.Time
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	sessionCtrl := &controllers.SessionController{Auth: deps.Backend.Auth}
	bookCtrl := &controllers.BookController{Books: deps.Backend.Books}
	cartCtrl := &controllers.CartController{Books: deps.Backend.Books}
	orderCtrl := &controllers.OrderController{Orders: deps.Backend.Orders, Mailer: deps.Mailer, Now: now}
	profileCtrl := &controllers.ProfileController{Users: deps.Backend.Users}
	adminCtrl := &controllers.AdminController{Backend: deps.Backend, Uploader: deps.Uploader}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": deps.Registry.Len()})
	})

	api := router.Group("/api")
	api.Use(middleware.SessionMiddleware(deps.Registry, deps.SessionCookie, deps.SecureCookie))

	api.GET("/welcome", sessionCtrl.Welcome)
	api.POST("/auth/login", sessionCtrl.Login)
	api.POST("/auth/register", sessionCtrl.Register)
	api.POST("/auth/logout", sessionCtrl.Logout)
	api.GET("/auth/me", sessionCtrl.Me)

	api.GET("/books", bookCtrl.ListBooks)
	api.GET("/books/search", bookCtrl.SearchBooks)
	api.GET("/books/:id", bookCtrl.GetBook)

	auth := api.Group("/")
	auth.Use(middleware.AuthMiddleware(now))
	{
		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.PATCH("/cart/items/:bookId", cartCtrl.UpdateItem)
		auth.DELETE("/cart/items/:bookId", cartCtrl.RemoveItem)
		auth.DELETE("/cart", cartCtrl.ClearCart)

		auth.POST("/checkout", orderCtrl.Checkout)
		auth.GET("/orders", orderCtrl.MyOrders)
		auth.GET("/profile", profileCtrl.GetProfile)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(now), middleware.AdminMiddleware())
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)

		admin.GET("/books", adminCtrl.ListBooks)
		admin.POST("/books", adminCtrl.CreateBook)
		admin.POST("/books/cover", adminCtrl.UploadCover)
		admin.DELETE("/books/cover", adminCtrl.DeleteCover)
		admin.PUT("/books/:id", adminCtrl.UpdateBook)
		admin.DELETE("/books/:id", adminCtrl.DeleteBook)

		admin.GET("/orders", adminCtrl.ListOrders)
		admin.PATCH("/orders/:id/status", adminCtrl.UpdateOrderStatus)

		admin.GET("/users", adminCtrl.ListUsers)
		admin.PUT("/users/:email/role", adminCtrl.UpdateUserRole)
		admin.DELETE("/users/:id", adminCtrl.DeleteUser)
	}
}
