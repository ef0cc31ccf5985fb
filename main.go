package main

import (
	"bookmart/config"
	_ "bookmart/docs"
	"bookmart/middleware"
	"bookmart/routes"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// @title BookMart API
// @version 1.0
// @description Session, cart and checkout layer in front of the BookMart backend.
// @host localhost:8081
// @BasePath /
func main() {

	config.LoadConfig()

	if config.AppConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeStorage, err := config.OpenStorage(ctx, config.AppConfig)
	if err != nil {
		log.Fatalf("Failed to open snapshot storage: %v", err)
	}
	defer closeStorage()

	deps := routes.NewDependencies(config.AppConfig, repo)
	go deps.Registry.Run(ctx, time.Minute, config.AppConfig.SessionIdle)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(config.AppConfig.OriginURL))
	routes.SetupRoutes(router, deps)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", server.Addr)
		log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server shutdown complete")
}
