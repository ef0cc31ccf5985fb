package api

import (
	"bookmart/config"
	"bookmart/middleware"
	"bookmart/repositories"
	"bookmart/routes"
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const storageConnectTimeout = 10 * time.Second

type storageOpener func(ctx context.Context, cfg *config.Config) (repositories.SnapshotRepository, func(), error)

var (
	router *gin.Engine
	once   sync.Once
)

// newRouter builds the app for one serverless instance. Serverless
// instances do not live long enough to need the idle sweep, so none is
// started.
func newRouter(cfg *config.Config, open storageOpener) *gin.Engine {
	// Storage outlives the request that happens to start the instance.
	ctx, cancel := context.WithTimeout(context.Background(), storageConnectTimeout)
	defer cancel()

	// There is no shutdown hook on serverless, so the connection is
	// never closed explicitly.
	repo, _, err := open(ctx, cfg)
	if err != nil {
		log.Printf("Falling back to in-memory snapshots: %v", err)
		repo = repositories.NewMemoryRepository()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.OriginURL))

	routes.SetupRoutes(r, routes.NewDependencies(cfg, repo))
	return r
}

func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)
		router = newRouter(config.LoadConfig(), config.OpenStorage)
	})
	router.ServeHTTP(w, r)
}
