package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"dairy_admin/internal/activity"
	"dairy_admin/internal/config"
	"dairy_admin/internal/entity"
	"dairy_admin/internal/gateway"
	"dairy_admin/internal/handlers"
	"dairy_admin/internal/panel"
	"dairy_admin/internal/sample"
	"dairy_admin/internal/session"
	"dairy_admin/internal/stats"
	"dairy_admin/internal/storage"
	"dairy_admin/internal/store"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize blob storage
	blob, err := newBlob(cfg)
	if err != nil {
		log.Fatal("Failed to initialize storage:", err)
	}

	// Session and remote gateway
	sess := session.New(blob)
	remote := gateway.NewClient(cfg.APIBaseURL, sess, time.Duration(cfg.RequestTimeout)*time.Second)

	// Aggregate stats and activity log
	statsService := stats.NewService(remote)
	activityLog := activity.NewLog(blob)

	// Every successful mutation republishes the counters and records an
	// activity entry.
	onChange := func(action panel.Action, schema entity.Schema, rec entity.Record) {
		activityLog.Record(action.String(), schema.Name, rec.ID, schema.Title)
		statsService.Refresh(context.Background())
	}

	// Build one controller per entity schema
	fallbacks := sample.ByEntity()
	panels := make(map[string]*panel.Controller)
	for _, schema := range entity.All() {
		st := store.NewDurableStore(blob, schema.Name)
		ctrl := panel.NewController(schema, st, panel.ContextGate).WithChangeFunc(onChange)
		if schema.ServerBacked {
			ctrl.WithRemote(gateway.NewEntityAPI(remote, schema.APIPath), fallbacks[schema.Name])
		} else if st.Len() == 0 {
			st.ReplaceAll(fallbacks[schema.Name])
		}
		panels[schema.Name] = ctrl
		statsService.Register(schema.Name, st)
	}

	// Pull server-backed mirrors once at startup; failures fall back to
	// sample data inside Sync.
	syncCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.RequestTimeout)*time.Second)
	for _, schema := range entity.All() {
		if schema.ServerBacked {
			if err := panels[schema.Name].Sync(syncCtx); err != nil {
				log.Printf("Warning: %s sync failed, serving local data", schema.Name)
			}
		}
	}
	cancel()
	statsService.Refresh(context.Background())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg, sess)
	panelHandler := handlers.NewPanelHandler(panels, cfg.PageSize)
	dashboardHandler := handlers.NewDashboardHandler(statsService, activityLog, remote)

	// Setup routes
	router := gin.Default()

	router.POST("/api/auth/login", authHandler.Login)

	api := router.Group("/api", authHandler.RequireAuth)
	{
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/auth/profile", authHandler.Profile)

		api.GET("/dashboard/stats", dashboardHandler.Stats)
		api.GET("/recent-activities", dashboardHandler.RecentActivities)
		api.GET("/search", dashboardHandler.Search)

		api.GET("/panels/:entity", panelHandler.List)
		api.GET("/panels/:entity/export", panelHandler.Export)
		api.GET("/panels/:entity/form", panelHandler.NewForm)
		api.POST("/panels/:entity", panelHandler.Create)
		api.PUT("/panels/:entity/:id", panelHandler.Update)
		api.DELETE("/panels/:entity/:id", panelHandler.Delete)
	}

	// Start server
	log.Printf("Dashboard starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func newBlob(cfg *config.Config) (storage.Blob, error) {
	if cfg.StorageBackend == "redis" {
		return storage.NewRedisBlob(cfg.RedisURL, "dairy_admin")
	}
	return storage.NewFileBlob(cfg.DataDir)
}
