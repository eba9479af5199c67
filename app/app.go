package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	adapterhttp "highlight-vmaf-service/ddd/adapter/http"
	app "highlight-vmaf-service/ddd/application/app"
	"highlight-vmaf-service/ddd/infrastructure/database/persistence"
	"highlight-vmaf-service/ddd/infrastructure/event"
	"highlight-vmaf-service/ddd/infrastructure/queue"
	"highlight-vmaf-service/internal/resource"
	"highlight-vmaf-service/pkg/config"
	"highlight-vmaf-service/pkg/logger"
	"highlight-vmaf-service/pkg/registry"
)

// Run boots the service and blocks until a shutdown signal arrives.
func Run() {
	fmt.Println("[STARTUP] Starting highlight vmaf service...")

	cfgPath := resolveConfigPath()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Printf("[ERROR] Failed to load config (%s): %v\n", cfgPath, err)
		os.Exit(1)
	}
	config.SetGlobalConfig(cfg)
	fmt.Printf("[STARTUP] Config file loaded: %s\n", cfgPath)

	logService := logger.NewLogger(cfg)
	logger.SetGlobalLogger(logService)
	logger.Debug("Logger initialized", map[string]interface{}{
		"level":  cfg.Log.Level,
		"format": cfg.Log.Format,
		"output": cfg.Log.Output,
	})

	logger.Infof("Highlight vmaf service starting version=%s", "1.0.0")

	logger.Infof("Opening database connection...")
	resource.DefaultMysqlResource().MustOpen()
	defer resource.DefaultMysqlResource().Close()
	logger.Infof("Database connected")

	logger.Infof("Opening redis connection...")
	resource.DefaultRedisResource().MustOpen()
	defer resource.DefaultRedisResource().Close()
	if !resource.DefaultRedisResource().Client().HealthCheck(context.Background()) {
		logger.Fatal("Redis health check failed at startup")
	}
	logger.Infof("Redis connected queue=%s processor_version=%s", cfg.Queue.QueueName(), cfg.Queue.ProcessorVersion)

	publisher := event.NewKafkaPublisher(cfg.Kafka)
	defer publisher.Close()

	videoApp := app.NewVideoAppWith(
		persistence.NewVideoRepository(),
		persistence.NewHighlightStatRepository(),
		persistence.NewHighlightFrameRepository(),
		queue.NewVMAFJobQueue(resource.DefaultRedisResource().Client(), cfg.Queue),
		publisher,
	)

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	engine := gin.New()

	router := adapterhttp.NewRouter(videoApp)
	router.SetupMiddleware(engine)
	router.SetupRoutes(engine)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(fmt.Sprintf("Failed to start HTTP server error=%v", err))
		}
	}()
	logger.Infof("HTTP server started address=%s api_url=%s", addr, fmt.Sprintf("http://%s/api/v1", addr))

	var serviceRegistry *registry.ServiceRegistry
	if cfg.ServiceRegistry.Enabled {
		serviceRegistry, err = registry.NewServiceRegistry(cfg.ServiceRegistry, registerAddr(cfg))
		if err != nil {
			logger.Errorf("Failed to connect service registry error=%v", err)
		} else if err := serviceRegistry.Register(); err != nil {
			logger.Errorf("Failed to register service error=%v", err)
		} else {
			logger.Infof("Service registered name=%s", cfg.ServiceRegistry.ServiceName)
		}
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infof("Received shutdown signal, shutting down server...")

	if serviceRegistry != nil {
		if err := serviceRegistry.Deregister(); err != nil {
			logger.Errorf("Failed to deregister service error=%v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal(fmt.Sprintf("Server forced to close error=%v", err))
	}

	logger.Infof("Server exited safely")

	if logService != nil {
		logService.Close()
	}

	fmt.Println("[SHUTDOWN] Highlight vmaf service exited safely")
}

// registerAddr is the address advertised to the registry. The bind host is
// often 0.0.0.0 and useless to peers, so register_host overrides it.
func registerAddr(cfg *config.Config) string {
	host := cfg.ServiceRegistry.RegisterHost
	if host == "" {
		host = cfg.Server.Host
	}
	return fmt.Sprintf("%s:%d", host, cfg.Server.Port)
}

// resolveConfigPath picks the config file, honoring CONFIG_PATH and
// CONFIG_ENV overrides.
func resolveConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}

	env := strings.ToLower(strings.TrimSpace(os.Getenv("CONFIG_ENV")))
	if env == "" {
		env = "dev"
	}

	switch env {
	case "prod", "production":
		return "configs/config.prod.yaml"
	case "dev", "development":
		return "configs/config.dev.yaml"
	default:
		return fmt.Sprintf("configs/config.%s.yaml", env)
	}
}
