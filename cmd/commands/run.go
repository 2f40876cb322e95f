package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"pixvault"
	"pixvault/config"
	"pixvault/internal/application/usecase"
	cacheRepository "pixvault/internal/domain/repository/cache"
	"pixvault/internal/infrastructure/auth"
	"pixvault/internal/infrastructure/cache"
	"pixvault/internal/infrastructure/database"
	"pixvault/internal/infrastructure/minio"
	"pixvault/internal/presentation"
	"pixvault/internal/presentation/handler"
	"pixvault/internal/presentation/middleware"
	"pixvault/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running pixvault", "version", pixvault.StringVersion())

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}

	minIOClient, err := minio.New(&cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}

	var sizes cacheRepository.SizeCache
	if cfg.CacheConfig.Enabled {
		sizeCache, err := cache.NewSizeCache(cfg.CacheConfig)
		if err != nil {
			ExitOnError(err)
		}
		sizes = sizeCache
	}

	signer := minio.NewSigner(minIOClient.MinioClient, sizes, &cfg.MinIOSigner)
	galleryStore := database.NewGalleryStore(db)
	imageRetriever := database.NewImageRetriever(db)
	verifier := auth.NewJWTVerifier(cfg.AuthConfig)

	galleryHandler := handler.NewGalleryHandler(
		usecase.NewGallery(galleryStore, signer),
		usecase.NewGetter(imageRetriever, signer))
	imageURLHandler := handler.NewImageURLHandler(usecase.NewResolver(signer))

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		MaxAge:       86400,
	}))
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit("1M"))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	var guards []echo.MiddlewareFunc
	if cfg.AuthConfig.Required {
		guards = append(guards, middleware.BearerAuth(verifier))
	}

	e.GET("/gallery", galleryHandler.HandleList, guards...)
	e.GET(fmt.Sprintf("/gallery/:%s", presentation.IDParam), galleryHandler.HandleGet, guards...)
	e.GET("/image-url", imageURLHandler.HandleResolve, guards...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.Default.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		ExitOnError(err)
	}
	if err := db.Stop(); err != nil {
		ExitOnError(err)
	}
}
