package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go-gin-cinema-booking/config"
	"go-gin-cinema-booking/internal/database"
	"go-gin-cinema-booking/internal/handler"
	"go-gin-cinema-booking/internal/idgen"
	"go-gin-cinema-booking/internal/middleware"
	"go-gin-cinema-booking/internal/model"
	"go-gin-cinema-booking/internal/repository"
	"go-gin-cinema-booking/internal/service"
	"go-gin-cinema-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type routeRegistrar interface {
	RegisterRoutes(r *gin.Engine)
}

func main() {
	cfg := config.LoadConfig()
	logger.SetLevel(cfg.Log.Level)
	gin.SetMode(cfg.Server.GinMode)
	log := logger.WithComponent("server")
	defer logger.L.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatal("Failed to initialize redis", zap.Error(err))
	}
	defer rdb.Close()

	counterRepository := repository.NewCounterRepository(pool)
	ids := idgen.NewRedisAllocator(rdb, counterRepository)
	// 啟動時預熱計數器, 避免 Redis 重啟後發出 Postgres 已存在的 ID
	if err := idgen.Seed(ctx, ids, counterRepository, model.Entities...); err != nil {
		log.Fatal("Failed to seed id counters", zap.Error(err))
	}

	filmRepository := repository.NewFilmRepository(pool)
	theatreRepository := repository.NewTheatreRepository(pool)
	screeningRepository := repository.NewScreeningRepository(pool)
	bookingRepository := repository.NewBookingRepository(pool)
	ticketRepository := repository.NewTicketRepository(pool)
	ticketTypeRepository := repository.NewTicketTypeRepository(pool)

	filmService := service.NewFilmService(filmRepository, ids)
	theatreService := service.NewTheatreService(pool, theatreRepository, screeningRepository, ticketRepository, ids)
	screeningService := service.NewScreeningService(pool, screeningRepository, filmRepository, theatreRepository, ticketRepository, ids)
	bookingService := service.NewBookingService(pool, bookingRepository, screeningRepository, theatreRepository, ticketRepository, ids)
	ticketService := service.NewTicketService(pool, ticketRepository, bookingRepository, screeningRepository, theatreRepository, bookingService)
	ticketTypeService := service.NewTicketTypeService(ticketTypeRepository, ids)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.Timeout(cfg.Server.RequestTimeout),
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	handlers := []routeRegistrar{
		handler.NewFilmHandler(filmService),
		handler.NewTheatreHandler(theatreService),
		handler.NewScreeningHandler(screeningService),
		handler.NewBookingHandler(bookingService),
		handler.NewTicketHandler(ticketService),
		handler.NewTicketTypeHandler(ticketTypeService),
	}
	for _, h := range handlers {
		h.RegisterRoutes(router)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped unexpectedly", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
