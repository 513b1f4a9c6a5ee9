package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"app/internal/config"
	"app/internal/event"
	"app/internal/handler"
	"app/internal/infra/gemini"
	infraRepo "app/internal/infra/repository"
	repo "app/internal/repository"
	"app/internal/server"
	"app/internal/usecase"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	//.envは無くてもよい（環境変数だけでも動く）
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config load failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//Repository生成（file / redis）
	var (
		productRepo repo.ProductRepository
		orderRepo   repo.OrderRepository
		eventRepo   repo.OrderEventRepository
	)

	switch cfg.StoreDriver {
	case "redis":
		client, err := infraRepo.ConnectRedis(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Error("redis connect failed", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
		defer client.Close()

		productRepo = infraRepo.NewProductRedisRepository(client)
		orderRepo = infraRepo.NewOrderRedisRepository(client)
		eventRepo = infraRepo.NewOrderEventRedisRepository(client)
	default:
		productRepo = infraRepo.NewProductFileRepository(cfg.DataDir)
		orderRepo = infraRepo.NewOrderFileRepository(cfg.DataDir)
		eventRepo = infraRepo.NewOrderEventFileRepository(cfg.DataDir)
	}

	//イベント配信：プロセス内バス＋（設定時のみ）NATS
	bus := event.NewBus()
	var pub event.Publisher = bus
	if cfg.NatsURL != "" {
		np, err := event.NewNATSPublisher(cfg.NatsURL, logger)
		if err != nil {
			//NATSはあくまで補助。つながらなくても起動は続ける
			logger.Warn("nats connect failed, continuing without it", "url", cfg.NatsURL, "error", err)
		} else {
			defer np.Close()
			pub = event.Fanout{bus, np}
		}
	}

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	ai := gemini.NewClient(cfg.GeminiAPIKey, gemini.WithLogger(logger))

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(productRepo, idGen, ai, logger)
	cartUC := usecase.NewCartUsecase(catalogUC)
	orderUC := usecase.NewOrderUsecase(orderRepo, eventRepo, cartUC, idGen, clock, pub, logger)
	dashboardUC := usecase.NewDashboardUsecase(orderUC, ai)

	//起動時読み込み（無い/壊れはデフォルトへフォールバック）
	if err := catalogUC.Load(ctx); err != nil {
		logger.Error("catalog load failed", "error", err)
		os.Exit(1)
	}
	if err := orderUC.Load(ctx); err != nil {
		logger.Error("orders load failed", "error", err)
		os.Exit(1)
	}

	//保存領域の突き合わせポーラー
	poller := usecase.NewPoller(orderUC, orderRepo, cfg.PollInterval, pub, clock, logger)
	go poller.Run(ctx)

	//Handler生成
	handlers := server.Handlers{
		Session:   handler.NewSessionHandler(cartUC),
		Product:   handler.NewProductHandler(catalogUC),
		Cart:      handler.NewCartHandler(cartUC),
		Order:     handler.NewOrderHandler(orderUC),
		Dashboard: handler.NewDashboardHandler(dashboardUC),
		Events:    handler.NewEventsHandler(bus),
	}

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	e := server.New(handlers)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)
	}()

	logger.Info("server starting", "addr", addr, "store", cfg.StoreDriver)
	if err := e.Start(addr); err != nil {
		logger.Info("server stopped", "reason", err)
	}
}
