package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"motomind/internal/adapter/http/middleware"
	"motomind/internal/adapter/http/routes"
	"motomind/internal/adapter/persistence/redisstore"
	"motomind/internal/adapter/persistence/repository"
	"motomind/internal/config"
	"motomind/internal/domain/catalog"
	"motomind/internal/infrastructure/database"
	"motomind/internal/infrastructure/messaging"
	"motomind/internal/infrastructure/notifier"
	"motomind/internal/infrastructure/payments"
	"motomind/internal/usecase"
	"motomind/internal/usecase/interfaces"
	"motomind/pkg/logger"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/sync/errgroup"
)

// @title           MotoMind API
// @version         1.0
// @description     Service records, bills and messaging-channel pairing for motorcycle workshops.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger.Configure(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log := logger.L()
		log.Fatal().Err(err).Msg("Failed to startup the application")
	}
}

func run(ctx context.Context, cfg config.Config) error {
	log := logger.WithComponent("main")

	cat := catalog.Default()
	if cfg.Catalog.Path != "" {
		loaded, err := catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			return err
		}
		cat = loaded
	}
	log.Info().Int("parts", len(cat.ListParts())).Int("services", len(cat.ListServices())).Msg("catalog loaded")

	records, closeRecords, err := openRecordStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRecords()

	var (
		sessions interfaces.IConnectionSessionRepository = repository.NewSessionMemoryRepository()
		notify   interfaces.IStatusNotifier              = notifier.NewMemoryNotifier()
	)
	if cfg.Redis.Enabled() {
		client, err := redisstore.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()
		sessions = redisstore.NewSessionRepository(client)
		notify = redisstore.NewNotifier(client)
	}

	g, ctx := errgroup.WithContext(ctx)

	var provider interfaces.IMessagingProvider
	switch cfg.Provider.Name {
	case config.MessagingProviderTelegram:
		bot, err := messaging.NewTelegramBot(cfg.Provider.TelegramToken)
		if err != nil {
			return err
		}
		botName := cfg.Provider.TelegramBotName
		if botName == "" {
			botName = bot.Self.UserName
		}
		tg := messaging.NewTelegramProvider(bot, botName, cfg.Provider.TelegramRate)
		g.Go(func() error { return tg.Run(ctx) })
		provider = tg
	default:
		mock := messaging.NewMockProvider(cfg.Provider.MockPairingDelay)
		defer mock.Close()
		provider = mock
	}

	var paymentGateway interfaces.IPaymentLinkGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments)
	if err != nil {
		log.Warn().Err(err).Msg("Mercado Pago gateway not configured, bills are sent without payment link")
	} else {
		paymentGateway = mpGateway
	}

	recordUseCase := usecase.NewRecordUseCase(records, sessions, provider, paymentGateway, cat, cfg.Listing.PageSize)
	connectionUseCase := usecase.NewConnectionUseCase(sessions, notify, provider)

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.NewRouter(routes.Dependencies{
		Records:    recordUseCase,
		Connection: connectionUseCase,
		Catalog:    cat,
		Auth:       middleware.NewJWTManager(cfg.JWTSecret, 0),
	})
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g.Go(func() error {
		log.Info().Int("port", cfg.Port).Str("store", cfg.Store.Backend).Str("provider", cfg.Provider.Name).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func openRecordStore(ctx context.Context, cfg config.Config) (interfaces.IRecordRepository, func(), error) {
	switch cfg.Store.Backend {
	case config.StoreBackendSQLite:
		repo, err := repository.NewRecordSQLiteRepository(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { _ = repo.Close() }, nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.Store.Dynamo)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Store.Dynamo.CreateTables {
			if err := database.EnsureRecordsTable(ctx, ddb, cfg.Store.RecordsTable); err != nil {
				return nil, nil, err
			}
		}
		return repository.NewRecordDynamoRepository(ddb, cfg.Store.RecordsTable), func() {}, nil
	}
}
