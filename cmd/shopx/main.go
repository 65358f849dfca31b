package main

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MikeRez0/shopx/internal/adapter/auth"
	"github.com/MikeRez0/shopx/internal/adapter/client/razorpay"
	"github.com/MikeRez0/shopx/internal/adapter/config"
	"github.com/MikeRez0/shopx/internal/adapter/events"
	"github.com/MikeRez0/shopx/internal/adapter/handler/http"
	"github.com/MikeRez0/shopx/internal/adapter/logger"
	"github.com/MikeRez0/shopx/internal/adapter/notify"
	"github.com/MikeRez0/shopx/internal/adapter/scheduler"
	"github.com/MikeRez0/shopx/internal/adapter/storage"
	"github.com/MikeRez0/shopx/internal/adapter/storage/memory"
	"github.com/MikeRez0/shopx/internal/adapter/storage/repository"
	"github.com/MikeRez0/shopx/internal/core/domain"
	"github.com/MikeRez0/shopx/internal/core/port"
	"github.com/MikeRez0/shopx/internal/core/service"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type eventQueue interface {
	port.EventPublisher
	port.EventConsumer
}

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log, err := logger.NewLogger(conf.App)
	if err != nil {
		fmt.Printf("logger error: %s", err)
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tokenService, err := auth.New(conf.Auth)
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	var repo port.Repository
	if conf.Database.DSN != "" {
		db, err := storage.NewDBStorage(ctx, conf.Database)
		if err != nil {
			log.Error("database error", zap.Error(err))
			return
		}
		defer db.Close()

		err = db.RunMigrations(log.Named("Migrate"))
		if err != nil {
			log.Error("database migration error", zap.Error(err))
			return
		}

		repo, err = repository.NewRepository(db)
		if err != nil {
			log.Error("order repo creating error", zap.Error(err))
			return
		}
	} else {
		store := memory.NewStore()
		seedDemo(store, tokenService, log.Named("Seed"))
		repo = store
	}

	gateway, err := razorpay.NewClient(conf.Payment, log.Named("Razorpay"))
	if err != nil {
		log.Error("gateway client creating error", zap.Error(err))
		return
	}

	var queue eventQueue
	if conf.Events.RedisAddr != "" {
		rq, err := events.NewRedisQueue(ctx, conf.Events, log.Named("Events"))
		if err != nil {
			log.Error("event queue creating error", zap.Error(err))
			return
		}
		defer func() { _ = rq.Close() }()
		queue = rq
	} else {
		queue = events.NewChannelQueue(conf.Events.QueueSize, log.Named("Events"))
	}

	svc, err := service.NewService(repo, gateway, queue, service.Settings{
		Currency:      conf.Payment.Currency,
		GatewaySecret: conf.Payment.KeySecret,
	}, log.Named("Service"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}

	workers := sync.WaitGroup{}
	dispatcher := notify.NewDispatcher(queue, repo, notify.NewLogNotifier(log.Named("Notifier")),
		log.Named("Dispatcher"))
	workers.Add(2)
	go func() {
		defer workers.Done()
		dispatcher.Run(ctx, conf.Events.Workers)
	}()
	go func() {
		defer workers.Done()
		scheduler.ExpirePendingOrders(ctx, conf.Orders, svc, log.Named("Expiry"))
	}()

	cartHandler, err := http.NewCartHandler(svc, log.Named("Cart handler"))
	if err != nil {
		log.Error("cart handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.App, tokenService, cartHandler, orderHandler, log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	log.Info("Listening", zap.String("address", conf.HTTP.HostString))
	err = r.Serve(ctx, conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
	}

	stop()
	workers.Wait()
}

// seedDemo gives an empty in-memory store something to sell and prints a
// token for the demo customer.
func seedDemo(store *memory.Store, tokens port.TokenService, log *zap.Logger) {
	customer := domain.Customer{ID: uuid.New(), Name: "Demo Customer", Email: "demo@shopx.local"}
	store.SaveCustomer(customer)

	product := domain.Product{
		ID:       uuid.New(),
		SellerID: uuid.New(),
		Name:     "Brass Table Lamp",
		Price:    decimal.MustParse("500.00"),
		Stock:    10,
		IsActive: true,
	}
	store.SaveProduct(product)

	token, err := tokens.CreateToken(&port.TokenPayload{CustomerID: customer.ID, Role: domain.RoleCustomer})
	if err != nil {
		log.Error("demo token error", zap.Error(err))
		return
	}
	log.Info("Demo data loaded",
		zap.String("customer", customer.ID.String()),
		zap.String("product", product.ID.String()),
		zap.String("token", token))
}
