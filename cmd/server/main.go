package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/j0aoarthur/sistema-delivery/internal/cart"
	"github.com/j0aoarthur/sistema-delivery/internal/catalog"
	deliveryhttp "github.com/j0aoarthur/sistema-delivery/internal/delivery/http"
	"github.com/j0aoarthur/sistema-delivery/internal/identity"
	"github.com/j0aoarthur/sistema-delivery/internal/messaging"
	"github.com/j0aoarthur/sistema-delivery/internal/messaging/channel"
	"github.com/j0aoarthur/sistema-delivery/internal/messaging/kafka"
	"github.com/j0aoarthur/sistema-delivery/internal/order"
	"github.com/j0aoarthur/sistema-delivery/internal/payment"
	"github.com/j0aoarthur/sistema-delivery/internal/repository"
	"github.com/j0aoarthur/sistema-delivery/internal/repository/memory"
	"github.com/j0aoarthur/sistema-delivery/internal/repository/postgres"
	"github.com/j0aoarthur/sistema-delivery/internal/session"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		slog.Debug("Loaded .env")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// --- Cart storage ---
	var cartStore cart.Store
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		if err := client.Ping(ctx).Err(); err != nil {
			slog.Error("Failed to connect to redis", "addr", addr, "err", err)
			os.Exit(1)
		}
		cartStore = cart.NewRedisStore(client)
		slog.Info("Carts stored in redis", "addr", addr)
	} else {
		cartStore = cart.NewMemoryStore()
		slog.Info("Carts stored in memory")
	}
	carts := cart.NewService(cartStore)

	// --- Order storage ---
	var orderRepo repository.OrderRepository
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := postgres.InitDB(dsn)
		if err != nil {
			slog.Error("Failed to init database", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		orderRepo = postgres.NewOrderRepository(db)
	} else {
		orderRepo = memory.NewOrderRepository()
		slog.Info("Orders stored in memory with seeded history")
	}

	// --- Messaging ---
	var publisher messaging.Publisher
	bus := channel.NewBus(slog.Default())
	defer bus.Close()

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		publisher = kafka.NewPublisher(strings.Split(brokers, ","))
		slog.Info("Publishing events to Kafka", "brokers", brokers)
	} else {
		publisher = bus
		// In-process consumer stands in for downstream systems.
		for _, topic := range []string{messaging.TopicOrdersPlaced, messaging.TopicSessionActivity} {
			msgs, err := bus.Subscribe(ctx, topic)
			if err != nil {
				slog.Error("Failed to subscribe", "topic", topic, "err", err)
				os.Exit(1)
			}
			go logEvents(topic, msgs)
		}
		slog.Info("Publishing events on the in-process bus")
	}

	// --- Collaborators ---
	loginDelay := time.Second
	if raw := os.Getenv("LOGIN_DELAY"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			loginDelay = d
		}
	}
	provider := identity.NewMockProvider(loginDelay)
	gateway := payment.NewMockGateway()

	// --- Services ---
	cat := catalog.New()
	sessions := session.NewManager(provider, carts, publisher)
	orders := order.NewService(orderRepo, carts, cat, gateway, publisher)

	// --- HTTP API ---
	handler := deliveryhttp.NewHandler(sessions, cat, carts, orders)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	httpServer := &http.Server{
		Addr:    getEnv("ADDR", ":8080"),
		Handler: deliveryhttp.EnableCORS(mux),
	}

	go func() {
		slog.Info("🚀 HTTP server starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down...")
	httpServer.Shutdown(context.Background())
}

func logEvents(topic string, msgs <-chan *message.Message) {
	for msg := range msgs {
		slog.Info("📦 Event received", "topic", topic, "key", msg.Metadata.Get("key"), "payload", string(msg.Payload))
		msg.Ack()
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
