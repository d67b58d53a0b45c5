package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/RubenJ01/MiloBot/internal/cards"
	"github.com/RubenJ01/MiloBot/internal/commands"
	"github.com/RubenJ01/MiloBot/internal/config"
	"github.com/RubenJ01/MiloBot/internal/dispatcher"
	"github.com/RubenJ01/MiloBot/internal/handlers/discord"
	prefixRepo "github.com/RubenJ01/MiloBot/internal/repositories/prefix"
	usageRepo "github.com/RubenJ01/MiloBot/internal/repositories/usage"
	userRepo "github.com/RubenJ01/MiloBot/internal/repositories/user"
	"github.com/RubenJ01/MiloBot/internal/services/blackjack"
	"github.com/RubenJ01/MiloBot/internal/services/cooldown"
	prefixService "github.com/RubenJ01/MiloBot/internal/services/prefix"
	"github.com/RubenJ01/MiloBot/internal/services/reaper"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	prefixes, err := prefixRepo.NewRedis(&prefixRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create prefix repository: %v", err)
	}

	users, err := userRepo.NewRedis(&userRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create user repository: %v", err)
	}

	usage, err := usageRepo.NewRedis(&usageRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create usage repository: %v", err)
	}

	// Initialize services
	prefixSvc, err := prefixService.New(&prefixService.Config{
		Repo:          prefixes,
		DefaultPrefix: cfg.DefaultPrefix,
	})
	if err != nil {
		log.Fatalf("Failed to create prefix service: %v", err)
	}

	cooldowns, err := cooldown.New(&cooldown.Config{})
	if err != nil {
		log.Fatalf("Failed to create cooldown tracker: %v", err)
	}

	sessions, err := blackjack.NewRegistry(&blackjack.RegistryConfig{})
	if err != nil {
		log.Fatalf("Failed to create session registry: %v", err)
	}

	blackjackSvc, err := blackjack.New(&blackjack.Config{
		Registry:         sessions,
		UserRepo:         users,
		Shuffler:         cards.New(&cards.Config{}),
		MinBet:           cfg.MinBet,
		MaxBet:           cfg.MaxBet,
		StartingCurrency: cfg.StartingCurrency,
	})
	if err != nil {
		log.Fatalf("Failed to create blackjack service: %v", err)
	}

	// Initialize the Discord bot
	bot, err := discord.New(&discord.Config{
		Token:    cfg.Token,
		Prefixes: prefixSvc,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	responder, err := discord.NewResponder(bot.Session())
	if err != nil {
		log.Fatalf("Failed to create responder: %v", err)
	}

	// Build the command pipeline
	registry := commands.NewRegistry()

	dispatch, err := dispatcher.New(&dispatcher.Config{
		Registry:  registry,
		Prefixes:  prefixSvc,
		Cooldowns: cooldowns,
		UsageRepo: usage,
		UserRepo:  users,
		Responder: responder,
	})
	if err != nil {
		log.Fatalf("Failed to create dispatcher: %v", err)
	}
	bot.AttachDispatcher(dispatch)

	err = discord.RegisterCommands(&discord.CommandDeps{
		Session:   bot.Session(),
		Registry:  registry,
		Prefixes:  prefixSvc,
		Blackjack: blackjackSvc,
		Sessions:  sessions,
		UserRepo:  users,
		UsageRepo: usage,
	})
	if err != nil {
		log.Fatalf("Failed to register commands: %v", err)
	}

	// Background session cleanup
	reaperCtx, stopReaper := context.WithCancel(context.Background())
	defer stopReaper()

	reaperCfg := &reaper.Config{
		Sessions:    sessions,
		Cooldowns:   cooldowns,
		Interval:    cfg.ReaperInterval,
		IdleTimeout: cfg.SessionIdleTimeout,
	}
	if cfg.LogChannelID != "" {
		notifier, err := discord.NewChannelNotifier(bot.Session(), cfg.LogChannelID)
		if err != nil {
			log.Fatalf("Failed to create cleanup notifier: %v", err)
		}
		reaperCfg.Notifier = notifier
	}

	sessionReaper, err := reaper.New(reaperCfg)
	if err != nil {
		log.Fatalf("Failed to create session reaper: %v", err)
	}
	sessionReaper.Start(reaperCtx)

	// Expose Prometheus metrics
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(cfg.MetricsAddr, nil); err != nil {
			log.Printf("Metrics server stopped: %v", err)
		}
	}()

	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start bot: %v", err)
	}

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	log.Println("Shutting down...")
	stopReaper()

	if err := bot.Stop(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}
