// README: Entry point; loads config, wires services, starts the widget API.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"andrewstaxi/internal/ai"
	"andrewstaxi/internal/config"
	httptransport "andrewstaxi/internal/http"
	"andrewstaxi/internal/infra"
	"andrewstaxi/internal/maps"
	"andrewstaxi/internal/modules/booking"
	"andrewstaxi/internal/modules/chatquota"
	"andrewstaxi/internal/modules/pricing"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := infra.NewLogger()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := time.LoadLocation(cfg.Booking.Timezone)
	if err != nil {
		logger.Fatal("load timezone", zap.String("tz", cfg.Booking.Timezone), zap.Error(err))
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	// Pricing comes from the DB row when a DSN is configured, otherwise
	// from env defaults. Either way it is fixed for the process lifetime.
	pricingCfg := pricing.Config{
		BaseFare:          cfg.Pricing.BaseFare,
		PerKmRate:         cfg.Pricing.PerKmRate,
		MinFare:           cfg.Pricing.MinFare,
		RoundTripDiscount: cfg.Pricing.RoundTripDiscount,
		EstimateVariance:  cfg.Pricing.EstimateVariance,
		Currency:          cfg.Pricing.Currency,
	}
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			logger.Fatal("connect db", zap.Error(err))
		}
		defer dbPool.Close()

		loaded, err := pricing.NewStore(dbPool).LoadConfig(ctx)
		if err != nil {
			logger.Warn("load pricing config, using env defaults", zap.Error(err))
		} else {
			pricingCfg = loaded
		}
	}
	pricingSvc := pricing.NewService(pricingCfg)

	placesSvc, err := maps.NewPlacesService(cfg.Maps.APIKey, cfg.Maps.Region)
	if err != nil {
		logger.Fatal("init places service", zap.Error(err))
	}
	if !placesSvc.Ready() {
		logger.Warn("GOOGLE_MAPS_API_KEY not set; location lookups will fail")
	}
	routeSvc, err := maps.NewRouteService(cfg.Maps.APIKey)
	if err != nil {
		logger.Fatal("init route service", zap.Error(err))
	}
	resolver := maps.NewCachedResolver(placesSvc, routeSvc, redisClient)

	sessions := booking.NewSessionStore(time.Duration(cfg.Booking.SessionTTLMinutes) * time.Minute)
	dispatcher := booking.NewDispatcher(cfg.WhatsApp.Number)
	bookingSvc := booking.NewService(sessions, resolver, pricingSvc, dispatcher, loc)

	var assistant ai.Assistant
	if cfg.AI.GeminiKey != "" {
		gemini, err := ai.NewGeminiAssistant(ctx, cfg.AI.GeminiKey)
		if err != nil {
			logger.Fatal("init gemini", zap.Error(err))
		}
		defer gemini.Close()
		assistant = gemini
	} else {
		logger.Warn("GEMINI_API_KEY not set; support chat disabled")
	}
	quota := chatquota.NewService(chatquota.NewStore(redisClient, loc), cfg.AI.DailyMessages)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Booking:      bookingSvc,
		Places:       resolver,
		Assistant:    assistant,
		ChatQuota:    quota,
		Logger:       logger,
		AllowOrigins: cfg.HTTP.AllowOrigins,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go sessions.RunSweeper(ctx)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	}()

	logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("serve", zap.Error(err))
	}
}
