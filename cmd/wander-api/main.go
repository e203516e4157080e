// README: Entry point; loads config, wires services, starts HTTP server with the embedded page.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wander/internal/ai"
	"wander/internal/config"
	httptransport "wander/internal/http"
	"wander/internal/http/handlers"
	"wander/internal/infra"
	"wander/internal/maps"
	"wander/internal/modules/quota"
	"wander/internal/modules/recommend"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.Model)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer provider.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	quotaSvc := quota.NewService(quota.NewStore(redisClient), cfg.Quota.DailyLimit)

	var placesSvc *maps.PlacesService
	if cfg.Maps.APIKey != "" {
		placesSvc, err = maps.NewPlacesService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
	} else {
		log.Println("WANDER_MAPS_API_KEY not set; place resolution disabled")
	}

	recommendSvc := recommend.NewService(provider)

	handler := handlers.NewRecommendHandler(recommendSvc, quotaSvc, placesSvc, cfg.Maps.EmbedKey, cfg.AI.Timeout)
	router := httptransport.NewRouter(handler, cfg.HTTP.AllowedOrigins)
	setupStaticFiles(router, cfg.Maps.EmbedKey)

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		log.Printf("listening on %s", cfg.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
