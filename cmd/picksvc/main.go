package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/httprate"

	config "github.com/picksleague/picks-services/configs"
	"github.com/picksleague/picks-services/internal/db"
	nats "github.com/picksleague/picks-services/internal/nats"
	"github.com/picksleague/picks-services/internal/picksvc/broker"
	handlers "github.com/picksleague/picks-services/internal/picksvc/handlers"
	"github.com/picksleague/picks-services/internal/picksvc/service"
	"github.com/picksleague/picks-services/internal/picksvc/store"
	log "github.com/sirupsen/logrus"
)

const SERVICE_NAME = "picks"

var instanceId string

func init() {
	instanceId = "001"
	config.Logging(SERVICE_NAME + "_service_" + instanceId)
	config.LoadEnv(SERVICE_NAME)
}

func main() {

	// document store connection
	database, cancelDb, err := db.ConnectToDB()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer cancelDb()
	log.Printf("mongo connection established successfully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.EnsureUserIndexes(ctx, database); err != nil {
		cancel()
		log.Fatalf("Failed to ensure user indexes: %v", err)
	}
	cancel()

	userStore := store.NewUserStore(database)
	userService := service.NewUserService(userStore)

	gameStore := store.NewGameStore(database)
	gameService := service.NewGameService(gameStore)

	pickService := service.NewPickService(userStore, gameStore)

	// Connect to NATS
	n, err := nats.Connect()
	if err != nil {
		log.Errorf("Error: unable to connect to NATS server %v", err)
		os.Exit(0)
	}

	defer n.Conn.Close()
	log.Printf("NATS connection established successfully %s", n.Url)

	// change notifications for socket clients
	b := broker.NewBroker(n.Conn)
	userService.SetBroadcaster(b)
	gameService.SetBroadcaster(b)
	pickService.SetBroadcaster(b)

	// Setup router
	r := chi.NewRouter()
	c := config.CORS()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(config.CustomLoggerMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(c.Handler)

	// to protect the service api from any over requests
	rateLimit := 100
	if rateLimitStr := os.Getenv("RATE_LIMIT"); rateLimitStr != "" {
		rateLimit, err = strconv.Atoi(rateLimitStr)
		if err != nil {
			log.Fatalf("Invalid RATE_LIMIT value: %v", err)
		}
	}
	r.Use(httprate.LimitByIP(rateLimit, 1*time.Minute))

	// Init handlers and routes
	h := handlers.NewHandler(userService, gameService, pickService)
	h.InitAuth()
	h.SetRoutes(r)

	// Create server with timeout settings
	server := &http.Server{
		Addr:         ":" + os.Getenv("PICK_SERVICE_PORT"),
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()
	log.Infof("%s service running at port %s", SERVICE_NAME, server.Addr)

	// Wait for interrupt signal to gracefully shutdown the server
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("%s service shutdown Failed:%+v", SERVICE_NAME, err)
	}
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}
