package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	config "github.com/picksleague/picks-services/configs"
	"github.com/picksleague/picks-services/internal/db"
	"github.com/picksleague/picks-services/internal/email"
	"github.com/picksleague/picks-services/internal/picksvc/store"
	"github.com/picksleague/picks-services/internal/remindersvc"
	log "github.com/sirupsen/logrus"
)

const SERVICE_NAME = "reminder"

const scanInterval = 5 * time.Minute

func init() {
	instanceId := "001"
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

	mailCfg := email.ConfigFromEnv()
	if !mailCfg.IsConfigured() {
		log.Fatal("SENDGRID_API_KEY and SENDGRID_FROM must be set")
	}

	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = "http://localhost:5173"
	}

	scanner := remindersvc.NewScanner(
		store.NewGameStore(database),
		store.NewUserStore(database),
		email.NewMailer(mailCfg),
		appURL,
	)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	ticker := time.NewTicker(scanInterval)
	defer ticker.Stop()

	log.Infof("%s service running, scanning every %s", SERVICE_NAME, scanInterval)

	runScan(scanner)
	for {
		select {
		case <-ticker.C:
			runScan(scanner)
		case <-stop:
			log.Infof("%s service gracefully stopped", SERVICE_NAME)
			return
		}
	}
}

// runScan executes one invocation. A failed scan is logged and dropped; the
// next tick retries with fresh data.
func runScan(scanner *remindersvc.Scanner) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := scanner.Run(ctx); err != nil {
		log.Errorf("Error in reminder scan: %s", err)
	}
}
