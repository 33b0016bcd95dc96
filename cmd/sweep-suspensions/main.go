package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"tools-directory-api/config"
	"tools-directory-api/services"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.InitDB()

	var lockName string
	flag.StringVar(&lockName, "lock-name", "", "advisory lock name (optional)")
	flag.Parse()

	sweeper := services.NewSuspensionSweeper(nil)
	count, err := sweeper.ProcessExpiredSuspensions(context.Background(), &services.SuspensionSweepInput{
		LockName: lockName,
	})
	if err != nil {
		if errors.Is(err, services.ErrSuspensionSweepAlreadyRunning) {
			log.Println("Another sweep is already running, skipping")
			os.Exit(2)
		}
		log.Fatalf("suspension sweep failed: %v", err)
	}

	fmt.Printf("Suspensions lifted: %d\n", count)
}
