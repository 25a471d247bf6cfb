package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/quickvote/ballot/internal/adapters/handler/http"
	"github.com/quickvote/ballot/internal/adapters/repository/memory"
	"github.com/quickvote/ballot/internal/adapters/repository/postgres"
	"github.com/quickvote/ballot/internal/core/ports"
	"github.com/quickvote/ballot/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	repo, cleanup, err := newRepository()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	ballotService := services.NewBallotService(repo)
	ballotHandler := http.NewBallotHandler(ballotService)
	handler := http.NewHandler(ballotHandler)

	server := &stdhttp.Server{Addr: "0.0.0.0:8080", Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}

// newRepository picks Postgres when POSTGRES_HOST is set and falls back to
// the in-memory store otherwise.
func newRepository() (ports.BallotRepository, func(), error) {
	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		log.Println("POSTGRES_HOST not set, using in-memory repository")
		return memory.NewBallotRepository(), func() {}, nil
	}

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("POSTGRES_USER"), os.Getenv("POSTGRES_PASSWORD"),
		host, os.Getenv("POSTGRES_PORT"), os.Getenv("POSTGRES_DB"))

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, err
	}

	return postgres.NewBallotRepository(db), func() { db.Close() }, nil
}
