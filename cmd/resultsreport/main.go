package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/quickvote/ballot/internal/adapters/repository/postgres"
)

// Prints the derived results for every stored ballot. The ratios are
// computed from the state on each run, never read from a stored column.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("POSTGRES_USER"), os.Getenv("POSTGRES_PASSWORD"),
		os.Getenv("POSTGRES_HOST"), os.Getenv("POSTGRES_PORT"), os.Getenv("POSTGRES_DB"))
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	repo := postgres.NewBallotRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	ballots, err := repo.GetAll(ctx)
	if err != nil {
		log.Fatalf("Error fetching ballots: %v", err)
	}

	for _, ballot := range ballots {
		fmt.Printf("%s (%s): %d votes\n", ballot.Title, ballot.ID, ballot.State.TotalVotes)
		for _, stat := range ballot.State.Stats() {
			fmt.Printf("  %-30s %5d  %6.1f%%\n", stat.Text, stat.VoteCount, stat.Percentage)
		}
	}
}
