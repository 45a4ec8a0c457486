package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/vedijajagtap/todolist-api/config"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	users := []string{"Alice", "Bob"}
	ids := make(map[string]string, len(users))
	for _, name := range users {
		var id string
		if err := db.QueryRow(`
			INSERT INTO users (name) VALUES ($1) RETURNING id
		`, name).Scan(&id); err != nil {
			log.Fatalf("failed to seed user %q: %v", name, err)
		}
		ids[name] = id
		fmt.Printf("seeded user: id=%s name=%s\n", id, name)
	}

	tasks := []struct {
		name      string
		desc      string
		owner     string
		scheduled time.Time
	}{
		{"Write report", "Quarterly status report", "Alice", time.Now().AddDate(0, 0, 1)},
		{"Buy milk", "", "Alice", time.Now().AddDate(0, 0, 2)},
		{"Book flights", "Summer trip", "Bob", time.Now().AddDate(0, 1, 0)},
	}
	for _, t := range tasks {
		var id string
		if err := db.QueryRow(`
			INSERT INTO tasks (task_name, description, scheduled_date, user_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, t.name, t.desc, t.scheduled, ids[t.owner]).Scan(&id); err != nil {
			log.Fatalf("failed to seed task %q: %v", t.name, err)
		}
		fmt.Printf("seeded task: id=%s name=%s owner=%s\n", id, t.name, t.owner)
	}
}
