package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-users-tasks-api/config"
	"github.com/oksasatya/go-users-tasks-api/internal/domain/entity"
	pginfra "github.com/oksasatya/go-users-tasks-api/internal/infrastructure/postgres"
	"github.com/oksasatya/go-users-tasks-api/pkg/helpers"
)

// seed creates a demo user with a few tasks. Running it twice reuses the user.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), pginfra.PoolOptions{MaxConns: 2})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	users := pginfra.NewUserRepository(pool)
	tasks := pginfra.NewTaskRepository(pool)

	email := "demo@example.com"
	password := "password123"

	u, err := users.GetByEmail(ctx, email)
	if err != nil {
		hash, err := helpers.NewPasswordHasher(cfg.BcryptCost).Hash(password)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		u = &entity.User{Name: "Demo User", Email: email, Password: hash}
		if err := users.Create(ctx, u); err != nil {
			log.Fatalf("failed to seed user: %v", err)
		}
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", u.ID, email, password)

	for i, name := range []string{"Read the API docs", "Create a task", "Mark a task done"} {
		status := entity.TaskStatusTodo
		if i == 0 {
			status = entity.TaskStatusDone
		}
		t := &entity.Task{Name: name, Description: "seeded", Status: status, UserID: u.ID}
		if err := tasks.Create(ctx, t); err != nil {
			log.Fatalf("failed to seed task %q: %v", name, err)
		}
		fmt.Printf("seeded task: id=%s name=%q\n", t.ID, name)
	}
}
