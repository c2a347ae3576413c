package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"

	directory "github.com/goliatone/go-directory"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func main() {
	cfg, err := directory.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	sqldb, err := sql.Open(sqliteshim.ShimName, cfg.GetDSN())
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())
	defer db.Close()

	ctx := context.Background()
	if err := createSchema(ctx, db); err != nil {
		log.Fatalf("create schema: %v", err)
	}

	repos := directory.NewRepositoryManager(db)
	repos.MustValidate()

	provider := directory.NewUserProvider(repos.Users())
	auther := directory.NewAuthenticator(provider, provider, cfg)

	users := directory.NewUserResolver(auther, repos.Users())
	orgs := directory.NewOrganisationResolver(repos.Organisations())

	srv := directory.NewServer(auther.TokenService(), users, orgs)

	go func() {
		if err := srv.Listen(cfg.GetListenAddr()); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := srv.Shutdown(); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func createSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*directory.User)(nil),
		(*directory.Organisation)(nil),
	}

	for _, model := range models {
		if _, err := db.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}
	}

	return nil
}
