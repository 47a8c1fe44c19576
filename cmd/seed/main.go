package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/ashesthetic/hello-deer/backend/internal/config"
	"github.com/ashesthetic/hello-deer/backend/internal/repository"
	"github.com/ashesthetic/hello-deer/backend/internal/seed"
	"github.com/ashesthetic/hello-deer/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "operation to run (1: insert random users, 2: insert random employees, 3: seed demo weeks)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("unable to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open only builds the pool object; ping to actually reach the database
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("unable to connect to the database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("no operation given")
	case 1:
		if n <= 0 {
			slog.Error("please give a valid user count")
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			user, err := utils.GenerateRandomUser(cfg.Seed.UserPassword, cfg.Seed.EmailDomain)
			if err != nil {
				slog.Error("unable to generate a random user", slog.String("error", err.Error()))
				continue
			}

			if err := repo.CreateUser(user); err != nil {
				slog.Error("unable to insert user", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("users inserted", slog.Int("count", n-cnt))
	case 2:
		if n <= 0 {
			slog.Error("please give a valid employee count")
			return
		}

		cnt := n
		for i := 0; i < n; i++ {
			employee := utils.GenerateRandomEmployee(cfg.Seed.EmailDomain)
			if err := repo.CreateEmployee(employee); err != nil {
				slog.Error("unable to insert employee", slog.String("error", err.Error()))
				continue
			}

			cnt--
		}

		slog.Info("employees inserted", slog.Int("count", n-cnt))
	case 3:
		if n <= 0 {
			slog.Error("please give a valid employee count")
			return
		}

		seed.SeedDemoWeeks(cfg, repo, n)
	default:
		slog.Error("unknown operation", slog.Int("op", op))
	}
}
