package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'OPERATOR',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// ITEMS (ingredients + products)
	// -------------------------------
	itemsSQL := `
		CREATE TABLE IF NOT EXISTS items (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			kind VARCHAR(50) NOT NULL,
			unit VARCHAR(50) NOT NULL,
			cost_per_unit NUMERIC(14,4) NOT NULL DEFAULT 0,
			cost_source VARCHAR(50) NOT NULL DEFAULT 'MANUAL',
			yield_qty NUMERIC(14,4) NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, itemsSQL); err != nil {
		return err
	}

	// -------------------------------
	// PRICING PROFILES
	// -------------------------------
	profilesSQL := `
		CREATE TABLE IF NOT EXISTS pricing_profiles (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			admin_expense NUMERIC(8,6) NOT NULL DEFAULT 0,
			logistics_expense NUMERIC(8,6) NOT NULL DEFAULT 0,
			operational_expense NUMERIC(8,6) NOT NULL DEFAULT 0,
			commercial_expense NUMERIC(8,6) NOT NULL DEFAULT 0,
			fees NUMERIC(8,6) NOT NULL DEFAULT 0,
			tax NUMERIC(8,6) NOT NULL DEFAULT 0,
			profit NUMERIC(8,6) NOT NULL DEFAULT 0,
			is_default BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, profilesSQL); err != nil {
		return err
	}

	// At most one profile may carry is_default, enforced at the DB level too
	defaultIndexSQL := `
		CREATE UNIQUE INDEX IF NOT EXISTS pricing_profiles_one_default
		ON pricing_profiles (is_default)
		WHERE is_default
	`
	if _, err := pool.Exec(ctx, defaultIndexSQL); err != nil {
		return err
	}

	// -------------------------------
	// RECIPES (technical sheets)
	// -------------------------------
	recipesSQL := `
		CREATE TABLE IF NOT EXISTS recipes (
			id SERIAL PRIMARY KEY,
			product_id INTEGER UNIQUE NOT NULL REFERENCES items(id),
			waste_factor NUMERIC(8,4) NOT NULL DEFAULT 1.0,
			total_cost NUMERIC(14,4) NOT NULL DEFAULT 0,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, recipesSQL); err != nil {
		return err
	}

	recipeLinesSQL := `
		CREATE TABLE IF NOT EXISTS recipe_lines (
			id SERIAL PRIMARY KEY,
			recipe_id INTEGER NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
			position INTEGER NOT NULL DEFAULT 0,
			ingredient_id INTEGER NOT NULL REFERENCES items(id),
			qty NUMERIC(14,4) NOT NULL,
			unit VARCHAR(50) NOT NULL,
			unit_cost NUMERIC(14,4) NOT NULL
		)
	`
	if _, err := pool.Exec(ctx, recipeLinesSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
