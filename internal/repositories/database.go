package repository

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/XSAM/otelsql"
	"github.com/homebase-labs/seller-marketplace/internal/config"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	_ "github.com/lib/pq"
)

type Repositories struct {
	DB      *sql.DB
	Catalog CatalogRepository
	Listing ListingRepository
	Shop    ShopRepository
}

func New(cfg *config.Config) (*Repositories, error) {

	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	// Make sure DB is reachable before serving traffic
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := ensureSchema(db); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	slog.Info("✅ Database connection established")

	return &Repositories{
		DB:      db,
		Catalog: NewCatalogRepo(db),
		Listing: NewListingRepo(db),
		Shop:    NewShopRepo(db),
	}, nil
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}

func ensureSchema(db *sql.DB) error {

	schema := `
	CREATE TABLE IF NOT EXISTS catalog_entries (
		id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		brand VARCHAR(50) NOT NULL DEFAULT '',
		category VARCHAR(50) NOT NULL,
		description VARCHAR(1000) NOT NULL DEFAULT '',
		unit VARCHAR(20) NOT NULL DEFAULT 'piece',
		image_url TEXT NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		created_by TEXT NOT NULL,
		approved_by TEXT,
		approved_at TIMESTAMPTZ,
		rejection_reason TEXT,
		search_keywords TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_catalog_status_created ON catalog_entries (status, created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_catalog_category_status ON catalog_entries (category, status);

	CREATE TABLE IF NOT EXISTS listings (
		id UUID PRIMARY KEY,
		seller_id TEXT NOT NULL,
		catalog_entry_id UUID NOT NULL,
		price NUMERIC(12,2) NOT NULL CHECK (price >= 0),
		offer_price NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (offer_price >= 0),
		stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
		cost_price NUMERIC(12,2) NOT NULL DEFAULT 0 CHECK (cost_price >= 0),
		address TEXT NOT NULL,
		custom_note VARCHAR(500) NOT NULL DEFAULT '',
		custom_name VARCHAR(100) NOT NULL DEFAULT '',
		custom_category VARCHAR(50) NOT NULL DEFAULT '',
		custom_image_url TEXT NOT NULL DEFAULT '',
		custom_image_path TEXT NOT NULL DEFAULT '',
		is_available BOOLEAN NOT NULL DEFAULT TRUE,
		is_pre_owned BOOLEAN NOT NULL DEFAULT FALSE,
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (seller_id, catalog_entry_id)
	);
	CREATE INDEX IF NOT EXISTS idx_listings_seller_created ON listings (seller_id, created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_listings_status_available ON listings (status, is_available);

	CREATE TABLE IF NOT EXISTS sale_records (
		id UUID PRIMARY KEY,
		seller_id TEXT NOT NULL,
		order_id TEXT NOT NULL,
		catalog_entry_id UUID,
		product_name VARCHAR(100) NOT NULL,
		custom_name VARCHAR(100) NOT NULL DEFAULT '',
		quantity NUMERIC(12,3) NOT NULL CHECK (quantity > 0),
		selling_price NUMERIC(12,2) NOT NULL CHECK (selling_price >= 0),
		cost_price NUMERIC(12,2) NOT NULL CHECK (cost_price >= 0),
		total_amount NUMERIC(14,2) NOT NULL,
		total_cost NUMERIC(14,2) NOT NULL,
		profit NUMERIC(14,2) NOT NULL,
		sale_type VARCHAR(10) NOT NULL,
		category VARCHAR(50) NOT NULL,
		is_weight_based BOOLEAN NOT NULL DEFAULT FALSE,
		unit VARCHAR(20) NOT NULL DEFAULT 'piece',
		image_url TEXT NOT NULL DEFAULT '',
		customer_name TEXT NOT NULL DEFAULT '',
		customer_phone TEXT NOT NULL DEFAULT '',
		notes VARCHAR(500) NOT NULL DEFAULT '',
		sale_date TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_sales_seller_date ON sale_records (seller_id, sale_date DESC);

	CREATE TABLE IF NOT EXISTS expense_records (
		id UUID PRIMARY KEY,
		seller_id TEXT NOT NULL,
		title VARCHAR(100) NOT NULL,
		description VARCHAR(500) NOT NULL DEFAULT '',
		amount NUMERIC(14,2) NOT NULL CHECK (amount > 0),
		category VARCHAR(50) NOT NULL,
		type VARCHAR(50) NOT NULL,
		reference VARCHAR(100) NOT NULL DEFAULT '',
		attachment_url TEXT NOT NULL DEFAULT '',
		expense_date TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_expenses_seller_date ON expense_records (seller_id, expense_date DESC);
	`

	_, err := db.Exec(schema)

	return err
}
