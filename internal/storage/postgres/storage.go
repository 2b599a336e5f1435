package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/carsline/api/internal/domain/errors"
	"github.com/carsline/api/internal/domain/repository"
)

// orderNumberConstraint is the unique index guarding order numbers. It is the
// single cross-request coordination point for order numbering.
const orderNumberConstraint = "orders_order_number_key"

// pgxPool is the subset of pgxpool.Pool the storage needs; satisfied by
// pgxmock pools in tests.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type clientRepository struct {
	storage *Storage
}

type vehicleRepository struct {
	storage *Storage
}

type catalogRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type partRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Clients() repository.ClientRepository {
	return &clientRepository{storage: s}
}

func (s *Storage) Vehicles() repository.VehicleRepository {
	return &vehicleRepository{storage: s}
}

func (s *Storage) Catalog() repository.CatalogRepository {
	return &catalogRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Parts() repository.PartRepository {
	return &partRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS roles (
            id SERIAL PRIMARY KEY,
            name TEXT UNIQUE NOT NULL,
            description TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            full_name TEXT NOT NULL,
            username TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role_id BIGINT NOT NULL REFERENCES roles(id),
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            last_login TIMESTAMPTZ,
            active BOOLEAN NOT NULL DEFAULT TRUE,
            created_by BIGINT REFERENCES users(id)
        )`,
		`CREATE TABLE IF NOT EXISTS clients (
            id SERIAL PRIMARY KEY,
            full_name TEXT NOT NULL,
            tax_id TEXT NOT NULL,
            mobile_phone TEXT NOT NULL,
            home_phone TEXT,
            email TEXT,
            street TEXT,
            ext_number TEXT,
            neighborhood TEXT,
            municipality TEXT,
            state TEXT,
            country TEXT,
            postal_code TEXT,
            active BOOLEAN NOT NULL DEFAULT TRUE
        )`,
		`CREATE TABLE IF NOT EXISTS vehicles (
            id SERIAL PRIMARY KEY,
            client_id BIGINT NOT NULL REFERENCES clients(id),
            vin TEXT UNIQUE NOT NULL,
            make TEXT,
            model TEXT,
            trim TEXT,
            year INT,
            color TEXT,
            plates TEXT,
            initial_mileage INT NOT NULL DEFAULT 0,
            active BOOLEAN NOT NULL DEFAULT TRUE
        )`,
		`CREATE TABLE IF NOT EXISTS service_types (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            description TEXT,
            base_price DOUBLE PRECISION NOT NULL DEFAULT 0,
            active BOOLEAN NOT NULL DEFAULT TRUE
        )`,
		`CREATE TABLE IF NOT EXISTS extra_services (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            description TEXT,
            price DOUBLE PRECISION NOT NULL DEFAULT 0,
            category TEXT,
            active BOOLEAN NOT NULL DEFAULT TRUE
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            order_number TEXT NOT NULL,
            order_type INT NOT NULL,
            client_id BIGINT NOT NULL REFERENCES clients(id),
            vehicle_id BIGINT NOT NULL REFERENCES vehicles(id),
            advisor_id BIGINT NOT NULL REFERENCES users(id),
            service_type_id BIGINT REFERENCES service_types(id),
            mileage INT NOT NULL DEFAULT 0,
            status INT NOT NULL,
            promised_at TIMESTAMPTZ NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            started_at TIMESTAMPTZ,
            finished_at TIMESTAMPTZ,
            delivered_at TIMESTAMPTZ,
            notes TEXT,
            total_cost DOUBLE PRECISION NOT NULL DEFAULT 0,
            active BOOLEAN NOT NULL DEFAULT TRUE,
            CONSTRAINT orders_order_number_key UNIQUE (order_number)
        )`,
		`CREATE TABLE IF NOT EXISTS order_line_items (
            id SERIAL PRIMARY KEY,
            order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            extra_service_id BIGINT NOT NULL REFERENCES extra_services(id),
            price_applied DOUBLE PRECISION NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS service_history (
            id SERIAL PRIMARY KEY,
            vehicle_id BIGINT NOT NULL REFERENCES vehicles(id),
            order_id BIGINT NOT NULL REFERENCES orders(id),
            service_type_id BIGINT NOT NULL REFERENCES service_types(id),
            mileage INT NOT NULL,
            service_date TIMESTAMPTZ NOT NULL,
            next_mileage INT,
            next_date TIMESTAMPTZ,
            total_cost DOUBLE PRECISION NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS parts (
            id SERIAL PRIMARY KEY,
            part_number TEXT UNIQUE NOT NULL,
            part_type TEXT NOT NULL,
            vehicle_make TEXT,
            vehicle_model TEXT,
            year INT,
            quantity INT NOT NULL DEFAULT 0,
            registered_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            active BOOLEAN NOT NULL DEFAULT TRUE
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_advisor ON orders(advisor_id, status)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_vehicle ON orders(vehicle_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_line_items_order ON order_line_items(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_history_vehicle ON service_history(vehicle_id, service_date DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// WithinTransaction executes the function inside a transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns the storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}

// translateErr maps low-level pgx failures onto domain sentinels. Unique
// violations on the order number become the retryable numbering conflict;
// every other unique violation is a plain duplicate.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domainErrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == orderNumberConstraint {
			return domainErrors.ErrOrderNumberTaken
		}
		return domainErrors.ErrAlreadyExists
	}
	return err
}
