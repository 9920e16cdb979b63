// Package sqlstore provides a MySQL-backed quotation store using gorm.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jsamuelsen/quotation-service/internal/domain"
)

const slowQueryThreshold = 200 * time.Millisecond

// Config contains connection settings for the SQL store.
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	// AutoCreate creates the quotation table when it is missing.
	AutoCreate bool
}

// Store persists quotation requests in a single table.
// Identifiers come from the table's AUTO_INCREMENT counter.
type Store struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

// Open connects to MySQL and returns a ready store.
func Open(ctx context.Context, cfg *Config, logger *slog.Logger) (*Store, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger:                 newGormLogger(logger),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening sql store: %w", err)
	}

	s, err := New(db)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		s.sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	s.sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	s.sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := s.sqlDB.PingContext(ctx); err != nil {
		_ = s.sqlDB.Close()
		return nil, fmt.Errorf("pinging sql store: %w", err)
	}

	if cfg.AutoCreate {
		if err := db.WithContext(ctx).AutoMigrate(&Table{}); err != nil {
			_ = s.sqlDB.Close()
			return nil, fmt.Errorf("creating %s table: %w", tableName, err)
		}
	}

	return s, nil
}

// New wraps an existing gorm connection.
func New(db *gorm.DB) (*Store, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql handle: %w", err)
	}

	return &Store{db: db, sqlDB: sqlDB}, nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "store-sql"
}

// Check implements ports.HealthChecker.
func (s *Store) Check(ctx context.Context) error {
	return s.sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.sqlDB.Close()
}

// List returns all rows ordered by id.
func (s *Store) List(ctx context.Context) ([]domain.QuotationRequest, error) {
	var rows []Table

	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing quotations: %w", err)
	}

	out := make([]domain.QuotationRequest, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].toDomain())
	}

	return out, nil
}

// GetByID returns one row.
func (s *Store) GetByID(ctx context.Context, id int64) (*domain.QuotationRequest, error) {
	var row Table

	err := s.db.WithContext(ctx).First(&row, id).Error
	if err != nil {
		return nil, mapNotFound(err, id, "getting quotation")
	}

	return row.toDomain(), nil
}

// Insert adds a row and returns it with its generated id.
func (s *Store) Insert(ctx context.Context, fields domain.QuotationFields) (*domain.QuotationRequest, error) {
	row := fromFields(fields)

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("inserting quotation: %w", err)
	}

	return row.toDomain(), nil
}

// Update replaces all mutable columns of an existing row.
// The existence check and the write share a transaction so an unchanged
// row is not mistaken for a missing one.
func (s *Store) Update(ctx context.Context, id int64, fields domain.QuotationFields) (*domain.QuotationRequest, error) {
	var updated Table

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current Table
		if err := tx.First(&current, id).Error; err != nil {
			return err
		}

		updated = fromFields(fields)
		updated.ID = current.ID

		return tx.Model(&current).Select(updatableColumns).Updates(&updated).Error
	})
	if err != nil {
		return nil, mapNotFound(err, id, "updating quotation")
	}

	return updated.toDomain(), nil
}

// Delete removes a row.
func (s *Store) Delete(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Delete(&Table{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting quotation %d: %w", id, result.Error)
	}

	if result.RowsAffected == 0 {
		return domain.NewQuotationNotFound(id)
	}

	return nil
}

func mapNotFound(err error, id int64, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NewQuotationNotFound(id)
	}

	return fmt.Errorf("%s %d: %w", op, id, err)
}

// gormWriter routes gorm's log output through slog.
type gormWriter struct {
	logger *slog.Logger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.logger.Warn(fmt.Sprintf(format, args...), slog.String("component", "gorm"))
}

func newGormLogger(logger *slog.Logger) gormlogger.Interface {
	if logger == nil {
		return gormlogger.Discard
	}

	return gormlogger.New(gormWriter{logger: logger}, gormlogger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}
