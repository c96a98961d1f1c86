// Package store persists filled records in Postgres. Each record is an
// independent row; there is no cross-record consistency to maintain, so
// every operation is a single statement.
package store

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/qualipharm/qualipharm/internal/config"
	"github.com/qualipharm/qualipharm/schema"
)

// Store wraps the record table.
type Store struct {
	db     *gorm.DB
	logger *zap.Logger
}

// Open connects to Postgres, applies the pool settings and migrates the
// record table.
func Open(cfg *config.Configuration, logger *zap.Logger) (*Store, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.Database.Host,
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.Port,
		cfg.Database.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.AutoMigrate(&recordRow{}); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return New(db, logger), nil
}

// New wraps an existing GORM handle. Used by Open and by tests.
func New(db *gorm.DB, logger *zap.Logger) *Store {
	return &Store{db: db, logger: logger.With(zap.String("component", "store"))}
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveRecord inserts a record and returns its id. Records are immutable;
// there is no update path.
func (s *Store) SaveRecord(ctx context.Context, rec *schema.FilledRecord) (string, error) {
	row, err := toRow(rec)
	if err != nil {
		return "", err
	}
	if err := s.db.WithContext(ctx).Create(row).Error; err != nil {
		return "", fmt.Errorf("saving record: %w", err)
	}
	s.logger.Info("record saved",
		zap.String("record_id", rec.ID),
		zap.String("template_id", rec.TemplateID))
	return rec.ID, nil
}

// RecordsByMonth returns all records of one template created within a
// month, ordered by creation time ascending.
func (s *Store) RecordsByMonth(ctx context.Context, templateID string, year int, month time.Month) ([]schema.FilledRecord, error) {
	start, end := MonthRange(year, month)

	var rows []recordRow
	err := s.db.WithContext(ctx).
		Where("template_id = ? AND created_at BETWEEN ? AND ?", templateID, start, end).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}

	out := make([]schema.FilledRecord, 0, len(rows))
	for i := range rows {
		rec, err := fromRow(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, nil
}

// RecordCountsByMonth returns the number of records per template id for a
// month, for the dashboard badges.
func (s *Store) RecordCountsByMonth(ctx context.Context, year int, month time.Month) (map[string]int64, error) {
	start, end := MonthRange(year, month)

	var rows []struct {
		TemplateID string
		N          int64
	}
	err := s.db.WithContext(ctx).
		Model(&recordRow{}).
		Select("template_id, COUNT(*) AS n").
		Where("created_at BETWEEN ? AND ?", start, end).
		Group("template_id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("counting records: %w", err)
	}

	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.TemplateID] = r.N
	}
	return out, nil
}

// MonthRange returns the inclusive bounds of a month:
// [first-of-month 00:00, last-of-month 23:59:59.999].
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end
}
