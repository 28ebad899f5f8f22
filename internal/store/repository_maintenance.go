package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-list/internal/logger"
)

type maintenanceRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewMaintenanceRepository(db *DB, logger *logger.Logger) MaintenanceRepository {
	logger.Debug().Msg("creating maintenance repository")
	return &maintenanceRepository{
		db:     db,
		logger: logger,
	}
}

func (r *maintenanceRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Reset wipes all rows, children first, in a single transaction.
func (r *maintenanceRepository) Reset(ctx context.Context) error {
	log := logger.FromContext(ctx)

	queries, err := buildResetQueries(r.db.builder)
	if err != nil {
		return err
	}

	err = r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		for _, query := range queries {
			if _, err := tx.ExecContext(ctx, query); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*maintenanceRepository.Reset").Msg("error resetting storage")
		return err
	}

	log.Info().Str("func", "*maintenanceRepository.Reset").Msg("storage reset")
	return nil
}
