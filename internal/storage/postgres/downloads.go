package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fxlibrary/fxlibrary/internal/models"
	"github.com/fxlibrary/fxlibrary/internal/storage"
)

// SaveDownload сохраняет запись о выдаче файла.
func (s *Storage) SaveDownload(ctx context.Context, d *models.Download) error {
	const op = "storage.postgres.SaveDownload"

	query := `INSERT INTO downloads (user_id, asset_version_id, ip_hash, user_agent)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at;`

	err := s.db.QueryRow(ctx, query, d.UserID, d.AssetVersionID, d.IPHash, d.UserAgent).
		Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
