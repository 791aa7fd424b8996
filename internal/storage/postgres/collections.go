package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fxlibrary/fxlibrary/internal/models"
	"github.com/fxlibrary/fxlibrary/internal/storage"
)

// SaveCollection создаёт подборку пользователя.
func (s *Storage) SaveCollection(ctx context.Context, c *models.Collection) error {
	const op = "storage.postgres.SaveCollection"

	query := `INSERT INTO collections (user_id, title)
	          VALUES ($1, $2)
	          RETURNING id, created_at, updated_at;`

	err := s.db.QueryRow(ctx, query, c.UserID, c.Title).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// CollectionsByUser возвращает подборки пользователя (новые первыми)
// c количеством элементов.
func (s *Storage) CollectionsByUser(ctx context.Context, userID uuid.UUID) ([]models.Collection, error) {
	const op = "storage.postgres.CollectionsByUser"

	query := `SELECT c.id, c.user_id, c.title,
	                 (SELECT count(*) FROM collection_items ci WHERE ci.collection_id = c.id),
	                 c.created_at, c.updated_at
	          FROM collections c
	          WHERE c.user_id = $1
	          ORDER BY c.created_at DESC;`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var collections []models.Collection
	for rows.Next() {
		var c models.Collection

		err := rows.Scan(&c.ID, &c.UserID, &c.Title, &c.ItemCount, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		collections = append(collections, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return collections, nil
}

// CollectionByID возвращает подборку с элементами: ассеты с тегами
// и обложкой, недавно добавленные первыми.
func (s *Storage) CollectionByID(ctx context.Context, id uuid.UUID) (*models.Collection, error) {
	const op = "storage.postgres.CollectionByID"

	query := `SELECT id, user_id, title, created_at, updated_at FROM collections WHERE id = $1;`

	var c models.Collection
	err := s.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.UserID, &c.Title, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	itemsQuery := fmt.Sprintf(`SELECT %s
	          FROM collection_items ci
	          JOIN assets a ON a.id = ci.asset_id
	          WHERE ci.collection_id = $1
	          ORDER BY ci.added_at DESC;`, prefixColumns("a", assetColumns))

	rows, err := s.db.Query(ctx, itemsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		items = append(items, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.attachTags(ctx, items); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.attachCovers(ctx, items); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c.Items = items
	c.ItemCount = int64(len(items))

	return &c, nil
}

// AddCollectionItem добавляет ассет в подборку.
func (s *Storage) AddCollectionItem(ctx context.Context, collectionID, assetID uuid.UUID) error {
	const op = "storage.postgres.AddCollectionItem"

	query := `INSERT INTO collection_items (collection_id, asset_id) VALUES ($1, $2);`

	if _, err := s.db.Exec(ctx, query, collectionID, assetID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
			case pgerrcode.ForeignKeyViolation:
				return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
			}
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RemoveCollectionItem удаляет ассет из подборки.
func (s *Storage) RemoveCollectionItem(ctx context.Context, collectionID, assetID uuid.UUID) error {
	const op = "storage.postgres.RemoveCollectionItem"

	query := `DELETE FROM collection_items WHERE collection_id = $1 AND asset_id = $2;`

	tag, err := s.db.Exec(ctx, query, collectionID, assetID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
