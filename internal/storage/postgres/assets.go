package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fxlibrary/fxlibrary/internal/models"
	"github.com/fxlibrary/fxlibrary/internal/storage"
)

const assetColumns = `id, title, slug, summary, description_md, how_to_md, breakdown_md,
	category, difficulty, status, download_count, published_at, created_at, updated_at`

// ListAssets возвращает страницу опубликованных ассетов с фильтрами
// и общим количеством. У элементов страницы заполняются теги и обложка.
func (s *Storage) ListAssets(ctx context.Context, opts models.ListAssetsOptions) (*models.AssetPage, error) {
	const op = "storage.postgres.ListAssets"

	if opts.Page < 1 || opts.PageSize < 1 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	where := []string{"a.status = 'PUBLISHED'"}
	args := []any{}

	if opts.Category != "" {
		args = append(args, string(opts.Category))
		where = append(where, fmt.Sprintf("a.category = $%d", len(args)))
	}

	if opts.Difficulty != "" {
		args = append(args, string(opts.Difficulty))
		where = append(where, fmt.Sprintf("a.difficulty = $%d", len(args)))
	}

	if q := strings.TrimSpace(opts.Search); q != "" {
		args = append(args, "%"+q+"%")
		where = append(where, fmt.Sprintf("(a.title ILIKE $%d OR a.summary ILIKE $%d)", len(args), len(args)))
	}

	if len(opts.Tags) > 0 {
		args = append(args, opts.Tags)
		where = append(where, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM asset_tags at
			         JOIN tags t ON t.id = at.tag_id
			         WHERE at.asset_id = a.id AND t.name = ANY($%d))`, len(args)))
	}

	cond := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT count(*) FROM assets a WHERE ` + cond + `;`
	if err := s.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	order := "a.published_at DESC NULLS LAST, a.created_at DESC"
	switch opts.Sort {
	case models.SortUpdated:
		order = "a.updated_at DESC"
	case models.SortPopular:
		order = "a.download_count DESC, a.published_at DESC NULLS LAST"
	}

	args = append(args, opts.PageSize, (opts.Page-1)*opts.PageSize)
	listQuery := fmt.Sprintf(`SELECT %s FROM assets a WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d;`,
		prefixColumns("a", assetColumns), cond, order, len(args)-1, len(args))

	rows, err := s.db.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]models.Asset, 0, opts.PageSize)
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

	return &models.AssetPage{
		Items:    items,
		Total:    total,
		Page:     opts.Page,
		PageSize: opts.PageSize,
	}, nil
}

// AssetBySlug возвращает полную деталь ассета: теги, превью и версии.
func (s *Storage) AssetBySlug(ctx context.Context, slug string, includeUnpublished bool) (*models.Asset, error) {
	const op = "storage.postgres.AssetBySlug"

	query := `SELECT ` + assetColumns + ` FROM assets WHERE slug = $1`
	if !includeUnpublished {
		query += ` AND status = 'PUBLISHED'`
	}
	query += `;`

	a, err := scanAsset(s.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items := []models.Asset{a}
	if err := s.attachTags(ctx, items); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	previews, err := s.previewsByAsset(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	items[0].Previews = previews

	versions, err := s.versionsByAsset(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	items[0].Versions = versions

	return &items[0], nil
}

// AssetByID возвращает ассет без связей.
func (s *Storage) AssetByID(ctx context.Context, id uuid.UUID) (*models.Asset, error) {
	const op = "storage.postgres.AssetByID"

	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1;`

	a, err := scanAsset(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &a, nil
}

// CreateAsset сохраняет ассет и связывает его с тегами в одной транзакции.
func (s *Storage) CreateAsset(ctx context.Context, asset *models.Asset, tagIDs []uuid.UUID) error {
	const op = "storage.postgres.CreateAsset"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO assets (title, slug, summary, description_md, how_to_md, breakdown_md,
	                              category, difficulty, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          RETURNING id, download_count, published_at, created_at, updated_at;`

	err = tx.QueryRow(ctx, query,
		asset.Title, asset.Slug, asset.Summary, asset.DescriptionMd, asset.HowToMd, asset.BreakdownMd,
		string(asset.Category), string(asset.Difficulty), string(asset.Status),
	).Scan(&asset.ID, &asset.DownloadCount, &asset.PublishedAt, &asset.CreatedAt, &asset.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if err := replaceAssetTags(ctx, tx, asset.ID, tagIDs); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UpdateAsset обновляет поля ассета; tagIDs == nil оставляет теги как есть.
func (s *Storage) UpdateAsset(ctx context.Context, asset *models.Asset, tagIDs []uuid.UUID) error {
	const op = "storage.postgres.UpdateAsset"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback(ctx)

	query := `UPDATE assets
	          SET title = $2, summary = $3, description_md = $4, how_to_md = $5, breakdown_md = $6,
	              category = $7, difficulty = $8, updated_at = now()
	          WHERE id = $1
	          RETURNING updated_at;`

	err = tx.QueryRow(ctx, query, asset.ID,
		asset.Title, asset.Summary, asset.DescriptionMd, asset.HowToMd, asset.BreakdownMd,
		string(asset.Category), string(asset.Difficulty),
	).Scan(&asset.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if tagIDs != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM asset_tags WHERE asset_id = $1;`, asset.ID); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		if err := replaceAssetTags(ctx, tx, asset.ID, tagIDs); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UpdateAssetStatus переводит ассет между статусами публикации.
// published_at выставляется при первой публикации и не перезаписывается.
func (s *Storage) UpdateAssetStatus(ctx context.Context, id uuid.UUID, status models.AssetStatus) error {
	const op = "storage.postgres.UpdateAssetStatus"

	query := `UPDATE assets
	          SET status = $2,
	              published_at = CASE WHEN $2 = 'PUBLISHED' THEN coalesce(published_at, now()) ELSE published_at END,
	              updated_at = now()
	          WHERE id = $1;`

	tag, err := s.db.Exec(ctx, query, id, string(status))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// IncrementDownloadCount атомарно увеличивает счётчик скачиваний.
func (s *Storage) IncrementDownloadCount(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.IncrementDownloadCount"

	tag, err := s.db.Exec(ctx, `UPDATE assets SET download_count = download_count + 1 WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// ListTags возвращает все теги, отсортированные по имени.
func (s *Storage) ListTags(ctx context.Context) ([]models.Tag, error) {
	const op = "storage.postgres.ListTags"

	rows, err := s.db.Query(ctx, `SELECT id, name, kind FROM tags ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var tags []models.Tag
	for rows.Next() {
		var (
			t    models.Tag
			kind string
		)

		if err := rows.Scan(&t.ID, &t.Name, &kind); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		t.Kind = models.TagKind(kind)
		tags = append(tags, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tags, nil
}

// SaveTag создаёт тег.
func (s *Storage) SaveTag(ctx context.Context, name string, kind models.TagKind) (uuid.UUID, error) {
	const op = "storage.postgres.SaveTag"

	name = strings.TrimSpace(name)
	if name == "" {
		return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	var id uuid.UUID
	err := s.db.QueryRow(ctx, `INSERT INTO tags (name, kind) VALUES ($1, $2) RETURNING id;`,
		name, string(kind)).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// SavePreview сохраняет запись превью.
func (s *Storage) SavePreview(ctx context.Context, preview *models.Preview) error {
	const op = "storage.postgres.SavePreview"

	query := `INSERT INTO previews (asset_id, type, url, sort_order)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id;`

	err := s.db.QueryRow(ctx, query,
		preview.AssetID, string(preview.Type), preview.URL, preview.SortOrder,
	).Scan(&preview.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SaveVersion сохраняет запись версии ассета.
func (s *Storage) SaveVersion(ctx context.Context, version *models.AssetVersion) error {
	const op = "storage.postgres.SaveVersion"

	query := `INSERT INTO asset_versions (asset_id, version_string, houdini_min, houdini_max,
	                                      renderer, os, notes_md, file_path, file_size, sha256)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	          RETURNING id, created_at;`

	err := s.db.QueryRow(ctx, query,
		version.AssetID, version.VersionString, version.HoudiniMin, version.HoudiniMax,
		string(version.Renderer), string(version.OS), version.NotesMd,
		version.FilePath, version.FileSize, version.SHA256,
	).Scan(&version.ID, &version.CreatedAt)
	if err != nil {
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

// VersionByID возвращает версию, принадлежащую ассету assetID.
func (s *Storage) VersionByID(ctx context.Context, assetID, versionID uuid.UUID) (*models.AssetVersion, error) {
	const op = "storage.postgres.VersionByID"

	query := `SELECT id, asset_id, version_string, houdini_min, houdini_max,
	                 renderer, os, notes_md, file_path, file_size, sha256, created_at
	          FROM asset_versions WHERE id = $1 AND asset_id = $2;`

	var (
		v        models.AssetVersion
		renderer string
		osName   string
	)

	err := s.db.QueryRow(ctx, query, versionID, assetID).Scan(
		&v.ID, &v.AssetID, &v.VersionString, &v.HoudiniMin, &v.HoudiniMax,
		&renderer, &osName, &v.NotesMd, &v.FilePath, &v.FileSize, &v.SHA256, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	v.Renderer = models.Renderer(renderer)
	v.OS = models.OS(osName)

	return &v, nil
}

// attachTags подтягивает теги для пачки ассетов одним запросом.
func (s *Storage) attachTags(ctx context.Context, items []models.Asset) error {
	if len(items) == 0 {
		return nil
	}

	ids := assetIDs(items)

	query := `SELECT at.asset_id, t.id, t.name, t.kind
	          FROM asset_tags at
	          JOIN tags t ON t.id = at.tag_id
	          WHERE at.asset_id = ANY($1)
	          ORDER BY t.name;`

	rows, err := s.db.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	byAsset := make(map[uuid.UUID][]models.Tag, len(items))
	for rows.Next() {
		var (
			assetID uuid.UUID
			t       models.Tag
			kind    string
		)

		if err := rows.Scan(&assetID, &t.ID, &t.Name, &kind); err != nil {
			return err
		}

		t.Kind = models.TagKind(kind)
		byAsset[assetID] = append(byAsset[assetID], t)
	}

	if err := rows.Err(); err != nil {
		return err
	}

	for i := range items {
		items[i].Tags = byAsset[items[i].ID]
	}

	return nil
}

// attachCovers подтягивает обложку (превью с минимальным sort_order)
// для пачки ассетов одним запросом.
func (s *Storage) attachCovers(ctx context.Context, items []models.Asset) error {
	if len(items) == 0 {
		return nil
	}

	ids := assetIDs(items)

	query := `SELECT DISTINCT ON (asset_id) id, asset_id, type, url, sort_order
	          FROM previews
	          WHERE asset_id = ANY($1)
	          ORDER BY asset_id, sort_order, id;`

	rows, err := s.db.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	byAsset := make(map[uuid.UUID]models.Preview, len(items))
	for rows.Next() {
		p, err := scanPreview(rows)
		if err != nil {
			return err
		}

		byAsset[p.AssetID] = p
	}

	if err := rows.Err(); err != nil {
		return err
	}

	for i := range items {
		if p, ok := byAsset[items[i].ID]; ok {
			items[i].Previews = []models.Preview{p}
		}
	}

	return nil
}

func (s *Storage) previewsByAsset(ctx context.Context, assetID uuid.UUID) ([]models.Preview, error) {
	query := `SELECT id, asset_id, type, url, sort_order
	          FROM previews WHERE asset_id = $1
	          ORDER BY sort_order, id;`

	rows, err := s.db.Query(ctx, query, assetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var previews []models.Preview
	for rows.Next() {
		p, err := scanPreview(rows)
		if err != nil {
			return nil, err
		}

		previews = append(previews, p)
	}

	return previews, rows.Err()
}

func (s *Storage) versionsByAsset(ctx context.Context, assetID uuid.UUID) ([]models.AssetVersion, error) {
	query := `SELECT id, asset_id, version_string, houdini_min, houdini_max,
	                 renderer, os, notes_md, file_path, file_size, sha256, created_at
	          FROM asset_versions WHERE asset_id = $1
	          ORDER BY created_at DESC;`

	rows, err := s.db.Query(ctx, query, assetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var versions []models.AssetVersion
	for rows.Next() {
		var (
			v        models.AssetVersion
			renderer string
			osName   string
		)

		err := rows.Scan(&v.ID, &v.AssetID, &v.VersionString, &v.HoudiniMin, &v.HoudiniMax,
			&renderer, &osName, &v.NotesMd, &v.FilePath, &v.FileSize, &v.SHA256, &v.CreatedAt)
		if err != nil {
			return nil, err
		}

		v.Renderer = models.Renderer(renderer)
		v.OS = models.OS(osName)
		versions = append(versions, v)
	}

	return versions, rows.Err()
}

func replaceAssetTags(ctx context.Context, tx pgx.Tx, assetID uuid.UUID, tagIDs []uuid.UUID) error {
	for _, tagID := range tagIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO asset_tags (asset_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING;`,
			assetID, tagID)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
				return storage.ErrInvalidArgument
			}

			return err
		}
	}

	return nil
}

func scanAsset(row pgx.Row) (models.Asset, error) {
	var (
		a          models.Asset
		category   string
		difficulty string
		status     string
	)

	err := row.Scan(&a.ID, &a.Title, &a.Slug, &a.Summary, &a.DescriptionMd, &a.HowToMd, &a.BreakdownMd,
		&category, &difficulty, &status, &a.DownloadCount, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return models.Asset{}, err
	}

	a.Category = models.Category(category)
	a.Difficulty = models.Difficulty(difficulty)
	a.Status = models.AssetStatus(status)

	return a, nil
}

func scanPreview(row pgx.Row) (models.Preview, error) {
	var (
		p     models.Preview
		ptype string
	)

	if err := row.Scan(&p.ID, &p.AssetID, &ptype, &p.URL, &p.SortOrder); err != nil {
		return models.Preview{}, err
	}

	p.Type = models.PreviewType(ptype)

	return p, nil
}

func assetIDs(items []models.Asset) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(items))
	for _, a := range items {
		ids = append(ids, a.ID)
	}

	return ids
}

func prefixColumns(alias, cols string) string {
	parts := strings.Split(cols, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}

	return strings.Join(parts, ", ")
}
