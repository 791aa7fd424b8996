// seed наполняет базу стартовыми данными: административный пользователь,
// базовый набор тегов и несколько демонстрационных ассетов.
// Повторный запуск безопасен: конфликты уникальности пропускаются.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fxlibrary/fxlibrary/internal/config"
	"github.com/fxlibrary/fxlibrary/internal/models"
	"github.com/fxlibrary/fxlibrary/internal/service"
	"github.com/fxlibrary/fxlibrary/internal/storage"
	"github.com/fxlibrary/fxlibrary/internal/storage/postgres"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(log)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := postgres.New(ctx, cfg.DB.DatabaseURL)
	if err != nil {
		log.Error("postgres_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	if err := seedAdmin(ctx, db, log); err != nil {
		log.Error("seed_admin_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	tagIDs, err := seedTags(ctx, db, log)
	if err != nil {
		log.Error("seed_tags_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	if err := seedAssets(ctx, db, log, tagIDs); err != nil {
		log.Error("seed_assets_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	log.Info("seed_done")
}

// seedAdmin создаёт администратора из SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD.
func seedAdmin(ctx context.Context, db *postgres.Storage, log *slog.Logger) error {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Info("seed_admin_skipped", slog.String("reason", "SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD not set"))
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Admin",
		Role:         models.RoleAdmin,
	}

	if err := db.SaveUser(ctx, admin); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			log.Info("seed_admin_exists", slog.String("email", email))
			return nil
		}

		return err
	}

	log.Info("seed_admin_created", slog.String("email", email))

	return nil
}

// seedTags создаёт базовый набор тегов и возвращает их ID по имени.
func seedTags(ctx context.Context, db *postgres.Storage, log *slog.Logger) (map[string]uuid.UUID, error) {
	wanted := []models.Tag{
		{Name: "pyro", Kind: models.TagKindCategory},
		{Name: "flip", Kind: models.TagKindCategory},
		{Name: "vellum", Kind: models.TagKindCategory},
		{Name: "sparse-solver", Kind: models.TagKindTechnique},
		{Name: "whitewater", Kind: models.TagKindTechnique},
		{Name: "opencl", Kind: models.TagKindFeature},
		{Name: "hda", Kind: models.TagKindFeature},
	}

	existing, err := db.ListTags(ctx)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]uuid.UUID, len(existing))
	for _, t := range existing {
		byName[t.Name] = t.ID
	}

	for _, t := range wanted {
		if _, ok := byName[t.Name]; ok {
			continue
		}

		id, err := db.SaveTag(ctx, t.Name, t.Kind)
		if err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				continue
			}

			return nil, err
		}

		byName[t.Name] = id
		log.Info("seed_tag_created", slog.String("name", t.Name))
	}

	return byName, nil
}

// seedAssets создаёт демонстрационные ассеты в статусе DRAFT:
// публикация требует хотя бы одной версии с реальным файлом в object storage.
func seedAssets(ctx context.Context, db *postgres.Storage, log *slog.Logger, tags map[string]uuid.UUID) error {
	demo := []struct {
		asset models.Asset
		tags  []string
	}{
		{
			asset: models.Asset{
				Title:         "Sparse Pyro Campfire",
				Summary:       "Готовый сетап костра на sparse pyro с прогретым кэшем.",
				DescriptionMd: "Кемпфайр-сетап: источник, sparse-солвер, шейдинг Karma.",
				Category:      models.CategoryPyro,
				Difficulty:    models.DifficultyBeginner,
			},
			tags: []string{"pyro", "sparse-solver"},
		},
		{
			asset: models.Asset{
				Title:         "Beach FLIP Tank",
				Summary:       "Прибой с whitewater и настроенным мешингом.",
				DescriptionMd: "FLIP-танк побережья: волновой источник, whitewater, мешинг.",
				Category:      models.CategoryFlip,
				Difficulty:    models.DifficultyAdvanced,
			},
			tags: []string{"flip", "whitewater"},
		},
		{
			asset: models.Asset{
				Title:         "Vellum Cloth Rig",
				Summary:       "Базовый риг ткани на Vellum с пресетами материалов.",
				DescriptionMd: "Риг ткани: pin-констрейнты, пресеты плотности, OpenCL.",
				Category:      models.CategoryVellum,
				Difficulty:    models.DifficultyIntermediate,
			},
			tags: []string{"vellum", "opencl"},
		},
	}

	for _, d := range demo {
		a := d.asset
		a.Slug = service.Slugify(a.Title)
		a.Status = models.StatusDraft

		var tagIDs []uuid.UUID
		for _, name := range d.tags {
			if id, ok := tags[name]; ok {
				tagIDs = append(tagIDs, id)
			}
		}

		if err := db.CreateAsset(ctx, &a, tagIDs); err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				log.Info("seed_asset_exists", slog.String("slug", a.Slug))
				continue
			}

			return err
		}

		log.Info("seed_asset_created", slog.String("slug", a.Slug))
	}

	return nil
}
