// Command rehash replaces every employee password that is not yet a bcrypt
// hash with its hash. It is safe to run more than once.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/elite-admin/internal/auth"
	"github.com/BruksfildServices01/elite-admin/internal/config"
	dbpkg "github.com/BruksfildServices01/elite-admin/internal/db"
	infraRepo "github.com/BruksfildServices01/elite-admin/internal/infra/repository"
	"github.com/BruksfildServices01/elite-admin/internal/models"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "report rows without updating them")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.DefaultContextLogger = &log.Logger

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	n, err := rehash(context.Background(), infraRepo.NewEmployeeGormRepository(db), *dryRun)
	if err != nil {
		log.Fatal().Err(err).Msg("rehash failed")
	}

	log.Info().Int("updated", n).Bool("dry_run", *dryRun).Msg("done")
}

type employeeStore interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	UpdatePassword(ctx context.Context, id uint, hash string) error
}

func rehash(ctx context.Context, store employeeStore, dryRun bool) (int, error) {
	emps, err := store.ListEmployees(ctx)
	if err != nil {
		return 0, err
	}

	var n int
	for _, e := range emps {
		if e.Password == "" || auth.IsHash(e.Password) {
			continue
		}

		log.Info().Uint("id", e.ID).Str("user", e.User).Msg("plaintext password")
		n++
		if dryRun {
			continue
		}

		hash, err := auth.HashPassword(e.Password)
		if err != nil {
			return n, err
		}
		if err := store.UpdatePassword(ctx, e.ID, hash); err != nil {
			return n, err
		}
	}
	return n, nil
}
