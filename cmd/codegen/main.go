// Command codegen mints single-use counselor codes into the store and prints
// them, one per line, for hand-out.
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tanglaw_backend/internal/domain/repository"
	"tanglaw_backend/internal/platform/config"
	"tanglaw_backend/internal/platform/database"
	"tanglaw_backend/internal/platform/logger"
)

func main() {
	count := flag.Int("n", 1, "number of counselor codes to mint")
	flag.Parse()

	logger.Init()
	config.Load()

	database.Connect()
	defer database.Close()

	if err := database.Migrate(database.DB); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	codeRepo := repository.NewPgCodeRepository(database.DB)
	ctx := context.Background()

	for i := 0; i < *count; i++ {
		code := uuid.NewString()
		if err := codeRepo.Create(ctx, code); err != nil {
			log.Fatal().Err(err).Msg("Failed to mint counselor code")
		}
		fmt.Println(code)
	}
}
