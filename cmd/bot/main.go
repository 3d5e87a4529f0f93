package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"emotebot/internal/adapters/discord"
	"emotebot/internal/application"
	"emotebot/internal/config"
	"emotebot/internal/infrastructure/database"
	"emotebot/internal/infrastructure/emotestore"
	"emotebot/internal/infrastructure/i18n"
	"emotebot/internal/infrastructure/xivapi"
	"emotebot/internal/ports/output"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration invalide: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx := context.Background()
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Erreur lors des migrations: %v", err)
	}
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Erreur lors de l'initialisation de la base de données: %v", err)
	}
	defer pool.Close()

	emoteRepo := database.NewEmoteRepository(pool)
	settingsRepo := database.NewUserSettingsRepository(pool)

	if loader := emoteLoader(cfg, logger); loader != nil {
		emotes, err := loader.LoadEmotes(ctx)
		if err != nil {
			log.Fatalf("❌ Erreur lors du chargement des emotes (%s): %v", cfg.EmoteSource, err)
		}
		if err := emoteRepo.ReplaceAll(ctx, emotes); err != nil {
			log.Fatalf("❌ Erreur lors de l'enregistrement des emotes: %v", err)
		}
		log.Printf("✅ %d emotes chargées depuis %s", len(emotes), cfg.EmoteSource)
	}

	emoteUC := application.NewEmoteService(emoteRepo, logger)
	settingsUC := application.NewSettingsService(settingsRepo)
	tr := i18n.NewTranslator(cfg.DefaultLocale)

	bot, err := discord.NewBot(cfg, emoteUC, settingsUC, tr)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := bot.Start(); err != nil {
		log.Printf("❌ Erreur lors du démarrage du bot: %v", err)
		os.Exit(1)
	}
}

// emoteLoader returns the loader that seeds the emote tables, or nil when
// the database is the source.
func emoteLoader(cfg *config.Config, logger *slog.Logger) output.EmoteLoader {
	switch cfg.EmoteSource {
	case config.SourceFile:
		return &emotestore.FileLoader{Path: cfg.EmoteDataFile}
	case config.SourceXIVAPI:
		return xivapi.NewClient(xivapi.WithPrivateKey(cfg.XIVAPIKey), xivapi.WithLogger(logger))
	default:
		return nil
	}
}
