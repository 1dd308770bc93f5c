package main

import (
	"context"

	"github.com/joho/godotenv"

	"github.com/evickastudio/hugauth/internal/auth"
	"github.com/evickastudio/hugauth/internal/config"
	"github.com/evickastudio/hugauth/internal/logger"
	"github.com/evickastudio/hugauth/internal/store"
)

func main() {
	// Optional .env file; environment variables win when both are set.
	_ = godotenv.Load()

	log := logger.NewLogger("hugauth")

	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	fileStore, err := store.NewFileStore(cfg.Store.Path, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening credential store")
	}

	manager := auth.NewManager(fileStore, cfg.Login, log)
	ctx := context.Background()

	switch {
	case !fileStore.Exists():
		log.Info().Msg("no stored credentials, setting up initial configuration")

		if cfg.Auth.Email == "" || cfg.Auth.Password == "" {
			log.Fatal().Msg("no stored credentials and AUTH_EMAIL/AUTH_PASSWORD are unset")
		}
		if !manager.SetUpAuthentication(ctx, cfg.Auth.Email, cfg.Auth.Password) {
			log.Fatal().Msg("initial authentication failed")
		}

	case !fileStore.IsLoggedIn():
		credentials := fileStore.Credentials()
		log.Info().Str("email", credentials.Email).Msg("no token stored, starting authentication")

		if !manager.SetUpAuthentication(ctx, credentials.Email, credentials.Password) {
			log.Fatal().Msg("authentication failed")
		}

	default:
		log.Info().Msg("session token found in store")
	}

	clientConfig := manager.Authenticate()
	if clientConfig == nil {
		log.Fatal().Msg("no authentication data available")
	}

	client := clientConfig.Client()

	log.Info().
		Str("email", clientConfig.Email).
		Bool("session", clientConfig.Token != "").
		Str("user_agent", client.Header.Get("User-Agent")).
		Msg("authenticated client ready")
}
