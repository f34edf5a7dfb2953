package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/brainly-app/brainly/internal/api"
	"github.com/brainly-app/brainly/internal/auth"
	"github.com/brainly-app/brainly/internal/config"
	"github.com/brainly-app/brainly/internal/db"
	"github.com/brainly-app/brainly/internal/metrics"
	"github.com/brainly-app/brainly/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			userStore := store.NewUserStore(database)
			tagStore := store.NewTagStore(database)
			contentStore := store.NewContentStore(database, tagStore)
			shareStore := store.NewShareStore(database)

			tokens := auth.NewTokens(cfg.Auth.Secret, cfg.Auth.TokenLifetime)
			bearerAuth := auth.NewBearerTokenMiddleware(tokens, userStore)

			go runGaugeRefresher(context.Background(), userStore, contentStore)

			router := api.NewRouter(api.Deps{
				BearerAuth:   bearerAuth,
				Tokens:       tokens,
				UserStore:    userStore,
				ContentStore: contentStore,
				ShareStore:   shareStore,
			})

			log.Printf("listening on %s", cfg.HTTP.Addr)
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}

// runGaugeRefresher periodically refreshes the database-derived gauges so the
// metrics endpoint does not query the store on every scrape.
func runGaugeRefresher(ctx context.Context, users *store.UserStore, content *store.ContentStore) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	refresh := func() {
		if n, err := users.CountAll(ctx); err == nil {
			metrics.UsersTotal.Set(float64(n))
		}
		if n, err := content.CountAll(ctx); err == nil {
			metrics.ContentItemsTotal.Set(float64(n))
		}
	}

	refresh()
	for {
		select {
		case <-ticker.C:
			refresh()
		case <-ctx.Done():
			return
		}
	}
}
