package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"podverse-web/internal/apiclient"
	intconfig "podverse-web/internal/config"
	router "podverse-web/internal/http"
	"podverse-web/internal/http/handlers"
	"podverse-web/internal/i18n"
	"podverse-web/internal/pages"
	"podverse-web/internal/repositories"
	"podverse-web/internal/services"
	"podverse-web/internal/state"
	"podverse-web/internal/testsupport"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "podverse-web",
		Short:         "Server-rendered podverse pages",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCommand(), newSeedCommand())
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := intconfig.LoadEnv()
			if err != nil {
				return err
			}
			if env.GinMode != "" {
				gin.SetMode(env.GinMode)
			}

			hs, closeBackend, err := newHandlers(cmd.Context(), env)
			if err != nil {
				return err
			}
			defer closeBackend()

			return serve(env, router.NewRouter(env, hs))
		},
	}
}

// newHandlers picks the data source: the remote API when API_BASE_URL is
// set, the database otherwise.
func newHandlers(ctx context.Context, env intconfig.Env) (*handlers.Handlers, func(), error) {
	bundle, err := i18n.Load(env.DefaultLocale)
	if err != nil {
		return nil, nil, err
	}
	tutorials, err := pages.LoadTutorials()
	if err != nil {
		return nil, nil, err
	}
	hs := &handlers.Handlers{
		PageSize:   env.PageSize,
		Registry:   state.NewRegistry(),
		I18n:       bundle,
		Tutorials:  tutorials,
		WebBaseURL: env.WebBaseURL,
	}

	if env.APIBaseURL != "" {
		client := apiclient.New(env.APIBaseURL)
		hs.Episodes, hs.Clips = client, client
		log.Printf("[BOOT] using podverse api at %s", env.APIBaseURL)
		return hs, func() {}, nil
	}

	db, err := intconfig.ConnectDB(env)
	if err != nil {
		return nil, nil, err
	}
	if env.DBDriver == "sqlite" {
		if err := repositories.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
	}
	hs.DB = db
	hs.Episodes = services.EpisodeService{Repo: repositories.EpisodeRepository{DB: db}}
	hs.Clips = services.ClipService{
		Repo:     repositories.MediaRefRepository{DB: db, Dialect: env.DBDriver},
		PageSize: env.PageSize,
	}
	return hs, func() { _ = db.Close() }, nil
}

func serve(env intconfig.Env, handler http.Handler) error {
	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server berjalan di http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("gagal menjalankan server: %w", err)
		}
		return nil
	case <-quit:
	}

	log.Println("Mematikan server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown server gagal: %w", err)
	}
	log.Println("Server berhenti dengan aman.")
	return nil
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the schema and the sample podcast, episode and clips",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := intconfig.LoadEnv()
			if err != nil {
				return err
			}
			db, err := intconfig.ConnectDB(env)
			if err != nil {
				return err
			}
			defer db.Close()
			return seed(cmd.Context(), db, cmd)
		},
	}
}

func seed(ctx context.Context, db *sql.DB, cmd *cobra.Command) error {
	if err := repositories.EnsureSchema(ctx, db); err != nil {
		return err
	}
	refs, err := testsupport.CreateTestMediaRefs(ctx, db)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "episode %s\n", refs[0].EpisodeID)
	for _, r := range refs {
		fmt.Fprintf(cmd.OutOrStdout(), "clip %s %s\n", r.ID, r.Title)
	}
	return nil
}
