package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/curioswitch/go-curiostack/server"

	"github.com/mida-hub/recipe-box/internal/config"
	"github.com/mida-hub/recipe-box/internal/images"
	"github.com/mida-hub/recipe-box/internal/recipedb"
	"github.com/mida-hub/recipe-box/internal/routes"
)

//go:embed conf/*.yaml
var confFiles embed.FS

func main() {
	conf, _ := fs.Sub(confFiles, "conf")
	os.Exit(server.Main(&config.Config{}, conf, setupServer))
}

func setupServer(ctx context.Context, conf *config.Config, s *server.Server) error {
	if conf.Google.Project == "" {
		slog.WarnContext(ctx, "main: google project is not configured, falling back to default credentials")
	}
	if conf.Storage.Bucket == "" {
		slog.WarnContext(ctx, "main: storage bucket is not configured, image uploads will fail")
	}

	fbApp, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     conf.Google.Project,
		StorageBucket: conf.Storage.Bucket,
	})
	if err != nil {
		return fmt.Errorf("main: create firebase app: %w", err)
	}

	fbAuth, err := fbApp.Auth(ctx)
	if err != nil {
		return fmt.Errorf("main: create firebase auth client: %w", err)
	}

	firestore, err := fbApp.Firestore(ctx)
	if err != nil {
		return fmt.Errorf("main: create firestore client: %w", err)
	}
	defer func() {
		if err := firestore.Close(); err != nil {
			slog.ErrorContext(ctx, "main: close firestore client", "error", err)
		}
	}()

	storage, err := storage.NewGRPCClient(ctx)
	if err != nil {
		return fmt.Errorf("main: create storage client: %w", err)
	}
	defer func() {
		if err := storage.Close(); err != nil {
			slog.ErrorContext(ctx, "main: close storage client", "error", err)
		}
	}()

	routes.Register(
		server.Mux(s),
		fbAuth,
		recipedb.NewFirestore(firestore),
		images.NewGCS(storage, conf.Storage.Bucket),
		conf.CORS.Origins,
	)

	if err := server.Start(ctx, s); err != nil {
		return fmt.Errorf("main: starting server: %w", err)
	}
	return nil
}
