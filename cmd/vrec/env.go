package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/vango-dev/vrec/internal/config"
	"github.com/vango-dev/vrec/internal/demo"
	"github.com/vango-dev/vrec/internal/snapshot"
)

// env is the resolved configuration of one command invocation.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

func loadEnv(g *globalFlags, stderr io.Writer) (*env, error) {
	cfg, err := config.LoadOptional(g.dir)
	if err != nil {
		return nil, err
	}
	if g.logLevel != "" {
		cfg.Log.Level = strings.ToLower(g.logLevel)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	if g.keyed {
		cfg.Reconciler.Keyed = true
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	return &env{cfg: cfg, logger: logger}, nil
}

// sessionOptions returns the demo options implied by the configuration.
func (e *env) sessionOptions(extra ...demo.Option) []demo.Option {
	opts := []demo.Option{demo.WithLogger(e.logger)}
	if e.cfg.Reconciler.Keyed {
		opts = append(opts, demo.WithKeyedChildren())
	}
	return append(opts, extra...)
}

// store opens the configured snapshot store.
func (e *env) store(ctx context.Context) (snapshot.Store, error) {
	if e.cfg.UseS3() {
		s3cfg := e.cfg.Snapshot.S3
		client := snapshot.NewS3Client(snapshot.ClientOptions{
			Region:   s3cfg.Region,
			Endpoint: s3cfg.Endpoint,
		})
		e.logger.Debug("using s3 snapshot store", "bucket", s3cfg.Bucket, "prefix", s3cfg.Prefix)
		return snapshot.NewS3Store(client, s3cfg.Bucket, s3cfg.Prefix), nil
	}
	store, err := snapshot.NewDiskStore(e.cfg.Snapshot.Dir)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// loadSteps returns the script at path, or the built-in script when path
// is empty.
func loadSteps(path string) ([]demo.Step, error) {
	if path == "" {
		return slices.Clone(demo.DefaultScript), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return demo.LoadScript(f)
}
