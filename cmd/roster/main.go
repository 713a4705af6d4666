package main

import (
	"context"
	"fmt"
	"os"

	"roster/internal/api"
	"roster/internal/cli"
	"roster/internal/config"
	"roster/internal/logging"
)

func main() {
	root := cli.NewRootCommand(openRoster)

	err := root.ExecuteContext(context.Background())
	if closeErr := root.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openRoster creates the repository, the logger and the API for cfg
func openRoster(ctx context.Context, cfg *config.Config) (api.API, error) {
	repo, err := config.CreateRepository(cfg)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg)
	if err != nil {
		repo.Close()
		return nil, err
	}

	apiInstance, err := api.New(ctx, repo, cfg, logger)
	if err != nil {
		repo.Close()
		return nil, err
	}
	return apiInstance, nil
}
