// Package cli implements seminarctl, a command-line client for the seminars API.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"seminarhub/internal/adapters/seminarapi"
	"seminarhub/internal/domain"
)

const (
	AppName       = "seminarctl"
	serverEnv     = "SEMINARHUB_URL"
	defaultServer = "http://localhost:8080"
)

// SeminarAPI is the subset of the API client the commands need.
type SeminarAPI interface {
	ListSeminars(ctx context.Context, query string) ([]*domain.Seminar, error)
	GetSeminar(ctx context.Context, id int64) (*domain.Seminar, error)
	CreateSeminar(ctx context.Context, s *domain.Seminar) (*domain.Seminar, error)
	UpdateSeminar(ctx context.Context, s *domain.Seminar) (*domain.Seminar, error)
	DeleteSeminar(ctx context.Context, id int64) error
}

// ClientFactory builds an API client for the server URL given on the command line.
type ClientFactory func(serverURL string) SeminarAPI

// NewRootCmd returns the seminarctl command tree talking HTTP to the server.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithClient(func(serverURL string) SeminarAPI {
		return seminarapi.NewClient(serverURL, nil)
	})
}

// NewRootCmdWithClient returns the command tree using newClient to reach the API.
func NewRootCmdWithClient(newClient ClientFactory) *cobra.Command {
	var serverURL string

	root := &cobra.Command{
		Use:   AppName,
		Short: "Manage seminars from the command line",
		Long: `seminarctl lists, shows, creates, updates and deletes seminar records
through the seminarhub HTTP API.

The server defaults to $SEMINARHUB_URL, or http://localhost:8080 when unset.`,
		SilenceUsage: true,
	}

	defaultURL := os.Getenv(serverEnv)
	if defaultURL == "" {
		defaultURL = defaultServer
	}
	root.PersistentFlags().StringVar(&serverURL, "server", defaultURL, "seminarhub API base URL")

	api := func() SeminarAPI { return newClient(serverURL) }

	root.AddCommand(
		newListCmd(api),
		newGetCmd(api),
		newCreateCmd(api),
		newUpdateCmd(api),
		newDeleteCmd(api),
	)
	return root
}

// Execute runs seminarctl with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
