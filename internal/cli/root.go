package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	theme "github.com/ImGajeed76/pathkit/internal"
	"github.com/ImGajeed76/pathkit/pkg/pathkit/config"
	"github.com/ImGajeed76/pathkit/pkg/pathkit/path"
	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
	pathsftp "github.com/ImGajeed76/pathkit/pkg/pathkit/path/operations/sftp"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const connectTimeout = 30 * time.Second

// app carries the global flags and the lazily opened provider shared by
// every subcommand.
type app struct {
	host       string
	configPath string

	// secrets is nil until a command needs the keyring
	secrets  *config.Secrets
	provider pathmodels.Provider
}

// NewRootCmd builds the pathkit command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "pathkit",
		Short: "Navigate, search, copy and move trees on local disks and SFTP hosts",
		Long: `pathkit works on directory trees through one set of commands, whether
they live on the local disk or on an SFTP host selected with --host.

Paths are resolved relative to each other, searched with globs where
* stays inside a directory and ** crosses directories, and copied or
moved as whole trees.

Host profiles live in hosts.yaml under the user config directory, or
wherever PATHKIT_CONFIG points. Passwords are kept in the system keyring.
A .env file in the working directory is loaded first.`,
		Version:      theme.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("load .env: %w", err)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.host, "host", "", "Run against the SFTP host profile with this name")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Hosts file (default $PATHKIT_CONFIG or the user config dir)")

	root.AddCommand(
		newRelCmd(a),
		newSearchCmd(a),
		newLsCmd(a),
		newCopyCmd(a),
		newMoveCmd(a),
		newGlobHelpCmd(),
		newHostsCmd(a),
	)
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) hosts() (*config.Hosts, error) {
	file := a.configPath
	if file == "" {
		var err error
		if file, err = config.DefaultPath(); err != nil {
			return nil, err
		}
	}
	return config.LoadHosts(file)
}

func (a *app) keyring() (*config.Secrets, error) {
	if a.secrets != nil {
		return a.secrets, nil
	}
	secrets, err := config.NewSecrets(config.DefaultService)
	if err != nil {
		return nil, err
	}
	a.secrets = secrets
	return secrets, nil
}

// fs returns the local provider, or a pooled SFTP provider when --host is set.
func (a *app) fs(ctx context.Context) (pathmodels.Provider, error) {
	if a.provider != nil {
		return a.provider, nil
	}
	if a.host == "" {
		a.provider = path.Local()
		return a.provider, nil
	}

	hosts, err := a.hosts()
	if err != nil {
		return nil, err
	}
	profile, err := hosts.Find(a.host)
	if err != nil {
		return nil, err
	}
	secrets, err := a.keyring()
	if err != nil {
		return nil, err
	}
	details, err := profile.Details(secrets)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	provider, err := pathsftp.Connect(ctx, nil, details)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", a.host, err)
	}
	a.provider = provider
	return provider, nil
}
