package cli

import (
	"errors"
	"fmt"

	"github.com/ImGajeed76/pathkit/pkg/pathkit/path"
	pathrelative "github.com/ImGajeed76/pathkit/pkg/pathkit/path/relative"
	"github.com/spf13/cobra"
)

var ErrNotRelated = errors.New("paths are not related")

func newRelCmd(a *app) *cobra.Command {
	var substring bool

	cmd := &cobra.Command{
		Use:   "rel BASE TARGET",
		Short: "Print TARGET relative to the directory BASE",
		Long: `Print TARGET relative to the directory BASE, climbing with ".." when TARGET
is not below BASE. Neither path has to exist. Prints an empty line when
both name the same directory.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs, err := a.fs(cmd.Context())
			if err != nil {
				return err
			}

			mode := pathrelative.Segments
			if substring {
				mode = pathrelative.Substring
			}
			base := path.NewDirectoryOn(fs, args[0]).WithResolution(mode)

			rel, ok := base.RelativePath(args[1])
			if !ok {
				return fmt.Errorf("%w: %s and %s", ErrNotRelated, args[0], args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), rel)
			return nil
		},
	}

	cmd.Flags().BoolVar(&substring, "substring", false, "Treat BASE as contained in TARGET wherever it occurs as text")
	return cmd
}
