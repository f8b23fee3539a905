package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	theme "github.com/ImGajeed76/pathkit/internal"
	"github.com/ImGajeed76/pathkit/pkg/pathkit/config"
	sftpmanager "github.com/ImGajeed76/pathkit/pkg/pathkit/sftp"
	"github.com/spf13/cobra"
)

func newHostsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hosts",
		Short: "Manage SFTP host profiles",
	}
	cmd.AddCommand(newHostsAddCmd(a), newHostsListCmd(a), newHostsRmCmd(a))
	return cmd
}

func newHostsAddCmd(a *app) *cobra.Command {
	var (
		profile     config.HostProfile
		askPassword bool
		passwordEnv string
	)

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add or replace a host profile",
		Example: `  pathkit hosts add web --hostname web.example.com --user deploy --key-file ~/.ssh/id_ed25519
  pathkit hosts add nas --hostname 192.168.1.10 --user admin --ask-password
  pathkit hosts add ci --hostname ci.local --user ci --password-env CI_SFTP_PASSWORD`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile.Name = args[0]
			if askPassword && passwordEnv != "" {
				return fmt.Errorf("--ask-password and --password-env are mutually exclusive")
			}

			hosts, err := a.hosts()
			if err != nil {
				return err
			}
			replaced, err := hosts.Add(profile)
			if err != nil {
				return err
			}

			switch {
			case passwordEnv != "":
				password := os.Getenv(passwordEnv)
				if password == "" {
					return fmt.Errorf("environment variable %s is empty", passwordEnv)
				}
				secrets, err := a.keyring()
				if err != nil {
					return err
				}
				if err := secrets.SetPassword(profile.Name, password); err != nil {
					return err
				}
			case askPassword:
				secrets, err := a.keyring()
				if err != nil {
					return err
				}
				if err := secrets.PromptPassword(profile.Name); err != nil {
					return err
				}
			}

			if err := hosts.Save(); err != nil {
				return err
			}

			verb := "added"
			if replaced {
				verb = "replaced"
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme.SuccessStyle.Render(fmt.Sprintf("%s %s in %s", verb, profile.Name, hosts.Path())))
			return nil
		},
	}

	cmd.Flags().StringVar(&profile.Hostname, "hostname", "", "Host name or address")
	cmd.Flags().IntVar(&profile.Port, "port", 0, "SSH port (default 22)")
	cmd.Flags().StringVarP(&profile.Username, "user", "u", "", "Login name")
	cmd.Flags().StringVar(&profile.KeyFile, "key-file", "", "Private key for public key authentication")
	cmd.Flags().StringVar(&profile.KnownHostsFile, "known-hosts", "", "known_hosts file used to verify the host key")
	cmd.Flags().BoolVar(&askPassword, "ask-password", false, "Prompt for a password and keep it in the system keyring")
	cmd.Flags().StringVar(&passwordEnv, "password-env", "", "Read the password from this environment variable into the keyring")
	_ = cmd.MarkFlagRequired("hostname")
	return cmd
}

func newHostsListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List host profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hosts, err := a.hosts()
			if err != nil {
				return err
			}
			if len(hosts.Profiles) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), theme.MutedStyle.Render("no hosts in "+hosts.Path()))
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tADDRESS\tKEY FILE")
			for _, profile := range hosts.Profiles {
				port := profile.Port
				if port == 0 {
					port = sftpmanager.DefaultPort
				}
				fmt.Fprintf(w, "%s\t%s@%s:%d\t%s\n", profile.Name, profile.Username, profile.Hostname, port, profile.KeyFile)
			}
			return w.Flush()
		},
	}
}

func newHostsRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm NAME",
		Aliases: []string{"remove"},
		Short:   "Remove a host profile and its stored password",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hosts, err := a.hosts()
			if err != nil {
				return err
			}
			if !hosts.Remove(args[0]) {
				_, err := hosts.Find(args[0])
				return err
			}
			if err := hosts.Save(); err != nil {
				return err
			}

			secrets, err := a.keyring()
			if err != nil {
				return err
			}
			if err := secrets.DeletePassword(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), theme.SuccessStyle.Render("removed "+args[0]))
			return nil
		},
	}
}
