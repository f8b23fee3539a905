// Package config keeps the CLI's SFTP host profiles in a YAML file and
// their passwords in the system keyring.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ImGajeed76/pathkit/pkg/pathkit/path"
	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
	sftpmanager "github.com/ImGajeed76/pathkit/pkg/pathkit/sftp"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the location of the hosts file.
const EnvConfigPath = "PATHKIT_CONFIG"

var ErrUnknownHost = errors.New("unknown host profile")

type HostProfile struct {
	Name           string `yaml:"name"`
	Hostname       string `yaml:"hostname"`
	Port           int    `yaml:"port,omitempty"`
	Username       string `yaml:"username"`
	KeyFile        string `yaml:"key_file,omitempty"`
	KnownHostsFile string `yaml:"known_hosts_file,omitempty"`
}

func (p HostProfile) validate() error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: profile name is empty", pathmodels.ErrInvalid)
	case p.Hostname == "":
		return fmt.Errorf("%w: profile %s has no hostname", pathmodels.ErrInvalid, p.Name)
	case p.Port < 0 || p.Port > 65535:
		return fmt.Errorf("%w: profile %s has port %d", pathmodels.ErrInvalid, p.Name, p.Port)
	}
	return nil
}

// Details turns the profile into connection details, filling the password
// from secrets when one is stored.
func (p HostProfile) Details(secrets *Secrets) (sftpmanager.ConnectionDetails, error) {
	details := sftpmanager.ConnectionDetails{
		Hostname:       p.Hostname,
		Port:           p.Port,
		Username:       p.Username,
		KeyFile:        p.KeyFile,
		KnownHostsFile: p.KnownHostsFile,
	}
	if secrets == nil {
		return details, nil
	}

	password, _, err := secrets.Password(p.Name)
	if err != nil {
		return details, err
	}
	details.Password = password
	return details, nil
}

// Hosts is the set of profiles stored in one file.
type Hosts struct {
	file     *path.File
	Profiles []HostProfile `yaml:"hosts"`
}

// DefaultPath returns $PATHKIT_CONFIG, or hosts.yaml in the user's
// config directory.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "pathkit", "hosts.yaml"), nil
}

// LoadHosts reads the hosts file at filePath. A missing file yields an
// empty set that Save will create.
func LoadHosts(filePath string) (*Hosts, error) {
	hosts := &Hosts{file: path.NewFile(filePath)}
	if hosts.file.DoesNotExist() {
		return hosts, nil
	}

	data, err := hosts.file.ReadBytes()
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, hosts); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filePath, err)
	}
	for _, profile := range hosts.Profiles {
		if err := profile.validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", filePath, err)
		}
	}
	return hosts, nil
}

func (h *Hosts) Path() string { return h.file.String() }

func (h *Hosts) Save() error {
	data, err := yaml.Marshal(h)
	if err != nil {
		return err
	}
	if err := h.file.Directory().Create(); err != nil {
		return err
	}
	return h.file.WriteBytes(data)
}

// Add stores profile, replacing one with the same name. The boolean reports
// whether a profile was replaced.
func (h *Hosts) Add(profile HostProfile) (bool, error) {
	if err := profile.validate(); err != nil {
		return false, err
	}

	for i := range h.Profiles {
		if h.Profiles[i].Name == profile.Name {
			h.Profiles[i] = profile
			return true, nil
		}
	}
	h.Profiles = append(h.Profiles, profile)
	sort.Slice(h.Profiles, func(i, j int) bool { return h.Profiles[i].Name < h.Profiles[j].Name })
	return false, nil
}

func (h *Hosts) Remove(name string) bool {
	for i := range h.Profiles {
		if h.Profiles[i].Name == name {
			h.Profiles = append(h.Profiles[:i], h.Profiles[i+1:]...)
			return true
		}
	}
	return false
}

func (h *Hosts) Find(name string) (HostProfile, error) {
	for _, profile := range h.Profiles {
		if profile.Name == name {
			return profile, nil
		}
	}
	return HostProfile{}, fmt.Errorf("%w: %s", ErrUnknownHost, name)
}
