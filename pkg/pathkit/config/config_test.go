package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	pathmodels "github.com/ImGajeed76/pathkit/pkg/pathkit/path/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestSecrets(t *testing.T) {
	keyring.MockInit()

	_, err := NewSecrets("")
	assert.Error(t, err)

	secrets, err := NewSecrets("pathkit-test")
	require.NoError(t, err)

	_, found, err := secrets.Password("prod")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, secrets.SetPassword("prod", "s3cret"))
	password, found, err := secrets.Password("prod")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "s3cret", password)

	require.NoError(t, secrets.DeletePassword("prod"))
	require.NoError(t, secrets.DeletePassword("prod"), "deleting twice is fine")
	_, found, err = secrets.Password("prod")
	require.NoError(t, err)
	assert.False(t, found)

	assert.Error(t, secrets.Set("", "x"))
}

func TestHosts_LoadMissing(t *testing.T) {
	hosts, err := LoadHosts(filepath.Join(t.TempDir(), "nested", "hosts.yaml"))
	require.NoError(t, err)
	assert.Empty(t, hosts.Profiles)
}

func TestHosts_RoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cfg", "hosts.yaml")

	hosts, err := LoadHosts(file)
	require.NoError(t, err)

	replaced, err := hosts.Add(HostProfile{Name: "web", Hostname: "web.example.com", Username: "deploy"})
	require.NoError(t, err)
	assert.False(t, replaced)
	_, err = hosts.Add(HostProfile{Name: "backup", Hostname: "10.0.0.2", Port: 2222, Username: "root", KeyFile: "~/.ssh/id_ed25519"})
	require.NoError(t, err)
	require.NoError(t, hosts.Save())

	raw, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "hostname: web.example.com")
	assert.Contains(t, string(raw), "key_file: ~/.ssh/id_ed25519")

	loaded, err := LoadHosts(file)
	require.NoError(t, err)
	require.Len(t, loaded.Profiles, 2)
	assert.Equal(t, "backup", loaded.Profiles[0].Name)

	profile, err := loaded.Find("backup")
	require.NoError(t, err)
	assert.Equal(t, 2222, profile.Port)

	replaced, err = loaded.Add(HostProfile{Name: "web", Hostname: "web2.example.com", Username: "deploy"})
	require.NoError(t, err)
	assert.True(t, replaced)

	assert.True(t, loaded.Remove("backup"))
	assert.False(t, loaded.Remove("backup"))

	_, err = loaded.Find("backup")
	assert.True(t, errors.Is(err, ErrUnknownHost), "got %v", err)
}

func TestHosts_Invalid(t *testing.T) {
	hosts := &Hosts{}

	tests := []struct {
		name    string
		profile HostProfile
	}{
		{"no name", HostProfile{Hostname: "h"}},
		{"no hostname", HostProfile{Name: "n"}},
		{"bad port", HostProfile{Name: "n", Hostname: "h", Port: 70000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := hosts.Add(tt.profile)
			assert.True(t, errors.Is(err, pathmodels.ErrInvalid), "got %v", err)
		})
	}

	file := filepath.Join(t.TempDir(), "hosts.yaml")
	require.NoError(t, os.WriteFile(file, []byte("hosts:\n  - name: x\n"), 0644))
	_, err := LoadHosts(file)
	assert.True(t, errors.Is(err, pathmodels.ErrInvalid), "got %v", err)

	require.NoError(t, os.WriteFile(file, []byte("hosts: [unclosed"), 0644))
	_, err = LoadHosts(file)
	assert.Error(t, err)
}

func TestHostProfile_Details(t *testing.T) {
	keyring.MockInit()
	secrets, err := NewSecrets(DefaultService)
	require.NoError(t, err)
	require.NoError(t, secrets.SetPassword("web", "pw"))

	profile := HostProfile{Name: "web", Hostname: "web.example.com", Port: 2200, Username: "deploy", KnownHostsFile: "/etc/ssh/known"}

	details, err := profile.Details(secrets)
	require.NoError(t, err)
	assert.Equal(t, "deploy@web.example.com:2200", details.String())
	assert.Equal(t, "pw", details.Password)
	assert.Equal(t, "/etc/ssh/known", details.KnownHostsFile)

	details, err = profile.Details(nil)
	require.NoError(t, err)
	assert.Empty(t, details.Password)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv(EnvConfigPath, "/tmp/custom.yaml")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml", p)

	t.Setenv(EnvConfigPath, "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")
	p, err = DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "hosts.yaml", filepath.Base(p))
	assert.Equal(t, "pathkit", filepath.Base(filepath.Dir(p)))
}
