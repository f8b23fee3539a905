package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ImGajeed76/pathkit/pkg/pathkit/path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"1.0.0", "v1.0.0", false},
		{"v2.1.3", "v2.1.3", false},
		{"v1.2.3-beta.1", "v1.2.3-beta.1", false},
		{"1.2", "", true},
		{"latest", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeVersion(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteVersionFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "version.go")

	require.NoError(t, writeVersionFile(path.NewFile(target), "v1.4.0"))

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "package internal\n\nvar Version = \"v1.4.0\"\n", string(content))
}
