package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crit/internal/core/domain"
)

func TestDiscover(t *testing.T) {
	// root/
	//   crit.toml
	//   plans/
	//     crit.yaml
	//     crit.toml
	//     q3/ (cwd)
	root := t.TempDir()
	plans := filepath.Join(root, "plans")
	q3 := filepath.Join(plans, "q3")
	require.NoError(t, os.MkdirAll(q3, 0o750))

	writeFile(t, root, "crit.toml", "[project]\nname = \"root\"\n")
	yamlPath := writeFile(t, plans, "crit.yaml", "project:\n  name: plans\n")
	writeFile(t, plans, "crit.toml", "[project]\nname = \"plans\"\n")

	loader, _ := newLoader(t)

	got, err := loader.Discover(q3)
	require.NoError(t, err)
	assert.Equal(t, yamlPath, got)

	got, err = loader.Discover(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "crit.toml"), got)
}

func TestDiscover_NotFound(t *testing.T) {
	dir := t.TempDir()
	// A directory named like the project file must not match.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "crit.yaml"), 0o750))

	loader, _ := newLoader(t)

	_, err := loader.Discover(dir)
	if err == nil {
		t.Skip("a crit.yaml or crit.toml exists above the temp directory")
	}
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
}
