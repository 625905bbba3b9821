package configutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolveAndMergeFile(t *testing.T) {
	t.Run("reads a yaml file", func(t *testing.T) {
		dir := t.TempDir()
		path := writeConfig(t, dir, "config.yaml", "namespace: e2e-test-1\nzone: us-east1-d\n")

		v := viper.New()
		require.NoError(t, ResolveAndMergeFile(v, path))
		assert.Equal(t, "e2e-test-1", v.GetString("namespace"))
		assert.Equal(t, "us-east1-d", v.GetString("zone"))
	})

	t.Run("missing file", func(t *testing.T) {
		v := viper.New()
		err := ResolveAndMergeFile(v, "/does/not/exist.yaml")
		assert.Error(t, err)
	})

	t.Run("no extension", func(t *testing.T) {
		dir := t.TempDir()
		path := writeConfig(t, dir, "config", "namespace: x\n")

		v := viper.New()
		err := ResolveAndMergeFile(v, path)
		assert.Error(t, err)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		dir := t.TempDir()
		path := writeConfig(t, dir, "config.conf", "namespace: x\n")

		v := viper.New()
		err := ResolveAndMergeFile(v, path)
		assert.Error(t, err)
	})
}

func TestBindEnvsRecursive(t *testing.T) {
	type inner struct {
		Token string `mapstructure:"token"`
	}
	type outer struct {
		Namespace string `mapstructure:"namespace"`
		GitHub    *inner `mapstructure:"github"`
		ignored   string
	}

	v := viper.New()
	v.SetEnvPrefix("KFTEST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	t.Setenv("KFTEST_GITHUB_TOKEN", "abc123")

	var c outer
	require.NoError(t, BindEnvsRecursive(v, &c, ""))
	require.NoError(t, v.Unmarshal(&c))
	assert.Equal(t, "abc123", c.GitHub.Token)
	_ = c.ignored
}
