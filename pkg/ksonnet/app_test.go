package ksonnet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kubeflow/testing/pkg/afero"
	testingPkg "github.com/kubeflow/testing/pkg/testing"
)

func newTestCLI(token string) (*CLI, *testingPkg.FakeCommandFactory, *testingPkg.FakeEnvRepository) {
	factory := &testingPkg.FakeCommandFactory{Results: map[string]testingPkg.FakeResult{}}
	envRepo := testingPkg.NewFakeEnvRepository()
	cli := New(factory, envRepo, afero.NewOsFs(), token, testingPkg.SetupMockLogger())
	return cli, factory, envRepo
}

// seedBundleDirs creates the directory layout that a real ks init and pkg
// install would have produced, since the fake runner touches nothing.
func seedBundleDirs(t *testing.T, testDir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(testDir, AppName, "vendor", "kubeflow"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(testDir, "src", "kubeflow", "kubeflow", "kubeflow"), 0o755))
}

func TestInitApp(t *testing.T) {
	t.Run("runs init, registry add and installs in order", func(t *testing.T) {
		testDir := t.TempDir()
		seedBundleDirs(t, testDir)
		cli, factory, _ := newTestCLI("")

		app, err := cli.InitApp(testDir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(testDir, AppName), app.Dir)

		assert.Equal(t, []string{
			"ks init kubeflow-test",
			"ks registry add kubeflow github.com/kubeflow/kubeflow/tree/master/kubeflow",
			"ks pkg install kubeflow/core",
			"ks pkg install kubeflow/tf-serving",
			"ks pkg install kubeflow/tf-job",
		}, factory.CommandLines())

		assert.Equal(t, testDir, factory.Commands[0].Opts.Dir)
		assert.Equal(t, app.Dir, factory.Commands[1].Opts.Dir)
	})

	t.Run("replaces vendor subtree with a symlink", func(t *testing.T) {
		testDir := t.TempDir()
		seedBundleDirs(t, testDir)
		vendorDir := filepath.Join(testDir, AppName, "vendor", "kubeflow")
		require.NoError(t, os.WriteFile(filepath.Join(vendorDir, "pinned.libsonnet"), []byte("{}"), 0o644))
		cli, _, _ := newTestCLI("")

		_, err := cli.InitApp(testDir)
		require.NoError(t, err)

		link, err := os.Readlink(vendorDir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(testDir, "src", "kubeflow", "kubeflow", "kubeflow"), link)
	})

	t.Run("fails when the local source tree is missing", func(t *testing.T) {
		testDir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(testDir, AppName, "vendor", "kubeflow"), 0o755))
		cli, _, _ := newTestCLI("")

		_, err := cli.InitApp(testDir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "can't override vendor")
	})

	t.Run("threads the github token into every invocation", func(t *testing.T) {
		testDir := t.TempDir()
		seedBundleDirs(t, testDir)
		cli, factory, _ := newTestCLI("gh-token-123")

		_, err := cli.InitApp(testDir)
		require.NoError(t, err)

		for _, cmd := range factory.Commands {
			require.NotNil(t, cmd.Opts)
			assert.Equal(t, []string{"GITHUB_TOKEN=gh-token-123"}, cmd.Opts.Env)
		}
	})

	t.Run("no token leaves the command env alone", func(t *testing.T) {
		testDir := t.TempDir()
		seedBundleDirs(t, testDir)
		cli, factory, _ := newTestCLI("")

		_, err := cli.InitApp(testDir)
		require.NoError(t, err)
		assert.Nil(t, factory.Commands[0].Opts.Env)
	})
}

func TestGenerate(t *testing.T) {
	app, factory := newTestApp("/tmp/app")

	require.NoError(t, app.Generate("core", "kubeflow-core", "--name=kubeflow-core", "--namespace=e2e-test-1"))
	require.Len(t, factory.Commands, 1)
	assert.Equal(t, []string{
		"generate", "core", "kubeflow-core", "--name=kubeflow-core", "--namespace=e2e-test-1",
	}, factory.Commands[0].Args)
}
