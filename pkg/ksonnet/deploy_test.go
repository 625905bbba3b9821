package ksonnet

import (
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kubeflow/testing/pkg/afero"
	testingPkg "github.com/kubeflow/testing/pkg/testing"
)

func newTestApp(dir string) (*App, *testingPkg.FakeCommandFactory) {
	factory := &testingPkg.FakeCommandFactory{Results: map[string]testingPkg.FakeResult{}}
	cli := New(factory, testingPkg.NewFakeEnvRepository(), afero.NewOsFs(), "", testingPkg.SetupMockLogger())
	return &App{Dir: dir, cli: cli}, factory
}

func TestParseParams(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		params, err := ParseParams("namespace=foo,replicas=2")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"namespace": "foo", "replicas": "2"}, params)
	})

	t.Run("splits on first equals only", func(t *testing.T) {
		params, err := ParseParams("modelPath=gs://bucket/a=b")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"modelPath": "gs://bucket/a=b"}, params)
	})

	t.Run("last write wins on repeated keys", func(t *testing.T) {
		params, err := ParseParams("replicas=1,replicas=3")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"replicas": "3"}, params)
	})

	t.Run("malformed pair", func(t *testing.T) {
		_, err := ParseParams("namespace=foo,oops")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"oops"`)
	})

	t.Run("all malformed pairs reported", func(t *testing.T) {
		_, err := ParseParams("one,two")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"one"`)
		assert.Contains(t, err.Error(), `"two"`)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := ParseParams("")
		assert.Error(t, err)
	})
}

func TestNewEnvName(t *testing.T) {
	t.Run("format", func(t *testing.T) {
		TimeNowFunc = func() time.Time {
			return time.Date(2018, 3, 14, 15, 9, 0, 0, time.UTC)
		}
		defer func() { TimeNowFunc = time.Now }()

		name := NewEnvName()
		assert.True(t, strings.HasPrefix(name, "e2e-0314-1509-"), name)
		assert.Len(t, name, len("e2e-0314-1509-")+4)
	})

	t.Run("distinct within the same second", func(t *testing.T) {
		assert.NotEqual(t, NewEnvName(), NewEnvName())
	})
}

func TestDeploy(t *testing.T) {
	t.Run("rejects empty component", func(t *testing.T) {
		app, factory := newTestApp("/tmp/app")
		err := app.Deploy("", map[string]string{}, "", "")
		require.Error(t, err)
		assert.Empty(t, factory.Commands)
	})

	t.Run("rejects nil params", func(t *testing.T) {
		app, factory := newTestApp("/tmp/app")
		err := app.Deploy("modelServer", nil, "", "")
		require.Error(t, err)
		assert.Empty(t, factory.Commands)
	})

	t.Run("env add, param set, apply", func(t *testing.T) {
		app, factory := newTestApp("/tmp/app")
		params := map[string]string{"namespace": "e2e-test-1", "replicas": "2"}

		require.NoError(t, app.Deploy("modelServer", params, "default", ""))

		lines := factory.CommandLines()
		require.Len(t, lines, 4)
		assert.Equal(t, "ks env add default", lines[0])

		paramLines := append([]string{}, lines[1:3]...)
		sort.Strings(paramLines)
		assert.Equal(t, []string{
			"ks param set --env=default modelServer namespace e2e-test-1",
			"ks param set --env=default modelServer replicas 2",
		}, paramLines)

		assert.Equal(t, "ks apply default -c modelServer", lines[3])

		for _, cmd := range factory.Commands {
			require.NotNil(t, cmd.Opts)
			assert.Equal(t, "/tmp/app", cmd.Opts.Dir)
		}
	})

	t.Run("synthesizes env name when empty", func(t *testing.T) {
		app, factory := newTestApp("/tmp/app")

		require.NoError(t, app.Deploy("modelServer", map[string]string{}, "", ""))

		require.Len(t, factory.Commands, 2)
		envName := factory.Commands[0].Args[2]
		assert.True(t, strings.HasPrefix(envName, "e2e-"), envName)
		assert.Equal(t, []string{"apply", envName, "-c", "modelServer"}, factory.Commands[1].Args)
	})

	t.Run("impersonates the account on apply", func(t *testing.T) {
		app, factory := newTestApp("/tmp/app")

		require.NoError(t, app.Deploy("modelServer", map[string]string{}, "default", "sa@project.iam"))

		last := factory.Commands[len(factory.Commands)-1]
		assert.Equal(t, []string{"apply", "default", "-c", "modelServer", "--as=sa@project.iam"}, last.Args)
	})
}
