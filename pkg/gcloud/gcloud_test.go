package gcloud

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testingPkg "github.com/kubeflow/testing/pkg/testing"
)

func newTestCLI() (*CLI, *testingPkg.FakeCommandFactory, *testingPkg.FakeEnvRepository) {
	factory := &testingPkg.FakeCommandFactory{Results: map[string]testingPkg.FakeResult{}}
	envRepo := testingPkg.NewFakeEnvRepository()
	return New(factory, envRepo, testingPkg.SetupMockLogger()), factory, envRepo
}

func TestGetCredentials(t *testing.T) {
	cli, factory, _ := newTestCLI()

	require.NoError(t, cli.GetCredentials("mlkube-testing", "us-east1-d", "e2e-cluster"))
	require.Len(t, factory.Commands, 1)
	assert.Equal(t, []string{
		"container", "clusters", "get-credentials", "e2e-cluster",
		"--project=mlkube-testing", "--zone=us-east1-d",
	}, factory.Commands[0].Args)
}

func TestGetCredentialsFailure(t *testing.T) {
	cli, factory, _ := newTestCLI()
	factory.Results["gcloud container clusters get-credentials e2e-cluster --project=p --zone=z"] =
		testingPkg.FakeResult{Err: errors.New("permission denied")}

	err := cli.GetCredentials("p", "z", "e2e-cluster")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gcloud container failed")
}

func TestMaybeActivateServiceAccount(t *testing.T) {
	t.Run("skips without credentials", func(t *testing.T) {
		cli, factory, _ := newTestCLI()
		require.NoError(t, cli.MaybeActivateServiceAccount())
		assert.Empty(t, factory.Commands)
	})

	t.Run("activates the key file", func(t *testing.T) {
		cli, factory, envRepo := newTestCLI()
		require.NoError(t, envRepo.Set(CredentialsEnvVar, "/secrets/key.json"))

		require.NoError(t, cli.MaybeActivateServiceAccount())
		require.Len(t, factory.Commands, 1)
		assert.Equal(t, []string{
			"auth", "activate-service-account", "--key-file=/secrets/key.json",
		}, factory.Commands[0].Args)
	})
}

func TestConfigList(t *testing.T) {
	cli, factory, _ := newTestCLI()
	factory.Results["gcloud config list"] = testingPkg.FakeResult{Output: "[core]\naccount = ci@example.iam\n"}

	require.NoError(t, cli.ConfigList())
	require.Len(t, factory.Commands, 1)
	assert.Equal(t, []string{"config", "list"}, factory.Commands[0].Args)
}
