// Package ksonnet wraps the ks CLI: bundle initialization, component
// generation, environment management, parameter setting and apply.
package ksonnet

import (
	"fmt"

	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"

	"github.com/kubeflow/testing/pkg/afero"
	"github.com/kubeflow/testing/pkg/logging"
)

const (
	// AppName is the name of the templated application bundle.
	AppName = "kubeflow-test"

	// RegistryName and RegistryURI identify the package registry the
	// bundle installs from.
	RegistryName = "kubeflow"
	RegistryURI  = "github.com/kubeflow/kubeflow/tree/master/kubeflow"

	repoOrg      = "kubeflow"
	repoName     = "kubeflow"
	registryPath = "kubeflow"

	// TokenEnvVar carries the GitHub API token into ks invocations. The ks
	// registry commands hit the GitHub API and get rate limited without it.
	TokenEnvVar = "GITHUB_TOKEN"
)

// Packages are installed into the bundle in order; later installs depend on
// earlier ones having populated shared registry state.
var Packages = []string{"kubeflow/core", "kubeflow/tf-serving", "kubeflow/tf-job"}

// CLI invokes the ks binary. A non-empty githubToken is threaded into every
// invocation's environment rather than set process-wide.
type CLI struct {
	logger      logging.Interface
	factory     command.Factory
	envRepo     env.Repository
	fs          afero.Fs
	githubToken string
}

// New returns a ks CLI wrapper.
func New(factory command.Factory, envRepo env.Repository, fs afero.Fs, githubToken string, logger logging.Interface) *CLI {
	return &CLI{
		logger:      logger,
		factory:     factory,
		envRepo:     envRepo,
		fs:          fs,
		githubToken: githubToken,
	}
}

func (c *CLI) commandEnv() []string {
	if c.githubToken == "" {
		return nil
	}
	return []string{TokenEnvVar + "=" + c.githubToken}
}

func (c *CLI) run(dir string, args ...string) error {
	cmd := c.factory.Create("ks", args, &command.Opts{
		Dir: dir,
		Env: c.commandEnv(),
	})
	c.logger.Infof("Running: %s (dir=%s)", cmd.PrintableCommandArgs(), dir)

	out, err := cmd.RunAndReturnTrimmedCombinedOutput()
	if out != "" {
		c.logger.Info(out)
	}
	if err != nil {
		return fmt.Errorf("ks %s failed: %w", args[0], err)
	}
	return nil
}
