// Package gcloud wraps the gcloud CLI for the handful of operations the
// deploy tester needs: credential configuration for a named GKE cluster,
// service-account activation, and account diagnostics.
package gcloud

import (
	"fmt"

	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"

	"github.com/kubeflow/testing/pkg/logging"
)

// CredentialsEnvVar points at a service-account key file. When set, the key
// is activated before any other gcloud call so that CI runs don't depend on
// a pre-authenticated environment.
const CredentialsEnvVar = "GOOGLE_APPLICATION_CREDENTIALS"

// CLI invokes the gcloud binary.
type CLI struct {
	logger  logging.Interface
	factory command.Factory
	envRepo env.Repository
}

// New returns a gcloud CLI wrapper.
func New(factory command.Factory, envRepo env.Repository, logger logging.Interface) *CLI {
	return &CLI{
		logger:  logger,
		factory: factory,
		envRepo: envRepo,
	}
}

func (c *CLI) run(args ...string) error {
	cmd := c.factory.Create("gcloud", args, nil)
	c.logger.Infof("Running: %s", cmd.PrintableCommandArgs())

	out, err := cmd.RunAndReturnTrimmedCombinedOutput()
	if out != "" {
		c.logger.Info(out)
	}
	if err != nil {
		return fmt.Errorf("gcloud %s failed: %w", args[0], err)
	}
	return nil
}

// ConfigList prints the active gcloud configuration. It is a diagnostic aid
// for account and credential issues and its output is only logged.
func (c *CLI) ConfigList() error {
	return c.run("config", "list")
}

// GetCredentials configures local cluster access credentials for the named
// cluster, the equivalent of pointing kubectl at it.
func (c *CLI) GetCredentials(project, zone, cluster string) error {
	c.logger.Infof("Configuring credentials for cluster %s in project %s zone %s", cluster, project, zone)
	return c.run("container", "clusters", "get-credentials", cluster,
		"--project="+project, "--zone="+zone)
}

// MaybeActivateServiceAccount activates the service account named by
// GOOGLE_APPLICATION_CREDENTIALS when it is set and is a no-op otherwise.
func (c *CLI) MaybeActivateServiceAccount() error {
	keyFile := c.envRepo.Get(CredentialsEnvVar)
	if keyFile == "" {
		c.logger.Debugf("%s not set; skipping service account activation", CredentialsEnvVar)
		return nil
	}

	c.logger.Infof("Activating service account from %s", keyFile)
	return c.run("auth", "activate-service-account", "--key-file="+keyFile)
}
