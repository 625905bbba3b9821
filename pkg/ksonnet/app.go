package ksonnet

import (
	"fmt"
	"path/filepath"
)

// App is an initialized application bundle on disk.
type App struct {
	// Dir is the bundle root, <test_dir>/kubeflow-test.
	Dir string

	cli *CLI
}

// InitApp creates the application bundle inside testDir: ks init, registry
// registration, package installation and the vendor override. Each step is
// fatal on failure; no rollback is attempted.
func (c *CLI) InitApp(testDir string) (*App, error) {
	if err := c.fs.MkdirAll(testDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating test directory %s: %w", testDir, err)
	}
	c.logger.Infof("Using test directory: %s", testDir)

	if c.githubToken == "" && c.envRepo.Get(TokenEnvVar) == "" {
		c.logger.Warnf("%s not set; you will probably hit GitHub API limits", TokenEnvVar)
	}

	if err := c.run(testDir, "init", AppName); err != nil {
		return nil, err
	}

	app := &App{
		Dir: filepath.Join(testDir, AppName),
		cli: c,
	}

	if err := c.run(app.Dir, "registry", "add", RegistryName, RegistryURI); err != nil {
		return nil, err
	}

	for _, pkg := range Packages {
		if err := c.run(app.Dir, "pkg", "install", pkg); err != nil {
			return nil, err
		}
	}

	if err := c.overrideVendor(testDir, app.Dir); err != nil {
		return nil, err
	}

	return app, nil
}

// overrideVendor replaces the installed vendor subtree with a symlink to the
// locally checked-out source so the code under test is exercised instead of
// the pinned package version. The source tree must already exist.
func (c *CLI) overrideVendor(testDir, appDir string) error {
	target := filepath.Join(appDir, "vendor", registryPath)
	source := filepath.Join(testDir, "src", repoOrg, repoName, registryPath)

	if _, err := c.fs.Stat(source); err != nil {
		return fmt.Errorf("local source tree %s not found, can't override vendor: %w", source, err)
	}

	c.logger.Infof("Deleting %s", target)
	if err := c.fs.RemoveAll(target); err != nil {
		return fmt.Errorf("removing vendor subtree %s: %w", target, err)
	}

	c.logger.Infof("Creating link %s -> %s", target, source)
	if err := c.fs.SymlinkIfPossible(source, target); err != nil {
		return fmt.Errorf("linking %s to %s: %w", target, source, err)
	}
	return nil
}

// Generate instantiates a prototype as a named component inside the bundle.
func (a *App) Generate(prototype, component string, extraArgs ...string) error {
	args := append([]string{"generate", prototype, component}, extraArgs...)
	return a.cli.run(a.Dir, args...)
}

// EnvAdd registers a deployment environment.
func (a *App) EnvAdd(envName string) error {
	return a.cli.run(a.Dir, "env", "add", envName)
}

// ParamSet sets one component parameter within an environment.
func (a *App) ParamSet(envName, component, key, value string) error {
	return a.cli.run(a.Dir, "param", "set", "--env="+envName, component, key, value)
}

// Apply applies the environment/component pair to the cluster, optionally
// impersonating the given account.
func (a *App) Apply(envName, component, account string) error {
	args := []string{"apply", envName, "-c", component}
	if account != "" {
		args = append(args, "--as="+account)
	}
	return a.cli.run(a.Dir, args...)
}
