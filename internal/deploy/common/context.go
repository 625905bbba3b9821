// Package common holds the run context shared by all deploy workflows.
package common

// Context is the shared run context parsed from CLI flags. It is read-only
// after parsing.
type Context struct {
	// TestDir holds all files of one test run. Defaults to a generated
	// temp path when unset on the command line.
	TestDir string `mapstructure:"test_dir" validate:"required"`

	// ArtifactsDir receives logs and reports that outlive the run.
	// Defaults to TestDir.
	ArtifactsDir string `mapstructure:"artifacts_dir" validate:"required"`

	// Namespace is the cluster namespace the workflows operate in.
	Namespace string `mapstructure:"namespace" validate:"required"`

	Project string `mapstructure:"project"`

	// Cluster names the target cluster. Empty means the process runs
	// inside the cluster it should talk to.
	Cluster string `mapstructure:"cluster"`

	Zone string `mapstructure:"zone"`

	// GithubToken is threaded into ks invocations; see pkg/ksonnet.
	GithubToken string `mapstructure:"github_token"`
}
