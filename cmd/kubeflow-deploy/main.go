package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kubeflow/testing/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:     "kubeflow-deploy",
	Short:   "Test Kubeflow E2E",
	Long:    "kubeflow-deploy drives end-to-end deployment tests: it provisions a namespace, applies the templated application bundle to the cluster, waits for the expected workloads and tears everything down afterwards.",
	Version: fmt.Sprintf("gitVersion=%s, gitCommit=%s", version.GitVersion, version.GitCommit),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFilePath, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug mode")

	rootCmd.PersistentFlags().String("test_dir", "",
		"Directory to use for all the test files. If not set a temporary directory is created.")
	rootCmd.PersistentFlags().String("artifacts_dir", "",
		"Directory to use for artifacts that should be preserved after the test runs. Defaults to test_dir if not set.")
	rootCmd.PersistentFlags().String("project", "", "The project to use.")
	rootCmd.PersistentFlags().String("cluster", "",
		"The name of the cluster. If not set assumes the process is running in a cluster and uses that cluster.")
	rootCmd.PersistentFlags().String("namespace", "", "The namespace to use.")
	rootCmd.PersistentFlags().String("zone", "us-east1-d", "The zone for the cluster.")
	rootCmd.PersistentFlags().String("github_token", "",
		"The GitHub API token to use so the templating tool isn't rate limited. Can also be set via GITHUB_TOKEN.")
	_ = rootCmd.MarkPersistentFlagRequired("namespace")

	// Register all workflow commands
	rootCmd.AddCommand(CreateWorkflowCommand(NewSetupWorkflow()))
	rootCmd.AddCommand(CreateWorkflowCommand(NewTeardownWorkflow()))
	rootCmd.AddCommand(CreateWorkflowCommand(NewDeployModelWorkflow()))
}
