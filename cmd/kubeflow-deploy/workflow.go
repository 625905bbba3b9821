package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/kubeflow/testing/pkg/junit"
)

var configFilePath string
var debug bool

// WorkflowModule represents a deploy workflow that can be run by the test framework
type WorkflowModule interface {
	Name() string
	ShortDescription() string
	LongDescription() string
	FxModules() []fx.Option

	// ConfigureCommand Allow workflows to configure their commands (custom flags, etc.)
	ConfigureCommand(*cobra.Command)

	// Run executes the workflow.
	Run(ctx context.Context) error
}

// CreateWorkflowCommand creates a cobra command for a workflow module
func CreateWorkflowCommand(module WorkflowModule) *cobra.Command {
	cmd := &cobra.Command{
		Use:   module.Name(),
		Short: module.ShortDescription(),
		Long:  module.LongDescription(),
	}

	// Let the module configure its command (set Run function, custom flags, etc.)
	module.ConfigureCommand(cmd)

	return cmd
}

// runWorkflowCommand runs a workflow module and records its outcome as a
// JUnit test case. The report is written under artifacts_dir no matter how
// the run ends, so the CI result collector always sees an entry for it.
func runWorkflowCommand(cmd *cobra.Command, module WorkflowModule) {
	artifactsDir, err := prepareRunDirs(cmd, module)
	if err != nil {
		cmd.PrintErrf("ERROR: %v\n", err)
		os.Exit(1)
	}

	testCase := junit.NewTestCase("KubeFlow", "deploy-kubeflow-"+module.Name())
	junitPath := filepath.Join(artifactsDir, "junit_kubeflow-deploy-"+module.Name()+".xml")

	options := []fx.Option{
		// Set up all config variables to viper
		configProvider(cmd, module),
	}

	// Add module-specific options
	options = append(options, module.FxModules()...)

	// Add lifecycle hooks
	options = append(options, fx.Invoke(func(lc fx.Lifecycle, l *zap.Logger, sh fx.Shutdowner) {
		lc.Append(
			fx.Hook{
				OnStart: func(context.Context) error {
					go func() {
						err := junit.Wrap(func() error {
							return module.Run(context.Background())
						}, testCase)

						if writeErr := junit.CreateXMLFile([]*junit.TestCase{testCase}, junitPath); writeErr != nil {
							l.Error("Failed to write the test report", zap.Error(writeErr))
						}
						l.Info("Wrote the test report", zap.String("path", junitPath))

						if err != nil {
							l.Error(module.Name()+" encountered an error during execution", zap.Error(err))
							os.Exit(1)
						}
						if err := sh.Shutdown(); err != nil {
							l.Error("Failed to shutdown "+module.Name(), zap.Error(err))
						}
					}()
					return nil
				},
				OnStop: func(ctx context.Context) error {
					return nil
				},
			})
	}))

	app := fx.New(fx.Options(options...))
	if err := app.Err(); err != nil {
		// Construction failed before the workflow could run. The run still
		// has to show up as a failure in the report.
		testCase.Failure = &junit.Failure{Message: "Test failed", Content: err.Error()}
		if writeErr := junit.CreateXMLFile([]*junit.TestCase{testCase}, junitPath); writeErr != nil {
			cmd.PrintErrf("ERROR: failed to write the test report: %v\n", writeErr)
		}
		cmd.PrintErrf("ERROR: %v\n", err)
		os.Exit(1)
	}
	app.Run()
	if err := app.Stop(context.Background()); err != nil {
		return
	}
}
