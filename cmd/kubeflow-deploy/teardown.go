package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/kubeflow/testing/internal/deploy/teardown"
	"github.com/kubeflow/testing/pkg/gcloud"
	"github.com/kubeflow/testing/pkg/kube"
	"github.com/kubeflow/testing/pkg/logging"
	"github.com/kubeflow/testing/pkg/shell"
)

// TeardownWorkflow implements the WorkflowModule interface for cleaning up after a run
type TeardownWorkflow struct {
	workflow *teardown.Workflow
}

// Name returns the name of the workflow
func (s *TeardownWorkflow) Name() string {
	return "teardown"
}

// ShortDescription returns a short description of the workflow
func (s *TeardownWorkflow) ShortDescription() string {
	return "Delete the test namespace"
}

// LongDescription returns a detailed description of the workflow
func (s *TeardownWorkflow) LongDescription() string {
	return "Delete the test namespace and everything deployed into it"
}

// ConfigureCommand configures the workflow command
func (s *TeardownWorkflow) ConfigureCommand(cmd *cobra.Command) {
	cmd.Run = func(cmd *cobra.Command, args []string) {
		runWorkflowCommand(cmd, s)
	}
}

// FxModules returns the fx modules needed by this workflow
func (s *TeardownWorkflow) FxModules() []fx.Option {
	return []fx.Option{
		logging.Module,
		shell.Module,
		gcloud.Module,
		kube.Module,
		teardown.Module,
		fx.Populate(&s.workflow),
	}
}

// Run runs the workflow
func (s *TeardownWorkflow) Run(ctx context.Context) error {
	return s.workflow.Run(ctx)
}

// NewTeardownWorkflow creates a new teardown workflow module
func NewTeardownWorkflow() *TeardownWorkflow {
	return &TeardownWorkflow{}
}
