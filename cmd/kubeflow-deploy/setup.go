package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/kubeflow/testing/internal/deploy/setup"
	"github.com/kubeflow/testing/pkg/afero"
	"github.com/kubeflow/testing/pkg/gcloud"
	"github.com/kubeflow/testing/pkg/ksonnet"
	"github.com/kubeflow/testing/pkg/kube"
	"github.com/kubeflow/testing/pkg/logging"
	"github.com/kubeflow/testing/pkg/shell"
)

// SetupWorkflow implements the WorkflowModule interface for the initial deployment
type SetupWorkflow struct {
	workflow *setup.Workflow
}

// Name returns the name of the workflow
func (s *SetupWorkflow) Name() string {
	return "setup"
}

// ShortDescription returns a short description of the workflow
func (s *SetupWorkflow) ShortDescription() string {
	return "Deploy Kubeflow to the test cluster"
}

// LongDescription returns a detailed description of the workflow
func (s *SetupWorkflow) LongDescription() string {
	return "Provision the test namespace, build the templated application bundle, deploy the core components and wait for their workloads to become ready"
}

// ConfigureCommand configures the workflow command
func (s *SetupWorkflow) ConfigureCommand(cmd *cobra.Command) {
	cmd.Run = func(cmd *cobra.Command, args []string) {
		runWorkflowCommand(cmd, s)
	}
}

// FxModules returns the fx modules needed by this workflow
func (s *SetupWorkflow) FxModules() []fx.Option {
	return []fx.Option{
		logging.Module,
		afero.Module,
		shell.Module,
		gcloud.Module,
		kube.Module,
		ksonnet.Module,
		setup.Module,
		fx.Populate(&s.workflow),
	}
}

// Run runs the workflow
func (s *SetupWorkflow) Run(ctx context.Context) error {
	return s.workflow.Run(ctx)
}

// NewSetupWorkflow creates a new setup workflow module
func NewSetupWorkflow() *SetupWorkflow {
	return &SetupWorkflow{}
}
