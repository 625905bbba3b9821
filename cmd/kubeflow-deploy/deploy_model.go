package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/kubeflow/testing/internal/deploy/modelserver"
	"github.com/kubeflow/testing/pkg/afero"
	"github.com/kubeflow/testing/pkg/gcloud"
	"github.com/kubeflow/testing/pkg/ksonnet"
	"github.com/kubeflow/testing/pkg/kube"
	"github.com/kubeflow/testing/pkg/logging"
	"github.com/kubeflow/testing/pkg/shell"
)

// DeployModelWorkflow implements the WorkflowModule interface for deploying a model server
type DeployModelWorkflow struct {
	workflow *modelserver.Workflow
}

// Name returns the name of the workflow
func (s *DeployModelWorkflow) Name() string {
	return "deploy_model"
}

// ShortDescription returns a short description of the workflow
func (s *DeployModelWorkflow) ShortDescription() string {
	return "Deploy a model server into the test namespace"
}

// LongDescription returns a detailed description of the workflow
func (s *DeployModelWorkflow) LongDescription() string {
	return "Generate a model server component from the serving prototype, deploy it and verify the service and its backing workload"
}

// ConfigureCommand configures the workflow command
func (s *DeployModelWorkflow) ConfigureCommand(cmd *cobra.Command) {
	cmd.Flags().String("params", "",
		"Comma separated list of key=value pairs to set on the model server component; must include namespace.")

	cmd.Run = func(cmd *cobra.Command, args []string) {
		runWorkflowCommand(cmd, s)
	}
}

// FxModules returns the fx modules needed by this workflow
func (s *DeployModelWorkflow) FxModules() []fx.Option {
	return []fx.Option{
		logging.Module,
		afero.Module,
		shell.Module,
		gcloud.Module,
		kube.Module,
		ksonnet.Module,
		modelserver.Module,
		fx.Populate(&s.workflow),
	}
}

// Run runs the workflow
func (s *DeployModelWorkflow) Run(ctx context.Context) error {
	return s.workflow.Run(ctx)
}

// NewDeployModelWorkflow creates a new model server deployment workflow module
func NewDeployModelWorkflow() *DeployModelWorkflow {
	return &DeployModelWorkflow{}
}
