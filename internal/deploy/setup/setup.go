// Package setup deploys the core platform into a namespace and verifies
// its workloads come up.
package setup

import (
	"context"

	"github.com/kubeflow/testing/pkg/kube"
	"github.com/kubeflow/testing/pkg/logging"
)

const (
	corePrototype = "core"
	coreComponent = "kubeflow-core"

	// defaultEnv is the environment ks init creates; the core component is
	// applied through it.
	defaultEnv = "default"

	// operatorDeployment and hubStatefulSet are the workloads whose
	// readiness proves the core deployment worked.
	operatorDeployment = "tf-job-operator"
	hubStatefulSet     = "tf-hub"
)

type Workflow struct {
	logger logging.Interface
	Config Config
}

// NewWorkflow constructs the setup workflow from the given configuration.
func NewWorkflow(config *Config) (*Workflow, error) {
	return &Workflow{
		logger: config.AnotherLogger,
		Config: *config,
	}, nil
}

// Run provisions the namespace, initializes the application bundle, applies
// the core component and waits for the operator and hub workloads.
func (w *Workflow) Run(ctx context.Context) error {
	if _, err := kube.EnsureNamespace(ctx, w.Config.Client, w.Config.Namespace, w.logger); err != nil {
		return err
	}

	app, err := w.Config.Ksonnet.InitApp(w.Config.TestDir)
	if err != nil {
		return err
	}

	if err := app.Generate(corePrototype, coreComponent,
		"--name="+coreComponent, "--namespace="+w.Config.Namespace); err != nil {
		return err
	}

	// Bundle initialization can leave stale credentials behind; without
	// re-configuring access the apply fails with rbac errors.
	if w.Config.Cluster != "" {
		if err := w.Config.Gcloud.GetCredentials(w.Config.Project, w.Config.Zone, w.Config.Cluster); err != nil {
			return err
		}
	}

	if err := app.Apply(defaultEnv, coreComponent, ""); err != nil {
		return err
	}

	w.logger.Info("Verifying TfJob controller started")
	if err := w.Config.Verifier.WaitForDeployment(ctx, w.Config.Namespace, operatorDeployment); err != nil {
		return err
	}

	w.logger.Info("Verifying TfHub started")
	return w.Config.Verifier.WaitForStatefulSet(ctx, w.Config.Namespace, hubStatefulSet)
}
