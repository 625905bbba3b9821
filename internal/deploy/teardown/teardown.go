// Package teardown removes the test namespace. Deletion is fire-and-forget:
// the cluster API owns cascade semantics and its errors surface unchanged.
package teardown

import (
	"context"

	"github.com/kubeflow/testing/pkg/kube"
	"github.com/kubeflow/testing/pkg/logging"
)

type Workflow struct {
	logger logging.Interface
	Config Config
}

// NewWorkflow constructs the teardown workflow from the given configuration.
func NewWorkflow(config *Config) (*Workflow, error) {
	return &Workflow{
		logger: config.AnotherLogger,
		Config: *config,
	}, nil
}

// Run deletes the namespace.
func (w *Workflow) Run(ctx context.Context) error {
	return kube.DeleteNamespace(ctx, w.Config.Client, w.Config.Namespace, w.logger)
}
