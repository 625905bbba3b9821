// Package modelserver deploys a single model-serving component with
// caller-supplied parameters and verifies it is reachable.
package modelserver

import (
	"context"
	"errors"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/kubeflow/testing/pkg/ksonnet"
	"github.com/kubeflow/testing/pkg/kube"
	"github.com/kubeflow/testing/pkg/logging"
)

const (
	servingPrototype = "tf-serving"
	servingComponent = "modelServer"

	// serviceName is the fixed instance name the component is generated
	// with; the Service and its backing Deployment share it.
	serviceName = "inception"
)

type Workflow struct {
	logger logging.Interface
	Config Config
}

// NewWorkflow constructs the model-server workflow from the given configuration.
func NewWorkflow(config *Config) (*Workflow, error) {
	return &Workflow{
		logger: config.AnotherLogger,
		Config: *config,
	}, nil
}

// Run provisions the namespace, initializes the bundle, deploys the serving
// component with the caller's parameters into a synthesized environment and
// verifies the resulting Service and Deployment.
func (w *Workflow) Run(ctx context.Context) error {
	if _, err := kube.EnsureNamespace(ctx, w.Config.Client, w.Config.Namespace, w.logger); err != nil {
		return err
	}

	app, err := w.Config.Ksonnet.InitApp(w.Config.TestDir)
	if err != nil {
		return err
	}

	w.logger.Info("Deploying tf-serving")
	if err := app.Generate(servingPrototype, servingComponent, "--name="+serviceName); err != nil {
		return err
	}

	params, err := ksonnet.ParseParams(w.Config.Params)
	if err != nil {
		return err
	}

	namespace, ok := params["namespace"]
	if !ok {
		return errors.New("namespace must be supplied via --params")
	}

	// Empty env forces a synthesized one, so concurrent runs sharing a
	// bundle template don't clash.
	if err := app.Deploy(servingComponent, params, "", ""); err != nil {
		return err
	}

	service, err := w.Config.Client.CoreV1().Services(w.Config.Namespace).Get(ctx, serviceName, metav1.GetOptions{})
	if err != nil {
		return fmt.Errorf("reading service %s/%s: %w", w.Config.Namespace, serviceName, err)
	}
	if service.Spec.ClusterIP == "" {
		return fmt.Errorf("%s service wasn't assigned a cluster ip", serviceName)
	}

	if err := w.Config.Verifier.WaitForDeployment(ctx, namespace, serviceName); err != nil {
		return err
	}
	w.logger.Info("Verified TF serving started")
	return nil
}
