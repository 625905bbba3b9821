package setup

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/fx"
	"k8s.io/client-go/kubernetes"

	"github.com/kubeflow/testing/pkg/gcloud"
	"github.com/kubeflow/testing/pkg/ksonnet"
	"github.com/kubeflow/testing/pkg/kube"
	"github.com/kubeflow/testing/pkg/logging"
)

type setupParams struct {
	fx.In

	Logger   logging.Interface
	Client   kubernetes.Interface
	Verifier *kube.Verifier
	Gcloud   *gcloud.CLI
	Ksonnet  *ksonnet.CLI
}

var Module = fx.Provide(
	func(v *viper.Viper, params setupParams) (*Workflow, error) {
		config, err := NewSetupConfig(
			WithViper(v),
			WithAnotherLog(params.Logger),
			WithAppParams(params),
		)
		if err != nil {
			return nil, fmt.Errorf("error creating setup config: %+v", err)
		}
		if err := config.Validate(); err != nil {
			return nil, fmt.Errorf("invalid setup config: %+v", err)
		}
		return NewWorkflow(config)
	})
