package modelserver

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/fx"
	"k8s.io/client-go/kubernetes"

	"github.com/kubeflow/testing/pkg/ksonnet"
	"github.com/kubeflow/testing/pkg/kube"
	"github.com/kubeflow/testing/pkg/logging"
)

type modelServerParams struct {
	fx.In

	Logger   logging.Interface
	Client   kubernetes.Interface
	Verifier *kube.Verifier
	Ksonnet  *ksonnet.CLI
}

var Module = fx.Provide(
	func(v *viper.Viper, params modelServerParams) (*Workflow, error) {
		config, err := NewModelServerConfig(
			WithViper(v),
			WithAnotherLog(params.Logger),
			WithAppParams(params),
		)
		if err != nil {
			return nil, fmt.Errorf("error creating model server config: %+v", err)
		}
		if err := config.Validate(); err != nil {
			return nil, fmt.Errorf("invalid model server config: %+v", err)
		}
		return NewWorkflow(config)
	})
