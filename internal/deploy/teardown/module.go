package teardown

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/fx"
	"k8s.io/client-go/kubernetes"

	"github.com/kubeflow/testing/pkg/logging"
)

type teardownParams struct {
	fx.In

	Logger logging.Interface
	Client kubernetes.Interface
}

var Module = fx.Provide(
	func(v *viper.Viper, params teardownParams) (*Workflow, error) {
		config, err := NewTeardownConfig(
			WithViper(v),
			WithAnotherLog(params.Logger),
			WithAppParams(params),
		)
		if err != nil {
			return nil, fmt.Errorf("error creating teardown config: %+v", err)
		}
		if err := config.Validate(); err != nil {
			return nil, fmt.Errorf("invalid teardown config: %+v", err)
		}
		return NewWorkflow(config)
	})
