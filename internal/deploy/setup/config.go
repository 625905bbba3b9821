package setup

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"k8s.io/client-go/kubernetes"

	"github.com/kubeflow/testing/internal/deploy/common"
	"github.com/kubeflow/testing/pkg/configutils"
	"github.com/kubeflow/testing/pkg/gcloud"
	"github.com/kubeflow/testing/pkg/ksonnet"
	"github.com/kubeflow/testing/pkg/kube"
	"github.com/kubeflow/testing/pkg/logging"
)

type Config struct {
	AnotherLogger logging.Interface

	common.Context `mapstructure:",squash"`

	Client   kubernetes.Interface `validate:"required"`
	Verifier *kube.Verifier       `validate:"required"`
	Gcloud   *gcloud.CLI          `validate:"required"`
	Ksonnet  *ksonnet.CLI         `validate:"required"`
}

type Option func(*Config) error

// Apply applies the given options to the configuration.
func (c *Config) Apply(opts ...Option) error {
	for _, o := range opts {
		if o == nil {
			continue
		}

		if err := o(c); err != nil {
			return err
		}
	}
	return nil
}

// NewSetupConfig builds and returns a new configuration from the given options.
func NewSetupConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// WithAppParams attempts to resolve the required client objects using injected parameters.
func WithAppParams(params setupParams) Option {
	return func(c *Config) error {
		c.Client = params.Client
		c.Verifier = params.Verifier
		c.Gcloud = params.Gcloud
		c.Ksonnet = params.Ksonnet
		return nil
	}
}

// WithAnotherLog sets the logger for the configuration.
func WithAnotherLog(logger logging.Interface) Option {
	return func(c *Config) error {
		c.AnotherLogger = logger
		return nil
	}
}

// WithViper sets the viper for the configuration.
func WithViper(v *viper.Viper) Option {
	return func(c *Config) error {
		if err := configutils.BindEnvsRecursive(v, c, ""); err != nil {
			return fmt.Errorf("error occurred when binding environment variables: %+v", err)
		}

		if err := v.Unmarshal(c); err != nil {
			return fmt.Errorf("error occurred when unmarshalling config: %+v", err)
		}

		return nil
	}
}

func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	return nil
}
