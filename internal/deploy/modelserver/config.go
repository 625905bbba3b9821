package modelserver

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"k8s.io/client-go/kubernetes"

	"github.com/kubeflow/testing/internal/deploy/common"
	"github.com/kubeflow/testing/pkg/configutils"
	"github.com/kubeflow/testing/pkg/ksonnet"
	"github.com/kubeflow/testing/pkg/kube"
	"github.com/kubeflow/testing/pkg/logging"
)

type Config struct {
	AnotherLogger logging.Interface

	common.Context `mapstructure:",squash"`

	// Params is the raw comma-separated k=v list from --params. It must
	// contain a namespace key; parsing happens before any deploy attempt.
	Params string `mapstructure:"params"`

	Client   kubernetes.Interface `validate:"required"`
	Verifier *kube.Verifier       `validate:"required"`
	Ksonnet  *ksonnet.CLI         `validate:"required"`
}

type Option func(*Config) error

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

// NewModelServerConfig builds and returns a new configuration from the given options.
func NewModelServerConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}

	return c, nil
}

func WithAppParams(params modelServerParams) Option {
	return func(c *Config) error {
		c.Client = params.Client
		c.Verifier = params.Verifier
		c.Ksonnet = params.Ksonnet
		return nil
	}
}

func WithAnotherLog(logger logging.Interface) Option {
	return func(c *Config) error {
		c.AnotherLogger = logger
		return nil
	}
}

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
