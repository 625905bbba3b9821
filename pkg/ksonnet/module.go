package ksonnet

import (
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/spf13/viper"
	"go.uber.org/fx"

	"github.com/kubeflow/testing/pkg/afero"
	"github.com/kubeflow/testing/pkg/logging"
)

type cliParams struct {
	fx.In

	Logger  logging.Interface
	Factory command.Factory
	EnvRepo env.Repository
	Fs      afero.Fs
}

var Module = fx.Provide(
	func(v *viper.Viper, params cliParams) *CLI {
		token := v.GetString("github_token")
		if token == "" {
			token = params.EnvRepo.Get(TokenEnvVar)
		}
		return New(params.Factory, params.EnvRepo, params.Fs, token, params.Logger)
	})
