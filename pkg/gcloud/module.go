package gcloud

import (
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"go.uber.org/fx"

	"github.com/kubeflow/testing/pkg/logging"
)

type cliParams struct {
	fx.In

	Logger  logging.Interface
	Factory command.Factory
	EnvRepo env.Repository
}

var Module = fx.Provide(
	func(params cliParams) *CLI {
		return New(params.Factory, params.EnvRepo, params.Logger)
	})
