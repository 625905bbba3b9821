// Package shell provides the command factory and environment repository
// used to invoke external CLIs (ks, gcloud).
package shell

import (
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"go.uber.org/fx"
)

var Module fx.Option = fx.Provide(
	func() env.Repository { return env.NewRepository() },
	func(envRepo env.Repository) command.Factory { return command.NewFactory(envRepo) },
)
