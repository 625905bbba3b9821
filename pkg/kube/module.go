package kube

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/fx"
	"k8s.io/client-go/kubernetes"

	"github.com/kubeflow/testing/pkg/gcloud"
	"github.com/kubeflow/testing/pkg/logging"
)

// Module provides the clientset for the configured cluster and a readiness
// verifier bound to it.
var Module = fx.Provide(
	func(v *viper.Viper, g *gcloud.CLI, logger logging.Interface) (kubernetes.Interface, error) {
		var cfg ClusterConfig
		if err := v.Unmarshal(&cfg); err != nil {
			return nil, fmt.Errorf("error unmarshalling cluster config: %w", err)
		}
		return NewClient(cfg, g, logger)
	},
	func(client kubernetes.Interface, logger logging.Interface) *Verifier {
		return NewVerifier(client, logger)
	},
)
