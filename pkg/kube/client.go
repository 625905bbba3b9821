// Package kube talks to the cluster API: client construction, namespace
// provisioning and workload readiness checks.
package kube

import (
	"fmt"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/kubeflow/testing/pkg/gcloud"
	"github.com/kubeflow/testing/pkg/logging"
)

// ClusterConfig identifies the cluster a run targets. An empty Cluster means
// the process is running inside the cluster it should talk to.
type ClusterConfig struct {
	Project string `mapstructure:"project"`
	Cluster string `mapstructure:"cluster"`
	Zone    string `mapstructure:"zone"`
}

// NewClient returns a clientset for the target cluster. When a cluster name
// is set, local access credentials are configured through gcloud first and
// the default kubeconfig loading rules apply; otherwise the in-cluster
// service-account mount is used. Any failure is fatal to the run.
func NewClient(cfg ClusterConfig, g *gcloud.CLI, logger logging.Interface) (kubernetes.Interface, error) {
	if err := g.MaybeActivateServiceAccount(); err != nil {
		return nil, err
	}

	restConfig, err := restConfigFor(cfg, g, logger)
	if err != nil {
		return nil, err
	}

	client, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("creating clientset: %w", err)
	}
	return client, nil
}

func restConfigFor(cfg ClusterConfig, g *gcloud.CLI, logger logging.Interface) (*rest.Config, error) {
	if cfg.Cluster != "" {
		logger.Infof("Using cluster: %s in project: %s in zone: %s", cfg.Cluster, cfg.Project, cfg.Zone)

		// Print out config to help debug issues with accounts and credentials.
		if err := g.ConfigList(); err != nil {
			return nil, err
		}
		if err := g.GetCredentials(cfg.Project, cfg.Zone, cfg.Cluster); err != nil {
			return nil, err
		}

		loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
		clientConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, &clientcmd.ConfigOverrides{})

		restConfig, err := clientConfig.ClientConfig()
		if err != nil {
			return nil, fmt.Errorf("loading kubeconfig: %w", err)
		}
		return restConfig, nil
	}

	logger.Info("Running inside cluster; loading in-cluster credentials")
	restConfig, err := rest.InClusterConfig()
	if err != nil {
		return nil, fmt.Errorf("loading in-cluster config: %w", err)
	}
	return restConfig, nil
}
