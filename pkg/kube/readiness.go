package kube

import (
	"context"
	"fmt"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/client-go/kubernetes"

	"github.com/kubeflow/testing/pkg/logging"
)

const (
	// DefaultPollInterval and DefaultMaxAttempts bound readiness polling:
	// 30 attempts at 10s intervals, the budget the e2e pipelines allow a
	// workload to come up in.
	DefaultPollInterval = 10 * time.Second
	DefaultMaxAttempts  = 30
)

// Verifier polls the cluster until named workloads reach a ready state or
// the attempt budget is exhausted. Exhausting the budget is a deployment
// failure, not a soft warning.
type Verifier struct {
	client kubernetes.Interface
	logger logging.Interface

	pollInterval time.Duration
	maxAttempts  int
}

// NewVerifier returns a verifier with the default polling budget.
func NewVerifier(client kubernetes.Interface, logger logging.Interface) *Verifier {
	return &Verifier{
		client:       client,
		logger:       logger,
		pollInterval: DefaultPollInterval,
		maxAttempts:  DefaultMaxAttempts,
	}
}

// WithPolling overrides the polling budget. Zero values keep the defaults.
func (v *Verifier) WithPolling(interval time.Duration, attempts int) *Verifier {
	if interval > 0 {
		v.pollInterval = interval
	}
	if attempts > 0 {
		v.maxAttempts = attempts
	}
	return v
}

func (v *Verifier) timeout() time.Duration {
	return time.Duration(v.maxAttempts) * v.pollInterval
}

// WaitForDeployment polls until the Deployment's ready-replica count
// matches its desired count.
func (v *Verifier) WaitForDeployment(ctx context.Context, namespace, name string) error {
	v.logger.Infof("Waiting for deployment %s/%s to become ready", namespace, name)

	err := wait.PollUntilContextTimeout(ctx, v.pollInterval, v.timeout(), true,
		func(ctx context.Context) (bool, error) {
			deployment, err := v.client.AppsV1().Deployments(namespace).Get(ctx, name, metav1.GetOptions{})
			if err != nil {
				if apierrors.IsNotFound(err) {
					v.logger.Infof("Deployment %s/%s not created yet", namespace, name)
					return false, nil
				}
				return false, err
			}

			desired := int32(1)
			if deployment.Spec.Replicas != nil {
				desired = *deployment.Spec.Replicas
			}
			ready := deployment.Status.ReadyReplicas
			v.logger.Infof("Deployment %s/%s ready replicas: %d/%d", namespace, name, ready, desired)
			return ready == desired, nil
		})
	if err != nil {
		return fmt.Errorf("deployment %s/%s didn't become ready within %s: %w", namespace, name, v.timeout(), err)
	}

	v.logger.Infof("Deployment %s/%s is ready", namespace, name)
	return nil
}

// WaitForStatefulSet polls until the StatefulSet's ready-replica count
// matches its desired count.
func (v *Verifier) WaitForStatefulSet(ctx context.Context, namespace, name string) error {
	v.logger.Infof("Waiting for statefulset %s/%s to become ready", namespace, name)

	err := wait.PollUntilContextTimeout(ctx, v.pollInterval, v.timeout(), true,
		func(ctx context.Context) (bool, error) {
			set, err := v.client.AppsV1().StatefulSets(namespace).Get(ctx, name, metav1.GetOptions{})
			if err != nil {
				if apierrors.IsNotFound(err) {
					v.logger.Infof("Statefulset %s/%s not created yet", namespace, name)
					return false, nil
				}
				return false, err
			}

			desired := int32(1)
			if set.Spec.Replicas != nil {
				desired = *set.Spec.Replicas
			}
			ready := set.Status.ReadyReplicas
			v.logger.Infof("Statefulset %s/%s ready replicas: %d/%d", namespace, name, ready, desired)
			return ready == desired, nil
		})
	if err != nil {
		return fmt.Errorf("statefulset %s/%s didn't become ready within %s: %w", namespace, name, v.timeout(), err)
	}

	v.logger.Infof("Statefulset %s/%s is ready", namespace, name)
	return nil
}
