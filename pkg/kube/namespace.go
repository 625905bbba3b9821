package kube

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/kubeflow/testing/pkg/logging"
)

// NamespaceLabel tags namespaces created by this tester so they're easy to
// find and sweep.
var NamespaceLabel = map[string]string{"app": "kubeflow-e2e-test"}

// EnsureNamespace creates the namespace, treating "already exists" as
// success. Any other failure is fatal; the caller must not continue.
func EnsureNamespace(ctx context.Context, client kubernetes.Interface, name string, logger logging.Interface) (*corev1.Namespace, error) {
	namespace := &corev1.Namespace{
		ObjectMeta: metav1.ObjectMeta{
			Name:   name,
			Labels: NamespaceLabel,
		},
	}

	logger.Infof("Creating namespace %s", name)
	created, err := client.CoreV1().Namespaces().Create(ctx, namespace, metav1.CreateOptions{})
	if err == nil {
		logger.Infof("Namespace %s created", name)
		return created, nil
	}

	if apierrors.IsAlreadyExists(err) {
		logger.Infof("Namespace %s already exists", name)
		return client.CoreV1().Namespaces().Get(ctx, name, metav1.GetOptions{})
	}

	return nil, fmt.Errorf("creating namespace %s: %w", name, err)
}

// DeleteNamespace deletes the namespace, surfacing whatever the API
// returns; cascade semantics are the cluster's business.
func DeleteNamespace(ctx context.Context, client kubernetes.Interface, name string, logger logging.Interface) error {
	logger.Infof("Deleting namespace %s", name)
	return client.CoreV1().Namespaces().Delete(ctx, name, metav1.DeleteOptions{})
}
