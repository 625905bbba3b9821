package kube

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes/fake"
	k8stesting "k8s.io/client-go/testing"

	testingPkg "github.com/kubeflow/testing/pkg/testing"
)

func TestEnsureNamespace(t *testing.T) {
	t.Run("creates with the e2e label", func(t *testing.T) {
		client := fake.NewSimpleClientset()

		ns, err := EnsureNamespace(context.Background(), client, "e2e-test-1", testingPkg.SetupMockLogger())
		require.NoError(t, err)
		assert.Equal(t, "e2e-test-1", ns.Name)
		assert.Equal(t, "kubeflow-e2e-test", ns.Labels["app"])
	})

	t.Run("idempotent when the namespace exists", func(t *testing.T) {
		client := fake.NewSimpleClientset(&corev1.Namespace{
			ObjectMeta: metav1.ObjectMeta{Name: "e2e-test-1"},
		})
		logger := testingPkg.SetupMockLogger()

		first, err := EnsureNamespace(context.Background(), client, "e2e-test-1", logger)
		require.NoError(t, err)
		second, err := EnsureNamespace(context.Background(), client, "e2e-test-1", logger)
		require.NoError(t, err)
		assert.Equal(t, first.Name, second.Name)
	})

	t.Run("other API errors are fatal", func(t *testing.T) {
		client := fake.NewSimpleClientset()
		client.PrependReactor("create", "namespaces",
			func(action k8stesting.Action) (bool, runtime.Object, error) {
				return true, nil, apierrors.NewForbidden(
					corev1.Resource("namespaces"), "e2e-test-1", errors.New("rbac"))
			})

		_, err := EnsureNamespace(context.Background(), client, "e2e-test-1", testingPkg.SetupMockLogger())
		require.Error(t, err)
		assert.True(t, apierrors.IsForbidden(errors.Unwrap(err)))
	})
}

func TestDeleteNamespace(t *testing.T) {
	t.Run("deletes an existing namespace", func(t *testing.T) {
		client := fake.NewSimpleClientset(&corev1.Namespace{
			ObjectMeta: metav1.ObjectMeta{Name: "e2e-test-1"},
		})

		require.NoError(t, DeleteNamespace(context.Background(), client, "e2e-test-1", testingPkg.SetupMockLogger()))

		_, err := client.CoreV1().Namespaces().Get(context.Background(), "e2e-test-1", metav1.GetOptions{})
		assert.True(t, apierrors.IsNotFound(err))
	})

	t.Run("not-found surfaces unchanged", func(t *testing.T) {
		client := fake.NewSimpleClientset()

		err := DeleteNamespace(context.Background(), client, "nope", testingPkg.SetupMockLogger())
		assert.True(t, apierrors.IsNotFound(err))
	})
}
