package utils

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes/scheme"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	lrgsv1 "github.com/opendcs-io/opendcs-operator/api/lrgs/v1"
)

func newFakeClient(objs ...runtime.Object) client.Client {
	builder := fake.NewClientBuilder().WithScheme(scheme.Scheme)
	if len(objs) > 0 {
		builder = builder.WithRuntimeObjects(objs...)
	}
	return builder.Build()
}

var _ = Describe("Apply", func() {
	It("creates an object that does not yet exist", func() {
		c := newFakeClient()
		cm := &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: "cm", Namespace: "ns"},
			Data:       map[string]string{"k": "v"},
		}
		Expect(Apply(context.Background(), c, cm, "test-manager")).To(Succeed())

		got := &corev1.ConfigMap{}
		Expect(c.Get(context.Background(), client.ObjectKey{Name: "cm", Namespace: "ns"}, got)).To(Succeed())
		Expect(got.Data).To(Equal(map[string]string{"k": "v"}))
	})

	It("converges a subsequent apply of the same desired state without error", func() {
		c := newFakeClient()
		cm := &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: "cm", Namespace: "ns"},
			Data:       map[string]string{"k": "v"},
		}
		Expect(Apply(context.Background(), c, cm, "test-manager")).To(Succeed())
		Expect(Apply(context.Background(), c, cm, "test-manager")).To(Succeed())
	})
})

var _ = Describe("ApplyStatus", func() {
	It("force-applies only the status subresource, leaving spec untouched", func() {
		s := runtime.NewScheme()
		Expect(scheme.AddToScheme(s)).To(Succeed())
		Expect(lrgsv1.AddToScheme(s)).To(Succeed())

		cr := &lrgsv1.LrgsCluster{
			ObjectMeta: metav1.ObjectMeta{Name: "demo", Namespace: "ns"},
			Spec:       lrgsv1.LrgsClusterSpec{Replicas: 3, StorageSize: "5Gi", StorageClass: "standard"},
		}
		c := fake.NewClientBuilder().
			WithScheme(s).
			WithStatusSubresource(&lrgsv1.LrgsCluster{}).
			WithObjects(cr).
			Build()

		cr.Status.Checksum = "abc123"
		Expect(ApplyStatus(context.Background(), c, cr, "test-manager")).To(Succeed())

		got := &lrgsv1.LrgsCluster{}
		Expect(c.Get(context.Background(), client.ObjectKey{Name: "demo", Namespace: "ns"}, got)).To(Succeed())
		Expect(got.Status.Checksum).To(Equal("abc123"))
		Expect(got.Spec.Replicas).To(Equal(int32(3)))
	})

	It("converges a subsequent status apply with the same value without error", func() {
		s := runtime.NewScheme()
		Expect(scheme.AddToScheme(s)).To(Succeed())
		Expect(lrgsv1.AddToScheme(s)).To(Succeed())

		cr := &lrgsv1.LrgsCluster{
			ObjectMeta: metav1.ObjectMeta{Name: "demo", Namespace: "ns"},
			Spec:       lrgsv1.LrgsClusterSpec{Replicas: 1, StorageSize: "5Gi", StorageClass: "standard"},
		}
		c := fake.NewClientBuilder().
			WithScheme(s).
			WithStatusSubresource(&lrgsv1.LrgsCluster{}).
			WithObjects(cr).
			Build()

		cr.Status.Checksum = "same"
		Expect(ApplyStatus(context.Background(), c, cr, "test-manager")).To(Succeed())
		Expect(ApplyStatus(context.Background(), c, cr, "test-manager")).To(Succeed())
	})
})

var _ = Describe("GetSecretContent", func() {
	It("extracts requested fields", func() {
		c := newFakeClient(&corev1.Secret{
			ObjectMeta: metav1.ObjectMeta{Name: "s", Namespace: "ns"},
			Data:       map[string][]byte{"username": []byte("alice"), "password": []byte("secret")},
		})
		found := &corev1.Secret{}
		vals, err := GetSecretContent(context.Background(), c, "s", "ns", []string{"username", "password"}, found)
		Expect(err).NotTo(HaveOccurred())
		Expect(vals).To(Equal(map[string]string{"username": "alice", "password": "secret"}))
	})

	It("errors when a requested field is missing", func() {
		c := newFakeClient(&corev1.Secret{
			ObjectMeta: metav1.ObjectMeta{Name: "s", Namespace: "ns"},
			Data:       map[string][]byte{"username": []byte("alice")},
		})
		found := &corev1.Secret{}
		_, err := GetSecretContent(context.Background(), c, "s", "ns", []string{"password"}, found)
		Expect(err).To(HaveOccurred())
	})
})
