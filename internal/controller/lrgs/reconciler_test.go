package lrgs

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/tools/record"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	lrgsv1 "github.com/opendcs-io/opendcs-operator/api/lrgs/v1"
	"github.com/opendcs-io/opendcs-operator/internal/controller"
	"github.com/opendcs-io/opendcs-operator/internal/controller/metrics"
)

var testLrgsMetrics = metrics.NewRecorder("lrgs-reconciler-test")

func newReconcilerScheme() *runtime.Scheme {
	s := runtime.NewScheme()
	Expect(clientgoscheme.AddToScheme(s)).To(Succeed())
	Expect(lrgsv1.AddToScheme(s)).To(Succeed())
	return s
}

func newReconciler(objs ...client.Object) (*Reconciler, client.Client) {
	c := fake.NewClientBuilder().
		WithScheme(newReconcilerScheme()).
		WithStatusSubresource(&lrgsv1.LrgsCluster{}).
		WithObjects(objs...).
		Build()
	return &Reconciler{
		Client:   c,
		Resolver: nil,
		Metrics:  testLrgsMetrics,
		Recorder: record.NewFakeRecorder(16),
	}, c
}

var _ = Describe("Reconciler", func() {
	It("returns cleanly when the LrgsCluster no longer exists", func() {
		r, _ := newReconciler()
		res, err := r.Reconcile(context.Background(), ctrl.Request{NamespacedName: client.ObjectKey{Name: "gone", Namespace: "ns"}})
		Expect(err).NotTo(HaveOccurred())
		Expect(res).To(Equal(ctrl.Result{}))
	})

	It("converges the full owned object set and stamps a status checksum", func() {
		cr := &lrgsv1.LrgsCluster{
			ObjectMeta: metav1.ObjectMeta{Name: "demo", Namespace: "ns"},
			Spec: lrgsv1.LrgsClusterSpec{
				Replicas:     1,
				StorageSize:  "5Gi",
				StorageClass: "standard",
			},
		}
		r, c := newReconciler(cr)

		res, err := r.Reconcile(context.Background(), ctrl.Request{NamespacedName: client.ObjectKey{Name: "demo", Namespace: "ns"}})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.RequeueAfter).To(BeNumerically(">", 0))

		var ss appsv1.StatefulSet
		Expect(c.Get(context.Background(), client.ObjectKey{Name: "demo", Namespace: "ns"}, &ss)).To(Succeed())

		var cm corev1.ConfigMap
		Expect(c.Get(context.Background(), client.ObjectKey{Name: "demo-scripts", Namespace: "ns"}, &cm)).To(Succeed())

		var cfg corev1.Secret
		Expect(c.Get(context.Background(), client.ObjectKey{Name: "demo-config", Namespace: "ns"}, &cfg)).To(Succeed())

		var svc corev1.Service
		Expect(c.Get(context.Background(), client.ObjectKey{Name: "demo-lrgs-service", Namespace: "ns"}, &svc)).To(Succeed())
		Expect(c.Get(context.Background(), client.ObjectKey{Name: "demo-lrgs-service-headless", Namespace: "ns"}, &svc)).To(Succeed())

		for _, spec := range ManagedUserSpecs {
			var s corev1.Secret
			Expect(c.Get(context.Background(), client.ObjectKey{Name: "demo-" + spec.Username + "-user", Namespace: "ns"}, &s)).To(Succeed())
		}

		var updated lrgsv1.LrgsCluster
		Expect(c.Get(context.Background(), client.ObjectKey{Name: "demo", Namespace: "ns"}, &updated)).To(Succeed())
		Expect(updated.Status.Checksum).NotTo(BeEmpty())
	})

	It("never regenerates an existing managed user secret's password", func() {
		cr := &lrgsv1.LrgsCluster{
			ObjectMeta: metav1.ObjectMeta{Name: "demo", Namespace: "ns"},
			Spec:       lrgsv1.LrgsClusterSpec{Replicas: 1, StorageSize: "5Gi", StorageClass: "standard"},
		}
		existing, err := BuildManagedUserSecret(cr, "lrgsadmin", "dds,lrgsadmin")
		Expect(err).NotTo(HaveOccurred())

		r, c := newReconciler(cr, existing)
		_, err = r.Reconcile(context.Background(), ctrl.Request{NamespacedName: client.ObjectKey{Name: "demo", Namespace: "ns"}})
		Expect(err).NotTo(HaveOccurred())

		var after corev1.Secret
		Expect(c.Get(context.Background(), client.ObjectKey{Name: "demo-lrgsadmin-user", Namespace: "ns"}, &after)).To(Succeed())
		Expect(after.Data["password"]).To(Equal(existing.Data["password"]))
	})

	It("folds a user-created ddsuser secret into the password file (S6)", func() {
		cr := &lrgsv1.LrgsCluster{
			ObjectMeta: metav1.ObjectMeta{Name: "demo", Namespace: "ns"},
			Spec:       lrgsv1.LrgsClusterSpec{Replicas: 1, StorageSize: "5Gi", StorageClass: "standard"},
		}
		alice := &corev1.Secret{
			ObjectMeta: metav1.ObjectMeta{
				Name:      "alice",
				Namespace: "ns",
				Labels:    map[string]string{controller.LabelLrgsClusterName: "demo"},
			},
			Type: corev1.SecretType(controller.ManagedUserSecretType),
			Data: map[string][]byte{
				"username": []byte("alice"),
				"password": []byte("secret"),
				"roles":    []byte("dds,admin"),
			},
		}
		r, c := newReconciler(cr, alice)

		_, err := r.Reconcile(context.Background(), ctrl.Request{NamespacedName: client.ObjectKey{Name: "demo", Namespace: "ns"}})
		Expect(err).NotTo(HaveOccurred())

		var cfg corev1.Secret
		Expect(c.Get(context.Background(), client.ObjectKey{Name: "demo-config", Namespace: "ns"}, &cfg)).To(Succeed())
		Expect(string(cfg.Data[controller.KeyPasswordFile])).To(ContainSubstring("alice:dds,admin:"))
	})

	It("rejects clusters with more DrgsConnections than the maximum", func() {
		cr := &lrgsv1.LrgsCluster{
			ObjectMeta: metav1.ObjectMeta{Name: "demo", Namespace: "ns"},
			Spec:       lrgsv1.LrgsClusterSpec{Replicas: 1, StorageSize: "5Gi", StorageClass: "standard"},
		}
		objs := []client.Object{cr}
		for i := 0; i < MaxDrgsConnections+1; i++ {
			objs = append(objs, &lrgsv1.DrgsConnection{
				ObjectMeta: metav1.ObjectMeta{
					Name:      fmt.Sprintf("drgs-%d", i),
					Namespace: "ns",
					Labels:    map[string]string{controller.LabelLrgsClusterName: "demo"},
				},
				Spec: lrgsv1.DrgsConnectionSpec{Hostname: "h", MsgPort: 17010, EvtPort: 17011},
			})
		}
		r, _ := newReconciler(objs...)
		res, err := r.Reconcile(context.Background(), ctrl.Request{NamespacedName: client.ObjectKey{Name: "demo", Namespace: "ns"}})
		// build errors are swallowed into a long requeue rather than surfaced (§7).
		Expect(err).NotTo(HaveOccurred())
		Expect(res.RequeueAfter).NotTo(Equal(0))
	})
})
