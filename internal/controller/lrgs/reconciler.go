// Package lrgs implements the LrgsCluster controller (C3/C4/C5/C6): building the
// DDS-receive, DRGS and legacy password-file configuration, hashing it for rollout,
// and converging the owned Secret/ConfigMap/Service/StatefulSet/managed-user-secret
// set via server-side apply.
package lrgs

import (
	"context"
	"fmt"
	"net"
	"sort"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/tools/record"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/handler"
	"sigs.k8s.io/controller-runtime/pkg/log"

	lrgsv1 "github.com/opendcs-io/opendcs-operator/api/lrgs/v1"
	"github.com/opendcs-io/opendcs-operator/internal/controller"
	"github.com/opendcs-io/opendcs-operator/internal/controller/metrics"
	"github.com/opendcs-io/opendcs-operator/internal/controller/reconciler"
	"github.com/opendcs-io/opendcs-operator/internal/controller/utils"
	"github.com/opendcs-io/opendcs-operator/internal/controller/watchers"
)

// Reconciler reconciles an LrgsCluster object (C6).
type Reconciler struct {
	client.Client
	Resolver *net.Resolver
	Metrics  *metrics.Recorder
	Recorder record.EventRecorder
}

// Reconcile implements the convergence algorithm of §4.1/§4.3.5/§4.3.6: resolve the
// parent, rediscover peers, build the desired configuration artifacts, hash them,
// apply the owned object set in a fixed order, and patch status only when the hash
// actually changed (I4).
func (r *Reconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	logger := log.FromContext(ctx)
	done := r.Metrics.ObserveRun()
	defer done()

	cr := &lrgsv1.LrgsCluster{}
	if err := r.Get(ctx, req.NamespacedName, cr); err != nil {
		if apierrors.IsNotFound(err) {
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	result, err := r.converge(ctx, cr)
	if err != nil {
		r.Metrics.Failure(req.String(), classify(err))
		logger.Error(err, "reconcile failed")
		if reconciler.IsBuildError(err) {
			return ctrl.Result{RequeueAfter: controller.RequeueIntervalBuildErr}, nil
		}
		return ctrl.Result{RequeueAfter: controller.RequeueIntervalError}, nil
	}
	return result, nil
}

func classify(err error) string {
	if reconciler.IsBuildError(err) {
		return "build"
	}
	return "apply"
}

func (r *Reconciler) converge(ctx context.Context, cr *lrgsv1.LrgsCluster) (ctrl.Result, error) {
	var ddsConns lrgsv1.DdsConnectionList
	if err := r.List(ctx, &ddsConns, client.InNamespace(cr.Namespace),
		client.MatchingLabels{controller.LabelLrgsClusterName: cr.Name}); err != nil {
		return ctrl.Result{}, fmt.Errorf("listing DdsConnections: %w", err)
	}

	var drgsConns lrgsv1.DrgsConnectionList
	if err := r.List(ctx, &drgsConns, client.InNamespace(cr.Namespace),
		client.MatchingLabels{controller.LabelLrgsClusterName: cr.Name}); err != nil {
		return ctrl.Result{}, fmt.Errorf("listing DrgsConnections: %w", err)
	}
	if len(drgsConns.Items) > MaxDrgsConnections {
		return ctrl.Result{}, reconciler.NewBuildError(
			"too many DrgsConnections for %s: %d exceeds the maximum of %d",
			cr.Name, len(drgsConns.Items), MaxDrgsConnections)
	}

	peers, err := r.discoverPeers(ctx, cr)
	if err != nil {
		return ctrl.Result{}, fmt.Errorf("discovering peers: %w", err)
	}

	users, err := r.resolveManagedUsers(ctx, cr)
	if err != nil {
		return ctrl.Result{}, err
	}

	ddsConf, err := BuildDdsRecvConfig(peers, ddsConns.Items)
	if err != nil {
		return ctrl.Result{}, reconciler.NewBuildError("building dds-receive config: %v", err)
	}
	drgsConf, err := BuildDrgsConfig(drgsConns.Items)
	if err != nil {
		return ctrl.Result{}, reconciler.NewBuildError("building drgs config: %v", err)
	}
	passwordFile := BuildPasswordFile(users)

	configHash, err := utils.ConcatHash(passwordFile, ddsConf, drgsConf)
	if err != nil {
		return ctrl.Result{}, fmt.Errorf("hashing configuration: %w", err)
	}
	scriptHash, err := ScriptConfigMapHash()
	if err != nil {
		return ctrl.Result{}, fmt.Errorf("hashing startup script: %w", err)
	}

	// Apply order matches §4.3: configuration secret, then the script configmap, then
	// the workload, then its services, and finally any newly-required managed-user
	// secrets - the workload must never roll before its config/scripts exist.
	configSecret := BuildConfigSecret(cr, passwordFile, ddsConf, drgsConf)
	if err := utils.Apply(ctx, r.Client, configSecret, controller.LrgsFieldManager); err != nil {
		return ctrl.Result{}, fmt.Errorf("applying config secret: %w", err)
	}

	scriptCM := BuildScriptConfigMap(cr)
	if err := utils.Apply(ctx, r.Client, scriptCM, controller.LrgsFieldManager); err != nil {
		return ctrl.Result{}, fmt.Errorf("applying script configmap: %w", err)
	}

	statefulSet, err := BuildStatefulSet(cr, configHash, scriptHash)
	if err != nil {
		return ctrl.Result{}, reconciler.NewBuildError("building statefulset: %v", err)
	}
	if err := utils.Apply(ctx, r.Client, statefulSet, controller.LrgsFieldManager); err != nil {
		return ctrl.Result{}, fmt.Errorf("applying statefulset: %w", err)
	}

	clustered, headless := BuildServices(cr)
	if err := utils.Apply(ctx, r.Client, clustered, controller.LrgsFieldManager); err != nil {
		return ctrl.Result{}, fmt.Errorf("applying clustered service: %w", err)
	}
	if err := utils.Apply(ctx, r.Client, headless, controller.LrgsFieldManager); err != nil {
		return ctrl.Result{}, fmt.Errorf("applying headless service: %w", err)
	}

	if err := r.ensureManagedUserSecrets(ctx, cr); err != nil {
		return ctrl.Result{}, fmt.Errorf("ensuring managed user secrets: %w", err)
	}

	if cr.Status.Checksum != configHash {
		now := metav1.Now()
		cr.Status.Checksum = configHash
		cr.Status.LastUpdated = &now
		if err := utils.ApplyStatus(ctx, r.Client, cr, controller.LrgsFieldManager); err != nil {
			return ctrl.Result{}, fmt.Errorf("applying status: %w", err)
		}
		if r.Recorder != nil {
			r.Recorder.Eventf(cr, corev1.EventTypeNormal, "ConfigurationApplied",
				"configuration checksum updated to %s", configHash)
		}
	}

	return ctrl.Result{RequeueAfter: controller.RequeueIntervalSuccess}, nil
}

// discoverPeers looks up the cluster's own headless service for sibling replicas
// (§4.3.1/§6.3). A DNS lookup failure is swallowed at the dns package level already;
// here we only wrap genuine errors.
func (r *Reconciler) discoverPeers(ctx context.Context, cr *lrgsv1.LrgsCluster) ([]Peer, error) {
	name := fmt.Sprintf("%s-lrgs-service-headless.%s.svc.cluster.local", cr.Name, cr.Namespace)
	return LookupPeers(ctx, r.Resolver, "dds", "tcp", name)
}

// resolveManagedUsers builds the password file's user list from every secret of type
// <group>/ddsuser in the namespace (§4.3.3/§6.4) - not only the three well-known managed
// users ensureManagedUserSecrets creates, but also any user-created DDS account (S6), so
// that I3's checksum reflects the full account set. A cluster with no ddsuser secrets
// yet still needs a non-nil, possibly-empty password file.
func (r *Reconciler) resolveManagedUsers(ctx context.Context, cr *lrgsv1.LrgsCluster) ([]ManagedUser, error) {
	var secrets corev1.SecretList
	if err := r.List(ctx, &secrets, client.InNamespace(cr.Namespace)); err != nil {
		return nil, fmt.Errorf("listing secrets: %w", err)
	}

	var users []ManagedUser
	for i := range secrets.Items {
		secret := &secrets.Items[i]
		if string(secret.Type) != controller.ManagedUserSecretType {
			continue
		}
		user, ok := ManagedUserFromSecret(secret)
		if !ok {
			continue
		}
		users = append(users, user)
	}
	sort.SliceStable(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

// ensureManagedUserSecrets creates a secret for any managed user that doesn't already
// have one. Existing secrets are never touched or regenerated (I5).
func (r *Reconciler) ensureManagedUserSecrets(ctx context.Context, cr *lrgsv1.LrgsCluster) error {
	for _, spec := range ManagedUserSpecs {
		name := types.NamespacedName{Namespace: cr.Namespace, Name: fmt.Sprintf("%s-%s-user", cr.Name, spec.Username)}
		existing := &corev1.Secret{}
		err := r.Get(ctx, name, existing)
		if err == nil {
			continue
		}
		if !apierrors.IsNotFound(err) {
			return fmt.Errorf("reading managed user secret %s: %w", name, err)
		}
		secret, err := BuildManagedUserSecret(cr, spec.Username, spec.Roles)
		if err != nil {
			return err
		}
		if err := r.Create(ctx, secret); err != nil && !apierrors.IsAlreadyExists(err) {
			return fmt.Errorf("creating managed user secret %s: %w", name, err)
		}
	}
	return nil
}

// SetupWithManager wires the controller's watches: the owned LrgsCluster itself plus
// DdsConnection/DrgsConnection/Secret changes, mapped back to the owning cluster via the
// controller.LabelLrgsClusterName label (§4.1/§6.5). The Secret watch is label-keyed
// rather than owner-reference-keyed so that a user-created ddsuser secret - which
// carries the label but no owner reference to the cluster - still triggers a reconcile.
func (r *Reconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&lrgsv1.LrgsCluster{}).
		Owns(&appsv1.StatefulSet{}).
		Watches(&lrgsv1.DdsConnection{}, handler.EnqueueRequestsFromMapFunc(watchers.ByClusterLabel())).
		Watches(&lrgsv1.DrgsConnection{}, handler.EnqueueRequestsFromMapFunc(watchers.ByClusterLabel())).
		Watches(&corev1.Secret{}, handler.EnqueueRequestsFromMapFunc(watchers.ByClusterLabel())).
		Complete(r)
}
