package schema

import (
	"context"
	"fmt"
	"time"

	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/tools/record"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	tsdbv1 "github.com/opendcs-io/opendcs-operator/api/tsdb/v1"
	"github.com/opendcs-io/opendcs-operator/internal/controller"
	"github.com/opendcs-io/opendcs-operator/internal/controller/metrics"
	"github.com/opendcs-io/opendcs-operator/internal/controller/utils"
)

// PrepareTimeout is read once at startup from OPENDCS_PREPARE_TIMEOUT (§4.3.8) and
// threaded through the Reconciler by its caller (cmd/schema-controller).
const DefaultPrepareTimeout = 30 * time.Minute

// Reconciler reconciles an OpenDcsDatabase object (C7).
type Reconciler struct {
	client.Client
	Metrics        *metrics.Recorder
	PrepareTimeout time.Duration
	Recorder       record.EventRecorder
}

func (r *Reconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	logger := log.FromContext(ctx)
	done := r.Metrics.ObserveRun()
	defer done()

	cr := &tsdbv1.OpenDcsDatabase{}
	if err := r.Get(ctx, req.NamespacedName, cr); err != nil {
		if apierrors.IsNotFound(err) {
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	if err := r.ensureAppUserSecret(ctx, cr); err != nil {
		r.Metrics.Failure(req.String(), "apply")
		logger.Error(err, "failed to ensure app-user secret")
		return ctrl.Result{RequeueAfter: controller.RequeueIntervalError}, nil
	}

	oldState := cr.Status.State
	var newState tsdbv1.MigrationState

	switch DecideBranch(cr) {
	case BranchCreateJob:
		var err error
		newState, err = r.createJobBranch(ctx, cr, oldState)
		if err != nil {
			r.Metrics.Failure(req.String(), "apply")
			logger.Error(err, "create-job branch failed")
			return ctrl.Result{RequeueAfter: controller.RequeueIntervalError}, nil
		}
	default:
		var err error
		newState, err = r.checkJobBranch(ctx, cr)
		if err != nil {
			r.Metrics.Failure(req.String(), "apply")
			logger.Error(err, "check-job branch failed")
			return ctrl.Result{RequeueAfter: controller.RequeueIntervalError}, nil
		}
	}

	if oldState != newState {
		now := metav1.Now()
		cr.Status.State = newState
		cr.Status.LastUpdated = &now
		cr.Status.AppliedSchemaVersion = AppliedSchemaVersion(cr, newState)
		if err := utils.ApplyStatus(ctx, r.Client, cr, controller.DatabaseFieldManager); err != nil {
			return ctrl.Result{}, fmt.Errorf("applying status: %w", err)
		}
		if r.Recorder != nil {
			r.Recorder.Eventf(cr, corev1.EventTypeNormal, "MigrationStateChanged",
				"transitioned from %s to %s", oldState, newState)
		}
	}

	return ctrl.Result{RequeueAfter: controller.RequeueIntervalSuccess}, nil
}

// ensureAppUserSecret creates the application-user secret exactly once, on first sight
// of a resource (§4.7). Existing secrets are never touched.
func (r *Reconciler) ensureAppUserSecret(ctx context.Context, cr *tsdbv1.OpenDcsDatabase) error {
	name := types.NamespacedName{Namespace: cr.Namespace, Name: cr.Name + "-app-user"}
	existing := &corev1.Secret{}
	err := r.Get(ctx, name, existing)
	if err == nil {
		return nil
	}
	if !apierrors.IsNotFound(err) {
		return fmt.Errorf("reading app-user secret %s: %w", name, err)
	}
	secret, err := BuildAppUserSecret(cr)
	if err != nil {
		return err
	}
	if err := r.Create(ctx, secret); err != nil && !apierrors.IsAlreadyExists(err) {
		return fmt.Errorf("creating app-user secret %s: %w", name, err)
	}
	return nil
}

// createJobBranch implements §4.7's create-job branch, including the I8 "no job while
// pods exist" guard.
func (r *Reconciler) createJobBranch(ctx context.Context, cr *tsdbv1.OpenDcsDatabase, oldState tsdbv1.MigrationState) (tsdbv1.MigrationState, error) {
	podsPresent, err := r.dependentPodsExist(ctx, cr)
	if err != nil {
		return oldState, err
	}
	if podsPresent {
		return tsdbv1.MigrationStatePreparingToMigrate, nil
	}

	cm := BuildScriptConfigMap(cr)
	if err := utils.Apply(ctx, r.Client, cm, controller.DatabaseFieldManager); err != nil {
		return oldState, fmt.Errorf("applying schema script configmap: %w", err)
	}

	job := BuildMigrationJob(cr)
	if err := utils.Apply(ctx, r.Client, job, controller.DatabaseFieldManager); err != nil {
		return oldState, fmt.Errorf("applying migration job: %w", err)
	}

	// §4.7 create-job step 5: "Return (old_state, Fresh) - state advances on next poll."
	return tsdbv1.MigrationStateFresh, nil
}

// checkJobBranch implements §4.7's check-job branch and the retry-exhaustion/timeout
// resolutions of §4.3.7/§4.3.8.
func (r *Reconciler) checkJobBranch(ctx context.Context, cr *tsdbv1.OpenDcsDatabase) (tsdbv1.MigrationState, error) {
	job := &batchv1.Job{}
	name := types.NamespacedName{Namespace: cr.Namespace, Name: cr.Name + "-database-migration"}
	if err := r.Get(ctx, name, job); err != nil {
		if apierrors.IsNotFound(err) {
			return tsdbv1.MigrationStatePreparingToMigrate, nil
		}
		return cr.Status.State, fmt.Errorf("reading migration job %s: %w", name, err)
	}

	podsPresent, err := r.dependentPodsExist(ctx, cr)
	if err != nil {
		return cr.Status.State, err
	}

	var prepareSince *time.Time
	if cr.Status.State == tsdbv1.MigrationStatePreparingToMigrate && cr.Status.LastUpdated != nil {
		t := cr.Status.LastUpdated.Time
		prepareSince = &t
	}

	timeout := r.PrepareTimeout
	if timeout <= 0 {
		timeout = DefaultPrepareTimeout
	}

	return NextStateFromJob(job, podsPresent, prepareSince, timeout, time.Now()), nil
}

// dependentPodsExist looks up pods labeled <tsdb-group>/for-database=<parent> (§4.7
// step 1, I8).
func (r *Reconciler) dependentPodsExist(ctx context.Context, cr *tsdbv1.OpenDcsDatabase) (bool, error) {
	var pods corev1.PodList
	if err := r.List(ctx, &pods, client.InNamespace(cr.Namespace),
		client.MatchingLabels{controller.LabelForDatabase: cr.Name}); err != nil {
		return false, fmt.Errorf("listing dependent pods: %w", err)
	}
	return len(pods.Items) > 0, nil
}

// SetupWithManager wires the controller's watch on OpenDcsDatabase plus its owned Job.
func (r *Reconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&tsdbv1.OpenDcsDatabase{}).
		Owns(&batchv1.Job{}).
		Complete(r)
}
