// Package schema implements the OpenDcsDatabase controller (C7): the application-user
// secret, the migration job builder, and the Fresh/PreparingToMigrate/Migrating/Ready/Failed
// finite state machine described in §4.7.
package schema

import (
	"time"

	batchv1 "k8s.io/api/batch/v1"

	tsdbv1 "github.com/opendcs-io/opendcs-operator/api/tsdb/v1"
	"github.com/opendcs-io/opendcs-operator/internal/controller"
)

// Branch is the decision made at the top of each reconcile (§4.7 "Decide branch").
type Branch int

const (
	BranchCreateJob Branch = iota
	BranchCheckJob
)

// DecideBranch implements: "If status absent OR (appliedSchemaVersion != spec.schemaVersion
// AND state == Fresh) -> create-job branch. Otherwise -> check-job branch." - generalized to
// also re-enter create-job from Ready on a schema version change (S4, "Ready ->
// PreparingToMigrate when spec.schema_version changes"), since the literal Fresh-only rule
// would otherwise pin an upgraded database at its old applied version forever.
func DecideBranch(cr *tsdbv1.OpenDcsDatabase) Branch {
	statusAbsent := cr.Status.State == ""
	if statusAbsent {
		return BranchCreateJob
	}
	versionChanged := cr.Status.AppliedSchemaVersion != cr.Spec.SchemaVersion
	if versionChanged && (cr.Status.State == tsdbv1.MigrationStateFresh || cr.Status.State == tsdbv1.MigrationStateReady) {
		return BranchCreateJob
	}
	return BranchCheckJob
}

// NextStateFromJob implements the check-job branch's state derivation (§4.7, with the
// retry-exhaustion resolution of §4.3.7 and the PreparingToMigrate timeout resolution
// of §4.3.8).
//
//   - failed >= backoffLimit  -> Failed
//   - ready > 0               -> Migrating
//   - succeeded > 0           -> Ready
//   - else                    -> PreparingToMigrate, unless the PreparingToMigrate
//     timeout has already elapsed while pods are still present, in which case -> Failed.
func NextStateFromJob(job *batchv1.Job, podsPresent bool, prepareSince *time.Time, prepareTimeout time.Duration, now time.Time) tsdbv1.MigrationState {
	backoffLimit := controller.DefaultJobBackoffLimit
	if job.Spec.BackoffLimit != nil {
		backoffLimit = *job.Spec.BackoffLimit
	}

	failed := job.Status.Failed
	ready := int32(0)
	if job.Status.Ready != nil {
		ready = *job.Status.Ready
	}
	succeeded := job.Status.Succeeded

	switch {
	case failed >= backoffLimit:
		return tsdbv1.MigrationStateFailed
	case ready > 0:
		return tsdbv1.MigrationStateMigrating
	case succeeded > 0:
		return tsdbv1.MigrationStateReady
	default:
		if podsPresent && prepareSince != nil && now.Sub(*prepareSince) > prepareTimeout {
			return tsdbv1.MigrationStateFailed
		}
		return tsdbv1.MigrationStatePreparingToMigrate
	}
}

// AppliedSchemaVersion implements the status-write rule: "applied_schema_version =
// spec.schema_version iff new_state is Ready, else absent" - but "absent" here means
// "left untouched": an already-applied version is not erased by a later, non-Ready
// reconcile (only Ready ever advances it).
func AppliedSchemaVersion(cr *tsdbv1.OpenDcsDatabase, newState tsdbv1.MigrationState) string {
	if newState == tsdbv1.MigrationStateReady {
		return cr.Spec.SchemaVersion
	}
	return cr.Status.AppliedSchemaVersion
}
