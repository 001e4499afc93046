// Package reconciler defines small shared contracts used by both the lrgs and schema
// component packages: a minimal client-carrying interface (kept slim to avoid circular
// imports between internal/controller/lrgs, internal/controller/schema and their test
// doubles) and the error-kind helpers that let a reconciler tell the engine "recoverable,
// try later" from "apply-layer failure" per §4.2/§7.
package reconciler

import (
	"fmt"

	"github.com/go-logr/logr"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// Context bundles the shared, immutable-after-construction collaborators every
// reconcile needs: the API client, event recorder, diagnostics and metrics (§9,
// "cyclic-ish ownership... build the context once per reconcile batch").
type Context struct {
	client.Client
	Logger logr.Logger
}

// BuildError wraps an error that should collapse a reconcile to a long requeue
// without advancing status - §7 "build errors... reconciler logs and returns a long
// requeue (3600s); status is not advanced."
type BuildError struct {
	err error
}

func NewBuildError(format string, args ...interface{}) *BuildError {
	return &BuildError{err: fmt.Errorf(format, args...)}
}

func (e *BuildError) Error() string { return e.err.Error() }
func (e *BuildError) Unwrap() error { return e.err }

// IsBuildError reports whether err is (or wraps) a BuildError.
func IsBuildError(err error) bool {
	_, ok := err.(*BuildError)
	return ok
}
