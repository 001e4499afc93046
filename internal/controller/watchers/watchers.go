// Package watchers maps changes to objects an LrgsCluster does not directly own -
// DdsConnection, DrgsConnection, and ddsuser secrets, whether created by the controller
// or by a user - back to reconcile requests for the owning LrgsCluster, via the
// controller.LabelLrgsClusterName label (§4.1/§6.5).
package watchers

import (
	"context"

	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"

	"github.com/opendcs-io/opendcs-operator/internal/controller"
)

// ByClusterLabel returns a handler.MapFunc that enqueues a reconcile request for the
// LrgsCluster named by the object's controller.LabelLrgsClusterName label, if present.
// Used with handler.EnqueueRequestsFromMapFunc on DdsConnection/DrgsConnection/Secret
// watches: the label is stamped on the config secret and the managed-user secrets the
// controller creates, and is the only way a user-created ddsuser secret (which carries
// no owner reference to the cluster) can be routed back to it.
func ByClusterLabel() func(ctx context.Context, obj client.Object) []reconcile.Request {
	return func(_ context.Context, obj client.Object) []reconcile.Request {
		name, ok := obj.GetLabels()[controller.LabelLrgsClusterName]
		if !ok || name == "" {
			return nil
		}
		return []reconcile.Request{{NamespacedName: types.NamespacedName{
			Namespace: obj.GetNamespace(),
			Name:      name,
		}}}
	}
}
