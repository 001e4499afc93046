package utils

import (
	"context"
	"encoding/json"
	"fmt"

	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// Apply server-side-applies obj using fieldManager as the field-manager identity (C5).
// Every controller in this operator uses its own stable field-manager name so that two
// reconciles producing the same desired state cause no resource-version churn (I2).
func Apply(ctx context.Context, c client.Client, obj client.Object, fieldManager string) error {
	data, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("failed to marshal %T %s for apply: %w", obj, obj.GetName(), err)
	}
	patch := client.RawPatch(types.ApplyPatchType, data)
	if err := c.Patch(ctx, obj, patch, client.ForceOwnership, client.FieldOwner(fieldManager)); err != nil {
		return fmt.Errorf("failed to apply %T %s: %w", obj, obj.GetName(), err)
	}
	return nil
}

// ApplyStatus server-side-applies only the status subresource of obj, forcing ownership
// under the same field-manager identity used for the rest of the object's fields.
func ApplyStatus(ctx context.Context, c client.Client, obj client.Object, fieldManager string) error {
	data, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("failed to marshal %T %s status for apply: %w", obj, obj.GetName(), err)
	}
	patch := client.RawPatch(types.ApplyPatchType, data)
	if err := c.Status().Patch(ctx, obj, patch, client.ForceOwnership, client.FieldOwner(fieldManager)); err != nil {
		return fmt.Errorf("failed to apply status of %T %s: %w", obj, obj.GetName(), err)
	}
	return nil
}
