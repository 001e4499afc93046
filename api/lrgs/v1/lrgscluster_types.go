/*
Copyright 2024.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// LrgsClusterSpec defines the desired state of LrgsCluster.
type LrgsClusterSpec struct {
	// Replicas is the desired number of LRGS stateful-set members.
	// +kubebuilder:validation:Minimum=0
	// +kubebuilder:default=1
	Replicas int32 `json:"replicas"`

	// StorageClass names the StorageClass used for the archive volume claim.
	// +kubebuilder:validation:Required
	StorageClass string `json:"storageClass"`

	// StorageSize is the requested size of the archive volume, e.g. "10Gi".
	// +kubebuilder:validation:Required
	StorageSize string `json:"storageSize"`

	// ArchiveLengthDays bounds the retention window of the LRGS archive, in days.
	// +kubebuilder:validation:Minimum=0
	// +optional
	ArchiveLengthDays *int32 `json:"archiveLengthDays,omitempty"`
}

// LrgsClusterStatus defines the observed state of LrgsCluster.
type LrgsClusterStatus struct {
	// Checksum is the hex-encoded SHA-256 of the last-applied configuration artifacts.
	Checksum string `json:"checksum,omitempty"`

	// LastUpdated records when status was last written by the controller.
	// +optional
	LastUpdated *metav1.Time `json:"lastUpdated,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Replicas",type=integer,JSONPath=`.spec.replicas`
// +kubebuilder:printcolumn:name="Checksum",type=string,JSONPath=`.status.checksum`
// LrgsCluster is the Schema for the lrgsclusters API.
type LrgsCluster struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   LrgsClusterSpec   `json:"spec,omitempty"`
	Status LrgsClusterStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true
// LrgsClusterList contains a list of LrgsCluster.
type LrgsClusterList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []LrgsCluster `json:"items"`
}

func init() {
	SchemeBuilder.Register(&LrgsCluster{}, &LrgsClusterList{})
}
