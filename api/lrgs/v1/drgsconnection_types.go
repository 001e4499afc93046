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

// DrgsConnectionSpec defines a single declared DRGS connection consumed by an LrgsCluster.
type DrgsConnectionSpec struct {
	// Hostname is the DRGS source hostname.
	// +kubebuilder:validation:Required
	// +kubebuilder:validation:MinLength=1
	Hostname string `json:"hostname"`

	// MsgPort is the DRGS message port.
	// +kubebuilder:validation:Minimum=1
	// +kubebuilder:validation:Maximum=65535
	// +kubebuilder:default=17010
	MsgPort int32 `json:"msgPort"`

	// EvtPort is the DRGS event port.
	// +kubebuilder:validation:Minimum=1
	// +kubebuilder:validation:Maximum=65535
	// +kubebuilder:default=17011
	EvtPort int32 `json:"evtPort"`

	// Enabled toggles whether the connection entry is active.
	// +kubebuilder:default=true
	Enabled bool `json:"enabled"`

	// EvtEnabled toggles whether DRGS event reception is active for this connection.
	// +kubebuilder:default=false
	EvtEnabled bool `json:"evtEnabled"`

	// StartPattern is the DRGS message start pattern.
	// +optional
	StartPattern string `json:"startPattern,omitempty"`
}

// DrgsConnectionStatus defines the observed state of DrgsConnection. This resource is a
// read-only input to the LRGS reconciler; it carries no derived status.
type DrgsConnectionStatus struct{}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// DrgsConnection is the Schema for the drgsconnections API.
type DrgsConnection struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   DrgsConnectionSpec   `json:"spec,omitempty"`
	Status DrgsConnectionStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true
// DrgsConnectionList contains a list of DrgsConnection.
type DrgsConnectionList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []DrgsConnection `json:"items"`
}

func init() {
	SchemeBuilder.Register(&DrgsConnection{}, &DrgsConnectionList{})
}
