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

// DdsConnectionSpec defines a single declared DDS connection consumed by an LrgsCluster.
type DdsConnectionSpec struct {
	// Hostname is the DDS peer or client hostname.
	// +kubebuilder:validation:Required
	// +kubebuilder:validation:MinLength=1
	Hostname string `json:"hostname"`

	// Port is the DDS port to connect to.
	// +kubebuilder:validation:Minimum=1
	// +kubebuilder:validation:Maximum=65535
	// +kubebuilder:default=16003
	Port int32 `json:"port"`

	// Username is the DDS account used to authenticate this connection.
	// +kubebuilder:validation:Required
	// +kubebuilder:validation:MinLength=1
	Username string `json:"username"`

	// Enabled toggles whether the connection entry is active.
	// +kubebuilder:default=true
	Enabled bool `json:"enabled"`
}

// DdsConnectionStatus defines the observed state of DdsConnection. This resource is a
// read-only input to the LRGS reconciler; it carries no derived status.
type DdsConnectionStatus struct{}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// DdsConnection is the Schema for the ddsconnections API.
type DdsConnection struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   DdsConnectionSpec   `json:"spec,omitempty"`
	Status DdsConnectionStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true
// DdsConnectionList contains a list of DdsConnection.
type DdsConnectionList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []DdsConnection `json:"items"`
}

func init() {
	SchemeBuilder.Register(&DdsConnection{}, &DdsConnectionList{})
}
