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

// MigrationState enumerates the schema-migration lifecycle states an OpenDcsDatabase
// progresses through.
type MigrationState string

const (
	MigrationStateFresh               MigrationState = "Fresh"
	MigrationStatePreparingToMigrate  MigrationState = "PreparingToMigrate"
	MigrationStateMigrating           MigrationState = "Migrating"
	MigrationStateReady               MigrationState = "Ready"
	MigrationStateFailed              MigrationState = "Failed"
)

// OpenDcsDatabaseSpec defines the desired state of OpenDcsDatabase.
type OpenDcsDatabaseSpec struct {
	// SchemaVersion is an opaque container image reference for the schema-migration job.
	// +kubebuilder:validation:Required
	// +kubebuilder:validation:MinLength=1
	SchemaVersion string `json:"schemaVersion"`

	// DatabaseSecret names a secret in the same namespace holding jdbcUrl, username, password.
	// +kubebuilder:validation:Required
	// +kubebuilder:validation:MinLength=1
	DatabaseSecret string `json:"databaseSecret"`

	// Placeholders is passed to the migration job as PLACEHOLDER_<KEY> environment variables.
	// Immutable after creation.
	// +kubebuilder:validation:XValidation:rule="self == oldSelf",message="placeholders is immutable after creation"
	// +optional
	Placeholders map[string]string `json:"placeholders,omitempty"`
}

// OpenDcsDatabaseStatus defines the observed state of OpenDcsDatabase.
type OpenDcsDatabaseStatus struct {
	// AppliedSchemaVersion is the schema version last successfully migrated to.
	// +optional
	AppliedSchemaVersion string `json:"appliedSchemaVersion,omitempty"`

	// State is the current position in the migration state machine.
	// +optional
	State MigrationState `json:"state,omitempty"`

	// LastUpdated records when status was last written by the controller.
	// +optional
	LastUpdated *metav1.Time `json:"lastUpdated,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="State",type=string,JSONPath=`.status.state`
// +kubebuilder:printcolumn:name="Applied",type=string,JSONPath=`.status.appliedSchemaVersion`
// OpenDcsDatabase is the Schema for the opendcsdatabases API.
type OpenDcsDatabase struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   OpenDcsDatabaseSpec   `json:"spec,omitempty"`
	Status OpenDcsDatabaseStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true
// OpenDcsDatabaseList contains a list of OpenDcsDatabase.
type OpenDcsDatabaseList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []OpenDcsDatabase `json:"items"`
}

func init() {
	SchemeBuilder.Register(&OpenDcsDatabase{}, &OpenDcsDatabaseList{})
}
