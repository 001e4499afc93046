package schema

import (
	"fmt"
	"sort"

	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	tsdbv1 "github.com/opendcs-io/opendcs-operator/api/tsdb/v1"
	"github.com/opendcs-io/opendcs-operator/internal/controller"
	"github.com/opendcs-io/opendcs-operator/internal/controller/utils"
)

// schemaScript is the fixed embedded migration script (§4.7 step 3).
const schemaScript = `#!/bin/bash
set -euo pipefail
exec /opt/opendcs/bin/dbimport --schema "${DATABASE_URL}"
`

func boolPtr(b bool) *bool { return &b }

func ownerRef(cr *tsdbv1.OpenDcsDatabase) metav1.OwnerReference {
	return metav1.OwnerReference{
		APIVersion:         tsdbv1.GroupVersion.String(),
		Kind:               "OpenDcsDatabase",
		Name:               cr.Name,
		UID:                cr.UID,
		Controller:         boolPtr(true),
		BlockOwnerDeletion: boolPtr(true),
	}
}

func podLabels(cr *tsdbv1.OpenDcsDatabase) map[string]string {
	return map[string]string{controller.LabelForDatabase: cr.Name}
}

// BuildAppUserSecret builds the application-user secret created once on first sight of
// a resource (§4.7: "application user secret named <parent>-app-user ... username
// dcs_admin"). Callers must only invoke this when no such secret already exists.
func BuildAppUserSecret(cr *tsdbv1.OpenDcsDatabase) (*corev1.Secret, error) {
	password, err := utils.GeneratePassword(64)
	if err != nil {
		return nil, fmt.Errorf("failed to generate app-user password for %s: %w", cr.Name, err)
	}
	return &corev1.Secret{
		TypeMeta: metav1.TypeMeta{APIVersion: "v1", Kind: "Secret"},
		ObjectMeta: metav1.ObjectMeta{
			Name:      cr.Name + "-app-user",
			Namespace: cr.Namespace,
			Annotations: map[string]string{
				controller.AnnotationForDatabase: cr.Name,
			},
			OwnerReferences: []metav1.OwnerReference{ownerRef(cr)},
		},
		Type: corev1.SecretTypeOpaque,
		Data: map[string][]byte{
			"username": []byte("dcs_admin"),
			"password": []byte(password),
		},
	}, nil
}

// BuildScriptConfigMap builds the fixed migration script configmap (§4.7 step 3).
func BuildScriptConfigMap(cr *tsdbv1.OpenDcsDatabase) *corev1.ConfigMap {
	return &corev1.ConfigMap{
		TypeMeta: metav1.TypeMeta{APIVersion: "v1", Kind: "ConfigMap"},
		ObjectMeta: metav1.ObjectMeta{
			Name:            cr.Name + "-schema-scripts",
			Namespace:       cr.Namespace,
			OwnerReferences: []metav1.OwnerReference{ownerRef(cr)},
		},
		Data: map[string]string{
			controller.SchemaScriptKey: schemaScript,
		},
	}
}

// BuildMigrationJob builds the migration job described in §4.7 step 4: env vars
// placeholder_<k>=<v> for each spec.placeholders entry (sorted for deterministic pod
// spec output), plus DATABASE_URL from an optional secretKeyRef, with the script,
// admin-credentials and app-credentials secrets mounted as volumes.
func BuildMigrationJob(cr *tsdbv1.OpenDcsDatabase) *batchv1.Job {
	keys := make([]string, 0, len(cr.Spec.Placeholders))
	for k := range cr.Spec.Placeholders {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]corev1.EnvVar, 0, len(keys)+1)
	for _, k := range keys {
		env = append(env, corev1.EnvVar{Name: "placeholder_" + k, Value: cr.Spec.Placeholders[k]})
	}
	env = append(env, corev1.EnvVar{
		Name: "DATABASE_URL",
		ValueFrom: &corev1.EnvVarSource{
			SecretKeyRef: &corev1.SecretKeySelector{
				LocalObjectReference: corev1.LocalObjectReference{Name: cr.Spec.DatabaseSecret},
				Key:                  "jdbcUrl",
				Optional:             boolPtr(true),
			},
		},
	})

	backoffLimit := controller.DefaultJobBackoffLimit

	return &batchv1.Job{
		TypeMeta: metav1.TypeMeta{APIVersion: "batch/v1", Kind: "Job"},
		ObjectMeta: metav1.ObjectMeta{
			Name:            cr.Name + "-database-migration",
			Namespace:       cr.Namespace,
			Labels:          podLabels(cr),
			OwnerReferences: []metav1.OwnerReference{ownerRef(cr)},
		},
		Spec: batchv1.JobSpec{
			BackoffLimit: &backoffLimit,
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{Labels: podLabels(cr)},
				Spec: corev1.PodSpec{
					RestartPolicy: corev1.RestartPolicyNever,
					Containers: []corev1.Container{{
						Name:    "schema-migration",
						Image:   cr.Spec.SchemaVersion,
						Command: []string{"/bin/bash", "/scripts/schema.sh"},
						Env:     env,
						SecurityContext: &corev1.SecurityContext{
							AllowPrivilegeEscalation: boolPtr(false),
							Privileged:               boolPtr(false),
						},
						VolumeMounts: []corev1.VolumeMount{
							{Name: "scripts", MountPath: "/scripts"},
							{Name: "admin-credentials", MountPath: "/secrets/admin"},
							{Name: "app-credentials", MountPath: "/secrets/app"},
						},
					}},
					Volumes: []corev1.Volume{
						{
							Name: "scripts",
							VolumeSource: corev1.VolumeSource{
								ConfigMap: &corev1.ConfigMapVolumeSource{
									LocalObjectReference: corev1.LocalObjectReference{Name: cr.Name + "-schema-scripts"},
								},
							},
						},
						{
							Name: "admin-credentials",
							VolumeSource: corev1.VolumeSource{
								Secret: &corev1.SecretVolumeSource{SecretName: cr.Spec.DatabaseSecret},
							},
						},
						{
							Name: "app-credentials",
							VolumeSource: corev1.VolumeSource{
								Secret: &corev1.SecretVolumeSource{SecretName: cr.Name + "-app-user"},
							},
						},
					},
				},
			},
		},
	}
}
