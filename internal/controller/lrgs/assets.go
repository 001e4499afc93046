package lrgs

import (
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	"k8s.io/apimachinery/pkg/util/intstr"

	lrgsv1 "github.com/opendcs-io/opendcs-operator/api/lrgs/v1"
	"github.com/opendcs-io/opendcs-operator/internal/controller"
	"github.com/opendcs-io/opendcs-operator/internal/controller/utils"
)

// startupScript is the fixed embedded LRGS startup script (§4.3.5).
const startupScript = `#!/bin/bash
set -euo pipefail
exec /opt/lrgs/bin/lrgs "$@"
`

func selectorLabels() map[string]string {
	return map[string]string{controller.LabelAppName: controller.LabelAppNameLrgs}
}

// clusterLabels is selectorLabels plus the controller.LabelLrgsClusterName label that
// fans watches on referenced and owned objects alike back to the parent LrgsCluster
// (§4.1/§6.5).
func clusterLabels(cr *lrgsv1.LrgsCluster) map[string]string {
	labels := selectorLabels()
	labels[controller.LabelLrgsClusterName] = cr.Name
	return labels
}

func ownerRef(cr *lrgsv1.LrgsCluster) metav1.OwnerReference {
	return metav1.OwnerReference{
		APIVersion:         lrgsv1.GroupVersion.String(),
		Kind:               "LrgsCluster",
		Name:               cr.Name,
		UID:                cr.UID,
		Controller:         boolPtr(true),
		BlockOwnerDeletion: boolPtr(true),
	}
}

func boolPtr(b bool) *bool { return &b }

// BuildConfigSecret builds the single configuration secret described in §4.3.4. The
// config hash is the caller-supplied content hash (C4), recorded only as an annotation
// here; status.checksum itself is written by the reconciler.
func BuildConfigSecret(cr *lrgsv1.LrgsCluster, passwordFile, ddsConf, drgsConf []byte) *corev1.Secret {
	return &corev1.Secret{
		TypeMeta: metav1.TypeMeta{APIVersion: "v1", Kind: "Secret"},
		ObjectMeta: metav1.ObjectMeta{
			Name:      cr.Name + "-config",
			Namespace: cr.Namespace,
			Labels:    clusterLabels(cr),
			Annotations: map[string]string{
				controller.AnnotationForCluster: cr.Name,
			},
			OwnerReferences: []metav1.OwnerReference{ownerRef(cr)},
		},
		Type: corev1.SecretTypeOpaque,
		Data: map[string][]byte{
			controller.KeyPasswordFile:  passwordFile,
			controller.KeyDdsRecvConfig: ddsConf,
			controller.KeyDrgsConfig:    drgsConf,
			controller.KeyLrgsConfig:    BuildLrgsConf(),
		},
	}
}

// BuildScriptConfigMap builds the script configmap carrying the fixed startup script
// (§4.3.5), hashed for rollout by the caller.
func BuildScriptConfigMap(cr *lrgsv1.LrgsCluster) *corev1.ConfigMap {
	return &corev1.ConfigMap{
		TypeMeta: metav1.TypeMeta{APIVersion: "v1", Kind: "ConfigMap"},
		ObjectMeta: metav1.ObjectMeta{
			Name:            cr.Name + "-scripts",
			Namespace:       cr.Namespace,
			Labels:          selectorLabels(),
			OwnerReferences: []metav1.OwnerReference{ownerRef(cr)},
		},
		Data: map[string]string{
			controller.KeyStartupScript: startupScript,
		},
	}
}

// ScriptConfigMapHash hashes the script configmap's content (§4.4, separate from the
// main config hash).
func ScriptConfigMapHash() (string, error) {
	return utils.HashBytes([]byte(startupScript))
}

// BuildServices builds the clustered and headless services described in §4.3.5.
func BuildServices(cr *lrgsv1.LrgsCluster) (clustered, headless *corev1.Service) {
	base := corev1.Service{
		TypeMeta: metav1.TypeMeta{APIVersion: "v1", Kind: "Service"},
		ObjectMeta: metav1.ObjectMeta{
			Namespace:       cr.Namespace,
			Labels:          selectorLabels(),
			OwnerReferences: []metav1.OwnerReference{ownerRef(cr)},
		},
		Spec: corev1.ServiceSpec{
			Selector: selectorLabels(),
			Ports: []corev1.ServicePort{{
				Name:       "dds",
				Port:       controller.DdsPortDefault,
				TargetPort: intstr.FromString("dds"),
				Protocol:   corev1.ProtocolTCP,
			}},
			SessionAffinity: corev1.ServiceAffinityClientIP,
		},
	}

	clustered = base.DeepCopy()
	clustered.Name = cr.Name + "-lrgs-service"

	headless = base.DeepCopy()
	headless.Name = cr.Name + "-lrgs-service-headless"
	headless.Spec.ClusterIP = corev1.ClusterIPNone

	return clustered, headless
}

// BuildStatefulSet builds the LRGS stateful workload described in §4.3.5. configHash and
// scriptHash are embedded as pod-template annotations so that any change forces a
// rolling update (I4).
func BuildStatefulSet(cr *lrgsv1.LrgsCluster, configHash, scriptHash string) (*appsv1.StatefulSet, error) {
	size, err := resource.ParseQuantity(cr.Spec.StorageSize)
	if err != nil {
		return nil, fmt.Errorf("invalid storageSize %q: %w", cr.Spec.StorageSize, err)
	}

	replicas := cr.Spec.Replicas
	runAsUser := int64(1000)
	runAsGroup := int64(1000)
	runAsNonRoot := true
	fsGroup := int64(1000)
	onRootMismatch := corev1.FSGroupChangeOnRootMismatch

	podAnnotations := map[string]string{
		controller.AnnotationConfigHash: configHash,
		controller.AnnotationScriptHash: scriptHash,
	}

	ss := &appsv1.StatefulSet{
		TypeMeta: metav1.TypeMeta{APIVersion: "apps/v1", Kind: "StatefulSet"},
		ObjectMeta: metav1.ObjectMeta{
			Name:            cr.Name,
			Namespace:       cr.Namespace,
			Labels:          selectorLabels(),
			OwnerReferences: []metav1.OwnerReference{ownerRef(cr)},
		},
		Spec: appsv1.StatefulSetSpec{
			Replicas:            &replicas,
			ServiceName:         cr.Name + "-lrgs-service-headless",
			MinReadySeconds:     10,
			Selector:            &metav1.LabelSelector{MatchLabels: selectorLabels()},
			PodManagementPolicy: appsv1.ParallelPodManagement,
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels:      selectorLabels(),
					Annotations: podAnnotations,
				},
				Spec: corev1.PodSpec{
					SecurityContext: &corev1.PodSecurityContext{
						FSGroup:             &fsGroup,
						RunAsUser:           &runAsUser,
						RunAsGroup:          &runAsGroup,
						RunAsNonRoot:        &runAsNonRoot,
						FSGroupChangePolicy: &onRootMismatch,
					},
					Containers: []corev1.Container{{
						Name:    "lrgs",
						Image:   "opendcs/lrgs:latest",
						Command: []string{"/bin/bash", "/scripts/lrgs.sh", "-f", "/config/lrgs.conf"},
						Env: []corev1.EnvVar{{
							Name: "LRGS_INDEX",
							ValueFrom: &corev1.EnvVarSource{
								FieldRef: &corev1.ObjectFieldSelector{
									FieldPath: fmt.Sprintf("metadata.labels['%s']", "apps.kubernetes.io/pod-index"),
								},
							},
						}},
						Ports: []corev1.ContainerPort{{
							Name:          "dds",
							ContainerPort: controller.DdsPortDefault,
							Protocol:      corev1.ProtocolTCP,
						}},
						SecurityContext: &corev1.SecurityContext{
							AllowPrivilegeEscalation: boolPtr(false),
							Privileged:               boolPtr(false),
						},
						VolumeMounts: []corev1.VolumeMount{
							{Name: "archive", MountPath: "/archive"},
							{Name: "scripts", MountPath: "/scripts"},
							{Name: "config", MountPath: "/config"},
						},
					}},
					Volumes: []corev1.Volume{
						{
							Name: "scripts",
							VolumeSource: corev1.VolumeSource{
								ConfigMap: &corev1.ConfigMapVolumeSource{
									LocalObjectReference: corev1.LocalObjectReference{Name: cr.Name + "-scripts"},
								},
							},
						},
						{
							Name: "config",
							VolumeSource: corev1.VolumeSource{
								Secret: &corev1.SecretVolumeSource{SecretName: cr.Name + "-config"},
							},
						},
					},
				},
			},
			VolumeClaimTemplates: []corev1.PersistentVolumeClaim{{
				ObjectMeta: metav1.ObjectMeta{Name: "archive"},
				Spec: corev1.PersistentVolumeClaimSpec{
					AccessModes:      []corev1.PersistentVolumeAccessMode{corev1.ReadWriteOnce},
					StorageClassName: &cr.Spec.StorageClass,
					Resources: corev1.VolumeResourceRequirements{
						Requests: corev1.ResourceList{corev1.ResourceStorage: size},
					},
				},
			}},
		},
	}
	return ss, nil
}

// BuildManagedUserSecret builds a managed user secret for a well-known DDS user
// (§3.2/§4.3.6). Callers must only invoke this when no existing secret was found -
// existing secrets are never overwritten (I5).
func BuildManagedUserSecret(cr *lrgsv1.LrgsCluster, username, roles string) (*corev1.Secret, error) {
	password, err := utils.GeneratePassword(64)
	if err != nil {
		return nil, fmt.Errorf("failed to generate password for managed user %s: %w", username, err)
	}
	return &corev1.Secret{
		TypeMeta: metav1.TypeMeta{APIVersion: "v1", Kind: "Secret"},
		ObjectMeta: metav1.ObjectMeta{
			Name:            fmt.Sprintf("%s-%s-user", cr.Name, username),
			Namespace:       cr.Namespace,
			Labels:          clusterLabels(cr),
			OwnerReferences: []metav1.OwnerReference{ownerRef(cr)},
		},
		Type: corev1.SecretType(controller.ManagedUserSecretType),
		Data: map[string][]byte{
			"username": []byte(username),
			"password": []byte(password),
			"roles":    []byte(roles),
		},
	}, nil
}

// ManagedUserSpecs is the well-known set of managed users (§3.2/§4.3.6).
var ManagedUserSpecs = []struct {
	Username string
	Roles    string
}{
	{controller.ManagedUserLrgsAdmin, "dds,lrgsadmin"},
	{controller.ManagedUserReplication, "dds"},
	{controller.ManagedUserRoutingUser, "dds"},
}
