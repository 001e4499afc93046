package schema

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	tsdbv1 "github.com/opendcs-io/opendcs-operator/api/tsdb/v1"
	"github.com/opendcs-io/opendcs-operator/internal/controller"
)

func sampleDatabase() *tsdbv1.OpenDcsDatabase {
	return &tsdbv1.OpenDcsDatabase{
		ObjectMeta: metav1.ObjectMeta{Name: "demo", Namespace: "ns", UID: "uid-1"},
		Spec: tsdbv1.OpenDcsDatabaseSpec{
			SchemaVersion:  "opendcs/schema:42",
			DatabaseSecret: "demo-db-creds",
			Placeholders:   map[string]string{"region": "mw", "office": "nwo"},
		},
	}
}

var _ = Describe("BuildAppUserSecret", func() {
	It("creates the dcs_admin application user with a fresh password", func() {
		cr := sampleDatabase()
		s, err := BuildAppUserSecret(cr)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Name).To(Equal("demo-app-user"))
		Expect(string(s.Data["username"])).To(Equal("dcs_admin"))
		Expect(s.Data["password"]).NotTo(BeEmpty())
		Expect(s.Annotations[controller.AnnotationForDatabase]).To(Equal("demo"))
		Expect(s.OwnerReferences).To(HaveLen(1))
	})

	It("generates distinct passwords across calls", func() {
		cr := sampleDatabase()
		s1, err := BuildAppUserSecret(cr)
		Expect(err).NotTo(HaveOccurred())
		s2, err := BuildAppUserSecret(cr)
		Expect(err).NotTo(HaveOccurred())
		Expect(s1.Data["password"]).NotTo(Equal(s2.Data["password"]))
	})
})

var _ = Describe("BuildScriptConfigMap", func() {
	It("embeds the fixed migration script", func() {
		cr := sampleDatabase()
		cm := BuildScriptConfigMap(cr)
		Expect(cm.Name).To(Equal("demo-schema-scripts"))
		Expect(cm.Data[controller.SchemaScriptKey]).To(ContainSubstring("dbimport --schema"))
	})
})

var _ = Describe("BuildMigrationJob", func() {
	It("sorts placeholder env vars by key and appends DATABASE_URL", func() {
		cr := sampleDatabase()
		job := BuildMigrationJob(cr)

		env := job.Spec.Template.Spec.Containers[0].Env
		Expect(env).To(HaveLen(3))
		Expect(env[0].Name).To(Equal("placeholder_office"))
		Expect(env[0].Value).To(Equal("nwo"))
		Expect(env[1].Name).To(Equal("placeholder_region"))
		Expect(env[1].Value).To(Equal("mw"))
		Expect(env[2].Name).To(Equal("DATABASE_URL"))
		Expect(env[2].ValueFrom.SecretKeyRef.Name).To(Equal("demo-db-creds"))
		Expect(env[2].ValueFrom.SecretKeyRef.Key).To(Equal("jdbcUrl"))
		Expect(*env[2].ValueFrom.SecretKeyRef.Optional).To(BeTrue())
	})

	It("mounts the script, admin-credentials and app-credentials volumes", func() {
		cr := sampleDatabase()
		job := BuildMigrationJob(cr)
		volNames := map[string]string{}
		for _, v := range job.Spec.Template.Spec.Volumes {
			if v.Secret != nil {
				volNames[v.Name] = v.Secret.SecretName
			}
		}
		Expect(volNames["admin-credentials"]).To(Equal("demo-db-creds"))
		Expect(volNames["app-credentials"]).To(Equal("demo-app-user"))
	})

	It("uses spec.schemaVersion as the migration container image and runs once", func() {
		cr := sampleDatabase()
		job := BuildMigrationJob(cr)
		Expect(job.Spec.Template.Spec.Containers[0].Image).To(Equal("opendcs/schema:42"))
		Expect(job.Spec.Template.Spec.RestartPolicy).To(Equal(corev1.RestartPolicyNever))
		Expect(*job.Spec.BackoffLimit).To(Equal(controller.DefaultJobBackoffLimit))
	})
})
