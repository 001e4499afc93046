package lrgs

import (
	"crypto/sha1" //nolint:gosec // legacy compatibility contract, not a security property (§4.3.3)
	"encoding/xml"
	"fmt"
	"sort"
	"strings"

	corev1 "k8s.io/api/core/v1"

	lrgsv1 "github.com/opendcs-io/opendcs-operator/api/lrgs/v1"
	"github.com/opendcs-io/opendcs-operator/internal/controller"
)

// ddsConnEntry is one <connection> element of <ddsrecvconf>.
type ddsConnEntry struct {
	XMLName      xml.Name `xml:"connection"`
	Number       int      `xml:"number,attr"`
	Host         string   `xml:"host,attr"`
	Enabled      bool     `xml:"enabled"`
	Port         int32    `xml:"port"`
	Name         string   `xml:"name"`
	Username     string   `xml:"username"`
	Authenticate bool     `xml:"authenticate"`
}

type ddsRecvConf struct {
	XMLName     xml.Name       `xml:"ddsrecvconf"`
	Connections []ddsConnEntry `xml:"connection"`
}

// BuildDdsRecvConfig produces the <ddsrecvconf> document per §4.3.1: peers (from DNS
// SRV discovery) numbered first as user "replication" on the fixed DDS port, then
// user-declared DdsConnection resources in stable (name-sorted) order.
func BuildDdsRecvConfig(peers []Peer, conns []lrgsv1.DdsConnection) ([]byte, error) {
	doc := ddsRecvConf{Connections: []ddsConnEntry{}}

	n := 0
	for _, p := range peers {
		doc.Connections = append(doc.Connections, ddsConnEntry{
			Number:       n,
			Host:         p.Host,
			Enabled:      true,
			Port:         controller.DdsPortDefault,
			Name:         fmt.Sprintf("replication-%d", n),
			Username:     controller.ManagedUserReplication,
			Authenticate: true,
		})
		n++
	}

	sorted := make([]lrgsv1.DdsConnection, len(conns))
	copy(sorted, conns)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	for _, c := range sorted {
		doc.Connections = append(doc.Connections, ddsConnEntry{
			Number:       n,
			Host:         c.Spec.Hostname,
			Enabled:      c.Spec.Enabled,
			Port:         c.Spec.Port,
			Name:         c.Name,
			Username:     c.Spec.Username,
			Authenticate: true,
		})
		n++
	}

	return marshalXML(doc)
}

// drgsConnEntry is one <connection> element of <drgsconf>.
type drgsConnEntry struct {
	XMLName      xml.Name `xml:"connection"`
	Number       int      `xml:"number,attr"`
	Host         string   `xml:"host,attr"`
	Name         string   `xml:"name"`
	Enabled      bool     `xml:"enabled"`
	MsgPort      int32    `xml:"msgport"`
	EvtPort      int32    `xml:"evtport"`
	EvtEnabled   bool     `xml:"evtenabled"`
	StartPattern string   `xml:"startpattern,omitempty"`
}

type drgsConf struct {
	XMLName     xml.Name        `xml:"drgsconf"`
	Connections []drgsConnEntry `xml:"connection"`
}

// MaxDrgsConnections is the caller-enforced cap from §4.3.2.
const MaxDrgsConnections = 64

// BuildDrgsConfig produces the <drgsconf> document per §4.3.2, numbering from zero in
// stable (name-sorted) order.
func BuildDrgsConfig(conns []lrgsv1.DrgsConnection) ([]byte, error) {
	sorted := make([]lrgsv1.DrgsConnection, len(conns))
	copy(sorted, conns)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	doc := drgsConf{Connections: []drgsConnEntry{}}
	for i, c := range sorted {
		doc.Connections = append(doc.Connections, drgsConnEntry{
			Number:       i,
			Host:         c.Spec.Hostname,
			Name:         c.Name,
			Enabled:      c.Spec.Enabled,
			MsgPort:      c.Spec.MsgPort,
			EvtPort:      c.Spec.EvtPort,
			EvtEnabled:   c.Spec.EvtEnabled,
			StartPattern: c.Spec.StartPattern,
		})
	}
	return marshalXML(doc)
}

func marshalXML(v interface{}) ([]byte, error) {
	out, err := xml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal xml: %w", err)
	}
	return out, nil
}

// ManagedUser is a row of the legacy password file (§4.3.3).
type ManagedUser struct {
	Username string
	Password string
	Roles    string // comma-joined, or "" for none
}

// BuildPasswordFile emits the legacy DDS password file: one newline-terminated record
// per user, "username:roles-or-none:SHA1_HEX_UPPER(u+p+u+p):". The hash is a legacy
// compatibility contract (§4.3.3) with no cryptographic claim - hence the explicit
// nolint for the weak-hash linter.
func BuildPasswordFile(users []ManagedUser) []byte {
	sorted := make([]ManagedUser, len(users))
	copy(sorted, users)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Username < sorted[j].Username })

	var b strings.Builder
	for _, u := range sorted {
		roles := u.Roles
		if roles == "" {
			roles = "none"
		}
		sum := sha1.Sum([]byte(u.Username + u.Password + u.Username + u.Password)) //nolint:gosec
		hash := strings.ToUpper(fmt.Sprintf("%x", sum))
		fmt.Fprintf(&b, "%s:%s:%s:\n", u.Username, roles, hash)
	}
	return []byte(b.String())
}

// ManagedUserFromSecret extracts a ManagedUser from a secret of type
// <group>/ddsuser (§3.2).
func ManagedUserFromSecret(secret *corev1.Secret) (ManagedUser, bool) {
	username, ok := secret.Data["username"]
	if !ok {
		return ManagedUser{}, false
	}
	password, ok := secret.Data["password"]
	if !ok {
		return ManagedUser{}, false
	}
	roles := string(secret.Data["roles"])
	return ManagedUser{Username: string(username), Password: string(password), Roles: roles}, true
}

// BuildLrgsConf renders the fixed-shape lrgs.conf text (§6.4).
func BuildLrgsConf() []byte {
	return []byte(fmt.Sprintf(`archiveDir: /archive
enableDdsRecv: true
ddsRecvConfig: /config/%s
enableDrgsRecv: true
drgsRecvConfig: ${DCSTOOL_HOME}/config/%s
htmlStatusSeconds: 30
ddsListenPort: %d
ddsRequireAuth: true
noTimeout: false
`, controller.KeyDdsRecvConfig, controller.KeyDrgsConfig, controller.DdsPortDefault))
}
