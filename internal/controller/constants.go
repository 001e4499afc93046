package controller

import "time"

const (
	/*** API groups ***/
	// LrgsGroup is the API group of LrgsCluster, DdsConnection and DrgsConnection.
	LrgsGroup = "lrgs.opendcs.org"
	// TsdbGroup is the API group of OpenDcsDatabase.
	TsdbGroup = "tsdb.opendcs.org"

	/*** Field managers (C5) ***/
	LrgsFieldManager     = "lrgs-controller"
	DatabaseFieldManager = "database-controller"

	/*** Requeue cadence (C2/§4.2) ***/
	RequeueIntervalSuccess  = 1800 * time.Second
	RequeueIntervalError    = 300 * time.Second
	RequeueIntervalBuildErr = 3600 * time.Second

	/*** LRGS network defaults (§4.9) ***/
	DdsPortDefault     = 16003
	DrgsMsgPortDefault = 17010
	DrgsEvtPortDefault = 17011

	/*** Managed users (§3.2) ***/
	ManagedUserLrgsAdmin   = "lrgsadmin"
	ManagedUserReplication = "replication"
	ManagedUserRoutingUser = "routing-user"

	// ManagedUserSecretType is the type of managed user secrets.
	ManagedUserSecretType = LrgsGroup + "/ddsuser"

	/*** Labels & annotations (§6.5) ***/
	LabelLrgsClusterName = LrgsGroup + "/lrgs-cluster"
	LabelAppName         = "app.kubernetes.io/name"
	LabelAppNameLrgs     = "lrgs"

	AnnotationForCluster  = LrgsGroup + "/for-cluster"
	AnnotationConfigHash  = LrgsGroup + "/lrgs-config-hash"
	AnnotationScriptHash  = LrgsGroup + "/lrgs-script-hash"
	AnnotationForDatabase = TsdbGroup + "/for-database"
	// LabelForDatabase is the same key as AnnotationForDatabase, applied as a pod/job
	// label rather than an annotation (§4.7: "pods labeled <tsdb-group>/for-database").
	LabelForDatabase = AnnotationForDatabase

	/*** Configuration secret/configmap keys (§4.3.4, §6.4) ***/
	KeyPasswordFile  = ".lrgs.passwd"
	KeyDdsRecvConfig = "ddsrecv.conf"
	KeyDrgsConfig    = "drgsconf.xml"
	KeyLrgsConfig    = "lrgs.conf"
	KeyStartupScript = "lrgs.sh"

	/*** Schema migration (§4.7) ***/
	SchemaScriptKey                  = "schema.sh"
	DefaultJobBackoffLimit           = int32(6)
	PreparingToMigrateTimeoutDefault = 30 * time.Minute
)
