package compat

import "github.com/gridmeta/gridmeta/version"

// Role is one side of the gridmeta protocol.
type Role int

const (
	RoleServer Role = iota
	RoleClient
)

func (r Role) String() string {
	switch r {
	case RoleServer:
		return "server"
	case RoleClient:
		return "client"
	default:
		return "role(?)"
	}
}

// ParseRole maps a role name to a Role.
func ParseRole(s string) (Role, bool) {
	switch s {
	case "server":
		return RoleServer, true
	case "client":
		return RoleClient, true
	default:
		return 0, false
	}
}

type eventKind int

const (
	featureAdded eventKind = iota
	featureRemoved
)

func (k eventKind) String() string {
	if k == featureRemoved {
		return "remove"
	}
	return "add"
}

// event is one entry of the historical mutation log: the given role added
// or removed the given feature at the given version.
type event struct {
	role    Role
	kind    eventKind
	feature Feature
	at      version.Number
}

func added(r Role, f Feature, at version.Number) event {
	return event{role: r, kind: featureAdded, feature: f, at: at}
}

func removed(r Role, f Feature, at version.Number) event {
	return event{role: r, kind: featureRemoved, feature: f, at: at}
}

func v(major, minor, patch uint64) version.Number {
	return version.New(major, minor, patch)
}

// history is the chronological record of every feature addition and
// removal on each side of the protocol. Replay order is load-bearing:
// entries must stay in true historical order, and each (role, feature)
// pair gets at most one add followed by at most one remove.
//
// A client entry added at version.Max() reserves the feature for a future
// client build; no current client exercises it yet.
var history = []event{
	// 2023-10-17, 1.2.163: server ships the streamed kv_read_v1 RPC.
	// The entries sharing that version had existed for a while already;
	// 1.2.163 is their recorded baseline.
	added(RoleServer, FeatureOperationAsIs, v(1, 2, 163)),
	added(RoleServer, FeatureKVAPI, v(1, 2, 163)),
	added(RoleServer, FeatureKVAPIGetKV, v(1, 2, 163)),
	added(RoleServer, FeatureKVAPIMGetKV, v(1, 2, 163)),
	added(RoleServer, FeatureKVAPIListKV, v(1, 2, 163)),
	added(RoleServer, FeatureKVReadV1, v(1, 2, 163)),

	added(RoleClient, FeatureOperationAsIs, v(1, 2, 163)),
	added(RoleClient, FeatureKVAPI, v(1, 2, 163)),
	added(RoleClient, FeatureKVAPIGetKV, v(1, 2, 163)),
	added(RoleClient, FeatureKVAPIMGetKV, v(1, 2, 163)),
	added(RoleClient, FeatureKVAPIListKV, v(1, 2, 163)),

	// 2023-10-20, 1.2.176: client starts calling kv_read_v1, falling back
	// to the unary path against servers older than 1.2.163.
	added(RoleClient, FeatureKVReadV1, v(1, 2, 176)),

	// 2023-12-16, 1.2.258: server adds transactions and TTL on put.
	added(RoleServer, FeatureTxn, v(1, 2, 258)),
	added(RoleServer, FeatureTxnReplyError, v(1, 2, 258)),
	added(RoleServer, FeatureTxnPutWithTTL, v(1, 2, 258)),

	added(RoleClient, FeatureTxnReplyError, v(1, 2, 258)),

	// 1.2.259: server adds export, watch, member_list, get_cluster_status
	// and get_client_info. (Recorded as .259; the .258 binary reported
	// itself as .257.)
	added(RoleServer, FeatureExport, v(1, 2, 259)),
	added(RoleServer, FeatureWatch, v(1, 2, 259)),
	added(RoleServer, FeatureMemberList, v(1, 2, 259)),
	added(RoleServer, FeatureClusterStatus, v(1, 2, 259)),
	added(RoleServer, FeatureClientInfo, v(1, 2, 259)),

	added(RoleClient, FeatureTxn, v(1, 2, 259)),
	added(RoleClient, FeatureExport, v(1, 2, 259)),
	added(RoleClient, FeatureWatch, v(1, 2, 259)),
	added(RoleClient, FeatureMemberList, v(1, 2, 259)),
	added(RoleClient, FeatureClusterStatus, v(1, 2, 259)),
	added(RoleClient, FeatureClientInfo, v(1, 2, 259)),

	// 2024-01-07, 1.2.287: client stops issuing the unary kv_api
	// get/mget/list sub-operations.
	removed(RoleClient, FeatureKVAPIGetKV, v(1, 2, 287)),
	removed(RoleClient, FeatureKVAPIMGetKV, v(1, 2, 287)),
	removed(RoleClient, FeatureKVAPIListKV, v(1, 2, 287)),

	// 2024-01-25, 1.2.315: server adds export_v1 with caller-chosen chunk size.
	added(RoleServer, FeatureExportV1, v(1, 2, 315)),

	// 2024-03-04, 1.2.361: client switches put expiry to TTL, requiring
	// the 1.2.258 server support.
	added(RoleClient, FeatureTxnPutWithTTL, v(1, 2, 361)),

	// 2024-11-22, 1.2.663: server drops the unary kv_api sub-operations.
	removed(RoleServer, FeatureKVAPIGetKV, v(1, 2, 663)),
	removed(RoleServer, FeatureKVAPIMGetKV, v(1, 2, 663)),
	removed(RoleServer, FeatureKVAPIListKV, v(1, 2, 663)),

	// 2024-11-23, 1.2.663: client stops using the as-is put operation.
	removed(RoleClient, FeatureOperationAsIs, v(1, 2, 663)),

	// 2024-12-16, 1.2.674: server adds the keys-with-prefix transaction condition.
	added(RoleServer, FeatureTxnConditionKeysPrefix, v(1, 2, 674)),

	// 2024-12-20, 1.2.676: server adds transaction operations and stops
	// populating the transaction reply error field; client stops reading it.
	added(RoleServer, FeatureTxnOperations, v(1, 2, 676)),
	removed(RoleClient, FeatureTxnReplyError, v(1, 2, 676)),

	// 2024-12-26, 1.2.677: server adds the watch initial flush.
	added(RoleServer, FeatureWatchInitialFlush, v(1, 2, 677)),

	// 2025-04-15, 1.2.726: client adopts the watch initial flush, the init
	// flag, and the new transaction condition and operations.
	added(RoleClient, FeatureWatchInitialFlush, v(1, 2, 726)),
	added(RoleClient, FeatureWatchInitFlag, v(1, 2, 726)),
	added(RoleClient, FeatureTxnConditionKeysPrefix, v(1, 2, 726)),
	added(RoleClient, FeatureTxnOperations, v(1, 2, 726)),

	// 2025-05-08, 1.2.736: server marks watch responses with the init flag.
	added(RoleServer, FeatureWatchInitFlag, v(1, 2, 736)),

	// 2025-06-09, 1.2.755: server removes the transaction reply error field.
	removed(RoleServer, FeatureTxnReplyError, v(1, 2, 755)),

	// 2025-06-11, 1.2.756: put responses carry the resulting key state.
	added(RoleServer, FeaturePutResponseCurrent, v(1, 2, 756)),
	added(RoleClient, FeaturePutResponseCurrent, v(1, 2, 756)),

	// 2025-06-24, 1.2.764: server adds the fetch-add counter op.
	added(RoleServer, FeatureFetchAddU64, v(1, 2, 764)),

	// 2025-07-03, 1.2.770: server accepts expiry in seconds or millis,
	// and adds sequential puts.
	added(RoleServer, FeatureExpireInMillis, v(1, 2, 770)),
	added(RoleServer, FeaturePutSequential, v(1, 2, 770)),

	// 2025-09-27, 1.2.821: client starts using fetch-add. (1.2.764 was
	// yanked; 1.2.768 is the oldest server actually shipping it.)
	added(RoleClient, FeatureFetchAddU64, v(1, 2, 821)),

	// 2025-09-30, 1.2.823: server records the raft-log proposing time in
	// key metadata; client drops the legacy unary kv_api RPC entirely.
	added(RoleServer, FeatureProposedAtMs, v(1, 2, 823)),
	removed(RoleClient, FeatureKVAPI, v(1, 2, 823)),

	// 2025-10-16, 1.2.828: fetch-add becomes fetch-increase with max_value.
	added(RoleServer, FeatureFetchIncreaseU64, v(1, 2, 828)),

	// 2026-01-12/13, 1.2.869: server adds the streaming kv_list and
	// kv_get_many RPCs.
	added(RoleServer, FeatureKVList, v(1, 2, 869)),
	added(RoleServer, FeatureKVGetMany, v(1, 2, 869)),

	// 2026-02-05, 260205.0.0: client lets applications use milli expiry
	// and sequential puts.
	added(RoleClient, FeatureExpireInMillis, v(260205, 0, 0)),
	added(RoleClient, FeaturePutSequential, v(260205, 0, 0)),

	// Reserved: no current client build uses these yet.
	added(RoleClient, FeatureExportV1, version.Max()),
	added(RoleClient, FeatureProposedAtMs, version.Max()),
	added(RoleClient, FeatureFetchIncreaseU64, version.Max()),
	added(RoleClient, FeatureKVList, version.Max()),
	added(RoleClient, FeatureKVGetMany, version.Max()),
}
