package compat

import "fmt"

// Feature is a named capability of the gridmeta metadata protocol.
//
// The catalog is closed and known at build time. Growing it means adding a
// constant here, its id in featureIDs, and a lifetime entry for both roles
// in history.go; registry construction fails on any gap.
type Feature int

const (
	// FeatureKVAPI is the unary kv_api() RPC for key-value operations.
	FeatureKVAPI Feature = iota

	// FeatureKVAPIGetKV is the kv_api() sub-operation reading a single key.
	FeatureKVAPIGetKV

	// FeatureKVAPIMGetKV is the kv_api() sub-operation reading multiple keys.
	FeatureKVAPIMGetKV

	// FeatureKVAPIListKV is the kv_api() sub-operation listing keys by prefix.
	FeatureKVAPIListKV

	// FeatureKVReadV1 is the stream-based kv_read_v1() RPC.
	FeatureKVReadV1

	// FeatureTxn is the transaction() RPC for multi-key atomic operations.
	FeatureTxn

	// FeatureTxnReplyError is the TxnReply error field for transaction failures.
	FeatureTxnReplyError

	// FeatureTxnPutWithTTL is TTL support in transactional put requests.
	FeatureTxnPutWithTTL

	// FeatureTxnConditionKeysPrefix is the prefix-count transaction condition.
	FeatureTxnConditionKeysPrefix

	// FeatureTxnOperations is bool-expression operations in transaction requests.
	FeatureTxnOperations

	// FeatureOperationAsIs keeps a value untouched while updating its metadata.
	FeatureOperationAsIs

	// FeatureExport is the export() RPC dumping server data.
	FeatureExport

	// FeatureExportV1 is the export_v1() RPC with configurable chunk size.
	FeatureExportV1

	// FeatureWatch is the watch() RPC subscribing to key change events.
	FeatureWatch

	// FeatureWatchInitialFlush flushes existing keys at watch stream start.
	FeatureWatchInitialFlush

	// FeatureWatchInitFlag marks watch responses as init vs change events.
	FeatureWatchInitFlag

	// FeatureMemberList is the member_list() RPC for cluster membership.
	FeatureMemberList

	// FeatureClusterStatus is the get_cluster_status() RPC.
	FeatureClusterStatus

	// FeatureClientInfo is the get_client_info() RPC for connection info.
	FeatureClientInfo

	// FeaturePutResponseCurrent returns the key state after a put.
	FeaturePutResponseCurrent

	// FeatureFetchAddU64 is the fetch-add counter op (deprecated by
	// FeatureFetchIncreaseU64).
	FeatureFetchAddU64

	// FeatureExpireInMillis accepts expiry timestamps in seconds or millis.
	FeatureExpireInMillis

	// FeaturePutSequential generates monotonic sequence keys on put.
	FeaturePutSequential

	// FeatureProposedAtMs stores the raft-log proposing time in key metadata.
	FeatureProposedAtMs

	// FeatureFetchIncreaseU64 is the fetch-increase counter op with max_value.
	FeatureFetchIncreaseU64

	// FeatureKVList is the paginated, streaming kv_list() RPC.
	FeatureKVList

	// FeatureKVGetMany is the streaming kv_get_many() RPC.
	FeatureKVGetMany

	// featureCount anchors All() and the id table; keep it last.
	featureCount
)

// featureIDs maps every feature to its stable string id, used in
// diagnostics and logs. Index gaps fail the catalog tests.
var featureIDs = [featureCount]string{
	FeatureKVAPI:                  "kv_api",
	FeatureKVAPIGetKV:             "kv_api/get_kv",
	FeatureKVAPIMGetKV:            "kv_api/mget_kv",
	FeatureKVAPIListKV:            "kv_api/list_kv",
	FeatureKVReadV1:               "kv_read_v1",
	FeatureTxn:                    "transaction",
	FeatureTxnReplyError:          "transaction/reply_error",
	FeatureTxnPutWithTTL:          "transaction/put_with_ttl",
	FeatureTxnConditionKeysPrefix: "transaction/condition_keys_prefix",
	FeatureTxnOperations:          "transaction/operations",
	FeatureOperationAsIs:          "operation/as_is",
	FeatureExport:                 "export",
	FeatureExportV1:               "export_v1",
	FeatureWatch:                  "watch",
	FeatureWatchInitialFlush:      "watch/initial_flush",
	FeatureWatchInitFlag:          "watch/init_flag",
	FeatureMemberList:             "member_list",
	FeatureClusterStatus:          "get_cluster_status",
	FeatureClientInfo:             "get_client_info",
	FeaturePutResponseCurrent:     "put_response/current",
	FeatureFetchAddU64:            "fetch_add_u64",
	FeatureExpireInMillis:         "expire_in_millis",
	FeaturePutSequential:          "put_sequential",
	FeatureProposedAtMs:           "proposed_at_ms",
	FeatureFetchIncreaseU64:       "fetch_increase_u64",
	FeatureKVList:                 "kv_list",
	FeatureKVGetMany:              "kv_get_many",
}

// All returns every catalog feature in fixed, stable order. It is the
// exhaustiveness anchor for the registry's completeness check.
func All() []Feature {
	all := make([]Feature, featureCount)
	for i := range all {
		all[i] = Feature(i)
	}
	return all
}

// String returns the stable string id for the feature.
func (f Feature) String() string {
	if f < 0 || f >= featureCount {
		return fmt.Sprintf("feature(%d)", int(f))
	}
	return featureIDs[f]
}
