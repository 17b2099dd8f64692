package kmsg

import "fmt"

// apiEntry describes one API key's supported version range and how to
// construct the right concrete type for a version on either side of
// the wire. Grounded on the teacher's RequestFormatter/api registry
// design in api.go, generalized from a single global map keyed only by
// (key, version) into a table of per-key entries plus small per-key
// factory functions, since Go lacks the reflective struct-tag driven
// registration the original franz-go generator produces.
type apiEntry struct {
	name          string
	minVersion    int16
	maxVersion    int16
	flexibleSince int16 // -1 means never flexible (e.g. SaslHandshake)
	newRequest    func(version int16) (Request, error)
	newResponse   func(version int16) (Response, error)
}

var registry = map[int16]apiEntry{
	APIKeyProduce: {
		name: "Produce", minVersion: 0, maxVersion: 9, flexibleSince: 9,
		newRequest: func(v int16) (Request, error) {
			switch v {
			case 0:
				return &ProduceRequestV0{}, nil
			case 9:
				return &ProduceRequestV9{}, nil
			}
			return nil, unsupportedVersion("Produce", v)
		},
		newResponse: func(v int16) (Response, error) {
			switch v {
			case 0:
				return &ProduceResponseV0{}, nil
			case 9:
				return &ProduceResponseV9{}, nil
			}
			return nil, unsupportedVersion("Produce", v)
		},
	},
	APIKeyFetch: {
		name: "Fetch", minVersion: 0, maxVersion: 12, flexibleSince: 12,
		newRequest: func(v int16) (Request, error) {
			switch v {
			case 0:
				return &FetchRequestV0{}, nil
			case 12:
				return &FetchRequestV12{}, nil
			}
			return nil, unsupportedVersion("Fetch", v)
		},
		newResponse: func(v int16) (Response, error) {
			switch v {
			case 0:
				return &FetchResponseV0{}, nil
			case 12:
				return &FetchResponseV12{}, nil
			}
			return nil, unsupportedVersion("Fetch", v)
		},
	},
	APIKeyListOffsets: {
		name: "ListOffsets", minVersion: 0, maxVersion: 6, flexibleSince: 6,
		newRequest: func(v int16) (Request, error) {
			switch v {
			case 0:
				return &ListOffsetsRequestV0{}, nil
			case 6:
				return &ListOffsetsRequestV6{}, nil
			}
			return nil, unsupportedVersion("ListOffsets", v)
		},
		newResponse: func(v int16) (Response, error) {
			switch v {
			case 0:
				return &ListOffsetsResponseV0{}, nil
			case 6:
				return &ListOffsetsResponseV6{}, nil
			}
			return nil, unsupportedVersion("ListOffsets", v)
		},
	},
	APIKeyMetadata: {
		name: "Metadata", minVersion: 0, maxVersion: 9, flexibleSince: 9,
		newRequest: func(v int16) (Request, error) {
			switch v {
			case 0:
				return &MetadataRequestV0{}, nil
			case 9:
				return &MetadataRequestV9{}, nil
			}
			return nil, unsupportedVersion("Metadata", v)
		},
		newResponse: func(v int16) (Response, error) {
			switch v {
			case 0:
				return &MetadataResponseV0{}, nil
			case 9:
				return &MetadataResponseV9{}, nil
			}
			return nil, unsupportedVersion("Metadata", v)
		},
	},
	APIKeyOffsetCommit: {
		name: "OffsetCommit", minVersion: 0, maxVersion: 8, flexibleSince: 8,
		newRequest: func(v int16) (Request, error) {
			switch v {
			case 0:
				return &OffsetCommitRequestV0{}, nil
			case 8:
				return &OffsetCommitRequestV8{}, nil
			}
			return nil, unsupportedVersion("OffsetCommit", v)
		},
		newResponse: func(v int16) (Response, error) {
			switch v {
			case 0:
				return &OffsetCommitResponseV0{}, nil
			case 8:
				return &OffsetCommitResponseV8{}, nil
			}
			return nil, unsupportedVersion("OffsetCommit", v)
		},
	},
	APIKeyOffsetFetch: {
		name: "OffsetFetch", minVersion: 0, maxVersion: 6, flexibleSince: 6,
		newRequest: func(v int16) (Request, error) {
			switch v {
			case 0:
				return &OffsetFetchRequestV0{}, nil
			case 6:
				return &OffsetFetchRequestV6{}, nil
			}
			return nil, unsupportedVersion("OffsetFetch", v)
		},
		newResponse: func(v int16) (Response, error) {
			switch v {
			case 0:
				return &OffsetFetchResponseV0{}, nil
			case 6:
				return &OffsetFetchResponseV6{}, nil
			}
			return nil, unsupportedVersion("OffsetFetch", v)
		},
	},
	APIKeyFindCoordinator: {
		name: "FindCoordinator", minVersion: 0, maxVersion: 3, flexibleSince: 3,
		newRequest: func(v int16) (Request, error) {
			switch v {
			case 0:
				return &FindCoordinatorRequestV0{}, nil
			case 3:
				return &FindCoordinatorRequestV3{}, nil
			}
			return nil, unsupportedVersion("FindCoordinator", v)
		},
		newResponse: func(v int16) (Response, error) {
			switch v {
			case 0:
				return &FindCoordinatorResponseV0{}, nil
			case 3:
				return &FindCoordinatorResponseV3{}, nil
			}
			return nil, unsupportedVersion("FindCoordinator", v)
		},
	},
	APIKeyJoinGroup: {
		name: "JoinGroup", minVersion: 0, maxVersion: 6, flexibleSince: 6,
		newRequest: func(v int16) (Request, error) {
			switch v {
			case 0:
				return &JoinGroupRequestV0{}, nil
			case 6:
				return &JoinGroupRequestV6{}, nil
			}
			return nil, unsupportedVersion("JoinGroup", v)
		},
		newResponse: func(v int16) (Response, error) {
			switch v {
			case 0:
				return &JoinGroupResponseV0{}, nil
			case 6:
				return &JoinGroupResponseV6{}, nil
			}
			return nil, unsupportedVersion("JoinGroup", v)
		},
	},
	APIKeyHeartbeat: {
		name: "Heartbeat", minVersion: 0, maxVersion: 4, flexibleSince: 4,
		newRequest: func(v int16) (Request, error) {
			switch v {
			case 0:
				return &HeartbeatRequestV0{}, nil
			case 4:
				return &HeartbeatRequestV4{}, nil
			}
			return nil, unsupportedVersion("Heartbeat", v)
		},
		newResponse: func(v int16) (Response, error) {
			switch v {
			case 0:
				return &HeartbeatResponseV0{}, nil
			case 4:
				return &HeartbeatResponseV4{}, nil
			}
			return nil, unsupportedVersion("Heartbeat", v)
		},
	},
	APIKeyLeaveGroup: {
		name: "LeaveGroup", minVersion: 0, maxVersion: 4, flexibleSince: 4,
		newRequest: func(v int16) (Request, error) {
			switch v {
			case 0:
				return &LeaveGroupRequestV0{}, nil
			case 4:
				return &LeaveGroupRequestV4{}, nil
			}
			return nil, unsupportedVersion("LeaveGroup", v)
		},
		newResponse: func(v int16) (Response, error) {
			switch v {
			case 0:
				return &LeaveGroupResponseV0{}, nil
			case 4:
				return &LeaveGroupResponseV4{}, nil
			}
			return nil, unsupportedVersion("LeaveGroup", v)
		},
	},
	APIKeySyncGroup: {
		name: "SyncGroup", minVersion: 0, maxVersion: 4, flexibleSince: 4,
		newRequest: func(v int16) (Request, error) {
			switch v {
			case 0:
				return &SyncGroupRequestV0{}, nil
			case 4:
				return &SyncGroupRequestV4{}, nil
			}
			return nil, unsupportedVersion("SyncGroup", v)
		},
		newResponse: func(v int16) (Response, error) {
			switch v {
			case 0:
				return &SyncGroupResponseV0{}, nil
			case 4:
				return &SyncGroupResponseV4{}, nil
			}
			return nil, unsupportedVersion("SyncGroup", v)
		},
	},
	APIKeySaslHandshake: {
		name: "SaslHandshake", minVersion: 0, maxVersion: 1, flexibleSince: -1,
		newRequest: func(v int16) (Request, error) {
			switch v {
			case 0:
				return &SaslHandshakeRequestV0{}, nil
			case 1:
				return &SaslHandshakeRequestV1{}, nil
			}
			return nil, unsupportedVersion("SaslHandshake", v)
		},
		newResponse: func(v int16) (Response, error) {
			switch v {
			case 0:
				return &SaslHandshakeResponseV0{}, nil
			case 1:
				return &SaslHandshakeResponseV1{}, nil
			}
			return nil, unsupportedVersion("SaslHandshake", v)
		},
	},
	APIKeyCreateTopics: {
		name: "CreateTopics", minVersion: 0, maxVersion: 5, flexibleSince: 5,
		newRequest: func(v int16) (Request, error) {
			switch v {
			case 0:
				return &CreateTopicsRequestV0{}, nil
			case 5:
				return &CreateTopicsRequestV5{}, nil
			}
			return nil, unsupportedVersion("CreateTopics", v)
		},
		newResponse: func(v int16) (Response, error) {
			switch v {
			case 0:
				return &CreateTopicsResponseV0{}, nil
			case 5:
				return &CreateTopicsResponseV5{}, nil
			}
			return nil, unsupportedVersion("CreateTopics", v)
		},
	},
	APIKeyDeleteTopics: {
		name: "DeleteTopics", minVersion: 0, maxVersion: 4, flexibleSince: 4,
		newRequest: func(v int16) (Request, error) {
			switch v {
			case 0:
				return &DeleteTopicsRequestV0{}, nil
			case 4:
				return &DeleteTopicsRequestV4{}, nil
			}
			return nil, unsupportedVersion("DeleteTopics", v)
		},
		newResponse: func(v int16) (Response, error) {
			switch v {
			case 0:
				return &DeleteTopicsResponseV0{}, nil
			case 4:
				return &DeleteTopicsResponseV4{}, nil
			}
			return nil, unsupportedVersion("DeleteTopics", v)
		},
	},
	APIKeyDescribeConfigs: {
		name: "DescribeConfigs", minVersion: 0, maxVersion: 4, flexibleSince: 4,
		newRequest: func(v int16) (Request, error) {
			switch v {
			case 0:
				return &DescribeConfigsRequestV0{}, nil
			case 4:
				return &DescribeConfigsRequestV4{}, nil
			}
			return nil, unsupportedVersion("DescribeConfigs", v)
		},
		newResponse: func(v int16) (Response, error) {
			switch v {
			case 0:
				return &DescribeConfigsResponseV0{}, nil
			case 4:
				return &DescribeConfigsResponseV4{}, nil
			}
			return nil, unsupportedVersion("DescribeConfigs", v)
		},
	},
	APIKeyApiVersions: {
		name: "ApiVersions", minVersion: 0, maxVersion: 3, flexibleSince: 3,
		newRequest: func(v int16) (Request, error) {
			switch v {
			case 0:
				return &ApiVersionsRequestV0{}, nil
			case 3:
				return &ApiVersionsRequestV3{}, nil
			}
			return nil, unsupportedVersion("ApiVersions", v)
		},
		newResponse: func(v int16) (Response, error) {
			switch v {
			case 0:
				return &ApiVersionsResponseV0{}, nil
			case 3:
				return &ApiVersionsResponseV3{}, nil
			}
			return nil, unsupportedVersion("ApiVersions", v)
		},
	},
}

func unsupportedVersion(name string, v int16) error {
	return fmt.Errorf("kmsg: %s v%d is not implemented by this module", name, v)
}

// NewRequest constructs the zero-valued Request for the given API key
// and version, ready to be populated and encoded.
func NewRequest(apiKey, version int16) (Request, error) {
	e, ok := registry[apiKey]
	if !ok {
		return nil, fmt.Errorf("kmsg: unknown API key %d", apiKey)
	}
	return e.newRequest(version)
}

// NewResponse constructs the zero-valued Response for the given API
// key and version, ready to be decoded into.
func NewResponse(apiKey, version int16) (Response, error) {
	e, ok := registry[apiKey]
	if !ok {
		return nil, fmt.Errorf("kmsg: unknown API key %d", apiKey)
	}
	return e.newResponse(version)
}

// APIName returns the human-readable name for an API key, or "" if the
// key is not one this module implements.
func APIName(apiKey int16) string {
	return registry[apiKey].name
}

// IsFlexible reports whether a given (apiKey, version) pair uses
// compact encoding and a trailing tagged-fields section.
func IsFlexible(apiKey, version int16) bool {
	e, ok := registry[apiKey]
	if !ok {
		return false
	}
	return e.flexibleSince >= 0 && version >= e.flexibleSince
}

// RequestHeaderVersion is the exported form of requestHeaderVersion, for
// callers building a frame by hand instead of going through
// AppendRequestFor.
func RequestHeaderVersion(apiKey, version int16) int16 { return requestHeaderVersion(apiKey, version) }

// ResponseHeaderVersion is the exported form of responseHeaderVersion.
func ResponseHeaderVersion(apiKey, version int16) int16 { return responseHeaderVersion(apiKey, version) }

// requestHeaderVersion picks the request header version a given
// (apiKey, version) pair travels under: v2 once the body itself is
// flexible, v1 for every classic-encoded body (client id was added in
// Kafka 0.10 and every API still in this registry postdates that), v0
// only if a caller explicitly wants the oldest header shape.
func requestHeaderVersion(apiKey, version int16) int16 {
	if IsFlexible(apiKey, version) {
		return 2
	}
	return 1
}

// responseHeaderVersion picks the response header version for a given
// (apiKey, version) pair. ApiVersions is the one permanent exception:
// its response always travels under ResponseHeaderV0 even at v3,
// because a client must be able to parse the ApiVersions response
// before it knows whether the broker's flexible-version support
// matches its own -- the response that negotiates flexible encoding
// cannot itself depend on having already negotiated it.
func responseHeaderVersion(apiKey, version int16) int16 {
	if apiKey == APIKeyApiVersions {
		return 0
	}
	if IsFlexible(apiKey, version) {
		return 1
	}
	return 0
}
