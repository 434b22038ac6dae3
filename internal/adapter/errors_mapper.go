package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/hyperledger/fabric-sdk-go/pkg/common/errors/status"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// ErrorClass is a coarse reason for a failed ledger call. It is only used to
// enrich log entries; callers branch on the sentinel errors instead.
type ErrorClass string

const (
	ClassTimeout     ErrorClass = "timeout"
	ClassUnavailable ErrorClass = "unavailable"
	ClassEndorsement ErrorClass = "endorsement"
	ClassChaincode   ErrorClass = "chaincode"
	ClassDiscovery   ErrorClass = "discovery"
	ClassUnknown     ErrorClass = "unknown"
)

// mapLedgerError wraps err with sentinel and the name of the failed
// operation. Both sentinel and err stay reachable through errors.Is/As.
func mapLedgerError(sentinel error, op string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %s: %w", sentinel, op, err)
}

// Classify derives an [ErrorClass] from an SDK error chain. Fabric SDK status
// groups are consulted first, then plain gRPC status codes.
func Classify(err error) ErrorClass {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ClassTimeout
	}

	if s, ok := status.FromError(err); ok {
		if class := classifyFabricStatus(s); class != ClassUnknown {
			return class
		}
	}

	if s, ok := grpcstatus.FromError(err); ok {
		return classifyGRPCCode(s.Code())
	}

	return ClassUnknown
}

func classifyFabricStatus(s *status.Status) ErrorClass {
	switch s.Group {
	case status.GRPCTransportStatus:
		return classifyGRPCCode(codes.Code(s.Code))
	case status.ChaincodeStatus:
		return ClassChaincode
	case status.DiscoveryServerStatus:
		return ClassDiscovery
	case status.EndorserServerStatus:
		return ClassEndorsement
	case status.EndorserClientStatus, status.OrdererClientStatus, status.ClientStatus:
		switch s.Code {
		case int32(status.Timeout):
			return ClassTimeout
		case int32(status.ConnectionFailed):
			return ClassUnavailable
		case int32(status.EndorsementMismatch), int32(status.MissingEndorsement):
			return ClassEndorsement
		case int32(status.NoPeersFound):
			return ClassDiscovery
		}
	}

	return ClassUnknown
}

func classifyGRPCCode(code codes.Code) ErrorClass {
	switch code {
	case codes.DeadlineExceeded:
		return ClassTimeout
	case codes.Unavailable:
		return ClassUnavailable
	case codes.PermissionDenied, codes.Unauthenticated:
		return ClassEndorsement
	default:
		return ClassUnknown
	}
}
