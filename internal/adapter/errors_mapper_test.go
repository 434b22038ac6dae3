package adapter

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/hyperledger/fabric-sdk-go/pkg/common/errors/status"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

func TestMapLedgerError_KeepsBothChains(t *testing.T) {
	cause := errors.New("endorsement policy failure")

	err := mapLedgerError(ErrSubmission, "CreateAsset", cause)

	assert.ErrorIs(t, err, ErrSubmission)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "CreateAsset")
}

func TestMapLedgerError_Nil(t *testing.T) {
	assert.NoError(t, mapLedgerError(ErrQuery, "ReadAsset", nil))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClass
	}{
		{name: "nil", err: nil, want: ""},
		{name: "context deadline", err: fmt.Errorf("wrapped: %w", context.DeadlineExceeded), want: ClassTimeout},
		{name: "chaincode", err: status.New(status.ChaincodeStatus, 500, "the asset 674.24354-2754962514 already exists", nil), want: ClassChaincode},
		{name: "discovery", err: status.New(status.DiscoveryServerStatus, 1, "access denied", nil), want: ClassDiscovery},
		{name: "endorser server", err: status.New(status.EndorserServerStatus, 500, "endorse failed", nil), want: ClassEndorsement},
		{name: "client timeout", err: status.New(status.ClientStatus, int32(status.Timeout), "request timed out", nil), want: ClassTimeout},
		{name: "client connection", err: status.New(status.EndorserClientStatus, int32(status.ConnectionFailed), "connection failed", nil), want: ClassUnavailable},
		{name: "no peers", err: status.New(status.ClientStatus, int32(status.NoPeersFound), "no peers", nil), want: ClassDiscovery},
		{name: "fabric grpc transport", err: status.New(status.GRPCTransportStatus, int32(codes.Unavailable), "connection refused", nil), want: ClassUnavailable},
		{name: "plain grpc", err: grpcstatus.Error(codes.DeadlineExceeded, "deadline"), want: ClassTimeout},
		{name: "plain error", err: errors.New("boom"), want: ClassUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}
