package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medsupply/orderflow/internal/domain"
)

func TestRequestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *domain.RequestError
		want string
	}{
		{
			name: "server_rejection_uses_status_only",
			err:  &domain.RequestError{Op: "creating order", Kind: domain.KindServer, Status: 500},
			want: "Error creating order: status 500",
		},
		{
			name: "timeout_has_distinct_message",
			err:  &domain.RequestError{Op: "creating order", Kind: domain.KindTimeout, Err: errors.New("context deadline exceeded")},
			want: "Error creating order: request timed out",
		},
		{
			name: "network_carries_underlying_error",
			err:  &domain.RequestError{Op: "fetching clients", Kind: domain.KindNetwork, Err: errors.New("connection refused")},
			want: "Error fetching clients: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestRequestErrorUnwrap(t *testing.T) {
	underlying := errors.New("connection reset")
	err := &domain.RequestError{Op: "creating order", Kind: domain.KindNetwork, Err: underlying}
	assert.True(t, errors.Is(err, underlying))
}
