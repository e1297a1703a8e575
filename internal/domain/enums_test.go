package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medsupply/orderflow/internal/domain"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want domain.Role
	}{
		{name: "commercial_lower", in: "commercial", want: domain.RoleCommercial},
		{name: "commercial_mixed_case", in: "Commercial", want: domain.RoleCommercial},
		{name: "commercial_upper", in: "COMMERCIAL", want: domain.RoleCommercial},
		{name: "institutional", in: "institutional", want: domain.RoleInstitutional},
		{name: "institutional_padded", in: "  Institutional ", want: domain.RoleInstitutional},
		{name: "unknown_becomes_other", in: "warehouse", want: domain.RoleOther},
		{name: "empty_becomes_other", in: "", want: domain.RoleOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ParseRole(tt.in)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestRoleRequiresClient(t *testing.T) {
	assert.True(t, domain.RoleCommercial.RequiresClient())
	assert.False(t, domain.RoleInstitutional.RequiresClient())
	assert.False(t, domain.RoleOther.RequiresClient())
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, domain.RoleCommercial.IsValid())
	assert.False(t, domain.Role("ADMIN").IsValid())
}
