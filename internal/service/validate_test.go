package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medsupply/orderflow/internal/domain"
	"github.com/medsupply/orderflow/internal/service"
)

func selection(clientID, centerID string, withDate bool) domain.SelectionState {
	var sel domain.SelectionState
	if clientID != "" {
		sel.SetClient(clientID)
	}
	if centerID != "" {
		sel.SetCenter(centerID)
	}
	if withDate {
		sel.SetDeliveryDate(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC))
	}
	return sel
}

func TestValidateOrder(t *testing.T) {
	catalog := []domain.Product{product("1", "Gauze", "10.0")}

	tests := []struct {
		name       string
		role       domain.Role
		sel        domain.SelectionState
		products   []domain.Product
		quantities map[string]int
		wantMsg    string
		wantField  string
	}{
		{
			name:       "commercial_everything_missing_surfaces_client_first",
			role:       domain.RoleCommercial,
			sel:        selection("", "", false),
			products:   nil,
			quantities: map[string]int{},
			wantMsg:    service.MsgSelectClient,
			wantField:  "client_id",
		},
		{
			name:       "institutional_skips_client_rule",
			role:       domain.RoleInstitutional,
			sel:        selection("", "", false),
			products:   catalog,
			quantities: map[string]int{},
			wantMsg:    service.MsgSelectCenter,
			wantField:  "distribution_center_id",
		},
		{
			name:       "missing_date_after_center",
			role:       domain.RoleInstitutional,
			sel:        selection("", "dc-7", false),
			products:   catalog,
			quantities: map[string]int{"1": 1},
			wantMsg:    service.MsgSelectDate,
			wantField:  "delivery_date",
		},
		{
			name:       "empty_catalog",
			role:       domain.RoleInstitutional,
			sel:        selection("", "dc-7", true),
			products:   nil,
			quantities: map[string]int{"1": 1},
			wantMsg:    service.MsgSelectProduct,
			wantField:  "products",
		},
		{
			name:       "all_quantities_zero",
			role:       domain.RoleInstitutional,
			sel:        selection("", "dc-7", true),
			products:   catalog,
			quantities: map[string]int{"1": 0},
			wantMsg:    service.MsgSelectProduct,
			wantField:  "products",
		},
		{
			name:       "commercial_with_client_missing_center",
			role:       domain.RoleCommercial,
			sel:        selection("cl-42", "", false),
			products:   catalog,
			quantities: map[string]int{"1": 1},
			wantMsg:    service.MsgSelectCenter,
			wantField:  "distribution_center_id",
		},
		{
			name:       "commercial_complete",
			role:       domain.RoleCommercial,
			sel:        selection("cl-42", "dc-7", true),
			products:   catalog,
			quantities: map[string]int{"1": 2},
		},
		{
			name:       "institutional_complete_without_client",
			role:       domain.RoleInstitutional,
			sel:        selection("", "dc-7", true),
			products:   catalog,
			quantities: map[string]int{"1": 2},
		},
		{
			name:       "other_role_complete_without_client",
			role:       domain.RoleOther,
			sel:        selection("", "dc-7", true),
			products:   catalog,
			quantities: map[string]int{"1": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidateOrder(tt.role, tt.sel, tt.products, tt.quantities)
			if tt.wantMsg == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, tt.wantMsg, err.Message)
			assert.Equal(t, tt.wantField, err.Field)
		})
	}
}

// Rule order decides only which message surfaces; any single violation still
// fails the whole check.
func TestValidateOrder_EachRuleAloneFails(t *testing.T) {
	catalog := []domain.Product{product("1", "Gauze", "10.0")}
	quantities := map[string]int{"1": 1}

	assert.NotNil(t, service.ValidateOrder(domain.RoleCommercial, selection("", "dc-7", true), catalog, quantities))
	assert.NotNil(t, service.ValidateOrder(domain.RoleCommercial, selection("cl-42", "", true), catalog, quantities))
	assert.NotNil(t, service.ValidateOrder(domain.RoleCommercial, selection("cl-42", "dc-7", false), catalog, quantities))
	assert.NotNil(t, service.ValidateOrder(domain.RoleCommercial, selection("cl-42", "dc-7", true), catalog, map[string]int{}))
	assert.Nil(t, service.ValidateOrder(domain.RoleCommercial, selection("cl-42", "dc-7", true), catalog, quantities))
}
