package tenant_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clinickit/clinickit/pkg/tenant"
)

func TestParseClaim(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		claim any
		want  tenant.Resolution
	}{
		{"native int", 42, tenant.Found(42)},
		{"native int64", int64(42), tenant.Found(42)},
		{"json number as float64", float64(42), tenant.Found(42)},
		{"string-encoded integer", "42", tenant.Found(42)},
		{"json.Number", json.Number("42"), tenant.Found(42)},
		{"negative string integer", "-3", tenant.Found(-3)},
		{"absent", nil, tenant.Absent()},
		{"non-integer string", "abc", tenant.Absent()},
		{"empty string", "", tenant.Absent()},
		{"fractional number", 41.5, tenant.Absent()},
		{"boolean", true, tenant.Absent()},
		{"list", []any{42}, tenant.Absent()},
		{"object", map[string]any{"id": 42}, tenant.Absent()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tenant.ParseClaim(tt.claim))
		})
	}
}
