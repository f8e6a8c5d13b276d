package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Username string `json:"username" validate:"required,username"`
	Rule     string `json:"rounding_rule" validate:"required,rounding_rule"`
	Date     string `query:"start_date" validate:"omitempty,ymd_date"`
}

func TestValidator_CustomTags(t *testing.T) {
	v := GetValidator().GetValidate()

	tests := []struct {
		name      string
		input     sample
		wantField string
	}{
		{"valid", sample{Username: "jane_doe", Rule: "fixed", Date: "2026-02-28"}, ""},
		{"empty date allowed", sample{Username: "jane_doe", Rule: "custom"}, ""},
		{"short username", sample{Username: "jd", Rule: "fixed"}, "username"},
		{"username with dash", sample{Username: "jane-doe", Rule: "fixed"}, "username"},
		{"unknown rule", sample{Username: "jane_doe", Rule: "nearest"}, "rounding_rule"},
		{"bad date", sample{Username: "jane_doe", Rule: "fixed", Date: "2026-02-30"}, "start_date"},
		{"wrong date format", sample{Username: "jane_doe", Rule: "fixed", Date: "02/01/2026"}, "start_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.wantField, verrs[0].Field())
		})
	}
}

func TestGetValidator_Singleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
