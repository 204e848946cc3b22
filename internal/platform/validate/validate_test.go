// Copyright (c) 2026 Folium. All rights reserved.

package validate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliumhq/folium/internal/platform/apperr"
	"github.com/foliumhq/folium/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Folium", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_DateOrder checks the start/end chronological rule.
*/
func TestValidator_DateOrder(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	later := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   time.Time
		end     *time.Time
		isValid bool
	}{
		{"no_end_date", start, nil, true},
		{"end_after_start", start, &later, true},
		{"end_equals_start", start, &start, true},
		{"end_before_start", start, &earlier, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.DateOrder("start_date", tt.start, tt.end)

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_URL checks absolute http(s) URL validation.
*/
func TestValidator_URL(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"https", "https://folium.app/u/jane", true},
		{"http", "http://localhost:3000", true},
		{"relative", "/images/avatar.png", false},
		{"scheme_only", "ftp://example.com", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.URL("url", tt.value)

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}
	v.Required("title", "").
		MaxLen("summary", "ok", 200).
		Range("rating", 9, 1, 5)

	require.True(t, v.HasErrors())

	ae := apperr.As(v.Err())
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 2)
	assert.Equal(t, "title", ae.Details[0].Field)
	assert.Equal(t, "rating", ae.Details[1].Field)
}

/*
TestValidator_MutuallyExclusive covers the current-position vs end-date rule shape.
*/
func TestValidator_MutuallyExclusive(t *testing.T) {
	v := &validate.Validator{}
	v.MutuallyExclusive("current", true, true, "Current positions cannot have an end date")
	assert.True(t, v.HasErrors())

	v2 := &validate.Validator{}
	v2.MutuallyExclusive("current", true, false, "Current positions cannot have an end date")
	assert.False(t, v2.HasErrors())
}
