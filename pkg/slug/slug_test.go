// Copyright (c) 2026 Folium. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliumhq/folium/pkg/slug"
)

/*
TestFrom verifies the normalization pipeline.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Hello World", "hello-world"},
		{"accents", "Crème Brûlée", "creme-brulee"},
		{"punctuation_runs", "Go — the good parts!!", "go-the-good-parts"},
		{"leading_trailing", "  --Folium--  ", "folium"},
		{"numbers", "Top 10 Tips (2026)", "top-10-tips-2026"},
		{"already_clean", "hello-world", "hello-world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.From(tt.input))
		})
	}
}

/*
TestUnique verifies deterministic collision probing.
*/
func TestUnique(t *testing.T) {
	t.Run("free_candidate_returned_unchanged", func(t *testing.T) {
		taken := map[string]bool{}
		result, err := slug.Unique("hello-world", func(c string) (bool, error) {
			return taken[c], nil
		})
		require.NoError(t, err)
		assert.Equal(t, "hello-world", result)
	})

	t.Run("first_collision_probes_dash_two", func(t *testing.T) {
		taken := map[string]bool{"hello-world": true}
		result, err := slug.Unique("hello-world", func(c string) (bool, error) {
			return taken[c], nil
		})
		require.NoError(t, err)
		assert.Equal(t, "hello-world-2", result)
	})

	t.Run("probing_continues_past_taken_suffixes", func(t *testing.T) {
		taken := map[string]bool{
			"hello-world":   true,
			"hello-world-2": true,
			"hello-world-3": true,
		}
		result, err := slug.Unique("hello-world", func(c string) (bool, error) {
			return taken[c], nil
		})
		require.NoError(t, err)
		assert.Equal(t, "hello-world-4", result)
	})

	t.Run("exists_error_propagates", func(t *testing.T) {
		_, err := slug.Unique("hello-world", func(c string) (bool, error) {
			return false, assert.AnError
		})
		assert.Error(t, err)
	})
}
