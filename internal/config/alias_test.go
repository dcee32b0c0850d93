package config

import (
	"reflect"
	"testing"
)

func TestKeyAliasing(t *testing.T) {
	cases := []struct {
		snake string
		kebab string
	}{
		{snake: "enable_telemetry_notifications", kebab: "enable-telemetry-notifications"},
		{snake: "url", kebab: "url"},
		{snake: "a_b_c", kebab: "a-b-c"},
	}
	for _, tc := range cases {
		if got := ToKebab(tc.snake); got != tc.kebab {
			t.Fatalf("ToKebab(%q) = %q, want %q", tc.snake, got, tc.kebab)
		}
		if got := ToSnake(tc.kebab); got != tc.snake {
			t.Fatalf("ToSnake(%q) = %q, want %q", tc.kebab, got, tc.snake)
		}
		if got := ToSnake(ToKebab(tc.snake)); got != tc.snake {
			t.Fatalf("round trip of %q = %q", tc.snake, got)
		}
	}
}

func TestProjectKeysFollowsSchemaProperties(t *testing.T) {
	object := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"top-level": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"leaf-key": map[string]any{"type": "string"},
				},
			},
			"plain": map[string]any{"type": "integer"},
		},
	}
	raw := map[string]any{
		"top-level": map[string]any{"leaf-key": "value-with-dash", "leaf_key": "ignored", "extra": 1},
		"plain":     3,
		"top_level": map[string]any{"leaf-key": "shadow"},
		"unknown":   true,
	}
	got := projectKeys(raw, object)

	want := map[string]any{
		"top_level": map[string]any{"leaf_key": "value-with-dash"},
		"plain":     3,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("projectKeys = %#v, want %#v", got, want)
	}
	if _, ok := raw["top-level"]; !ok {
		t.Fatalf("input must not be modified")
	}
	if got := projectKeys(nil, object); len(got) != 0 {
		t.Fatalf("expected empty projection for nil input, got %#v", got)
	}
}
