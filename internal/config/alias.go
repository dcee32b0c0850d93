package config

import "strings"

// ToKebab converts an internal snake_case field name to the external kebab-case name.
func ToKebab(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}

// ToSnake converts an external kebab-case key to the internal snake_case name.
func ToSnake(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// projectKeys copies the keys of raw that object (a JSON Schema object node)
// declares under "properties", renaming each to its snake_case field name.
// Only the declared kebab-case spelling is looked up, so undeclared keys,
// snake_case spellings included, never reach the model.
func projectKeys(raw map[string]any, object map[string]any) map[string]any {
	properties, _ := object["properties"].(map[string]any)
	out := make(map[string]any, len(properties))
	for key, property := range properties {
		value, ok := raw[key]
		if !ok {
			continue
		}
		nestedSchema, isObject := property.(map[string]any)
		if nested, isMap := value.(map[string]any); isMap && isObject {
			value = projectKeys(nested, nestedSchema)
		}
		out[ToSnake(key)] = value
	}
	return out
}
