package config

// Section is one top-level configuration field serialized with snake_case keys.
type Section struct {
	Name string
	Data map[string]any
}

// Values is a validated configuration. It is read-only once returned.
type Values struct {
	sections []Section
}

// Dump returns every section in declaration order, keyed in snake_case.
func (v *Values) Dump() []Section {
	return v.sections
}

// Section returns the named section's data.
func (v *Values) Section(name string) (map[string]any, bool) {
	for _, section := range v.sections {
		if section.Name == name {
			return section.Data, true
		}
	}
	return nil, false
}
