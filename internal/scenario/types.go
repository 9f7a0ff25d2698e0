package scenario

import "github.com/aqilarik/delay/internal/store"

// File is one YAML scenario.
type File struct {
	State         map[string]any     `yaml:"state"`
	Registrations []RegistrationSpec `yaml:"registrations"`
	Actions       []StepSpec         `yaml:"actions"`
}

// RegistrationSpec describes one once/when registration.
type RegistrationSpec struct {
	Name      string      `yaml:"name"`
	Mode      string      `yaml:"mode"`
	Condition string      `yaml:"condition"`
	Dispatch  store.Basic `yaml:"dispatch"`
	// Derive replaces the dispatched type with "__<trigger type>__".
	Derive bool `yaml:"derive,omitempty"`
}

// StepSpec is either a plain action or a cancellation by registration name.
type StepSpec struct {
	Type    string         `yaml:"type,omitempty"`
	Payload map[string]any `yaml:"payload,omitempty"`
	Cancel  string         `yaml:"cancel,omitempty"`
}

// Result is what a scenario run produced.
type Result struct {
	// Log lists the type of every action that reached the reducer, in order.
	Log     []string
	State   map[string]any
	Pending []string
}
