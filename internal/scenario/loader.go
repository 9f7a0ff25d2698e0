package scenario

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile parses and validates one scenario YAML file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file %q: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario file %q: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates scenario YAML.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if f.State == nil {
		f.State = map[string]any{}
	}
	for i := range f.Registrations {
		r := &f.Registrations[i]
		r.Name = strings.TrimSpace(r.Name)
		r.Mode = strings.ToLower(strings.TrimSpace(r.Mode))
	}
	for i := range f.Actions {
		f.Actions[i].Type = strings.TrimSpace(f.Actions[i].Type)
		f.Actions[i].Cancel = strings.TrimSpace(f.Actions[i].Cancel)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks registration names, modes, and cancel references.
func (f *File) Validate() error {
	names := make(map[string]struct{}, len(f.Registrations))
	for i, r := range f.Registrations {
		if r.Name == "" {
			return fmt.Errorf("registration %d: name is required", i)
		}
		if _, dup := names[r.Name]; dup {
			return fmt.Errorf("registration %q: duplicate name", r.Name)
		}
		names[r.Name] = struct{}{}
		if r.Mode != "once" && r.Mode != "when" {
			return fmt.Errorf("registration %q: mode must be once or when, got %q", r.Name, r.Mode)
		}
		if strings.TrimSpace(r.Condition) == "" {
			return fmt.Errorf("registration %q: condition is required", r.Name)
		}
		if r.Dispatch.Type == "" && !r.Derive {
			return fmt.Errorf("registration %q: dispatch.type is required unless derive is set", r.Name)
		}
	}
	for i, s := range f.Actions {
		switch {
		case s.Cancel != "" && s.Type != "":
			return fmt.Errorf("action %d: type and cancel are mutually exclusive", i)
		case s.Cancel != "":
			if _, ok := names[s.Cancel]; !ok {
				return fmt.Errorf("action %d: cancel references unknown registration %q", i, s.Cancel)
			}
		case s.Type == "":
			return fmt.Errorf("action %d: type or cancel is required", i)
		}
	}
	return nil
}
