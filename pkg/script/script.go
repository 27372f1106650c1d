// Package script loads recorded sequences of actions and replays them against a store.
//
// A script is a YAML (or JSON) document:
//
//	name: weekend chores
//	steps:
//	  - action: item_added
//	    payload:
//	      item: buy milk
//	  - action: item_completed
//	    payload:
//	      index: 0
package script

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/reducto/pkg/actions"
	"github.com/aretw0/reducto/pkg/domain"
	"github.com/aretw0/reducto/pkg/store"
	"gopkg.in/yaml.v3"
)

// Step is one recorded action.
type Step struct {
	Action  string         `yaml:"action" json:"action"`
	Payload map[string]any `yaml:"payload,omitempty" json:"payload,omitempty"`
}

// Script is an ordered list of steps.
type Script struct {
	Name  string `yaml:"name" json:"name"`
	Steps []Step `yaml:"steps" json:"steps"`
}

// Load reads a script file. Files ending in .json are parsed as JSON, anything else as YAML.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		var s Script
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
		return &s, nil
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return s, nil
}

// Parse decodes a YAML script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Actions decodes every step with reg. It fails on the first step that cannot be decoded,
// so a broken script never dispatches anything.
func (s *Script) Actions(reg *actions.Registry) ([]domain.Action, error) {
	out := make([]domain.Action, 0, len(s.Steps))
	for i, step := range s.Steps {
		action, err := reg.Decode(step.Action, step.Payload)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		out = append(out, action)
	}
	return out, nil
}

// Replay decodes the script and dispatches its actions in order.
// It returns the number of actions dispatched.
func Replay[S any](st *store.Store[S], reg *actions.Registry, s *Script) (int, error) {
	acts, err := s.Actions(reg)
	if err != nil {
		return 0, err
	}
	for _, action := range acts {
		st.Dispatch(action)
	}
	return len(acts), nil
}

// Record appends a step for action, using the name it was registered under in reg.
func (s *Script) Record(reg *actions.Registry, action domain.Action) error {
	name, ok := reg.NameOf(action)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownAction, domain.KindName(action))
	}

	var payload map[string]any
	if err := decodeInto(action, &payload); err != nil {
		return fmt.Errorf("failed to record %s: %w", name, err)
	}
	s.Steps = append(s.Steps, Step{Action: name, Payload: payload})
	return nil
}

// Marshal encodes the script as YAML.
func (s *Script) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
