package sim

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPriorityPolicy is the policy a bundle selects when priority.policy is empty.
const DefaultPriorityPolicy = KindFCFS

// PolicyBundle holds policy configuration, loadable from a YAML file.
type PolicyBundle struct {
	Priority PriorityConfig `yaml:"priority"`
}

// PriorityConfig holds priority policy configuration.
type PriorityConfig struct {
	Policy string       `yaml:"policy"`
	Params PolicyParams `yaml:"params"`
}

// LoadPolicyBundle reads and parses a YAML policy configuration file.
// Unknown keys are rejected.
func LoadPolicyBundle(path string) (*PolicyBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading policy config: %w", err)
	}
	var bundle PolicyBundle
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&bundle); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing policy config: %w", err)
	}
	return &bundle, nil
}

// PolicyName returns the configured policy name, or DefaultPriorityPolicy when unset.
func (b *PolicyBundle) PolicyName() string {
	if b.Priority.Policy == "" {
		return string(DefaultPriorityPolicy)
	}
	return b.Priority.Policy
}

// Validate checks that the configured policy is registered in reg.
func (b *PolicyBundle) Validate(reg *Registry) error {
	name := b.PolicyName()
	if !reg.IsRegistered(name) {
		return fmt.Errorf("%w %q", ErrUnknownPolicy, name)
	}
	return nil
}

// Resolve constructs the configured policy from reg.
func (b *PolicyBundle) Resolve(reg *Registry) (Policy, error) {
	return reg.Resolve(b.PolicyName(), b.Priority.Params)
}
