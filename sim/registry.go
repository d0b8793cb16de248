package sim

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	// ErrUnknownPolicy is returned by Resolve when no constructor is registered under the name.
	ErrUnknownPolicy = errors.New("unknown priority policy")
	// ErrInvalidPolicyParams is returned when a constructor rejects its parameters.
	ErrInvalidPolicyParams = errors.New("invalid priority policy parameters")
	// ErrDuplicatePolicy is returned by Register when the name is already taken.
	ErrDuplicatePolicy = errors.New("priority policy already registered")
	// ErrRegistrySealed is returned by Register after Seal.
	ErrRegistrySealed = errors.New("policy registry is sealed")
)

// PolicyParams carries per-policy construction parameters, typically decoded from YAML.
type PolicyParams map[string]any

// PolicyConstructor builds a Policy from its construction parameters.
type PolicyConstructor func(params PolicyParams) (Policy, error)

// Registry maps policy identifiers to constructors.
//
// It is write-once/read-many: every Register call must happen-before any
// concurrent Resolve. After Seal the table is never written again, so Resolve
// and the other read methods take no lock.
type Registry struct {
	constructors map[string]PolicyConstructor
	sealed       bool
}

// NewRegistry returns an empty, unsealed registry.
func NewRegistry() *Registry {
	return &Registry{constructors: make(map[string]PolicyConstructor)}
}

// NewBuiltinRegistry returns a sealed registry holding fcfs, static, sjf, ldf and lcfs.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	builtins := []struct {
		kind   PolicyKind
		policy Policy
	}{
		{KindFCFS, FCFS{}},
		{KindStatic, StaticPriority{}},
		{KindSJF, SJF{}},
		{KindLDF, LDF{}},
		{KindLCFS, LCFS{}},
	}
	for _, b := range builtins {
		if err := r.Register(string(b.kind), parameterless(b.policy)); err != nil {
			panic(fmt.Sprintf("registering built-in policy %q: %v", b.kind, err))
		}
	}
	r.Seal()
	return r
}

// parameterless wraps a stateless policy in a constructor that rejects any parameters.
func parameterless(p Policy) PolicyConstructor {
	return func(params PolicyParams) (Policy, error) {
		if len(params) > 0 {
			keys := make([]string, 0, len(params))
			for k := range params {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			return nil, fmt.Errorf("%w: policy %q takes no parameters, got [%s]",
				ErrInvalidPolicyParams, p.Name(), strings.Join(keys, ", "))
		}
		return p, nil
	}
}

// Register associates name with a constructor.
func (r *Registry) Register(name string, constructor PolicyConstructor) error {
	if r.sealed {
		return fmt.Errorf("%w: cannot register %q", ErrRegistrySealed, name)
	}
	if name == "" {
		return errors.New("policy name must not be empty")
	}
	if constructor == nil {
		return fmt.Errorf("constructor for policy %q must not be nil", name)
	}
	if _, ok := r.constructors[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicatePolicy, name)
	}
	r.constructors[name] = constructor
	return nil
}

// Seal freezes the registry. Subsequent Register calls fail with ErrRegistrySealed.
func (r *Registry) Seal() {
	r.sealed = true
}

// IsRegistered returns true if name has a registered constructor.
func (r *Registry) IsRegistered(name string) bool {
	_, ok := r.constructors[name]
	return ok
}

// Names returns the registered identifiers in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve constructs the policy registered under name.
// An unregistered name yields an error wrapping ErrUnknownPolicy; it never panics,
// since name usually comes from user configuration.
func (r *Registry) Resolve(name string, params PolicyParams) (Policy, error) {
	constructor, ok := r.constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w %q; valid policies: [%s]", ErrUnknownPolicy, name, strings.Join(r.Names(), ", "))
	}
	p, err := constructor(params)
	if err != nil {
		return nil, fmt.Errorf("constructing policy %q: %w", name, err)
	}
	logrus.Debugf("resolved priority policy %q", name)
	return p, nil
}
