package config

import (
	"errors"
	"fmt"
	"sort"
)

var ErrConfigurationMissing = errors.New("configuration missing")

// Provider is an immutable registry of environment bundles keyed by target.
// It is safe for concurrent use.
type Provider struct {
	bundles map[Target]Environment
}

// NewProvider validates every bundle and returns a registry holding copies of
// them. A single invalid bundle fails the whole construction.
func NewProvider(bundles map[Target]Environment) (*Provider, error) {
	p := &Provider{bundles: make(map[Target]Environment, len(bundles))}
	for target, env := range bundles {
		if target == "" {
			return nil, fmt.Errorf("%w: empty target name", ErrInvalidEnvironment)
		}
		if err := Validate(env); err != nil {
			return nil, fmt.Errorf("target %q: %w", target, err)
		}
		p.bundles[target] = env
	}
	return p, nil
}

// Get returns the bundle registered for target. An unknown target yields the
// zero Environment and an error matching ErrConfigurationMissing.
func (p *Provider) Get(target Target) (Environment, error) {
	env, ok := p.bundles[target]
	if !ok {
		return Environment{}, fmt.Errorf("%w: no bundle registered for target %q", ErrConfigurationMissing, target)
	}
	return env, nil
}

// Targets lists the registered targets in lexical order.
func (p *Provider) Targets() []Target {
	targets := make([]Target, 0, len(p.bundles))
	for t := range p.bundles {
		targets = append(targets, t)
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i] < targets[j] })
	return targets
}
