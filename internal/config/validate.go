package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return ErrNoTargets
	}
	for i := range c.Targets {
		if c.Targets[i].Name == "" {
			return fmt.Errorf("%w (targets[%d])", ErrUnnamedTarget, i)
		}
	}
	if c.DefaultTarget == "" {
		return ErrNoDefaultTarget
	}
	// default_target must resolve to a configured target.
	if _, err := ResolveTarget(c.DefaultTarget, c.Targets); err != nil {
		if errors.Is(err, ErrTargetNotFound) {
			return fmt.Errorf("default_target %q does not match any configured target", c.DefaultTarget)
		}
		return err
	}
	if c.History.Enabled && c.History.Path == "" {
		return errors.New("history.path must be set when history.enabled is true")
	}
	return nil
}
