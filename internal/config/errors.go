package config

import "errors"

// Sentinel errors for configuration validation.
var (
	// ErrTargetNotFound indicates the requested target name is not configured.
	ErrTargetNotFound = errors.New("could not find requested target in config")

	// ErrRuleConflict indicates a rule that sets both allow and reject.
	ErrRuleConflict = errors.New("conflicting format rule")

	// ErrNoTargets indicates a configuration without any targets.
	ErrNoTargets = errors.New("no targets configured")

	// ErrUnnamedTarget indicates a target entry with an empty name.
	ErrUnnamedTarget = errors.New("target name must not be empty")

	// ErrNoDefaultTarget indicates a missing default_target value.
	ErrNoDefaultTarget = errors.New("default_target must be set")
)
