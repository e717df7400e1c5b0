// Package errors provides structured error types for videofix operations.
package errors

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrorKind represents the category of an error.
type ErrorKind int

const (
	// KindIO represents I/O errors.
	KindIO ErrorKind = iota
	// KindPath represents path-related errors.
	KindPath
	// KindCommand represents external command execution errors.
	KindCommand
	// KindProbe represents ffprobe invocation or parse errors.
	KindProbe
	// KindStream represents stream extraction errors (missing, duplicated,
	// or incomplete streams).
	KindStream
	// KindConfig represents configuration errors.
	KindConfig
	// KindNoFilesFound represents no suitable media files found.
	KindNoFilesFound
	// KindPathCollision represents a remediation output path that already exists.
	KindPathCollision
	// KindCancelled represents user-cancelled operations.
	KindCancelled
)

// String returns a string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "I/O error"
	case KindPath:
		return "Path error"
	case KindCommand:
		return "Command error"
	case KindProbe:
		return "Probe error"
	case KindStream:
		return "Stream error"
	case KindConfig:
		return "Configuration error"
	case KindNoFilesFound:
		return "No files found"
	case KindPathCollision:
		return "Output path collision"
	case KindCancelled:
		return "Operation cancelled"
	default:
		return "Unknown error"
	}
}

// CommandErrorKind represents the type of command error.
type CommandErrorKind int

const (
	// CommandStart means the command failed to start.
	CommandStart CommandErrorKind = iota
	// CommandWait means waiting for the command failed.
	CommandWait
	// CommandFailed means the command returned non-zero exit status.
	CommandFailed
)

// CommandError represents an error from executing an external command.
type CommandError struct {
	Command    string
	Kind       CommandErrorKind
	ExitCode   int
	Stderr     string
	Underlying error
}

func (e *CommandError) Error() string {
	switch e.Kind {
	case CommandStart:
		return fmt.Sprintf("failed to execute %s: %v", e.Command, e.Underlying)
	case CommandWait:
		return fmt.Sprintf("failed to wait for %s: %v", e.Command, e.Underlying)
	case CommandFailed:
		if e.Stderr != "" {
			return fmt.Sprintf("command %s failed with exit code %d: %s", e.Command, e.ExitCode, e.Stderr)
		}
		return fmt.Sprintf("command %s failed with exit code %d", e.Command, e.ExitCode)
	default:
		return fmt.Sprintf("command %s error: %v", e.Command, e.Underlying)
	}
}

func (e *CommandError) Unwrap() error {
	return e.Underlying
}

// CoreError is the main error type for videofix operations.
type CoreError struct {
	Kind       ErrorKind
	Message    string
	Underlying error
}

func (e *CoreError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *CoreError) Unwrap() error {
	return e.Underlying
}

// Is reports whether target matches this error's kind.
func (e *CoreError) Is(target error) bool {
	t, ok := target.(*CoreError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// NewIOError creates a new I/O error.
func NewIOError(message string, underlying error) *CoreError {
	return &CoreError{Kind: KindIO, Message: message, Underlying: underlying}
}

// NewPathError creates a new path-related error.
func NewPathError(message string) *CoreError {
	return &CoreError{Kind: KindPath, Message: message}
}

// NewCommandStartError creates an error for when a command fails to start.
func NewCommandStartError(cmd string, err error) *CoreError {
	cmdErr := &CommandError{Command: cmd, Kind: CommandStart, Underlying: err}
	return &CoreError{Kind: KindCommand, Message: cmdErr.Error(), Underlying: cmdErr}
}

// NewCommandWaitError creates an error for when waiting for a command fails.
func NewCommandWaitError(cmd string, err error) *CoreError {
	cmdErr := &CommandError{Command: cmd, Kind: CommandWait, Underlying: err}
	return &CoreError{Kind: KindCommand, Message: cmdErr.Error(), Underlying: cmdErr}
}

// NewCommandFailedError creates an error for when a command returns non-zero exit status.
func NewCommandFailedError(cmd string, exitCode int, stderr string) *CoreError {
	cmdErr := &CommandError{
		Command:  cmd,
		Kind:     CommandFailed,
		ExitCode: exitCode,
		Stderr:   stderr,
	}
	return &CoreError{Kind: KindCommand, Message: cmdErr.Error(), Underlying: cmdErr}
}

// NewProbeError creates a new ffprobe error for the given file.
func NewProbeError(path string, underlying error) *CoreError {
	return &CoreError{
		Kind:       KindProbe,
		Message:    fmt.Sprintf("ffprobe error in %s", path),
		Underlying: underlying,
	}
}

// NewStreamError creates a new stream extraction error.
func NewStreamError(message string) *CoreError {
	return &CoreError{Kind: KindStream, Message: message}
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string) *CoreError {
	return &CoreError{Kind: KindConfig, Message: message}
}

// NewNoFilesFoundError creates an error for when no media files are found.
func NewNoFilesFoundError(dir string) *CoreError {
	return &CoreError{Kind: KindNoFilesFound, Message: fmt.Sprintf("no media files found in %s", dir)}
}

// NewPathCollisionError creates an error for an existing remediation output path.
func NewPathCollisionError(path string) *CoreError {
	return &CoreError{Kind: KindPathCollision, Message: fmt.Sprintf("fix target %s already exists", path)}
}

// NewCancelledError creates an error for user-cancelled operations.
func NewCancelledError() *CoreError {
	return &CoreError{Kind: KindCancelled, Message: "operation was cancelled by the user"}
}

// IsKind checks if the error has the specified kind.
func IsKind(err error, kind ErrorKind) bool {
	var coreErr *CoreError
	if errors.As(err, &coreErr) {
		return coreErr.Kind == kind
	}
	return false
}

// IsCancelled checks if the error is a cancellation error.
func IsCancelled(err error) bool {
	return IsKind(err, KindCancelled)
}

// IsNoFilesFound checks if the error is a no-files-found error.
func IsNoFilesFound(err error) bool {
	return IsKind(err, KindNoFilesFound)
}

// IsPathCollision checks if the error is an output path collision error.
func IsPathCollision(err error) bool {
	return IsKind(err, KindPathCollision)
}

// WrapExecError wraps an exec.ExitError into a CoreError.
func WrapExecError(cmd string, err error, stderr string) *CoreError {
	if exitErr, ok := err.(*exec.ExitError); ok {
		return NewCommandFailedError(cmd, exitErr.ExitCode(), stderr)
	}
	return NewCommandStartError(cmd, err)
}
