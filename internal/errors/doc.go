// Package apperrors defines the error classes lunaris reports (configuration,
// validation, export and timeout) and maps each to a process exit code with
// ExitCodeFor.
//
// Every precondition violation matches ErrInvalidArgument through errors.Is,
// whatever the field. ExportError wraps the failing frame's cause, so
// errors.Is and errors.As see through it.
package apperrors
