// Package app contains the application layer - service implementations and effect execution.
package app

import "errors"

// Error kinds surfaced by the scaffolding services. Callers match them with errors.Is.
var (
	// ErrTemplateUnreadable means a template could not be located or read. Fatal.
	ErrTemplateUnreadable = errors.New("template unreadable")

	// ErrTargetExists means the file to generate is already present. Nothing
	// was overwritten; the run is reported but not failed.
	ErrTargetExists = errors.New("target already exists")

	// ErrWriteFailure means a directory or file could not be written. Fatal.
	ErrWriteFailure = errors.New("write failure")

	// ErrHistoryDisabled is returned when the activity log is turned off.
	ErrHistoryDisabled = errors.New("history is disabled")
)
