package logging

// Field names for structured log entries.
const (
	FieldError   = "error"
	FieldPath    = "path"
	FieldItems   = "items"
	FieldNumber  = "number"
	FieldRemoved = "removed"
	FieldCommand = "command"
	FieldSource  = "source"
	FieldTheme   = "theme"
	FieldVersion = "version"
)
