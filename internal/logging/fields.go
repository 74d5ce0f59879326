package logging

// Field name constants for structured logging.
const (
	FieldError = "error"
	FieldFile  = "file"
	FieldBytes = "bytes"
	FieldStart = "start"
	FieldRoot  = "root"
	FieldNodes = "nodes"
)
