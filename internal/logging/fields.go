package logging

// Structured field names.
const (
	FieldError  = "error"
	FieldPath   = "path"
	FieldOutput = "output"
	FieldFiles  = "files"
	FieldJobs   = "jobs"
	FieldPreset = "preset"
	FieldPass   = "pass"
	FieldStage  = "stage"

	FieldOriginalSize   = "original_size"
	FieldCompressedSize = "compressed_size"
	FieldRatio          = "ratio"
	FieldElapsed        = "elapsed"

	FieldVersion = "version"
)
