package messages

// Config messages for schema construction, validation, and key/value stores.
const (
	ConfigSchemaModelFmt     = "configuration model must be a struct, got %s"
	ConfigSchemaSectionFmt   = "configuration section %s must be a struct, got %s"
	ConfigSchemaFieldTypeFmt = "unsupported configuration field type %s for %s"
	ConfigSchemaCompileFmt   = "compile configuration schema: %w"
	ConfigSchemaRequired     = "configuration schema is required"
	ConfigStoreRequired      = "configuration store is required"

	// ConfigValidationFailed prefixes configuration errors surfaced to operators.
	ConfigValidationFailed   = "invalid configuration"
	ConfigValidationFieldFmt = "%s: %s"
	ConfigValidateFmt        = "validate configuration: %w"
	ConfigDecodeFmt          = "decode configuration: %w"
	ConfigDumpSectionFmt     = "dump configuration section %s: %w"
	ConfigQueryStoreFmt      = "query configuration store: %w"

	ConfigMissingFileFmt = "missing config file %s: %w"
	ConfigInvalidFileFmt = "invalid config file %s: %w"
	ConfigExpandPathFmt  = "expand config file path %s: %w"
)
