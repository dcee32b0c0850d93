package messages

// Render messages for the template render engine.
const (
	RenderSystemRequired     = "render system is required"
	RenderSearchPathRequired = "template search path is required"
	RenderTemplateNotFound   = "template not found"
	RenderReadTemplateFmt    = "failed to read template %s: %w"
	RenderParseTemplateFmt   = "failed to parse template %s: %w"
	RenderExecuteTemplateFmt = "failed to render template %s: %w"
	RenderResolveDestFmt     = "resolve destination for %s: %w"
	RenderCreateDirFmt       = "failed to create directory %s: %w"
	RenderStatFmt            = "failed to stat %s: %w"
	RenderReadFmt            = "failed to read %s: %w"
	RenderWriteFmt           = "failed to write %s: %w"
	RenderChmodFmt           = "failed to set mode on %s: %w"
	RenderContextFmt         = "build render context: %w"

	RenderContextFailed       = "Failed to render context"
	RenderTemplateRetrySuffix = "Template not found, trying with .j2"
	RenderDestinationExists   = "Destination exists, leaving it untouched"
	RenderWritingFile         = "File has changed, writing new content"
	RenderExtraDirUnavailable = "Failed to get additional templates path"

	ContextDuplicateNamespaceFmt = "duplicate context namespace %q"
	ContextProviderFailedFmt     = "context %s: %w"
	ContextAdding                = "Adding context"
)
