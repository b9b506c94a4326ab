package template

// Directive prefixes recognized at the start of a manifest line (spec
// §4.E). StaticPathSentinel may prefix any include path, and is
// resolved against the configured static root.
const (
	InfoTag              = "@GENERATION_INFO"
	IncludeJSPrefix      = "includeJS:"
	IncludeCSSPrefix     = "includeCSS:"
	IncludePrefix        = "include:"
	ReducePublicExceptPx = "reducePublicJSExcept:"
	StaticPathSentinel   = "STATIC_PATH/"

	// FileExtension is the manifest file suffix the pipeline discovers
	// under static_dir.
	FileExtension = ".comp"
)
