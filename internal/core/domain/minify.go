package domain

// MinifyOptions are the only minifier knobs the stage controls.
// Everything else uses the minifier's defaults.
type MinifyOptions struct {
	// Module marks the code as an ECMAScript module.
	Module bool
	// TopLevel allows the minifier to collapse top-level scope names.
	TopLevel bool
}

// MinifyOutput is the result of one transform invocation.
type MinifyOutput struct {
	Code string
}

// OptionsForFormat derives the minify options from the output format.
// Module is set for the "es" family; TopLevel only for exactly "cjs".
func OptionsForFormat(format OutputFormat) MinifyOptions {
	return MinifyOptions{
		Module:   format.IsModule(),
		TopLevel: format.IsCommonJS(),
	}
}
