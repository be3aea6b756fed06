package config

const (
	defaultDataRoot        = "~/data"
	defaultDerivativesRoot = "~/data/derivatives"
	defaultLogDir          = "~/.local/share/flowline/logs"
	defaultOverwriteMode   = "never"
	defaultDatatype        = "data"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataRoot:        defaultDataRoot,
			DerivativesRoot: defaultDerivativesRoot,
			LogDir:          defaultLogDir,
		},
		Outputs: Outputs{
			OverwriteMode:       defaultOverwriteMode,
			SidecarAutoGenerate: true,
		},
		Dataset: Dataset{
			Datatype: defaultDatatype,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
