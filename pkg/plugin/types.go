package plugin

// Type identifies where a plugin artifact currently lives in its install
// lifecycle.
type Type int

const (
	// TypePnInstalled marks an installed legacy "p-n" plugin whose path
	// points at the extracted jar.
	//
	// Deprecated: retained only so old persisted lists keep loading.
	TypePnInstalled Type = 1

	// TypeBuiltin marks a legacy built-in plugin.
	//
	// Deprecated: retained only so old persisted lists keep loading.
	TypeBuiltin Type = 2

	// TypePnJar marks a legacy "p-n" plugin that has not been installed yet.
	//
	// Deprecated: retained only so old persisted lists keep loading.
	TypePnJar Type = 3

	// TypeNotInstalled marks a plugin that has been downloaded but not yet
	// integrated; its path points at the raw artifact.
	TypeNotInstalled Type = 10

	// TypeExtracted marks a plugin copied into the runtime's managed
	// directory but not yet activated.
	TypeExtracted Type = 11
)

// FrameworkVersionUnknown is the framework-compatibility version reported
// before the host runtime has determined the real one.
const FrameworkVersionUnknown = 0

// IsLegacy reports whether t is one of the retired "p-n" era types.
func (t Type) IsLegacy() bool {
	return t == TypePnInstalled || t == TypeBuiltin || t == TypePnJar
}

func (t Type) String() string {
	switch t {
	case TypePnInstalled:
		return "pn-installed"
	case TypeBuiltin:
		return "builtin"
	case TypePnJar:
		return "pn-jar"
	case TypeNotInstalled:
		return "not-installed"
	case TypeExtracted:
		return "extracted"
	default:
		return "unknown"
	}
}
