package plugin

// PathResolver computes the host-side directories backing an installed
// plugin: where the artifact is extracted, where ahead-of-time compilation
// output goes, and where native libraries are unpacked. A record only
// carries Path and Type; directory layout is a host concern, so the core
// consumes this capability and never constructs one.
type PathResolver interface {
	ApkDir(typ Type) string
	OdexDir(typ Type) string
	NativeLibsDir(typ Type) string
}
