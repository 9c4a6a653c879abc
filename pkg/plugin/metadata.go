package plugin

import "fmt"

// Well-known keys of the metadata bundle a plugin package declares for the
// host. Kept byte-compatible with the original framework so existing plugin
// packages keep working.
const (
	MetaKeyAlias            = "com.qihoo360.plugin.name"
	MetaKeyVersionLow       = "com.qihoo360.plugin.version.low"
	MetaKeyVersionHigh      = "com.qihoo360.plugin.version.high"
	MetaKeyVersion          = "com.qihoo360.plugin.version.ver"
	MetaKeyFrameworkVersion = "com.qihoo360.framework.ver"
)

// MetadataBundle is a flat string/integer lookup over a package's declared
// metadata. Absent keys yield the zero value, never an error.
type MetadataBundle interface {
	GetString(key string) string
	GetInt(key string) int
}

// PackageMeta is the host package manager's view of one installed package.
// Implemented by the host environment; this package never constructs one.
type PackageMeta interface {
	PackageName() string

	// Metadata returns the package's declared metadata bundle, or nil when
	// the package carries no application-level metadata at all.
	Metadata() MetadataBundle
}

// BundleMap is a MetadataBundle backed by a plain map, convenient for hosts
// that already hold decoded metadata, and for tests.
type BundleMap map[string]any

func (b BundleMap) GetString(key string) string {
	if s, ok := b[key].(string); ok {
		return s
	}
	return ""
}

func (b BundleMap) GetInt(key string) int {
	switch v := b[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// NewInfoFromPackage builds a record for a freshly discovered plugin from
// its installed-package descriptor. The record starts life as
// TypeNotInstalled with path pointing at the downloaded artifact. A package
// without any metadata is malformed and rejected; individual missing keys
// just fall back to their defaults.
func NewInfoFromPackage(pkg PackageMeta, path string) (*Info, error) {
	meta := pkg.Metadata()
	if meta == nil {
		return nil, fmt.Errorf("%w: package %s has no metadata", ErrMalformedInput, pkg.PackageName())
	}

	alias := meta.GetString(MetaKeyAlias)
	low := meta.GetInt(MetaKeyVersionLow)
	high := meta.GetInt(MetaKeyVersionHigh)
	ver := meta.GetInt(MetaKeyVersion)

	info := NewInfo(pkg.PackageName(), alias, low, high, ver, path, TypeNotInstalled)
	info.SetFrameworkVersion(meta.GetInt(MetaKeyFrameworkVersion))
	return info, nil
}
