// Package hostpath implements the plugin.PathResolver capability for a
// host whose private storage follows the original framework's directory
// layout. Current plugins live under the short "p_*" names; legacy "p-n"
// plugins keep their historical "plugins_v3*" directories.
package hostpath

import (
	"path/filepath"

	"github.com/dart-cn/RePlugin/pkg/plugin"
)

const (
	apkDir          = "p_a"
	odexDir         = "p_od"
	nativeDir       = "p_n"
	legacyApkDir    = "plugins_v3"
	legacyOdexDir   = "plugins_v3_odex"
	legacyNativeDir = "plugins_v3_libs"
)

// Resolver resolves plugin artifact directories under the host's private
// data directory.
type Resolver struct {
	dataDir string
}

// New creates a resolver rooted at the host's private data directory.
func New(dataDir string) *Resolver {
	return &Resolver{dataDir: dataDir}
}

// ApkDir returns the directory holding the extracted plugin artifact.
func (r *Resolver) ApkDir(typ plugin.Type) string {
	if typ.IsLegacy() {
		return filepath.Join(r.dataDir, legacyApkDir)
	}
	return filepath.Join(r.dataDir, apkDir)
}

// OdexDir returns the directory holding ahead-of-time compilation output.
func (r *Resolver) OdexDir(typ plugin.Type) string {
	if typ.IsLegacy() {
		return filepath.Join(r.dataDir, legacyOdexDir)
	}
	return filepath.Join(r.dataDir, odexDir)
}

// NativeLibsDir returns the directory native libraries are unpacked into.
func (r *Resolver) NativeLibsDir(typ plugin.Type) string {
	if typ.IsLegacy() {
		return filepath.Join(r.dataDir, legacyNativeDir)
	}
	return filepath.Join(r.dataDir, nativeDir)
}
