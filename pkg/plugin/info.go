// Package plugin models the metadata record describing one dynamically
// loadable plugin package: identity, version, on-disk location, install
// state, and pending lifecycle transitions. Records serialize to a compact
// JSON text form that preserves keys written by other framework versions.
package plugin

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput reports input that cannot be parsed as a record
	// document at all.
	ErrMalformedInput = errors.New("plugin: malformed input")

	// ErrIncompleteRecord reports a parsed document missing one of the
	// mandatory fields, or deriving an empty name.
	ErrIncompleteRecord = errors.New("plugin: incomplete record")
)

// Document keys. "name" is derived once from pkgname/ali at construction
// time and persisted verbatim; old framework versions look plugins up by it.
const (
	keyPackageName      = "pkgname"
	keyAlias            = "ali"
	keyName             = "name"
	keyVersionLow       = "low"
	keyVersionHigh      = "high"
	keyVersion          = "ver"
	keyVersionValue     = "verv"
	keyPath             = "path"
	keyType             = "type"
	keyUsed             = "used"
	keyFrameworkVersion = "frm_ver"
	keyPendingUpdate    = "upinfo"
	keyPendingDelete    = "delinfo"
)

// maxPendingDepth bounds the upinfo/delinfo nesting accepted from parsed
// text. The constructors in this package only ever produce one level, but
// parsed input is not under our control.
const maxPendingDepth = 8

// Info is the metadata record for one plugin package.
//
// Every mutator writes through to the backing document immediately, so a
// record is always ready to serialize. Records are meant to be passed
// between goroutines by Clone, not shared; the type does no locking.
type Info struct {
	doc *document

	pendingUpdate *Info
	pendingDelete *Info

	// Transient, never serialized. Set by whoever traverses into a
	// parent's pending-update slot.
	isPendingUpdateInfo bool
}

// NewInfo builds a record from raw fields, as used when a plugin is first
// discovered. The display/lookup name is derived here, once, from pkgName
// and alias.
func NewInfo(pkgName, alias string, low, high, version int, path string, typ Type) *Info {
	info := &Info{doc: newDocument()}
	info.doc.setString(keyPackageName, pkgName)
	info.doc.setString(keyAlias, alias)
	info.doc.setString(keyName, makeName(pkgName, alias))
	info.doc.setInt(keyVersionLow, low)
	info.doc.setInt(keyVersionHigh, high)
	info.setVersion(version)
	info.SetPath(path)
	info.SetType(typ)
	return info
}

// NewLegacyInfo builds a minimal record for a legacy "p-n" plugin, which
// carries its name directly instead of a package name and alias.
func NewLegacyInfo(name string, low, high, version int) *Info {
	info := &Info{doc: newDocument()}
	info.doc.setString(keyName, name)
	info.doc.setInt(keyVersionLow, low)
	info.doc.setInt(keyVersionHigh, high)
	info.doc.setInt(keyVersion, version)
	return info
}

// ParseInfo rebuilds a record from its serialized text form. It fails with
// ErrMalformedInput when text is not a JSON object and ErrIncompleteRecord
// when any of the pkgname/type/ver keys is missing; that triple is the
// minimal-validity contract separating a real record from garbage.
func ParseInfo(text string) (*Info, error) {
	doc, err := parseDocument([]byte(text))
	if err != nil {
		return nil, err
	}
	if !doc.has(keyPackageName) || !doc.has(keyType) || !doc.has(keyVersion) {
		return nil, fmt.Errorf("%w: need %s, %s and %s", ErrIncompleteRecord,
			keyPackageName, keyType, keyVersion)
	}
	return newInfo(doc, 0)
}

// infoFromDocument is the stricter factory used when loading a persisted
// list: on top of the ParseInfo contract the derived name must be non-empty.
func infoFromDocument(doc *document) (*Info, error) {
	if !doc.has(keyPackageName) || !doc.has(keyType) || !doc.has(keyVersion) {
		return nil, fmt.Errorf("%w: need %s, %s and %s", ErrIncompleteRecord,
			keyPackageName, keyType, keyVersion)
	}
	info, err := newInfo(doc, 0)
	if err != nil {
		return nil, err
	}
	if info.Name() == "" {
		return nil, fmt.Errorf("%w: empty name", ErrIncompleteRecord)
	}
	return info, nil
}

// newInfo wraps doc and caches any nested pending records, recursively.
func newInfo(doc *document, depth int) (*Info, error) {
	if depth > maxPendingDepth {
		return nil, fmt.Errorf("%w: pending records nested deeper than %d",
			ErrMalformedInput, maxPendingDepth)
	}
	info := &Info{doc: doc}
	if child := doc.object(keyPendingUpdate); child != nil {
		pu, err := newInfo(child, depth+1)
		if err != nil {
			return nil, err
		}
		info.pendingUpdate = pu
	}
	if child := doc.object(keyPendingDelete); child != nil {
		pd, err := newInfo(child, depth+1)
		if err != nil {
			return nil, err
		}
		info.pendingDelete = pd
	}
	return info, nil
}

// Clone returns a fully independent deep copy, pending chains included.
func (i *Info) Clone() *Info {
	c := &Info{
		doc:                 i.doc.clone(),
		isPendingUpdateInfo: i.isPendingUpdateInfo,
	}
	if i.pendingUpdate != nil {
		c.pendingUpdate = i.pendingUpdate.Clone()
	}
	if i.pendingDelete != nil {
		c.pendingDelete = i.pendingDelete.Clone()
	}
	return c
}

// makeName derives the display/lookup name: the alias wins, then the
// package name. Called only at construction time; accessors afterwards read
// the stored value.
func makeName(pkgName, alias string) string {
	if alias != "" {
		return alias
	}
	if pkgName != "" {
		return pkgName
	}
	return ""
}

// Name returns the plugin name: the alias if one was assigned, otherwise
// the package name.
func (i *Info) Name() string {
	return i.doc.getString(keyName)
}

// PackageName returns the canonical package identifier.
func (i *Info) PackageName() string {
	return i.doc.getString(keyPackageName)
}

// Alias returns the human-assigned alias, if any.
func (i *Info) Alias() string {
	return i.doc.getString(keyAlias)
}

// Version returns the plugin version number.
func (i *Info) Version() int {
	return i.doc.getInt(keyVersion)
}

// VersionValue returns the monotonic comparable form of the version,
// independent of how the version number is displayed.
func (i *Info) VersionValue() int64 {
	return i.doc.getInt64(keyVersionValue)
}

// setVersion keeps ver and its comparable form in step.
func (i *Info) setVersion(version int) {
	i.doc.setInt(keyVersion, version)
	i.doc.setInt64(keyVersionValue, int64(version))
}

// Path returns the current on-disk location of the plugin artifact.
func (i *Info) Path() string {
	return i.doc.getString(keyPath)
}

// SetPath records a new on-disk location for the plugin artifact.
func (i *Info) SetPath(path string) {
	i.doc.setString(keyPath, path)
}

// LowVersion returns the minimum host protocol version the plugin supports.
func (i *Info) LowVersion() int {
	return i.doc.getInt(keyVersionLow)
}

// HighVersion returns the maximum host protocol version the plugin supports.
func (i *Info) HighVersion() int {
	return i.doc.getInt(keyVersionHigh)
}

// Type returns the install-lifecycle type of the plugin.
func (i *Info) Type() Type {
	return Type(i.doc.getInt(keyType))
}

// SetType records a new install-lifecycle type.
func (i *Info) SetType(typ Type) {
	i.doc.setInt(keyType, int(typ))
}

// IsUsed reports whether the plugin has been activated at least once.
func (i *Info) IsUsed() bool {
	return i.doc.getBool(keyUsed)
}

// SetIsUsed records whether the plugin has been activated at least once.
func (i *Info) SetIsUsed(used bool) {
	i.doc.setBool(keyUsed, used)
}

// FrameworkVersion returns the runtime framework-compatibility version,
// FrameworkVersionUnknown until the host has determined it.
func (i *Info) FrameworkVersion() int {
	return i.doc.getInt(keyFrameworkVersion)
}

// SetFrameworkVersion records the runtime framework-compatibility version.
func (i *Info) SetFrameworkVersion(version int) {
	i.doc.setInt(keyFrameworkVersion, version)
}

// NeedsUpdate reports whether a pending-update record is attached.
func (i *Info) NeedsUpdate() bool {
	return i.pendingUpdate != nil
}

// PendingUpdate returns the record this plugin will be updated to, or nil.
// The returned record is owned by i; promote changes to it by calling
// SetPendingUpdate again.
func (i *Info) PendingUpdate() *Info {
	return i.pendingUpdate
}

// SetPendingUpdate attaches a deep copy of info as the pending update,
// keeping the cached record and the nested upinfo document in step. A nil
// info clears the slot and removes the nested key entirely.
func (i *Info) SetPendingUpdate(info *Info) {
	if info == nil {
		i.pendingUpdate = nil
		i.doc.delete(keyPendingUpdate)
		return
	}
	owned := info.Clone()
	i.pendingUpdate = owned
	i.doc.setRaw(keyPendingUpdate, owned.doc.raw)
}

// NeedsUninstall reports whether a pending-delete record is attached.
func (i *Info) NeedsUninstall() bool {
	return i.pendingDelete != nil
}

// PendingDelete returns the record describing the scheduled removal, or nil.
func (i *Info) PendingDelete() *Info {
	return i.pendingDelete
}

// SetPendingDelete attaches a deep copy of info as the pending delete; nil
// clears the slot and removes the nested delinfo key entirely.
func (i *Info) SetPendingDelete(info *Info) {
	if info == nil {
		i.pendingDelete = nil
		i.doc.delete(keyPendingDelete)
		return
	}
	owned := info.Clone()
	i.pendingDelete = owned
	i.doc.setRaw(keyPendingDelete, owned.doc.raw)
}

// ApplyUpdate overwrites the version, path and type from info, typically
// once a pending update has been promoted. Identity fields (name, alias,
// protocol range) survive an update.
func (i *Info) ApplyUpdate(info *Info) {
	i.setVersion(info.Version())
	i.SetPath(info.Path())
	i.SetType(info.Type())
}

// IsPendingUpdateInfo reports whether this record was reached through some
// other record's pending-update slot rather than loaded as a top-level
// record. The flag is transient and never round-trips serialization.
func (i *Info) IsPendingUpdateInfo() bool {
	return i.isPendingUpdateInfo
}

// SetIsPendingUpdateInfo marks the record as one reached through a parent's
// pending-update slot. Called by traversal code, not by the record itself.
func (i *Info) SetIsPendingUpdateInfo(v bool) {
	i.isPendingUpdateInfo = v
}

// Text serializes the full record, nested pending records included, to its
// canonical JSON text form. ParseInfo(i.Text()) rebuilds an equivalent
// record.
func (i *Info) Text() string {
	return string(i.doc.raw)
}

func (i *Info) String() string {
	return fmt.Sprintf("PluginInfo{name=%s ver=%d type=%s path=%s}",
		i.Name(), i.Version(), i.Type(), i.Path())
}
