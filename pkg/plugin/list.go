package plugin

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"github.com/xeipuuv/gojsonschema"
)

// List holds the records of every known plugin and persists them as one
// JSON array. It does no locking of its own: concurrent access is the
// owner's responsibility, the same as for individual records.
type List struct {
	logger       zerolog.Logger
	schemaLoader gojsonschema.JSONLoader
	infos        []*Info
}

// NewList creates an empty plugin list.
func NewList(logger zerolog.Logger) *List {
	return &List{
		logger:       logger.With().Str("component", "plugin-list").Logger(),
		schemaLoader: gojsonschema.NewStringLoader(ListSchema),
	}
}

// Add inserts info, replacing any existing record with the same name.
func (l *List) Add(info *Info) {
	for n, existing := range l.infos {
		if existing.Name() == info.Name() {
			l.infos[n] = info
			return
		}
	}
	l.infos = append(l.infos, info)
}

// Get returns the record with the given name, or nil.
func (l *List) Get(name string) *Info {
	for _, info := range l.infos {
		if info.Name() == name {
			return info
		}
	}
	return nil
}

// GetByPackage returns the record with the given package name, or nil.
func (l *List) GetByPackage(pkgName string) *Info {
	for _, info := range l.infos {
		if info.PackageName() == pkgName {
			return info
		}
	}
	return nil
}

// Remove drops the record with the given name and reports whether one was
// present.
func (l *List) Remove(name string) bool {
	for n, info := range l.infos {
		if info.Name() == name {
			l.infos = append(l.infos[:n], l.infos[n+1:]...)
			return true
		}
	}
	return false
}

// All returns the records in insertion order. The slice is a copy; the
// records are not.
func (l *List) All() []*Info {
	out := make([]*Info, len(l.infos))
	copy(out, l.infos)
	return out
}

// Len returns the number of records.
func (l *List) Len() int {
	return len(l.infos)
}

// Load replaces the list's contents with the records persisted at path. A
// missing file is a fresh host, not an error. The file is validated against
// ListSchema before parsing; records that then fail the minimal-validity
// contract are skipped with a warning rather than failing the load. Records
// found inside a loaded record's pending-update slot are marked as such.
func (l *List) Load(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Debug().Str("path", path).Msg("No plugin list file, starting empty")
		l.infos = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read plugin list: %w", err)
	}

	if err := l.validateSchema(data); err != nil {
		return fmt.Errorf("plugin list schema validation failed: %w", err)
	}

	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		return fmt.Errorf("%w: plugin list is not a JSON array", ErrMalformedInput)
	}

	var infos []*Info
	for _, el := range parsed.Array() {
		info, err := infoFromDocument(&document{raw: []byte(el.Raw)})
		if err != nil {
			l.logger.Warn().Err(err).Msg("Skipping invalid plugin record")
			continue
		}
		if pu := info.PendingUpdate(); pu != nil {
			pu.SetIsPendingUpdateInfo(true)
		}
		infos = append(infos, info)
	}

	l.infos = infos
	l.logger.Debug().Int("count", len(infos)).Str("path", path).Msg("Loaded plugin list")
	return nil
}

// Save persists the list to path as a JSON array, writing a temporary file
// first and renaming it into place so readers never observe a torn file.
func (l *List) Save(path string) error {
	raw := []byte("[]")
	for _, info := range l.infos {
		out, err := sjson.SetRawBytes(raw, "-1", info.doc.raw)
		if err != nil {
			return fmt.Errorf("failed to serialize plugin record %s: %w", info.Name(), err)
		}
		raw = out
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("failed to write plugin list: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace plugin list: %w", err)
	}

	l.logger.Debug().Int("count", len(l.infos)).Str("path", path).Msg("Saved plugin list")
	return nil
}

// validateSchema validates the raw list file against ListSchema.
func (l *List) validateSchema(data []byte) error {
	documentLoader := gojsonschema.NewBytesLoader(data)
	result, err := gojsonschema.Validate(l.schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if !result.Valid() {
		var errMsg string
		for n, err := range result.Errors() {
			if n > 0 {
				errMsg += "; "
			}
			errMsg += err.String()
		}
		return fmt.Errorf("schema validation errors: %s", errMsg)
	}

	return nil
}
