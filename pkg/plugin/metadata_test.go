package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePackage is a host package descriptor for tests.
type fakePackage struct {
	name string
	meta MetadataBundle
}

func (p fakePackage) PackageName() string      { return p.name }
func (p fakePackage) Metadata() MetadataBundle { return p.meta }

func TestNewInfoFromPackage(t *testing.T) {
	t.Run("reads the full metadata bundle", func(t *testing.T) {
		pkg := fakePackage{
			name: "com.example.plug",
			meta: BundleMap{
				MetaKeyAlias:            "clean",
				MetaKeyVersionLow:       10,
				MetaKeyVersionHigh:      12,
				MetaKeyVersion:          104,
				MetaKeyFrameworkVersion: 4,
			},
		}

		info, err := NewInfoFromPackage(pkg, "/download/p.apk")
		require.NoError(t, err)

		assert.Equal(t, "clean", info.Name())
		assert.Equal(t, "com.example.plug", info.PackageName())
		assert.Equal(t, "clean", info.Alias())
		assert.Equal(t, 10, info.LowVersion())
		assert.Equal(t, 12, info.HighVersion())
		assert.Equal(t, 104, info.Version())
		assert.Equal(t, "/download/p.apk", info.Path())
		assert.Equal(t, TypeNotInstalled, info.Type())
		assert.Equal(t, 4, info.FrameworkVersion())
	})

	t.Run("absent keys default to zero", func(t *testing.T) {
		pkg := fakePackage{name: "com.example.plug", meta: BundleMap{}}

		info, err := NewInfoFromPackage(pkg, "/download/p.apk")
		require.NoError(t, err)

		assert.Equal(t, "com.example.plug", info.Name())
		assert.Empty(t, info.Alias())
		assert.Zero(t, info.LowVersion())
		assert.Zero(t, info.HighVersion())
		assert.Zero(t, info.Version())
		assert.Equal(t, FrameworkVersionUnknown, info.FrameworkVersion())
	})

	t.Run("rejects a package without metadata", func(t *testing.T) {
		pkg := fakePackage{name: "com.example.plug"}

		info, err := NewInfoFromPackage(pkg, "/download/p.apk")
		require.ErrorIs(t, err, ErrMalformedInput)
		assert.Nil(t, info)
	})
}

func TestBundleMap(t *testing.T) {
	bundle := BundleMap{
		"str":     "value",
		"int":     7,
		"int64":   int64(8),
		"float":   9.0,
		"not-int": "nope",
	}

	assert.Equal(t, "value", bundle.GetString("str"))
	assert.Empty(t, bundle.GetString("int"))
	assert.Empty(t, bundle.GetString("missing"))

	assert.Equal(t, 7, bundle.GetInt("int"))
	assert.Equal(t, 8, bundle.GetInt("int64"))
	assert.Equal(t, 9, bundle.GetInt("float"))
	assert.Zero(t, bundle.GetInt("not-int"))
	assert.Zero(t, bundle.GetInt("missing"))
}
