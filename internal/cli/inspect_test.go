package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dart-cn/RePlugin/pkg/plugin"
)

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := GetRootCmd()
	cmd.SetArgs(args)

	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(output)

	err := cmd.Execute()
	return output.String(), err
}

func TestInspectCommand(t *testing.T) {
	t.Run("prints a single record", func(t *testing.T) {
		info := plugin.NewInfo("com.example.plug", "clean", 1, 5, 3, "/data/p.apk", plugin.TypeNotInstalled)
		path := writeTestFile(t, "record.json", info.Text())

		out, err := runCommand(t, "inspect", path)
		require.NoError(t, err)

		assert.Contains(t, out, "name:      clean")
		assert.Contains(t, out, "package:   com.example.plug")
		assert.Contains(t, out, "version:   3")
		assert.Contains(t, out, "not-installed")
	})

	t.Run("walks pending chains", func(t *testing.T) {
		info := plugin.NewInfo("com.example.plug", "", 1, 5, 3, "/data/p.apk", plugin.TypeExtracted)
		info.SetPendingUpdate(plugin.NewInfo("com.example.plug", "", 1, 5, 4, "/data/p-v4.apk", plugin.TypeNotInstalled))
		path := writeTestFile(t, "record.json", info.Text())

		out, err := runCommand(t, "inspect", path)
		require.NoError(t, err)

		assert.Contains(t, out, "pending update:")
		assert.Contains(t, out, "/data/p-v4.apk")
	})

	t.Run("prints a plugin list", func(t *testing.T) {
		path := writeTestFile(t, "p.l",
			`[{"pkgname":"com.example.a","name":"com.example.a","type":10,"ver":1},`+
				`{"pkgname":"com.example.b","name":"com.example.b","type":11,"ver":2}]`)

		out, err := runCommand(t, "inspect", path)
		require.NoError(t, err)

		assert.Contains(t, out, "com.example.a")
		assert.Contains(t, out, "com.example.b")
	})

	t.Run("resolves artifact directories with data-dir", func(t *testing.T) {
		info := plugin.NewInfo("com.example.plug", "", 1, 5, 3, "/data/p.apk", plugin.TypeNotInstalled)
		path := writeTestFile(t, "record.json", info.Text())

		out, err := runCommand(t, "inspect", path, "--data-dir", "/data/app")
		require.NoError(t, err)

		assert.Contains(t, out, filepath.Join("/data/app", "p_a"))
		assert.Contains(t, out, filepath.Join("/data/app", "p_od"))
		assert.Contains(t, out, filepath.Join("/data/app", "p_n"))
	})

	t.Run("fails on a malformed record", func(t *testing.T) {
		path := writeTestFile(t, "bad.json", `{"pkgname":`)

		_, err := runCommand(t, "inspect", path)
		require.Error(t, err)
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		_, err := runCommand(t, "inspect", filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
	})
}

func TestValidateCommand(t *testing.T) {
	t.Run("accepts a valid record", func(t *testing.T) {
		info := plugin.NewInfo("com.example.plug", "", 1, 5, 3, "/data/p.apk", plugin.TypeNotInstalled)
		path := writeTestFile(t, "record.json", info.Text())

		out, err := runCommand(t, "validate", path)
		require.NoError(t, err)
		assert.Contains(t, out, "1 valid record(s)")
	})

	t.Run("rejects a record missing mandatory keys", func(t *testing.T) {
		path := writeTestFile(t, "record.json", `{"pkgname":"com.example.plug","ver":3}`)

		_, err := runCommand(t, "validate", path)
		require.ErrorIs(t, err, plugin.ErrIncompleteRecord)
	})

	t.Run("rejects a list failing the schema", func(t *testing.T) {
		path := writeTestFile(t, "p.l", `[{"pkgname":"com.example.a","type":"apk","ver":1}]`)

		_, err := runCommand(t, "validate", path)
		require.Error(t, err)
	})
}
