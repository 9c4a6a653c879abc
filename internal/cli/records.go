package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dart-cn/RePlugin/pkg/plugin"
)

// readRecords loads either a plugin list (JSON array) or a single record
// (JSON object) from path.
func readRecords(log zerolog.Logger, path string) ([]*plugin.Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if strings.HasPrefix(strings.TrimSpace(string(data)), "[") {
		list := plugin.NewList(log)
		if err := list.Load(path); err != nil {
			return nil, err
		}
		return list.All(), nil
	}

	info, err := plugin.ParseInfo(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if pu := info.PendingUpdate(); pu != nil {
		pu.SetIsPendingUpdateInfo(true)
	}
	return []*plugin.Info{info}, nil
}
