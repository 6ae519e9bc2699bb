package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/reelslot/internal/paytable"
)

// LoadMachine reads the machine definition at path, or builds the built-in
// cabinet when path is empty.
func LoadMachine(path string) (*paytable.Machine, error) {
	if path == "" {
		m, err := paytable.Default()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedBuildBuiltin, err)
		}
		slog.Info(LogMsgMachineBuiltin, "name", m.Name(), "reels", m.Reels())
		return m, nil
	}

	m, err := paytable.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadMachine, err)
	}
	slog.Info(LogMsgMachineLoaded,
		"path", path,
		"name", m.Name(),
		"reels", m.Reels(),
		"modes", len(m.Modes()))
	return m, nil
}
