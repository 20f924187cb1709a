// Package corpus manages the on-disk checkout of the test ROM collection.
package corpus

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog"
)

// DefaultRepoURL is the canonical nes-test-roms collection.
const DefaultRepoURL = "https://github.com/christopherpow/nes-test-roms.git"

// Manager acquires the fixture corpus before a run and removes it afterwards.
// The checkout is treated as read-only by everything else in the harness.
type Manager struct {
	Dir     string
	RepoURL string // zero means DefaultRepoURL
	Keep    bool
	Logger  zerolog.Logger
}

// Ensure makes the corpus directory available, shallow-cloning it when
// absent. An existing directory is used as-is, whatever its state.
func (m *Manager) Ensure(ctx context.Context) error {
	if _, err := os.Stat(m.Dir); err == nil {
		m.Logger.Debug().Str("dir", m.Dir).Msg("Test ROMs already present")
		return nil
	}

	url := m.RepoURL
	if url == "" {
		url = DefaultRepoURL
	}
	m.Logger.Info().Str("url", url).Str("dir", m.Dir).Msg("Cloning test ROM repository")

	cmd := exec.CommandContext(ctx, "git", "clone", "--depth", "1", url, m.Dir)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("cloning test ROMs from %s: %w\n%s", url, err, out)
	}
	return nil
}

// Cleanup removes the checkout unless Keep is set. Missing directories are
// not an error.
func (m *Manager) Cleanup() error {
	if m.Keep {
		return nil
	}
	if _, err := os.Stat(m.Dir); os.IsNotExist(err) {
		return nil
	}
	m.Logger.Info().Str("dir", m.Dir).Msg("Cleaning up test ROMs")
	if err := os.RemoveAll(m.Dir); err != nil {
		return fmt.Errorf("removing test ROM checkout: %w", err)
	}
	return nil
}
