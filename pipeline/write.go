// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package pipeline

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

const outputDirPermissions = 0o755

// writeIfChanged writes content to path unless the file already holds
// exactly those bytes. In check mode nothing is written; the return value
// still reports whether a write would have happened. Write failures are
// fatal: a partially regenerated catalog set is a misleading state.
func (p *Pipeline) writeIfChanged(path string, content []byte) (bool, error) {
	current, err := os.ReadFile(path)
	if err == nil && bytes.Equal(current, content) {
		return false, nil
	}

	if p.check {
		return true, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), outputDirPermissions); err != nil {
		return false, fmt.Errorf("failed to create output directory for %s: %w", path, err)
	}

	if err := atomic.WriteFile(path, bytes.NewReader(content)); err != nil {
		return false, fmt.Errorf("failed to write catalog %s: %w", path, err)
	}

	return true, nil
}
