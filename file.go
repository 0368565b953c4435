// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/robotstidy

package robotstidy

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// defaultFileMode is used when the target file does not exist yet.
const defaultFileMode fs.FileMode = 0o644

// ReadFile reads and parses robots.txt from a file.
//
// Errors wrap ErrRead. The registry built before a scan failure is returned
// along with the error.
func ReadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open: %w", ErrRead, err)
	}
	defer func() { _ = f.Close() }()

	reg, err := Parse(f)
	if err != nil {
		return reg, fmt.Errorf("%w: %w", ErrRead, err)
	}

	return reg, nil
}

// WriteFileAtomic replaces path with data via a temporary file and rename.
//
// A symlinked path is resolved first so the link target is replaced and the
// link itself survives. The existing file mode is preserved. On failure the
// target is untouched and the temporary file is removed. Errors wrap ErrWrite.
func WriteFileAtomic(path string, data []byte) error {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	mode := defaultFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: stat: %w", ErrWrite, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp: %w", ErrWrite, err)
	}

	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("%w: write temp: %w", ErrWrite, err)
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("%w: sync temp: %w", ErrWrite, err)
	}

	if err := tmp.Chmod(mode); err != nil {
		return fmt.Errorf("%w: chmod temp: %w", ErrWrite, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close temp: %w", ErrWrite, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: rename: %w", ErrWrite, err)
	}

	committed = true
	return nil
}
