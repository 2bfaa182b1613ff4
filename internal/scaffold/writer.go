package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// Write places content at path. Existing files are left untouched unless
// force is set. The file lands atomically via a same-directory temp file.
func Write(path, content string, force bool) (Outcome, error) {
	if _, err := os.Stat(path); err == nil {
		if !force {
			return OutcomeSkipped, nil
		}
	} else if !os.IsNotExist(err) {
		return OutcomeFailed, fmt.Errorf("stat %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return OutcomeFailed, fmt.Errorf("create temp in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return OutcomeFailed, fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return OutcomeFailed, fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return OutcomeFailed, fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return OutcomeFailed, fmt.Errorf("rename to %s: %w", path, err)
	}
	return OutcomeCreated, nil
}
