package manifest

import (
	"fmt"
	"os"
	"path/filepath"
)

// BackupSuffix is appended to a file's name for its pre-upgrade backup.
const BackupSuffix = ".depup.bak"

const fileMode = 0o644

// backupFile copies path to path+BackupSuffix before the first modification.
// An existing backup is never overwritten, so the backup always holds the
// state from before the first upgrade of a run.
func backupFile(path string) error {
	backupPath := path + BackupSuffix
	if _, err := os.Stat(backupPath); err == nil {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s for backup: %w", path, err)
	}
	if err = os.WriteFile(backupPath, data, fileMode); err != nil {
		return fmt.Errorf("failed to write backup %s: %w", backupPath, err)
	}
	return nil
}

// writeFileAtomic writes data to a temp file in the same directory and
// renames it over path, so readers never observe a half-written file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close %s: %w", tmpPath, err)
	}

	if err = os.Chmod(tmpPath, fileMode); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to chmod %s: %w", tmpPath, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
