package fix

import (
	"os"
	"path/filepath"
)

// WriteOptions controls how Write persists a fixed file back to disk.
type WriteOptions struct {
	// BackupExtension, if non-empty, causes the original content to be
	// preserved at path+BackupExtension before the fixed content replaces it.
	BackupExtension string
}

// Write atomically replaces the file at path with text: it writes to a
// temp sibling in the same directory, optionally snapshots the existing
// file to a backup path first, then renames the temp file into place so a
// reader never observes a partially written file.
func Write(path, text string, opts WriteOptions) error {
	if opts.BackupExtension != "" {
		original, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path+opts.BackupExtension, original, 0o644); err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	info, err := os.Stat(path)
	mode := os.FileMode(0o644)
	if err == nil {
		mode = info.Mode()
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return os.Rename(tmpPath, path)
}
