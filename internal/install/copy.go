package install

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/code-zen/zen/internal/messages"
)

// copyTree copies the regular files under src into dst, preserving relative
// structure and file permissions. Non-regular entries (symlinks, sockets)
// are skipped; the bundle is plain Markdown content.
func copyTree(sys System, src string, dst string) error {
	return sys.WalkDir(src, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			if err := sys.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf(messages.InstallCreateDirFailedFmt, target, err)
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		data, err := sys.ReadFile(path)
		if err != nil {
			return fmt.Errorf(messages.InstallFailedReadFmt, path, err)
		}
		info, err := d.Info()
		if err != nil {
			return fmt.Errorf(messages.InstallFailedStatFmt, path, err)
		}
		if err := sys.WriteFileAtomic(target, data, info.Mode().Perm()); err != nil {
			return fmt.Errorf(messages.InstallFailedCopyFmt, path, target, err)
		}
		return nil
	})
}
