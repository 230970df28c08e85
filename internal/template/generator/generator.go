package generator

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/tacogips/create-bun-stack/internal/debug"
)

// Stats counts what a Copier has done so far.
type Stats struct {
	// FilesWritten is the number of files written to the target.
	FilesWritten int
	// TextFiles is the number of files that went through substitution.
	TextFiles int
	// BinaryFiles is the number of files copied byte-for-byte.
	BinaryFiles int
	// Directories is the number of directories created or reused.
	Directories int
	// Excluded is the number of entries skipped by exclude patterns.
	Excluded int
	// Files lists every written target path in write order.
	Files []string
}

// Copier materializes template trees from a source filesystem into a target
// filesystem. A Copier is not safe for concurrent use.
type Copier struct {
	source afero.Fs
	target afero.Fs
	writer Writer
	stats  Stats
}

// NewCopier creates a Copier reading from source and writing to target.
func NewCopier(source, target afero.Fs) *Copier {
	return &Copier{
		source: source,
		target: target,
		writer: NewFileWriter(target),
	}
}

// NewOsCopier creates a Copier that reads and writes the OS filesystem.
func NewOsCopier() *Copier {
	fs := afero.NewOsFs()
	return NewCopier(fs, fs)
}

// Stats returns a snapshot of the copy statistics.
func (c *Copier) Stats() Stats {
	s := c.stats
	s.Files = append([]string(nil), c.stats.Files...)
	return s
}

// CopyDirectory copies sourceDir into targetDir recursively.
//
// Entries are visited in the order the source filesystem lists them. Entries
// whose name matches exclude are skipped entirely. The walk is depth-first:
// each subdirectory is fully copied before the next sibling is visited. The
// first I/O error aborts the walk and is returned unmodified; whatever was
// already written stays in place.
func (c *Copier) CopyDirectory(sourceDir, targetDir string, vars Variables, exclude ExcludePatterns) error {
	debug.Debug("[generator] Copying directory: %s -> %s", sourceDir, targetDir)

	if err := c.writer.CreateDir(targetDir); err != nil {
		return err
	}
	c.stats.Directories++

	entries, err := c.readDir(sourceDir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		name := entry.Name()
		if ShouldExclude(name, exclude) {
			c.stats.Excluded++
			continue
		}

		sourcePath := filepath.Join(sourceDir, name)
		targetPath := filepath.Join(targetDir, name)

		isDir := entry.IsDir()
		if entry.Mode()&os.ModeSymlink != 0 {
			// Follow links the same way a plain stat would.
			info, err := c.source.Stat(sourcePath)
			if err != nil {
				return err
			}
			isDir = info.IsDir()
		}

		if isDir {
			if err := c.CopyDirectory(sourcePath, targetPath, vars, exclude); err != nil {
				return err
			}
			continue
		}

		if err := c.CopyFile(sourcePath, targetPath, vars); err != nil {
			return err
		}
	}

	return nil
}

// CopyFile copies a single file, substituting placeholders when the file is
// a text file. Ancestor directories of targetPath are created as needed and an
// existing target is overwritten.
func (c *Copier) CopyFile(sourcePath, targetPath string, vars Variables) error {
	if err := c.writer.CreateDir(filepath.Dir(targetPath)); err != nil {
		return err
	}

	mode := fileMode
	if info, err := c.source.Stat(sourcePath); err == nil {
		mode = info.Mode().Perm() | 0600
	}

	if IsTextFile(sourcePath) {
		content, err := afero.ReadFile(c.source, sourcePath)
		if err != nil {
			return err
		}
		processed := Substitute(string(content), vars)
		if err := c.writer.WriteFile(targetPath, []byte(processed), mode); err != nil {
			return err
		}
		c.stats.TextFiles++
	} else {
		if err := c.writer.CopyFrom(c.source, sourcePath, targetPath, mode); err != nil {
			return err
		}
		c.stats.BinaryFiles++
	}

	c.stats.FilesWritten++
	c.stats.Files = append(c.stats.Files, targetPath)
	return nil
}

// readDir lists the immediate entries of dir without sorting them.
func (c *Copier) readDir(dir string) ([]os.FileInfo, error) {
	f, err := c.source.Open(dir)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return f.Readdir(-1)
}
