package template

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"path"
	"path/filepath"
	"strings"

	"github.com/BuunGroupCore/precast-app-sub003/internal/defs"
)

// CopyResult lists destination paths, relative to the destination
// directory and slash-separated, in processing order.
type CopyResult struct {
	Written []string
	// Skipped holds files excluded by ShouldSkip or left in place by
	// SkipIfExists.
	Skipped []string
}

// Files lazily enumerates every file below dir, dotfiles included,
// yielding paths relative to dir. Directories are never yielded.
func (e *Engine) Files(dir string) iter.Seq2[string, error] {
	dir = cleanTemplatePath(dir)
	return func(yield func(string, error) bool) {
		err := fs.WalkDir(e.fsys, dir, func(p string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			rel := p
			if dir != "." {
				rel = strings.TrimPrefix(p, dir+"/")
			}
			if !yield(rel, nil) {
				return fs.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}

// filterFiles is the inclusion stage between enumeration and writing.
func filterFiles(files iter.Seq2[string, error], keep func(string) bool) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for rel, err := range files {
			if err != nil {
				yield("", err)
				return
			}
			if keep(rel) && !yield(rel, nil) {
				return
			}
		}
	}
}

// CopyTree mirrors the template subtree srcDir into destDir.
//
// Files excluded by ShouldSkip are omitted. Names are mapped with DestPath.
// .hbs files are rendered against data and everything else is copied byte
// for byte. Both follow the same exists policy as RenderFile. Cancellation
// is checked before each file.
func (e *Engine) CopyTree(ctx context.Context, srcDir, destDir string, data Data, opts Options) (*CopyResult, error) {
	srcDir = cleanTemplatePath(srcDir)
	if !e.HasDir(srcDir) {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, srcDir)
	}

	result := &CopyResult{}
	included := filterFiles(e.Files(srcDir), func(rel string) bool {
		if ShouldSkip(rel, data) {
			result.Skipped = append(result.Skipped, DestPath(rel))
			return false
		}
		return true
	})

	for rel, err := range included {
		if err != nil {
			return result, fmt.Errorf("walk %s: %w", srcDir, err)
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}

		destRel := DestPath(rel)
		if err := ValidateDestPath(destDir, destRel); err != nil {
			return result, err
		}

		src := path.Join(srcDir, rel)
		dest := filepath.Join(destDir, filepath.FromSlash(destRel))

		var written bool
		if IsTemplate(rel) {
			written, err = e.renderFile(src, dest, data, opts)
		} else {
			written, err = e.copyFile(src, dest, opts)
		}
		if err != nil {
			return result, err
		}
		if written {
			result.Written = append(result.Written, destRel)
		} else {
			result.Skipped = append(result.Skipped, destRel)
		}
	}

	e.logger.Debug("copied template tree", "source", srcDir, "dest", destDir,
		"written", len(result.Written), "skipped", len(result.Skipped))
	return result, nil
}

// copyFile copies a non-template file verbatim. Executable source files
// and shell scripts keep the executable bit.
func (e *Engine) copyFile(src, dest string, opts Options) (bool, error) {
	skip, err := checkDestination(dest, opts)
	if err != nil || skip {
		return false, err
	}

	content, err := fs.ReadFile(e.fsys, src)
	if err != nil {
		return false, fmt.Errorf("copy %s: %w", src, err)
	}

	perm := defs.FilePerm
	if info, statErr := fs.Stat(e.fsys, src); statErr == nil && info.Mode().Perm()&0o111 != 0 {
		perm = defs.ExecPerm
	}
	if strings.HasSuffix(dest, ".sh") {
		perm = defs.ExecPerm
	}

	if err := writeFile(dest, content, perm); err != nil {
		return false, fmt.Errorf("copy %s: %w", src, err)
	}
	e.logger.Debug("copied file", "template", src, "output", dest)
	return true, nil
}

// HasDir reports whether dir exists in the store as a directory.
func (e *Engine) HasDir(dir string) bool {
	info, err := fs.Stat(e.fsys, cleanTemplatePath(dir))
	return err == nil && info.IsDir()
}

// Exists reports whether a template file or directory exists.
func (e *Engine) Exists(name string) bool {
	_, err := fs.Stat(e.fsys, cleanTemplatePath(name))
	return err == nil
}

// ListDir returns the entry names directly below dir. A missing directory
// yields ErrTemplateNotFound.
func (e *Engine) ListDir(dir string) ([]string, error) {
	entries, err := fs.ReadDir(e.fsys, cleanTemplatePath(dir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, dir)
		}
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// Variant pairs a render-context key with the value that selects an
// override file.
type Variant struct {
	Key   string
	Value string
}

// SelectVariant returns the sibling override of basePath for the first
// variant whose key holds its value in data, if that sibling exists.
// The sibling name inserts "-<value>" before the first dot of the base
// name: components/Layout.tsx.hbs becomes components/Layout-tailwind.tsx.hbs.
// Otherwise basePath is returned unchanged.
func (e *Engine) SelectVariant(basePath string, data Data, variants []Variant) string {
	for _, v := range variants {
		if fmt.Sprint(data[v.Key]) != v.Value {
			continue
		}
		candidate := variantPath(basePath, v.Value)
		if e.Exists(candidate) {
			return candidate
		}
		return basePath
	}
	return basePath
}

func variantPath(basePath, suffix string) string {
	dir, base := path.Split(basePath)
	stem, ext := base, ""
	if i := strings.IndexByte(base, '.'); i > 0 {
		stem, ext = base[:i], base[i:]
	}
	return dir + stem + "-" + suffix + ext
}

func cleanTemplatePath(p string) string {
	p = path.Clean(filepath.ToSlash(p))
	if p == "" || p == "/" {
		return "."
	}
	return strings.TrimPrefix(p, "/")
}

// ValidateDestPath ensures a relative destination does not escape destDir.
func ValidateDestPath(destDir, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))
	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}
	return nil
}
