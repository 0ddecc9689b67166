package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BuunGroupCore/precast-app-sub003/internal/defs"
)

// EnvLine is one KEY=value entry.
type EnvLine struct {
	Key   string
	Value string
}

var envAssignment = regexp.MustCompile(`(?m)^([A-Z0-9_]+)=(.*)$`)

// EnvMarker returns the comment that introduces section. Its presence makes
// AppendEnvSection a no-op for that file.
func EnvMarker(section string) string {
	return fmt.Sprintf("# %s Configuration", section)
}

// ExampleValues replaces every value in text with the placeholder, except
// on lines that already hold one ("your-") or a localhost URL.
func ExampleValues(text string) string {
	return envAssignment.ReplaceAllStringFunc(text, func(line string) string {
		if strings.Contains(line, "your-") || strings.Contains(line, "http://localhost") {
			return line
		}
		key := envAssignment.FindStringSubmatch(line)[1]
		return key + "=" + defs.EnvPlaceholder
	})
}

// AppendEnvSection appends section to .env and, with placeholder values, to
// .env.example in projectPath. Each file is handled independently: it is
// created when missing, left alone when it already carries the section
// marker, and keys it already defines are not repeated.
func AppendEnvSection(projectPath, section string, lines []EnvLine) error {
	if len(lines) == 0 {
		return nil
	}
	block := renderEnvBlock(section, lines)

	var errs []error
	if err := appendEnvFile(filepath.Join(projectPath, defs.EnvFile), section, block); err != nil {
		errs = append(errs, err)
	}
	if err := appendEnvFile(filepath.Join(projectPath, defs.EnvExampleFile), section, ExampleValues(block)); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func renderEnvBlock(section string, lines []EnvLine) string {
	var b strings.Builder
	b.WriteString(EnvMarker(section))
	b.WriteByte('\n')
	for _, l := range lines {
		fmt.Fprintf(&b, "%s=%s\n", l.Key, l.Value)
	}
	return b.String()
}

func appendEnvFile(path, section, block string) error {
	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read %s: %w", path, err)
	}
	current := string(existing)
	if strings.Contains(current, EnvMarker(section)) {
		return nil
	}

	block = dropDefinedKeys(block, current)
	if envAssignment.FindStringIndex(block) == nil {
		return nil
	}

	var b strings.Builder
	b.WriteString(current)
	if current != "" {
		if !strings.HasSuffix(current, "\n") {
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	b.WriteString(block)

	if err := os.WriteFile(path, []byte(b.String()), defs.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// dropDefinedKeys removes assignments from block whose key is already set
// in current.
func dropDefinedKeys(block, current string) string {
	defined := map[string]bool{}
	for _, m := range envAssignment.FindAllStringSubmatch(current, -1) {
		defined[m[1]] = true
	}
	if len(defined) == 0 {
		return block
	}
	var kept []string
	for _, line := range strings.SplitAfter(block, "\n") {
		if m := envAssignment.FindStringSubmatch(strings.TrimSuffix(line, "\n")); m != nil && defined[m[1]] {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "")
}
