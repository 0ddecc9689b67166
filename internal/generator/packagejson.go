package generator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BuunGroupCore/precast-app-sub003/internal/defs"
)

// jsonObject is a JSON object that keeps its key order across a
// read-modify-write cycle, so editing package.json leaves the author's
// layout intact.
type jsonObject struct {
	keys   []string
	values map[string]json.RawMessage
}

func newJSONObject() *jsonObject {
	return &jsonObject{values: map[string]json.RawMessage{}}
}

func (o *jsonObject) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("expected JSON object")
	}
	o.keys = nil
	o.values = map[string]json.RawMessage{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		if _, dup := o.values[key]; !dup {
			o.keys = append(o.keys, key)
		}
		o.values[key] = raw
	}
	_, err = dec.Token()
	return err
}

func (o *jsonObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(o.values[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// has reports whether key is present.
func (o *jsonObject) has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// object decodes the nested object at key, or returns an empty one.
func (o *jsonObject) object(key string) (*jsonObject, error) {
	child := newJSONObject()
	raw, ok := o.values[key]
	if !ok {
		return child, nil
	}
	if err := json.Unmarshal(raw, child); err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return child, nil
}

// set stores v under key, appending new keys at the end.
func (o *jsonObject) set(key string, v any) error {
	raw, err := marshalJSON(v)
	if err != nil {
		return err
	}
	if !o.has(key) {
		o.keys = append(o.keys, key)
	}
	o.values[key] = raw
	return nil
}

func readPackageJSON(dir string) (*jsonObject, error) {
	path := filepath.Join(dir, defs.PackageJSON)
	pkg := newJSONObject()
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		_ = pkg.set("name", filepath.Base(dir))
		_ = pkg.set("private", true)
		return pkg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, pkg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return pkg, nil
}

// marshalJSON encodes v without HTML escaping; scripts routinely contain
// "&&" and "<".
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// writeJSONFile writes v indented by two spaces with a trailing newline.
func writeJSONFile(path string, v any) error {
	compact, err := marshalJSON(v)
	if err != nil {
		return err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	return os.WriteFile(path, out.Bytes(), defs.FilePerm)
}

func writePackageJSON(dir string, pkg *jsonObject) error {
	return writeJSONFile(filepath.Join(dir, defs.PackageJSON), pkg)
}

// splitPackageSpec separates "name@version", keeping scoped names intact.
func splitPackageSpec(spec string) (name, version string) {
	at := strings.LastIndex(spec, "@")
	if at <= 0 {
		return spec, "latest"
	}
	return spec[:at], spec[at+1:]
}

// AddDependencies declares pkgs in dir/package.json. Packages that are
// already declared keep their version. The file is created when missing.
func AddDependencies(dir string, pkgs []string, dev bool) error {
	pkg, err := readPackageJSON(dir)
	if err != nil {
		return err
	}
	section := "dependencies"
	if dev {
		section = "devDependencies"
	}
	deps, err := pkg.object(section)
	if err != nil {
		return err
	}

	var added []string
	for _, spec := range pkgs {
		name, version := splitPackageSpec(spec)
		if deps.has(name) {
			continue
		}
		if err := deps.set(name, version); err != nil {
			return err
		}
		added = append(added, name)
	}
	if len(added) == 0 {
		return nil
	}

	// npm keeps dependency maps sorted.
	slices.Sort(deps.keys)
	if err := pkg.set(section, deps); err != nil {
		return err
	}
	return writePackageJSON(dir, pkg)
}

// MergeScripts adds scripts to dir/package.json without touching existing
// entries. It returns the names that were added.
func MergeScripts(dir string, scripts map[string]string) ([]string, error) {
	if len(scripts) == 0 {
		return nil, nil
	}
	pkg, err := readPackageJSON(dir)
	if err != nil {
		return nil, err
	}
	existing, err := pkg.object("scripts")
	if err != nil {
		return nil, err
	}

	var added []string
	for _, name := range slices.Sorted(maps.Keys(scripts)) {
		if existing.has(name) {
			continue
		}
		if err := existing.set(name, scripts[name]); err != nil {
			return nil, err
		}
		added = append(added, name)
	}
	if len(added) == 0 {
		return nil, nil
	}
	if err := pkg.set("scripts", existing); err != nil {
		return nil, err
	}
	return added, writePackageJSON(dir, pkg)
}
