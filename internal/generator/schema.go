package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/BuunGroupCore/precast-app-sub003/internal/defs"
)

// PatchOutcome describes what PatchPrismaSchema did.
type PatchOutcome int

const (
	// PatchApplied means the snippet was appended.
	PatchApplied PatchOutcome = iota
	// PatchAlreadyPresent means every model was found; nothing changed.
	PatchAlreadyPresent
	// PatchPartial means only some models were found. The schema does not
	// look like what the snippet expects, so it is left untouched.
	PatchPartial
	// PatchSchemaMissing means there is no schema file to patch.
	PatchSchemaMissing
)

func (o PatchOutcome) String() string {
	switch o {
	case PatchApplied:
		return "applied"
	case PatchAlreadyPresent:
		return "already-present"
	case PatchPartial:
		return "partial"
	case PatchSchemaMissing:
		return "schema-missing"
	}
	return fmt.Sprintf("PatchOutcome(%d)", int(o))
}

// PatchResult reports the outcome and which models were already declared.
type PatchResult struct {
	Outcome PatchOutcome
	Present []string
	Missing []string
}

// PatchPrismaSchema appends snippet to the schema at path unless the named
// models are already declared. Detection is a text match on
// "model <Name> {", not a parse.
func PatchPrismaSchema(path string, models []string, snippet string) (PatchResult, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return PatchResult{Outcome: PatchSchemaMissing, Missing: models}, nil
	}
	if err != nil {
		return PatchResult{}, fmt.Errorf("read schema: %w", err)
	}

	schema := string(raw)
	var res PatchResult
	for _, m := range models {
		if declaresModel(schema, m) {
			res.Present = append(res.Present, m)
		} else {
			res.Missing = append(res.Missing, m)
		}
	}

	switch {
	case len(res.Missing) == 0:
		res.Outcome = PatchAlreadyPresent
		return res, nil
	case len(res.Present) > 0:
		res.Outcome = PatchPartial
		return res, nil
	}

	if !strings.HasSuffix(schema, "\n") {
		schema += "\n"
	}
	schema += snippet
	if err := os.WriteFile(path, []byte(schema), defs.FilePerm); err != nil {
		return PatchResult{}, fmt.Errorf("write schema: %w", err)
	}
	res.Outcome = PatchApplied
	return res, nil
}

func declaresModel(schema, name string) bool {
	re := regexp.MustCompile(`(?m)^\s*model\s+` + regexp.QuoteMeta(name) + `\s*\{`)
	return re.MatchString(schema)
}
