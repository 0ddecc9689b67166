package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/BuunGroupCore/precast-app-sub003/internal/catalog"
	"github.com/BuunGroupCore/precast-app-sub003/internal/defs"
	"github.com/BuunGroupCore/precast-app-sub003/internal/template"
)

const mcpServersKey = "mcpServers"

// mcpServerEntry returns the JSON for server id: the rendered
// mcp/servers/<id>.json.hbs when the template store has one, else the
// catalog entry.
func (g *Generator) mcpServerEntry(id string, data template.Data) (json.RawMessage, error) {
	tmpl := path.Join(defs.MCPServersDir, id+".json"+template.TemplateSuffix)
	if g.engine.Exists(tmpl) {
		out, err := g.engine.Render(tmpl, data)
		if err != nil {
			return nil, err
		}
		if !json.Valid(out) {
			return nil, fmt.Errorf("%s: rendered output is not valid JSON", tmpl)
		}
		return json.RawMessage(out), nil
	}
	server, ok := catalog.LookupMCPServer(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMCPServer, id)
	}
	return marshalJSON(server)
}

// SetupMCP merges the configured servers into .mcp.json. Servers already
// present keep the user's definition unless p overwrites. Unknown ids are
// reported together after the known ones are written.
func (g *Generator) SetupMCP(_ context.Context, p *Project) error {
	cfg := p.Config
	if len(cfg.MCPServers) == 0 {
		return nil
	}
	file := filepath.Join(p.Path, defs.MCPJSON)

	doc := newJSONObject()
	raw, err := os.ReadFile(file)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return fmt.Errorf("read %s: %w", defs.MCPJSON, err)
	default:
		if err := json.Unmarshal(raw, doc); err != nil {
			return fmt.Errorf("parse %s: %w", defs.MCPJSON, err)
		}
	}
	servers, err := doc.object(mcpServersKey)
	if err != nil {
		return err
	}

	data := template.NewData(*cfg)
	var errs []error
	var added int
	for _, id := range cfg.MCPServers {
		if servers.has(id) && !p.Options.Overwrite {
			g.logger.Debug("mcp server already configured", "server", id)
			continue
		}
		entry, err := g.mcpServerEntry(id, data)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := servers.set(id, entry); err != nil {
			return err
		}
		added++
	}

	if added > 0 {
		if err := doc.set(mcpServersKey, servers); err != nil {
			return err
		}
		if err := writeJSONFile(file, doc); err != nil {
			return fmt.Errorf("write %s: %w", defs.MCPJSON, err)
		}
		p.written("", []string{defs.MCPJSON})
		g.logger.Info("mcp servers configured", "count", added)
	}
	return errors.Join(errs...)
}
