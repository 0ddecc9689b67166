package catalog

import (
	"maps"
	"slices"
)

// MCPServer describes a Model Context Protocol server entry for .mcp.json.
type MCPServer struct {
	ID          string            `json:"-"`
	Name        string            `json:"-"`
	Description string            `json:"-"`
	Command     string            `json:"command"`
	Args        []string          `json:"args,omitempty"`
	Env         map[string]string `json:"env,omitempty"`
}

var mcpServers = []MCPServer{
	{
		ID:          "filesystem",
		Name:        "Filesystem",
		Description: "Read and write files in the project",
		Command:     "npx",
		Args:        []string{"-y", "@modelcontextprotocol/server-filesystem", "."},
	},
	{
		ID:          "github",
		Name:        "GitHub",
		Description: "Issues, pull requests and repository search",
		Command:     "npx",
		Args:        []string{"-y", "@modelcontextprotocol/server-github"},
		Env:         map[string]string{"GITHUB_PERSONAL_ACCESS_TOKEN": "${GITHUB_TOKEN}"},
	},
	{
		ID:          "postgres",
		Name:        "PostgreSQL",
		Description: "Read-only SQL access to the project database",
		Command:     "npx",
		Args:        []string{"-y", "@modelcontextprotocol/server-postgres", "${DATABASE_URL}"},
	},
	{
		ID:          "memory",
		Name:        "Memory",
		Description: "Persistent knowledge graph",
		Command:     "npx",
		Args:        []string{"-y", "@modelcontextprotocol/server-memory"},
	},
	{
		ID:          "playwright",
		Name:        "Playwright",
		Description: "Browser automation",
		Command:     "npx",
		Args:        []string{"-y", "@playwright/mcp@latest"},
	},
	{
		ID:          "context7",
		Name:        "Context7",
		Description: "Up-to-date library documentation",
		Command:     "npx",
		Args:        []string{"-y", "@upstash/context7-mcp"},
	},
}

// MCPServers returns every MCP server in display order.
func MCPServers() []MCPServer {
	out := make([]MCPServer, len(mcpServers))
	for i, s := range mcpServers {
		out[i] = s.clone()
	}
	return out
}

// LookupMCPServer returns the server with id.
func LookupMCPServer(id string) (MCPServer, bool) {
	i := slices.IndexFunc(mcpServers, func(s MCPServer) bool { return s.ID == id })
	if i < 0 {
		return MCPServer{}, false
	}
	return mcpServers[i].clone(), true
}

func (s MCPServer) clone() MCPServer {
	s.Args = slices.Clone(s.Args)
	if s.Env != nil {
		s.Env = maps.Clone(s.Env)
	}
	return s
}
