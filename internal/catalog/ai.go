package catalog

import "slices"

// AIAssistant maps an assistant to the context files it reads. The files
// are rendered from the ai-context/<id> template subtree.
type AIAssistant struct {
	ID    string
	Name  string
	Files []string
}

var aiAssistants = []AIAssistant{
	{ID: "claude", Name: "Claude", Files: []string{"CLAUDE.md"}},
	{ID: "cursor", Name: "Cursor", Files: []string{".cursorrules"}},
	{ID: "copilot", Name: "GitHub Copilot", Files: []string{".github/copilot-instructions.md"}},
	{ID: "gemini", Name: "Gemini", Files: []string{"GEMINI.md"}},
	{ID: "windsurf", Name: "Windsurf", Files: []string{".windsurfrules"}},
}

// AIAssistants returns every assistant in display order.
func AIAssistants() []AIAssistant {
	return slices.Clone(aiAssistants)
}

// LookupAIAssistant returns the assistant with id.
func LookupAIAssistant(id string) (AIAssistant, bool) {
	i := slices.IndexFunc(aiAssistants, func(a AIAssistant) bool { return a.ID == id })
	if i < 0 {
		return AIAssistant{}, false
	}
	return aiAssistants[i], true
}
