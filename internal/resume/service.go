package resume

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// fallbackName is used in prompts when the document has no personal.name.
const fallbackName = "the candidate"

// Service loads the resume document once at startup and serves it from
// memory.
type Service struct {
	raw         []byte
	doc         map[string]any
	contextJSON string
	err         error
}

// NewService reads and parses the resume JSON at path. A missing or invalid
// file does not fail construction; accessors return the recorded error so
// the rest of the API keeps serving.
func NewService(path string) *Service {
	s := &Service{}

	raw, err := os.ReadFile(path)
	if err != nil {
		s.err = fmt.Errorf("%w: %v", ErrNotLoaded, err)
		return s
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.err = fmt.Errorf("%w: parse %s: %v", ErrNotLoaded, path, err)
		return s
	}

	// The prompt gets the whole document re-indented, not a curated subset,
	// so free-form sections reach the model without code changes here.
	pretty, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		s.err = fmt.Errorf("%w: render %s: %v", ErrNotLoaded, path, err)
		return s
	}

	s.raw = raw
	s.doc = doc
	s.contextJSON = string(pretty)
	return s
}

// Raw returns the resume file exactly as stored on disk.
func (s *Service) Raw() ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.raw, nil
}

// All returns the parsed resume document.
func (s *Service) All() (map[string]any, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.doc, nil
}

// ContextJSON returns the full document as indented JSON for prompt
// injection.
func (s *Service) ContextJSON() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.contextJSON, nil
}

// CandidateName returns personal.name from the document, or a neutral
// fallback when absent.
func (s *Service) CandidateName() string {
	if s.err != nil {
		return fallbackName
	}
	personal, _ := s.doc["personal"].(map[string]any)
	if name := stringField(personal, "name"); name != "" {
		return name
	}
	return fallbackName
}

// PlainText renders the document as a labelled text block, one section per
// heading. The chat prompt uses ContextJSON instead; this rendering serves
// anything that needs a human-readable export.
func (s *Service) PlainText() (string, error) {
	if s.err != nil {
		return "", s.err
	}

	d := s.doc
	personal, _ := d["personal"].(map[string]any)
	var lines []string

	lines = append(lines, "=== PERSONAL ===")
	lines = append(lines, "Name: "+stringField(personal, "name"))
	lines = append(lines, "Title: "+stringField(personal, "title"))
	lines = append(lines, "Email: "+stringField(personal, "email"))
	lines = append(lines, "Phone: "+stringField(personal, "phone"))
	lines = append(lines, "Location: "+stringField(personal, "location"))
	lines = append(lines, "LinkedIn/GitHub: "+stringField(personal, "linkedin")+" | "+stringField(personal, "github"))
	lines = append(lines, "\nObjective:\n"+stringField(personal, "objective"))

	lines = append(lines, "\n=== EDUCATION ===")
	for _, item := range listField(d, "education") {
		lines = append(lines, fmt.Sprintf("- %s | %s | %s | %s",
			stringField(item, "degree"),
			stringField(item, "institution"),
			stringField(item, "dates"),
			stringField(item, "score"),
		))
	}

	skills, _ := d["skills"].(map[string]any)
	lines = append(lines, "\n=== SKILLS ===")
	lines = append(lines, "Technical: "+strings.Join(stringList(skills, "technical"), ", "))
	lines = append(lines, "Soft Skills: "+strings.Join(stringList(skills, "soft"), ", "))

	lines = append(lines, "\n=== PROJECTS ===")
	for _, project := range listField(d, "projects") {
		lines = append(lines, "\n• "+stringField(project, "title"))
		lines = append(lines, "  Tech: "+strings.Join(stringList(project, "technologies"), ", "))
		lines = append(lines, "  "+stringField(project, "description"))
	}

	return strings.Join(lines, "\n"), nil
}

func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func listField(m map[string]any, key string) []map[string]any {
	raw, _ := m[key].([]any)
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if entry, ok := item.(map[string]any); ok {
			out = append(out, entry)
		}
	}
	return out
}

func stringList(m map[string]any, key string) []string {
	if m == nil {
		return nil
	}
	raw, _ := m[key].([]any)
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
