package source

import (
	"regexp"
	"sync"
)

const (
	CoreRulebook = "CRB"
	SRD          = "SRD"
)

// Source describes a publication (or homebrew collection) items come from
type Source struct {
	JSON         string `json:"json"`
	Abbreviation string `json:"abbreviation"`
	Full         string `json:"full"`
	Color        string `json:"color,omitempty"`
	Homebrew     bool   `json:"homebrew,omitempty"`
}

var classUnsafe = regexp.MustCompile(`[&\\/#,+()$~%.'":*?<>{}\s]`)

// Catalog maps source JSON keys to display data. Unknown keys display as
// themselves. Safe for concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	sources map[string]Source
}

func NewCatalog(sources ...Source) *Catalog {
	c := &Catalog{sources: make(map[string]Source, len(sources))}
	for _, s := range sources {
		c.Add(s)
	}
	return c
}

// DefaultCatalog knows the official books items are usually drawn from
func DefaultCatalog() *Catalog {
	return NewCatalog(
		Source{JSON: CoreRulebook, Abbreviation: "CRB", Full: "Core Rulebook"},
		Source{JSON: "APG", Abbreviation: "APG", Full: "Advanced Player's Guide"},
		Source{JSON: "GMG", Abbreviation: "GMG", Full: "Gamemastery Guide"},
		Source{JSON: "SoM", Abbreviation: "SoM", Full: "Secrets of Magic"},
		Source{JSON: "GnG", Abbreviation: "G&G", Full: "Guns & Gears"},
		Source{JSON: "LOCG", Abbreviation: "LOCG", Full: "Lost Omens: Character Guide"},
		Source{JSON: SRD, Abbreviation: "SRD", Full: "System Reference Document"},
	)
}

// Add registers or replaces a source
func (c *Catalog) Add(s Source) {
	if s.JSON == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sources[s.JSON] = s
}

func (c *Catalog) get(json string) (Source, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.sources[json]
	return s, ok
}

// Abbreviation returns the short label used in list cells
func (c *Catalog) Abbreviation(json string) string {
	if s, ok := c.get(json); ok && s.Abbreviation != "" {
		return s.Abbreviation
	}
	return json
}

// Full returns the long name used in tooltips
func (c *Catalog) Full(json string) string {
	if s, ok := c.get(json); ok && s.Full != "" {
		return s.Full
	}
	return json
}

// ColorClass returns the CSS class used to colour the source cell
func (c *Catalog) ColorClass(json string) string {
	if json == "" {
		return ""
	}
	return "source" + classUnsafe.ReplaceAllString(json, "")
}

// Color returns the explicit colour of a homebrew source, if any
func (c *Catalog) Color(json string) string {
	if s, ok := c.get(json); ok && s.Homebrew {
		return s.Color
	}
	return ""
}

// IsHomebrew reports whether the source was registered as homebrew
func (c *Catalog) IsHomebrew(json string) bool {
	s, ok := c.get(json)
	return ok && s.Homebrew
}
