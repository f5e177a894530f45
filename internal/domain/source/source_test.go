package source_test

import (
	"testing"

	"github.com/KirkDiggler/dnd-item-catalog/internal/domain/source"
	"github.com/stretchr/testify/assert"
)

func TestCatalog_Lookups(t *testing.T) {
	c := source.DefaultCatalog()

	assert.Equal(t, "G&G", c.Abbreviation("GnG"))
	assert.Equal(t, "Core Rulebook", c.Full("CRB"))
	assert.Equal(t, "sourceGnG", c.ColorClass("GnG"))
	assert.Empty(t, c.Color("CRB"))
	assert.False(t, c.IsHomebrew("CRB"))
}

func TestCatalog_UnknownSourceDisplaysAsItself(t *testing.T) {
	c := source.NewCatalog()

	assert.Equal(t, "XYZ", c.Abbreviation("XYZ"))
	assert.Equal(t, "XYZ", c.Full("XYZ"))
	assert.Equal(t, "sourceMyBook", c.ColorClass("My Book?"))
	assert.Empty(t, c.ColorClass(""))
}

func TestCatalog_Homebrew(t *testing.T) {
	c := source.DefaultCatalog()
	c.Add(source.Source{JSON: "HB-Forge", Abbreviation: "Forge", Full: "The Forge", Color: "#aa3300", Homebrew: true})
	c.Add(source.Source{})

	assert.True(t, c.IsHomebrew("HB-Forge"))
	assert.Equal(t, "Forge", c.Abbreviation("HB-Forge"))
	assert.Equal(t, "#aa3300", c.Color("HB-Forge"))
}
