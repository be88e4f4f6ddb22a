package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeByName(t *testing.T) {
	assert.Equal(t, "neon", ThemeByName("NEON").Name)
	assert.Equal(t, "mono", ThemeByName(" mono ").Name)
	assert.Equal(t, "classic", ThemeByName("").Name)
	assert.Equal(t, "classic", ThemeByName("solarized").Name)
}

func TestMonoPanelUsesASCII(t *testing.T) {
	out := ThemeByName("mono").Panel("hi")
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "+----+", lines[0])
	assert.Equal(t, "| hi |", lines[1])
	assert.Equal(t, "+----+", lines[2])
}

func TestOKAndFail(t *testing.T) {
	var buf bytes.Buffer
	th := ThemeByName("mono")
	OK(&buf, th, "listening")
	Fail(&buf, th, "boom")
	assert.Equal(t, "✔ listening\n✖ boom\n", buf.String())
}
