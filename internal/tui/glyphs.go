package tui

import (
	"strings"
	"sync"
)

// Some fonts render arrows and dots poorly; an ASCII set is available.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

// applyGlyphPreference selects the glyph set by name. Unknown names are ignored.
func applyGlyphPreference(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "unicode", "utf8":
		setGlyphs(glyphSetUnicode)
	case "ascii":
		setGlyphs(glyphSetASCII)
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func glyphPrev() string {
	if glyphs() == glyphSetASCII {
		return "<"
	}
	return "‹"
}

func glyphNext() string {
	if glyphs() == glyphSetASCII {
		return ">"
	}
	return "›"
}

// glyphHand draws the clock hand.
func glyphHand() string {
	if glyphs() == glyphSetASCII {
		return "."
	}
	return "·"
}

func glyphCenter() string {
	if glyphs() == glyphSetASCII {
		return "+"
	}
	return "●"
}

// glyphTick marks an unlabeled minute.
func glyphTick() string {
	if glyphs() == glyphSetASCII {
		return "'"
	}
	return "˙"
}
