// Package drawing holds the cat template and the mapping from its
// texture runes to the body regions a coat pattern can color.
package drawing

import (
	_ "embed"
	"strings"

	"github.com/mattn/go-runewidth"
)

//go:embed catto.txt
var cattoArt string

// Region names one colorable area of the cat. Every non-blank rune in
// the template belongs to exactly one region.
type Region string

const (
	Ears     Region = "ears"
	Head     Region = "head"
	Eyes     Region = "eyes"
	Nose     Region = "nose"
	Whiskers Region = "whiskers"
	Chest    Region = "chest"
	Body     Region = "body"
	Paws     Region = "paws"
	Tail     Region = "tail"
)

// runeRegions maps each texture rune in the template to its region.
// Spaces carry no region and render as-is.
var runeRegions = map[rune]Region{
	'^':  Ears,
	'M':  Head,
	'o':  Eyes,
	'v':  Nose,
	'\'': Whiskers,
	':':  Chest,
	'&':  Body,
	'H':  Paws,
	'~':  Tail,
}

// regionOrder fixes the canonical top-to-bottom listing of regions.
var regionOrder = []Region{Ears, Head, Eyes, Nose, Whiskers, Chest, Body, Paws, Tail}

var cattoLines = strings.Split(strings.TrimRight(cattoArt, "\n"), "\n")

// A Drawing is an immutable ASCII-art template. Accessors return
// copies, so callers cannot disturb the embedded art.
type Drawing struct {
	lines []string
}

// Catto returns the bundled cat template.
func Catto() Drawing {
	return Drawing{lines: cattoLines}
}

// Lines returns a copy of the template lines, top to bottom, without
// trailing newlines.
func (d Drawing) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// Text returns the uncolored template as a single string. Every line,
// the last included, ends with a newline.
func (d Drawing) Text() string {
	var b strings.Builder
	for _, line := range d.lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Height reports the number of lines in the template.
func (d Drawing) Height() int {
	return len(d.lines)
}

// Width reports the display width of the widest line.
func (d Drawing) Width() int {
	max := 0
	for _, line := range d.lines {
		if w := runewidth.StringWidth(line); w > max {
			max = w
		}
	}
	return max
}

// Has reports whether at least one rune of the template belongs to r.
func (d Drawing) Has(r Region) bool {
	for _, line := range d.lines {
		for _, ch := range line {
			if reg, ok := runeRegions[ch]; ok && reg == r {
				return true
			}
		}
	}
	return false
}

// Regions lists the regions present in the template in canonical
// top-to-bottom order.
func (d Drawing) Regions() []Region {
	present := make(map[Region]bool, len(regionOrder))
	for _, line := range d.lines {
		for _, ch := range line {
			if reg, ok := runeRegions[ch]; ok {
				present[reg] = true
			}
		}
	}
	out := make([]Region, 0, len(present))
	for _, reg := range regionOrder {
		if present[reg] {
			out = append(out, reg)
		}
	}
	return out
}

// RegionOf resolves the region of a template rune. The second return
// is false for runes outside the texture alphabet, such as spaces.
func RegionOf(ch rune) (Region, bool) {
	reg, ok := runeRegions[ch]
	return reg, ok
}
