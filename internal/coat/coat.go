package coat

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"catto/internal/drawing"
)

var (
	// ErrUnknownCat reports a cat name no resident answers to.
	ErrUnknownCat = errors.New("unknown cat")
	// ErrUnknownPattern reports a coat name missing from the catalog.
	ErrUnknownPattern = errors.New("unknown coat pattern")
	// ErrReserved reports a resident whose coat has not been decided yet.
	ErrReserved = errors.New("reserved and not yet available")
	// ErrMalformed reports a pattern that cannot color the drawing.
	ErrMalformed = errors.New("malformed coat pattern")
)

// Shape selects the axis along which a paint cycles its colors.
type Shape int

const (
	// Solid paints every rune of the region with the first color.
	Solid Shape = iota
	// Split cycles colors across the region's runs within one line,
	// left to right. Two eye runs with two colors make an odd-eyed cat.
	Split
	// Striped cycles colors across the region's lines, top to bottom.
	// On a body it reads as tabby bands, on a tail as rings.
	Striped
	// Patched walks a fixed patch layout across the region's runs so
	// tortoiseshell blotches land the same way every time.
	Patched
)

func (s Shape) String() string {
	switch s {
	case Solid:
		return "solid"
	case Split:
		return "split"
	case Striped:
		return "striped"
	case Patched:
		return "patched"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// patchCycle is the layout Patched paints walk. Index 0 is the ground
// color, so it dominates roughly half of the patches.
var patchCycle = [8]int{0, 1, 0, 2, 1, 0, 1, 2}

// Paint colors one region of the drawing.
type Paint struct {
	Shape  Shape
	Colors []lipgloss.Color
}

// At resolves the color for one run of the region. line is the
// region's line ordinal, run its run ordinal within the current line,
// and patch its run ordinal across the whole region. At expects a
// well-formed paint; an empty palette yields the zero color.
func (p Paint) At(line, run, patch int) lipgloss.Color {
	if len(p.Colors) == 0 {
		return lipgloss.Color("")
	}
	switch p.Shape {
	case Split:
		return p.Colors[run%len(p.Colors)]
	case Striped:
		return p.Colors[line%len(p.Colors)]
	case Patched:
		return p.Colors[patchCycle[patch%len(patchCycle)]%len(p.Colors)]
	default:
		return p.Colors[0]
	}
}

func (p Paint) validate() error {
	switch p.Shape {
	case Solid:
		if len(p.Colors) < 1 {
			return fmt.Errorf("%w: solid paint carries no color", ErrMalformed)
		}
	case Split, Striped, Patched:
		if len(p.Colors) < 2 {
			return fmt.Errorf("%w: %s paint needs at least two colors", ErrMalformed, p.Shape)
		}
	default:
		return fmt.Errorf("%w: unknown paint shape %d", ErrMalformed, int(p.Shape))
	}
	return nil
}

// Pattern is one cataloged coat: a paint for every region of the
// drawing.
type Pattern struct {
	Name string
	Coat map[drawing.Region]Paint
}

// clonePattern deep-copies a pattern so callers can mutate their copy
// without disturbing the catalog.
func clonePattern(p Pattern) Pattern {
	coat := make(map[drawing.Region]Paint, len(p.Coat))
	for reg, paint := range p.Coat {
		colors := make([]lipgloss.Color, len(paint.Colors))
		copy(colors, paint.Colors)
		coat[reg] = Paint{Shape: paint.Shape, Colors: colors}
	}
	return Pattern{Name: p.Name, Coat: coat}
}

// ForCat resolves a resident cat's coat by name. Reserved residents
// return ErrReserved; names nobody answers to return ErrUnknownCat.
func ForCat(name string) (Pattern, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if reserved[key] {
		return Pattern{}, fmt.Errorf("%s is %w", key, ErrReserved)
	}
	coatName, ok := residents[key]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %s", ErrUnknownCat, name)
	}
	return Lookup(coatName)
}

// Lookup returns the cataloged pattern with the given name.
func Lookup(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %s", ErrUnknownPattern, name)
	}
	return clonePattern(p), nil
}

// Pick draws a pattern uniformly at random. intn must return a value
// in [0, n); passing nil uses the process-wide source.
func Pick(intn func(n int) int) Pattern {
	if intn == nil {
		intn = rand.IntN
	}
	name := patternNames[intn(len(patternNames))]
	return clonePattern(patterns[name])
}

// Names lists the catalog's pattern names in sorted order.
func Names() []string {
	out := make([]string, len(patternNames))
	copy(out, patternNames)
	return out
}

// Catalog returns every pattern, sorted by name.
func Catalog() []Pattern {
	out := make([]Pattern, 0, len(patternNames))
	for _, name := range patternNames {
		out = append(out, clonePattern(patterns[name]))
	}
	return out
}

// Validate checks every cataloged pattern against the drawing. A
// failure is a development-time defect in the catalog, not a user
// condition.
func Validate(d drawing.Drawing) error {
	for _, name := range patternNames {
		if err := validatePattern(d, patterns[name]); err != nil {
			return err
		}
	}
	return nil
}

// validatePattern checks one pattern: every region the drawing uses
// must carry a well-formed paint, and no paint may name a region the
// drawing does not have.
func validatePattern(d drawing.Drawing, p Pattern) error {
	present := make(map[drawing.Region]bool)
	for _, reg := range d.Regions() {
		present[reg] = true
		paint, ok := p.Coat[reg]
		if !ok {
			return fmt.Errorf("%w: pattern %s has no paint for region %s", ErrMalformed, p.Name, reg)
		}
		if err := paint.validate(); err != nil {
			return fmt.Errorf("pattern %s, region %s: %w", p.Name, reg, err)
		}
	}
	for reg := range p.Coat {
		if !present[reg] {
			return fmt.Errorf("%w: pattern %s paints unknown region %s", ErrMalformed, p.Name, reg)
		}
	}
	return nil
}
