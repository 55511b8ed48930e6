// Package render colors the cat template with a coat pattern at a
// fixed terminal color profile.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"catto/internal/coat"
	"catto/internal/drawing"
)

// Renderer paints drawings for one color profile. The profile is
// pinned at construction, so rendering never consults the environment
// and the same inputs always produce the same bytes.
type Renderer struct {
	lip *lipgloss.Renderer
}

// New returns a renderer for the given profile. termenv.Ascii yields
// the template untouched.
func New(profile termenv.Profile) *Renderer {
	lip := lipgloss.NewRenderer(io.Discard)
	lip.SetColorProfile(profile)
	return &Renderer{lip: lip}
}

// Render colors the drawing with the pattern. Runes outside the
// template's texture alphabet pass through unstyled. Every line of the
// result, the last included, ends with a newline.
//
// The pattern must paint every region the drawing uses; a missing or
// empty paint returns coat.ErrMalformed.
func (r *Renderer) Render(d drawing.Drawing, p coat.Pattern) (string, error) {
	// Paint axes per region: how many lines the region has appeared
	// on, and how many runs it has produced overall. Run ordinals
	// within the current line reset every line.
	lineSeen := make(map[drawing.Region]int)
	patchSeen := make(map[drawing.Region]int)

	var b strings.Builder
	for _, line := range d.Lines() {
		runsInLine := make(map[drawing.Region]int)
		runes := []rune(line)

		for i := 0; i < len(runes); {
			reg, ok := drawing.RegionOf(runes[i])
			if !ok {
				j := i + 1
				for j < len(runes) {
					if _, regioned := drawing.RegionOf(runes[j]); regioned {
						break
					}
					j++
				}
				b.WriteString(string(runes[i:j]))
				i = j
				continue
			}

			j := i + 1
			for j < len(runes) {
				next, regioned := drawing.RegionOf(runes[j])
				if !regioned || next != reg {
					break
				}
				j++
			}

			paint, ok := p.Coat[reg]
			if !ok {
				return "", fmt.Errorf("%w: pattern %s has no paint for region %s", coat.ErrMalformed, p.Name, reg)
			}
			if len(paint.Colors) == 0 {
				return "", fmt.Errorf("%w: pattern %s paints region %s with no colors", coat.ErrMalformed, p.Name, reg)
			}

			color := paint.At(lineSeen[reg], runsInLine[reg], patchSeen[reg])
			b.WriteString(r.lip.NewStyle().Foreground(color).Render(string(runes[i:j])))

			runsInLine[reg]++
			patchSeen[reg]++
			i = j
		}

		// The line is done; every region that appeared moves to its
		// next line ordinal.
		for reg := range runsInLine {
			lineSeen[reg]++
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
