package coat

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"catto/internal/drawing"
)

// Fur, eye, and nose bases. Derived shades come from shade and tint so
// a tweak here recolors every pattern built on the base.
const (
	furBlack     = "#1C1B1A"
	furWhite     = "#FAF6EF"
	furIvory     = "#F5EBD8"
	furBlue      = "#6E7B8B"
	furCream     = "#F2DFBB"
	furChocolate = "#5D4037"
	furLilac     = "#C3AFB4"
	furCinnamon  = "#A0522D"
	furBrown     = "#8B6A47"
	furGolden    = "#D9A441"
	furOrange    = "#E8853B"
	furSilver    = "#C6C6CE"
	furSeal      = "#4A3528"
	furFlame     = "#D97740"

	eyeGold   = "#F0B429"
	eyeGreen  = "#7BA05B"
	eyeCopper = "#B87333"
	eyeBlue   = "#77AACC"

	noseRose  = "#D98880"
	noseBrick = "#A65E44"
	noseSlate = "#5A6470"
)

// residents maps each cat of the house to its coat. Reserved names are
// residents too, just ones whose coat has not been decided.
var residents = map[string]string{
	"iggy":  "tuxedo",
	"lucy":  "golden-tabby",
	"magda": "black",
}

var reserved = map[string]bool{
	"cassandra":  true,
	"persephone": true,
}

func mustHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(fmt.Sprintf("coat: bad hex color %q: %v", hex, err))
	}
	return c
}

func hexc(hex string) lipgloss.Color {
	return lipgloss.Color(mustHex(hex).Hex())
}

// shade moves a base color toward black in Lab space, which keeps the
// hue honest at every depth.
func shade(hex string, amount float64) lipgloss.Color {
	c := mustHex(hex).BlendLab(mustHex("#000000"), amount).Clamped()
	return lipgloss.Color(c.Hex())
}

// tint moves a base color toward white in Lab space.
func tint(hex string, amount float64) lipgloss.Color {
	c := mustHex(hex).BlendLab(mustHex("#ffffff"), amount).Clamped()
	return lipgloss.Color(c.Hex())
}

func solid(c lipgloss.Color) Paint {
	return Paint{Shape: Solid, Colors: []lipgloss.Color{c}}
}

func split(cs ...lipgloss.Color) Paint {
	return Paint{Shape: Split, Colors: cs}
}

func striped(cs ...lipgloss.Color) Paint {
	return Paint{Shape: Striped, Colors: cs}
}

func patched(cs ...lipgloss.Color) Paint {
	return Paint{Shape: Patched, Colors: cs}
}

// uniformCoat paints the whole cat one fur color, with slightly darker
// ears and tail and a paler chest.
func uniformCoat(fur string, eyes, nose Paint) map[drawing.Region]Paint {
	f := hexc(fur)
	return map[drawing.Region]Paint{
		drawing.Ears:     solid(shade(fur, 0.30)),
		drawing.Head:     solid(f),
		drawing.Eyes:     eyes,
		drawing.Nose:     nose,
		drawing.Whiskers: solid(tint(fur, 0.45)),
		drawing.Chest:    solid(tint(fur, 0.12)),
		drawing.Body:     solid(f),
		drawing.Paws:     solid(f),
		drawing.Tail:     solid(shade(fur, 0.12)),
	}
}

// tabbyCoat bands the head, body, and tail between the base fur and a
// darker stripe, over a pale chest.
func tabbyCoat(base string, eyes, nose Paint) map[drawing.Region]Paint {
	f := hexc(base)
	stripe := shade(base, 0.42)
	return map[drawing.Region]Paint{
		drawing.Ears:     solid(shade(base, 0.30)),
		drawing.Head:     striped(f, stripe),
		drawing.Eyes:     eyes,
		drawing.Nose:     nose,
		drawing.Whiskers: solid(tint(base, 0.55)),
		drawing.Chest:    solid(tint(base, 0.38)),
		drawing.Body:     striped(f, stripe),
		drawing.Paws:     solid(f),
		drawing.Tail:     striped(f, stripe),
	}
}

// bicolorCoat lays the fur over a white chest, white paws, and white
// whiskers.
func bicolorCoat(fur string, eyes, nose Paint) map[drawing.Region]Paint {
	f := hexc(fur)
	white := hexc(furWhite)
	return map[drawing.Region]Paint{
		drawing.Ears:     solid(shade(fur, 0.25)),
		drawing.Head:     solid(f),
		drawing.Eyes:     eyes,
		drawing.Nose:     nose,
		drawing.Whiskers: solid(white),
		drawing.Chest:    solid(white),
		drawing.Body:     solid(f),
		drawing.Paws:     solid(white),
		drawing.Tail:     solid(shade(fur, 0.12)),
	}
}

// vanCoat is white everywhere except colored ears and a ringed tail.
func vanCoat(mark string, eyes, nose Paint) map[drawing.Region]Paint {
	white := hexc(furWhite)
	return map[drawing.Region]Paint{
		drawing.Ears:     solid(hexc(mark)),
		drawing.Head:     solid(white),
		drawing.Eyes:     eyes,
		drawing.Nose:     nose,
		drawing.Whiskers: solid(shade(furWhite, 0.10)),
		drawing.Chest:    solid(white),
		drawing.Body:     solid(white),
		drawing.Paws:     solid(white),
		drawing.Tail:     striped(hexc(mark), shade(mark, 0.30)),
	}
}

// tortieCoat patches the given colors across the whole cat. The first
// color is the ground and lands most often.
func tortieCoat(eyes, nose Paint, ground lipgloss.Color, marks ...lipgloss.Color) map[drawing.Region]Paint {
	cs := append([]lipgloss.Color{ground}, marks...)
	return map[drawing.Region]Paint{
		drawing.Ears:     patched(cs...),
		drawing.Head:     patched(cs...),
		drawing.Eyes:     eyes,
		drawing.Nose:     nose,
		drawing.Whiskers: solid(tint(furBlack, 0.50)),
		drawing.Chest:    patched(cs...),
		drawing.Body:     patched(cs...),
		drawing.Paws:     patched(cs...),
		drawing.Tail:     patched(cs...),
	}
}

// pointedCoat darkens the mask, ears, paws, and tail against a pale
// body. Pointed cats always look out of blue eyes.
func pointedCoat(body, point string, nose Paint) map[drawing.Region]Paint {
	b := hexc(body)
	p := hexc(point)
	return map[drawing.Region]Paint{
		drawing.Ears:     solid(p),
		drawing.Head:     solid(p),
		drawing.Eyes:     solid(hexc(eyeBlue)),
		drawing.Nose:     nose,
		drawing.Whiskers: solid(tint(body, 0.40)),
		drawing.Chest:    solid(tint(body, 0.25)),
		drawing.Body:     solid(b),
		drawing.Paws:     solid(p),
		drawing.Tail:     solid(p),
	}
}

// smokeCoat shimmers the body and tail between the fur and its silver
// undercoat.
func smokeCoat(fur string, eyes, nose Paint) map[drawing.Region]Paint {
	f := hexc(fur)
	silver := tint(fur, 0.55)
	return map[drawing.Region]Paint{
		drawing.Ears:     solid(shade(fur, 0.20)),
		drawing.Head:     solid(f),
		drawing.Eyes:     eyes,
		drawing.Nose:     nose,
		drawing.Whiskers: solid(tint(fur, 0.65)),
		drawing.Chest:    solid(silver),
		drawing.Body:     striped(f, silver),
		drawing.Paws:     solid(f),
		drawing.Tail:     striped(f, silver),
	}
}

var (
	patterns     map[string]Pattern
	patternNames []string
)

func init() {
	patterns = buildCatalog()
	patternNames = make([]string, 0, len(patterns))
	for name := range patterns {
		patternNames = append(patternNames, name)
	}
	sort.Strings(patternNames)
}

func buildCatalog() map[string]Pattern {
	cat := make(map[string]Pattern)
	add := func(name string, coat map[drawing.Region]Paint) {
		cat[name] = Pattern{Name: name, Coat: coat}
	}

	// Solids.
	add("black", uniformCoat(furBlack, solid(hexc(eyeGreen)), solid(tint(furBlack, 0.22))))
	add("white", uniformCoat(furWhite, split(hexc(eyeBlue), hexc(eyeGold)), solid(hexc(noseRose))))
	add("blue", uniformCoat(furBlue, solid(hexc(eyeGold)), solid(hexc(noseSlate))))
	add("cream", uniformCoat(furCream, solid(hexc(eyeGold)), solid(hexc(noseRose))))
	add("chocolate", uniformCoat(furChocolate, solid(hexc(eyeCopper)), solid(tint(furChocolate, 0.20))))
	add("lilac", uniformCoat(furLilac, solid(hexc(eyeGold)), solid(hexc(noseRose))))
	add("cinnamon", uniformCoat(furCinnamon, solid(hexc(eyeCopper)), solid(hexc(noseBrick))))

	// Tabbies.
	add("brown-tabby", tabbyCoat(furBrown, solid(hexc(eyeGreen)), solid(hexc(noseBrick))))
	add("golden-tabby", tabbyCoat(furGolden, solid(hexc(eyeGold)), solid(hexc(noseBrick))))
	add("orange-tabby", tabbyCoat(furOrange, solid(hexc(eyeGold)), solid(hexc(noseRose))))
	add("blue-tabby", tabbyCoat(furBlue, solid(hexc(eyeGold)), solid(hexc(noseSlate))))
	add("silver-tabby", tabbyCoat(furSilver, solid(hexc(eyeGreen)), solid(hexc(noseBrick))))
	add("cream-tabby", tabbyCoat(furCream, solid(hexc(eyeGold)), solid(hexc(noseRose))))

	// Bicolors.
	add("tuxedo", bicolorCoat(furBlack, solid(hexc(eyeGreen)), solid(hexc(noseRose))))
	add("blue-bicolor", bicolorCoat(furBlue, solid(hexc(eyeGold)), solid(hexc(noseSlate))))
	add("orange-bicolor", bicolorCoat(furOrange, solid(hexc(eyeGold)), solid(hexc(noseRose))))
	add("chocolate-bicolor", bicolorCoat(furChocolate, solid(hexc(eyeCopper)), solid(hexc(noseRose))))
	add("black-van", vanCoat(furBlack, solid(hexc(eyeGold)), solid(hexc(noseRose))))

	// Torties and calicos.
	add("tortoiseshell", tortieCoat(solid(hexc(eyeCopper)), solid(hexc(noseBrick)), hexc(furBlack), hexc(furOrange)))
	add("dilute-tortoiseshell", tortieCoat(solid(hexc(eyeGold)), solid(hexc(noseSlate)), hexc(furBlue), hexc(furCream)))
	calico := tortieCoat(solid(hexc(eyeCopper)), solid(hexc(noseRose)), hexc(furWhite), hexc(furBlack), hexc(furOrange))
	calico[drawing.Chest] = solid(hexc(furWhite))
	calico[drawing.Paws] = solid(hexc(furWhite))
	add("calico", calico)
	dilute := tortieCoat(solid(hexc(eyeGold)), solid(hexc(noseRose)), hexc(furWhite), hexc(furBlue), hexc(furCream))
	dilute[drawing.Chest] = solid(hexc(furWhite))
	dilute[drawing.Paws] = solid(hexc(furWhite))
	add("dilute-calico", dilute)

	// Points.
	add("seal-point", pointedCoat(furCream, furSeal, solid(tint(furSeal, 0.18))))
	add("blue-point", pointedCoat(furIvory, furBlue, solid(hexc(noseSlate))))
	add("chocolate-point", pointedCoat(furIvory, furChocolate, solid(tint(furChocolate, 0.20))))
	add("lilac-point", pointedCoat(furIvory, furLilac, solid(hexc(noseRose))))
	add("flame-point", pointedCoat(furIvory, furFlame, solid(hexc(noseRose))))

	// Smokes.
	add("black-smoke", smokeCoat(furBlack, solid(hexc(eyeCopper)), solid(tint(furBlack, 0.22))))
	add("blue-smoke", smokeCoat(furBlue, solid(hexc(eyeGreen)), solid(hexc(noseSlate))))

	return cat
}
