package coat

import (
	"errors"
	"math/rand/v2"
	"sort"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"

	"catto/internal/drawing"
)

func TestCatalogSize(t *testing.T) {
	t.Parallel()

	names := Names()
	if len(names) != 29 {
		t.Fatalf("catalog holds %d patterns, want 29", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("Names() not sorted: %v", names)
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			t.Fatalf("duplicate pattern name %q", name)
		}
		seen[name] = true
	}

	all := Catalog()
	if len(all) != len(names) {
		t.Fatalf("Catalog() holds %d patterns, Names() %d", len(all), len(names))
	}
	for i, p := range all {
		if p.Name != names[i] {
			t.Fatalf("Catalog()[%d].Name = %q, want %q", i, p.Name, names[i])
		}
	}
}

func TestValidateCatalog(t *testing.T) {
	t.Parallel()

	if err := Validate(drawing.Catto()); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
}

func TestValidatePatternDefects(t *testing.T) {
	t.Parallel()

	d := drawing.Catto()
	base := func() Pattern {
		p, err := Lookup("black")
		if err != nil {
			t.Fatalf("Lookup(black) unexpected error: %v", err)
		}
		return p
	}

	missing := base()
	delete(missing.Coat, drawing.Tail)
	if err := validatePattern(d, missing); !errors.Is(err, ErrMalformed) {
		t.Fatalf("missing region paint: got %v, want ErrMalformed", err)
	}

	unknown := base()
	unknown.Coat[drawing.Region("wings")] = solid(hexc(furBlack))
	err := validatePattern(d, unknown)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("unknown region paint: got %v, want ErrMalformed", err)
	}
	if !strings.Contains(err.Error(), "wings") {
		t.Fatalf("error %q does not name the unknown region", err)
	}

	short := base()
	short.Coat[drawing.Chest] = Paint{Shape: Striped, Colors: []lipgloss.Color{hexc(furBlack)}}
	if err := validatePattern(d, short); !errors.Is(err, ErrMalformed) {
		t.Fatalf("one-color stripes: got %v, want ErrMalformed", err)
	}
}

func TestForCatResidents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cat  string
		want string
	}{
		{cat: "iggy", want: "tuxedo"},
		{cat: "lucy", want: "golden-tabby"},
		{cat: "magda", want: "black"},
		{cat: "IGGY", want: "tuxedo"},
		{cat: "  magda  ", want: "black"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.cat, func(t *testing.T) {
			t.Parallel()
			got, err := ForCat(tt.cat)
			if err != nil {
				t.Fatalf("ForCat(%q) unexpected error: %v", tt.cat, err)
			}
			if got.Name != tt.want {
				t.Fatalf("ForCat(%q).Name = %q, want %q", tt.cat, got.Name, tt.want)
			}
			if diff := cmp.Diff(patterns[tt.want], got); diff != "" {
				t.Fatalf("ForCat(%q) pattern mismatch (-want +got):\n%s", tt.cat, diff)
			}
		})
	}
}

func TestForCatReserved(t *testing.T) {
	t.Parallel()

	for _, cat := range []string{"cassandra", "persephone"} {
		_, err := ForCat(cat)
		if !errors.Is(err, ErrReserved) {
			t.Fatalf("ForCat(%q) = %v, want ErrReserved", cat, err)
		}
		if !strings.Contains(err.Error(), cat) {
			t.Fatalf("ForCat(%q) error %q does not name the cat", cat, err)
		}
	}
}

func TestForCatUnknown(t *testing.T) {
	t.Parallel()

	_, err := ForCat("mittens")
	if !errors.Is(err, ErrUnknownCat) {
		t.Fatalf("expected ErrUnknownCat, got %v", err)
	}
}

func TestLookupUnknownPattern(t *testing.T) {
	t.Parallel()

	_, err := Lookup("plaid")
	if !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("expected ErrUnknownPattern, got %v", err)
	}
}

func TestLookupImmutability(t *testing.T) {
	t.Parallel()

	first, err := Lookup("tuxedo")
	if err != nil {
		t.Fatalf("Lookup() unexpected error: %v", err)
	}
	first.Coat[drawing.Head].Colors[0] = lipgloss.Color("#ff0000")
	first.Coat[drawing.Eyes] = Paint{}

	second, err := Lookup("tuxedo")
	if err != nil {
		t.Fatalf("Lookup() unexpected error: %v", err)
	}
	if diff := cmp.Diff(patterns["tuxedo"], second); diff != "" {
		t.Fatalf("expected immutable catalog, mutation leaked (-want +got):\n%s", diff)
	}
}

func TestResidentCoverage(t *testing.T) {
	t.Parallel()

	if len(residents) != 3 {
		t.Fatalf("house holds %d dressed residents, want 3", len(residents))
	}
	if len(reserved) != 2 {
		t.Fatalf("house holds %d reserved residents, want 2", len(reserved))
	}

	for cat, coatName := range residents {
		if _, ok := patterns[coatName]; !ok {
			t.Fatalf("resident %q wears missing pattern %q", cat, coatName)
		}
		if reserved[cat] {
			t.Fatalf("resident %q is also reserved", cat)
		}
	}
}

func TestPaintAt(t *testing.T) {
	t.Parallel()

	a, b, c := lipgloss.Color("#aaaaaa"), lipgloss.Color("#bbbbbb"), lipgloss.Color("#cccccc")

	solidPaint := Paint{Shape: Solid, Colors: []lipgloss.Color{a, b}}
	for i := 0; i < 4; i++ {
		if got := solidPaint.At(i, i, i); got != a {
			t.Fatalf("solid At(%d,%d,%d) = %q, want %q", i, i, i, got, a)
		}
	}

	splitPaint := Paint{Shape: Split, Colors: []lipgloss.Color{a, b}}
	if got := splitPaint.At(5, 0, 9); got != a {
		t.Fatalf("split run 0 = %q, want %q", got, a)
	}
	if got := splitPaint.At(5, 1, 9); got != b {
		t.Fatalf("split run 1 = %q, want %q", got, b)
	}
	if got := splitPaint.At(5, 2, 9); got != a {
		t.Fatalf("split run 2 = %q, want %q", got, a)
	}

	stripedPaint := Paint{Shape: Striped, Colors: []lipgloss.Color{a, b}}
	for line := 0; line < 4; line++ {
		want := a
		if line%2 == 1 {
			want = b
		}
		if got := stripedPaint.At(line, 7, 7); got != want {
			t.Fatalf("striped line %d = %q, want %q", line, got, want)
		}
	}

	patchedPaint := Paint{Shape: Patched, Colors: []lipgloss.Color{a, b, c}}
	wantCycle := []lipgloss.Color{a, b, a, c, b, a, b, c}
	for patch, want := range wantCycle {
		if got := patchedPaint.At(0, 0, patch); got != want {
			t.Fatalf("patched At(patch=%d) = %q, want %q", patch, got, want)
		}
	}
	if got := patchedPaint.At(0, 0, len(wantCycle)); got != wantCycle[0] {
		t.Fatalf("patched cycle does not wrap: got %q, want %q", got, wantCycle[0])
	}

	twoColor := Paint{Shape: Patched, Colors: []lipgloss.Color{a, b}}
	wantTwo := []lipgloss.Color{a, b, a, a, b, a, b, a}
	for patch, want := range wantTwo {
		if got := twoColor.At(0, 0, patch); got != want {
			t.Fatalf("two-color patched At(patch=%d) = %q, want %q", patch, got, want)
		}
	}
}

func TestPickUniformCoverage(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	const perPattern = 200
	draws := perPattern * len(patternNames)

	counts := make(map[string]int, len(patternNames))
	for i := 0; i < draws; i++ {
		counts[Pick(r.IntN).Name]++
	}

	if len(counts) != len(patternNames) {
		t.Fatalf("Pick() reached %d patterns, want %d", len(counts), len(patternNames))
	}
	for name, n := range counts {
		if n < perPattern/2 || n > perPattern*3/2 {
			t.Fatalf("Pick() drew %q %d times over %d draws, outside [%d, %d]",
				name, n, draws, perPattern/2, perPattern*3/2)
		}
	}
}

func TestPickDefaultSource(t *testing.T) {
	t.Parallel()

	p := Pick(nil)
	if _, ok := patterns[p.Name]; !ok {
		t.Fatalf("Pick(nil) returned uncataloged pattern %q", p.Name)
	}
	if len(p.Coat) == 0 {
		t.Fatal("Pick(nil) returned an empty coat")
	}
}

func TestPointedPatternsBlueEyes(t *testing.T) {
	t.Parallel()

	pointed := 0
	for name, p := range patterns {
		if !strings.HasSuffix(name, "-point") {
			continue
		}
		pointed++
		eyes := p.Coat[drawing.Eyes]
		if eyes.Shape != Solid || len(eyes.Colors) == 0 || eyes.Colors[0] != hexc(eyeBlue) {
			t.Fatalf("pointed pattern %q eyes = %+v, want solid %s", name, eyes, eyeBlue)
		}
	}
	if pointed == 0 {
		t.Fatal("catalog holds no pointed patterns")
	}
}

func TestWhiteCatOddEyes(t *testing.T) {
	t.Parallel()

	eyes := patterns["white"].Coat[drawing.Eyes]
	if eyes.Shape != Split {
		t.Fatalf("white cat eyes shape = %s, want split", eyes.Shape)
	}
	want := []lipgloss.Color{hexc(eyeBlue), hexc(eyeGold)}
	if diff := cmp.Diff(want, eyes.Colors); diff != "" {
		t.Fatalf("white cat eye colors mismatch (-want +got):\n%s", diff)
	}
}
