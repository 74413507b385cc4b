package nodelink

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/rnaviz/pkg/forest"
	"github.com/matzehuels/rnaviz/pkg/rna"
)

func buildForest(t *testing.T, structure string) *forest.Forest {
	t.Helper()
	pt, err := rna.BuildPairTable(structure)
	if err != nil {
		t.Fatal(err)
	}
	f, err := forest.Build(pt)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestToDOT(t *testing.T) {
	f := buildForest(t, ".(.)")
	dot := ToDOT(f, Options{})

	for _, want := range []string{
		"digraph G {",
		`"exterior" -> "n0";`,
		`"exterior" -> "n1";`,
		`"n1" -> "n2";`,
		`label="1:3"`,
		`label="0"`,
		`label="2"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %s:\n%s", want, dot)
		}
	}
	if got := strings.Count(dot, "->"); got != 3 {
		t.Errorf("edges = %d, want 3", got)
	}
}

func TestToDOTDetailed(t *testing.T) {
	f := buildForest(t, "(.)")
	dot := ToDOT(f, Options{Detailed: true, Sequence: rna.DecodeSequence("GAC")})
	if !strings.Contains(dot, `label="0:2\nG-C\nloop: 3"`) {
		t.Errorf("detailed label missing:\n%s", dot)
	}
	if !strings.Contains(dot, `label="1\nA"`) {
		t.Errorf("leaf label missing:\n%s", dot)
	}
}

func TestToDOTEmpty(t *testing.T) {
	dot := ToDOT(buildForest(t, ""), Options{})
	if strings.Contains(dot, "->") {
		t.Errorf("empty forest has edges:\n%s", dot)
	}
	if !strings.Contains(dot, `"exterior"`) {
		t.Error("exterior node missing")
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(buildForest(t, "((..))."), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	out := string(svg)
	if !strings.Contains(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 `) {
		t.Errorf("svg header not normalized: %.200s", out)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 10.00 20.00"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10.00 20.00" width="10" height="20"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s, want %s", got, want)
	}
	if plain := []byte("<svg/>"); string(normalizeViewBox(plain)) != "<svg/>" {
		t.Error("svg without viewBox should be unchanged")
	}
}
