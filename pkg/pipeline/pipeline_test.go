package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/rnaviz/pkg/cache"
	"github.com/matzehuels/rnaviz/pkg/errors"
	"github.com/matzehuels/rnaviz/pkg/input"
	"github.com/matzehuels/rnaviz/pkg/rna"
	"github.com/matzehuels/rnaviz/pkg/theme"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	var o Options
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if o.Theme != DefaultTheme || o.Height != DefaultHeight || o.Radius != DefaultRadius || o.Format != FormatSVG {
		t.Errorf("defaults not applied: %+v", o)
	}
	if o.Logger == nil {
		t.Error("logger default missing")
	}

	bad := []Options{
		{Format: "gif"},
		{Height: -1},
		{Radius: -0.5},
		{BgOpacity: Opacity(nan())},
	}
	for _, o := range bad {
		if err := o.ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("%+v: error = %v, want %s", o, err, errors.ErrCodeInvalidInput)
		}
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	a := Options{Format: FormatSVG}
	b := Options{Format: FormatSVG, BgOpacity: Opacity(0)}
	if a.ArtifactKeyOpts() == b.ArtifactKeyOpts() {
		t.Error("unset and zero opacity must produce different keys")
	}
}

// Scenario A: a bare hairpin on the white theme.
func TestScenarioHairpinWhite(t *testing.T) {
	svg, err := RNA2SVG("((..))", "white", 0, 1.0, false, false)
	if err != nil {
		t.Fatalf("RNA2SVG() error: %v", err)
	}
	if got := strings.Count(svg, "<circle"); got != 6 {
		t.Errorf("circles = %d, want 6", got)
	}
	if !strings.Contains(svg, `class="background"`) || !strings.Contains(svg, `fill="#ffffff"`) {
		t.Error("missing white background rectangle")
	}
}

// Scenario B: nucleotide colors follow the sequence.
func TestScenarioNucleotideColors(t *testing.T) {
	res, err := RenderText(context.Background(), "ACG\n(.)", Options{Theme: "dark"})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Bubbles) != 3 {
		t.Fatalf("bubbles = %d, want 3", len(res.Bubbles))
	}
	th := theme.Get(theme.Dark)
	svg := string(res.Artifact)
	for i, n := range []rna.Nucleotide{rna.A, rna.C, rna.G} {
		if res.Bubbles[i].Nucleotide != n {
			t.Errorf("bubble %d nucleotide = %v, want %v", i, res.Bubbles[i].Nucleotide, n)
		}
		if !strings.Contains(circleLine(svg, i), th.NucleotideColor(n).Hex()) {
			t.Errorf("bubble %d not filled with %s", i, th.NucleotideColor(n).Hex())
		}
	}
}

// Scenario C: an empty structure draws only the background. Text input
// cannot express it, so the record is built directly.
func TestScenarioEmptyStructure(t *testing.T) {
	rec := input.Record{HasStructure: true}
	res, err := Render(context.Background(), rec, Options{})
	if err != nil {
		t.Fatal(err)
	}
	svg := string(res.Artifact)
	if strings.Contains(svg, "<circle") {
		t.Error("empty structure drew circles")
	}
	if !strings.Contains(svg, `class="background"`) {
		t.Error("missing background")
	}
}

// Scenario D: unbalanced brackets are fatal.
func TestScenarioUnbalanced(t *testing.T) {
	svg, err := RNA2SVG("(()", "white", 0, 1, false, false)
	if !errors.Is(err, errors.ErrCodeStructure) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeStructure)
	}
	if svg != "" {
		t.Error("SVG returned alongside an error")
	}
}

// Scenario E: a highlight overrides exactly one bubble.
func TestScenarioHighlight(t *testing.T) {
	plain, err := RenderText(context.Background(), "ACG\n(.)", Options{})
	if err != nil {
		t.Fatal(err)
	}
	lit, err := RenderText(context.Background(), "ACG\n(.)\n@2:1", Options{})
	if err != nil {
		t.Fatal(err)
	}
	th := theme.Get(theme.Default)
	a, b := string(plain.Artifact), string(lit.Artifact)
	if !strings.Contains(circleLine(b, 2), th.HighlightColor(1).Hex()) {
		t.Errorf("bubble 2 = %s, want %s", circleLine(b, 2), th.HighlightColor(1).Hex())
	}
	for _, i := range []int{0, 1} {
		if circleLine(a, i) != circleLine(b, i) {
			t.Errorf("bubble %d changed: %s vs %s", i, circleLine(a, i), circleLine(b, i))
		}
	}

	mask, err := RenderText(context.Background(), "ACG\n(.)\n..1", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(mask.Artifact, lit.Artifact) {
		t.Error("mask and range forms disagree")
	}
}

func TestDotMaskHighlightsNothing(t *testing.T) {
	plain, err := RenderText(context.Background(), "ACGUAC\n((..))", Options{})
	if err != nil {
		t.Fatal(err)
	}
	masked, err := RenderText(context.Background(), "ACGUAC\n((..))\n......", Options{})
	if err != nil {
		t.Fatalf("dot mask must render: %v", err)
	}
	if !bytes.Equal(plain.Artifact, masked.Artifact) {
		t.Error("a mask without digits changed the drawing")
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		code errors.Code
	}{
		{"nothing", "", errors.ErrCodeMissingStructure},
		{"comments only", "# nothing here\n", errors.ErrCodeMissingStructure},
		{"sequence only", "ACGU", errors.ErrCodeUnsupported},
		{"length mismatch", "ACG\n((..))", errors.ErrCodeStructure},
		{"bad line", "((..))\n%%%", errors.ErrCodeParse},
		{"bad highlight", "((..))\n@9:1", errors.ErrCodeParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := RenderText(context.Background(), tt.text, Options{})
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
			if res != nil {
				t.Error("result returned alongside an error")
			}
		})
	}
}

func TestThemeFallback(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{})
	res, err := RenderText(context.Background(), "((..))", Options{Theme: "neon", Logger: logger})
	if err != nil {
		t.Fatalf("unknown theme must not fail: %v", err)
	}
	if !res.ThemeFallback || res.Theme.Preset != theme.Default {
		t.Errorf("fallback = %v, preset = %v", res.ThemeFallback, res.Theme.Preset)
	}
	if !strings.Contains(buf.String(), "neon") {
		t.Errorf("no warning logged: %q", buf.String())
	}

	explicit, _ := RenderText(context.Background(), "((..))", Options{Theme: "default"})
	if !bytes.Equal(res.Artifact, explicit.Artifact) {
		t.Error("fallback output differs from explicit default")
	}
}

func TestOpacityOverride(t *testing.T) {
	res, err := RenderText(context.Background(), "(.)", Options{BgOpacity: Opacity(0.25)})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(res.Artifact), `fill-opacity="0.25"`) {
		t.Error("opacity not applied")
	}
	if res.Theme.Opacity != 0.25 {
		t.Errorf("theme opacity = %v", res.Theme.Opacity)
	}
}

func TestMirrorAndAngleChangeOutput(t *testing.T) {
	base, _ := RNA2SVG("..((...))..", "dark", 0, 1, false, false)
	for _, svg := range []string{
		must(RNA2SVG("..((...))..", "dark", 0, 1, true, false)),
		must(RNA2SVG("..((...))..", "dark", 0, 1, false, true)),
		must(RNA2SVG("..((...))..", "dark", 45, 1, false, false)),
	} {
		if svg == base {
			t.Error("transform did not change the drawing")
		}
		if strings.Count(svg, "<circle") != 11 {
			t.Error("transform changed the bubble count")
		}
	}
}

func TestJSONFormat(t *testing.T) {
	res, err := RenderText(context.Background(), ">demo\nGGAUCC\n((..))", Options{Format: FormatJSON})
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Theme   string            `json:"theme"`
		Bubbles []json.RawMessage `json:"bubbles"`
		Pairs   [][2]int          `json:"pairs"`
	}
	if err := json.Unmarshal(res.Artifact, &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if doc.Theme != "default" || len(doc.Bubbles) != 6 || len(doc.Pairs) != 2 {
		t.Errorf("doc = %+v", doc)
	}
	if res.Record.Name != "demo" {
		t.Errorf("record name = %q", res.Record.Name)
	}
}

func TestPNGFormat(t *testing.T) {
	res, err := RenderText(context.Background(), "((..))", Options{Format: FormatPNG, Height: 120})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(res.Artifact, []byte("\x89PNG")) {
		t.Error("artifact is not a PNG")
	}
}

func TestRunnerCache(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(fc, nil, log.NewWithOptions(&bytes.Buffer{}, log.Options{}))
	defer r.Close()

	first, err := r.Execute(ctx, "GGAUCC\n((..))", Options{Theme: "bright"})
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheHit {
		t.Error("first execution should miss")
	}
	second, err := r.Execute(ctx, "GGAUCC\r\n((..))", Options{Theme: "bright"})
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheHit {
		t.Error("second execution should hit")
	}
	if !bytes.Equal(first.Artifact, second.Artifact) {
		t.Error("cached artifact differs")
	}
	if first.InputHash != second.InputHash {
		t.Error("input hash differs between executions")
	}

	wrapped, err := r.Execute(ctx, "# same record\nGGA\nUCC\n\n((..\n))\n", Options{Theme: "bright"})
	if err != nil {
		t.Fatal(err)
	}
	if !wrapped.CacheHit || wrapped.InputHash != first.InputHash {
		t.Error("comments and wrapping should not change the cache key")
	}

	third, err := r.Execute(ctx, "GGAUCC\n((..))", Options{Theme: "dark"})
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheHit {
		t.Error("different options must not hit")
	}

	if err := r.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	again, _ := r.Execute(ctx, "GGAUCC\n((..))", Options{Theme: "bright"})
	if again.CacheHit {
		t.Error("hit after Clear")
	}
}

func TestRunnerCacheHitWarnsUnknownTheme(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	r := NewRunner(fc, nil, log.NewWithOptions(&buf, log.Options{}))
	defer r.Close()

	for i := 0; i < 2; i++ {
		buf.Reset()
		res, err := r.Execute(ctx, "((..))", Options{Theme: "neon"})
		if err != nil {
			t.Fatal(err)
		}
		if res.CacheHit != (i == 1) {
			t.Errorf("execution %d: CacheHit = %v", i, res.CacheHit)
		}
		if !res.ThemeFallback || res.Theme.Preset != theme.Default {
			t.Errorf("execution %d: fallback = %v, preset = %v", i, res.ThemeFallback, res.Theme.Preset)
		}
		if !strings.Contains(buf.String(), "neon") {
			t.Errorf("execution %d: no fallback warning in %q", i, buf.String())
		}
	}
}

func TestRunnerErrorsAreNotCached(t *testing.T) {
	ctx := context.Background()
	fc, _ := cache.NewFileCache(t.TempDir())
	r := NewRunner(fc, nil, nil)
	for i := 0; i < 2; i++ {
		if _, err := r.Execute(ctx, "(()", Options{}); !errors.Is(err, errors.ErrCodeStructure) {
			t.Fatalf("attempt %d: error = %v", i, err)
		}
	}
}

func TestDescribe(t *testing.T) {
	res := &Result{Format: "svg", Artifact: make([]byte, 10), CacheHit: true}
	if got := res.Describe(); got != "svg, 10 bytes (cached)" {
		t.Errorf("Describe() = %q", got)
	}
}

func circleLine(svg string, i int) string {
	needle := `id="b` + itoa(i) + `"`
	for _, line := range strings.Split(svg, "\n") {
		if strings.Contains(line, "<circle") && strings.Contains(line, needle) {
			return line
		}
	}
	return ""
}

func itoa(i int) string {
	b, _ := json.Marshal(i)
	return string(b)
}

func must(s string, err error) string {
	if err != nil {
		panic(err)
	}
	return s
}

func nan() float64 {
	var zero float64
	return zero / zero
}
