package theme

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/rnaviz/pkg/errors"
	"github.com/matzehuels/rnaviz/pkg/layout"
)

// ResolveHighlights turns a raw highlight spec into exactly n color-ids,
// one per position, with layout.NoHighlight where no override applies.
//
// Two forms are accepted:
//
//	..111...22..     mask: the digit in column i colors position i
//	@ 2:1, 10-14:3   ranges: 0-based inclusive positions or spans
//
// In the range form entries are separated by commas or whitespace, and
// whitespace around '-' and ':' is ignored. Later entries override earlier
// ones. An empty spec yields no overrides.
func ResolveHighlights(raw string, n int) ([]int, error) {
	out := make([]int, n)
	for i := range out {
		out[i] = layout.NoHighlight
	}

	spec := strings.TrimSpace(raw)
	switch {
	case spec == "":
		return out, nil
	case strings.HasPrefix(spec, "@"):
		return out, resolveRanges(spec[1:], out)
	default:
		return out, resolveMask(spec, out)
	}
}

func resolveMask(mask string, out []int) error {
	for i := 0; i < len(mask); i++ {
		ch := mask[i]
		switch {
		case ch >= '0' && ch <= '9':
			if i >= len(out) {
				return errors.New(errors.ErrCodeParse,
					"highlight mask colors column %d but the sequence has %d positions", i, len(out))
			}
			out[i] = int(ch - '0')
		case ch == '.' || ch == '_' || ch == '-':
		default:
			return errors.New(errors.ErrCodeParse, "invalid highlight mask character %q at column %d", ch, i)
		}
	}
	return nil
}

// rangeSpaces matches whitespace around the separators inside an entry.
var rangeSpaces = regexp.MustCompile(`\s*([-:])\s*`)

func resolveRanges(body string, out []int) error {
	body = rangeSpaces.ReplaceAllString(body, "$1")
	entries := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(entries) == 0 {
		return errors.New(errors.ErrCodeParse, "highlight spec %q has no entries", "@"+body)
	}
	for _, entry := range entries {
		start, end, id, err := parseRange(entry)
		if err != nil {
			return err
		}
		if end >= len(out) {
			return errors.New(errors.ErrCodeParse,
				"highlight %q reaches position %d but the sequence has %d positions", entry, end, len(out))
		}
		for i := start; i <= end; i++ {
			out[i] = id
		}
	}
	return nil
}

// parseRange parses "pos:id" or "start-end:id".
func parseRange(entry string) (start, end, id int, err error) {
	span, color, ok := strings.Cut(entry, ":")
	if !ok {
		return 0, 0, 0, errors.New(errors.ErrCodeParse, "highlight %q: missing ':<color-id>'", entry)
	}
	id, err = strconv.Atoi(color)
	if err != nil || id < 0 || id >= HighlightCount {
		return 0, 0, 0, errors.New(errors.ErrCodeParse,
			"highlight %q: color-id must be 0..%d", entry, HighlightCount-1)
	}

	from, to, isSpan := strings.Cut(span, "-")
	if start, err = parsePosition(entry, from); err != nil {
		return 0, 0, 0, err
	}
	end = start
	if isSpan {
		if end, err = parsePosition(entry, to); err != nil {
			return 0, 0, 0, err
		}
		if end < start {
			return 0, 0, 0, errors.New(errors.ErrCodeParse, "highlight %q: reversed range", entry)
		}
	}
	return start, end, id, nil
}

func parsePosition(entry, s string) (int, error) {
	pos, err := strconv.Atoi(s)
	if err != nil || pos < 0 {
		return 0, errors.New(errors.ErrCodeParse, "highlight %q: invalid position %q", entry, s)
	}
	return pos, nil
}
