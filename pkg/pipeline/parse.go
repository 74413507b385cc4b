package pipeline

import (
	"context"
	"time"

	"github.com/matzehuels/rnaviz/pkg/errors"
	"github.com/matzehuels/rnaviz/pkg/forest"
	"github.com/matzehuels/rnaviz/pkg/input"
	"github.com/matzehuels/rnaviz/pkg/observability"
	"github.com/matzehuels/rnaviz/pkg/rna"
)

// BuildStructure turns a record into a pair table, a nucleotide sequence
// and a forest.
//
// A record needs a structure. Sequence-only input would require structure
// prediction and is reported as UNSUPPORTED; a record with neither is
// MISSING_STRUCTURE. When both are present their lengths must agree.
func BuildStructure(ctx context.Context, rec input.Record) (s *Structure, err error) {
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx)
	start := time.Now()
	defer func() {
		n := 0
		if s != nil {
			n = s.Forest.Length
		}
		hooks.OnParseComplete(ctx, n, time.Since(start), err)
	}()

	switch {
	case !rec.HasStructure && rec.HasSequence:
		return nil, errors.New(errors.ErrCodeUnsupported,
			"sequence without structure: predicting a structure from sequence is not supported")
	case !rec.HasStructure:
		return nil, errors.New(errors.ErrCodeMissingStructure,
			"input contains neither a secondary structure nor a sequence")
	}
	if err := errors.ValidateInputLength(len(rec.Structure)); err != nil {
		return nil, err
	}

	pt, err := rna.BuildPairTable(rec.Structure)
	if err != nil {
		return nil, err
	}

	seq := rna.UnknownSequence(pt.Len())
	if rec.HasSequence {
		if len(rec.Sequence) != pt.Len() {
			return nil, errors.New(errors.ErrCodeStructure,
				"sequence and structure have different lengths (%d vs %d)", len(rec.Sequence), pt.Len())
		}
		seq = rna.DecodeSequence(rec.Sequence)
	}

	f, err := forest.Build(pt)
	if err != nil {
		return nil, err
	}
	return &Structure{Pairs: pt, Sequence: seq, Forest: f}, nil
}
