// Package rna holds the primitive data of a nucleic-acid secondary structure:
// nucleotides decoded from sequence text and the pair table derived from
// dot-bracket notation.
//
// # Pair Tables
//
// [BuildPairTable] scans a dot-bracket string left to right with one stack
// per bracket class, so pseudoknots written with secondary bracket classes
// are supported:
//
//	pt, err := rna.BuildPairTable("((..[[..))..]]")
//	if err != nil {
//	    // errors.Is(err, errors.ErrCodeStructure)
//	}
//	j, ok := pt.Partner(0) // 9, true
//
// The table is symmetric: pt[pt[i]] == i whenever position i is paired.
//
// # Sequences
//
// [DecodeSequence] maps letters to [Nucleotide] values case-insensitively.
// T is read as U; anything unrecognized becomes [Unknown]. Decoding never
// fails.
package rna
