/*
Package fmindex is a succinct full-text self-index over a sequence of
symbols drawn from a finite alphabet.

Given an immutable text, it builds an in-memory structure that answers
how many times a pattern occurs (Count), where it occurs (Locate), and
lets a caller walk the text backward or forward from any match, all
without retaining the original text. Two index families are provided: a
plain FM-Index built atop a wavelet matrix over the Burrows-Wheeler
transform, and a run-length FM-Index that represents the BWT as runs,
for repetitive text. Both families offer a count-only variant (minimum
memory) and a locate-capable variant parameterised by a sampling level.

A multi-piece mode extends the index to concatenated texts separated by
the sentinel symbol 0: it reports the piece id containing each
occurrence and supports prefix/suffix/exact anchored searches per piece.

The index is built once from an owned text and is immutable afterward.
All query operations are pure reads and are safe for concurrent use by
many readers without synchronization.
*/
package fmindex
