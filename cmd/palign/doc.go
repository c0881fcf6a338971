// 16 Oct 2026

/*
Palign does pairwise global alignments of nucleotide sequences with
affine gap penalties and reports the percent identity of each pair.
Usage:
	palign [options] seqs.fa
where seqs.fa is in fasta format. Gaps in the input are removed before
aligning. Only A, C, G, T and U are allowed, in either case.

Flags:
	-next-pair
		align 1 with 2, 3 with 4, ... This is the default and needs
		an even number of sequences.
	-all-pair
		align every sequence with every other one
	-rand-pair n
		align n randomly chosen pairs
	-s seed
		random number seed, for -rand-pair
	-quiet
		only write the headers and identities, not the sequences
	-print-fsa
		also write the aligned pairs in fasta format to stderr
	-m, -x, -o, -e
		match, mismatch, gap open and gap extension scores. The
		defaults are 1, -2, -5, -2.
	-w n
		number of goroutines doing alignments. Each has its own
		matrices, big enough for the longest sequence.
	-v
		print the elapsed time at the end

For each pair, two identities are written. "PID over non-gap" counts
identical pairs over the columns without a gap. "PID over
alignment-length" counts them over the whole alignment.
*/
package main
