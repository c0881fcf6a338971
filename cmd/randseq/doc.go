// 31 July 2020

/*

Randseq makes random nucleotide sequences for testing palign.
Usage:
	randseq [options] fname nseq length
will generate nseq sequences of length length and write them to fname.
A fname of "-" means stdout.

Flags:
	-g
		sprinkle gaps into the sequences, as if they came from
		an alignment. palign removes them.
	-l
		lengths are random, from 1 up to length
	-r
		random number seed
	-c
		comment for the sequences, a number is added to each

White space should generally be unpredictable, so we put spaces and
newlines in funny places.
*/
package main
