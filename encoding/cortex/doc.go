// Package cortex reads the CORTEX binary graph format: a set of fixed-length
// DNA k-mers, each annotated per color with a coverage count and an edge set
// describing adjacent k-mers in a de Bruijn graph.
//
// See https://github.com/iqbal-lab/cortex for the reference implementation
// that defines this file format.
package cortex
