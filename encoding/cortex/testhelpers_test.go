package cortex

import "bytes"

// buildGraphBytes assembles a full, valid, minimal CORTEX graph file (a
// header with no sample/cleaning names followed by one record per
// kmer/coverage/edges triple, in the order given). Callers are
// responsible for passing kmers in sorted order if the result will be
// used with RandomAccess's binary search.
func buildGraphBytes(kmerSize, containerSize, numColors int, kmers []string, coverages [][]uint32, edges [][]EdgeSet) []byte {
	var buf bytes.Buffer
	buf.Write(buildHeaderBytes(supportedVersion, uint32(kmerSize), uint32(containerSize), uint32(numColors)))
	for i, k := range kmers {
		buf.Write(buildRecordBytes(k, containerSize, numColors, coverages[i], edges[i]))
	}
	return buf.Bytes()
}
