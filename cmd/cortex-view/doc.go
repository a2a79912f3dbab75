/*
cortex-view dumps the records of a CORTEX graph file, or looks up the
k-mer windows of a query sequence against one.

	cortex-view [-record <sequence>] [-color N] <graph-path>

With no -record, every record in the graph body is printed as one line:
<kmer> <coverage...> <edges...>. With -record, a k-mer-sized window is
slid across the given sequence and each window is looked up individually;
a window absent from the graph is reported with zero coverage and blank
edges rather than aborting the run.

<graph-path> may be a local path or an s3:// URL. -record mode requires
random access and therefore an uncompressed, seekable file; the no-flag
streaming mode additionally accepts gzip- or snappy-compressed input.
*/
package main
