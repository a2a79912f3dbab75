package cortex

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// magicWord is the 6-byte CORTEX magic word that opens and closes the
// header.
var magicWord = [6]byte{'C', 'O', 'R', 'T', 'E', 'X'}

// supportedVersion is the only header version this reader understands.
const supportedVersion = 6

// errorRateBlobSize is the length of the opaque error-rate blob that
// follows the per-color totals; its contents are not interpreted (spec
// Open Question: semantics undefined).
const errorRateBlobSize = 16

// ColorInfo is one color's per-color metadata block (error correction /
// cleaning provenance flags), preserved but not interpreted beyond its
// fields.
type ColorInfo struct {
	TopClippedBeforeCleaning     bool
	RemovedLowCoverageSupernodes bool
	RemovedLowCoverageKmers      bool
	ClippedTips                  bool
	LowCoverageSupernodeThresh   uint32
	LowCoverageKmerThresh        uint32
	CleaningName                 string
}

// Header is the parsed, fixed+variable-length header of a CORTEX graph
// file.
type Header struct {
	Version             uint32
	KmerSize             uint32
	KmerContainerSize    uint32
	NumColors            uint32
	MeanReadLengths      []uint32
	TotalSequence        []uint64
	SampleNames          []string
	ErrorRate            [errorRateBlobSize]byte
	ColorInfos           []ColorInfo

	// RecordSize is derived: 8*KmerContainerSize + 5*NumColors.
	RecordSize int
}

func readUint32(r io.Reader) (uint32, error) {
	var v uint32
	err := binary.Read(r, binary.LittleEndian, &v)
	return v, err
}

func readUint64(r io.Reader) (uint64, error) {
	var v uint64
	err := binary.Read(r, binary.LittleEndian, &v)
	return v, err
}

func readBytes(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func readMagic(r io.Reader) ([6]byte, error) {
	var buf [6]byte
	_, err := io.ReadFull(r, buf[:])
	return buf, err
}

// ParseHeader reads a CORTEX graph header from r, which must be positioned
// at the start of the file. On success, r is left positioned immediately
// after the header, at the start of the record body.
func ParseHeader(r io.Reader) (*Header, error) {
	magic, err := readMagic(r)
	if err != nil {
		return nil, errors.Wrap(err, "cortex: reading magic word")
	}
	if magic != magicWord {
		return nil, errors.Wrapf(ErrBadMagic, "saw magic word %q", magic)
	}

	h := &Header{}
	if h.Version, err = readUint32(r); err != nil {
		return nil, errors.Wrap(err, "cortex: reading version")
	}
	if h.Version != supportedVersion {
		return nil, errors.Wrapf(ErrUnsupportedVersion, "version is not %d: got %d", supportedVersion, h.Version)
	}

	if h.KmerSize, err = readUint32(r); err != nil {
		return nil, errors.Wrap(err, "cortex: reading kmer size")
	}
	if h.KmerSize < 1 {
		return nil, errors.Wrapf(ErrInvalidKmerSize, "kmer size < 1: got %d", h.KmerSize)
	}

	if h.KmerContainerSize, err = readUint32(r); err != nil {
		return nil, errors.Wrap(err, "cortex: reading kmer container size")
	}
	if h.KmerContainerSize < 1 {
		return nil, errors.Wrapf(ErrInvalidContainerSize, "kmer container size < 1: got %d", h.KmerContainerSize)
	}

	if h.NumColors, err = readUint32(r); err != nil {
		return nil, errors.Wrap(err, "cortex: reading number of colors")
	}
	if h.NumColors < 1 {
		return nil, errors.Wrapf(ErrInvalidNumColors, "number of colors < 1: got %d", h.NumColors)
	}
	numColors := int(h.NumColors)

	h.MeanReadLengths = make([]uint32, numColors)
	for i := 0; i < numColors; i++ {
		if h.MeanReadLengths[i], err = readUint32(r); err != nil {
			return nil, errors.Wrap(err, "cortex: reading mean read lengths")
		}
	}

	h.TotalSequence = make([]uint64, numColors)
	for i := 0; i < numColors; i++ {
		if h.TotalSequence[i], err = readUint64(r); err != nil {
			return nil, errors.Wrap(err, "cortex: reading total sequence")
		}
	}

	h.SampleNames = make([]string, numColors)
	for i := 0; i < numColors; i++ {
		nameLen, err := readUint32(r)
		if err != nil {
			return nil, errors.Wrap(err, "cortex: reading sample name length")
		}
		name, err := readBytes(r, int(nameLen))
		if err != nil {
			return nil, errors.Wrap(err, "cortex: reading sample name")
		}
		h.SampleNames[i] = string(name)
	}

	if _, err := io.ReadFull(r, h.ErrorRate[:]); err != nil {
		return nil, errors.Wrap(err, "cortex: reading error rate blob")
	}

	h.ColorInfos = make([]ColorInfo, numColors)
	for i := 0; i < numColors; i++ {
		flags, err := readBytes(r, 4)
		if err != nil {
			return nil, errors.Wrap(err, "cortex: reading color info flags")
		}
		ci := ColorInfo{
			TopClippedBeforeCleaning:     flags[0] != 0,
			RemovedLowCoverageSupernodes: flags[1] != 0,
			RemovedLowCoverageKmers:      flags[2] != 0,
			ClippedTips:                  flags[3] != 0,
		}
		if ci.LowCoverageSupernodeThresh, err = readUint32(r); err != nil {
			return nil, errors.Wrap(err, "cortex: reading low coverage supernode threshold")
		}
		if ci.LowCoverageKmerThresh, err = readUint32(r); err != nil {
			return nil, errors.Wrap(err, "cortex: reading low coverage kmer threshold")
		}
		cleaningNameLen, err := readUint32(r)
		if err != nil {
			return nil, errors.Wrap(err, "cortex: reading cleaning name length")
		}
		cleaningName, err := readBytes(r, int(cleaningNameLen))
		if err != nil {
			return nil, errors.Wrap(err, "cortex: reading cleaning name")
		}
		ci.CleaningName = string(cleaningName)
		h.ColorInfos[i] = ci
	}

	trailingMagic, err := readMagic(r)
	if err != nil {
		return nil, errors.Wrap(err, "cortex: reading trailing magic word")
	}
	if trailingMagic != magicWord {
		return nil, errors.Wrapf(ErrBadTrailingMagic, "concluding magic word mismatch: saw %q", trailingMagic)
	}

	h.RecordSize = 8*int(h.KmerContainerSize) + 5*numColors
	return h, nil
}
