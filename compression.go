package penisp53

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"io"

	"github.com/carbocation/pfx"
)

// gzipSig is the gzip byte-code signature, per
// https://stackoverflow.com/a/19127748/199475
var gzipSig = []byte{0x1f, 0x8b, 0x08}

// maybeDecompress sniffs the leading bytes of r and transparently
// decompresses when they carry the gzip signature. Scoring exports circulate
// both plain and gzipped, so the loaders accept either.
func maybeDecompress(r io.Reader) (io.Reader, error) {
	buffered := bufio.NewReader(r)

	lead, err := buffered.Peek(len(gzipSig))
	if err != nil && err != io.EOF {
		return nil, pfx.Err(err)
	}

	if !bytes.Equal(lead, gzipSig) {
		return buffered, nil
	}

	gz, err := gzip.NewReader(buffered)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return gz, nil
}
