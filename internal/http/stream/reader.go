package stream

import (
	"bytes"
	"errors"
	"io"
)

const DefaultChunkSize = 1024

// Drain reads r until io.EOF in chunks of chunkSize bytes and returns
// everything that was read. Decoding never starts before Drain returns.
func Drain(r io.Reader, chunkSize int) ([]byte, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	var out bytes.Buffer
	tmp := make([]byte, chunkSize)
	for {
		read, err := r.Read(tmp)
		if read > 0 {
			out.Write(tmp[:read])
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out.Bytes(), nil
			}
			return nil, err
		}
	}
}
