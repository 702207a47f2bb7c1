package stream

import "io"

const (
	CR = '\r'
	LF = '\n'
)

const noPending = -1

// LineReader walks a materialized request buffer one byte at a time.
// A CR that is not followed by LF leaves the following byte pending so
// that it starts the next line. The pending byte belongs to this reader
// only; every parse gets its own LineReader.
type LineReader struct {
	buf     []byte
	pos     int
	pending int
}

func NewLineReader(buf []byte) *LineReader {
	return &LineReader{
		buf:     buf,
		pending: noPending,
	}
}

func (lr *LineReader) readByte() (byte, bool) {
	if lr.pending != noPending {
		b := byte(lr.pending)
		lr.pending = noPending
		return b, true
	}
	if lr.pos >= len(lr.buf) {
		return 0, false
	}
	b := lr.buf[lr.pos]
	lr.pos++
	return b, true
}

// ReadLine returns the next line without its terminator. End of input
// ends the line without error; an exhausted reader yields "".
func (lr *LineReader) ReadLine() string {
	line := make([]byte, 0, 64)
	for {
		b, ok := lr.readByte()
		if !ok {
			return string(line)
		}
		switch b {
		case LF:
			return string(line)
		case CR:
			next, ok := lr.readByte()
			if ok && next != LF {
				lr.pending = int(next)
			}
			return string(line)
		default:
			line = append(line, b)
		}
	}
}

// ReadFull returns the next n bytes. When fewer are left it returns what
// remains together with io.ErrUnexpectedEOF.
func (lr *LineReader) ReadFull(n int) ([]byte, error) {
	out := make([]byte, 0, min(n, lr.Buffered()))
	for len(out) < n {
		b, ok := lr.readByte()
		if !ok {
			return out, io.ErrUnexpectedEOF
		}
		out = append(out, b)
	}
	return out, nil
}

func (lr *LineReader) Buffered() int {
	n := len(lr.buf) - lr.pos
	if lr.pending != noPending {
		n++
	}
	return n
}
