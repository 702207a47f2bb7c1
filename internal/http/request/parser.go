package request

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"reqparse/internal/http/content"
	"reqparse/internal/http/header"
	"reqparse/internal/http/stream"
)

// Parser decodes a whole request from a reader. The input is drained
// completely before any decoding starts.
type Parser struct {
	chunkSize int
}

func NewParser(chunkSize int) *Parser {
	if chunkSize <= 0 {
		chunkSize = stream.DefaultChunkSize
	}
	return &Parser{chunkSize: chunkSize}
}

var defaultParser = NewParser(stream.DefaultChunkSize)

// NewRequest parses a request from a []byte or an io.Reader.
func NewRequest(r interface{}) (*Request, error) {
	switch v := r.(type) {
	case []byte:
		return defaultParser.ParseBytes(v)
	case io.Reader:
		return defaultParser.Parse(v)
	default:
		return nil, fmt.Errorf("unsupported type: %T", r)
	}
}

func (p *Parser) Parse(r io.Reader) (*Request, error) {
	data, err := stream.Drain(r, p.chunkSize)
	if err != nil {
		return nil, &ParseError{Err: fmt.Errorf("%w: %w", ErrIO, err)}
	}
	return p.ParseBytes(data)
}

func (p *Parser) ParseBytes(data []byte) (*Request, error) {
	req := newRequest()
	lr := stream.NewLineReader(data)

	if err := parseRequestLine(lr.ReadLine(), req); err != nil {
		return nil, &ParseError{Err: err}
	}
	if req.IsEmpty() {
		return req, nil
	}

	if err := parseHeader(lr, req); err != nil {
		return nil, &ParseError{Err: err}
	}

	if err := parseBody(lr, req); err != nil {
		return nil, &ParseError{Err: err}
	}
	return req, nil
}

func parseRequestLine(line string, req *Request) error {
	if line == "" {
		return nil
	}

	tokens := strings.Fields(line)
	if len(tokens) != 3 {
		return fmt.Errorf("%w: want 3 tokens, got %d in %q", ErrMalformedRequestLine, len(tokens), line)
	}

	method, err := ParseMethod(tokens[0])
	if err != nil {
		return err
	}

	target, err := url.Parse(tokens[1])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTarget, err)
	}

	version, err := ParseVersion(tokens[2])
	if err != nil {
		return err
	}

	req.method = method
	req.target = target
	req.version = &version
	return nil
}

func parseHeader(lr *stream.LineReader, req *Request) error {
	for line := lr.ReadLine(); line != ""; line = lr.ReadLine() {
		var err error
		switch header.Classify(line) {
		case header.KindCookie:
			err = req.header.DecodeCookie(line)
		case header.KindContent:
			err = content.Decode(line, &req.content)
		default:
			err = req.header.DecodeField(line)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func parseBody(lr *stream.LineReader, req *Request) error {
	length := req.content.Length
	if length <= 0 {
		return nil
	}

	body, err := lr.ReadFull(length)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: want %d bytes, got %d", ErrTruncatedBody, length, len(body))
		}
		return err
	}
	req.body = body
	return nil
}
