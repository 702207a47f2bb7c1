package header

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"reqparse/internal/http/stream"
)

var (
	ErrMalformedQuality = errors.New("malformed quality weight")
	ErrMalformedCookie  = errors.New("malformed cookie")
)

const contentPrefix = "Content"

type LineKind int

const (
	KindField LineKind = iota
	KindCookie
	KindContent
)

func (k LineKind) String() string {
	switch k {
	case KindCookie:
		return "cookie"
	case KindContent:
		return "content"
	default:
		return "field"
	}
}

// Classify picks the decoder for a header line by its prefix.
func Classify(line string) LineKind {
	switch {
	case strings.HasPrefix(line, CookieField):
		return KindCookie
	case strings.HasPrefix(line, contentPrefix):
		return KindContent
	default:
		return KindField
	}
}

// DecodeField decodes a generic "Name: v1, v2;q=0.5" line. Lines without a
// colon and empty values add nothing. The quality part of a parameter is
// expected to be written as "q=<float>"; its first two characters are
// skipped without being checked.
func (h *Header) DecodeField(line string) error {
	colonIdx := strings.IndexByte(line, ':')
	if colonIdx == -1 {
		log.Printf("No header field in line %q", line)
		return nil
	}

	name := strings.TrimSpace(line[:colonIdx])
	value := line[colonIdx+1:]
	if strings.TrimSpace(value) == "" {
		return nil
	}

	for _, raw := range strings.Split(value, ",") {
		param, ok, err := decodeParameter(raw)
		if err != nil {
			return fmt.Errorf("field %s: %w", name, err)
		}
		if ok {
			h.Add(name, param)
		}
	}
	return nil
}

func decodeParameter(raw string) (Parameter, bool, error) {
	value, quality, weighted := strings.Cut(raw, ";")
	value = strings.TrimSpace(value)
	if !weighted {
		if value == "" {
			return Parameter{}, false, nil
		}
		return NewParameter(value), true, nil
	}

	quality, _, _ = strings.Cut(quality, ";")
	quality = strings.TrimSpace(quality)
	if len(quality) < 2 {
		return Parameter{}, false, fmt.Errorf("%w: %q", ErrMalformedQuality, quality)
	}
	q, err := strconv.ParseFloat(strings.TrimSpace(quality[2:]), 64)
	if err != nil {
		return Parameter{}, false, fmt.Errorf("%w: %w", ErrMalformedQuality, err)
	}
	return NewWeightedParameter(value, q), true, nil
}

// DecodeCookie decodes a "Cookie: a=b; c=d" line. The first token is the
// field name itself and is dropped. A token without '=' fails the line.
func (h *Header) DecodeCookie(line string) error {
	tokens := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ':' || r == ';'
	})
	if len(tokens) == 0 {
		return nil
	}

	fieldName, tokens := tokens[0], tokens[1:]
	// a repeated field name ("Cookie: Cookie: a=b") is not a cookie
	for len(tokens) > 0 && tokens[0] == fieldName {
		tokens = tokens[1:]
	}

	for _, token := range tokens {
		name, value, ok := strings.Cut(token, "=")
		if !ok {
			return fmt.Errorf("%w: token %q has no '='", ErrMalformedCookie, token)
		}
		h.AddCookie(Cookie{
			Name:  strings.TrimSpace(name),
			Value: strings.TrimSpace(value),
		})
	}
	return nil
}

// Parse decodes header text as produced by String. Content lines are not
// part of a Header and are skipped.
func Parse(text []byte) (*Header, error) {
	h := New()
	lr := stream.NewLineReader(text)
	for line := lr.ReadLine(); line != ""; line = lr.ReadLine() {
		var err error
		switch Classify(line) {
		case KindCookie:
			err = h.DecodeCookie(line)
		case KindField:
			err = h.DecodeField(line)
		}
		if err != nil {
			return nil, err
		}
	}
	return h, nil
}
