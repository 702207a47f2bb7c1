package content

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	Encoding = "Content-Encoding"
	Language = "Content-Language"
	Length   = "Content-Length"
	Location = "Content-Location"
	MD5      = "Content-MD5"
	Range    = "Content-Range"
	Type     = "Content-Type"
)

var (
	ErrMalformedContentLength = errors.New("malformed content length")
	ErrInvalidLocation        = errors.New("invalid content location")
)

// Content describes the request body as announced by the Content-* header
// fields. A zero Length means there is no body.
type Content struct {
	Encoding  string
	Language  string
	Length    int
	Location  *url.URL
	MD5       string
	Range     string
	MediaType string
}

// Decode applies one Content-* line to c. Lines that do not split into
// exactly a name and a value, and unknown names, are ignored.
func Decode(line string, c *Content) error {
	parts := splitFields(line, ":")
	if len(parts) != 2 {
		return nil
	}

	name := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])

	switch name {
	case Encoding:
		c.Encoding = value
	case Language:
		c.Language = value
	case Length:
		length, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMalformedContentLength, err)
		}
		c.Length = length
	case Location:
		location, err := url.Parse(value)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLocation, err)
		}
		c.Location = location
	case MD5:
		c.MD5 = value
	case Range:
		c.Range = value
	case Type:
		c.MediaType = value
	}
	return nil
}

// splitFields splits s around sep and drops trailing empty pieces, so
// "Content-Type:" yields a single piece.
func splitFields(s, sep string) []string {
	parts := strings.Split(s, sep)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

func (c Content) String() string {
	var b strings.Builder
	write := func(name, value string) {
		if value == "" {
			return
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString("\r\n")
	}

	write(Encoding, c.Encoding)
	write(Language, c.Language)
	if c.Length > 0 {
		write(Length, strconv.Itoa(c.Length))
	}
	if c.Location != nil {
		write(Location, c.Location.String())
	}
	write(MD5, c.MD5)
	write(Range, c.Range)
	write(Type, c.MediaType)
	return b.String()
}
