package request

import (
	"fmt"
	"strconv"
	"strings"
)

type Method string

const (
	GET     Method = "GET"
	HEAD    Method = "HEAD"
	POST    Method = "POST"
	PUT     Method = "PUT"
	DELETE  Method = "DELETE"
	OPTIONS Method = "OPTIONS"
	TRACE   Method = "TRACE"
	CONNECT Method = "CONNECT"
	PATCH   Method = "PATCH"
)

var methods = map[string]Method{
	"GET":     GET,
	"HEAD":    HEAD,
	"POST":    POST,
	"PUT":     PUT,
	"DELETE":  DELETE,
	"OPTIONS": OPTIONS,
	"TRACE":   TRACE,
	"CONNECT": CONNECT,
	"PATCH":   PATCH,
}

// ParseMethod matches s case-sensitively against the known methods.
func ParseMethod(s string) (Method, error) {
	m, ok := methods[s]
	if !ok {
		return "", fmt.Errorf("%w: unknown method %q", ErrMalformedRequestLine, s)
	}
	return m, nil
}

type Version struct {
	Major int
	Minor int
}

func (v Version) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}

// ParseVersion reads "major.minor" after the last '/' of s, as in "HTTP/1.1".
func ParseVersion(s string) (Version, error) {
	slash := strings.LastIndexByte(s, '/')
	if slash == -1 {
		return Version{}, fmt.Errorf("%w: %q has no '/'", ErrUnsupportedVersion, s)
	}

	major, minor, ok := strings.Cut(s[slash+1:], ".")
	if !ok {
		return Version{}, fmt.Errorf("%w: %q is not major.minor", ErrUnsupportedVersion, s)
	}

	var v Version
	var err error
	if v.Major, err = parseVersionNumber(major); err != nil {
		return Version{}, fmt.Errorf("%w: major of %q: %w", ErrUnsupportedVersion, s, err)
	}
	if v.Minor, err = parseVersionNumber(minor); err != nil {
		return Version{}, fmt.Errorf("%w: minor of %q: %w", ErrUnsupportedVersion, s, err)
	}
	return v, nil
}

func parseVersionNumber(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
