package request

import (
	"net/url"
	"strings"

	"reqparse/internal/http/content"
	"reqparse/internal/http/header"
)

// Request is one decoded HTTP/1.x request. It is filled in by the parser
// and only read afterwards.
type Request struct {
	method  Method
	target  *url.URL
	version *Version
	header  *header.Header
	content content.Content
	body    []byte
}

type QueryParameter struct {
	Name  string
	Value string
}

func newRequest() *Request {
	return &Request{
		header: header.New(),
	}
}

func (r *Request) Method() Method {
	return r.method
}

func (r *Request) Target() *url.URL {
	return r.target
}

// Version returns the protocol version; ok is false for an empty request.
func (r *Request) Version() (Version, bool) {
	if r.version == nil {
		return Version{}, false
	}
	return *r.version, true
}

func (r *Request) Header() *header.Header {
	return r.header
}

func (r *Request) Content() content.Content {
	return r.content
}

func (r *Request) Body() []byte {
	return r.body
}

// IsEmpty reports whether no request line was present. An empty request
// means there was nothing left to read, not that parsing failed.
func (r *Request) IsEmpty() bool {
	return r.method == "" && r.version == nil && r.target == nil
}

// Host returns the first Host field value.
func (r *Request) Host() (string, bool) {
	if !r.header.Has(header.Host) {
		return "", false
	}
	return r.header.Value(header.Host), true
}

// QueryParameters splits the target's query string on every call, keeping
// the order of appearance. A pair without '=' gets an empty value.
func (r *Request) QueryParameters() []QueryParameter {
	if r.target == nil || r.target.RawQuery == "" {
		return nil
	}

	var params []QueryParameter
	for _, pair := range strings.Split(r.target.RawQuery, "&") {
		if pair == "" {
			continue
		}
		name, value, _ := strings.Cut(pair, "=")
		params = append(params, QueryParameter{
			Name:  unescape(name),
			Value: unescape(value),
		})
	}
	return params
}

func unescape(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return u
	}
	return s
}

func (r *Request) String() string {
	if r.IsEmpty() {
		return ""
	}

	var b strings.Builder
	b.WriteString(string(r.method))
	b.WriteByte(' ')
	b.WriteString(r.target.String())
	b.WriteString(" HTTP/")
	b.WriteString(r.version.String())
	b.WriteString("\r\n")
	b.WriteString(r.header.String())
	b.WriteString(r.content.String())
	return b.String()
}
