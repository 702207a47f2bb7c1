package header

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

const (
	Accept         = "Accept"
	AcceptCharset  = "Accept-Charset"
	AcceptEncoding = "Accept-Encoding"
	AcceptLanguage = "Accept-Language"
	CookieField    = "Cookie"
	Host           = "Host"
)

// Parameter is one comma separated element of a field value, optionally
// carrying a quality weight.
type Parameter struct {
	Value    string
	Quality  float64
	Weighted bool
}

func NewParameter(value string) Parameter {
	return Parameter{Value: value}
}

func NewWeightedParameter(value string, quality float64) Parameter {
	return Parameter{Value: value, Quality: quality, Weighted: true}
}

func (p Parameter) String() string {
	if !p.Weighted {
		return p.Value
	}
	return p.Value + ";q=" + strconv.FormatFloat(p.Quality, 'f', -1, 64)
}

type Cookie struct {
	Name  string
	Value string
}

func (c Cookie) String() string {
	return c.Name + "=" + c.Value
}

// Header maps case sensitive field names to their parameters. Adding to a
// field appends; nothing is ever overwritten.
type Header struct {
	order   []string
	fields  map[string][]Parameter
	cookies []Cookie
}

func New() *Header {
	return &Header{
		fields: make(map[string][]Parameter, 16),
	}
}

func (h *Header) Add(name string, params ...Parameter) {
	if _, ok := h.fields[name]; !ok {
		h.order = append(h.order, name)
	}
	h.fields[name] = append(h.fields[name], params...)
}

func (h *Header) AddValue(name, value string) {
	h.Add(name, NewParameter(value))
}

func (h *Header) AddCookie(c Cookie) {
	h.cookies = append(h.cookies, c)
}

func (h *Header) Values(name string) []Parameter {
	return h.fields[name]
}

// Value returns the first value stored for name, or "".
func (h *Header) Value(name string) string {
	params := h.fields[name]
	if len(params) == 0 {
		return ""
	}
	return params[0].Value
}

func (h *Header) Has(name string) bool {
	return len(h.fields[name]) > 0
}

// Fields lists field names in order of first appearance.
func (h *Header) Fields() []string {
	out := make([]string, len(h.order))
	copy(out, h.order)
	return out
}

func (h *Header) Cookies() []Cookie {
	out := make([]Cookie, len(h.cookies))
	copy(out, h.cookies)
	return out
}

func (h *Header) Cookie(name string) (Cookie, bool) {
	for _, c := range h.cookies {
		if c.Name == name {
			return c, true
		}
	}
	return Cookie{}, false
}

// Map returns a copy of the field to parameter mapping.
func (h *Header) Map() map[string][]Parameter {
	out := make(map[string][]Parameter, len(h.fields))
	for name, params := range h.fields {
		out[name] = append([]Parameter(nil), params...)
	}
	return out
}

// Languages returns the Accept-Language tags ordered by preference.
// Values without a weight count as 1. Tags that do not parse are left out.
func (h *Header) Languages() []language.Tag {
	type weighted struct {
		tag language.Tag
		q   float64
	}

	var tags []weighted
	for _, p := range h.fields[AcceptLanguage] {
		tag, err := language.Parse(p.Value)
		if err != nil {
			continue
		}
		q := 1.0
		if p.Weighted {
			q = p.Quality
		}
		tags = append(tags, weighted{tag: tag, q: q})
	}

	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i].q > tags[j].q
	})

	out := make([]language.Tag, 0, len(tags))
	for _, w := range tags {
		out = append(out, w.tag)
	}
	return out
}

// String renders one line per field followed by a single Cookie line.
func (h *Header) String() string {
	var b strings.Builder
	for _, name := range h.order {
		params := h.fields[name]
		b.WriteString(name)
		b.WriteString(": ")
		for i, p := range params {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(p.String())
		}
		b.WriteString("\r\n")
	}

	if len(h.cookies) > 0 {
		b.WriteString(CookieField)
		b.WriteString(": ")
		for i, c := range h.cookies {
			if i > 0 {
				b.WriteString("; ")
			}
			b.WriteString(c.String())
		}
		b.WriteString("\r\n")
	}
	return b.String()
}
