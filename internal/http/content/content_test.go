package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name      string
		lines     []string
		expect    Content
		expectErr error
	}{
		{
			name: "all known fields",
			lines: []string{
				"Content-Encoding: gzip",
				"Content-Language: de",
				"Content-Length: 42",
				"Content-MD5: Q2hlY2sgSW50ZWdyaXR5IQ==",
				"Content-Range: bytes 0-41/42",
				"Content-Type: text/plain; charset=utf-8",
			},
			expect: Content{
				Encoding:  "gzip",
				Language:  "de",
				Length:    42,
				MD5:       "Q2hlY2sgSW50ZWdyaXR5IQ==",
				Range:     "bytes 0-41/42",
				MediaType: "text/plain; charset=utf-8",
			},
		},
		{
			name:   "unknown content field is ignored",
			lines:  []string{"Content-Disposition: inline"},
			expect: Content{},
		},
		{
			name:   "extra colon makes the line ignored",
			lines:  []string{"Content-Length: 1:2"},
			expect: Content{},
		},
		{
			name:   "missing value is ignored",
			lines:  []string{"Content-Length:"},
			expect: Content{},
		},
		{
			name:   "field name is case sensitive",
			lines:  []string{"Content-length: 7"},
			expect: Content{},
		},
		{
			name:   "negative length is stored",
			lines:  []string{"Content-Length: -1"},
			expect: Content{Length: -1},
		},
		{
			name:      "non numeric length",
			lines:     []string{"Content-Length: five"},
			expectErr: ErrMalformedContentLength,
		},
		{
			name:      "invalid location",
			lines:     []string{"Content-Location: /docs/%zz"},
			expectErr: ErrInvalidLocation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Content
			var err error
			for _, line := range tt.lines {
				if err = Decode(line, &c); err != nil {
					break
				}
			}
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expect, c)
		})
	}
}

func TestDecodeLocation(t *testing.T) {
	var c Content
	assert.NoError(t, Decode("Content-Location: /docs/index.html", &c))
	assert.NotNil(t, c.Location)
	assert.Equal(t, "/docs/index.html", c.Location.Path)

	var abs Content
	assert.NoError(t, Decode("Content-Location: http://example.com/", &abs))
	assert.Nil(t, abs.Location)
}

func TestString(t *testing.T) {
	var c Content
	assert.Equal(t, "", c.String())

	assert.NoError(t, Decode("Content-Type: text/plain", &c))
	assert.NoError(t, Decode("Content-Length: 5", &c))
	assert.Equal(t, "Content-Length: 5\r\nContent-Type: text/plain\r\n", c.String())
}
