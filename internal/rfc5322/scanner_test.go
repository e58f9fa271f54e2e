package rfc5322

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moriyoshi/brief/internal/bufio"
)

type result struct {
	headers    [][]string
	body       string
	stragglers []string
}

type testHandler struct {
	result
}

func (h *testHandler) HandleStraggler(b []byte) error {
	h.result.stragglers = append(h.result.stragglers, string(b))
	return nil
}

func (h *testHandler) HandleHeaderLine(hl [][]byte) error {
	chunks := make([]string, len(hl))
	for i, chunk := range hl {
		chunks[i] = string(chunk)
	}
	h.result.headers = append(h.result.headers, chunks)
	return nil
}

func (h *testHandler) HandleBody(r bufio.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	h.result.body = string(b)
	return nil
}

func TestScan(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		expected result
		input    string
	}{
		{
			name: "simple",
			expected: result{
				headers: [][]string{
					{"From: abc", "\t<def@example.com>"},
					{"To: ghi <jkl@example.com>", "  , <mno@example.com>"},
				},
				body: "body\r\nbody",
			},
			input: "From: abc\r\n\t<def@example.com>\r\nTo: ghi <jkl@example.com>\r\n  , <mno@example.com>\r\n\r\nbody\r\nbody",
		},
		{
			name: "straggler",
			expected: result{
				headers: [][]string{
					{"From: <def@example.com>"},
				},
				body:       "",
				stragglers: []string{"\t\tStraggler"},
			},
			input: "\t\tStraggler\nFrom: <def@example.com>\n\n",
		},
		{
			name: "headers only",
			expected: result{
				headers: [][]string{
					{"From: <def@example.com>"},
					{"To: <jkl@example.com>"},
				},
			},
			input: "From: <def@example.com>\nTo: <jkl@example.com>",
		},
		{
			name:     "empty",
			expected: result{},
			input:    "",
		},
	}

	for i, c := range cases {
		t.Run(fmt.Sprintf("#%d: %s", i, c.name), func(t *testing.T) {
			t.Parallel()
			h := &testHandler{}
			err := Scan(bufio.NewReader(strings.NewReader(c.input)), h)
			if assert.NoError(t, err) {
				assert.Equal(t, c.expected, h.result)
			}
		})
	}
}

func TestSplitField(t *testing.T) {
	cases := []struct {
		lines []string
		name  string
		value string
		ok    bool
	}{
		{[]string{"From: <a@b>"}, "From", "<a@b>", true},
		{[]string{"To : x <a@b>,", "\t<c@d>"}, "To", "x <a@b>, <c@d>", true},
		{[]string{"Cc:"}, "Cc", "", true},
		{[]string{"garbage"}, "", "", false},
		{nil, "", "", false},
	}
	for i, c := range cases {
		lines := make([][]byte, len(c.lines))
		for j, l := range c.lines {
			lines[j] = []byte(l)
		}
		name, value, ok := SplitField(lines)
		assert.Equal(t, c.ok, ok, "#%d", i)
		if ok {
			assert.Equal(t, c.name, string(name), "#%d", i)
			assert.Equal(t, c.value, string(value), "#%d", i)
		}
	}
}

func TestScanLinesLongerThanBuffer(t *testing.T) {
	t.Parallel()

	from := "From: " + strings.Repeat("x", 100)
	to := "To: " + strings.Repeat("y", 70)
	cont := "\t" + strings.Repeat("z", 50)
	h := &testHandler{}
	err := Scan(bufio.NewReaderSize(strings.NewReader(from+"\r\n"+to+"\r\n"+cont+"\r\n\r\nbody"), 16), h)
	if assert.NoError(t, err) {
		assert.Equal(t, result{
			headers: [][]string{{from}, {to, cont}},
			body:    "body",
		}, h.result)
	}
}
