package djothtml_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/godjot/djot"
	"github.com/godjot/djot/djothtml"
)

func render(t *testing.T, src string) string {
	t.Helper()
	var b strings.Builder
	err := djothtml.Render(&b, src, djot.Parse(src))
	assert.NoError(t, err)
	return b.String()
}

func TestParagraph(t *testing.T) {
	assert.Equal(t, "<p>hello</p>", render(t, "hello"))
}

func TestEmphasis(t *testing.T) {
	assert.Equal(t, "<p><em>hi</em></p>", render(t, "_hi_"))
}

func TestStrong(t *testing.T) {
	assert.Equal(t, "<p><strong>hi</strong></p>", render(t, "*hi*"))
}

func TestHeading(t *testing.T) {
	assert.Equal(t, "<h2>title</h2>", render(t, "## title"))
}

func TestEscaping(t *testing.T) {
	assert.Equal(t, "<p>a &amp; b &lt;c&gt;</p>", render(t, "a & b <c>"))
}

func TestThematicBreak(t *testing.T) {
	assert.Equal(t, "<hr>\n", render(t, "---"))
}

func TestCodeBlock(t *testing.T) {
	got := render(t, "```go\ncode\n```")
	assert.Equal(t, `<pre><code class="language-go">code</code></pre>`, got)
}

func TestVerbatim(t *testing.T) {
	assert.Equal(t, "<p><code>x</code></p>", render(t, "`x`"))
}
