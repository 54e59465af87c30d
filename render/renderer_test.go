package render

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heathj/commentrender/page"
	"github.com/heathj/commentrender/parser"
	"github.com/heathj/commentrender/parser/dom"
)

// commentElement builds a marked <div> whose only child is the raw text.
func commentElement(doc *dom.Node, raw string) *dom.Node {
	el := dom.NewElement(doc, "div", dom.Htmlns)
	el.SetAttribute("class", DefaultMarker)
	if raw != "" {
		el.AppendChild(dom.NewTextNode(doc, raw))
	}
	return el
}

func quietRenderer(opts ...Option) *Renderer {
	log, _ := test.NewNullLogger()
	return New(append([]Option{WithLogger(log)}, opts...)...)
}

func TestRenderAll(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"plain text", "just words, no markup", `| "just words, no markup"`},
		{"empty", "", ``},
		{"nested markup", "<b>hi</b>", "| <b>\n|   \"hi\""},
		{"mixed", "hello <i>world</i>!", "| \"hello \"\n| <i>\n|   \"world\"\n| \"!\""},
		{"malformed", "<b>bold <i>both</b> tail", "| <b>\n|   \"bold \"\n|   <i>\n|     \"both\"\n| <i>\n|   \" tail\""},
		{"stray close", "a</p>b", "| \"a\"\n| <p>\n| \"b\""},
		{"link", `see <a href="https://news.ycombinator.com/">hn</a>`, "| \"see \"\n| <a>\n|   href=\"https://news.ycombinator.com/\"\n|   \"hn\""},
		{"script dropped", "x<script>alert(1)</script>y<p><script>1</script>z</p>", "| \"x\"\n| \"y\"\n| <p>\n|   \"z\""},
		{"svg script dropped", "<svg><script>alert(1)</script><circle></circle></svg>", "| <svg svg>\n|   <svg circle>"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc := dom.NewDocument()
			el := commentElement(doc, tt.raw)

			require.NoError(t, quietRenderer().RenderAll([]*dom.Node{el}))

			var lines []string
			for _, c := range el.ChildNodes {
				lines = append(lines, strings.Split(c.String(), "\n")...)
			}
			assert.Equal(t, tt.expected, strings.Join(lines, "\n"))
			for _, c := range el.ChildNodes {
				assert.Same(t, el, c.ParentNode)
			}
		})
	}
}

func TestRenderPlainTextIsSingleTextNode(t *testing.T) {
	for _, s := range []string{
		"a", "hello world", "  spaced  ", "émoji 🎉", "line\nbreak",
		"a\r\nb", "cr\ronly", "a\x00b", "\x00", "tail > head", "q\"uote'",
	} {
		doc := dom.NewDocument()
		el := commentElement(doc, s)
		require.NoError(t, quietRenderer().Render(el))

		require.Len(t, el.ChildNodes, 1, s)
		assert.Equal(t, dom.TextNode, el.FirstChild.NodeType, s)
		assert.Equal(t, s, el.FirstChild.Text.Data, s)
	}
}

func TestRenderEmptyLeavesNoChildren(t *testing.T) {
	doc := dom.NewDocument()
	el := commentElement(doc, "")
	el.AppendChild(dom.NewComment(doc, "only a comment"))

	require.NoError(t, quietRenderer().Render(el))
	assert.False(t, el.HasChildNodes())
}

func TestRenderReadsConcatenatedText(t *testing.T) {
	doc := dom.NewDocument()
	el := commentElement(doc, "<b>")
	el.AppendChild(dom.NewElement(doc, "span", dom.Htmlns)).AppendChild(dom.NewTextNode(doc, "hi"))
	el.AppendChild(dom.NewTextNode(doc, "</b>"))

	require.NoError(t, quietRenderer().Render(el))
	require.Len(t, el.ChildNodes, 1)
	assert.Equal(t, "b", el.FirstChild.NodeName)
	assert.Equal(t, "hi", el.FirstChild.TextContent())
}

// A second pass reads the text of the rendered children, so the markup is
// flattened into a single text node. Rendering is one-shot.
func TestRenderIsOneShot(t *testing.T) {
	doc := dom.NewDocument()
	el := commentElement(doc, "hello <i>world</i>!")
	r := quietRenderer()

	require.NoError(t, r.Render(el))
	require.Len(t, el.ChildNodes, 3)

	require.NoError(t, r.Render(el))
	require.Len(t, el.ChildNodes, 1)
	assert.Equal(t, dom.TextNode, el.FirstChild.NodeType)
	assert.Equal(t, "hello world!", el.FirstChild.Text.Data)
}

func TestRenderAllNoElements(t *testing.T) {
	assert.NoError(t, quietRenderer().RenderAll(nil))
	assert.NoError(t, quietRenderer().RenderAll([]*dom.Node{}))
}

func TestRenderAllPreservesOrder(t *testing.T) {
	doc := dom.NewDocument()
	var order []string
	p := FragmentParserFunc(func(od *dom.Node, raw string) ([]*dom.Node, error) {
		order = append(order, raw)
		return []*dom.Node{dom.NewTextNode(od, strings.ToUpper(raw))}, nil
	})
	els := []*dom.Node{commentElement(doc, "one"), commentElement(doc, "two"), commentElement(doc, "three")}

	require.NoError(t, quietRenderer(WithParser(p)).RenderAll(els))
	assert.Equal(t, []string{"one", "two", "three"}, order)
	assert.Equal(t, "TWO", els[1].TextContent())
}

func TestRenderAllStopsAtFirstFault(t *testing.T) {
	doc := dom.NewDocument()
	boom := errors.New("boom")
	p := FragmentParserFunc(func(od *dom.Node, raw string) ([]*dom.Node, error) {
		if raw == "bad" {
			return nil, boom
		}
		return []*dom.Node{dom.NewTextNode(od, "ok")}, nil
	})
	els := []*dom.Node{commentElement(doc, "good"), commentElement(doc, "bad"), commentElement(doc, "later")}

	err := quietRenderer(WithParser(p)).RenderAll(els)
	require.Error(t, err)
	assert.Equal(t, boom, errors.Cause(err))

	assert.Equal(t, "ok", els[0].TextContent())
	assert.False(t, els[1].HasChildNodes(), "failing element is left cleared")
	assert.Equal(t, "later", els[2].TextContent(), "later elements are untouched")
}

func TestRenderRejectsNonElements(t *testing.T) {
	doc := dom.NewDocument()
	r := quietRenderer()

	assert.Equal(t, ErrNotElement, r.Render(nil))
	assert.Equal(t, ErrNotElement, r.Render(dom.NewTextNode(doc, "x")))

	err := r.RenderAll([]*dom.Node{commentElement(doc, "x"), nil})
	assert.Equal(t, ErrNotElement, errors.Cause(err))
}

func TestRenderKeepScripts(t *testing.T) {
	doc := dom.NewDocument()
	el := commentElement(doc, "a<script>s()</script>")
	r := quietRenderer(WithParser(&HTMLFragmentParser{KeepScripts: true}))

	require.NoError(t, r.Render(el))
	require.Len(t, el.ChildNodes, 2)
	assert.Equal(t, "script", el.LastChild.NodeName)
}

func TestRenderSanitizer(t *testing.T) {
	tests := []struct {
		policy   string
		raw      string
		expected string
	}{
		{PolicyNone, `<b onclick="x()">hi</b>`, `<b onclick="x()">hi</b>`},
		{PolicyUGC, `<b onclick="x()">hi</b><iframe src="/"></iframe>`, `<b>hi</b>`},
		{PolicyStrict, `<b>hi</b> &amp; bye`, `hi &amp; bye`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.policy, func(t *testing.T) {
			t.Parallel()
			s, err := PolicyByName(tt.policy)
			require.NoError(t, err)
			var opts []Option
			if s != nil {
				opts = append(opts, WithSanitizer(s))
			}

			doc := dom.NewDocument()
			el := commentElement(doc, tt.raw)
			require.NoError(t, quietRenderer(opts...).Render(el))
			assert.Equal(t, tt.expected, parser.SerializeHTML(el))
		})
	}
}

func TestPolicyByNameUnknown(t *testing.T) {
	_, err := PolicyByName("lenient")
	assert.Error(t, err)
}

func TestRenderDocument(t *testing.T) {
	in := `<html><body>
<div class="comment"><span class="comment-content">&lt;i&gt;one&lt;/i&gt;</span></div>
<div class="comment-content reply">two &amp;lt;3</div>
<p class="other">&lt;b&gt;untouched&lt;/b&gt;</p>
</body></html>`
	doc, err := parser.NewParser(strings.NewReader(in)).Start()
	require.NoError(t, err)

	n, err := quietRenderer().RenderDocument(doc, "")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	out := parser.SerializeHTML(doc)
	assert.Contains(t, out, `<span class="comment-content"><i>one</i></span>`)
	assert.Contains(t, out, `<div class="comment-content reply">two &lt;3</div>`)
	assert.Contains(t, out, `<p class="other">&lt;b&gt;untouched&lt;/b&gt;</p>`)
}

func TestRenderDocumentNoMatches(t *testing.T) {
	in := `<p>&lt;b&gt;x&lt;/b&gt;</p>`
	doc, err := parser.NewParser(strings.NewReader(in)).Start()
	require.NoError(t, err)
	before := doc.String()

	n, err := quietRenderer().RenderDocument(doc, DefaultMarker)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, before, doc.String())
}

func TestAttach(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.InfoLevel)
	p, err := page.Load(strings.NewReader(`<div class="note">&lt;b&gt;hi&lt;/b&gt;</div>`), log)
	require.NoError(t, err)

	r := New(WithLogger(log))
	require.NoError(t, r.Attach(p, "note"))

	div := p.Document.GetElementsByClassName("note")[0]
	assert.Equal(t, dom.TextNode, div.FirstChild.NodeType, "nothing happens before the page is ready")

	require.NoError(t, p.Ready())
	assert.Equal(t, "b", div.FirstChild.NodeName)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "comments rendered", entry.Message)
	assert.Equal(t, 1, entry.Data["comments"])
}
