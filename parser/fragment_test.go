package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heathj/commentrender/parser/dom"
)

type fragmentTest struct {
	in       string
	context  string
	expected string
}

var fragmentTests = []fragmentTest{
	{"", "div", "#document"},
	{"plain words", "div", "#document\n| \"plain words\""},
	{"<b>hi</b>", "div", "#document\n| <b>\n|   \"hi\""},
	{"hello <i>world</i>!", "div", "#document\n| \"hello \"\n| <i>\n|   \"world\"\n| \"!\""},
	{"<b>unclosed", "div", "#document\n| <b>\n|   \"unclosed\""},
	{"a <p>b<p>c", "div", "#document\n| \"a \"\n| <p>\n|   \"b\"\n| <p>\n|   \"c\""},
	{"<td>cell</td>", "div", "#document\n| \"cell\""},
	{"&lt;b&gt; &amp;", "div", "#document\n| \"<b> &\""},
	{"<!--c-->x", "div", "#document\n| <!-- c -->\n| \"x\""},
	{"<a href=\"/item?id=1\">link</a>", "div", "#document\n| <a>\n|   href=\"/item?id=1\"\n|   \"link\""},
	{"<b>x</b>", "textarea", "#document\n| \"<b>x</b>\""},
	{"<td>cell</td>", "tr", "#document\n| <td>\n|   \"cell\""},
}

func TestParseHTMLFragment(t *testing.T) {
	for _, test := range fragmentTests {
		runFragmentTest(test, t)
	}
}

func runFragmentTest(test fragmentTest, t *testing.T) {
	t.Run(test.context+"/"+test.in, func(t *testing.T) {
		t.Parallel()
		doc := dom.NewDocument()
		nodes, err := ParseHTMLFragment(dom.NewElement(doc, test.context, dom.Htmlns), test.in, false)
		require.NoError(t, err)

		out := dom.NewDocument()
		for _, node := range nodes {
			assert.Nil(t, node.ParentNode, "fragment nodes must be detached")
			assert.Same(t, doc, node.OwnerDocument)
			out.AppendChild(node)
		}
		assert.Equal(t, test.expected, out.String())
	})
}

func TestParseHTMLFragmentRejectsNonElementContext(t *testing.T) {
	doc := dom.NewDocument()
	_, err := ParseHTMLFragment(dom.NewTextNode(doc, "x"), "<b>x</b>", false)
	assert.Error(t, err)

	_, err = ParseHTMLFragment(doc, "<b>x</b>", false)
	assert.Error(t, err)
}
