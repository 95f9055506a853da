package builder

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		suffix string
	}{
		{"rst", ".rst"},
		{"RST", ".rst"},
		{"myst", ".md"},
		{" md ", ".md"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Lookup(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.suffix, b.Suffix())
		})
	}

	_, err := Lookup("asciidoc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownDialect))
	assert.Contains(t, err.Error(), "md, myst, rst")
}

func TestRSTDirective(t *testing.T) {
	var buf bytes.Buffer
	RST{}.Directive(&buf, "toctree", "", []string{":hidden:"}, []string{"atphysics", "atplot"})
	assert.Equal(t, ".. toctree::\n   :hidden:\n\n   atphysics\n   atplot\n\n", buf.String())

	buf.Reset()
	RST{}.Directive(&buf, "py:function", "foo(x)", nil, []string{"| Does a thing.", ""})
	assert.Equal(t, ".. py:function:: foo(x)\n\n   | Does a thing.\n   \n\n", buf.String())

	buf.Reset()
	RST{}.Directive(&buf, "rubric", "Functions", nil, nil)
	assert.Equal(t, ".. rubric:: Functions\n\n\n", buf.String())
}

func TestRSTPrimitives(t *testing.T) {
	var buf bytes.Buffer
	b := RST{}

	b.Title(&buf, "atplot")
	assert.Equal(t, "atplot\n======\n\n", buf.String())

	buf.Reset()
	b.Label(&buf, "atplot_module")
	assert.Equal(t, ".. _atplot_module:\n\n", buf.String())

	buf.Reset()
	b.Table(&buf, []Row{{Ref: ":func:`foo`", Description: "Does a thing."}})
	assert.Equal(t, ".. list-table::\n\n   * - :func:`foo`\n     - Does a thing.\n\n", buf.String())

	assert.Equal(t, ":class:`Lattice`", b.Role("class", "Lattice"))
	assert.Equal(t, []string{"| one", "", "| two"}, b.LineBlock([]string{"one", "", "two"}))
}

func TestRSTTitleCountsRunes(t *testing.T) {
	var buf bytes.Buffer
	RST{}.Title(&buf, "Ångström")
	assert.Equal(t, "Ångström\n========\n\n", buf.String())
}

func TestMySTDirective(t *testing.T) {
	var buf bytes.Buffer
	MyST{}.Directive(&buf, "toctree", "", []string{":hidden:"}, []string{"atphysics"})
	assert.Equal(t, ":::{toctree}\n:hidden:\n\natphysics\n:::\n\n", buf.String())

	buf.Reset()
	b := MyST{}
	b.Directive(&buf, "py:function", "foo(x)", nil, b.LineBlock([]string{"Does a thing."}))
	assert.Equal(t, "::::{py:function} foo(x)\n:::{line-block}\nDoes a thing.\n:::\n\n::::\n\n", buf.String())
}

func TestMySTPrimitives(t *testing.T) {
	var buf bytes.Buffer
	b := MyST{}

	b.Title(&buf, "atplot")
	assert.Equal(t, "# atplot\n\n", buf.String())

	buf.Reset()
	b.Label(&buf, "atplot_module")
	assert.Equal(t, "(atplot_module)=\n", buf.String())

	buf.Reset()
	b.Table(&buf, []Row{{Ref: "{func}`foo`", Description: "Does a thing."}})
	assert.Equal(t, "| Name | Description |\n| ---- | ----------- |\n| {func}`foo` | Does a thing. |\n\n", buf.String())

	buf.Reset()
	b.Table(&buf, nil)
	assert.Empty(t, buf.String())

	assert.Equal(t, "{ref}`atplot_module`", b.Role("ref", "atplot_module"))
}

func TestOuterFence(t *testing.T) {
	assert.Equal(t, ":::", outerFence([]string{"plain", "::not a fence"}))
	assert.Equal(t, "::::", outerFence([]string{":::{line-block}", "x", ":::\n"}))
	assert.Equal(t, ":::::", outerFence([]string{"::::{note}", ":::{line-block}", ":::", "::::"}))
}
