package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html><html><body>
<h1 id="title">Old</h1>
<ul id="list"><li>stale</li></ul>
<div id="panel" class="panel" hidden></div>
</body></html>`

func parse(t *testing.T) *Document {
	t.Helper()
	d, err := ParseString(page)
	require.NoError(t, err)
	return d
}

func TestRegionMutationsMarkDirty(t *testing.T) {
	d := parse(t)

	d.Region("title").SetText("New <em>title</em>")
	d.Region("list").Clear().Append(El("li", Text("one")), El("li", Text("two")))
	d.Region("title").AddClass("big")

	assert.Equal(t, []string{"title", "list"}, d.TakeDirty())
	assert.Empty(t, d.TakeDirty())

	assert.Equal(t, "New <em>title</em>", d.Find("#title").Text())
	assert.Equal(t, 0, d.Find("#title em").Length(), "text is literal")
	assert.Equal(t, 2, d.Find("#list li").Length())
	assert.True(t, d.Region("title").HasClass("big"))
}

func TestMissingRegionIsInert(t *testing.T) {
	d := parse(t)
	r := d.Region("nope")

	assert.False(t, r.Exists())
	r.SetText("x").Append(El("p")).AddClass("a").Hide()

	assert.Empty(t, d.TakeDirty())
	assert.Equal(t, "", r.Text())
	assert.False(t, r.Hidden())
}

func TestShowHide(t *testing.T) {
	d := parse(t)
	panel := d.Region("panel")
	require.True(t, panel.Hidden())

	panel.Show()
	assert.False(t, panel.Hidden())
	panel.Hide()
	assert.True(t, panel.Hidden())

	panel.ToggleClass("is-open")
	assert.True(t, panel.HasClass("is-open"))
	panel.ToggleClass("is-open")
	assert.False(t, panel.HasClass("is-open"))
	assert.Equal(t, []string{"panel"}, d.TakeDirty())
}

func TestFragment(t *testing.T) {
	d := parse(t)
	d.Region("title").SetText("Hi")

	frag, err := d.Fragment("title", true)
	require.NoError(t, err)
	assert.Equal(t, `<h1 id="title" hx-swap-oob="true">Hi</h1>`, frag)

	_, ok := d.Region("title").Attr("hx-swap-oob")
	assert.False(t, ok, "page is left untouched")

	frag, err = d.Fragment("title", false)
	require.NoError(t, err)
	assert.Equal(t, `<h1 id="title">Hi</h1>`, frag)

	frag, err = d.Fragment("nope", true)
	require.NoError(t, err)
	assert.Empty(t, frag)
}

func TestHTMLRoundTrip(t *testing.T) {
	d := parse(t)
	out, err := d.HTML()
	require.NoError(t, err)
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, `<li>stale</li>`)
}

func TestFragmentsSkipNested(t *testing.T) {
	d, err := ParseString(`<html><body>
<div id="modal"><div id="modal-content"></div></div>
<p id="status"></p>
</body></html>`)
	require.NoError(t, err)

	d.Region("modal-content").SetText("Book")
	d.Region("modal").AddClass("is-open")
	d.Region("status").SetText("open")

	out, err := d.Fragments(d.TakeDirty())
	require.NoError(t, err)
	assert.Equal(t,
		`<div id="modal" class="is-open" hx-swap-oob="true"><div id="modal-content">Book</div></div>`+
			`<p id="status" hx-swap-oob="true">open</p>`,
		out)

	out, err = d.Fragments(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
