package el

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	if err := c.Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	return sb.String()
}

func TestEl(t *testing.T) {
	got := render(t, El("div", Attrs{"class": "card", "id": "x"}, Text("hi")))
	want := `<div class="card" id="x">hi</div>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestElAttrOrderIsDeterministic(t *testing.T) {
	c := El("a", Attrs{"href": "/x", "class": "btn", "id": "z"})
	first := render(t, c)
	for i := 0; i < 5; i++ {
		if got := render(t, c); got != first {
			t.Fatalf("render %d differs: %q vs %q", i, got, first)
		}
	}
	if !strings.Contains(first, `class="btn" href="/x" id="z"`) {
		t.Errorf("attributes not sorted: %q", first)
	}
}

func TestElEscapesAttrsAndText(t *testing.T) {
	got := render(t, El("span", Attrs{"title": `a"b`}, Text("<script>")))
	if strings.Contains(got, "<script>") {
		t.Errorf("text not escaped: %q", got)
	}
	if strings.Contains(got, `title="a"b"`) {
		t.Errorf("attribute not escaped: %q", got)
	}
}

func TestElSkipsNilChildren(t *testing.T) {
	got := render(t, El("div", nil, nil, Text("x"), nil))
	if got != "<div>x</div>" {
		t.Errorf("got %q", got)
	}
}

func TestVoidTagsHaveNoClosing(t *testing.T) {
	got := render(t, El("input", Attrs{"type": "text"}))
	if strings.Contains(got, "</input>") {
		t.Errorf("void tag rendered a closing tag: %q", got)
	}
}

func TestGroupSkipsNil(t *testing.T) {
	got := render(t, Group(Text("a"), nil, Text("b")))
	if got != "ab" {
		t.Errorf("got %q, want %q", got, "ab")
	}
}

func TestMap(t *testing.T) {
	got := render(t, Map([]string{"x", "y"}, func(s string) templ.Component {
		return El("li", nil, Text(s))
	}))
	if got != "<li>x</li><li>y</li>" {
		t.Errorf("got %q", got)
	}
}
