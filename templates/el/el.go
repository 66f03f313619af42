// Package el builds HTML as composable templ components: tag, attributes,
// children. Every view assembles its page from these primitives, so view
// code stays plain Go instead of a template dialect.
package el

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/a-h/templ"
)

// Attrs maps attribute names to values. Values are escaped on render.
type Attrs map[string]string

// Void elements never take children or a closing tag.
var voidTags = map[string]bool{
	"img":   true,
	"input": true,
	"br":    true,
	"hr":    true,
	"meta":  true,
	"link":  true,
}

// El renders <tag attrs>children</tag>. Attributes render in sorted order
// so output is deterministic. Nil children are skipped, which lets callers
// build optional parts inline.
func El(tag string, attrs Attrs, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<"+tag); err != nil {
			return err
		}

		keys := make([]string, 0, len(attrs))
		for k := range attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if _, err := io.WriteString(w, ` `+k+`="`+templ.EscapeString(attrs[k])+`"`); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		if voidTags[tag] {
			return nil
		}

		for _, c := range children {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}

// Text renders escaped text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Textf renders escaped formatted text.
func Textf(format string, args ...any) templ.Component {
	return Text(fmt.Sprintf(format, args...))
}

// Group renders children in order with no wrapper element.
func Group(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range children {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// Map builds one component per item and groups them, the list-rendering
// idiom used all over the views.
func Map[T any](items []T, build func(T) templ.Component) templ.Component {
	out := make([]templ.Component, len(items))
	for i, it := range items {
		out[i] = build(it)
	}
	return Group(out...)
}
