package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	comp "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// fromNode wraps a gomponents tree so it renders wherever a templ.Component is expected.
func fromNode(n g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// href sanitizes a link target. Anything that is not a relative path or a
// http(s)/mailto/tel URL becomes about:invalid#TemplFailedSanitizationURL.
func href(link string) g.Node {
	return Href(string(templ.URL(link)))
}

func page(title string, body ...g.Node) g.Node {
	return comp.HTML5(comp.HTML5Props{
		Title:       title,
		Description: "HandyMatch connects customers with trusted pros using transparent profiles and simple matching.",
		Language:    "en",
		Head: []g.Node{
			Link(Rel("icon"), Type("image/svg+xml"), href("/static/favicon.svg")),
			Script(Src("https://cdn.tailwindcss.com")),
		},
		Body: append([]g.Node{Class("min-h-screen bg-white text-slate-900")}, body...),
	})
}

func brand() g.Node {
	return A(href("/"), Class("flex items-center gap-2"),
		Div(Class("grid h-9 w-9 place-items-center rounded-xl bg-slate-900 text-white font-bold"), g.Text("H")),
		Div(Class("leading-tight"),
			Div(Class("font-semibold"), g.Text("HandyMatch")),
			Div(Class("text-xs text-slate-500"), g.Text("Find trusted pros, fast")),
		),
	)
}
