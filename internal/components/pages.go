package components

import (
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ComingSoon is shown for pages the landing page links to but which are not built yet.
func ComingSoon(title string, path string) templ.Component {
	return fromNode(page(title+" - HandyMatch",
		topBar(),
		Main(Class("mx-auto max-w-3xl px-4 py-20 text-center"),
			H1(Class("text-3xl font-semibold"), g.Text(title)),
			P(Class("mt-4 text-slate-600"), g.Text("This page is coming soon.")),
			P(Class("mt-2 text-xs text-slate-400"), Code(g.Text(path))),
			A(href("/"), Class("mt-8 inline-flex rounded-xl bg-slate-900 px-4 py-2 text-sm font-medium text-white hover:bg-slate-800"),
				g.Text("Back to home"),
			),
		),
	))
}

func Error(code int, title string, msg string) templ.Component {
	return fromNode(page(title+" - HandyMatch",
		Main(Class("mx-auto max-w-3xl px-4 py-20 text-center"),
			P(Class("text-sm font-semibold text-slate-500"), g.Text(strconv.Itoa(code))),
			H1(Class("mt-2 text-3xl font-semibold"), g.Text(title)),
			P(Class("mt-4 text-slate-600"), g.Text(msg)),
			A(href("/"), Class("mt-8 inline-flex rounded-xl bg-slate-900 px-4 py-2 text-sm font-medium text-white hover:bg-slate-800"),
				g.Text("Back to home"),
			),
		),
	))
}
