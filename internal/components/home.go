package components

import (
	"fmt"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/felixbrock/handymatch/internal/domain"
)

type HomeProps struct {
	Selection  domain.Selection
	Categories []domain.CategoryInfo
	Featured   []domain.Pro
	Steps      []domain.Step
	Year       int
}

// Home renders the landing page for the current search selection.
func Home(p HomeProps) templ.Component {
	return fromNode(page("HandyMatch - Find trusted pros, fast",
		topBar(),
		Main(
			hero(p),
			categorySection(p.Categories, p.Selection.City),
			howSection(p.Steps),
			prosSection(p.Featured, p.Selection.MatchLink()),
			ctaSection(p.Year),
		),
		Script(Src("/static/search.js"), Defer()),
	))
}

func topBar() g.Node {
	navLink := func(target, label string) g.Node {
		return A(href(target), Class("text-sm text-slate-700 hover:text-slate-900"), g.Text(label))
	}

	return Header(Class("sticky top-0 z-50 border-b border-slate-200 bg-white/80 backdrop-blur"),
		Div(Class("mx-auto flex max-w-6xl items-center justify-between px-4 py-3"),
			brand(),
			Nav(Class("hidden items-center gap-6 md:flex"),
				navLink("#categories", "Categories"),
				navLink("#how", "How it works"),
				navLink("#pros", "Pros"),
			),
			Div(Class("flex items-center gap-2"),
				A(href(domain.LoginPath), Class("rounded-xl px-3 py-2 text-sm font-medium text-slate-700 hover:bg-slate-100"), g.Text("Log in")),
				A(href(domain.RegisterPath), Class("rounded-xl bg-slate-900 px-3 py-2 text-sm font-medium text-white hover:bg-slate-800"), g.Text("Sign up")),
			),
		),
	)
}

func hero(p HomeProps) g.Node {
	return Section(Class("mx-auto max-w-6xl px-4 pt-12 pb-10"),
		Div(Class("grid gap-10 md:grid-cols-2 md:items-center"),
			Div(
				Div(Class("inline-flex items-center gap-2 rounded-full border border-slate-200 bg-slate-50 px-3 py-1 text-xs text-slate-700"),
					Span(Class("font-medium"), g.Text("New")),
					Span(Class("text-slate-500"), g.Text("Fair matching • Real ratings • Fast booking")),
				),
				H1(Class("mt-4 text-4xl font-semibold leading-tight md:text-5xl"),
					g.Text("Find the right "),
					Span(Class("underline decoration-slate-300"), g.Text("professional")),
					g.Text(" in minutes."),
				),
				P(Class("mt-4 text-slate-600"),
					g.Text("HandyMatch connects customers with trusted pros (plumbers, electricians, carpenters, and more) using transparent profiles and simple matching."),
				),
				searchCard(p.Categories, p.Selection),
				Div(Class("mt-6 flex flex-wrap items-center gap-2 text-sm text-slate-600"),
					Span(Class("rounded-full bg-slate-100 px-3 py-1"), g.Text("✅ Verified profiles")),
					Span(Class("rounded-full bg-slate-100 px-3 py-1"), g.Text("⭐ Transparent ratings")),
					Span(Class("rounded-full bg-slate-100 px-3 py-1"), g.Text("⚡ Quick matching")),
				),
			),
			topMatches(p.Featured),
		),
	)
}

// searchCard is the category + city widget. search.js rewrites every
// data-match-link anchor and category card on edit. Without scripts, submitting
// the form produces the same query string as Selection.MatchLink.
func searchCard(cats []domain.CategoryInfo, sel domain.Selection) g.Node {
	const field = "mt-1 w-full rounded-xl border border-slate-200 bg-white px-3 py-2 text-sm outline-none focus:border-slate-400"

	return Form(ID("search"), Method("get"), Action(domain.MatchPath),
		Class("mt-6 rounded-2xl border border-slate-200 bg-white p-4 shadow-sm"),
		Div(Class("grid gap-3 md:grid-cols-3 md:items-end"),
			Div(Class("md:col-span-1"),
				Label(For("category"), Class("text-xs font-medium text-slate-600"), g.Text("Category")),
				Select(ID("category"), Name("category"), Class(field),
					g.Map(cats, func(c domain.CategoryInfo) g.Node {
						return Option(Value(string(c.Key)), g.If(c.Key == sel.Category, Selected()), g.Text(c.Label))
					}),
				),
			),
			Div(Class("md:col-span-1"),
				Label(For("city"), Class("text-xs font-medium text-slate-600"), g.Text("City")),
				Input(ID("city"), Name("city"), Type("text"), Value(sel.City), Placeholder("e.g., Jerusalem"), Class(field)),
			),
			A(ID("search-link"), g.Attr("data-match-link"), href(sel.MatchLink()),
				Class("inline-flex items-center justify-center rounded-xl bg-slate-900 px-4 py-2 text-sm font-medium text-white hover:bg-slate-800"),
				g.Text("Search"),
			),
		),
		Div(Class("mt-3 text-xs text-slate-500"),
			g.Text("Tip: Start with a category + city. You can filter more on the results page."),
		),
	)
}

func topMatches(pros []domain.Pro) g.Node {
	return Div(Class("relative"),
		Div(Class("rounded-3xl border border-slate-200 bg-gradient-to-b from-slate-50 to-white p-6 shadow-sm"),
			Div(Class("flex items-center justify-between"),
				Div(Class("text-sm font-semibold"), g.Text("Today’s Top Matches")),
				Div(Class("text-xs text-slate-500"), g.Text("Mock preview")),
			),
			Div(Class("mt-4 space-y-3"),
				g.Map(pros, func(p domain.Pro) g.Node {
					return Div(g.Attr("data-card", "preview"), Class("rounded-2xl border border-slate-200 bg-white p-4"),
						Div(Class("flex items-start justify-between gap-4"),
							Div(
								Div(Class("font-medium"), g.Text(p.Name)),
								Div(Class("text-sm text-slate-600"), g.Textf("%s • %s", p.Category, p.City)),
								Div(Class("mt-2 text-sm text-slate-700"),
									g.Text("⭐ "+rating(p)+" "),
									Span(Class("text-slate-500"), g.Textf("(%d)", p.RatingCount)),
								),
							),
							Div(Class("text-right"),
								Div(Class("text-sm font-semibold"), g.Text(rate(p))),
								A(href(domain.ProfileLink(p)), Class("mt-2 inline-flex rounded-full bg-slate-900 px-3 py-1 text-xs text-white"), g.Text("View")),
							),
						),
					)
				}),
			),
			Div(Class("mt-4 rounded-2xl bg-slate-50 p-4 text-sm text-slate-700"),
				g.Text("“This is the exact MVP feel: fast search → list of pros → details.”"),
			),
		),
	)
}

func categorySection(cats []domain.CategoryInfo, city string) g.Node {
	return Section(ID("categories"), Class("border-t border-slate-200 bg-slate-50/60"),
		Div(Class("mx-auto max-w-6xl px-4 py-12"),
			sectionHeading("Browse categories", "Start with a service type. Keep it simple for MVP.",
				A(href(domain.CategoriesPath), Class("text-sm font-medium text-slate-900 hover:underline"), g.Text("View all")),
			),
			Div(Class("mt-6 grid gap-3 sm:grid-cols-2 md:grid-cols-3"),
				g.Map(cats, func(c domain.CategoryInfo) g.Node {
					return A(g.Attr("data-card", "category"), g.Attr("data-category", string(c.Key)), href(domain.MatchLink(c.Key, city)),
						Class("group rounded-2xl border border-slate-200 bg-white p-5 hover:border-slate-300 hover:shadow-sm"),
						Div(Class("flex items-center justify-between"),
							Div(Class("text-2xl"), g.Text(c.Emoji)),
							Div(Class("text-xs text-slate-500 group-hover:text-slate-700"), g.Text("Open →")),
						),
						Div(Class("mt-3 font-medium"), g.Text(c.Label)),
						Div(Class("mt-1 text-sm text-slate-600"), g.Text(domain.CategoryBlurb(c))),
					)
				}),
			),
		),
	)
}

func howSection(steps []domain.Step) g.Node {
	return Section(ID("how"), Class("border-t border-slate-200"),
		Div(Class("mx-auto max-w-6xl px-4 py-12"),
			H2(Class("text-2xl font-semibold"), g.Text("How it works")),
			P(Class("mt-2 text-slate-600"), g.Text("Three simple steps. We’ll refine later.")),
			Div(Class("mt-6 grid gap-3 md:grid-cols-3"),
				g.Map(steps, func(s domain.Step) g.Node {
					return Div(g.Attr("data-card", "step"), Class("rounded-2xl border border-slate-200 bg-white p-6"),
						Div(Class("text-sm font-semibold"), g.Text(s.Title)),
						Div(Class("mt-2 text-sm text-slate-600"), g.Text(s.Body)),
					)
				}),
			),
		),
	)
}

func prosSection(pros []domain.Pro, matchLink string) g.Node {
	return Section(ID("pros"), Class("border-t border-slate-200 bg-slate-50/60"),
		Div(Class("mx-auto max-w-6xl px-4 py-12"),
			sectionHeading("Featured professionals", "Mock data now. Later we’ll load from the API.",
				A(ID("search-now"), g.Attr("data-match-link"), href(matchLink), Class("text-sm font-medium text-slate-900 hover:underline"), g.Text("Search now")),
			),
			Div(Class("mt-6 grid gap-3 md:grid-cols-3"),
				g.Map(pros, proCard),
			),
		),
	)
}

func proCard(p domain.Pro) g.Node {
	return Div(g.Attr("data-card", "pro"), Class("rounded-2xl border border-slate-200 bg-white p-6"),
		Div(Class("flex items-start justify-between"),
			Div(
				Div(Class("font-medium"), g.Text(p.Name)),
				Div(Class("text-sm text-slate-600"), g.Textf("%s • %s", p.Category, p.City)),
			),
			Div(Class("rounded-full bg-slate-100 px-3 py-1 text-xs text-slate-700"), g.Text(rate(p))),
		),
		Div(Class("mt-3 text-sm text-slate-700"),
			g.Text("⭐ "+rating(p)+" "),
			Span(Class("text-slate-500"), g.Textf("(%d reviews)", p.RatingCount)),
		),
		Div(Class("mt-5 flex gap-2"),
			A(href(domain.ProfileLink(p)),
				Class("flex-1 rounded-xl border border-slate-200 px-3 py-2 text-center text-sm font-medium text-slate-800 hover:bg-slate-50"),
				g.Text("View profile"),
			),
			A(href(domain.RequestLink(p)),
				Class("flex-1 rounded-xl bg-slate-900 px-3 py-2 text-center text-sm font-medium text-white hover:bg-slate-800"),
				g.Text("Request"),
			),
		),
	)
}

func ctaSection(year int) g.Node {
	return Section(Class("border-t border-slate-200"),
		Div(Class("mx-auto max-w-6xl px-4 py-14"),
			Div(Class("rounded-3xl border border-slate-200 bg-slate-900 p-8 text-white md:p-10"),
				Div(Class("grid gap-6 md:grid-cols-2 md:items-center"),
					Div(
						H3(Class("text-2xl font-semibold"), g.Text("Are you a professional?")),
						P(Class("mt-2 text-white/80"), g.Text("Create your profile and start getting matched with real customers.")),
					),
					Div(Class("flex gap-2 md:justify-end"),
						A(href(domain.RegisterLink(domain.RolePro)),
							Class("rounded-xl bg-white px-4 py-2 text-sm font-semibold text-slate-900 hover:bg-white/90"),
							g.Text("Join as Pro"),
						),
						A(href(domain.RegisterLink(domain.RoleClient)),
							Class("rounded-xl border border-white/25 px-4 py-2 text-sm font-semibold text-white hover:bg-white/10"),
							g.Text("Join as Client"),
						),
					),
				),
			),
			footer(year),
		),
	)
}

func footer(year int) g.Node {
	link := func(target, label string) g.Node {
		return A(Class("hover:underline"), href(target), g.Text(label))
	}

	return Footer(Class("mt-10 flex flex-col gap-3 border-t border-slate-200 pt-6 text-sm text-slate-600 md:flex-row md:items-center md:justify-between"),
		Div(g.Textf("© %d HandyMatch. All rights reserved.", year)),
		Div(Class("flex gap-4"),
			link("/privacy", "Privacy"),
			link("/terms", "Terms"),
			link("/contact", "Contact"),
		),
	)
}

func sectionHeading(title, subtitle string, action g.Node) g.Node {
	return Div(Class("flex items-end justify-between gap-6"),
		Div(
			H2(Class("text-2xl font-semibold"), g.Text(title)),
			P(Class("mt-1 text-slate-600"), g.Text(subtitle)),
		),
		action,
	)
}

func rating(p domain.Pro) string {
	return fmt.Sprintf("%.1f", p.RatingAvg)
}

func rate(p domain.Pro) string {
	return fmt.Sprintf("₪%d/hr", p.HourlyRate)
}
