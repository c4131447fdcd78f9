package domain

type Category string

const (
	Plumber     Category = "Plumber"
	Electrician Category = "Electrician"
	Carpenter   Category = "Carpenter"
	Painter     Category = "Painter"
	Handyman    Category = "Handyman"
	Cleaner     Category = "Cleaner"
)

type CategoryInfo struct {
	Key   Category
	Label string
	Emoji string
}

type Pro struct {
	Name        string
	Category    Category
	City        string
	RatingAvg   float64
	RatingCount int
	HourlyRate  int
}

type Step struct {
	Title string
	Body  string
}

type Role string

const (
	RolePro    Role = "PRO"
	RoleClient Role = "CLIENT"
)

var categories = []CategoryInfo{
	{Key: Plumber, Label: "Plumber", Emoji: "🔧"},
	{Key: Electrician, Label: "Electrician", Emoji: "💡"},
	{Key: Carpenter, Label: "Carpenter", Emoji: "🪚"},
	{Key: Painter, Label: "Painter", Emoji: "🎨"},
	{Key: Handyman, Label: "Handyman", Emoji: "🛠️"},
	{Key: Cleaner, Label: "Cleaner", Emoji: "🧹"},
}

var featuredPros = []Pro{
	{Name: "Ahmad S.", Category: Plumber, City: "Jerusalem", RatingAvg: 4.8, RatingCount: 132, HourlyRate: 220},
	{Name: "Noam L.", Category: Electrician, City: "Tel Aviv", RatingAvg: 4.7, RatingCount: 98, HourlyRate: 250},
	{Name: "Rami K.", Category: Carpenter, City: "Haifa", RatingAvg: 4.9, RatingCount: 76, HourlyRate: 280},
}

var steps = []Step{
	{Title: "Tell us what you need", Body: "Pick category + city. Add details later in the request page."},
	{Title: "Get matched fast", Body: "We show relevant pros based on availability, distance, and ratings."},
	{Title: "Choose with confidence", Body: "Transparent profiles, real reviews, and clear pricing info."},
}

// Categories returns a copy of the six service categories in display order.
func Categories() []CategoryInfo {
	return append([]CategoryInfo(nil), categories...)
}

// FeaturedPros returns a copy of the mock professional records.
func FeaturedPros() []Pro {
	return append([]Pro(nil), featuredPros...)
}

func Steps() []Step {
	return append([]Step(nil), steps...)
}

// Valid reports whether c is one of the six categories.
func (c Category) Valid() bool {
	for _, info := range categories {
		if info.Key == c {
			return true
		}
	}
	return false
}
