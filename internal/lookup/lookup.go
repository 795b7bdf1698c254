// Package lookup serves the fixed operational data the assistant answers
// questions from: kitchen menus, locations, events, staff and festivals.
package lookup

import (
	"strings"

	"github.com/csheth/templeops/internal/keywords"
)

// Category groups records.
type Category string

const (
	CategoryKitchen  Category = "kitchen"
	CategoryLocation Category = "location"
	CategoryEvent    Category = "event"
	CategoryStaff    Category = "staff"
	CategoryFestival Category = "festival"
)

// Record is one answerable fact sheet.
type Record struct {
	Category Category
	Title    string
	Details  []string
	Keywords []string
}

// Workstream is one line of festival preparation.
type Workstream struct {
	Name    string
	Owner   string
	Percent int
}

// Festival is the preparation status of a festival.
type Festival struct {
	Name        string
	Dates       string
	Aliases     []string
	Workstreams []Workstream
}

// Readiness is the mean completion of all workstreams.
func (f Festival) Readiness() int {
	if len(f.Workstreams) == 0 {
		return 0
	}
	total := 0
	for _, w := range f.Workstreams {
		total += w.Percent
	}
	return total / len(f.Workstreams)
}

var records = []Record{
	{
		Category: CategoryKitchen,
		Title:    "Today's kitchen menu",
		Details: []string{
			"Breakfast (6:30 AM): upma, kesari bath and coffee for 800",
			"Annadanam lunch (12:00 PM): rice, saaru, palya, payasa for 3,500",
			"Dinner (7:30 PM): chapati, kurma and curd rice for 1,200",
		},
		Keywords: []string{"kitchen", "menu", "meal", "meals", "lunch", "dinner", "breakfast", "annadanam", "food", "cooking"},
	},
	{
		Category: CategoryKitchen,
		Title:    "Prasadam counter",
		Details: []string{
			"Laddu stock: 4,200 pieces, next batch at 3:00 PM",
			"Pulihora and sweet pongal served at the north counter until 1:00 PM",
		},
		Keywords: []string{"prasadam", "prasad", "laddu", "counter"},
	},
	{
		Category: CategoryLocation,
		Title:    "Campus locations",
		Details: []string{
			"Main shrine: open 5:30 AM to 1:00 PM and 4:00 PM to 9:00 PM",
			"Annadana hall: ground floor, east wing, seats 600",
			"Yagashala: behind the north prakara",
			"VIP parking: gate 3 off the river road",
			"Goshala: 200 m past the south gate",
		},
		Keywords: []string{"where", "location", "locations", "shrine", "hall", "parking", "yagashala", "goshala", "gate", "map"},
	},
	{
		Category: CategoryEvent,
		Title:    "Upcoming events",
		Details: []string{
			"Friday 6:00 PM: Lakshmi Narasimha homa in the yagashala",
			"Saturday 7:00 AM: Rudrabhisheka at the main shrine",
			"Sunday 5:00 PM: Veda parayana by the pathashala students",
		},
		Keywords: []string{"event", "events", "schedule", "upcoming", "programme", "program", "homa", "abhishekam", "calendar"},
	},
	{
		Category: CategoryStaff,
		Title:    "Duty roster",
		Details: []string{
			"Head priest: Sri Venkatesha Bhatta (main shrine)",
			"Kitchen supervisor: Smt. Lakshmi Devi",
			"Security in-charge: Sri Ramesh Gowda, 24 guards on rotation",
			"Volunteers on duty today: 46",
		},
		Keywords: []string{"staff", "priest", "priests", "roster", "volunteer", "volunteers", "security", "who", "duty"},
	},
}

var festivals = []Festival{
	{
		Name:    "Sharan Navaratri",
		Dates:   "3 to 12 October",
		Aliases: []string{"navaratri", "navratri", "dasara", "dussehra"},
		Workstreams: []Workstream{
			{Name: "Alankara and flower decoration", Owner: "Decoration committee", Percent: 60},
			{Name: "Chandi homa materials", Owner: "Vaidika department", Percent: 80},
			{Name: "Annadanam provisioning", Owner: "Kitchen", Percent: 70},
			{Name: "Crowd and queue management", Owner: "Security", Percent: 40},
		},
	},
	{
		Name:    "Deepavali",
		Dates:   "1 November",
		Aliases: []string{"deepavali", "diwali"},
		Workstreams: []Workstream{
			{Name: "Deepa lighting", Owner: "Maintenance", Percent: 50},
			{Name: "Lakshmi puja arrangements", Owner: "Vaidika department", Percent: 30},
			{Name: "Sweets for prasadam", Owner: "Kitchen", Percent: 20},
		},
	},
	{
		Name:    "Maha Shivaratri",
		Dates:   "26 February",
		Aliases: []string{"shivaratri", "shivratri"},
		Workstreams: []Workstream{
			{Name: "Night-long abhisheka schedule", Owner: "Vaidika department", Percent: 90},
			{Name: "Queue barricades", Owner: "Security", Percent: 75},
			{Name: "Bilva leaf procurement", Owner: "Stores", Percent: 65},
		},
	},
	{
		Name:    "Rathotsava",
		Dates:   "14 April",
		Aliases: []string{"rathotsava", "rathotsavam", "car festival", "chariot festival"},
		Workstreams: []Workstream{
			{Name: "Chariot repair and painting", Owner: "Maintenance", Percent: 55},
			{Name: "Procession route clearance", Owner: "Municipal liaison", Percent: 35},
			{Name: "Volunteers for rope pulling", Owner: "Volunteer cell", Percent: 60},
		},
	},
}

// Search returns every record whose keywords appear in query.
func Search(query string) []Record {
	words := keywords.New(query)
	var out []Record
	for _, r := range records {
		if words.Has(r.Keywords...) {
			out = append(out, cloneRecord(r))
		}
	}
	return out
}

// FestivalFor returns the festival mentioned in query.
func FestivalFor(query string) (Festival, bool) {
	words := keywords.New(query)
	for _, f := range festivals {
		if words.Has(f.Aliases...) {
			return cloneFestival(f), true
		}
	}
	return Festival{}, false
}

// FestivalAliases lists every name a festival can be referred to by.
func FestivalAliases() []string {
	var out []string
	for _, f := range festivals {
		out = append(out, f.Aliases...)
	}
	return out
}

// Summary joins a record's details into one paragraph.
func (r Record) Summary() string {
	return r.Title + ": " + strings.Join(r.Details, "; ")
}

func cloneRecord(r Record) Record {
	r.Details = append([]string(nil), r.Details...)
	r.Keywords = append([]string(nil), r.Keywords...)
	return r
}

func cloneFestival(f Festival) Festival {
	f.Aliases = append([]string(nil), f.Aliases...)
	f.Workstreams = append([]Workstream(nil), f.Workstreams...)
	return f
}
