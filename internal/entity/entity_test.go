package entity

import (
	"testing"
	"time"
)

// Sunday 10 March 2024, mid afternoon.
var refNow = time.Date(2024, time.March, 10, 15, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		want     time.Time
		relative bool
	}{
		{name: "day month year", text: "Puja on 15 January 2024", want: day(2024, time.January, 15)},
		{name: "ordinal with comma", text: "booked for 15th Jan, 2025", want: day(2025, time.January, 15)},
		{name: "month day year", text: "January 15, 2024 works", want: day(2024, time.January, 15)},
		{name: "iso", text: "2024-01-15", want: day(2024, time.January, 15)},
		{name: "numeric day first", text: "circular dated 05/04/2024", want: day(2024, time.April, 5)},
		{name: "no year still ahead", text: "March 20", want: day(2024, time.March, 20)},
		{name: "no year already past rolls forward", text: "on 5 March", want: day(2025, time.March, 5)},
		{name: "today keeps the year", text: "10 March", want: day(2024, time.March, 10)},
		{name: "tomorrow", text: "Tomorrow 9 AM", want: day(2024, time.March, 11), relative: true},
		{name: "day after tomorrow", text: "day after tomorrow", want: day(2024, time.March, 12), relative: true},
		{name: "next week", text: "sometime next week", want: day(2024, time.March, 17), relative: true},
		{name: "in n days", text: "in 3 days", want: day(2024, time.March, 13), relative: true},
		{name: "weekday", text: "on friday evening", want: day(2024, time.March, 15), relative: true},
		{name: "same weekday means next week", text: "sunday", want: day(2024, time.March, 17), relative: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseDate(tc.text, refNow)
			if got == nil {
				t.Fatalf("ParseDate(%q) = nil", tc.text)
			}
			if !got.Value.Equal(tc.want) {
				t.Fatalf("ParseDate(%q) = %s, want %s", tc.text, got.Value.Format(time.DateOnly), tc.want.Format(time.DateOnly))
			}
			if got.IsRelative != tc.relative {
				t.Fatalf("ParseDate(%q).IsRelative = %v, want %v", tc.text, got.IsRelative, tc.relative)
			}
		})
	}
}

func TestParseDateRejectsImpossibleDates(t *testing.T) {
	for _, text := range []string{"31 February 2024", "2024-13-01", "nothing to see", ""} {
		if got := ParseDate(text, refNow); got != nil {
			t.Fatalf("ParseDate(%q) = %+v, want nil", text, got)
		}
	}
}

func TestParseTime(t *testing.T) {
	cases := []struct {
		text         string
		hour, minute int
		relative     bool
	}{
		{text: "Tomorrow 9 AM, Prime Minister", hour: 9},
		{text: "at 9:30 pm", hour: 21, minute: 30},
		{text: "by 10 a.m. sharp", hour: 10},
		{text: "12 AM", hour: 0},
		{text: "12 PM", hour: 12},
		{text: "12:15 am", hour: 0, minute: 15},
		{text: "18:45 departure", hour: 18, minute: 45},
		{text: "around noon", hour: 12},
		{text: "midnight abhishekam", hour: 0},
		{text: "in the evening", hour: 18, relative: true},
	}
	for _, tc := range cases {
		got := ParseTime(tc.text)
		if got == nil {
			t.Fatalf("ParseTime(%q) = nil", tc.text)
		}
		if got.Hour != tc.hour || got.Minute != tc.minute || got.IsRelative != tc.relative {
			t.Fatalf("ParseTime(%q) = %+v, want %02d:%02d relative=%v", tc.text, got, tc.hour, tc.minute, tc.relative)
		}
	}
	if got := ParseTime("13 PM"); got != nil {
		t.Fatalf("ParseTime(13 PM) = %+v, want nil", got)
	}
}

func TestClockFormatsRoundTrip(t *testing.T) {
	for _, text := range []string{"12:00 AM", "12:00 PM", "9:05 PM", "11:59 AM"} {
		parsed, err := ParseClock12(text)
		if err != nil {
			t.Fatalf("ParseClock12(%q): %v", text, err)
		}
		if got := parsed.Format12(); got != text {
			t.Fatalf("Format12 = %q, want %q", got, text)
		}
	}
	if got := (Time{Hour: 9}).Clock(); got != "09:00" {
		t.Fatalf("Clock = %q, want 09:00", got)
	}
	if _, err := ParseClock12("25:00 PM"); err == nil {
		t.Fatalf("expected error for out of range clock")
	}
}

func TestParsePerson(t *testing.T) {
	cases := []struct {
		text, name, title string
	}{
		{text: "Tomorrow 9 AM, Prime Minister Modi is visiting Sringeri", name: "Modi", title: "Prime Minister"},
		{text: "Dr. Rao will visit on Monday", name: "Rao", title: "Dr"},
		{text: "governor anandiben patel arriving at 10 AM", name: "Anandiben Patel", title: "Governor"},
		{text: "Tomorrow, Ramesh Kumar is visiting the temple", name: "Ramesh Kumar"},
		{text: "the visit of Sri Sri Ravi", name: "Sri Ravi", title: "Sri"},
		{text: "arrange the visit by Lakshmi Narayan.", name: "Lakshmi Narayan"},
	}
	for _, tc := range cases {
		got := ParsePerson(tc.text)
		if got == nil {
			t.Fatalf("ParsePerson(%q) = nil", tc.text)
		}
		if got.Name != tc.name || got.Title != tc.title {
			t.Fatalf("ParsePerson(%q) = %q/%q, want %q/%q", tc.text, got.Name, got.Title, tc.name, tc.title)
		}
	}
	for _, text := range []string{"we need more flowers", "administer the accounts", "who is visiting"} {
		if got := ParsePerson(text); got != nil {
			t.Fatalf("ParsePerson(%q) = %+v, want nil", text, got)
		}
	}
}

func TestParseLocation(t *testing.T) {
	cases := map[string]string{
		"Prime Minister Modi is visiting Sringeri":   "Sringeri",
		"arriving at the main temple tomorrow":       "Main Temple",
		"at 10 AM in Mysuru":                         "Mysuru",
		"Minister Rao coming to annadana hall today": "Annadana Hall",
	}
	for text, want := range cases {
		got := ParseLocation(text)
		if got == nil || got.Name != want {
			t.Fatalf("ParseLocation(%q) = %+v, want %q", text, got, want)
		}
	}
	if got := ParseLocation("meeting in the evening"); got != nil {
		t.Fatalf("ParseLocation(day part) = %+v, want nil", got)
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		text     string
		value    float64
		currency string
	}{
		{text: "approve ₹1.5 lakh for flowers", value: 150000, currency: "INR"},
		{text: "Rs. 50,000 donation", value: 50000, currency: "INR"},
		{text: "a 2 crore renovation", value: 20000000, currency: "INR"},
		{text: "about 50k", value: 50000, currency: "INR"},
		{text: "1,50,000 rupees", value: 150000, currency: "INR"},
		{text: "$200 gift", value: 200, currency: "USD"},
		{text: "budget of 12000", value: 12000, currency: "INR"},
	}
	for _, tc := range cases {
		got := ParseAmount(tc.text)
		if got == nil {
			t.Fatalf("ParseAmount(%q) = nil", tc.text)
		}
		if got.Value != tc.value || got.Currency != tc.currency {
			t.Fatalf("ParseAmount(%q) = %v %s, want %v %s", tc.text, got.Value, got.Currency, tc.value, tc.currency)
		}
	}
	if got := ParseAmount("see you at 9 am"); got != nil {
		t.Fatalf("ParseAmount(no money) = %+v, want nil", got)
	}
}

func TestExtractAll(t *testing.T) {
	got := ExtractAll("Tomorrow 9 AM, Prime Minister Modi is visiting Sringeri", refNow)
	if got.Date == nil || got.Time == nil || got.Person == nil || got.Location == nil {
		t.Fatalf("ExtractAll missing entities: %+v", got)
	}
	if got.Amount != nil {
		t.Fatalf("unexpected amount %+v", got.Amount)
	}
}
