package due

import (
	"testing"
	"time"
)

var testToday = time.Date(2026, time.October, 19, 14, 30, 0, 0, time.UTC)

func TestParseDateNamedDays(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "today", want: "19.10.2026"},
		{input: "Today", want: "19.10.2026"},
		{input: "tomorrow", want: "20.10.2026"},
		{input: "TOMORROW", want: "20.10.2026"},
		{input: "next week", want: "26.10.2026"},
		{input: "  next week ", want: "26.10.2026"},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got := ParseDate(tc.input, testToday)
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestParseDateRelativeOffsets(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "in 2 days", want: "21.10.2026"},
		{input: "in 1 day", want: "20.10.2026"},
		{input: "in 0 days", want: "19.10.2026"},
		{input: "in 20 days", want: "08.11.2026"},
		{input: "in 3 weeks", want: "09.11.2026"},
		{input: "in -2 days", want: "17.10.2026"},
		{input: "in 100 days", want: "27.01.2027"},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got := ParseDate(tc.input, testToday)
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestParseDateRelativeMatchesAddDate(t *testing.T) {
	got := ParseDate("in 2 days", testToday)
	want := testToday.AddDate(0, 0, 2).Format(DateLayout)
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestParseDateWeekNumber(t *testing.T) {
	// January 1, 2026 is a Thursday, so week 1 starts Monday 29.12.2025.
	cases := []struct {
		input string
		want  string
	}{
		{input: "week 1", want: "29.12.2025"},
		{input: "week 2", want: "05.01.2026"},
		{input: "week 21", want: "18.05.2026"},
		{input: "week 53", want: "28.12.2026"},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got := ParseDate(tc.input, testToday)
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestWeekStart(t *testing.T) {
	cases := []struct {
		name string
		year int
		week int
		want string
	}{
		{name: "monday start", year: 2024, week: 1, want: "01.01.2024"},
		{name: "wednesday start", year: 2025, week: 1, want: "30.12.2024"},
		{name: "thursday start", year: 2026, week: 21, want: "18.05.2026"},
		// January 1, 2027 is a Friday: 7-5 days later lands on Sunday 03.01.
		{name: "friday start", year: 2027, week: 1, want: "03.01.2027"},
		{name: "friday start later week", year: 2027, week: 10, want: "07.03.2027"},
		{name: "sunday start", year: 2023, week: 1, want: "01.01.2023"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := WeekStart(tc.year, tc.week, time.UTC).Format(DateLayout)
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestParseDateAbsolute(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "12.04.2024", want: "12.04.2024"},
		{input: "2.4.25", want: "02.04.2025"},
		{input: "1.07.2024", want: "01.07.2024"},
		{input: "31.12.99", want: "31.12.1999"},
		{input: "29.02.2028", want: "29.02.2028"},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got := ParseDate(tc.input, testToday)
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestParseDateNextOccurrence(t *testing.T) {
	cases := []struct {
		name  string
		input string
		today time.Time
		want  string
	}{
		{
			name:  "already passed this year",
			input: "02.3",
			today: testToday,
			want:  "02.03.2027",
		},
		{
			name:  "still ahead this year",
			input: "02.3",
			today: time.Date(2026, time.February, 10, 9, 0, 0, 0, time.UTC),
			want:  "02.03.2026",
		},
		{
			name:  "today counts",
			input: "19.10",
			today: testToday,
			want:  "19.10.2026",
		},
		{
			name:  "yesterday rolls over",
			input: "18.10",
			today: testToday,
			want:  "18.10.2027",
		},
		{
			name:  "leap day waits for a leap year",
			input: "29.02",
			today: testToday,
			want:  "29.02.2028",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseDate(tc.input, tc.today)
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestParseDateFallsBackToInput(t *testing.T) {
	cases := []string{
		"",
		"invalid",
		"some random text",
		"in two days",
		"in 2 fortnights",
		"week",
		"week -1",
		"31.04.2026",
		"32.01",
		"12.13",
		"12.04.202",
		"12.04.2024.1",
		"friday",
	}

	for _, input := range cases {
		t.Run(input, func(t *testing.T) {
			got := ParseDate(input, testToday)
			if got != input {
				t.Fatalf("expected %q to pass through, got %q", input, got)
			}
		})
	}
}

func TestParseDateIsStableOnCanonicalOutput(t *testing.T) {
	inputs := []string{"today", "tomorrow", "next week", "in 5 days", "week 21", "2.4.25", "02.3", "nonsense"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			once := ParseDate(input, testToday)
			twice := ParseDate(once, testToday)
			if once != twice {
				t.Fatalf("expected %q to be stable, got %q", once, twice)
			}
		})
	}
}

func TestParseCanonical(t *testing.T) {
	got, ok := ParseCanonical("20.10.2026", "18:05", time.UTC)
	if !ok {
		t.Fatalf("expected canonical date to parse")
	}
	want := time.Date(2026, time.October, 20, 18, 5, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}

	got, ok = ParseCanonical("20.10.2026", "soon", time.UTC)
	if !ok {
		t.Fatalf("expected date without time to parse")
	}
	if !got.Equal(time.Date(2026, time.October, 20, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected midnight, got %s", got)
	}

	if _, ok := ParseCanonical("next tuesday", "12:00", time.UTC); ok {
		t.Fatalf("expected verbatim date to be rejected")
	}
}
