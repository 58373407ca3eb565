package gallery

import (
	"regexp"
	"sort"
	"strconv"
	"time"

	"photoGallery/internal/models"
)

// Day is one node of the timeline: every photo that shares a display date.
type Day struct {
	Date   string         `json:"date"`
	Photos []models.Photo `json:"photos"`
}

// Matches 2024年01月02日, 2024-01-02 and 2024/1/2.
var displayDate = regexp.MustCompile(`^\s*(\d{4})\D+(\d{1,2})\D+(\d{1,2})`)

// ParseDisplayDate reads the free-form date users attach to photos.
func ParseDisplayDate(s string) (time.Time, bool) {
	m := displayDate.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day {
		return time.Time{}, false
	}

	return t, true
}

// GroupByDay buckets photos by their display date. Days are ordered newest
// first; days whose date cannot be parsed come last in reverse lexical order.
// Photos keep their input order inside a day.
func GroupByDay(photos []models.Photo) []Day {
	index := make(map[string]int)
	days := make([]Day, 0)

	for _, p := range photos {
		i, ok := index[p.Date]
		if !ok {
			i = len(days)
			index[p.Date] = i
			days = append(days, Day{Date: p.Date})
		}
		days[i].Photos = append(days[i].Photos, p)
	}

	sort.SliceStable(days, func(i, j int) bool {
		ti, okI := ParseDisplayDate(days[i].Date)
		tj, okJ := ParseDisplayDate(days[j].Date)

		switch {
		case okI && okJ:
			if ti.Equal(tj) {
				return days[i].Date > days[j].Date
			}
			return ti.After(tj)
		case okI != okJ:
			return okI
		default:
			return days[i].Date > days[j].Date
		}
	})

	return days
}
