package gallery_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"photoGallery/internal/gallery"
	"photoGallery/internal/models"
)

func TestParseDisplayDate(t *testing.T) {
	tests := []struct {
		in     string
		want   time.Time
		wantOK bool
	}{
		{in: "2024-01-02", want: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), wantOK: true},
		{in: "2024/1/2", want: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), wantOK: true},
		{in: "2024年01月02日", want: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), wantOK: true},
		{in: " 2023.12.31 evening", want: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), wantOK: true},
		{in: "2023-02-30"},
		{in: "2023-13-01"},
		{in: "summer"},
		{in: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := gallery.ParseDisplayDate(tt.in)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.True(t, tt.want.Equal(got))
			}
		})
	}
}

func TestGroupByDay(t *testing.T) {
	photos := []models.Photo{
		{ID: 5, Date: "2024-01-02"},
		{ID: 4, Date: "summer"},
		{ID: 3, Date: "2024-03-01"},
		{ID: 2, Date: "2024-01-02"},
		{ID: 1, Date: "autumn"},
	}

	days := gallery.GroupByDay(photos)

	var dates []string
	for _, d := range days {
		dates = append(dates, d.Date)
	}
	require.Equal(t, []string{"2024-03-01", "2024-01-02", "summer", "autumn"}, dates)

	require.Len(t, days[1].Photos, 2)
	require.Equal(t, int64(5), days[1].Photos[0].ID)
	require.Equal(t, int64(2), days[1].Photos[1].ID)
}

func TestGroupByDayEmpty(t *testing.T) {
	require.Empty(t, gallery.GroupByDay(nil))
}
