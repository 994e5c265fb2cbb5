package analytics

import (
	"sort"
	"time"

	"github.com/tbourn/platform-dashboard/internal/domain"
)

// DefaultWindow is the trailing window of reviews shown on the heat-map.
const DefaultWindow = 30 * 24 * time.Hour

// DayLayout formats heat-map day columns.
const DayLayout = "2006-01-02"

// HeatmapOptions controls review bucketing. Zero values fall back to
// time.Now, DefaultWindow and time.Local.
type HeatmapOptions struct {
	Now      time.Time
	Window   time.Duration
	Location *time.Location
}

func (o HeatmapOptions) withDefaults() HeatmapOptions {
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	if o.Window <= 0 {
		o.Window = DefaultWindow
	}
	if o.Location == nil {
		o.Location = time.Local
	}
	return o
}

// Since returns the inclusive lower bound of the review window.
func (o HeatmapOptions) Since() time.Time {
	o = o.withDefaults()
	return o.Now.Add(-o.Window)
}

// Heatmap is a dense platform × day grid of mean ratings. Cells[i][j] is the
// mean for Platforms[i] on Days[j]; days without reviews hold 0.
type Heatmap struct {
	Platforms []string    `json:"platforms"`
	Days      []string    `json:"days"`
	Cells     [][]float64 `json:"cells"`
}

// Cell returns the mean rating for (platform, day), or false if either is not
// part of the grid.
func (h Heatmap) Cell(platform, day string) (float64, bool) {
	row, col := indexOf(h.Platforms, platform), indexOf(h.Days, day)
	if row < 0 || col < 0 {
		return 0, false
	}
	return h.Cells[row][col], true
}

// BuildHeatmap keeps reviews created at or after Now-Window, groups them by
// platform and local calendar day, and averages each group. Rows follow the
// order platforms are first seen in reviews; day columns ascend.
//
// When no review falls inside the window it returns an empty Heatmap and
// false, so callers can tell "no data" apart from a grid of zeros.
func BuildHeatmap(reviews []domain.Review, opts HeatmapOptions) (Heatmap, bool) {
	opts = opts.withDefaults()
	since := opts.Now.Add(-opts.Window)

	type bucket struct {
		sum   float64
		count int
	}
	var (
		platforms []string
		rowOf     = make(map[string]int)
		daySet    = make(map[string]struct{})
		buckets   = make(map[[2]string]*bucket)
	)
	for _, r := range reviews {
		if r.CreatedAt.Before(since) {
			continue
		}
		name := r.PlatformName()
		if _, ok := rowOf[name]; !ok {
			rowOf[name] = len(platforms)
			platforms = append(platforms, name)
		}
		day := r.CreatedAt.In(opts.Location).Format(DayLayout)
		daySet[day] = struct{}{}

		k := [2]string{name, day}
		b := buckets[k]
		if b == nil {
			b = &bucket{}
			buckets[k] = b
		}
		b.sum += float64(r.Rating)
		b.count++
	}
	if len(platforms) == 0 {
		return Heatmap{Platforms: []string{}, Days: []string{}, Cells: [][]float64{}}, false
	}

	days := make([]string, 0, len(daySet))
	for d := range daySet {
		days = append(days, d)
	}
	sort.Strings(days)

	cells := make([][]float64, len(platforms))
	for i, name := range platforms {
		row := make([]float64, len(days))
		for j, d := range days {
			if b := buckets[[2]string{name, d}]; b != nil {
				row[j] = b.sum / float64(b.count)
			}
		}
		cells[i] = row
	}
	return Heatmap{Platforms: platforms, Days: days, Cells: cells}, true
}
