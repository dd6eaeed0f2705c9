package job

import (
	"time"

	"github.com/BruksfildServices01/elite-admin/internal/models"
)

const dateLayout = "2006-01-02"

type Day struct {
	Date    string                `json:"date"`
	InMonth bool                  `json:"inMonth"`
	IsToday bool                  `json:"isToday"`
	Jobs    []models.ScheduledJob `json:"jobs"`
}

type Week struct {
	Days []Day `json:"days"`
}

type Month struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Weeks []Week `json:"weeks"`
}

// GridBounds returns the Monday starting the week of the first of the month
// and the day after the Sunday ending the week of the last of the month.
func GridBounds(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)

	start := first.AddDate(0, 0, -daysSinceMonday(first.Weekday()))
	end := last.AddDate(0, 0, 7-daysSinceMonday(last.Weekday()))

	return start, end
}

func daysSinceMonday(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// BuildMonth lays jobs out on the month grid by their calendar day in loc.
func BuildMonth(
	year int,
	month time.Month,
	loc *time.Location,
	now time.Time,
	jobs []models.ScheduledJob,
) Month {
	start, end := GridBounds(year, month, loc)
	today := now.In(loc).Format(dateLayout)

	byDay := make(map[string][]models.ScheduledJob)
	for _, j := range jobs {
		key := j.Date.In(loc).Format(dateLayout)
		byDay[key] = append(byDay[key], j)
	}

	out := Month{Year: year, Month: int(month)}

	var week Week
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateLayout)

		dayJobs := byDay[key]
		if dayJobs == nil {
			dayJobs = []models.ScheduledJob{}
		}

		week.Days = append(week.Days, Day{
			Date:    key,
			InMonth: d.Month() == month,
			IsToday: key == today,
			Jobs:    dayJobs,
		})

		if len(week.Days) == 7 {
			out.Weeks = append(out.Weeks, week)
			week = Week{}
		}
	}

	return out
}
