package dashboard_stats

import (
	"time"

	"github.com/git-senpai/fashion-sub001/models"
)

// monthWindowSize is the number of trailing calendar months on the dashboard
// charts, current month included.
const monthWindowSize = 6

var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// monthWindow returns the first day of each of the trailing six calendar
// months ending at now, oldest first.
func monthWindow(now time.Time) []time.Time {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(monthWindowSize - 1), 0)
	months := make([]time.Time, monthWindowSize)
	for i := range months {
		months[i] = start.AddDate(0, i, 0)
	}
	return months
}

func sameMonth(t, bucket time.Time) bool {
	return t.Year() == bucket.Year() && t.Month() == bucket.Month()
}

// monthLabel is the short chart label. Labels repeat across year rollovers
// within the window; the charts only ever show the trailing six months, so
// the year is omitted.
func monthLabel(t time.Time) string {
	return monthNames[int(t.Month())-1]
}

// revenueByMonth buckets order totals into the trailing six calendar months.
// Months with no orders report 0; the result always has six entries.
func revenueByMonth(orders []models.OrderWithItems, now time.Time) []models.MonthlyRevenue {
	window := monthWindow(now)
	series := make([]models.MonthlyRevenue, monthWindowSize)
	for i, bucket := range window {
		series[i] = models.MonthlyRevenue{Month: monthLabel(bucket)}
	}
	for _, o := range orders {
		for i, bucket := range window {
			if sameMonth(o.CreatedAt, bucket) {
				series[i].Revenue += o.TotalPrice
				break
			}
		}
	}
	return series
}

// userGrowthByMonth counts signups per trailing calendar month. Months with
// no signups report 0; the result always has six entries.
func userGrowthByMonth(users []models.User, now time.Time) []models.MonthlyUserGrowth {
	window := monthWindow(now)
	series := make([]models.MonthlyUserGrowth, monthWindowSize)
	for i, bucket := range window {
		series[i] = models.MonthlyUserGrowth{Month: monthLabel(bucket)}
	}
	for _, u := range users {
		for i, bucket := range window {
			if sameMonth(u.CreatedAt, bucket) {
				series[i].NewUsers++
				break
			}
		}
	}
	return series
}
