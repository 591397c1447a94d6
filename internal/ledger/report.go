package ledger

import (
	"sort"
	"time"

	"github.com/mhsvai/amar-khata-by-mhshahin/internal/model"
)

// RangeKind selects how FilterByRange bounds the report window.
type RangeKind int

const (
	RangeWeek   RangeKind = iota // trailing 7 days up to today
	RangeMonth                   // the current calendar month
	RangeCustom                  // inclusive [Start, End] date interval
)

// Range describes a report window. Start/End are YYYY-MM-DD and only used
// for RangeCustom.
type Range struct {
	Kind  RangeKind
	Start string
	End   string
}

// FilterByRange returns the transactions whose date falls inside the range,
// optionally restricted to a single category (empty means all). today anchors
// the week and month windows.
func FilterByRange(transactions []model.Transaction, r Range, today, category string) []model.Transaction {
	weekStart := ""
	if r.Kind == RangeWeek {
		weekStart = addDays(today, -6)
	}

	var result []model.Transaction
	for _, tr := range transactions {
		if category != "" && tr.Category != category {
			continue
		}
		switch r.Kind {
		case RangeWeek:
			if tr.Date < weekStart || tr.Date > today {
				continue
			}
		case RangeMonth:
			if monthOf(tr.Date) != monthOf(today) {
				continue
			}
		case RangeCustom:
			if tr.Date < r.Start || tr.Date > r.End {
				continue
			}
		}
		result = append(result, tr)
	}
	return result
}

// ChartPoint is one income/expense bar in a report chart. Key is a full date
// for daily charts or a YYYY-MM month otherwise.
type ChartPoint struct {
	Key     string
	Income  float64
	Expense float64
}

// BucketForChart groups the (already range-filtered) transactions into chart
// points, sorted ascending by key.
func BucketForChart(transactions []model.Transaction, daily bool) []ChartPoint {
	groups := make(map[string]*ChartPoint)
	for _, tr := range transactions {
		key := tr.Date
		if !daily {
			key = monthOf(tr.Date)
		}
		cp, ok := groups[key]
		if !ok {
			cp = &ChartPoint{Key: key}
			groups[key] = cp
		}
		if tr.Type == model.TypeIncome {
			cp.Income += tr.Amount
		} else {
			cp.Expense += tr.Amount
		}
	}

	points := make([]ChartPoint, 0, len(groups))
	for _, cp := range groups {
		points = append(points, *cp)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Key < points[j].Key
	})
	return points
}

// CategoryTotal is one slice of the expense breakdown.
type CategoryTotal struct {
	Category string
	Amount   float64
}

// CategoryBreakdown sums expense amounts per category over the filtered
// transactions, largest first. Income entries are ignored.
func CategoryBreakdown(transactions []model.Transaction) []CategoryTotal {
	sums := make(map[string]float64)
	for _, tr := range transactions {
		if tr.Type != model.TypeExpense {
			continue
		}
		sums[tr.Category] += tr.Amount
	}

	result := make([]CategoryTotal, 0, len(sums))
	for cat, amount := range sums {
		result = append(result, CategoryTotal{Category: cat, Amount: amount})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Amount != result[j].Amount {
			return result[i].Amount > result[j].Amount
		}
		return result[i].Category < result[j].Category
	})
	return result
}

// DaySpan returns the number of calendar days in [start, end], or 0 if either
// bound fails to parse. Report callers use it to pick daily vs monthly chart
// buckets.
func DaySpan(start, end string) int {
	s, err1 := time.Parse("2006-01-02", start)
	e, err2 := time.Parse("2006-01-02", end)
	if err1 != nil || err2 != nil {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// addDays shifts a YYYY-MM-DD date by n days. An unparseable date is
// returned unchanged.
func addDays(date string, n int) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return d.AddDate(0, 0, n).Format("2006-01-02")
}
