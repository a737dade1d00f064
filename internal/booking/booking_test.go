package booking

import (
	"testing"
	"time"

	"github.com/lucasribeirorsousa/desopila-api/internal/errs"
	"github.com/lucasribeirorsousa/desopila-api/internal/model"
	"github.com/stretchr/testify/require"
)

// 2024-01-01 is a Monday.
func date(t *testing.T, day string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", day)
	require.NoError(t, err)
	return parsed
}

func TestISOWeekday(t *testing.T) {
	require.Equal(t, 1, ISOWeekday(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))  // Monday
	require.Equal(t, 6, ISOWeekday(time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)))  // Saturday
	require.Equal(t, 7, ISOWeekday(time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)))  // Sunday
}

func TestQuoteDaily(t *testing.T) {
	plan := model.Plan{
		ID:       1,
		PlaceID:  10,
		PlanType: model.PlanDaily,
		Price:    100,
		WeekDays: []int{1, 2, 3, 4, 5}, // Mon..Fri
	}

	tests := []struct {
		name    string
		dates   []time.Time
		price   float64
		wantErr error
	}{
		{
			name:  "weekdays inside plan",
			dates: []time.Time{date(t, "2024-01-04"), date(t, "2024-01-05")}, // Thu, Fri
			price: 200,
		},
		{
			name:  "single day",
			dates: []time.Time{date(t, "2024-01-01")}, // Mon
			price: 100,
		},
		{
			name:  "repeated weekday charges per date",
			dates: []time.Time{date(t, "2024-01-01"), date(t, "2024-01-08")}, // two Mondays
			price: 200,
		},
		{
			name:    "weekend day rejected",
			dates:   []time.Time{date(t, "2024-01-05"), date(t, "2024-01-06")}, // Fri, Sat
			wantErr: errs.ErrDailyDaysNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := Quote(plan, 10, tt.dates)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.price, price)
		})
	}
}

func TestQuotePackage(t *testing.T) {
	plan := model.Plan{
		ID:       2,
		PlaceID:  10,
		PlanType: model.PlanPackage,
		Price:    500,
		WeekDays: []int{6, 7}, // Sat, Sun
	}

	tests := []struct {
		name    string
		dates   []time.Time
		price   float64
		wantErr error
	}{
		{
			name:  "exact weekend",
			dates: []time.Time{date(t, "2024-01-06"), date(t, "2024-01-07")}, // Sat, Sun
			price: 500,
		},
		{
			name: "flat price regardless of date count",
			dates: []time.Time{
				date(t, "2024-01-06"), date(t, "2024-01-07"),
				date(t, "2024-01-13"), date(t, "2024-01-14"),
			},
			price: 500,
		},
		{
			name:    "friday and saturday rejected",
			dates:   []time.Time{date(t, "2024-01-05"), date(t, "2024-01-06")}, // Fri, Sat
			wantErr: errs.ErrPackageDaysMismatch,
		},
		{
			name:    "partial coverage rejected",
			dates:   []time.Time{date(t, "2024-01-06")}, // Sat only
			wantErr: errs.ErrPackageDaysMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := Quote(plan, 10, tt.dates)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.price, price)
		})
	}
}

func TestQuotePlanPlaceMismatch(t *testing.T) {
	plan := model.Plan{ID: 1, PlaceID: 10, PlanType: model.PlanDaily, Price: 100, WeekDays: []int{1}}

	_, err := Quote(plan, 99, []time.Time{date(t, "2024-01-01")})
	require.ErrorIs(t, err, errs.ErrPlanPlaceMismatch)
}

func TestQuoteEmptyWeekDays(t *testing.T) {
	plan := model.Plan{ID: 1, PlaceID: 10, PlanType: model.PlanDaily, Price: 100}

	_, err := Quote(plan, 10, []time.Time{date(t, "2024-01-01")})
	require.ErrorIs(t, err, errs.ErrEmptyWeekDays)
}

func TestQuoteAmendment(t *testing.T) {
	plan := model.Plan{ID: 1, PlaceID: 10, PlanType: model.PlanDaily, Price: 100, WeekDays: []int{1, 2}}

	order := model.EventOrder{ID: 5, PlaceID: 10, Status: model.OrderOpen, PlanType: model.PlanDaily}
	price, err := QuoteAmendment(order, plan, []time.Time{date(t, "2024-01-01"), date(t, "2024-01-02")})
	require.NoError(t, err)
	require.Equal(t, 200.0, price)

	accepted := order
	accepted.Status = model.OrderAccepted
	_, err = QuoteAmendment(accepted, plan, []time.Time{date(t, "2024-01-01")})
	require.ErrorIs(t, err, errs.ErrOrderNotOpen)

	packagePlan := plan
	packagePlan.PlanType = model.PlanPackage
	_, err = QuoteAmendment(order, packagePlan, []time.Time{date(t, "2024-01-01")})
	require.ErrorIs(t, err, errs.ErrPlanTypeMismatch)
}

func TestParseDates(t *testing.T) {
	ts := date(t, "2024-01-06").Unix()
	dates := ParseDates([]int64{ts})
	require.Len(t, dates, 1)
	require.Equal(t, 6, ISOWeekday(dates[0]))
}
