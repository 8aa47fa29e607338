//go:build unit

package scheduling_test

import (
	"testing"
	"time"

	"tutor-scheduling/internal/domain/scheduling"
	"tutor-scheduling/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableSlots(t *testing.T) {
	w := builder.NewWindowBuilder().Between(at(9, 0), at(12, 0)).BuildDomain()
	b := builder.NewBookingBuilder().ForSlot(w.ID, 1).BuildDomain()
	slots := scheduling.Reconcile(scheduling.Generate(w), []scheduling.Booking{b}).Slots

	t.Run("booked and started slots are dropped", func(t *testing.T) {
		got := scheduling.AvailableSlots(slots, at(9, 0))

		require.Len(t, got, 1)
		assert.Equal(t, 2, got[0].Ordinal)
	})

	t.Run("lead time narrows bookable slots", func(t *testing.T) {
		free := scheduling.Generate(w)

		assert.Len(t, scheduling.BookableSlots(free, at(8, 0), time.Hour), 2)
		assert.Len(t, scheduling.BookableSlots(free, at(7, 59), time.Hour), 3)
		assert.Len(t, scheduling.BookableSlots(free, at(8, 0), 0), 3)
	})

	t.Run("advancing now never grows the result", func(t *testing.T) {
		free := scheduling.Generate(w)
		prev := len(free) + 1
		for now := at(7, 0); now.Before(at(13, 0)); now = now.Add(10 * time.Minute) {
			n := len(scheduling.AvailableSlots(free, now))
			assert.LessOrEqual(t, n, prev, now.String())
			prev = n
		}
		assert.Zero(t, prev)
	})
}

func TestGroupByDate(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// 14:00-17:00 UTC crosses midnight in Tokyo (23:00-02:00 JST)
	w := builder.NewWindowBuilder().Between(at(14, 0), at(17, 0)).BuildDomain()
	slots := scheduling.Generate(w)

	t.Run("dates follow the requested zone", func(t *testing.T) {
		groups := scheduling.GroupByDate(slots, tokyo)
		keys := scheduling.SortedDateKeys(groups)

		require.Len(t, keys, 2)
		assert.Equal(t, scheduling.DateKey("2030-01-07"), keys[0])
		assert.Equal(t, scheduling.DateKey("2030-01-08"), keys[1])
		assert.Len(t, groups[keys[0]], 1)
		assert.Len(t, groups[keys[1]], 2)
	})

	t.Run("nil zone means UTC", func(t *testing.T) {
		groups := scheduling.GroupByDate(slots, nil)

		require.Len(t, groups, 1)
		assert.Len(t, groups["2030-01-07"], 3)
	})

	t.Run("slots within a day are in start order", func(t *testing.T) {
		other := builder.NewWindowBuilder().Between(at(15, 30), at(16, 30)).BuildDomain()
		mixed := append(scheduling.Generate(other), slots...)

		day := scheduling.GroupByDate(mixed, nil)["2030-01-07"]
		for i := 1; i < len(day); i++ {
			assert.False(t, day[i].Start.Before(day[i-1].Start))
		}
	})
}

func TestFindRuns(t *testing.T) {
	w := builder.NewWindowBuilder().Between(at(9, 0), at(12, 0)).BuildDomain()
	slots := scheduling.Generate(w)

	t.Run("lead time excludes runs starting at the first slot", func(t *testing.T) {
		bookable := scheduling.BookableSlots(slots, at(8, 0), time.Hour)

		runs := scheduling.FindRuns(bookable, 2)

		require.Len(t, runs, 1)
		assert.Equal(t, []time.Time{at(10, 0), at(11, 0)}, []time.Time{runs[0][0].Start, runs[0][1].Start})
	})

	t.Run("overlapping runs are all reported", func(t *testing.T) {
		runs := scheduling.FindRuns(slots, 2)

		require.Len(t, runs, 2)
		assert.Equal(t, 0, runs[0][0].Ordinal)
		assert.Equal(t, 1, runs[1][0].Ordinal)
	})

	t.Run("a booked slot breaks the run", func(t *testing.T) {
		b := builder.NewBookingBuilder().ForSlot(w.ID, 1).BuildDomain()
		free := scheduling.AvailableSlots(scheduling.Reconcile(slots, []scheduling.Booking{b}).Slots, at(8, 0))

		assert.Empty(t, scheduling.FindRuns(free, 2))
		assert.Len(t, scheduling.FindRuns(free, 1), 2)
	})

	t.Run("small gaps within tolerance still count as contiguous", func(t *testing.T) {
		a := builder.NewWindowBuilder().Between(at(9, 0), at(10, 0)).BuildDomain()
		near := builder.NewWindowBuilder().Between(at(10, 0).Add(scheduling.ContiguityTolerance), at(11, 0)).BuildDomain()
		far := builder.NewWindowBuilder().Between(at(11, 2), at(12, 0)).BuildDomain()

		runs := scheduling.FindRuns(scheduling.GenerateMany([]scheduling.TimeWindow{far, near, a}), 2)

		require.Len(t, runs, 1)
		assert.Equal(t, a.ID, runs[0][0].WindowID)
		assert.Equal(t, near.ID, runs[0][1].WindowID)
	})

	t.Run("every run has count contiguous members", func(t *testing.T) {
		long := scheduling.Generate(builder.NewWindowBuilder().Lasting(8 * time.Hour).BuildDomain())
		for count := 1; count <= 8; count++ {
			runs := scheduling.FindRuns(long, count)
			assert.Len(t, runs, 8-count+1)
			for _, run := range runs {
				require.Len(t, run, count)
				for i := 1; i < len(run); i++ {
					assert.True(t, scheduling.Adjacent(run[i-1], run[i]))
				}
			}
		}
	})

	t.Run("out of range count yields nothing", func(t *testing.T) {
		assert.Nil(t, scheduling.FindRuns(slots, 0))
		assert.Nil(t, scheduling.FindRuns(slots, -1))
		assert.Nil(t, scheduling.FindRuns(slots, 4))
	})
}
