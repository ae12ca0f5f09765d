package task_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stacked/internal/task"
)

func TestNewToDo(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		td, err := task.NewToDo("read book")
		require.NoError(t, err)
		assert.Equal(t, task.KindToDo, td.Kind)
		assert.Equal(t, "read book", td.Description)
		assert.False(t, td.Done)
	})

	t.Run("blank rejected", func(t *testing.T) {
		_, err := task.NewToDo("   ")
		assert.ErrorIs(t, err, task.ErrEmptyDescription)
	})

	t.Run("empty rejected", func(t *testing.T) {
		_, err := task.NewToDo("")
		assert.ErrorIs(t, err, task.ErrEmptyDescription)
	})

	t.Run("surrounding spaces kept", func(t *testing.T) {
		// Validated non-blank-after-trim, stored raw.
		td, err := task.NewToDo("  x  ")
		require.NoError(t, err)
		assert.Equal(t, "  x  ", td.Description)
	})
}

func TestNewDeadline(t *testing.T) {
	t.Run("date only defaults to 2359", func(t *testing.T) {
		d, err := task.NewDeadline("submit", "2025-12-01")
		require.NoError(t, err)
		assert.Equal(t, "2025-12-1 2359", d.By.Storage())
	})

	t.Run("date and time", func(t *testing.T) {
		d, err := task.NewDeadline("submit", "2025-12-01 1800")
		require.NoError(t, err)
		assert.Equal(t, "2025-12-1 1800", d.By.Storage())
	})

	t.Run("blank date rejected", func(t *testing.T) {
		_, err := task.NewDeadline("submit", " ")
		assert.ErrorIs(t, err, task.ErrEmptyDescription)
	})

	t.Run("garbage date rejected", func(t *testing.T) {
		_, err := task.NewDeadline("submit", "next tuesday")
		assert.ErrorIs(t, err, task.ErrInvalidDateFormat)
	})
}

func TestNewEvent(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		e, err := task.NewEvent("mtg", "2025-12-10 1400", "2025-12-10 1600")
		require.NoError(t, err)
		assert.Equal(t, "2025-12-10 1400", e.From.Storage())
		assert.Equal(t, "2025-12-10 1600", e.To.Storage())
	})

	t.Run("date only rejected", func(t *testing.T) {
		_, err := task.NewEvent("mtg", "2025-12-10", "2025-12-10 1600")
		assert.ErrorIs(t, err, task.ErrTimeRequired)
	})

	t.Run("blank boundary rejected", func(t *testing.T) {
		_, err := task.NewEvent("mtg", "2025-12-10 1400", "")
		assert.ErrorIs(t, err, task.ErrEmptyDescription)
	})

	t.Run("from after to allowed", func(t *testing.T) {
		// No ordering invariant between the boundaries.
		e, err := task.NewEvent("mtg", "2025-12-10 1600", "2025-12-10 1400")
		require.NoError(t, err)
		assert.True(t, e.To.Before(e.From.Time))
	})
}

func TestMarkUnmarkIdempotent(t *testing.T) {
	td, err := task.NewToDo("x")
	require.NoError(t, err)

	td.MarkDone()
	td.MarkDone()
	assert.True(t, td.Done)

	td.UnmarkDone()
	td.UnmarkDone()
	assert.False(t, td.Done)
}

func TestRender(t *testing.T) {
	t.Run("todo pending", func(t *testing.T) {
		td, _ := task.NewToDo("read book")
		assert.Equal(t, "[T][]read book", td.String())
	})

	t.Run("todo done", func(t *testing.T) {
		td, _ := task.NewToDo("read book")
		td.MarkDone()
		assert.Equal(t, "[T][X]read book", td.String())
	})

	t.Run("deadline", func(t *testing.T) {
		d, _ := task.NewDeadline("submit", "2025-12-01")
		assert.Equal(t, "[D][]submit (by: Dec 01 2025 11:59pm)", d.String())
	})

	t.Run("event", func(t *testing.T) {
		e, _ := task.NewEvent("mtg", "2025-12-10 1400", "2025-12-10 1600")
		assert.Equal(t, "[E][]mtg (from: Dec 10 2025 2:00pm to: Dec 10 2025 4:00pm)", e.String())
	})
}

func TestParseDeadlineTime(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string // storage form, "" means error
		wantErr error
	}{
		{name: "bare date", in: "2025-12-01", want: "2025-12-1 2359"},
		{name: "unpadded date", in: "2025-1-5", want: "2025-1-5 2359"},
		{name: "date and time", in: "2025-12-01 0930", want: "2025-12-1 0930"},
		{name: "surrounding spaces", in: "  2025-12-01 0930  ", want: "2025-12-1 0930"},
		{name: "three digit time is a date error", in: "2025-12-01 930", wantErr: task.ErrInvalidDateFormat},
		{name: "impossible date", in: "2025-02-30", wantErr: task.ErrInvalidDateFormat},
		{name: "impossible time", in: "2025-12-01 2561", wantErr: task.ErrInvalidDateFormat},
		{name: "words", in: "tomorrow", wantErr: task.ErrInvalidDateFormat},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := task.ParseDeadlineTime(tc.in)
			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Storage())
		})
	}
}

func TestParseEventTime(t *testing.T) {
	t.Run("requires a time of day", func(t *testing.T) {
		_, err := task.ParseEventTime("2025-12-10")
		assert.ErrorIs(t, err, task.ErrTimeRequired)
	})

	t.Run("date and time", func(t *testing.T) {
		got, err := task.ParseEventTime("2025-12-10 1400")
		require.NoError(t, err)
		assert.Equal(t, "2025-12-10 1400", got.Storage())
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := task.ParseEventTime("soon")
		assert.ErrorIs(t, err, task.ErrInvalidDateFormat)
	})
}

func TestStorageRoundTrip(t *testing.T) {
	orig, err := task.ParseEventTime("2025-12-10 0005")
	require.NoError(t, err)

	back, err := task.ParseStorageTime(orig.Storage())
	require.NoError(t, err)
	assert.True(t, back.Equal(orig.Time))
}
