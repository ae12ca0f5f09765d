// Package testutil provides testing utilities.
package testutil

import (
	"stacked/internal/task"
)

// FakeStore is an in-memory tasklist.Store that records every save.
type FakeStore struct {
	// SaveCalls counts Save invocations.
	SaveCalls int

	// Saved is the task slice from the most recent save.
	Saved []task.Task

	// SaveErr, when set, is returned by every Save.
	SaveErr error
}

// Save implements tasklist.Store.
func (f *FakeStore) Save(tasks []task.Task) error {
	f.SaveCalls++
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.Saved = append([]task.Task(nil), tasks...)
	return nil
}
