// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// CollectionKey names one collection of the sync snapshot. Values are the
// wire field names of the check response.
type CollectionKey string

const (
	CollectionTasks     CollectionKey = "syncTaskBean"
	CollectionProjects  CollectionKey = "projectProfiles"
	CollectionGroups    CollectionKey = "projectGroups"
	CollectionTags      CollectionKey = "tags"
	CollectionFilters   CollectionKey = "filters"
	CollectionTaskOrder CollectionKey = "syncTaskOrderBean"
	CollectionReminders CollectionKey = "remindChanges"
	CollectionInbox     CollectionKey = "inboxId"
)

// Collection carries one list-shaped snapshot collection and records
// whether the server included it in the response at all.
//
// A delta response omits every collection that did not change since the
// request's checkpoint. An omitted collection means "no change"; it must
// never be read as "now empty". The zero value is the absent state; an
// explicit JSON null or empty array decodes as present-and-empty.
type Collection[T any] struct {
	items   []T
	present bool
}

// NewCollection builds a present collection holding the given items.
func NewCollection[T any](items ...T) Collection[T] {
	if items == nil {
		items = []T{}
	}
	return Collection[T]{items: items, present: true}
}

// Present reports whether the server included the collection.
func (c Collection[T]) Present() bool {
	return c.present
}

// Items returns the payload, nil when the collection is absent. Callers
// deciding between "unchanged" and "empty" must check Present first.
func (c Collection[T]) Items() []T {
	return c.items
}

// Len returns the payload size, 0 when absent.
func (c Collection[T]) Len() int {
	return len(c.items)
}

// UnmarshalJSON decodes the wire payload. It is only invoked when the field
// exists in the response, so its mere execution marks the collection
// present.
func (c *Collection[T]) UnmarshalJSON(data []byte) error {
	c.present = true
	c.items = []T{}
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	return json.Unmarshal(data, &c.items)
}

// MarshalJSON renders the payload as a plain array. Absence cannot be
// expressed by a value; producers omit the field instead.
func (c Collection[T]) MarshalJSON() ([]byte, error) {
	if c.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.items)
}

// fill marks an absent collection present-and-empty. Reserved for the
// full-sync normalization path.
func (c *Collection[T]) fill() {
	if !c.present {
		c.present = true
		c.items = []T{}
	}
}

// TaskSet is the task collection of a snapshot, already split by the server
// into change classes. Empty is the server's own "nothing here" marker.
type TaskSet struct {
	Update    []Task    `json:"update,omitempty"`
	TagUpdate []Task    `json:"tagUpdate,omitempty"`
	Delete    []TaskKey `json:"delete,omitempty"`
	Add       []Task    `json:"add,omitempty"`
	Empty     bool      `json:"empty,omitempty"`
}

// All returns every live task of the set (added, updated, and re-tagged).
func (s *TaskSet) All() []Task {
	if s == nil {
		return nil
	}
	out := make([]Task, 0, len(s.Add)+len(s.Update)+len(s.TagUpdate))
	out = append(out, s.Add...)
	out = append(out, s.Update...)
	out = append(out, s.TagUpdate...)
	return out
}

// TaskOrder is the order-metadata collection. The SDK does not interpret
// its sections; they pass through opaquely.
type TaskOrder struct {
	OrderByDate     json.RawMessage `json:"taskOrderByDate,omitempty"`
	OrderByPriority json.RawMessage `json:"taskOrderByPriority,omitempty"`
	OrderByProject  json.RawMessage `json:"taskOrderByProject,omitempty"`
}

// RemindChange entries pass through undecoded.
type RemindChange = json.RawMessage

// Snapshot is the result of one sync call: the new checkpoint plus one
// entry per collection. After a full sync every collection is present
// (possibly empty); after a delta sync any collection may be absent.
type Snapshot struct {
	Checkpoint    int64                    `json:"checkPoint"`
	Tasks         *TaskSet                 `json:"syncTaskBean,omitempty"`
	Projects      Collection[Project]      `json:"projectProfiles,omitzero"`
	Groups        Collection[ProjectGroup] `json:"projectGroups,omitzero"`
	Tags          Collection[Tag]          `json:"tags,omitzero"`
	Filters       Collection[Filter]       `json:"filters,omitzero"`
	TaskOrder     *TaskOrder               `json:"syncTaskOrderBean,omitempty"`
	RemindChanges Collection[RemindChange] `json:"remindChanges,omitzero"`
	InboxID       string                   `json:"inboxId,omitempty"`
}

// Has reports whether the response included the given collection.
func (s *Snapshot) Has(key CollectionKey) bool {
	switch key {
	case CollectionTasks:
		return s.Tasks != nil
	case CollectionProjects:
		return s.Projects.Present()
	case CollectionGroups:
		return s.Groups.Present()
	case CollectionTags:
		return s.Tags.Present()
	case CollectionFilters:
		return s.Filters.Present()
	case CollectionTaskOrder:
		return s.TaskOrder != nil
	case CollectionReminders:
		return s.RemindChanges.Present()
	case CollectionInbox:
		return s.InboxID != ""
	}
	return false
}

// FillAbsent marks every absent collection present-and-empty. Only the
// full-sync path may call it: there absence carries no information, while
// in a delta result it means "unchanged" and must be preserved.
func (s *Snapshot) FillAbsent() {
	if s.Tasks == nil {
		s.Tasks = &TaskSet{Empty: true}
	}
	if s.TaskOrder == nil {
		s.TaskOrder = &TaskOrder{}
	}
	s.Projects.fill()
	s.Groups.fill()
	s.Tags.fill()
	s.Filters.fill()
	s.RemindChanges.fill()
}
