package models

import "encoding/json"

// Habit goal types.
const (
	HabitTypeBoolean = "Boolean"
	HabitTypeReal    = "Real"
)

// Habit lifecycle statuses.
const (
	HabitActive   = 0
	HabitArchived = 1
	HabitDeleted  = 2
)

// Check-in statuses.
const (
	CheckinUnchecked = 0
	CheckinAbandoned = 1
	CheckinChecked   = 2
)

type Habit struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	IconRes         string   `json:"iconRes,omitempty"`
	Color           string   `json:"color,omitempty"`
	SortOrder       int64    `json:"sortOrder"`
	Status          int      `json:"status"`
	Encouragement   string   `json:"encouragement,omitempty"`
	TotalCheckIns   int      `json:"totalCheckIns,omitempty"`
	Type            string   `json:"type,omitempty"`
	Goal            float64  `json:"goal,omitempty"`
	Step            float64  `json:"step,omitempty"`
	Unit            string   `json:"unit,omitempty"`
	RepeatRule      string   `json:"repeatRule,omitempty"`
	Reminders       []string `json:"reminders,omitempty"`
	RecordEnable    bool     `json:"recordEnable,omitempty"`
	SectionID       string   `json:"sectionId,omitempty"`
	TargetDays      int      `json:"targetDays,omitempty"`
	TargetStartDate int      `json:"targetStartDate,omitempty"`
	CompletedCycles int      `json:"completedCycles,omitempty"`
	CreatedTime     *Time    `json:"createdTime,omitempty"`
	ModifiedTime    *Time    `json:"modifiedTime,omitempty"`
	Etag            string   `json:"etag,omitempty"`
}

// HabitCheckin is one day's record for a habit. Stamp format is YYYYMMDD.
type HabitCheckin struct {
	ID           string  `json:"id,omitempty"`
	HabitID      string  `json:"habitId"`
	Status       int     `json:"status"`
	Value        float64 `json:"value"`
	CheckinStamp string  `json:"checkinStamp"`
	CheckinTime  *Time   `json:"checkinTime,omitempty"`
	Goal         float64 `json:"goal,omitempty"`
	Etag         string  `json:"etag,omitempty"`
}

// HabitCheckinQuery asks for check-ins of the given habits, optionally
// only those after a YYYYMMDD stamp.
type HabitCheckinQuery struct {
	HabitIDs   []string `json:"habitIds"`
	AfterStamp string   `json:"afterStamp,omitempty"`
}

// HabitCheckinResult maps habit id to that habit's check-ins.
type HabitCheckinResult struct {
	Checkins map[string][]HabitCheckin `json:"checkins"`
}

// UnmarshalJSON tolerates both response shapes of the check-in query
// endpoint: a flat list of check-ins and an object keyed by habit id.
func (r *HabitCheckinResult) UnmarshalJSON(data []byte) error {
	var flat []HabitCheckin
	if err := json.Unmarshal(data, &flat); err == nil {
		r.Checkins = make(map[string][]HabitCheckin, len(flat))
		for _, c := range flat {
			r.Checkins[c.HabitID] = append(r.Checkins[c.HabitID], c)
		}
		return nil
	}

	type alias HabitCheckinResult
	return json.Unmarshal(data, (*alias)(r))
}

// Flatten returns all check-ins across habits as one slice.
func (r HabitCheckinResult) Flatten() []HabitCheckin {
	var out []HabitCheckin
	for _, per := range r.Checkins {
		out = append(out, per...)
	}
	return out
}

// HabitCheckinBatch is the body of the batch check-in endpoint.
type HabitCheckinBatch struct {
	Checkins []HabitCheckin `json:"checkins"`
}

// UnmarshalJSON tolerates the two reminder encodings the service has used
// for habits: a list of "HH:MM" strings and a list of objects.
func (h *Habit) UnmarshalJSON(data []byte) error {
	type alias Habit
	aux := struct {
		Reminders json.RawMessage `json:"reminders"`
		*alias
	}{alias: (*alias)(h)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.Reminders) == 0 {
		return nil
	}
	var asStrings []string
	if err := json.Unmarshal(aux.Reminders, &asStrings); err == nil {
		h.Reminders = asStrings
		return nil
	}
	// Object form carries the time under "time".
	var asObjects []struct {
		Time string `json:"time"`
	}
	if err := json.Unmarshal(aux.Reminders, &asObjects); err != nil {
		return err
	}
	h.Reminders = make([]string, 0, len(asObjects))
	for _, o := range asObjects {
		h.Reminders = append(h.Reminders, o.Time)
	}
	return nil
}
