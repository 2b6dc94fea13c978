// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserProfile is the account identity returned by the profile endpoint.
// Unrecognized fields are dropped; the SDK only interprets the identity
// core.
type UserProfile struct {
	Username    string `json:"username"`
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Picture     string `json:"picture,omitempty"`
	Locale      string `json:"locale,omitempty"`
	UserCode    string `json:"userCode,omitempty"`
	VerEmail    bool   `json:"verEmail,omitempty"`
	FakedEmail  bool   `json:"fakedEmail,omitempty"`
}

// UserStatus carries subscription and identity state.
type UserStatus struct {
	UserID         string `json:"userId"`
	Username       string `json:"username"`
	InboxID        string `json:"inboxId,omitempty"`
	Pro            bool   `json:"pro"`
	ProStartDate   *Time  `json:"proStartDate,omitempty"`
	ProEndDate     *Time  `json:"proEndDate,omitempty"`
	SubscribeType  string `json:"subscribeType,omitempty"`
	NeedSubscribe  bool   `json:"needSubscribe,omitempty"`
	TeamUser       bool   `json:"teamUser,omitempty"`
	ActiveTeamUser bool   `json:"activeTeamUser,omitempty"`
	FreeTrial      bool   `json:"freeTrial,omitempty"`
	GracePeriod    bool   `json:"gracePeriod,omitempty"`
}

// UserSettings mirrors the fields of the preference blob this SDK surfaces.
type UserSettings struct {
	TimeZone      string `json:"timeZone,omitempty"`
	Locale        string `json:"locale,omitempty"`
	StartOfWeek   int    `json:"weekStart,omitempty"`
	DailyReminder string `json:"dailyReminder,omitempty"`
}

// UserLimits reports account quota ceilings.
type UserLimits struct {
	ProjectNumber    int `json:"projectNumber,omitempty"`
	ProjectTaskCount int `json:"projectTaskNumber,omitempty"`
	SubtaskNumber    int `json:"subtaskNumber,omitempty"`
	HabitNumber      int `json:"habitNumber,omitempty"`
	KanbanNumber     int `json:"kanbanNumber,omitempty"`
	ReminderNumber   int `json:"reminderNumber,omitempty"`
}
