// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-tick-sdk/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	highStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	medStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	lowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)

func renderPriority(p int) string {
	switch p {
	case models.PriorityHigh:
		return highStyle.Render("!!!")
	case models.PriorityMedium:
		return medStyle.Render("!! ")
	case models.PriorityLow:
		return lowStyle.Render("!  ")
	}
	return "   "
}

func renderTask(t models.Task, projectNames map[string]string) string {
	var b strings.Builder

	mark := "[ ]"
	if t.Completed() {
		mark = okStyle.Render("[x]")
	}
	b.WriteString(fmt.Sprintf("%s %s %s", mark, renderPriority(t.Priority), t.Title))

	var meta []string
	if name := projectNames[t.ProjectID]; name != "" {
		meta = append(meta, "#"+name)
	}
	for _, tag := range t.Tags {
		meta = append(meta, "@"+tag)
	}
	if t.DueDate != nil {
		meta = append(meta, "due "+t.DueDate.Format("2006-01-02"))
	}
	meta = append(meta, t.ID)
	b.WriteString("  " + faintStyle.Render(strings.Join(meta, "  ")))

	return b.String()
}

func renderTaskList(tasks []models.Task, projectNames map[string]string) string {
	if len(tasks) == 0 {
		return faintStyle.Render("no tasks")
	}
	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		lines = append(lines, renderTask(t, projectNames))
	}
	return strings.Join(lines, "\n")
}

func renderProjectList(projects []models.Project) string {
	if len(projects) == 0 {
		return faintStyle.Render("no projects")
	}
	lines := make([]string, 0, len(projects))
	for _, p := range projects {
		name := p.Name
		if p.Archived() {
			name = faintStyle.Render(name + " (archived)")
		} else {
			name = titleStyle.Render(name)
		}
		lines = append(lines, fmt.Sprintf("%s  %s", name, faintStyle.Render(p.ID)))
	}
	return strings.Join(lines, "\n")
}

func renderTagList(tags []models.Tag) string {
	if len(tags) == 0 {
		return faintStyle.Render("no tags")
	}
	lines := make([]string, 0, len(tags))
	for _, t := range tags {
		indent := strings.Repeat("  ", strings.Count(t.Name, models.TagSeparator))
		lines = append(lines, indent+"@"+t.Name)
	}
	return strings.Join(lines, "\n")
}

func renderHabitList(habits []models.Habit) string {
	if len(habits) == 0 {
		return faintStyle.Render("no habits")
	}
	lines := make([]string, 0, len(habits))
	for _, h := range habits {
		name := titleStyle.Render(h.Name)
		if h.Status == models.HabitArchived {
			name = faintStyle.Render(h.Name + " (archived)")
		}
		lines = append(lines, fmt.Sprintf("%s  %s", name, faintStyle.Render(h.ID)))
	}
	return strings.Join(lines, "\n")
}
