// Package content holds the placeholder data shown on the dashboard.
package content

import "github.com/kemilad/campusdash/internal/nav"

// Student is the signed-in user shown in the header and profile panel.
type Student struct {
	Name    string `json:"name"`
	Program string `json:"program"`
	Term    string `json:"term"`
	Email   string `json:"email"`
}

// CourseSummary is the "current course" card on the home screen.
type CourseSummary struct {
	Code        string `json:"code"`
	Title       string `json:"title"`
	Instructor  string `json:"instructor"`
	Enrolled    int    `json:"enrolled"`
	Progress    int    `json:"progress"` // percent
	NextSession string `json:"next_session"`
}

// QuickAction is one shortcut card. Target is the sidebar section it opens.
type QuickAction struct {
	Title  string          `json:"title"`
	Detail string          `json:"detail"`
	Target nav.Destination `json:"target"`
}

// Header carries the search placeholder and notification badge count.
type Header struct {
	SearchPlaceholder string `json:"search_placeholder"`
	Notifications     int    `json:"notifications"`
}

// Event is one calendar entry.
type Event struct {
	Day   string `json:"day"`
	Time  string `json:"time"`
	Title string `json:"title"`
}

// Dashboard bundles everything the renderers draw.
type Dashboard struct {
	Student      Student         `json:"student"`
	Header       Header          `json:"header"`
	Current      CourseSummary   `json:"current_course"`
	QuickActions []QuickAction   `json:"quick_actions"`
	Courses      []CourseSummary `json:"courses"`
	Events       []Event         `json:"events"`
}

// Default returns a fresh copy of the placeholder dashboard.
func Default() Dashboard {
	current := CourseSummary{
		Code:        "CS 201",
		Title:       "Data Structures",
		Instructor:  "Dr. Amelia Hart",
		Enrolled:    124,
		Progress:    78,
		NextSession: "Tue 10:00, Hall B",
	}
	return Dashboard{
		Student: Student{
			Name:    "Alex Morgan",
			Program: "BSc Computer Science",
			Term:    "Fall 2026",
			Email:   "alex.morgan@campus.edu",
		},
		Header: Header{
			SearchPlaceholder: "Search courses, notes...",
			Notifications:     3,
		},
		Current: current,
		QuickActions: []QuickAction{
			{Title: "Course notes", Detail: "1,234 notes available", Target: nav.Courses},
			{Title: "Assignments", Detail: "2 due this week", Target: nav.Courses},
			{Title: "Schedule", Detail: "4 sessions this week", Target: nav.Calendar},
			{Title: "Grades", Detail: "GPA 3.6", Target: nav.Profile},
		},
		Courses: []CourseSummary{
			current,
			{Code: "MATH 210", Title: "Linear Algebra", Instructor: "Prof. Lena Ortiz", Enrolled: 96, Progress: 64, NextSession: "Wed 13:00, Room 204"},
			{Code: "PHYS 150", Title: "Mechanics", Instructor: "Dr. Samuel Ito", Enrolled: 142, Progress: 51, NextSession: "Thu 09:00, Lab 3"},
		},
		Events: []Event{
			{Day: "Mon", Time: "14:00", Title: "Study group: Linear Algebra"},
			{Day: "Tue", Time: "10:00", Title: "CS 201 lecture"},
			{Day: "Wed", Time: "23:59", Title: "Assignment 4 due"},
			{Day: "Thu", Time: "09:00", Title: "PHYS 150 lab"},
		},
	}
}
