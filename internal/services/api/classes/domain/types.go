// Package domain holds the class types, DTOs and ports shared by the classes layers
package domain

import "time"

// DateLayout is the wire and query format of a class date
const DateLayout = "2006-01-02"

// MsgNoSuchClass is the error text for a class id that does not resolve to exactly one row
const MsgNoSuchClass = "There is not class with that ID."

// Status is the lifecycle state of a class
type Status string

// Class statuses; Empty and Rescheduled are open
const (
	StatusEmpty       Status = "Empty"
	StatusRescheduled Status = "Rescheduled"
	StatusCompleted   Status = "Completed"
	StatusAbsent      Status = "Absent"
	StatusCancelled   Status = "Cancelled"
)

// Statuses lists every known status in display order
var Statuses = []Status{StatusEmpty, StatusRescheduled, StatusCompleted, StatusAbsent, StatusCancelled}

// Open reports whether a tutor still has to hold the class
func (s Status) Open() bool { return s == StatusEmpty || s == StatusRescheduled }

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	for _, k := range Statuses {
		if s == k {
			return true
		}
	}
	return false
}

// Class is one scheduled lesson of a course
type Class struct {
	ID       int    `json:"id" example:"42"`
	CourseID int    `json:"course_id" example:"7"`
	Status   Status `json:"status" example:"Empty"`
	Week     int    `json:"week" example:"3"`
	Date     string `json:"date" example:"2024-03-01"`
	IsPaid   bool   `json:"is_paid" example:"false"`
	Day      string `json:"day" example:"Friday"`
}

// TutorClass is a class as the tutor's schedule shows it
type TutorClass struct {
	Name    string `json:"name" example:"B2 English"`
	Student string `json:"student" example:"Ada, Lovelace"`
	Date    string `json:"date" example:"2024-03-01"`
	ID      int    `json:"id" example:"42"`
}

// EventKind names a journal entry
type EventKind string

// Journal event kinds
const (
	EventCreated       EventKind = "class.created"
	EventStatusChanged EventKind = "class.status_changed"
)

// Event is an append only record of a class change
type Event struct {
	ID       string    `json:"event_id" example:"0b6f7c4e-1c1f-4d3a-9d8e-2f1a5f2b9c10"`
	Kind     EventKind `json:"kind" example:"class.created"`
	ClassID  int       `json:"class_id" example:"42"`
	CourseID int       `json:"course_id" example:"7"`
	Status   Status    `json:"status" example:"Empty"`
	Actor    string    `json:"actor,omitempty" example:"tutorbot"`
	At       time.Time `json:"at" example:"2024-03-01T10:00:00Z"`
}
