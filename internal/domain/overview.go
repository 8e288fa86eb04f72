package domain

import "time"

// UpcomingLesson is one scheduled lesson in the overview window.
type UpcomingLesson struct {
	ClientID    string
	ClientName  string
	PackageID   string
	PackageName string
	BookingID   string
	DateKey     string
	Start       time.Time
	Hours       float64
	Pending     bool
}

type LowHoursPackage struct {
	ClientID       string
	ClientName     string
	PackageID      string
	PackageName    string
	RemainingHours float64
	BookableHours  float64
}

type Overview struct {
	GeneratedAt time.Time
	Upcoming    []UpcomingLesson
	LowHours    []LowHoursPackage
}

// PendingRequest is an unresolved request together with the lesson it
// refers to.
type PendingRequest struct {
	ClientID    string
	ClientName  string
	PackageID   string
	PackageName string
	BookingID   string
	DateKey     string
	LessonStart time.Time
	Hours       float64
	Request     Request
}

// SweepReport summarises one reconciliation cycle.
type SweepReport struct {
	Clients   int
	Packages  int
	Completed int
	Updated   int
	Failed    int
}
