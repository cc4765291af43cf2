package api

import "encoding/json"

// --- Users & sessions ---

// UserType discriminates the account roles returned by the backend.
type UserType string

const (
	UserJobseeker  UserType = "jobseeker"
	UserEmployer   UserType = "employer"
	UserAdmin      UserType = "admin"
	UserSuperadmin UserType = "superadmin"
)

// User is the account record returned by /auth/me and the auth endpoints.
type User struct {
	ID        string         `json:"id"`
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone,omitempty"`
	UserType  UserType       `json:"userType"`
	Verified  bool           `json:"isVerified,omitempty"`
	Profile   map[string]any `json:"profile,omitempty"`
}

// FullName joins first and last name, tolerating either being empty.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// IsAdmin reports whether the user may access the admin dashboard.
func (u User) IsAdmin() bool {
	return u.UserType == UserAdmin || u.UserType == UserSuperadmin
}

// AuthResponse is the payload of /auth/login and /auth/register.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// --- Jobs ---

// Company is the employer block embedded in a job listing.
type Company struct {
	Name        string `json:"name"`
	Logo        string `json:"logo,omitempty"`
	Website     string `json:"website,omitempty"`
	Size        string `json:"size,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Description string `json:"description,omitempty"`
}

// Location describes where a job is performed.
type Location struct {
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Country  string `json:"country,omitempty"`
	IsRemote bool   `json:"isRemote,omitempty"`
}

// Salary is the advertised compensation range.
type Salary struct {
	Min          int    `json:"min,omitempty"`
	Max          int    `json:"max,omitempty"`
	Currency     string `json:"currency,omitempty"`
	IsNegotiable bool   `json:"isNegotiable,omitempty"`
}

// ExperienceRange is the required years of experience.
type ExperienceRange struct {
	Min int `json:"min,omitempty"`
	Max int `json:"max,omitempty"`
}

// Requirements lists what the employer asks for.
type Requirements struct {
	Experience ExperienceRange `json:"experience,omitempty"`
	Skills     []string        `json:"skills,omitempty"`
	Education  string          `json:"education,omitempty"`
}

// Job is a single listing as served by /jobs.
type Job struct {
	ID                string       `json:"_id"`
	Title             string       `json:"title"`
	Description       string       `json:"description"`
	Company           Company      `json:"company"`
	Location          Location     `json:"location"`
	Salary            Salary       `json:"salary"`
	JobType           string       `json:"jobType,omitempty"`
	WorkMode          string       `json:"workMode,omitempty"`
	Requirements      Requirements `json:"requirements,omitempty"`
	Benefits          []string     `json:"benefits,omitempty"`
	Views             int          `json:"views,omitempty"`
	ApplicationsCount int          `json:"applicationsCount,omitempty"`
	Featured          bool         `json:"featured,omitempty"`
	Status            string       `json:"status,omitempty"`
	CreatedAt         string       `json:"createdAt,omitempty"`
}

// --- Applications ---

// ApplicationStatus enumerates the server-authoritative pipeline states.
type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "applied"
	StatusViewed      ApplicationStatus = "viewed"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusRejected    ApplicationStatus = "rejected"
	StatusInterviewed ApplicationStatus = "interviewed"
	StatusHired       ApplicationStatus = "hired"
)

// ValidApplicationStatus reports whether s is a known pipeline status.
func ValidApplicationStatus(s string) bool {
	switch ApplicationStatus(s) {
	case StatusApplied, StatusViewed, StatusShortlisted, StatusRejected, StatusInterviewed, StatusHired:
		return true
	}
	return false
}

// Application is a seeker's application to a job.
type Application struct {
	ID                 string            `json:"_id"`
	Job                Job               `json:"job"`
	Applicant          User              `json:"applicant,omitempty"`
	Status             ApplicationStatus `json:"status"`
	AppliedAt          string            `json:"appliedAt,omitempty"`
	Notes              string            `json:"notes,omitempty"`
	InterviewScheduled string            `json:"interviewScheduled,omitempty"`
}

// --- Pagination ---

// Pagination is the normalized page metadata attached to list responses.
//
// The backend answers with two shapes depending on the resource family:
// {current, pages, total} on admin resources and
// {currentPage, totalPages, totalJobs} on the mobile-facing ones.
// Both decode into this one type.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	Total       int  `json:"total"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// UnmarshalJSON accepts both backend pagination shapes.
func (p *Pagination) UnmarshalJSON(data []byte) error {
	var raw struct {
		Current     int  `json:"current"`
		CurrentPage int  `json:"currentPage"`
		Pages       int  `json:"pages"`
		TotalPages  int  `json:"totalPages"`
		Total       int  `json:"total"`
		TotalJobs   int  `json:"totalJobs"`
		HasNextPage bool `json:"hasNextPage"`
		HasPrevPage bool `json:"hasPrevPage"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.CurrentPage = raw.CurrentPage
	if p.CurrentPage == 0 {
		p.CurrentPage = raw.Current
	}
	p.TotalPages = raw.TotalPages
	if p.TotalPages == 0 {
		p.TotalPages = raw.Pages
	}
	p.Total = raw.Total
	if p.Total == 0 {
		p.Total = raw.TotalJobs
	}
	p.HasNextPage = raw.HasNextPage || p.CurrentPage < p.TotalPages
	p.HasPrevPage = raw.HasPrevPage || p.CurrentPage > 1
	return nil
}

// JobList is the payload of GET /jobs and the search endpoints.
type JobList struct {
	Jobs       []Job      `json:"jobs"`
	Pagination Pagination `json:"pagination"`
}

// ApplicationList is the payload of GET /applications/my-applications.
type ApplicationList struct {
	Applications []Application `json:"applications"`
	Pagination   Pagination    `json:"pagination"`
}

// EmployerDashboard is the payload of GET /employers/dashboard.
type EmployerDashboard struct {
	ActiveJobs         int           `json:"activeJobs"`
	TotalApplications  int           `json:"totalApplications"`
	ShortlistedCount   int           `json:"shortlisted"`
	RecentApplications []Application `json:"recentApplications,omitempty"`
}
