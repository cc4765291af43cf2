package state

import "net/url"

// Filters is the job search filter set. All fields are strings on the wire;
// empty values are stripped before the request goes out.
type Filters struct {
	Search     string
	Location   string
	JobType    string
	WorkMode   string
	MinSalary  string
	MaxSalary  string
	Experience string
	Skills     string
}

// DefaultFilters is the cleared filter set.
func DefaultFilters() Filters {
	return Filters{}
}

// Compact converts the filters to query parameters, dropping every empty
// value so the backend never sees "search=" noise.
func (f Filters) Compact() url.Values {
	values := url.Values{}
	set := func(key, val string) {
		if val != "" {
			values.Set(key, val)
		}
	}
	set("search", f.Search)
	set("location", f.Location)
	set("jobType", f.JobType)
	set("workMode", f.WorkMode)
	set("minSalary", f.MinSalary)
	set("maxSalary", f.MaxSalary)
	set("experience", f.Experience)
	set("skills", f.Skills)
	return values
}

// merge overlays the non-empty fields of partial onto f.
func (f Filters) merge(partial Filters) Filters {
	out := f
	if partial.Search != "" {
		out.Search = partial.Search
	}
	if partial.Location != "" {
		out.Location = partial.Location
	}
	if partial.JobType != "" {
		out.JobType = partial.JobType
	}
	if partial.WorkMode != "" {
		out.WorkMode = partial.WorkMode
	}
	if partial.MinSalary != "" {
		out.MinSalary = partial.MinSalary
	}
	if partial.MaxSalary != "" {
		out.MaxSalary = partial.MaxSalary
	}
	if partial.Experience != "" {
		out.Experience = partial.Experience
	}
	if partial.Skills != "" {
		out.Skills = partial.Skills
	}
	return out
}
