package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// JobDraft is the body of POST /jobs (employer posting form).
type JobDraft struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Company      Company      `json:"company"`
	Location     Location     `json:"location"`
	Salary       Salary       `json:"salary"`
	JobType      string       `json:"jobType"`
	WorkMode     string       `json:"workMode"`
	Requirements Requirements `json:"requirements,omitempty"`
	Benefits     []string     `json:"benefits,omitempty"`
}

// Validate enforces the client-side form rules. The backend validates again;
// a failing draft must never reach the network.
func (d JobDraft) Validate() error {
	if d.Title == "" {
		return errors.New("job title is required")
	}
	if d.Description == "" {
		return errors.New("job description is required")
	}
	if d.Company.Name == "" {
		return errors.New("company name is required")
	}
	if d.Salary.Min > 0 && d.Salary.Max > 0 && d.Salary.Min > d.Salary.Max {
		return fmt.Errorf("minimum salary (%d) cannot exceed maximum salary (%d)", d.Salary.Min, d.Salary.Max)
	}
	return nil
}

// ListJobs fetches a page of listings. params carry the compacted filters
// plus page/limit.
func (c *Client) ListJobs(ctx context.Context, params url.Values) (*JobList, error) {
	var out JobList
	if err := c.Do(ctx, http.MethodGet, "/jobs", params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetJob fetches a single listing by id.
func (c *Client) GetJob(ctx context.Context, id string) (*Job, error) {
	if id == "" {
		return nil, errors.New("job id is required")
	}
	var out struct {
		Job Job `json:"job"`
	}
	if err := c.Do(ctx, http.MethodGet, "/jobs/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Job, nil
}

// Suggestions queries the typeahead endpoint. Callers are expected to
// short-circuit queries under two characters before reaching the client.
func (c *Client) Suggestions(ctx context.Context, query string) ([]string, error) {
	params := url.Values{"q": {query}}
	var out struct {
		Suggestions []string `json:"suggestions"`
	}
	err := retryDo(ctx, suggestionsRetry, func() error {
		return c.Do(ctx, http.MethodGet, "/jobs/search/suggestions", params, nil, &out)
	})
	if err != nil {
		return nil, err
	}
	return out.Suggestions, nil
}

// MyJobs lists the authenticated employer's postings.
func (c *Client) MyJobs(ctx context.Context, params url.Values) (*JobList, error) {
	var out JobList
	if err := c.Do(ctx, http.MethodGet, "/jobs/employer/my-jobs", params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PostJob creates a listing. The draft must already be validated.
func (c *Client) PostJob(ctx context.Context, draft JobDraft) (*Job, error) {
	var out struct {
		Job Job `json:"job"`
	}
	if err := c.Do(ctx, http.MethodPost, "/jobs", nil, draft, &out); err != nil {
		return nil, err
	}
	return &out.Job, nil
}

// DeleteJob removes an employer's own listing.
func (c *Client) DeleteJob(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("job id is required")
	}
	return c.Do(ctx, http.MethodDelete, "/jobs/"+url.PathEscape(id), nil, nil, nil)
}

// Dashboard fetches the employer dashboard aggregates.
func (c *Client) Dashboard(ctx context.Context) (*EmployerDashboard, error) {
	var out EmployerDashboard
	if err := c.Do(ctx, http.MethodGet, "/employers/dashboard", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
