package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

// ApplyRequest is the body of POST /applications.
type ApplyRequest struct {
	JobID       string `json:"jobId"`
	CoverLetter string `json:"coverLetter,omitempty"`
	ResumeURL   string `json:"resumeUrl,omitempty"`
}

// Apply submits an application. The response carries the created record so
// screens can confirm without refetching.
func (c *Client) Apply(ctx context.Context, req ApplyRequest) (*Application, error) {
	if req.JobID == "" {
		return nil, errors.New("apply: jobId is required")
	}
	var out struct {
		Application Application `json:"application"`
	}
	if err := c.Do(ctx, http.MethodPost, "/applications", nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Application, nil
}

// MyApplications lists the seeker's applications, paginated.
func (c *Client) MyApplications(ctx context.Context, params url.Values) (*ApplicationList, error) {
	var out ApplicationList
	if err := c.Do(ctx, http.MethodGet, "/applications/my-applications", params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
