package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/url"
)

// Admin resource types. These mirror the dashboard's REST resources; record
// shapes stay close to the wire since the dashboard only lists and edits them.

// TeamLimit caps how many sub-accounts an employer team may create.
type TeamLimit struct {
	ID         string `json:"_id"`
	EmployerID string `json:"employerId"`
	Employer   string `json:"employerName,omitempty"`
	MaxMembers int    `json:"maxMembers"`
	Used       int    `json:"used,omitempty"`
	UpdatedAt  string `json:"updatedAt,omitempty"`
}

// CustomField is an admin-defined extra form field for job or profile forms.
type CustomField struct {
	ID       string   `json:"_id"`
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Type     string   `json:"type"` // text, number, select, checkbox
	Options  []string `json:"options,omitempty"`
	Target   string   `json:"target"` // job, profile
	Required bool     `json:"required,omitempty"`
	Active   bool     `json:"isActive"`
}

// BlogPost is a CMS article managed from the dashboard.
type BlogPost struct {
	ID        string   `json:"_id"`
	Title     string   `json:"title"`
	Slug      string   `json:"slug,omitempty"`
	Content   string   `json:"content"`
	Author    string   `json:"author,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Published bool     `json:"published"`
	CreatedAt string   `json:"createdAt,omitempty"`
}

// VerificationRequest is a pending employer/company verification.
type VerificationRequest struct {
	ID          string `json:"_id"`
	UserID      string `json:"userId"`
	CompanyName string `json:"companyName,omitempty"`
	Document    string `json:"documentUrl,omitempty"`
	Status      string `json:"status"` // pending, approved, rejected
	SubmittedAt string `json:"submittedAt,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// SalesEnquiry is an inbound lead from the marketing site.
type SalesEnquiry struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Company   string `json:"company,omitempty"`
	Message   string `json:"message,omitempty"`
	Status    string `json:"status"` // new, contacted, closed
	CreatedAt string `json:"createdAt,omitempty"`
}

// List envelopes for the admin resources.

type UserList struct {
	Users      []User     `json:"users"`
	Pagination Pagination `json:"pagination"`
}

type TeamLimitList struct {
	TeamLimits []TeamLimit `json:"teamLimits"`
	Pagination Pagination  `json:"pagination"`
}

type CustomFieldList struct {
	CustomFields []CustomField `json:"customFields"`
	Pagination   Pagination    `json:"pagination"`
}

type BlogList struct {
	Blogs      []BlogPost `json:"blogs"`
	Pagination Pagination `json:"pagination"`
}

type VerificationList struct {
	Requests   []VerificationRequest `json:"requests"`
	Pagination Pagination            `json:"pagination"`
}

type SalesEnquiryList struct {
	Enquiries  []SalesEnquiry `json:"enquiries"`
	Pagination Pagination     `json:"pagination"`
}

// --- Users ---

func (c *Client) AdminListUsers(ctx context.Context, params url.Values) (*UserList, error) {
	var out UserList
	if err := c.Do(ctx, http.MethodGet, "/api/admin/users", params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminGetUser(ctx context.Context, id string) (*User, error) {
	var out struct {
		User User `json:"user"`
	}
	if err := c.Do(ctx, http.MethodGet, "/api/admin/users/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) AdminUpdateUser(ctx context.Context, id string, fields map[string]any) error {
	return c.Do(ctx, http.MethodPut, "/api/admin/users/"+url.PathEscape(id), nil, fields, nil)
}

func (c *Client) AdminDeleteUser(ctx context.Context, id string) error {
	return c.Do(ctx, http.MethodDelete, "/api/admin/users/"+url.PathEscape(id), nil, nil, nil)
}

// --- Jobs ---

func (c *Client) AdminListJobs(ctx context.Context, params url.Values) (*JobList, error) {
	var out JobList
	if err := c.Do(ctx, http.MethodGet, "/admin/jobs", params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminUpdateJobStatus(ctx context.Context, id, status string) error {
	body := map[string]string{"status": status}
	return c.Do(ctx, http.MethodPut, "/admin/jobs/"+url.PathEscape(id)+"/status", nil, body, nil)
}

func (c *Client) AdminDeleteJob(ctx context.Context, id string) error {
	return c.Do(ctx, http.MethodDelete, "/admin/jobs/"+url.PathEscape(id), nil, nil, nil)
}

// --- Applications ---

func (c *Client) AdminListApplications(ctx context.Context, params url.Values) (*ApplicationList, error) {
	var out ApplicationList
	if err := c.Do(ctx, http.MethodGet, "/api/admin/applications", params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminUpdateApplicationStatus triggers a server-side status transition.
// Transition legality is the backend's call; the client only relays it.
func (c *Client) AdminUpdateApplicationStatus(ctx context.Context, id, status string) error {
	if !ValidApplicationStatus(status) {
		return errors.New("invalid application status: " + status)
	}
	body := map[string]string{"status": status}
	return c.Do(ctx, http.MethodPut, "/api/admin/applications/"+url.PathEscape(id)+"/status", nil, body, nil)
}

// --- Team limits ---

func (c *Client) AdminListTeamLimits(ctx context.Context, params url.Values) (*TeamLimitList, error) {
	var out TeamLimitList
	if err := c.Do(ctx, http.MethodGet, "/api/admin/team-limits", params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminSetTeamLimit(ctx context.Context, employerID string, maxMembers int) error {
	body := map[string]any{"employerId": employerID, "maxMembers": maxMembers}
	return c.Do(ctx, http.MethodPut, "/api/admin/team-limits/"+url.PathEscape(employerID), nil, body, nil)
}

// --- Custom fields ---

func (c *Client) ListCustomFields(ctx context.Context, params url.Values) (*CustomFieldList, error) {
	var out CustomFieldList
	if err := c.Do(ctx, http.MethodGet, "/api/custom-fields", params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCustomField(ctx context.Context, f CustomField) error {
	return c.Do(ctx, http.MethodPost, "/api/custom-fields", nil, f, nil)
}

func (c *Client) UpdateCustomField(ctx context.Context, id string, f CustomField) error {
	return c.Do(ctx, http.MethodPut, "/api/custom-fields/"+url.PathEscape(id), nil, f, nil)
}

func (c *Client) DeleteCustomField(ctx context.Context, id string) error {
	return c.Do(ctx, http.MethodDelete, "/api/custom-fields/"+url.PathEscape(id), nil, nil, nil)
}

// --- Blogs ---

func (c *Client) ListBlogs(ctx context.Context, params url.Values) (*BlogList, error) {
	var out BlogList
	if err := c.Do(ctx, http.MethodGet, "/api/blogs", params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateBlog(ctx context.Context, b BlogPost) error {
	return c.Do(ctx, http.MethodPost, "/api/blogs", nil, b, nil)
}

func (c *Client) UpdateBlog(ctx context.Context, id string, b BlogPost) error {
	return c.Do(ctx, http.MethodPut, "/api/blogs/"+url.PathEscape(id), nil, b, nil)
}

func (c *Client) DeleteBlog(ctx context.Context, id string) error {
	return c.Do(ctx, http.MethodDelete, "/api/blogs/"+url.PathEscape(id), nil, nil, nil)
}

// --- Verification ---

func (c *Client) ListVerifications(ctx context.Context, params url.Values) (*VerificationList, error) {
	var out VerificationList
	if err := c.Do(ctx, http.MethodGet, "/api/verification", params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ResolveVerification(ctx context.Context, id, status, notes string) error {
	if status != "approved" && status != "rejected" {
		return errors.New("verification status must be approved or rejected")
	}
	body := map[string]string{"status": status, "notes": notes}
	return c.Do(ctx, http.MethodPut, "/api/verification/"+url.PathEscape(id), nil, body, nil)
}

// --- Sales enquiries ---

func (c *Client) ListSalesEnquiries(ctx context.Context, params url.Values) (*SalesEnquiryList, error) {
	var out SalesEnquiryList
	if err := c.Do(ctx, http.MethodGet, "/api/sales-enquiry", params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSalesEnquiry(ctx context.Context, id, status string) error {
	body := map[string]string{"status": status}
	return c.Do(ctx, http.MethodPut, "/api/sales-enquiry/"+url.PathEscape(id), nil, body, nil)
}

// --- Bulk import/export ---

// BulkExport downloads the full dataset for resourceType (users, jobs,
// applications) as a file. Returns body bytes and content type.
func (c *Client) BulkExport(ctx context.Context, resourceType string) ([]byte, string, error) {
	return c.DoRaw(ctx, http.MethodGet, "/api/bulk/export/"+url.PathEscape(resourceType), nil, nil, "")
}

// BulkSample downloads the import template for resourceType.
func (c *Client) BulkSample(ctx context.Context, resourceType string) ([]byte, string, error) {
	return c.DoRaw(ctx, http.MethodGet, "/api/bulk/sample/"+url.PathEscape(resourceType), nil, nil, "")
}

// BulkImport uploads a prepared dataset for resourceType.
type BulkImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

func (c *Client) BulkImport(ctx context.Context, resourceType, contentType string, data []byte) (*BulkImportResult, error) {
	raw, _, err := c.DoRaw(ctx, http.MethodPost, "/api/bulk/import/"+url.PathEscape(resourceType), nil, bytes.NewReader(data), contentType)
	if err != nil {
		return nil, err
	}
	var out BulkImportResult
	if err := unmarshalLenient(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
