package dashboard

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ayushs57139/jobportal-go/internal/api"
)

const pageSize = 20

// tableView is the view model every list page renders from.
type tableView struct {
	Title    string
	Active   string
	Resource string
	Search   string
	Columns  []string
	Rows     []tableRow
	Pages    []PageItem
	Total    int
	BulkType string // non-empty enables the export/import toolbar
}

type tableRow struct {
	ID      string
	Cells   []string
	Actions []rowAction
}

// rowAction renders as a small POST form bound to a row.
type rowAction struct {
	Label   string
	URL     string
	Field   string   // optional select field name posted with the form
	Options []string // select options when Field is set
}

// listParams extracts the shared search/page query parameters.
func listParams(c *gin.Context) (url.Values, int) {
	page, _ := strconv.Atoi(c.Query("page"))
	if page < 1 {
		page = 1
	}
	params := url.Values{}
	if q := strings.TrimSpace(c.Query("search")); q != "" {
		params.Set("search", q)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		params.Set("status", st)
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(pageSize))
	return params, page
}

func (s *Server) handleHome(c *gin.Context) {
	c.Redirect(http.StatusFound, "/users")
}

// --- users ---

func (s *Server) handleUsers(c *gin.Context) {
	params, page := listParams(c)
	list, err := s.client.AdminListUsers(c.Request.Context(), params)
	if err != nil {
		s.renderError(c, err)
		return
	}

	rows := make([]tableRow, 0, len(list.Users))
	for _, u := range list.Users {
		rows = append(rows, tableRow{
			ID:    u.ID,
			Cells: []string{u.FullName(), u.Email, string(u.UserType), verifiedLabel(u.Verified)},
			Actions: []rowAction{
				{Label: "Delete", URL: "/users/" + url.PathEscape(u.ID) + "/delete"},
			},
		})
	}

	c.HTML(http.StatusOK, "table.html", tableView{
		Title:    "Users",
		Active:   "users",
		Resource: "/users",
		Search:   c.Query("search"),
		Columns:  []string{"Name", "Email", "Role", "Verified"},
		Rows:     rows,
		Pages:    Window(page, list.Pagination.TotalPages),
		Total:    list.Pagination.Total,
		BulkType: "users",
	})
}

func (s *Server) handleDeleteUser(c *gin.Context) {
	if err := s.client.AdminDeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		s.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/users")
}

// --- jobs ---

func (s *Server) handleJobs(c *gin.Context) {
	params, page := listParams(c)
	list, err := s.client.AdminListJobs(c.Request.Context(), params)
	if err != nil {
		s.renderError(c, err)
		return
	}

	rows := make([]tableRow, 0, len(list.Jobs))
	for _, j := range list.Jobs {
		rows = append(rows, tableRow{
			ID:    j.ID,
			Cells: []string{j.Title, j.Company.Name, jobLocation(j), j.Status, strconv.Itoa(j.ApplicationsCount)},
			Actions: []rowAction{
				{Label: "Set status", URL: "/jobs/" + url.PathEscape(j.ID) + "/status", Field: "status", Options: []string{"active", "paused", "closed"}},
				{Label: "Delete", URL: "/jobs/" + url.PathEscape(j.ID) + "/delete"},
			},
		})
	}

	c.HTML(http.StatusOK, "table.html", tableView{
		Title:    "Jobs",
		Active:   "jobs",
		Resource: "/jobs",
		Search:   c.Query("search"),
		Columns:  []string{"Title", "Company", "Location", "Status", "Applications"},
		Rows:     rows,
		Pages:    Window(page, list.Pagination.TotalPages),
		Total:    list.Pagination.Total,
		BulkType: "jobs",
	})
}

func (s *Server) handleJobStatus(c *gin.Context) {
	if err := s.client.AdminUpdateJobStatus(c.Request.Context(), c.Param("id"), c.PostForm("status")); err != nil {
		s.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/jobs")
}

func (s *Server) handleDeleteJob(c *gin.Context) {
	if err := s.client.AdminDeleteJob(c.Request.Context(), c.Param("id")); err != nil {
		s.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/jobs")
}

// --- applications ---

func (s *Server) handleApplications(c *gin.Context) {
	params, page := listParams(c)
	list, err := s.client.AdminListApplications(c.Request.Context(), params)
	if err != nil {
		s.renderError(c, err)
		return
	}

	statusOptions := []string{"applied", "viewed", "shortlisted", "rejected", "interviewed", "hired"}
	rows := make([]tableRow, 0, len(list.Applications))
	for _, a := range list.Applications {
		rows = append(rows, tableRow{
			ID:    a.ID,
			Cells: []string{a.Job.Title, a.Applicant.FullName(), string(a.Status), a.AppliedAt},
			Actions: []rowAction{
				{Label: "Set status", URL: "/applications/" + url.PathEscape(a.ID) + "/status", Field: "status", Options: statusOptions},
			},
		})
	}

	c.HTML(http.StatusOK, "table.html", tableView{
		Title:    "Applications",
		Active:   "applications",
		Resource: "/applications",
		Search:   c.Query("search"),
		Columns:  []string{"Job", "Applicant", "Status", "Applied"},
		Rows:     rows,
		Pages:    Window(page, list.Pagination.TotalPages),
		Total:    list.Pagination.Total,
		BulkType: "applications",
	})
}

func (s *Server) handleApplicationStatus(c *gin.Context) {
	if err := s.client.AdminUpdateApplicationStatus(c.Request.Context(), c.Param("id"), c.PostForm("status")); err != nil {
		s.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/applications")
}

// --- team limits ---

func (s *Server) handleTeamLimits(c *gin.Context) {
	params, page := listParams(c)
	list, err := s.client.AdminListTeamLimits(c.Request.Context(), params)
	if err != nil {
		s.renderError(c, err)
		return
	}

	rows := make([]tableRow, 0, len(list.TeamLimits))
	for _, tl := range list.TeamLimits {
		rows = append(rows, tableRow{
			ID:    tl.EmployerID,
			Cells: []string{tl.Employer, fmt.Sprintf("%d / %d", tl.Used, tl.MaxMembers)},
			Actions: []rowAction{
				{Label: "Set limit", URL: "/team-limits/" + url.PathEscape(tl.EmployerID), Field: "maxMembers", Options: []string{"1", "3", "5", "10", "25"}},
			},
		})
	}

	c.HTML(http.StatusOK, "table.html", tableView{
		Title:    "Team Limits",
		Active:   "team-limits",
		Resource: "/team-limits",
		Search:   c.Query("search"),
		Columns:  []string{"Employer", "Members used / limit"},
		Rows:     rows,
		Pages:    Window(page, list.Pagination.TotalPages),
		Total:    list.Pagination.Total,
	})
}

func (s *Server) handleSetTeamLimit(c *gin.Context) {
	limit, err := strconv.Atoi(c.PostForm("maxMembers"))
	if err != nil || limit < 1 {
		s.renderError(c, &api.Error{Status: http.StatusBadRequest, Message: "maxMembers must be a positive number"})
		return
	}
	if err := s.client.AdminSetTeamLimit(c.Request.Context(), c.Param("id"), limit); err != nil {
		s.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/team-limits")
}

// --- custom fields ---

func (s *Server) handleCustomFields(c *gin.Context) {
	params, page := listParams(c)
	list, err := s.client.ListCustomFields(c.Request.Context(), params)
	if err != nil {
		s.renderError(c, err)
		return
	}

	rows := make([]tableRow, 0, len(list.CustomFields))
	for _, f := range list.CustomFields {
		rows = append(rows, tableRow{
			ID:    f.ID,
			Cells: []string{f.Label, f.Type, f.Target, activeLabel(f.Active)},
			Actions: []rowAction{
				{Label: "Delete", URL: "/custom-fields/" + url.PathEscape(f.ID) + "/delete"},
			},
		})
	}

	c.HTML(http.StatusOK, "table.html", tableView{
		Title:    "Custom Fields",
		Active:   "custom-fields",
		Resource: "/custom-fields",
		Search:   c.Query("search"),
		Columns:  []string{"Label", "Type", "Target", "Active"},
		Rows:     rows,
		Pages:    Window(page, list.Pagination.TotalPages),
		Total:    list.Pagination.Total,
	})
}

func (s *Server) handleCreateCustomField(c *gin.Context) {
	field := api.CustomField{
		Name:     c.PostForm("name"),
		Label:    c.PostForm("label"),
		Type:     c.PostForm("type"),
		Target:   c.PostForm("target"),
		Required: c.PostForm("required") == "on",
		Active:   true,
	}
	if field.Name == "" || field.Label == "" {
		s.renderError(c, &api.Error{Status: http.StatusBadRequest, Message: "name and label are required"})
		return
	}
	if err := s.client.CreateCustomField(c.Request.Context(), field); err != nil {
		s.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/custom-fields")
}

func (s *Server) handleDeleteCustomField(c *gin.Context) {
	if err := s.client.DeleteCustomField(c.Request.Context(), c.Param("id")); err != nil {
		s.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/custom-fields")
}

// --- blogs ---

func (s *Server) handleBlogs(c *gin.Context) {
	params, page := listParams(c)
	list, err := s.client.ListBlogs(c.Request.Context(), params)
	if err != nil {
		s.renderError(c, err)
		return
	}

	rows := make([]tableRow, 0, len(list.Blogs))
	for _, b := range list.Blogs {
		rows = append(rows, tableRow{
			ID:    b.ID,
			Cells: []string{b.Title, b.Author, publishedLabel(b.Published), b.CreatedAt},
			Actions: []rowAction{
				{Label: "Delete", URL: "/blogs/" + url.PathEscape(b.ID) + "/delete"},
			},
		})
	}

	c.HTML(http.StatusOK, "table.html", tableView{
		Title:    "Blogs",
		Active:   "blogs",
		Resource: "/blogs",
		Search:   c.Query("search"),
		Columns:  []string{"Title", "Author", "Published", "Created"},
		Rows:     rows,
		Pages:    Window(page, list.Pagination.TotalPages),
		Total:    list.Pagination.Total,
	})
}

func (s *Server) handleCreateBlog(c *gin.Context) {
	post := api.BlogPost{
		Title:     c.PostForm("title"),
		Content:   c.PostForm("content"),
		Author:    c.PostForm("author"),
		Published: c.PostForm("published") == "on",
	}
	if post.Title == "" || post.Content == "" {
		s.renderError(c, &api.Error{Status: http.StatusBadRequest, Message: "title and content are required"})
		return
	}
	if err := s.client.CreateBlog(c.Request.Context(), post); err != nil {
		s.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/blogs")
}

func (s *Server) handleDeleteBlog(c *gin.Context) {
	if err := s.client.DeleteBlog(c.Request.Context(), c.Param("id")); err != nil {
		s.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/blogs")
}

// --- verification ---

func (s *Server) handleVerifications(c *gin.Context) {
	params, page := listParams(c)
	list, err := s.client.ListVerifications(c.Request.Context(), params)
	if err != nil {
		s.renderError(c, err)
		return
	}

	rows := make([]tableRow, 0, len(list.Requests))
	for _, v := range list.Requests {
		rows = append(rows, tableRow{
			ID:    v.ID,
			Cells: []string{v.CompanyName, v.Status, v.SubmittedAt},
			Actions: []rowAction{
				{Label: "Resolve", URL: "/verification/" + url.PathEscape(v.ID), Field: "status", Options: []string{"approved", "rejected"}},
			},
		})
	}

	c.HTML(http.StatusOK, "table.html", tableView{
		Title:    "Verification",
		Active:   "verification",
		Resource: "/verification",
		Search:   c.Query("search"),
		Columns:  []string{"Company", "Status", "Submitted"},
		Rows:     rows,
		Pages:    Window(page, list.Pagination.TotalPages),
		Total:    list.Pagination.Total,
	})
}

func (s *Server) handleResolveVerification(c *gin.Context) {
	if err := s.client.ResolveVerification(c.Request.Context(), c.Param("id"), c.PostForm("status"), c.PostForm("notes")); err != nil {
		s.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/verification")
}

// --- sales enquiries ---

func (s *Server) handleSalesEnquiries(c *gin.Context) {
	params, page := listParams(c)
	list, err := s.client.ListSalesEnquiries(c.Request.Context(), params)
	if err != nil {
		s.renderError(c, err)
		return
	}

	rows := make([]tableRow, 0, len(list.Enquiries))
	for _, e := range list.Enquiries {
		rows = append(rows, tableRow{
			ID:    e.ID,
			Cells: []string{e.Name, e.Email, e.Company, e.Status},
			Actions: []rowAction{
				{Label: "Set status", URL: "/sales-enquiries/" + url.PathEscape(e.ID) + "/status", Field: "status", Options: []string{"new", "contacted", "closed"}},
			},
		})
	}

	c.HTML(http.StatusOK, "table.html", tableView{
		Title:    "Sales Enquiries",
		Active:   "sales-enquiries",
		Resource: "/sales-enquiries",
		Search:   c.Query("search"),
		Columns:  []string{"Name", "Email", "Company", "Status"},
		Rows:     rows,
		Pages:    Window(page, list.Pagination.TotalPages),
		Total:    list.Pagination.Total,
	})
}

func (s *Server) handleSalesEnquiryStatus(c *gin.Context) {
	if err := s.client.UpdateSalesEnquiry(c.Request.Context(), c.Param("id"), c.PostForm("status")); err != nil {
		s.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/sales-enquiries")
}

// --- bulk import/export ---

func (s *Server) handleBulkExport(c *gin.Context) {
	data, contentType, err := s.client.BulkExport(c.Request.Context(), c.Param("type"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", `attachment; filename="`+c.Param("type")+`-export.csv"`)
	c.Data(http.StatusOK, contentType, data)
}

func (s *Server) handleBulkSample(c *gin.Context) {
	data, contentType, err := s.client.BulkSample(c.Request.Context(), c.Param("type"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", `attachment; filename="`+c.Param("type")+`-sample.csv"`)
	c.Data(http.StatusOK, contentType, data)
}

func (s *Server) handleBulkImport(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		s.renderError(c, &api.Error{Status: http.StatusBadRequest, Message: "an import file is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.renderError(c, fmt.Errorf("dashboard: read upload: %w", err))
		return
	}

	contentType := header.Header.Get("Content-Type")
	result, err := s.client.BulkImport(c.Request.Context(), c.Param("type"), contentType, data)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "import.html", gin.H{
		"Type":     c.Param("type"),
		"Imported": result.Imported,
		"Skipped":  result.Skipped,
		"Errors":   result.Errors,
	})
}

// --- consultancy (employer) pages ---

func (s *Server) handleConsultancy(c *gin.Context) {
	dash, err := s.client.Dashboard(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "consultancy.html", gin.H{
		"ActiveJobs":        dash.ActiveJobs,
		"TotalApplications": dash.TotalApplications,
		"Shortlisted":       dash.ShortlistedCount,
		"Recent":            dash.RecentApplications,
	})
}

func (s *Server) handleMyJobs(c *gin.Context) {
	params, page := listParams(c)
	list, err := s.client.MyJobs(c.Request.Context(), params)
	if err != nil {
		s.renderError(c, err)
		return
	}

	rows := make([]tableRow, 0, len(list.Jobs))
	for _, j := range list.Jobs {
		rows = append(rows, tableRow{
			ID:    j.ID,
			Cells: []string{j.Title, j.Status, strconv.Itoa(j.Views), strconv.Itoa(j.ApplicationsCount)},
			Actions: []rowAction{
				{Label: "Delete", URL: "/consultancy/my-jobs/" + url.PathEscape(j.ID) + "/delete"},
			},
		})
	}

	c.HTML(http.StatusOK, "table.html", tableView{
		Title:    "My Jobs",
		Active:   "my-jobs",
		Resource: "/consultancy/my-jobs",
		Search:   c.Query("search"),
		Columns:  []string{"Title", "Status", "Views", "Applications"},
		Rows:     rows,
		Pages:    Window(page, list.Pagination.TotalPages),
		Total:    list.Pagination.Total,
	})
}

func (s *Server) handleDeleteMyJob(c *gin.Context) {
	if err := s.client.DeleteJob(c.Request.Context(), c.Param("id")); err != nil {
		s.renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/consultancy/my-jobs")
}

// --- small label helpers ---

func verifiedLabel(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func activeLabel(v bool) string {
	if v {
		return "active"
	}
	return "inactive"
}

func publishedLabel(v bool) string {
	if v {
		return "published"
	}
	return "draft"
}

func jobLocation(j api.Job) string {
	if j.Location.IsRemote {
		return "Remote"
	}
	parts := make([]string, 0, 2)
	if j.Location.City != "" {
		parts = append(parts, j.Location.City)
	}
	if j.Location.Country != "" {
		parts = append(parts, j.Location.Country)
	}
	return strings.Join(parts, ", ")
}
