package state

import (
	"context"
	"strconv"
	"sync"

	"github.com/Ayushs57139/jobportal-go/internal/api"
)

// DefaultPageSize is the page size used when the caller doesn't override it.
const DefaultPageSize = 10

const (
	msgJobsFailed         = "Could not load jobs. Please try again."
	msgJobFailed          = "Could not load the job. Please try again."
	msgApplyFailed        = "Application failed. Please try again."
	msgApplicationsFailed = "Could not load applications. Please try again."
	msgPostFailed         = "Could not post the job. Please try again."
	msgSuggestionsFailed  = "suggestions unavailable"
)

// JobState is the job container's snapshot.
type JobState struct {
	Jobs         []api.Job
	CurrentJob   *api.Job
	Applications []api.Application
	Loading      bool
	Err          string
	Filters      Filters
	Pagination   api.Pagination
}

// reduceJobs is the pure transition function for the job container.
func reduceJobs(s JobState, a action) JobState {
	switch a := a.(type) {
	case jobsStart:
		s.Loading = true
		s.Err = ""
	case jobsLoaded:
		if a.append {
			s.Jobs = append(s.Jobs[:len(s.Jobs):len(s.Jobs)], a.jobs...)
		} else {
			s.Jobs = a.jobs
		}
		s.Pagination = a.pagination
		s.Loading = false
		s.Err = ""
	case jobLoaded:
		job := a.job
		s.CurrentJob = &job
		s.Loading = false
		s.Err = ""
	case applicationsLoaded:
		s.Applications = a.applications
		s.Pagination = a.pagination
		s.Loading = false
		s.Err = ""
	case jobsFailure:
		s.Loading = false
		s.Err = a.msg
	case filtersUpdated:
		s.Filters = s.Filters.merge(a.partial)
	case filtersCleared:
		s.Filters = DefaultFilters()
	case jobsReset:
		s.Jobs = nil
		s.CurrentJob = nil
		s.Pagination = api.Pagination{}
		s.Err = ""
	}
	return s
}

// FetchOptions tune a FetchJobs call. Zero Page means page 1; Overrides
// replace matching filter fields for this call only.
type FetchOptions struct {
	Page      int
	Limit     int
	Overrides Filters
}

// JobStore is the job container.
type JobStore struct {
	client *api.Client
	cache  *api.SuggestionCache // nil disables suggestion caching

	mu    sync.Mutex
	state JobState
}

// NewJobStore wires the container to the API client.
func NewJobStore(client *api.Client, cache *api.SuggestionCache) *JobStore {
	return &JobStore{client: client, cache: cache}
}

// State returns a snapshot of the current job state.
func (s *JobStore) State() JobState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *JobStore) dispatch(a action) {
	s.mu.Lock()
	s.state = reduceJobs(s.state, a)
	s.mu.Unlock()
}

// FetchJobs loads a page of listings using the current filters merged with
// opts.Overrides. Page 1 (or unset) replaces the list; any later page appends
// in order, the load-more contract.
func (s *JobStore) FetchJobs(ctx context.Context, opts FetchOptions) Result {
	s.dispatch(jobsStart{})

	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}

	params := s.State().Filters.merge(opts.Overrides).Compact()
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))

	list, err := s.client.ListJobs(ctx, params)
	if err != nil {
		msg := api.ErrorMessage(err, msgJobsFailed)
		s.dispatch(jobsFailure{msg: msg})
		return fail(msg)
	}

	s.dispatch(jobsLoaded{jobs: list.Jobs, pagination: list.Pagination, append: page > 1})
	return ok()
}

// FetchJobByID loads a single listing into CurrentJob.
func (s *JobStore) FetchJobByID(ctx context.Context, id string) (*api.Job, Result) {
	s.dispatch(jobsStart{})

	job, err := s.client.GetJob(ctx, id)
	if err != nil {
		msg := api.ErrorMessage(err, msgJobFailed)
		s.dispatch(jobsFailure{msg: msg})
		return nil, fail(msg)
	}

	s.dispatch(jobLoaded{job: *job})
	return job, ok()
}

// SearchJobs starts a fresh search: stores the overrides as the new filters,
// always requests page 1, and always replaces the list regardless of what
// was loaded before.
func (s *JobStore) SearchJobs(ctx context.Context, overrides Filters) Result {
	s.dispatch(filtersUpdated{partial: overrides})
	s.dispatch(jobsStart{})

	params := s.State().Filters.Compact()
	params.Set("page", "1")
	params.Set("limit", strconv.Itoa(DefaultPageSize))

	list, err := s.client.ListJobs(ctx, params)
	if err != nil {
		msg := api.ErrorMessage(err, msgJobsFailed)
		s.dispatch(jobsFailure{msg: msg})
		return fail(msg)
	}

	s.dispatch(jobsLoaded{jobs: list.Jobs, pagination: list.Pagination, append: false})
	return ok()
}

// GetSearchSuggestions returns typeahead completions. Queries under two
// characters never reach the network. Failures come back in the Result and
// are never written into the shared error state; suggestions are cosmetic.
func (s *JobStore) GetSearchSuggestions(ctx context.Context, query string) ([]string, Result) {
	if len(query) < 2 {
		return []string{}, ok()
	}

	if cached, hit := s.cache.Get(ctx, query); hit {
		return cached, ok()
	}

	suggestions, err := s.client.Suggestions(ctx, query)
	if err != nil {
		return []string{}, fail(msgSuggestionsFailed)
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	s.cache.Set(ctx, query, suggestions)
	return suggestions, ok()
}

// ApplyForJob submits an application. Local lists are untouched; screens
// refetch when they need the new record.
func (s *JobStore) ApplyForJob(ctx context.Context, req api.ApplyRequest) Result {
	if _, err := s.client.Apply(ctx, req); err != nil {
		msg := api.ErrorMessage(err, msgApplyFailed)
		s.dispatch(jobsFailure{msg: msg})
		return fail(msg)
	}
	return ok()
}

// FetchMyApplications loads the seeker's applications page into the store.
func (s *JobStore) FetchMyApplications(ctx context.Context, page int) Result {
	s.dispatch(jobsStart{})

	if page < 1 {
		page = 1
	}
	params := s.State().Filters.Compact()
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(DefaultPageSize))

	list, err := s.client.MyApplications(ctx, params)
	if err != nil {
		msg := api.ErrorMessage(err, msgApplicationsFailed)
		s.dispatch(jobsFailure{msg: msg})
		return fail(msg)
	}

	s.dispatch(applicationsLoaded{applications: list.Applications, pagination: list.Pagination})
	return ok()
}

// PostJob validates the draft locally, then creates the listing. An invalid
// draft is rejected before any request is issued and does not land in Jobs;
// there is no optimistic insert.
func (s *JobStore) PostJob(ctx context.Context, draft api.JobDraft) (*api.Job, Result) {
	if err := draft.Validate(); err != nil {
		return nil, fail(err.Error())
	}

	job, err := s.client.PostJob(ctx, draft)
	if err != nil {
		msg := api.ErrorMessage(err, msgPostFailed)
		s.dispatch(jobsFailure{msg: msg})
		return nil, fail(msg)
	}
	return job, ok()
}

// UpdateFilters overlays the non-empty fields of partial onto the current
// filters. Pure local mutation.
func (s *JobStore) UpdateFilters(partial Filters) {
	s.dispatch(filtersUpdated{partial: partial})
}

// ClearFilters resets to the default filter set. Idempotent.
func (s *JobStore) ClearFilters() {
	s.dispatch(filtersCleared{})
}

// ResetJobs drops the loaded list, current job, and pagination.
func (s *JobStore) ResetJobs() {
	s.dispatch(jobsReset{})
}
