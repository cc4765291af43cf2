// Package state holds the two client-side containers (auth, jobs).
// Each container is a plain struct over a pure reducer: operations dispatch
// tagged actions, the reducer computes the next state, and every async
// operation additionally returns a uniform Result envelope so screens can
// branch without re-reading the store.
package state

import "github.com/Ayushs57139/jobportal-go/internal/api"

// Result is the envelope returned by every async container operation.
type Result struct {
	OK  bool
	Err string
}

func ok() Result             { return Result{OK: true} }
func fail(msg string) Result { return Result{Err: msg} }

// action is the closed set of state transitions. Only this package can
// introduce new variants.
type action interface{ isAction() }

// --- auth actions ---

type authStart struct{}

type authSuccess struct {
	user  api.User
	token string
}

type authFailure struct{ msg string }

// authError records an error without tearing down the session (e.g. a failed
// profile save while still logged in).
type authError struct{ msg string }

type logoutAction struct{}

type updateUserAction struct{ fields map[string]any }

type setUserAction struct{ user api.User }

type clearErrorAction struct{}

func (authStart) isAction()        {}
func (authSuccess) isAction()      {}
func (authFailure) isAction()      {}
func (authError) isAction()        {}
func (logoutAction) isAction()     {}
func (updateUserAction) isAction() {}
func (setUserAction) isAction()    {}
func (clearErrorAction) isAction() {}

// --- job actions ---

type jobsStart struct{}

// jobsLoaded carries a fetched page. append reports whether the page extends
// the current list (load-more) instead of replacing it (fresh search).
type jobsLoaded struct {
	jobs       []api.Job
	pagination api.Pagination
	append     bool
}

type jobLoaded struct{ job api.Job }

type applicationsLoaded struct {
	applications []api.Application
	pagination   api.Pagination
}

type jobsFailure struct{ msg string }

type filtersUpdated struct{ partial Filters }

type filtersCleared struct{}

type jobsReset struct{}

func (jobsStart) isAction()          {}
func (jobsLoaded) isAction()         {}
func (jobLoaded) isAction()          {}
func (applicationsLoaded) isAction() {}
func (jobsFailure) isAction()        {}
func (filtersUpdated) isAction()     {}
func (filtersCleared) isAction()     {}
func (jobsReset) isAction()          {}
