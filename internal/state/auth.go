package state

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Ayushs57139/jobportal-go/internal/api"
)

// TokenStore persists the session token across restarts.
// internal/device implements it; tests substitute an in-memory fake.
type TokenStore interface {
	Token() (string, error)
	SaveToken(token string) error
	DeleteToken() error
}

// Fallback messages shown when the server doesn't provide one.
const (
	msgLoginFailed    = "Login failed. Please try again."
	msgRegisterFailed = "Registration failed. Please try again."
	msgSessionExpired = "Session expired. Please log in again."
)

// AuthState is the auth container's snapshot.
type AuthState struct {
	User    *api.User
	Token   string
	Loading bool
	Err     string
}

// Authenticated reports whether a session is active.
func (s AuthState) Authenticated() bool {
	return s.User != nil && s.Token != ""
}

// reduceAuth is the pure transition function for the auth container.
func reduceAuth(s AuthState, a action) AuthState {
	switch a := a.(type) {
	case authStart:
		s.Loading = true
		s.Err = ""
	case authSuccess:
		user := a.user
		s.User = &user
		s.Token = a.token
		s.Loading = false
		s.Err = ""
	case authFailure:
		s.User = nil
		s.Token = ""
		s.Loading = false
		s.Err = a.msg
	case authError:
		s.Loading = false
		s.Err = a.msg
	case logoutAction:
		s = AuthState{}
	case setUserAction:
		user := a.user
		s.User = &user
	case updateUserAction:
		if s.User != nil {
			user := *s.User
			applyUserFields(&user, a.fields)
			s.User = &user
		}
	case clearErrorAction:
		s.Err = ""
	}
	return s
}

// applyUserFields shallow-merges the known editable fields. Unknown keys land
// in the profile map so domain-specific profile data survives the merge.
func applyUserFields(u *api.User, fields map[string]any) {
	for key, val := range fields {
		switch key {
		case "firstName":
			if s, ok := val.(string); ok {
				u.FirstName = s
			}
		case "lastName":
			if s, ok := val.(string); ok {
				u.LastName = s
			}
		case "email":
			if s, ok := val.(string); ok {
				u.Email = s
			}
		case "phone":
			if s, ok := val.(string); ok {
				u.Phone = s
			}
		default:
			if u.Profile == nil {
				u.Profile = map[string]any{}
			}
			u.Profile[key] = val
		}
	}
}

// AuthStore is the auth container. Constructed once at startup, fresh per
// test. Logically concurrent operations are last-write-wins; there is no
// request fencing.
type AuthStore struct {
	client *api.Client
	tokens TokenStore

	mu    sync.Mutex
	state AuthState
}

// NewAuthStore wires the container to its client and token storage.
func NewAuthStore(client *api.Client, tokens TokenStore) *AuthStore {
	return &AuthStore{client: client, tokens: tokens}
}

// State returns a snapshot of the current auth state.
func (s *AuthStore) State() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *AuthStore) dispatch(a action) {
	s.mu.Lock()
	s.state = reduceAuth(s.state, a)
	s.mu.Unlock()
}

// CheckAuthState rehydrates the session on startup: read the persisted token,
// attach it, and confirm it with a who-am-I round trip. Any failure deletes
// the persisted token. No retry.
func (s *AuthStore) CheckAuthState(ctx context.Context) Result {
	s.dispatch(authStart{})

	token, err := s.tokens.Token()
	if err != nil || token == "" {
		s.dispatch(logoutAction{})
		return fail("")
	}

	s.client.SetToken(token)
	user, err := s.client.Me(ctx)
	if err != nil {
		if delErr := s.tokens.DeleteToken(); delErr != nil {
			slog.Warn("auth: stale token delete failed", slog.Any("error", delErr))
		}
		s.client.ClearToken()
		s.dispatch(authFailure{msg: msgSessionExpired})
		return fail(msgSessionExpired)
	}

	s.dispatch(authSuccess{user: *user, token: token})
	return ok()
}

// Login authenticates, persists the token, and attaches it to the client.
// The token is persisted before the success dispatch so a crash between the
// two never leaves an authenticated state without a stored token.
func (s *AuthStore) Login(ctx context.Context, loginID, password string) Result {
	s.dispatch(authStart{})

	resp, err := s.client.Login(ctx, loginID, password)
	if err != nil {
		msg := api.ErrorMessage(err, msgLoginFailed)
		s.dispatch(authFailure{msg: msg})
		return fail(msg)
	}

	if err := s.tokens.SaveToken(resp.Token); err != nil {
		slog.Error("auth: token persist failed", slog.Any("error", err))
		s.dispatch(authFailure{msg: msgLoginFailed})
		return fail(msgLoginFailed)
	}
	s.client.SetToken(resp.Token)

	s.dispatch(authSuccess{user: resp.User, token: resp.Token})
	return ok()
}

// Register creates an account; on success behaves exactly like Login.
func (s *AuthStore) Register(ctx context.Context, req api.RegisterRequest) Result {
	s.dispatch(authStart{})

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		msg := api.ErrorMessage(err, msgRegisterFailed)
		s.dispatch(authFailure{msg: msg})
		return fail(msg)
	}

	if err := s.tokens.SaveToken(resp.Token); err != nil {
		slog.Error("auth: token persist failed", slog.Any("error", err))
		s.dispatch(authFailure{msg: msgRegisterFailed})
		return fail(msgRegisterFailed)
	}
	s.client.SetToken(resp.Token)

	s.dispatch(authSuccess{user: resp.User, token: resp.Token})
	return ok()
}

// Logout clears the persisted token and the client's auth header, then
// transitions unconditionally. A failed delete is logged, never surfaced.
func (s *AuthStore) Logout() Result {
	if err := s.tokens.DeleteToken(); err != nil {
		slog.Warn("auth: token delete failed", slog.Any("error", err))
	}
	s.client.ClearToken()
	s.dispatch(logoutAction{})
	return ok()
}

// UpdateUser shallow-merges fields into the in-memory user. No server call;
// callers sync server-side changes through SaveProfile.
func (s *AuthStore) UpdateUser(fields map[string]any) {
	s.dispatch(updateUserAction{fields: fields})
}

// SaveProfile persists profile fields server-side and refreshes the local user.
func (s *AuthStore) SaveProfile(ctx context.Context, fields map[string]any) Result {
	user, err := s.client.UpdateProfile(ctx, fields)
	if err != nil {
		msg := api.ErrorMessage(err, "Profile update failed. Please try again.")
		s.dispatch(authError{msg: msg})
		return fail(msg)
	}
	s.dispatch(setUserAction{user: *user})
	return ok()
}

// ClearError clears the error banner.
func (s *AuthStore) ClearError() {
	s.dispatch(clearErrorAction{})
}
