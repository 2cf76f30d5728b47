package client

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	poke "poke_explorer"
)

const minPasswordLen = 6

// User-facing messages.
const (
	msgFillAllFields    = "please fill in all fields"
	msgPasswordTooShort = "password must be at least 6 characters"
	msgTermRequired     = "please enter a Pokémon name or ID"
	msgAccountCreated   = "account created, signing in..."
	msgSessionExpired   = "your session has expired, please sign in again"
	msgLoginFailed      = "could not sign in"
	msgRegisterFailed   = "could not create the account"
	msgSessionSaveError = "could not save the session"
	msgUnreachable      = "could not reach the server"
)

var ErrValidation = errors.New("invalid input")

// api is the part of APIClient the App drives.
type api interface {
	Register(ctx context.Context, username, password string) (poke.AuthResponse, error)
	Login(ctx context.Context, username, password string) (poke.AuthResponse, error)
	Search(ctx context.Context, token, term string) (Pokemon, error)
	History(ctx context.Context, token string) ([]poke.HistoryEntry, error)
	List(ctx context.Context, token, limit, offset string) (PokemonPage, error)
}

// App is the client state machine: one session, one current route.
type App struct {
	api     api
	store   SessionStore
	session Session
	route   Route
	out     io.Writer
	reader  *bufio.Reader
}

// NewApp loads the persisted session and shows the route the guard allows.
// An unreadable session file is treated as logged out.
func NewApp(apiClient api, store SessionStore, in io.Reader, out io.Writer) *App {
	a := &App{
		api:    apiClient,
		store:  store,
		out:    out,
		reader: bufio.NewReader(in),
	}
	if s, err := store.Load(); err == nil && s.Valid() {
		a.session = s
	}
	a.Navigate(RouteLogin)
	return a
}

func (a *App) State() State {
	if a.session.Valid() {
		return StateLoggedIn
	}
	return StateLoggedOut
}

func (a *App) Route() Route { return a.route }

func (a *App) Session() Session { return a.session }

func (a *App) isLoggedIn() bool { return a.State() == StateLoggedIn }

// Navigate applies the auth guard to r and renders the resulting view.
func (a *App) Navigate(r Route) {
	a.route = guard(a.State(), r)
	switch a.route {
	case RouteDashboard:
		_ = DashboardView(a.out, a.session.User.Username)
	default:
		_ = LoginView(a.out)
	}
}

func (a *App) alert(kind, msg string) {
	_ = Alert(a.out, kind, msg)
}

// failure renders err as an alert; msg is used when err carries no server message.
func (a *App) failure(err error, msg string) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		a.alert(AlertError, apiErr.Message)
	} else {
		a.alert(AlertError, msg)
	}
	return err
}

// signIn stores the session from an auth response and opens the dashboard.
func (a *App) signIn(res poke.AuthResponse) error {
	s := Session{Token: res.Token, User: SessionUser{ID: res.ID, Username: res.Username}}
	if !s.Valid() {
		return a.failure(errors.New("incomplete auth response"), msgLoginFailed)
	}
	a.session = s
	if err := a.store.Save(s); err != nil {
		// the session still works for this run
		a.alert(AlertError, msgSessionSaveError)
	}
	a.Navigate(RouteDashboard)
	return nil
}

// LoginWith signs in with the given credentials.
func (a *App) LoginWith(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		a.alert(AlertError, msgFillAllFields)
		return ErrValidation
	}
	res, err := a.api.Login(ctx, username, password)
	if err != nil {
		return a.failure(err, msgLoginFailed)
	}
	return a.signIn(res)
}

// RegisterWith creates an account and signs straight in.
func (a *App) RegisterWith(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		a.alert(AlertError, msgFillAllFields)
		return ErrValidation
	}
	if len(password) < minPasswordLen {
		a.alert(AlertError, msgPasswordTooShort)
		return ErrValidation
	}
	res, err := a.api.Register(ctx, username, password)
	if err != nil {
		return a.failure(err, msgRegisterFailed)
	}
	a.alert(AlertSuccess, msgAccountCreated)
	return a.signIn(res)
}

// Login prompts for credentials, then calls LoginWith.
func (a *App) Login(ctx context.Context) error {
	username, password, err := a.promptCredentials()
	if err != nil {
		return err
	}
	return a.LoginWith(ctx, username, password)
}

// Register prompts for credentials, then calls RegisterWith.
func (a *App) Register(ctx context.Context) error {
	username, password, err := a.promptCredentials()
	if err != nil {
		return err
	}
	return a.RegisterWith(ctx, username, password)
}

func (a *App) promptCredentials() (string, string, error) {
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return "", "", err
	}
	pw, err := GetPassword(a.reader, a.out)
	if err != nil {
		return "", "", err
	}
	return username, string(pw), nil
}

// Logout clears the stored session and returns to the login view.
func (a *App) Logout(_ context.Context) error {
	a.session = Session{}
	err := a.store.Clear()
	a.Navigate(RouteLogin)
	return err
}

// expire handles a 401 from a protected call: the session is dropped.
func (a *App) expire() {
	a.session = Session{}
	_ = a.store.Clear()
	a.alert(AlertError, msgSessionExpired)
	a.Navigate(RouteLogin)
}

// protected runs fn only when logged in and handles 401 uniformly.
func (a *App) protected(fn func(token string) error) error {
	if !a.isLoggedIn() {
		a.Navigate(RouteDashboard)
		return ErrValidation
	}
	err := fn(a.session.Token)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Unauthorized() {
		a.expire()
	}
	return err
}

// Search looks term up and renders a card, or the not-found state. Errors
// that never reached the server render an alert instead.
func (a *App) Search(ctx context.Context, term string) error {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		a.alert(AlertError, msgTermRequired)
		return ErrValidation
	}
	return a.protected(func(token string) error {
		p, err := a.api.Search(ctx, token, term)
		if err != nil {
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				// transport failure, not a miss
				return a.failure(err, msgUnreachable)
			}
			if apiErr.Unauthorized() {
				return err
			}
			_ = NotFoundView(a.out, apiErr.Message)
			return err
		}
		return CardView(a.out, p)
	})
}

// History renders the caller's recent searches.
func (a *App) History(ctx context.Context) error {
	return a.protected(func(token string) error {
		entries, err := a.api.History(ctx, token)
		if err != nil {
			return a.failure(err, "could not load history")
		}
		return HistoryView(a.out, entries)
	})
}

// List renders one page of Pokémon names.
func (a *App) List(ctx context.Context, limit, offset string) error {
	return a.protected(func(token string) error {
		page, err := a.api.List(ctx, token, limit, offset)
		if err != nil {
			return a.failure(err, "could not load the list")
		}
		return ListView(a.out, page)
	})
}
