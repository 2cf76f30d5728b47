package client

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	poke "poke_explorer"

	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
	onSearch func()
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Search(_ context.Context, term string) error {
	f.calls = append(f.calls, "search:"+term)
	if f.onSearch != nil {
		f.onSearch()
	}
	return nil
}
func (f *fakeExec) History(context.Context) error {
	f.calls = append(f.calls, "history")
	return nil
}
func (f *fakeExec) List(_ context.Context, limit, offset string) error {
	f.calls = append(f.calls, "list:"+limit+","+offset)
	return nil
}
func (f *fakeExec) Navigate(r Route) { f.calls = append(f.calls, "open:"+string(r)) }

func silence(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			parts = append(parts, strings.TrimSpace(toString(v)))
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func TestRunREPL_Dispatch(t *testing.T) {
	lines := silence(t)
	input := strings.Join([]string{
		"help",
		"login",
		"",
		"search Mr Mime",
		"history",
		"list 5",
		"list 5 10",
		"open #/dashboard",
		"foobar",
		"logout",
		"exit",
		"search never",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, rdr(input))

	require.Equal(t, []string{
		"login",
		"search:Mr Mime",
		"history",
		"list:5,",
		"list:5,10",
		"open:#/dashboard",
		"logout",
	}, exec.calls)

	joined := strings.Join(*lines, "\n")
	require.Contains(t, joined, "Available commands: login")
	require.Contains(t, joined, "Unknown command: foobar")
	require.Contains(t, joined, "Bye!")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	silence(t)
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("history"))
	require.Equal(t, []string{"history"}, exec.calls)
}

func TestRunREPL_ReturnsOnCancelWhileWaitingForInput(t *testing.T) {
	lines := silence(t)
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	exec := &fakeExec{}
	done := make(chan struct{})
	go func() {
		defer close(done)
		runREPL(ctx, exec, func() string { return "" }, bufio.NewReader(pr))
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("runREPL did not return after cancel")
	}
	require.Empty(t, exec.calls)
	require.Contains(t, strings.Join(*lines, "\n"), "Bye!")
}

func TestRunREPL_CancelDuringCommandSkipsTheRest(t *testing.T) {
	silence(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	exec := &fakeExec{loggedIn: true, onSearch: cancel}
	runREPL(ctx, exec, func() string { return "" }, rdr("search pikachu\nhistory\nlogout\n"))

	require.Equal(t, []string{"search:pikachu"}, exec.calls)
}

func TestApp_RunEndToEnd(t *testing.T) {
	silence(t)
	stubTerminal(t, false, nil, nil)

	api := &fakeAPI{authRes: poke.AuthResponse{ID: "u1", Username: "ash", Token: "tok"}}
	api.pokemon.ID, api.pokemon.Name = 25, "pikachu"
	store := &memStore{}
	a, out := newTestApp(api, store, "login\nash\npikachu1\nsearch Pikachu\nlogout\nexit\n")

	a.Run(context.Background())

	require.Equal(t, []string{"login:ash", "search"}, api.calls)
	require.Equal(t, "pikachu", api.lastTerm)
	require.Contains(t, out.String(), "#025")
	require.Equal(t, StateLoggedOut, a.State())
	require.Equal(t, 1, store.clears)
}
