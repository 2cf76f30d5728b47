package client

import (
	"io"
	"strings"
	"text/template"

	poke "poke_explorer"
)

// Alert kinds.
const (
	AlertError   = "error"
	AlertSuccess = "success"
)

var views = template.Must(template.New("views").Funcs(template.FuncMap{
	"upper": strings.ToUpper,
	"date":  func(e poke.HistoryEntry) string { return e.Timestamp.Local().Format("2006-01-02 15:04:05") },
}).Parse(`
{{define "login"}}
⚡ Poké-Explorer
Discover the world of Pokémon

  login      sign in with your username and password
  register   create a new account
  exit       leave
{{end}}

{{define "dashboard"}}
⚡ Poké-Explorer                                  👤 {{.Username}}

  search <name or id>     find a Pokémon
  history                 your recent searches
  list [limit] [offset]   browse Pokémon names
  logout                  sign out

Welcome! Search for a Pokémon to start exploring.
{{end}}

{{define "card"}}
┌──────────────────────────────
│ {{.Name | upper}}  {{.DisplayID}}
│ image: {{.ImageURL}}
│ types:{{range .TypeNames}} [{{.}}]{{end}}
└──────────────────────────────
{{end}}

{{define "notfound"}}
❌ Not found
{{.}}
{{end}}

{{define "history"}}
{{- if not .}}No searches yet.
{{else}}Recent searches:
{{range .}}  {{date .}}  {{.Term}}
{{end}}{{end}}
{{- end}}

{{define "list"}}
{{- if not .Results}}No results.
{{else}}{{.Count}} Pokémon in total:
{{range .Results}}  - {{.Name}}
{{end}}{{end}}
{{- end}}

{{define "alert"}}[{{.Kind}}] {{.Message}}
{{end}}
`))

func render(w io.Writer, name string, data any) error {
	return views.ExecuteTemplate(w, name, data)
}

// LoginView renders the sign-in screen.
func LoginView(w io.Writer) error { return render(w, "login", nil) }

// DashboardView renders the dashboard header for username.
func DashboardView(w io.Writer, username string) error {
	if username == "" {
		username = "Trainer"
	}
	return render(w, "dashboard", struct{ Username string }{username})
}

// CardView renders a single search result.
func CardView(w io.Writer, p Pokemon) error { return render(w, "card", p) }

// NotFoundView renders the inline error state shown when a search fails.
func NotFoundView(w io.Writer, message string) error {
	if message == "" {
		message = "Pokémon not found. Try another name or ID."
	}
	return render(w, "notfound", message)
}

func HistoryView(w io.Writer, entries []poke.HistoryEntry) error {
	return render(w, "history", entries)
}

func ListView(w io.Writer, page PokemonPage) error { return render(w, "list", page) }

// Alert renders a one-line message that does not change the route.
func Alert(w io.Writer, kind, message string) error {
	return render(w, "alert", struct{ Kind, Message string }{kind, message})
}
