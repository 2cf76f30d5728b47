package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"poke_explorer/internal/models"
	"poke_explorer/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerRes models.AuthResult
	registerErr error
	loginRes    models.AuthResult
	loginErr    error
	parseID     string
	parseErr    error
	user        *models.User
	resolveErr  error

	lastRegisterUsername string
	lastRegisterPassword string
	lastLoginUsername    string
	lastParseToken       string
	parseCalls           int
}

func (m *mockAuth) Register(_ context.Context, username, password string) (models.AuthResult, error) {
	m.lastRegisterUsername = username
	m.lastRegisterPassword = password
	return m.registerRes, m.registerErr
}

func (m *mockAuth) Login(_ context.Context, username, _ string) (models.AuthResult, error) {
	m.lastLoginUsername = username
	return m.loginRes, m.loginErr
}

func (m *mockAuth) ParseToken(token string) (string, error) {
	m.parseCalls++
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

func (m *mockAuth) ResolveUser(_ context.Context, _ string) (*models.User, error) {
	return m.user, m.resolveErr
}

type mockPokemon struct {
	listBody   json.RawMessage
	detailBody json.RawMessage
	searchBody json.RawMessage
	err        error

	lastLimit, lastOffset string
	lastNameOrID          string
	lastUserID, lastTerm  string
	searchCalls           int
}

func (m *mockPokemon) List(_ context.Context, limit, offset string) (json.RawMessage, error) {
	m.lastLimit, m.lastOffset = limit, offset
	return m.listBody, m.err
}

func (m *mockPokemon) Detail(_ context.Context, nameOrID string) (json.RawMessage, error) {
	m.lastNameOrID = nameOrID
	return m.detailBody, m.err
}

func (m *mockPokemon) Search(_ context.Context, userID, term string) (json.RawMessage, error) {
	m.searchCalls++
	m.lastUserID, m.lastTerm = userID, term
	return m.searchBody, m.err
}

type mockHistory struct {
	entries []models.SearchHistoryEntry
	err     error
	lastMax int
}

func (m *mockHistory) Record(_ context.Context, userID, term string) (models.SearchHistoryEntry, error) {
	return models.SearchHistoryEntry{UserID: userID, Term: term}, m.err
}

func (m *mockHistory) RecentFor(_ context.Context, _ string, max int) ([]models.SearchHistoryEntry, error) {
	m.lastMax = max
	return m.entries, m.err
}

// ---- Shared Test Helpers ----

// signedIn returns a mockAuth that accepts any token as user u1 ("ash").
func signedIn() *mockAuth {
	return &mockAuth{parseID: "u1", user: &models.User{ID: "u1", Username: "ash"}}
}

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, 0)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
