package handlers

import (
	"encoding/json"
	"net/http"

	poke "poke_explorer"
	"poke_explorer/internal/models"

	"github.com/gin-gonic/gin"
)

const contentTypeJSON = "application/json; charset=utf-8"

// relay writes an upstream payload through unchanged.
func relay(c *gin.Context, body json.RawMessage) {
	c.Data(http.StatusOK, contentTypeJSON, body)
}

// @Summary      List Pokémon
// @Description  Relays the PokéAPI list page. limit and offset are forwarded verbatim.
// @Tags         pokemon
// @Produce      json
// @Param        limit   query     string  false  "Page size"  default(20)
// @Param        offset  query     string  false  "Offset"     default(0)
// @Success      200     {object}  map[string]interface{}
// @Failure      401     {object}  poke_explorer.ErrorResponse
// @Failure      500     {object}  poke_explorer.ErrorResponse
// @Router       /api/pokemon [get]
// @Security     BearerAuth
func (h *Handler) listPokemon(c *gin.Context) {
	limit, offset := c.Query("limit"), c.Query("offset")
	body, err := h.services.List(c.Request.Context(), limit, offset)
	if err != nil {
		h.respondError(c, err, "pokemon_list_failed", "limit", limit, "offset", offset)
		return
	}
	relay(c, body)
}

// @Summary      Pokémon details
// @Tags         pokemon
// @Produce      json
// @Param        nameOrId  path      string  true  "Name or national dex number"  example(pikachu)
// @Success      200       {object}  map[string]interface{}
// @Failure      401       {object}  poke_explorer.ErrorResponse
// @Failure      404       {object}  poke_explorer.ErrorResponse
// @Failure      500       {object}  poke_explorer.ErrorResponse
// @Router       /api/pokemon/{nameOrId} [get]
// @Security     BearerAuth
func (h *Handler) getPokemon(c *gin.Context) {
	nameOrID := c.Param("nameOrId")
	body, err := h.services.Detail(c.Request.Context(), nameOrID)
	if err != nil {
		h.respondError(c, err, "pokemon_detail_failed", "name_or_id", nameOrID)
		return
	}
	relay(c, body)
}

// @Summary      Search
// @Description  Records the term in the caller's history, then looks the Pokémon up.
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        body  body      poke_explorer.SearchRequest  true  "Search term"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  poke_explorer.ErrorResponse
// @Failure      401   {object}  poke_explorer.ErrorResponse
// @Failure      404   {object}  poke_explorer.ErrorResponse
// @Failure      500   {object}  poke_explorer.ErrorResponse
// @Router       /api/search [post]
// @Security     BearerAuth
func (h *Handler) search(c *gin.Context) {
	var req poke.SearchRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	userID := c.GetString(ctxUserID)
	body, err := h.services.Search(c.Request.Context(), userID, req.Term)
	if err != nil {
		h.respondError(c, err, "search_failed", "user_id", userID, "term", req.Term)
		return
	}
	relay(c, body)
}

// @Summary      Search history
// @Description  The caller's most recent searches, newest first.
// @Tags         search
// @Produce      json
// @Success      200  {array}   poke_explorer.HistoryEntry
// @Failure      401  {object}  poke_explorer.ErrorResponse
// @Failure      500  {object}  poke_explorer.ErrorResponse
// @Router       /api/search/history [get]
// @Security     BearerAuth
func (h *Handler) searchHistory(c *gin.Context) {
	userID := c.GetString(ctxUserID)
	entries, err := h.services.RecentFor(c.Request.Context(), userID, h.historyLimit)
	if err != nil {
		h.respondError(c, err, "search_history_failed", "user_id", userID)
		return
	}
	c.JSON(http.StatusOK, toHistoryResponse(entries))
}

func toHistoryResponse(entries []models.SearchHistoryEntry) []poke.HistoryEntry {
	out := make([]poke.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, poke.HistoryEntry{
			ID:        e.ID,
			Term:      e.Term,
			User:      e.UserID,
			Timestamp: e.Timestamp,
		})
	}
	return out
}
