package handlers

import (
	"errors"
	"io"
	"net/http"

	poke "poke_explorer"

	"github.com/gin-gonic/gin"
)

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// An empty body leaves dst zeroed so the service reports the missing fields.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		h.log.Infow("bad_request_body", "path", c.Request.URL.Path, "err", err)
		c.JSON(http.StatusBadRequest, errorBody(errInvalidBody, ""))
		return false
	}
	return true
}

// @Summary      Register
// @Description  Creates an account and returns a session token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      poke_explorer.AuthRequest  true  "Credentials"
// @Success      201   {object}  poke_explorer.AuthResponse
// @Failure      400   {object}  poke_explorer.ErrorResponse
// @Failure      500   {object}  poke_explorer.ErrorResponse
// @Router       /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input poke.AuthRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	res, err := h.services.Register(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.respondError(c, err, "auth_register_failed", "username", input.Username)
		return
	}

	c.JSON(http.StatusCreated, poke.AuthResponse{ID: res.ID, Username: res.Username, Token: res.Token})
}

// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      poke_explorer.AuthRequest  true  "Credentials"
// @Success      200   {object}  poke_explorer.AuthResponse
// @Failure      400   {object}  poke_explorer.ErrorResponse
// @Failure      401   {object}  poke_explorer.ErrorResponse
// @Failure      500   {object}  poke_explorer.ErrorResponse
// @Router       /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input poke.AuthRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	res, err := h.services.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.respondError(c, err, "auth_sign_in_failed", "username", input.Username)
		return
	}

	c.JSON(http.StatusOK, poke.AuthResponse{ID: res.ID, Username: res.Username, Token: res.Token})
}
