/*
handlers.go - HTTP handlers for the leave ledger

PURPOSE:
  Exposes the leave engine over a small JSON API. Handles HTTP
  request/response, session cookies, and delegates everything else to the
  domain layer.

ENDPOINTS:
  Accounts:
    POST   /api/signup          Create account
    POST   /api/login           Authenticate, set session cookie
    POST   /api/logout          Drop session
    POST   /api/password-hint   Password recovery hint

  Leave (session required):
    GET    /api/dashboard/{username}          Requests + used/remaining
    POST   /api/leaves                        Apply for leave
    DELETE /api/leaves/{username}/{index}     Cancel by listing position

OWNERSHIP:
  Dashboard and cancel compare the session user against the {username} path
  parameter and reject mismatches. This route-level check is the ONLY
  ownership enforcement in the system; the ledger itself trusts its caller.

ERROR HANDLING:
  Domain errors are returned as {"error": "..."} with their message intact:
  - 400: validation failures, weak/mismatched passwords, bad input
  - 401: login failures, missing session
  - 403: session user does not match the path username
  - 404: cancel target or hint username not found
  - 409: duplicate username on signup
  - 500: corrupt backing files, I/O failures
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/warp/leave-ledger/leave"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Service  *leave.Service
	Sessions *Sessions
	Logger   *zap.Logger
}

// NewHandler creates a new handler around the leave service.
func NewHandler(service *leave.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Service:  service,
		Sessions: NewSessions(),
		Logger:   logger,
	}
}

// =============================================================================
// ACCOUNT HANDLERS
// =============================================================================

// Signup creates an account.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	_, err := h.Service.Directory.Create(r.Context(), req.Username, req.Password, req.ConfirmPassword, req.Email)
	if err != nil {
		h.writeError(w, h.statusFor(err), err)
		return
	}
	h.writeJSON(w, http.StatusCreated, MessageDTO{Message: "account created successfully"})
}

// Login authenticates and opens a session.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	username := strings.TrimSpace(req.Username)
	user, err := h.Service.Directory.Authenticate(r.Context(), username, req.Password)
	if err != nil {
		status := h.statusFor(err)
		if leave.IsAuthError(err) {
			status = http.StatusUnauthorized
		}
		h.writeError(w, status, err)
		return
	}

	token := h.Sessions.Create(user.Username)
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
	h.writeJSON(w, http.StatusOK, MessageDTO{Message: "login successful"})
}

// Logout drops the current session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		h.Sessions.Destroy(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	h.writeJSON(w, http.StatusOK, MessageDTO{Message: "you have been logged out"})
}

// PasswordHint returns the recovery hint for an account.
func (h *Handler) PasswordHint(w http.ResponseWriter, r *http.Request) {
	var req PasswordHintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	hint, err := h.Service.Directory.PasswordHint(r.Context(), strings.TrimSpace(req.Username))
	if err != nil {
		h.writeError(w, h.statusFor(err), err)
		return
	}
	h.writeJSON(w, http.StatusOK, HintDTO{Hint: hint})
}

// =============================================================================
// LEAVE HANDLERS
// =============================================================================

// Dashboard returns the user's requests with used/remaining day counts.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if !h.requireOwner(w, r, username) {
		return
	}

	dashboard, err := h.Service.Dashboard(r.Context(), username)
	if err != nil {
		h.writeError(w, h.statusFor(err), err)
		return
	}
	h.writeJSON(w, http.StatusOK, toDashboardDTO(dashboard))
}

// ApplyLeave submits a leave request for the session user.
func (h *Handler) ApplyLeave(w http.ResponseWriter, r *http.Request) {
	username, ok := h.Sessions.user(r)
	if !ok {
		h.writeError(w, http.StatusUnauthorized, errors.New("please log in"))
		return
	}

	var req ApplyLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	stored, err := h.Service.Apply(r.Context(), username, req.StartDate, req.EndDate, req.LeaveType, req.Reason)
	if err != nil {
		h.writeError(w, h.statusFor(err), err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toLeaveDTO(stored))
}

// CancelLeave cancels the index-th request of the user's current listing.
func (h *Handler) CancelLeave(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if !h.requireOwner(w, r, username) {
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, errors.New("invalid index"))
		return
	}

	if err := h.Service.Cancel(r.Context(), username, index); err != nil {
		h.writeError(w, h.statusFor(err), err)
		return
	}
	h.writeJSON(w, http.StatusOK, MessageDTO{Message: "leave request cancelled"})
}

// =============================================================================
// HELPERS
// =============================================================================

// requireOwner ensures the request carries a session whose user matches the
// path username. Writes the error response itself when it fails.
func (h *Handler) requireOwner(w http.ResponseWriter, r *http.Request, username string) bool {
	sessionUser, ok := h.Sessions.user(r)
	if !ok {
		h.writeError(w, http.StatusUnauthorized, errors.New("please log in"))
		return false
	}
	if sessionUser != username {
		h.writeError(w, http.StatusForbidden, errors.New("unauthorized action"))
		return false
	}
	return true
}

func (h *Handler) statusFor(err error) int {
	var ve *leave.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, leave.ErrDuplicateUsername):
		return http.StatusConflict
	case errors.Is(err, leave.ErrPasswordMismatch), errors.Is(err, leave.ErrWeakPassword):
		return http.StatusBadRequest
	case errors.Is(err, leave.ErrWrongPassword):
		return http.StatusUnauthorized
	case errors.Is(err, leave.ErrUserNotFound):
		// Not-found on login is an auth failure; elsewhere it is a 404.
		return http.StatusNotFound
	case errors.Is(err, leave.ErrLeaveNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.Error("encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.Logger.Error("request failed", zap.Error(err))
		// Do not leak internals; the message for 5xx is generic.
		err = errors.New("internal error")
	}
	h.writeJSON(w, status, ErrorDTO{Error: err.Error()})
}
