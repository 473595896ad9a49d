package main

import (
	"net/http"
	"strings"
	"time"

	"coffeeshop/pkg/account"
	"coffeeshop/pkg/order"
	"coffeeshop/pkg/otel"
	"coffeeshop/pkg/session"
)

// loginRequest represents login credentials.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Account   account.Account `json:"account"`
}

type profileResponse struct {
	Account account.Account `json:"account"`
	Orders  int             `json:"order_count"`
	Recent  []order.Order   `json:"recent_orders"`
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// registerHandler creates a customer account.
// @Summary Register
// @Accept json
// @Produce json
// @Param account body account.Registration true "Registration form"
// @Success 201 {object} account.Account
// @Failure 400 {string} string
// @Failure 409 {string} string
// @Router /register [post]
func (s *server) registerHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "registerHandler")
	defer span.End()

	var req account.Registration
	if err := decodeJSON(w, r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	a, err := s.accounts.Register(ctx, req)
	if err != nil {
		s.fail(ctx, w, "register", err)
		return
	}
	s.log.Info(ctx, "account registered", "account_id", a.ID)
	writeJSON(w, http.StatusCreated, a)
}

// loginHandler handles user login and session creation.
// @Summary Login
// @Description Authenticates the user, starts a session and sets the session cookie
// @Accept json
// @Produce json
// @Param creds body loginRequest true "Credentials"
// @Success 200 {object} loginResponse
// @Failure 401 {string} string
// @Router /login [post]
func (s *server) loginHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "loginHandler")
	defer span.End()

	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	a, err := s.accounts.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		s.fail(ctx, w, "authenticate", err)
		return
	}

	sess := session.New(a)
	if err := s.sessions.Save(ctx, sess); err != nil {
		s.fail(ctx, w, "save session", err)
		return
	}
	token, expires, err := s.tokens.Issue(sess)
	if err != nil {
		s.fail(ctx, w, "issue token", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	s.log.Info(ctx, "login", "account_id", a.ID, "admin", a.IsAdmin)
	writeJSON(w, http.StatusOK, loginResponse{Token: token, ExpiresAt: expires, Account: a})
}

// logoutHandler ends the current session.
// @Summary Logout
// @Success 204
// @Security BearerAuth
// @Router /logout [post]
func (s *server) logoutHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "logoutHandler")
	defer span.End()

	sess, _ := session.FromContext(ctx)
	if err := s.sessions.Delete(ctx, sess.ID); err != nil {
		s.fail(ctx, w, "delete session", err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
	})
	w.WriteHeader(http.StatusNoContent)
}

// profileHandler returns the signed-in account.
// @Summary Profile
// @Produce json
// @Success 200 {object} profileResponse
// @Security BearerAuth
// @Router /profile [get]
func (s *server) profileHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "profileHandler")
	defer span.End()

	sess, _ := session.FromContext(ctx)
	a, err := s.accounts.Get(ctx, sess.AccountID)
	if err != nil {
		s.fail(ctx, w, "get account", err)
		return
	}
	n, err := s.orders.CountByAccount(ctx, a.ID)
	if err != nil {
		s.fail(ctx, w, "count orders", err)
		return
	}
	recent, err := s.orders.List(ctx, order.Filter{AccountID: a.ID, Limit: 5})
	if err != nil {
		s.fail(ctx, w, "list orders", err)
		return
	}
	writeJSON(w, http.StatusOK, profileResponse{Account: a, Orders: n, Recent: recent})
}

// contactHandler accepts a message from the contact form.
// @Summary Contact
// @Accept json
// @Produce json
// @Param message body contactRequest true "Message"
// @Success 202 {object} map[string]string
// @Router /contact [post]
func (s *server) contactHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "contactHandler")
	defer span.End()

	var req contactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" || !strings.Contains(req.Email, "@") || strings.TrimSpace(req.Message) == "" {
		http.Error(w, "name, email and message are required", http.StatusBadRequest)
		return
	}
	s.log.Info(ctx, "contact message", "email", account.NormalizeEmail(req.Email), "subject", req.Subject)
	writeJSON(w, http.StatusAccepted, map[string]string{
		"message": "Thank you for your message! We will get back to you soon.",
	})
}
