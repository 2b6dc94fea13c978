// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakeapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/go-tick-sdk/internal/utils"
	"github.com/MKhiriev/go-tick-sdk/models"
	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "fakeapi"

type authModeCtxKey struct{}

// authModeFrom reports how the request authenticated. Only valid behind the
// authenticate middleware.
func authModeFrom(ctx context.Context) models.AuthMode {
	mode, _ := ctx.Value(authModeCtxKey{}).(models.AuthMode)
	return mode
}

func (s *Server) signon(w http.ResponseWriter, r *http.Request) {
	var req models.SignonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if req.Username != s.cfg.Username || req.Password != s.cfg.Password {
		s.logger.Warn().Str("username", req.Username).Msg("signon refused")
		http.Error(w, "username_password_not_match", http.StatusUnauthorized)
		return
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   req.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.SignKey))
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	s.webToken = signed
	inboxID := s.cfg.InboxID
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{Name: "t", Value: signed, Path: "/"})
	utils.WriteJSON(w, models.SignonResponse{
		Token:    signed,
		UserID:   "1",
		Username: req.Username,
		InboxID:  inboxID,
	}, http.StatusOK)
}

// authenticate admits web sessions by their "t" cookie and Open API sessions
// by bearer token, and records which kind the request is.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie("t"); err == nil && s.validWebToken(cookie.Value) {
			ctx := context.WithValue(r.Context(), authModeCtxKey{}, models.AuthModeWeb)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		if header := r.Header.Get("Authorization"); header != "" {
			token, err := utils.ParseBearerToken(header)
			if err == nil && s.cfg.APIToken != "" && token == s.cfg.APIToken {
				ctx := context.WithValue(r.Context(), authModeCtxKey{}, models.AuthModeAPIToken)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
		}

		http.Error(w, "user_not_sign_on", http.StatusUnauthorized)
	})
}

// webSessionOnly answers 405 for Open API sessions, matching the service's
// behavior on tag, filter, and habit writes.
func (s *Server) webSessionOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if authModeFrom(r.Context()) == models.AuthModeAPIToken {
			http.Error(w, "method_not_allowed_for_open_api", http.StatusMethodNotAllowed)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// validWebToken checks the cookie against the signed session: signature,
// issuer, and expiry all have to hold.
func (s *Server) validWebToken(raw string) bool {
	if raw == "" {
		return false
	}

	s.mu.Lock()
	issued := s.webToken
	s.mu.Unlock()
	if issued == "" || raw != issued {
		return false
	}

	_, err := jwt.Parse(raw, func(token *jwt.Token) (any, error) {
		return []byte(s.cfg.SignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())
	return err == nil
}
