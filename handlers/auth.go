package handlers

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Nerzal/gocloak/v13"
	"github.com/google/uuid"
)

// Caller is the authenticated user of the HTTP API.
type Caller struct {
	ID   uuid.UUID
	Name string
}

type tokenVerifier interface {
	GetUserInfo(ctx context.Context, accessToken, realm string) (*gocloak.UserInfo, error)
}

type AuthHandler struct {
	keycloak tokenVerifier
	realm    string
}

func NewAuthHandler(keycloak *gocloak.GoCloak, realm string) *AuthHandler {
	return &AuthHandler{
		keycloak: keycloak,
		realm:    realm,
	}
}

// Authorize resolves the bearer token in authHeader to a Caller. The Body of
// a successful Result is the Caller.
func (h *AuthHandler) Authorize(ctx context.Context, authHeader string) Result {
	if authHeader == "" {
		return Unauthorized("Missing authorization header")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return Unauthorized("Invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")

	userInfo, err := h.keycloak.GetUserInfo(ctx, token, h.realm)
	if err != nil {
		return Unauthorized("Invalid token")
	}
	if userInfo == nil || userInfo.Sub == nil {
		return Unauthorized("User not found")
	}

	id, err := uuid.Parse(*userInfo.Sub)
	if err != nil {
		slog.Error("Failed to parse user ID from Keycloak", "sub", *userInfo.Sub, "error", err)
		return InternalError(err, "Failed to parse user ID from Keycloak")
	}

	// If preferred_username is empty, use the part before the @ in the email
	var name string
	if userInfo.PreferredUsername != nil {
		name = *userInfo.PreferredUsername
	}
	if name == "" && userInfo.Email != nil {
		name = strings.Split(*userInfo.Email, "@")[0]
	}

	return Ok(Caller{ID: id, Name: name})
}
