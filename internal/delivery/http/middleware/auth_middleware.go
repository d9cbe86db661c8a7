package middleware

import (
	"strings"

	"hr-portal/internal/domain/user"
	"hr-portal/internal/pkg/jwt"
	"hr-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

const CtxIdentityKey = "identity"

type AuthMiddleware struct {
	jwt       jwt.Service
	adminRole string
}

func NewAuthMiddleware(jwtSvc jwt.Service, adminRole string) *AuthMiddleware {
	adminRole = strings.TrimSpace(adminRole)
	if adminRole == "" {
		adminRole = user.RoleAdmin
	}
	return &AuthMiddleware{jwt: jwtSvc, adminRole: adminRole}
}

// Middleware rejects requests without a valid bearer token.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		id, err := m.authenticate(c)
		if err != nil {
			return err
		}
		c.Locals(CtxIdentityKey, id)
		return c.Next()
	}
}

// Admin is Middleware plus a role check.
func (m *AuthMiddleware) Admin() fiber.Handler {
	return func(c fiber.Ctx) error {
		id, err := m.authenticate(c)
		if err != nil {
			return err
		}
		if !id.IsAdmin(m.adminRole) {
			return NewAppError(fiber.StatusForbidden, response.MessageForbidden, nil, nil)
		}
		c.Locals(CtxIdentityKey, id)
		return c.Next()
	}
}

// Optional records the caller when a valid token is present and lets anonymous
// requests through.
func (m *AuthMiddleware) Optional() fiber.Handler {
	return func(c fiber.Ctx) error {
		if id, err := m.authenticate(c); err == nil {
			c.Locals(CtxIdentityKey, id)
		}
		return c.Next()
	}
}

// IsAdmin reports whether the request carries an admin identity.
func (m *AuthMiddleware) IsAdmin(c fiber.Ctx) bool {
	id, ok := IdentityFrom(c)
	return ok && id.IsAdmin(m.adminRole)
}

func (m *AuthMiddleware) authenticate(c fiber.Ctx) (user.Identity, error) {
	token, ok := bearerTokenFromHeader(c.Get("Authorization"))
	if !ok {
		return user.Identity{}, NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	claims, err := m.jwt.ValidateToken(token)
	if err != nil {
		return user.Identity{}, NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, err)
	}

	return user.Identity{
		TokenIdentifier: claims.Subject,
		Name:            claims.Name,
		Image:           claims.Picture,
		Email:           claims.Email,
		Role:            claims.Role,
	}, nil
}

func IdentityFrom(c fiber.Ctx) (user.Identity, bool) {
	id, ok := c.Locals(CtxIdentityKey).(user.Identity)
	return id, ok
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
