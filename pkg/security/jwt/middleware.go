package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nnreact/job-portal/pkg/auth"
)

const (
	CookieName = "token"

	localUserID = "userId"
	localRole   = "role"
)

func deny(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"message": msg, "success": false})
}

// NewAuthMiddleware accepts the session cookie, "Authorization: Bearer <t>"
// or a bare token in Authorization. On success the user id and role are
// stored in c.Locals. list may be nil.
func NewAuthMiddleware(gen *Generator, list Denylist, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := TokenFromRequest(c)
		if tokenStr == "" {
			return deny(c, http.StatusUnauthorized, "User not authenticated")
		}
		claims, err := gen.Parse(tokenStr)
		if err != nil {
			return deny(c, http.StatusUnauthorized, "Invalid token")
		}
		if list != nil && claims.ID != "" {
			revoked, err := list.Contains(c.UserContext(), claims.ID)
			if err != nil {
				// revocation store down: the signature and expiry still hold
				log.Warn().Err(err).Str("jti", claims.ID).Msg("token denylist lookup failed")
			} else if revoked {
				return deny(c, http.StatusUnauthorized, "Invalid token")
			}
		}
		c.Locals(localUserID, claims.Subject)
		c.Locals(localRole, string(claims.Role))
		return c.Next()
	}
}

// RequireRole must run after NewAuthMiddleware.
func RequireRole(roles ...auth.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := Role(c)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return deny(c, http.StatusForbidden, "Access denied")
	}
}

// TokenFromRequest returns the session cookie or the Authorization header token.
func TokenFromRequest(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies(CookieName)); v != "" {
		return v
	}
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if scheme, rest, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(rest)
	}
	return header
}

func UserID(c *fiber.Ctx) (uuid.UUID, bool) {
	s, _ := c.Locals(localUserID).(string)
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func Role(c *fiber.Ctx) auth.Role {
	s, _ := c.Locals(localRole).(string)
	return auth.Role(s)
}
