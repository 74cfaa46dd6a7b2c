package router

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/jbeshir/movie-userdata/internal/domain"
)

const auth0AuthHeaderPrefix = "Bearer auth0|"

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	UserID string
	Method domain.AuthMethod
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (wrong auth type).
// Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware creates a middleware that validates requests using multiple authentication methods.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				result, err := validate(r)
				if result == nil && err == nil {
					continue // This validator doesn't apply
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = fmt.Fprintf(w, `{"message":"%s"}`, err.Error())
					return
				}

				ctx := domain.ContextWithUserID(r.Context(), result.UserID)
				ctx = domain.ContextWithAuthMethod(ctx, result.Method)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// No validator matched - continue without auth (for public endpoints)
			next.ServeHTTP(w, r)
		})
	}
}

// auth0TokenExtractor reads the token from an "auth0|"-prefixed bearer header, or from the
// access_token query parameter for browser websocket clients that cannot set headers.
var auth0TokenExtractor = jwtmiddleware.MultiTokenExtractor(
	func(r *http.Request) (string, error) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, auth0AuthHeaderPrefix) {
			return "", nil
		}
		return authHeader[len(auth0AuthHeaderPrefix):], nil
	},
	jwtmiddleware.ParameterTokenExtractor("access_token"),
)

// TokenValidator checks a raw JWT and returns its validated claims.
type TokenValidator func(r *http.Request, token string) (*validator.ValidatedClaims, error)

// NewAuth0Validator creates a validator for Auth0 JWT tokens.
func NewAuth0Validator(auth0Domain, auth0Audience string) (AuthValidator, error) {
	issuerURL, err := url.Parse("https://" + auth0Domain + "/")
	if err != nil {
		return nil, fmt.Errorf("failed to parse the issuer url: %w", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)
	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{auth0Audience},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT validator: %w", err)
	}

	return newJWTValidator(func(r *http.Request, token string) (*validator.ValidatedClaims, error) {
		claims, err := jwtValidator.ValidateToken(r.Context(), token)
		if err != nil {
			return nil, err
		}
		return claims.(*validator.ValidatedClaims), nil
	}), nil
}

func newJWTValidator(validate TokenValidator) AuthValidator {
	return func(r *http.Request) (*AuthResult, error) {
		token, err := auth0TokenExtractor(r)
		if err != nil {
			return nil, fmt.Errorf("unable to read auth token")
		}
		if token == "" {
			return nil, nil
		}

		claims, err := validate(r, token)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT token")
		}

		return &AuthResult{
			UserID: claims.RegisteredClaims.Subject,
			Method: domain.AuthMethodAuth0,
		}, nil
	}
}

// NewHeaderValidator trusts a user id set by an identity proxy in front of the service.
// Only enable it when that proxy strips the header from client requests.
func NewHeaderValidator(header string) AuthValidator {
	return func(r *http.Request) (*AuthResult, error) {
		userID := strings.TrimSpace(r.Header.Get(header))
		if userID == "" {
			return nil, nil
		}

		return &AuthResult{
			UserID: userID,
			Method: domain.AuthMethodHeader,
		}, nil
	}
}
