package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"migration-schedules/interfaces/gateway"
	"migration-schedules/pkg/auth"

	"github.com/awslabs/aws-lambda-go-api-proxy/core"
	"go.uber.org/zap"
)

type authorizerKey struct{}

// AuthorizerFromContext returns the authorizer claims attached by Authenticate
func AuthorizerFromContext(ctx context.Context) map[string]interface{} {
	authorizer, _ := ctx.Value(authorizerKey{}).(map[string]interface{})
	return authorizer
}

// Authenticate resolves the caller's claims. Behind API Gateway the
// authorizer has already run and its claims are taken from the proxied
// request context. Otherwise a bearer token is required when a validator is
// configured; without one requests pass through anonymously.
func Authenticate(validator *auth.JWTValidator, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if proxyCtx, ok := core.GetAPIGatewayV2ContextFromContext(r.Context()); ok {
				var authorizer map[string]interface{}
				if proxyCtx.Authorizer != nil {
					switch {
					case proxyCtx.Authorizer.JWT != nil:
						authorizer = gateway.ClaimsAuthorizer(proxyCtx.Authorizer.JWT.Claims)
					case proxyCtx.Authorizer.Lambda != nil:
						authorizer = map[string]interface{}{"claims": proxyCtx.Authorizer.Lambda}
					}
				}
				next.ServeHTTP(w, withAuthorizer(r, authorizer))
				return
			}

			if validator == nil {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondUnauthorized(w, "Missing authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				respondUnauthorized(w, "Invalid authorization header format")
				return
			}

			claims, err := validator.ValidateToken(parts[1])
			if err != nil {
				logger.Debug("Rejected bearer token", zap.Error(err))
				switch err {
				case auth.ErrExpiredToken:
					respondUnauthorized(w, "Token has expired")
				default:
					respondUnauthorized(w, "Invalid token")
				}
				return
			}

			next.ServeHTTP(w, withAuthorizer(r, gateway.ClaimsAuthorizer(claims.AsMap())))
		})
	}
}

func withAuthorizer(r *http.Request, authorizer map[string]interface{}) *http.Request {
	if authorizer == nil {
		return r
	}
	return r.WithContext(context.WithValue(r.Context(), authorizerKey{}, authorizer))
}

// respondUnauthorized writes an error body in the same shape as the API
func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string][]string{"errors": {message}})
}
