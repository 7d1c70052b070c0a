package interceptor

import (
	"context"
	"net/http"
	"strings"

	connect "connectrpc.com/connect"
)

type contextKey string

const (
	tokenHeader  = "Authorization"
	cookieHeader = "Cookie"
	bearerPrefix = "Bearer "
)

const sessionTokenKey contextKey = "session_token"

// SessionTokenInterceptor stores the caller's session JWT in the context.
// A bearer Authorization header wins over the session cookie.
func SessionTokenInterceptor(cookieName string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if req.Spec().IsClient {
				return next(ctx, req)
			}

			if token := tokenFromHeader(req.Header(), cookieName); token != "" {
				ctx = WithSessionToken(ctx, token)
			}

			return next(ctx, req)
		}
	}
}

func tokenFromHeader(header http.Header, cookieName string) string {
	rawToken := strings.TrimSpace(header.Get(tokenHeader))
	if rawToken != "" {
		if len(rawToken) >= len(bearerPrefix) && strings.EqualFold(rawToken[:len(bearerPrefix)], bearerPrefix) {
			return strings.TrimSpace(rawToken[len(bearerPrefix):])
		}

		return rawToken
	}

	if cookieName == "" {
		return ""
	}

	cookies, err := http.ParseCookie(strings.Join(header.Values(cookieHeader), "; "))
	if err != nil {
		return ""
	}

	for _, cookie := range cookies {
		if cookie.Name == cookieName {
			return cookie.Value
		}
	}

	return ""
}

func WithSessionToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, sessionTokenKey, token)
}

func ExtractSessionToken(ctx context.Context) string {
	token, ok := ctx.Value(sessionTokenKey).(string)
	if !ok {
		return ""
	}

	return token
}
