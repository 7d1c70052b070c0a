package interceptor

import (
	"context"
	"errors"
	"testing"

	connect "connectrpc.com/connect"
)

func TestSessionTokenInterceptorSuccess(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		headerValue   string
		cookieValue   string
		expectedToken string
	}{
		{
			name:          "with bearer prefix",
			headerValue:   "Bearer session-token",
			expectedToken: "session-token",
		},
		{
			name:          "without prefix",
			headerValue:   "raw-token",
			expectedToken: "raw-token",
		},
		{
			name:          "with whitespace and lowercase prefix",
			headerValue:   "   bearer   spaced-token  ",
			expectedToken: "spaced-token",
		},
		{
			name:          "from session cookie",
			cookieValue:   "theme=dark; primind_session=cookie-token",
			expectedToken: "cookie-token",
		},
		{
			name:          "header wins over cookie",
			headerValue:   "Bearer header-token",
			cookieValue:   "primind_session=cookie-token",
			expectedToken: "header-token",
		},
		{
			name:          "no credentials",
			cookieValue:   "theme=dark",
			expectedToken: "",
		},
	}

	for _, tt := range testCases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := connect.NewRequest(&struct{}{})
			if tt.headerValue != "" {
				req.Header().Set(tokenHeader, tt.headerValue)
			}

			if tt.cookieValue != "" {
				req.Header().Set(cookieHeader, tt.cookieValue)
			}

			interceptor := SessionTokenInterceptor("primind_session")
			var called bool

			next := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
				called = true

				if got := ExtractSessionToken(ctx); got != tt.expectedToken {
					t.Fatalf("ExtractSessionToken() = %q, want %q", got, tt.expectedToken)
				}

				return connect.NewResponse(&struct{}{}), nil
			}

			if _, err := interceptor(next)(context.Background(), req); err != nil {
				t.Fatalf("SessionTokenInterceptor returned error: %v", err)
			}

			if !called {
				t.Fatalf("next handler was not called")
			}
		})
	}
}

func TestSessionTokenInterceptorPropagatesError(t *testing.T) {
	t.Parallel()

	errNext := errors.New("next handler error")

	req := connect.NewRequest(&struct{}{})
	req.Header().Set(tokenHeader, "Bearer token")

	next := func(context.Context, connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, errNext
	}

	if _, err := SessionTokenInterceptor("primind_session")(next)(context.Background(), req); !errors.Is(err, errNext) {
		t.Fatalf("expected %v, got %v", errNext, err)
	}
}
