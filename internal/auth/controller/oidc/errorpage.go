package oidc

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/KasumiMercury/primind-auth/internal/auth/domain/autherr"
)

// Provider text only reaches the page through html/template's contextual
// escaping.
var errorPage = template.Must(template.New("error").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Sign-in error</title></head>
<body>
<h1>{{.Title}}</h1>
<p>{{.Message}}</p>
{{- if .Code}}
<p>Error code: <code>{{.Code}}</code></p>
{{- end}}
{{- if .ProviderCode}}
<p>Provider response: <code>{{.ProviderCode}}</code>{{if .ProviderMessage}}: {{.ProviderMessage}}{{end}}</p>
{{- end}}
<p><a href="/">Return home</a></p>
</body>
</html>
`))

type errorView struct {
	Title           string
	Message         string
	Code            string
	ProviderCode    string
	ProviderMessage string
}

// statusFor maps an autherr code to the response status.
func statusFor(err error) int {
	code, _ := autherr.CodeOf(err)

	switch code {
	case autherr.CodeMissingState,
		autherr.CodeInvalidState,
		autherr.CodeAuthorization,
		autherr.CodeAuthorizationCodeGrant,
		autherr.CodeBackchannelLogout:
		return http.StatusBadRequest
	case autherr.CodeAuthorizationCodeGrantRequest:
		return http.StatusBadGateway
	case autherr.CodeMissingSession:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// renderError writes the error page. A nil err renders a generic message so
// internal failures are not exposed.
func renderError(w http.ResponseWriter, status int, err error) {
	view := errorView{
		Title:   http.StatusText(status),
		Message: "Something went wrong while signing you in. Please try again.",
	}

	if err != nil {
		view.Message = err.Error()
	}

	if code, ok := autherr.CodeOf(err); ok {
		view.Code = string(code)
	}

	if cause, ok := autherr.CauseOf(err); ok {
		view.ProviderCode = cause.Code().String()
		view.ProviderMessage = cause.Message().String()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	noStore(w)
	w.WriteHeader(status)

	if err := errorPage.Execute(w, view); err != nil {
		slog.Warn("failed to render error page", slog.String("error", err.Error()))
	}
}
