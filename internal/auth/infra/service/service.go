package auth

import (
	"context"
	"errors"

	connect "connectrpc.com/connect"
	applogout "github.com/KasumiMercury/primind-auth/internal/auth/app/logout"
	appsession "github.com/KasumiMercury/primind-auth/internal/auth/app/session"
	apptoken "github.com/KasumiMercury/primind-auth/internal/auth/app/token"
	"github.com/KasumiMercury/primind-auth/internal/auth/domain/autherr"
	"github.com/KasumiMercury/primind-auth/internal/auth/infra/interceptor"
)

var ErrServiceNotConfigured = errors.New("auth service is not configured")

type Service struct {
	tokens   apptoken.AccessTokenUseCase
	sessions appsession.ValidateSessionUseCase
	logout   applogout.LogoutUseCase
}

func NewService(
	tokens apptoken.AccessTokenUseCase,
	sessions appsession.ValidateSessionUseCase,
	logout applogout.LogoutUseCase,
) *Service {
	return &Service{
		tokens:   tokens,
		sessions: sessions,
		logout:   logout,
	}
}

func (s *Service) GetAccessToken(
	ctx context.Context,
	req *connect.Request[GetAccessTokenRequest],
) (*connect.Response[AccessTokenResponse], error) {
	if s.tokens == nil {
		return nil, connect.NewError(connect.CodeFailedPrecondition, ErrServiceNotConfigured)
	}

	result, err := s.tokens.GetAccessToken(ctx, &apptoken.GetAccessTokenRequest{
		SessionToken: interceptor.ExtractSessionToken(ctx),
		Refresh:      req.Msg.Refresh,
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(accessTokenResponse(result)), nil
}

func (s *Service) GetAccessTokenForConnection(
	ctx context.Context,
	req *connect.Request[GetAccessTokenForConnectionRequest],
) (*connect.Response[AccessTokenResponse], error) {
	if s.tokens == nil {
		return nil, connect.NewError(connect.CodeFailedPrecondition, ErrServiceNotConfigured)
	}

	result, err := s.tokens.GetAccessTokenForConnection(ctx, &apptoken.GetAccessTokenForConnectionRequest{
		SessionToken: interceptor.ExtractSessionToken(ctx),
		Connection:   req.Msg.Connection,
		LoginHint:    req.Msg.LoginHint,
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(accessTokenResponse(result)), nil
}

func (s *Service) GetSession(
	ctx context.Context,
	_ *connect.Request[GetSessionRequest],
) (*connect.Response[GetSessionResponse], error) {
	if s.sessions == nil {
		return nil, connect.NewError(connect.CodeFailedPrecondition, ErrServiceNotConfigured)
	}

	result, err := s.sessions.Validate(ctx, &appsession.ValidateSessionRequest{
		SessionToken: interceptor.ExtractSessionToken(ctx),
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&GetSessionResponse{
		SessionID: result.SessionID.String(),
		UserID:    result.UserID.String(),
	}), nil
}

func (s *Service) Logout(
	ctx context.Context,
	_ *connect.Request[LogoutRequest],
) (*connect.Response[LogoutResponse], error) {
	if s.logout == nil {
		return nil, connect.NewError(connect.CodeFailedPrecondition, ErrServiceNotConfigured)
	}

	result, err := s.logout.Logout(ctx, &applogout.LogoutRequest{
		SessionToken: interceptor.ExtractSessionToken(ctx),
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&LogoutResponse{EndSessionURL: result.EndSessionURL}), nil
}

func accessTokenResponse(result *apptoken.AccessTokenResult) *AccessTokenResponse {
	resp := &AccessTokenResponse{
		AccessToken: result.AccessToken,
		Scope:       result.Scope,
	}

	if !result.ExpiresAt.IsZero() {
		resp.ExpiresAt = result.ExpiresAt.Unix()
	}

	return resp
}

// toConnectError maps use case errors to Connect codes. autherr codes are
// also exposed through the Auth-Error-Code metadata key.
func toConnectError(err error) *connect.Error {
	if code, ok := autherr.CodeOf(err); ok {
		connectErr := connect.NewError(connectCodeFor(code), err)
		connectErr.Meta().Set(AuthErrorCodeHeader, string(code))

		return connectErr
	}

	switch {
	case appsession.IsNoSession(err):
		return connect.NewError(connect.CodeUnauthenticated, err)
	case errors.Is(err, apptoken.ErrConnectionRequired),
		errors.Is(err, apptoken.ErrRequestNil),
		errors.Is(err, applogout.ErrRequestNil):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, apptoken.ErrProviderUnsupported):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, apptoken.ErrTokenEndpointUnavailable):
		return connect.NewError(connect.CodeUnavailable, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func connectCodeFor(code autherr.Code) connect.Code {
	switch code {
	case autherr.CodeMissingSession:
		return connect.CodeUnauthenticated
	case autherr.CodeMissingRefreshToken:
		return connect.CodeFailedPrecondition
	case autherr.CodeFailedToRefreshToken, autherr.CodeFailedToExchangeRefreshToken:
		return connect.CodeUnavailable
	case autherr.CodeMissingState, autherr.CodeInvalidState, autherr.CodeAuthorization,
		autherr.CodeBackchannelLogout:
		return connect.CodeInvalidArgument
	default:
		return connect.CodeInternal
	}
}
