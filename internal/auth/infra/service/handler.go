package auth

import (
	"net/http"

	connect "connectrpc.com/connect"
)

// NewAuthServiceHandler mounts every procedure of the service and returns
// the path prefix to register on a mux.
func NewAuthServiceHandler(svc *Service, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(GetAccessTokenProcedure, connect.NewUnaryHandler(GetAccessTokenProcedure, svc.GetAccessToken, opts...))
	mux.Handle(GetAccessTokenForConnectionProcedure, connect.NewUnaryHandler(
		GetAccessTokenForConnectionProcedure,
		svc.GetAccessTokenForConnection,
		opts...,
	))
	mux.Handle(GetSessionProcedure, connect.NewUnaryHandler(GetSessionProcedure, svc.GetSession, opts...))
	mux.Handle(LogoutProcedure, connect.NewUnaryHandler(LogoutProcedure, svc.Logout, opts...))

	return "/" + AuthServiceName + "/", mux
}

// NewClientOption lets Connect clients speak the service's JSON codec.
func NewClientOption() connect.ClientOption {
	return connect.WithCodec(jsonCodec{})
}
