package grpc

import (
	"context"

	"github.com/MKhiriev/go-notes-auth/models"
	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "notes.auth.v1.AuthService"

// Full method names, as seen by interceptors and used by clients.
const (
	LoginMethod    = "/" + ServiceName + "/Login"
	RegisterMethod = "/" + ServiceName + "/Register"
	MeMethod       = "/" + ServiceName + "/Me"
	VersionMethod  = "/" + ServiceName + "/Version"
)

// Empty is the request of methods that take no arguments.
type Empty struct{}

// VersionResponse is returned by the Version method.
type VersionResponse struct {
	Version string `json:"version"`
}

// AuthServer is implemented by [Handler].
type AuthServer interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResult, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*models.LoginResult, error)
	Me(ctx context.Context, req *Empty) (*models.Identity, error)
	Version(ctx context.Context, req *Empty) (*VersionResponse, error)
}

func unaryHandler[Req any, Resp any](method string, call func(AuthServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AuthServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: method,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AuthServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// AuthServiceDesc describes the auth service without generated stubs.
var AuthServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AuthServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Login", Handler: unaryHandler(LoginMethod, AuthServer.Login)},
		{MethodName: "Register", Handler: unaryHandler(RegisterMethod, AuthServer.Register)},
		{MethodName: "Me", Handler: unaryHandler(MeMethod, AuthServer.Me)},
		{MethodName: "Version", Handler: unaryHandler(VersionMethod, AuthServer.Version)},
	},
}
