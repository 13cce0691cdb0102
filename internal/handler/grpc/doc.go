// Package grpc exposes the auth service over gRPC.
//
// Messages are the plain model structs carried by a JSON codec registered
// under the "json" content-subtype, so no generated stubs are needed.
package grpc
