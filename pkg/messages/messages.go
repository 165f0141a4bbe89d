// Package messages holds the generated protobuf and gRPC bindings for the
// tunnel-manager API.
package messages

//go:generate protoc -I ../../proto --go_out=. --go_opt=module=github.com/kfsoftware/tunnel-manager/pkg/messages --go-grpc_out=. --go-grpc_opt=module=github.com/kfsoftware/tunnel-manager/pkg/messages tunnelmanager/v1/api.proto
