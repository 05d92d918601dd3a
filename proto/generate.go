// Package proto holds the service definitions. Generated Go code lands
// under gen/ and is not checked in.
package proto

//go:generate protoc --proto_path=. --go_out=../gen --go_opt=paths=source_relative --go-grpc_out=../gen --go-grpc_opt=paths=source_relative examscan/v1/examscan.proto
