// Package pb holds the protocol buffer bindings for the stok market
// service, generated from api/stok.proto. The generated files are not
// committed; regenerate with:
//
//	go generate ./api/pb
//
// which requires protoc with protoc-gen-go and protoc-gen-go-grpc on PATH.
package pb

//go:generate protoc --proto_path=.. --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative stok.proto
