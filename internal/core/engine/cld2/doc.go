// Package cld2 binds the CLD2 compact language detector. The binding is
// compiled only with the cld2 build tag and links -lcld2; default builds get
// an empty package and the registry falls back to the script engine.
//
//	go build -tags cld2 ./...
package cld2

// Name is the registry name of this engine
const Name = "cld2"
