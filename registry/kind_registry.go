package registry

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// UnmarshalFunc defines a function that takes a raw storage item and returns the unmarshaled record.
type UnmarshalFunc func(item map[string]types.AttributeValue) (interface{}, error)

// kindRegistry holds the mapping from a kind name (like "Work" or "WorkImport") to its unmarshal function.
var kindRegistry = make(map[string]UnmarshalFunc)

// RegisterKind registers an unmarshal function for a given kind name.
// If a kind is already registered under the name, it panics to prevent accidental overrides.
func RegisterKind(kind string, fn UnmarshalFunc) {
	if _, exists := kindRegistry[kind]; exists {
		panic(fmt.Sprintf("kind registry: kind %q already registered", kind))
	}
	kindRegistry[kind] = fn
}

// UnmarshalFuncFor returns the registered unmarshal function for the given kind name.
// If no function is registered, it returns an error.
func UnmarshalFuncFor(kind string) (UnmarshalFunc, error) {
	fn, ok := kindRegistry[kind]
	if !ok {
		return nil, fmt.Errorf("kind registry: no kind registered for %q", kind)
	}
	return fn, nil
}
