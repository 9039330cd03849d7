// Package errorsWithData defines errors that carry additional typed parameters in a way that is compatible with error wrapping.
//
// Parameters are attached from a struct (the exported field names become the parameter names) and can be retrieved
// either as a map[string]any or as a struct of the same (or a compatible) type from anywhere in the error chain.
// The type parameter of [ErrorWithData] communicates through the type system which parameters are guaranteed to be present.
//
// Errors are treated as immutable. Creating an error with data never modifies the base error; it wraps it.
// Callers should compare errors with [errors.Is] against the base error, never with ==.
//
// Error messages may refer to parameters: %v{Name} (or any other fmt verb in place of v) is replaced by the parameter Name
// formatted with that verb; %w is replaced by the message of the base error; %% is a literal %.
// An empty message defaults to the message of the base error followed by the parameters.
package errorsWithData

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorPrefix is a prefix added to all panic messages that originate from this package.
const ErrorPrefix = "ring-xous / error handling: "

// ErrorWithData_any is an interface extending error to also contain arbitrary parameters in the form of a map[string]any.
//
// Obtaining the data should be done via the free functions [GetData_map], [GetParameter], [GetData_struct],
// as these work for arbitrary (wrapped) errors.
type ErrorWithData_any interface {
	error
	GetParameter(parameterName string) (value any, wasPresent bool) // GetParameter obtains the value stored under parameterName and whether it was present.
	HasParameter(parameterName string) bool
	GetData_map() map[string]any // GetData_map returns a shallow copy of the parameter map.
	Unwrap() error
}

// ErrorWithData[StructType] is an interface extending [ErrorWithData_any].
// Any non-nil error of this type is guaranteed to contain parameters sufficient to create an instance of StructType.
type ErrorWithData[StructType any] interface {
	ErrorWithData_any
	GetData_struct() StructType
}

// errorWithParameters is the only implementation of [ErrorWithData]. It is never exposed as a concrete type,
// because a nil pointer of concrete type stored in an error interface is non-nil.
type errorWithParameters[StructType any] struct {
	wrappedError error
	message      string
	params       map[string]any
	data         StructType
}

// NewErrorWithData_struct creates a new error wrapping baseError that carries the fields of *data as parameters.
//
// message is interpolated as described in the package documentation; an empty message gives a default message.
// baseError may be nil, in which case message must be non-empty. data must not be nil.
// The message is interpolated once at creation time, so later changes to data (e.g. through slices) do not affect it.
func NewErrorWithData_struct[StructType any](baseError error, message string, data *StructType) ErrorWithData[StructType] {
	if data == nil {
		panic(ErrorPrefix + "called NewErrorWithData_struct with nil data")
	}
	if baseError == nil && message == "" {
		panic(ErrorPrefix + "called NewErrorWithData_struct with nil base error and empty message")
	}
	params := structToMap(data)
	ret := &errorWithParameters[StructType]{wrappedError: baseError, params: params, data: *data}
	if message == "" {
		ret.message = defaultMessage(baseError, params)
	} else {
		ret.message = interpolate(message, baseError, params)
	}
	return ret
}

func (e *errorWithParameters[StructType]) Error() string {
	return e.message
}

func (e *errorWithParameters[StructType]) Unwrap() error {
	return e.wrappedError
}

func (e *errorWithParameters[StructType]) GetParameter(parameterName string) (value any, wasPresent bool) {
	value, wasPresent = e.params[parameterName]
	return
}

func (e *errorWithParameters[StructType]) HasParameter(parameterName string) bool {
	_, ok := e.params[parameterName]
	return ok
}

func (e *errorWithParameters[StructType]) GetData_map() map[string]any {
	ret := make(map[string]any, len(e.params))
	for k, v := range e.params {
		ret[k] = v
	}
	return ret
}

func (e *errorWithParameters[StructType]) GetData_struct() StructType {
	return e.data
}

// firstWithData returns the first error in err's chain that carries parameters, or nil.
func firstWithData(err error) ErrorWithData_any {
	for errorChain := err; errorChain != nil; errorChain = errors.Unwrap(errorChain) {
		if errChainGood, ok := errorChain.(ErrorWithData_any); ok {
			return errChainGood
		}
	}
	return nil
}

// GetData_map returns a map of all parameters of the first error in err's error chain that has any.
// For err==nil or if no error in the chain has data, returns an empty map.
//
// Note that the returned map is a (shallow) copy, so the caller may modify it without affecting the error.
func GetData_map(err error) map[string]any {
	if withData := firstWithData(err); withData != nil {
		return withData.GetData_map()
	}
	return make(map[string]any)
}

// HasParameter checks whether some error in err's error chain contains a parameter keyed by parameterName.
// HasParameter(nil, <anything>) returns false
func HasParameter(err error, parameterName string) bool {
	_, ok := GetParameter(err, parameterName)
	return ok
}

// GetParameter returns the value stored under the key parameterName in the first error in err's error chain that carries parameters.
// If there is no such error or err==nil, returns (nil, false).
func GetParameter(err error, parameterName string) (value any, wasPresent bool) {
	if withData := firstWithData(err); withData != nil {
		return withData.GetParameter(parameterName)
	}
	return nil, false
}

// HasData checks whether err's chain contains enough parameters of the correct types to create an instance of StructType.
func HasData[StructType any](err error) bool {
	_, ok := GetData_struct[StructType](err)
	return ok
}

// GetData_struct obtains the parameters contained in err's chain in the form of a struct of type StructType.
// If err does not contain parameters of matching names and types for all fields of StructType, returns (zero value, false).
func GetData_struct[StructType any](err error) (ret StructType, ok bool) {
	var typed ErrorWithData[StructType]
	if errors.As(err, &typed) {
		return typed.GetData_struct(), true
	}
	withData := firstWithData(err)
	if withData == nil {
		return ret, false
	}
	return mapToStruct[StructType](withData.GetData_map())
}

func defaultMessage(baseError error, params map[string]any) string {
	var b strings.Builder
	if baseError != nil {
		b.WriteString(baseError.Error())
	}
	if len(params) == 0 {
		return b.String()
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	b.WriteString(" [")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v=%v", k, params[k])
	}
	b.WriteString("]")
	return b.String()
}
