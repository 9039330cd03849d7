package errorsWithData

import (
	"fmt"
	"reflect"
)

// This file contains the conversion between data structs and parameter maps.
//
// Restrictions on StructTypes: all fields must be exported and must not be embedded structs; anything else panics.
// The map keys are the field names.

func structFields(structType reflect.Type) []reflect.StructField {
	if structType.Kind() != reflect.Struct {
		panic(fmt.Errorf(ErrorPrefix+"data type %v is not a struct", structType))
	}
	ret := make([]reflect.StructField, 0, structType.NumField())
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.IsExported() {
			panic(fmt.Errorf(ErrorPrefix+"data type %v has unexported field %v", structType, field.Name))
		}
		if field.Anonymous {
			panic(fmt.Errorf(ErrorPrefix+"data type %v has embedded field %v, which is not supported", structType, field.Name))
		}
		ret = append(ret, field)
	}
	return ret
}

func structToMap[StructType any](data *StructType) map[string]any {
	value := reflect.ValueOf(data).Elem()
	fields := structFields(value.Type())
	ret := make(map[string]any, len(fields))
	for _, field := range fields {
		ret[field.Name] = value.FieldByIndex(field.Index).Interface()
	}
	return ret
}

// mapToStruct fills a StructType from params. Fails if a field is missing or has a non-assignable type.
// nil entries are accepted for fields of nilable type.
func mapToStruct[StructType any](params map[string]any) (ret StructType, ok bool) {
	value := reflect.ValueOf(&ret).Elem()
	for _, field := range structFields(value.Type()) {
		entry, present := params[field.Name]
		if !present {
			return *new(StructType), false
		}
		target := value.FieldByIndex(field.Index)
		if entry == nil {
			switch field.Type.Kind() {
			case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
				continue // already zero
			default:
				return *new(StructType), false
			}
		}
		entryValue := reflect.ValueOf(entry)
		if !entryValue.Type().AssignableTo(field.Type) {
			return *new(StructType), false
		}
		target.Set(entryValue)
	}
	return ret, true
}

// CheckParametersForStruct_all panics unless the exported fields of StructType are exactly fieldNames (in any order).
//
// This is meant as a refactoring guard in init() functions of packages that refer to parameters by name in error messages.
func CheckParametersForStruct_all[StructType any](fieldNames []string) {
	for i := 0; i < len(fieldNames); i++ {
		for j := i + 1; j < len(fieldNames); j++ {
			if fieldNames[i] == fieldNames[j] {
				panic(fmt.Errorf(ErrorPrefix+"in call to CheckParametersForStruct_all, the given list of field names contains a duplicate: %v", fieldNames[i]))
			}
		}
	}
	fields := structFields(reflect.TypeOf((*StructType)(nil)).Elem())
	if len(fields) != len(fieldNames) {
		panic(fmt.Errorf(ErrorPrefix+"struct has %v fields, but %v names were expected", len(fields), len(fieldNames)))
	}
	for _, name := range fieldNames {
		found := false
		for _, field := range fields {
			if field.Name == name {
				found = true
				break
			}
		}
		if !found {
			panic(fmt.Errorf(ErrorPrefix+"the given struct does not contain an exported field named %v", name))
		}
	}
}

// CheckParameterForStruct panics unless StructType has an exported field named fieldName.
func CheckParameterForStruct[StructType any](fieldName string) {
	for _, field := range structFields(reflect.TypeOf((*StructType)(nil)).Elem()) {
		if field.Name == fieldName {
			return
		}
	}
	panic(fmt.Errorf(ErrorPrefix+"the given struct does not contain an exported field named %v", fieldName))
}
