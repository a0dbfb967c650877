package lox

import (
	"fmt"
	"math"
	"reflect"

	"github.com/funvibe/lox/internal/evaluator"
)

// Marshaller handles conversion between Go and Lox values.
type Marshaller struct{}

func NewMarshaller() *Marshaller {
	return &Marshaller{}
}

// ToValue converts a Go value to a Lox Object. Lox has a single number
// type, so every Go integer and float becomes a float64.
func (m *Marshaller) ToValue(val interface{}) (evaluator.Object, error) {
	if val == nil {
		return evaluator.NIL, nil
	}

	// Check if already an Object
	if obj, ok := val.(evaluator.Object); ok {
		return obj, nil
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &evaluator.Number{Value: float64(v.Int())}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &evaluator.Number{Value: float64(v.Uint())}, nil
	case reflect.Float32, reflect.Float64:
		return &evaluator.Number{Value: v.Float()}, nil
	case reflect.Bool:
		if v.Bool() {
			return evaluator.TRUE, nil
		}
		return evaluator.FALSE, nil
	case reflect.String:
		return &evaluator.String{Value: v.String()}, nil
	case reflect.Ptr:
		if v.IsNil() {
			return evaluator.NIL, nil
		}
	}
	return nil, fmt.Errorf("cannot convert %T to a Lox value", val)
}

// FromValue converts a Lox Object to a Go value.
// targetType is optional; if provided, tries to convert to that type.
// Functions, classes and instances are returned as Lox objects.
func (m *Marshaller) FromValue(obj evaluator.Object, targetType reflect.Type) (interface{}, error) {
	if obj == nil {
		obj = evaluator.NIL
	}

	// evaluator.Object, or a narrower interface such as Callable
	if targetType != nil && targetType.Kind() == reflect.Interface && targetType.NumMethod() > 0 {
		if reflect.TypeOf(obj).Implements(targetType) {
			return obj, nil
		}
		return nil, fmt.Errorf("cannot convert %s to %s", obj.Inspect(), targetType)
	}
	anyTarget := targetType == nil || targetType.Kind() == reflect.Interface

	var goVal interface{}
	switch o := obj.(type) {
	case *evaluator.Nil:
		if anyTarget {
			return nil, nil
		}
		return reflect.Zero(targetType).Interface(), nil
	case *evaluator.Boolean:
		goVal = o.Value
	case *evaluator.Number:
		goVal = o.Value
	case *evaluator.String:
		goVal = o.Value
	default:
		goVal = obj
	}
	if anyTarget {
		return goVal, nil
	}

	v := reflect.ValueOf(goVal)
	if v.Type() == targetType {
		return goVal, nil
	}
	if v.Kind() == reflect.Float64 && isNumeric(targetType.Kind()) {
		if isInteger(targetType.Kind()) && v.Float() != math.Trunc(v.Float()) {
			return nil, fmt.Errorf("cannot convert %s to %s: not an integer", obj.Inspect(), targetType)
		}
		return v.Convert(targetType).Interface(), nil
	}
	return nil, fmt.Errorf("cannot convert %s to %s", obj.Inspect(), targetType)
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func isNumeric(k reflect.Kind) bool {
	return isInteger(k) || k == reflect.Float32 || k == reflect.Float64
}
