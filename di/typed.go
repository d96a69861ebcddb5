package di

import "reflect"

// GetAs resolves token unqualified and asserts the result to T.
//
// ok is false if resolution fails or the bound value is not a T.
func GetAs[T any](k *Kernel, token Token) (T, bool) {
	var zero T
	raw, err := k.Get(token)
	if err != nil {
		return zero, false
	}
	v, ok := raw.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// GetNamedAs resolves token under qualifier name and asserts the result to T.
//
// ok is false if resolution fails or the bound value is not a T.
func GetNamedAs[T any](k *Kernel, token Token, name string) (T, bool) {
	var zero T
	raw, err := k.GetNamed(token, name)
	if err != nil {
		return zero, false
	}
	v, ok := raw.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// TryGetAs resolves token unqualified with typed failures.
//
// It returns:
//   - the resolution error verbatim when lookup or evaluation fails
//   - WrongTypeBindingError when the resolved value is not a T
//
// It avoids fmt.Errorf so failure paths stay inexpensive when used for
// control flow.
func TryGetAs[T any](k *Kernel, token Token) (T, error) {
	var zero T
	raw, err := k.Get(token)
	if err != nil {
		return zero, err
	}
	v, ok := raw.(T)
	if !ok {
		return zero, WrongTypeBindingError{Token: token, GotType: typeString(raw)}
	}
	return v, nil
}

// TryGetNamedAs resolves token under qualifier name with typed failures,
// with the same error contract as TryGetAs.
func TryGetNamedAs[T any](k *Kernel, token Token, name string) (T, error) {
	var zero T
	raw, err := k.GetNamed(token, name)
	if err != nil {
		return zero, err
	}
	v, ok := raw.(T)
	if !ok {
		return zero, WrongTypeBindingError{Token: token, GotType: typeString(raw)}
	}
	return v, nil
}

// MustGetAs resolves token unqualified as a T or panics.
func MustGetAs[T any](k *Kernel, token Token) T {
	v, err := TryGetAs[T](k, token)
	if err != nil {
		panic(err)
	}
	return v
}

// MustGetNamedAs resolves token under qualifier name as a T or panics.
func MustGetNamedAs[T any](k *Kernel, token Token, name string) T {
	v, err := TryGetNamedAs[T](k, token, name)
	if err != nil {
		panic(err)
	}
	return v
}

func typeString(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
