package cmds

import "strings"

// Var defines name as a command taking one argument, and name+"." resetting it.
func Var[T any](name string, desc ...string) *T {
	return CheckedVar[T](name, nil, desc...)
}

// CheckedVar is Var with check run on every argument before it is stored.
func CheckedVar[T any](name string, check func(T) error, desc ...string) *T {
	var value T

	// set
	Define(name, Func(func(v T) error {
		if check != nil {
			if err := check(v); err != nil {
				return err
			}
		}
		value = v
		return nil
	}).Desc(strings.Join(desc, " ")))

	// set zero
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Desc("reset " + name))

	return &value
}

func Switch(name string, desc ...string) *bool {
	var value bool

	// set true
	Define(name, Func(func() {
		value = true
	}).Desc(strings.Join(desc, " ")))

	// set false
	Define("!"+name, Func(func() {
		value = false
	}).Desc("unset " + name))

	return &value
}

func Collect[T any](name string, desc ...string) *[]T {
	var value []T
	// append
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Desc(strings.Join(desc, " ")))
	return &value
}
