package argparse

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Argument is a named command-line value. The value is always held as a string and decoded on
// demand with [Value]. The empty string is the unset value.
type Argument struct {
	name     string
	value    string
	help     string
	required bool
}

// NewArgument creates an optional argument with the given name.
func NewArgument(name string) *Argument {
	return &Argument{name: name}
}

// RequiredArgument creates an argument that must be provided when parsing, otherwise parsing fails
// with [ErrMissingRequired].
func RequiredArgument(name string) *Argument {
	return &Argument{name: name, required: true}
}

// Name returns the argument's name.
func (a *Argument) Name() string { return a.name }

// Required reports whether the argument must be provided.
func (a *Argument) Required() bool { return a.required }

// Help returns the argument's help text.
func (a *Argument) Help() string { return a.help }

// SetHelp sets the help text and returns the argument.
func (a *Argument) SetHelp(help string) *Argument {
	a.help = help
	return a
}

// Raw returns the stored string value, unchanged.
func (a *Argument) Raw() string { return a.value }

// SetValue encodes v and stores it, returning the argument. Booleans are stored as "true" or
// "false", strings and byte slices verbatim, floats in their shortest round-trip form and every
// other value in its default textual form (base 10 for integers).
func (a *Argument) SetValue(v any) *Argument {
	switch v := v.(type) {
	case bool:
		a.value = strconv.FormatBool(v)
	case string:
		a.value = v
	case []byte:
		a.value = string(v)
	case float64:
		a.value = strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		a.value = strconv.FormatFloat(float64(v), 'g', -1, 32)
	default:
		a.value = fmt.Sprint(v)
	}
	return a
}

// String returns a one-line summary of the argument, as printed by the help output:
//
//	--name	help (Required false, Value: value)
func (a *Argument) String() string {
	return a.Summary(true)
}

// Summary returns the one-line summary of the argument. When withRequired is false the "Required"
// field is omitted.
func (a *Argument) Summary(withRequired bool) string {
	if withRequired {
		return fmt.Sprintf("--%s\t%s (Required %t, Value: %s)\n", a.name, a.help, a.required, a.value)
	}
	return fmt.Sprintf("--%s\t%s (Value: %s)\n", a.name, a.help, a.value)
}

// Kind is the set of types an argument value can be decoded into.
type Kind interface {
	bool | int | int64 | uint64 | float32 | float64 | string | time.Duration
}

// Value decodes the argument's stored value as T:
//
//	bool:     true if the value is empty or exactly "true"
//	integers: base 10, the empty string is an error
//	floats:   floating-point literal, the empty string is an error
//	duration: [time.ParseDuration] syntax
//	string:   the stored value unchanged
//
// Decoding errors wrap the [strconv.NumError] (or duration error) with the argument name.
func Value[T Kind](a *Argument) (T, error) {
	var out T
	if a == nil {
		return out, errors.New("nil argument")
	}
	var err error
	switch p := any(&out).(type) {
	case *bool:
		*p = a.value == "" || a.value == "true"
	case *string:
		*p = a.value
	case *int:
		*p, err = strconv.Atoi(a.value)
	case *int64:
		*p, err = strconv.ParseInt(a.value, 10, 64)
	case *uint64:
		*p, err = strconv.ParseUint(a.value, 10, 64)
	case *float32:
		var f float64
		f, err = strconv.ParseFloat(a.value, 32)
		*p = float32(f)
	case *float64:
		*p, err = strconv.ParseFloat(a.value, 64)
	case *time.Duration:
		*p, err = time.ParseDuration(a.value)
	}
	if err != nil {
		var zero T
		return zero, fmt.Errorf("argument %q: %w", a.name, err)
	}
	return out, nil
}

// MustValue is like [Value] but panics if the value cannot be decoded. A failed decode of a value
// the program itself registered is a programming error, so it is better to fail loud and early.
func MustValue[T Kind](a *Argument) T {
	v, err := Value[T](a)
	if err != nil {
		panic(err)
	}
	return v
}
