// Package naming contains the pure name-resolution rules for scaffolded classes.
// This is part of the Functional Core - no I/O, only pure functions.
package naming

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Separator is the namespace separator used in qualified class names.
const Separator = `\`

// ErrInvalidReference is returned when a reference contains characters
// outside [A-Za-z0-9_/\].
var ErrInvalidReference = errors.New("invalid reference")

var invalidChars = regexp.MustCompile(`[^A-Za-z0-9_/\\]`)

// QualifiedName is a class name that begins with the project root namespace,
// e.g. "App\User\Post".
type QualifiedName string

// String returns the name as a plain string.
func (n QualifiedName) String() string { return string(n) }

// SimpleName returns the last segment of the name ("Post" for "App\User\Post").
func (n QualifiedName) SimpleName() string {
	s := string(n)
	if i := strings.LastIndex(s, Separator); i >= 0 {
		return s[i+1:]
	}
	return s
}

// VariableName returns SimpleName with its first character lower-cased.
func (n QualifiedName) VariableName() string {
	return LowerFirst(n.SimpleName())
}

// Namespace returns everything before the last separator ("App\User" for
// "App\User\Post"), or "" for a name without a separator.
func (n QualifiedName) Namespace() string {
	s := string(n)
	if i := strings.LastIndex(s, Separator); i >= 0 {
		return s[:i]
	}
	return ""
}

// Validate checks the reference character set.
func Validate(reference string) error {
	if loc := invalidChars.FindStringIndex(reference); loc != nil {
		return fmt.Errorf("%w: %q contains invalid character %q", ErrInvalidReference, reference, reference[loc[0]:loc[1]])
	}
	return nil
}

// Normalize converts path separators to namespace separators and trims
// separators from both ends.
func Normalize(reference string) string {
	return strings.Trim(strings.ReplaceAll(reference, "/", Separator), Separator)
}

// RootNamespace returns root with exactly one trailing separator, the form
// used for prefix checks and for the root-namespace placeholder ("App\").
func RootNamespace(root string) string {
	root = Normalize(root)
	if root == "" {
		return ""
	}
	return root + Separator
}

// Resolve validates and qualifies a model reference against the root namespace.
// A reference that already starts with the root namespace is returned normalized
// but otherwise unchanged.
//
// Example: Resolve("User/Post", `App\`) == `App\User\Post`.
func Resolve(reference, rootNamespace string) (QualifiedName, error) {
	if err := Validate(reference); err != nil {
		return "", err
	}

	root := RootNamespace(rootNamespace)
	name := Normalize(reference)
	if !strings.HasPrefix(name, root) {
		name = root + name
	}
	return QualifiedName(name), nil
}

// ResolveIn qualifies a class reference under a default namespace unless it
// already starts with the root namespace. This is how primary targets such as
// "User/PostController" land in the controller namespace.
func ResolveIn(reference, rootNamespace, defaultNamespace string) (QualifiedName, error) {
	if err := Validate(reference); err != nil {
		return "", err
	}

	root := RootNamespace(rootNamespace)
	name := Normalize(reference)
	if root != "" && strings.HasPrefix(name, root) {
		return QualifiedName(name), nil
	}
	return QualifiedName(Join(defaultNamespace, name)), nil
}

// Join concatenates namespace segments with a single separator between them.
// Both separator styles are accepted in the input.
func Join(parts ...string) string {
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = Normalize(p); p != "" {
			segments = append(segments, p)
		}
	}
	return strings.Join(segments, Separator)
}

// LowerFirst lower-cases the first character of s.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
