package stub

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/apihelper/internal/core/naming"
)

// Replacement is a single literal token -> value pair.
type Replacement struct {
	Token string
	Value string
}

// ReplacementMap is an ordered set of replacements. Pairs are applied in
// insertion order; setting an existing token updates its value in place.
type ReplacementMap struct {
	pairs []Replacement
	index map[string]int
}

// NewReplacementMap creates an empty map.
func NewReplacementMap() *ReplacementMap {
	return &ReplacementMap{index: make(map[string]int)}
}

// Set adds or updates a replacement. Empty tokens are ignored.
func (m *ReplacementMap) Set(token, value string) *ReplacementMap {
	if token == "" {
		return m
	}
	if i, ok := m.index[token]; ok {
		m.pairs[i].Value = value
		return m
	}
	m.index[token] = len(m.pairs)
	m.pairs = append(m.pairs, Replacement{Token: token, Value: value})
	return m
}

// Get returns the value for token.
func (m *ReplacementMap) Get(token string) (string, bool) {
	i, ok := m.index[token]
	if !ok {
		return "", false
	}
	return m.pairs[i].Value, true
}

// Len returns the number of replacements.
func (m *ReplacementMap) Len() int { return len(m.pairs) }

// Pairs returns a copy of the replacements in application order.
func (m *ReplacementMap) Pairs() []Replacement {
	out := make([]Replacement, len(m.pairs))
	copy(out, m.pairs)
	return out
}

// LongestFirst returns a copy ordered by descending token length. Tokens of
// equal length keep their insertion order. A token that is a substring of a
// longer token ("DummyApiName" in "DummyApiNamespace") is therefore never
// applied before it.
func (m *ReplacementMap) LongestFirst() *ReplacementMap {
	pairs := m.Pairs()
	sort.SliceStable(pairs, func(i, j int) bool {
		return len(pairs[i].Token) > len(pairs[j].Token)
	})

	out := NewReplacementMap()
	for _, p := range pairs {
		out.Set(p.Token, p.Value)
	}
	return out
}

// Append adds every pair of other after the pairs of m.
func (m *ReplacementMap) Append(other *ReplacementMap) *ReplacementMap {
	for _, p := range other.pairs {
		m.Set(p.Token, p.Value)
	}
	return m
}

// Substitute replaces every occurrence of every token in template with its
// value, applying pairs in map order. Tokens absent from the template are
// ignored.
func Substitute(template string, m *ReplacementMap) string {
	if m == nil {
		return template
	}
	out := template
	for _, p := range m.pairs {
		out = strings.ReplaceAll(out, p.Token, p.Value)
	}
	return out
}

// Values carries the resolved names substituted into templates.
type Values struct {
	Namespace         string // namespace of the generated class
	Class             string // simple name of the generated class
	RootNamespace     string // with trailing separator, e.g. `App\`
	UserModel         string
	APINamespace      string
	APIName           string
	ServicesNamespace string

	Model  naming.QualifiedName // empty when no model is bound
	Parent naming.QualifiedName // empty when not nested
}

// NamespaceReplacements returns the namespace and class tokens, longest first.
func NamespaceReplacements(v Values) *ReplacementMap {
	m := NewReplacementMap().
		Set(TokenNamespace, v.Namespace).
		Set(TokenRootNamespace, v.RootNamespace).
		Set(TokenUserModel, v.UserModel).
		Set(TokenAPINamespace, v.APINamespace).
		Set(TokenAPIName, v.APIName).
		Set(TokenServicesNamespace, v.ServicesNamespace).
		Set(TokenClass, v.Class)
	return m.LongestFirst()
}

// BaseReplacements returns the replacements for a base file. Base files are
// not the primary generated class, so the namespace and class tokens are blank.
func BaseReplacements(v Values) *ReplacementMap {
	v.Namespace = ""
	v.Class = ""
	return NamespaceReplacements(v)
}

// ControllerReplacements returns the replacements for a controller, in the
// following order:
//
//  1. namespace and class tokens, longest first
//  2. removal of the API base controller import when the controller lives in
//     the same namespace as its base (matched against the text produced by 1)
//  3. parent tokens, longest first
//  4. model tokens, longest first
//
// Parent tokens contain the model tokens as substrings, so 3 must precede 4.
func ControllerReplacements(v Values) *ReplacementMap {
	m := NamespaceReplacements(v)

	if v.Namespace != "" && v.Namespace == v.APINamespace {
		m.Set(ImportLine(v.APINamespace, v.APIName), "")
	}

	if v.Parent != "" {
		m.Append(modelReplacements(v.Parent, TokenParentFullModelClass, TokenParentModelClass, TokenParentModelVariable))
	}
	if v.Model != "" {
		m.Append(modelReplacements(v.Model, TokenFullModelClass, TokenModelClass, TokenModelVariable))
	}
	return m
}

// ImportLine returns the use statement importing namespace\class.
func ImportLine(namespace, class string) string {
	return fmt.Sprintf("use %s\\%s;\n", namespace, class)
}

func modelReplacements(name naming.QualifiedName, full, class, variable string) *ReplacementMap {
	m := NewReplacementMap().
		Set(full, name.String()).
		Set(class, name.SimpleName()).
		Set(variable, name.VariableName())
	return m.LongestFirst()
}
