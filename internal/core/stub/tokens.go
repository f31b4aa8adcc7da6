package stub

import "strings"

// TokenSetVersion is bumped whenever a token is added, removed, or renamed.
// Published templates written against an older version may need updating.
const TokenSetVersion = 1

// Placeholder tokens recognized in templates. Tokens are matched literally.
const (
	TokenNamespace         = "DummyNamespace"
	TokenRootNamespace     = "DummyRootNamespace"
	TokenUserModel         = "NamespacedDummyUserModel"
	TokenAPINamespace      = "DummyApiNamespace"
	TokenAPIName           = "DummyApiName"
	TokenServicesNamespace = "DummyServicesNamespace"
	TokenClass             = "DummyClass"

	TokenFullModelClass = "DummyFullModelClass"
	TokenModelClass     = "DummyModelClass"
	TokenModelVariable  = "DummyModelVariable"

	TokenParentFullModelClass = "ParentDummyFullModelClass"
	TokenParentModelClass     = "ParentDummyModelClass"
	TokenParentModelVariable  = "ParentDummyModelVariable"
)

// KnownTokens returns the recognized token set.
func KnownTokens() []string {
	return []string{
		TokenNamespace,
		TokenRootNamespace,
		TokenUserModel,
		TokenAPINamespace,
		TokenAPIName,
		TokenServicesNamespace,
		TokenClass,
		TokenFullModelClass,
		TokenModelClass,
		TokenModelVariable,
		TokenParentFullModelClass,
		TokenParentModelClass,
		TokenParentModelVariable,
	}
}

// UnknownTokens returns identifiers in text that contain "Dummy" but are not
// recognized tokens, in order of first appearance. Used to keep templates and
// substitution from drifting apart.
func UnknownTokens(text string) []string {
	known := make(map[string]bool)
	for _, t := range KnownTokens() {
		known[t] = true
	}

	seen := make(map[string]bool)
	var unknown []string
	for _, word := range strings.FieldsFunc(text, isNotIdentChar) {
		if !strings.Contains(word, "Dummy") || seen[word] {
			continue
		}
		seen[word] = true
		if !containsKnownToken(word, known) {
			unknown = append(unknown, word)
		}
	}
	return unknown
}

// containsKnownToken reports whether word is a known token, optionally glued
// to trailing identifier text ("DummyRootNamespaceHttp").
func containsKnownToken(word string, known map[string]bool) bool {
	for t := range known {
		if strings.HasPrefix(word, t) {
			return true
		}
	}
	return false
}

func isNotIdentChar(r rune) bool {
	return !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
}
