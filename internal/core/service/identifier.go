package service

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

type identifierKind int

const (
	identifierUsername identifierKind = iota
	identifierEmail
)

var identifierCheck = validator.New()

// classifyIdentifier decides whether a caller-supplied login identifier is
// an email address or a username, so the correct lookup predicate can be
// selected. It is total: anything that is not strictly email-shaped falls
// through to username. No network or DNS check is performed.
func classifyIdentifier(identifier string) identifierKind {
	if identifierCheck.Var(identifier, "required,email") != nil {
		return identifierUsername
	}
	// The email rule accepts dotless domains such as "alice@host";
	// deliverable addresses need a dot in the domain part.
	at := strings.LastIndex(identifier, "@")
	if at < 0 || !strings.Contains(identifier[at+1:], ".") {
		return identifierUsername
	}
	return identifierEmail
}
