// Package identity models the caller of a request as established by the gateway.
//
// A Context is built once at the transport boundary from the trusted user id and
// roles metadata and is then passed by value into commands and queries. The
// package performs no cryptographic verification: the gateway is the trust boundary.
package identity

import (
	"encoding/json"
	"errors"
	"slices"
)

// RoleAdmin grants access to every order and to admin-only transitions.
const RoleAdmin = "admin"

// ErrMalformedRoles is returned by FromMetadata when the roles value is present
// but is not a JSON array of strings.
var ErrMalformedRoles = errors.New("roles metadata is not a JSON array of strings")

// Context is the request-scoped (userId, roles) pair. The zero value is anonymous.
type Context struct {
	userID string
	roles  []string
}

// New builds a Context from an already parsed role list. Duplicate and empty
// roles are dropped.
func New(userID string, roles []string) Context {
	set := make([]string, 0, len(roles))
	for _, r := range roles {
		if r == "" || slices.Contains(set, r) {
			continue
		}
		set = append(set, r)
	}
	slices.Sort(set)

	return Context{
		userID: userID,
		roles:  set,
	}
}

// Anonymous returns a Context without user id or roles.
func Anonymous() Context {
	return Context{}
}

// FromMetadata builds a Context from the raw user id and roles values.
//
// An empty rawRoles means no roles. If rawRoles cannot be parsed as a JSON array of
// strings the Context gets no roles and ErrMalformedRoles is returned alongside it,
// so a malformed value never escalates privileges. The returned Context is always usable.
func FromMetadata(userID, rawRoles string) (Context, error) {
	if rawRoles == "" {
		return New(userID, nil), nil
	}

	var roles []string
	if err := json.Unmarshal([]byte(rawRoles), &roles); err != nil {
		return New(userID, nil), errors.Join(ErrMalformedRoles, err)
	}

	return New(userID, roles), nil
}

// UserID returns the caller's user id, empty when anonymous.
func (c Context) UserID() string {
	return c.userID
}

// Roles returns a sorted copy of the caller's roles.
func (c Context) Roles() []string {
	return slices.Clone(c.roles)
}

// IsAuthenticated reports whether a user id is present.
func (c Context) IsAuthenticated() bool {
	return c.userID != ""
}

func (c Context) HasRole(role string) bool {
	_, found := slices.BinarySearch(c.roles, role)
	return found
}

func (c Context) IsAdmin() bool {
	return c.HasRole(RoleAdmin)
}

// Owns reports whether the caller is the owner identified by ownerID.
// Anonymous callers own nothing.
func (c Context) Owns(ownerID string) bool {
	return c.IsAuthenticated() && c.userID == ownerID
}
