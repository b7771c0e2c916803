package access

import (
	"fmt"
	"strings"
)

// Identity is the authenticated user as reported by the external auth
// provider. The zero value means no session.
type Identity struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}

// Authenticated reports whether the identity carries a session.
func (id Identity) Authenticated() bool {
	return id.Email != ""
}

// Gate decides whether an identity may perform the two privileged actions.
// The allow-lists are static configuration, injected at construction; they
// are not derived from anything stored on the player records.
type Gate struct {
	dataEntry   map[string]bool
	profileEdit map[string]bool
}

// NewGate builds a gate from the two email allow-lists. Matching is
// case-insensitive, so the lists are normalized to lowercase here.
func NewGate(dataEntryEmails, profileEditEmails []string) *Gate {
	return &Gate{
		dataEntry:   normalize(dataEntryEmails),
		profileEdit: normalize(profileEditEmails),
	}
}

// CanEnterResults reports whether the identity may record game outcomes.
func (g *Gate) CanEnterResults(id Identity) bool {
	if !id.Authenticated() {
		return false
	}
	return g.dataEntry[strings.ToLower(id.Email)]
}

// CanEditProfiles reports whether the identity may edit player
// biographical data. The profile-edit list is a strict subset of the
// data-entry list, so anyone who can edit profiles can also enter results.
func (g *Gate) CanEditProfiles(id Identity) bool {
	if !id.Authenticated() {
		return false
	}
	return g.profileEdit[strings.ToLower(id.Email)]
}

// Validate asserts the subset relation between the two lists. Run at
// startup so a misconfigured deployment fails loudly instead of handing
// out edit rights to someone who cannot even enter results.
func (g *Gate) Validate() error {
	for email := range g.profileEdit {
		if !g.dataEntry[email] {
			return fmt.Errorf("profile-edit email %q is not on the data-entry allow-list", email)
		}
	}
	return nil
}

func normalize(emails []string) map[string]bool {
	set := make(map[string]bool, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			set[e] = true
		}
	}
	return set
}
