package access_test

import (
	"testing"

	"github.com/amanijl/courtside/internal/access"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dataEntry   = []string{"amanijeanlouis@gmail.com", "bobbyf@hhs1.com", "admin@4qa.com", "stats@4qa.com"}
	profileEdit = []string{"amanijeanlouis@gmail.com", "admin@4qa.com"}
)

func TestCanEnterResults(t *testing.T) {
	gate := access.NewGate(dataEntry, profileEdit)

	assert.True(t, gate.CanEnterResults(access.Identity{Email: "admin@4qa.com"}))
	assert.True(t, gate.CanEnterResults(access.Identity{Email: "stats@4qa.com"}))
	assert.False(t, gate.CanEnterResults(access.Identity{Email: "stranger@example.com"}))
}

func TestCaseInsensitiveMatch(t *testing.T) {
	gate := access.NewGate(dataEntry, profileEdit)

	assert.True(t, gate.CanEnterResults(access.Identity{Email: "Admin@4QA.com"}))
	assert.True(t, gate.CanEditProfiles(access.Identity{Email: "AMANIJEANLOUIS@GMAIL.COM"}))
}

func TestUnauthenticatedDeniedBoth(t *testing.T) {
	gate := access.NewGate(dataEntry, profileEdit)

	var anonymous access.Identity
	assert.False(t, anonymous.Authenticated())
	assert.False(t, gate.CanEnterResults(anonymous))
	assert.False(t, gate.CanEditProfiles(anonymous))
}

func TestProfileEditImpliesDataEntry(t *testing.T) {
	gate := access.NewGate(dataEntry, profileEdit)
	require.NoError(t, gate.Validate())

	// Anyone who may edit profiles must also be able to enter results.
	for _, email := range profileEdit {
		id := access.Identity{Email: email}
		if gate.CanEditProfiles(id) {
			assert.True(t, gate.CanEnterResults(id), "edit list must be a subset of the entry list: %s", email)
		}
	}
}

func TestValidateRejectsNonSubset(t *testing.T) {
	gate := access.NewGate(
		[]string{"admin@4qa.com"},
		[]string{"admin@4qa.com", "rogue@example.com"},
	)
	assert.Error(t, gate.Validate())
}

func TestDataEntryOnlyUserCannotEditProfiles(t *testing.T) {
	gate := access.NewGate(dataEntry, profileEdit)

	id := access.Identity{Email: "stats@4qa.com"}
	assert.True(t, gate.CanEnterResults(id))
	assert.False(t, gate.CanEditProfiles(id))
}
