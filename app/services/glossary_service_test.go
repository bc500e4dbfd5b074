package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlossaryCreateValidation(t *testing.T) {
	users, _, glossary := newServices(t)
	u := registerUser(t, users, "alice", "alice@x.com", "Secret123")

	_, err := glossary.Create(u.ID, "", "a definition", nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = glossary.Create(u.ID, "API", "  ", nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGlossaryTagsDefaultEmpty(t *testing.T) {
	users, _, glossary := newServices(t)
	u := registerUser(t, users, "alice", "alice@x.com", "Secret123")

	g, err := glossary.Create(u.ID, "API", "Application programming interface", nil)
	require.NoError(t, err)
	assert.NotNil(t, g.Tags)
	assert.Empty(t, g.Tags)

	got, err := glossary.Get(u.ID, g.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Tags)
}

func TestGlossaryTermUniqueAcrossUsers(t *testing.T) {
	users, _, glossary := newServices(t)
	alice := registerUser(t, users, "alice", "alice@x.com", "Secret123")
	bob := registerUser(t, users, "bob", "bob@x.com", "Hunter2x")

	_, err := glossary.Create(alice.ID, "API", "Alice's definition", nil)
	require.NoError(t, err)

	_, err = glossary.Create(bob.ID, "API", "Bob's definition", nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGlossaryUpdateTermToTakenTerm(t *testing.T) {
	users, _, glossary := newServices(t)
	u := registerUser(t, users, "alice", "alice@x.com", "Secret123")

	_, err := glossary.Create(u.ID, "API", "one", nil)
	require.NoError(t, err)
	g, err := glossary.Create(u.ID, "REST", "two", nil)
	require.NoError(t, err)

	taken := "API"
	_, err = glossary.Update(u.ID, g.ID, GlossaryUpdate{Term: &taken})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGlossaryPartialUpdate(t *testing.T) {
	users, _, glossary := newServices(t)
	u := registerUser(t, users, "alice", "alice@x.com", "Secret123")
	g, err := glossary.Create(u.ID, "API", "old definition", []string{"web"})
	require.NoError(t, err)

	def := "new definition"
	updated, err := glossary.Update(u.ID, g.ID, GlossaryUpdate{Definition: &def})
	require.NoError(t, err)
	assert.Equal(t, "API", updated.Term)
	assert.Equal(t, "new definition", updated.Definition)
	assert.Equal(t, []string{"web"}, []string(updated.Tags))

	tags := []string{"web", "http"}
	updated, err = glossary.Update(u.ID, g.ID, GlossaryUpdate{Tags: &tags})
	require.NoError(t, err)
	assert.Equal(t, []string{"web", "http"}, []string(updated.Tags))
}

func TestGlossaryKeepingOwnTermOnUpdate(t *testing.T) {
	users, _, glossary := newServices(t)
	u := registerUser(t, users, "alice", "alice@x.com", "Secret123")
	g, err := glossary.Create(u.ID, "API", "definition", nil)
	require.NoError(t, err)

	// re-submitting the current term is not a collision
	same := "API"
	def := "updated"
	_, err = glossary.Update(u.ID, g.ID, GlossaryUpdate{Term: &same, Definition: &def})
	require.NoError(t, err)
}

func TestGlossaryNonOwnerAccess(t *testing.T) {
	users, _, glossary := newServices(t)
	alice := registerUser(t, users, "alice", "alice@x.com", "Secret123")
	bob := registerUser(t, users, "bob", "bob@x.com", "Hunter2x")
	g, err := glossary.Create(alice.ID, "API", "definition", nil)
	require.NoError(t, err)

	_, err = glossary.Get(bob.ID, g.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = glossary.Delete(bob.ID, g.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = glossary.Get(alice.ID, g.ID)
	require.NoError(t, err)
}
