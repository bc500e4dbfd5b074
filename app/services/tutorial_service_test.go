package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTutorialCreateValidation(t *testing.T) {
	users, tutorials, _ := newServices(t)
	u := registerUser(t, users, "alice", "alice@x.com", "Secret123")

	_, err := tutorials.Create(u.ID, "", "content", false)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = tutorials.Create(u.ID, "title", "   ", false)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTutorialCreateDefaults(t *testing.T) {
	users, tutorials, _ := newServices(t)
	u := registerUser(t, users, "alice", "alice@x.com", "Secret123")

	tut, err := tutorials.Create(u.ID, "Intro", "Welcome", false)
	require.NoError(t, err)
	assert.False(t, tut.Completed)
	assert.Equal(t, u.ID, tut.UserID)
}

func TestTutorialListInsertionOrder(t *testing.T) {
	users, tutorials, _ := newServices(t)
	u := registerUser(t, users, "alice", "alice@x.com", "Secret123")

	for _, title := range []string{"first", "second", "third"} {
		_, err := tutorials.Create(u.ID, title, "content", false)
		require.NoError(t, err)
	}

	list, err := tutorials.List(u.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "first", list[0].Title)
	assert.Equal(t, "second", list[1].Title)
	assert.Equal(t, "third", list[2].Title)
}

func TestTutorialListScopedToOwner(t *testing.T) {
	users, tutorials, _ := newServices(t)
	alice := registerUser(t, users, "alice", "alice@x.com", "Secret123")
	bob := registerUser(t, users, "bob", "bob@x.com", "Hunter2x")

	_, err := tutorials.Create(alice.ID, "Alice's", "content", false)
	require.NoError(t, err)

	list, err := tutorials.List(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTutorialPartialUpdate(t *testing.T) {
	users, tutorials, _ := newServices(t)
	u := registerUser(t, users, "alice", "alice@x.com", "Secret123")
	tut, err := tutorials.Create(u.ID, "Intro", "Welcome", false)
	require.NoError(t, err)

	newTitle := "Intro v2"
	updated, err := tutorials.Update(u.ID, tut.ID, TutorialUpdate{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Intro v2", updated.Title)
	assert.Equal(t, "Welcome", updated.Content)
	assert.False(t, updated.Completed)

	done := true
	updated, err = tutorials.Update(u.ID, tut.ID, TutorialUpdate{Completed: &done})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "Intro v2", updated.Title)
}

func TestTutorialUpdateEmptyTitleRejected(t *testing.T) {
	users, tutorials, _ := newServices(t)
	u := registerUser(t, users, "alice", "alice@x.com", "Secret123")
	tut, err := tutorials.Create(u.ID, "Intro", "Welcome", false)
	require.NoError(t, err)

	empty := ""
	_, err = tutorials.Update(u.ID, tut.ID, TutorialUpdate{Title: &empty})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTutorialUpdateByNonOwner(t *testing.T) {
	users, tutorials, _ := newServices(t)
	alice := registerUser(t, users, "alice", "alice@x.com", "Secret123")
	bob := registerUser(t, users, "bob", "bob@x.com", "Hunter2x")
	tut, err := tutorials.Create(alice.ID, "Intro", "Welcome", false)
	require.NoError(t, err)

	title := "stolen"
	_, err = tutorials.Update(bob.ID, tut.ID, TutorialUpdate{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)

	// untouched for the owner
	got, err := tutorials.Get(alice.ID, tut.ID)
	require.NoError(t, err)
	assert.Equal(t, "Intro", got.Title)
}

func TestTutorialDeleteByNonOwner(t *testing.T) {
	users, tutorials, _ := newServices(t)
	alice := registerUser(t, users, "alice", "alice@x.com", "Secret123")
	bob := registerUser(t, users, "bob", "bob@x.com", "Hunter2x")
	tut, err := tutorials.Create(alice.ID, "Intro", "Welcome", false)
	require.NoError(t, err)

	err = tutorials.Delete(bob.ID, tut.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = tutorials.Get(alice.ID, tut.ID)
	require.NoError(t, err)
}

func TestTutorialDeleteThenGet(t *testing.T) {
	users, tutorials, _ := newServices(t)
	u := registerUser(t, users, "alice", "alice@x.com", "Secret123")
	tut, err := tutorials.Create(u.ID, "Intro", "Welcome", false)
	require.NoError(t, err)

	require.NoError(t, tutorials.Delete(u.ID, tut.ID))
	_, err = tutorials.Get(u.ID, tut.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
