package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saswattulo/Note-App-VueJs/internal/models"
	"github.com/saswattulo/Note-App-VueJs/internal/testutil"
)

func TestUserStore_CRUD(t *testing.T) {
	s := New(testutil.OpenTestDB(t, "store_users"))

	user := &models.User{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		PasswordHash: "hash",
	}
	require.NoError(t, s.CreateUser(user))
	require.NotZero(t, user.ID)

	got, err := s.GetUser(user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ada@example.com", got.Email)

	byEmail, err := s.GetUserByEmail("ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, user.ID, byEmail.ID)

	users, err := s.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 1)

	got.FirstName = "Augusta"
	require.NoError(t, s.UpdateUser(got))
	updated, err := s.GetUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Augusta", updated.FirstName)

	require.NoError(t, s.DeleteUser(updated))
	gone, err := s.GetUser(user.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestGetAbsentReturnsNil(t *testing.T) {
	s := New(testutil.OpenTestDB(t, "store_absent"))

	user, err := s.GetUser(42)
	require.NoError(t, err)
	assert.Nil(t, user)

	note, err := s.GetNote(42)
	require.NoError(t, err)
	assert.Nil(t, note)

	tag, err := s.GetTag(42)
	require.NoError(t, err)
	assert.Nil(t, tag)

	byEmail, err := s.GetUserByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, byEmail)
}

func TestCreateUser_DuplicateEmailConflicts(t *testing.T) {
	s := New(testutil.OpenTestDB(t, "store_conflict"))

	first := &models.User{FirstName: "A", LastName: "B", Email: "dup@example.com", PasswordHash: "x"}
	require.NoError(t, s.CreateUser(first))

	second := &models.User{FirstName: "C", LastName: "D", Email: "dup@example.com", PasswordHash: "y"}
	err := s.CreateUser(second)
	assert.ErrorIs(t, err, ErrConflict)

	// The losing insert must not leave a row behind.
	users, listErr := s.ListUsers()
	require.NoError(t, listErr)
	assert.Len(t, users, 1)
}

func TestUpdateUser_DuplicateEmailConflicts(t *testing.T) {
	s := New(testutil.OpenTestDB(t, "store_update_conflict"))

	a := &models.User{FirstName: "A", LastName: "A", Email: "a@example.com", PasswordHash: "x"}
	b := &models.User{FirstName: "B", LastName: "B", Email: "b@example.com", PasswordHash: "x"}
	require.NoError(t, s.CreateUser(a))
	require.NoError(t, s.CreateUser(b))

	b.Email = "a@example.com"
	assert.ErrorIs(t, s.UpdateUser(b), ErrConflict)
}

func TestNoteStore_ReferentialAndTagOrder(t *testing.T) {
	s := New(testutil.OpenTestDB(t, "store_notes"))

	orphan := &models.Note{Title: "t", Content: "c", UserID: 999}
	assert.ErrorIs(t, s.CreateNote(orphan), ErrReferential)

	user := &models.User{FirstName: "A", LastName: "B", Email: "notes@example.com", PasswordHash: "x"}
	require.NoError(t, s.CreateUser(user))

	note := &models.Note{Title: "t", Content: "c", UserID: user.ID}
	require.NoError(t, s.CreateNote(note))

	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, s.CreateTag(&models.Tag{Name: name, NoteID: note.ID}))
	}

	got, err := s.GetNote(note.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	// Tags come back in the order they were added, not alphabetically.
	names := make([]string, 0, len(got.Tags))
	for _, tag := range got.Tags {
		names = append(names, tag.Name)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, names)
}

func TestTagStore_Referential(t *testing.T) {
	s := New(testutil.OpenTestDB(t, "store_tags"))

	err := s.CreateTag(&models.Tag{Name: "orphan", NoteID: 999})
	assert.ErrorIs(t, err, ErrReferential)
}

func TestDeleteNote_CascadesTags(t *testing.T) {
	gdb := testutil.OpenTestDB(t, "store_note_cascade")
	s := New(gdb)

	user := &models.User{FirstName: "A", LastName: "B", Email: "cascade@example.com", PasswordHash: "x"}
	require.NoError(t, s.CreateUser(user))

	note := &models.Note{Title: "t", Content: "c", UserID: user.ID}
	require.NoError(t, s.CreateNote(note))
	require.NoError(t, s.CreateTag(&models.Tag{Name: "a", NoteID: note.ID}))
	require.NoError(t, s.CreateTag(&models.Tag{Name: "b", NoteID: note.ID}))

	require.NoError(t, s.DeleteNote(note))

	var tagCount int64
	require.NoError(t, gdb.Model(&models.Tag{}).Count(&tagCount).Error)
	assert.Zero(t, tagCount)
}

func TestDeleteUser_CascadesNotesAndTags(t *testing.T) {
	gdb := testutil.OpenTestDB(t, "store_user_cascade")
	s := New(gdb)

	owner := &models.User{FirstName: "A", LastName: "B", Email: "owner@example.com", PasswordHash: "x"}
	other := &models.User{FirstName: "C", LastName: "D", Email: "other@example.com", PasswordHash: "x"}
	require.NoError(t, s.CreateUser(owner))
	require.NoError(t, s.CreateUser(other))

	for i := 0; i < 2; i++ {
		note := &models.Note{Title: "t", Content: "c", UserID: owner.ID}
		require.NoError(t, s.CreateNote(note))
		require.NoError(t, s.CreateTag(&models.Tag{Name: "x", NoteID: note.ID}))
	}

	kept := &models.Note{Title: "keep", Content: "c", UserID: other.ID}
	require.NoError(t, s.CreateNote(kept))
	require.NoError(t, s.CreateTag(&models.Tag{Name: "keep", NoteID: kept.ID}))

	require.NoError(t, s.DeleteUser(owner))

	var noteCount, tagCount int64
	require.NoError(t, gdb.Model(&models.Note{}).Count(&noteCount).Error)
	require.NoError(t, gdb.Model(&models.Tag{}).Count(&tagCount).Error)

	// Only the other user's note and tag survive.
	assert.EqualValues(t, 1, noteCount)
	assert.EqualValues(t, 1, tagCount)
}

func TestCreateUpload(t *testing.T) {
	s := New(testutil.OpenTestDB(t, "store_uploads"))

	upload := &models.Upload{Filename: "data.csv", Size: 128, Summary: []byte(`{"ok":true}`)}
	require.NoError(t, s.CreateUpload(upload))
	assert.NotZero(t, upload.ID)
}
