package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUserID(t *testing.T) {
	id := NewUserID()

	assert.True(t, strings.HasPrefix(id, "User"))
	assert.Len(t, id, len("User")+5)
}

func TestNewBookID(t *testing.T) {
	id := NewBookID()

	assert.True(t, strings.HasPrefix(id, "Book"))
	assert.Len(t, id, len("Book")+5)
}

func TestRole_CanMutateBooks(t *testing.T) {
	assert.True(t, RoleUser.CanMutateBooks())
	assert.False(t, RoleNotAdmin.CanMutateBooks())
	assert.False(t, Role("ADMIN").CanMutateBooks())
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleNotAdmin.IsValid())
	assert.False(t, Role("MERCHANT").IsValid())
}

func TestGenre_IsValid(t *testing.T) {
	assert.True(t, GenreFiction.IsValid())
	assert.True(t, GenreSoftwareProgramming.IsValid())
	assert.False(t, Genre("POETRY").IsValid())
	assert.False(t, Genre("fiction").IsValid(), "shelf names are case-sensitive")
}
