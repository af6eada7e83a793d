package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialsEqual(t *testing.T) {
	a := Credentials{Username: "alice", Password: "pw"}
	assert.True(t, a.Equal(Credentials{Username: "alice", Password: "pw"}))
	assert.False(t, a.Equal(Credentials{Username: "alice", Password: "PW"}))
	assert.False(t, a.Equal(Credentials{Username: "bob", Password: "pw"}))
}

func TestMemberOf(t *testing.T) {
	u := &User{CompanyIDs: []int64{1, 3}}
	assert.True(t, u.MemberOf(1))
	assert.True(t, u.MemberOf(3))
	assert.False(t, u.MemberOf(2))

	empty := &User{}
	assert.False(t, empty.MemberOf(1))
}
