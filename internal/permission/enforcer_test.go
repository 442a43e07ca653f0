// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package permission_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holomush/helpmenu/internal/permission"
	"github.com/holomush/helpmenu/pkg/errutil"
)

func TestEnforcer_Check(t *testing.T) {
	tests := []struct {
		name       string
		grants     []string
		permission string
		want       bool
	}{
		{name: "exact match", grants: []string{"myplugin.help.admin"}, permission: "myplugin.help.admin", want: true},
		{name: "single wildcard matches child", grants: []string{"myplugin.help.*"}, permission: "myplugin.help.admin", want: true},
		{name: "single wildcard stops at separator", grants: []string{"myplugin.*"}, permission: "myplugin.help.admin", want: false},
		{name: "double wildcard crosses segments", grants: []string{"myplugin.**"}, permission: "myplugin.help.admin", want: true},
		{name: "root super wildcard", grants: []string{"**"}, permission: "anything.at.all", want: true},
		{name: "no match", grants: []string{"myplugin.help.user"}, permission: "myplugin.help.admin", want: false},
		{name: "prefix is not a grant", grants: []string{"myplugin.help"}, permission: "myplugin.help.admin", want: false},
		{name: "empty grants", grants: []string{}, permission: "myplugin.help.admin", want: false},
		{name: "empty permission denied", grants: []string{"**"}, permission: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := permission.NewEnforcer()
			require.NoError(t, e.SetGrants("steve", tt.grants))
			assert.Equal(t, tt.want, e.Check("steve", tt.permission))
		})
	}
}

func TestEnforcer_UnknownSubject(t *testing.T) {
	e := permission.NewEnforcer()
	assert.False(t, e.Check("nobody", "any.permission"))
}

func TestEnforcer_ZeroValue(t *testing.T) {
	var e permission.Enforcer
	assert.False(t, e.Check("steve", "a.b"))
	require.NoError(t, e.SetGrants("steve", []string{"a.*"}))
	assert.True(t, e.Check("steve", "a.b"))
}

func TestEnforcer_SetGrants_Invalid(t *testing.T) {
	e := permission.NewEnforcer()
	require.NoError(t, e.SetGrants("steve", []string{"a.b"}))

	err := e.SetGrants("steve", []string{"c.d", "[unclosed"})
	require.Error(t, err)
	errutil.AssertErrorCode(t, err, "INVALID_PERMISSION_PATTERN")
	assert.Equal(t, []string{"a.b"}, e.Grants("steve"), "failed update must not change grants")

	err = e.SetGrants("steve", []string{""})
	errutil.AssertErrorCode(t, err, "INVALID_PERMISSION_PATTERN")

	err = e.SetGrants("", []string{"a"})
	errutil.AssertErrorCode(t, err, "INVALID_SUBJECT")
}

func TestEnforcer_GrantsIsCopy(t *testing.T) {
	e := permission.NewEnforcer()
	require.NoError(t, e.SetGrants("steve", []string{"a.b"}))

	g := e.Grants("steve")
	g[0] = "changed"
	assert.Equal(t, []string{"a.b"}, e.Grants("steve"))
	assert.Nil(t, e.Grants("alex"))
}

func TestEnforcer_RemoveAndSubjects(t *testing.T) {
	e := permission.NewEnforcer()
	require.NoError(t, e.SetGrants("steve", []string{"a"}))
	require.NoError(t, e.SetGrants("alex", []string{"b"}))
	assert.Equal(t, []string{"alex", "steve"}, e.Subjects())

	e.RemoveGrants("steve")
	e.RemoveGrants("unknown")
	assert.Equal(t, []string{"alex"}, e.Subjects())
	assert.False(t, e.Check("steve", "a"))
}

func TestSubject_HasPermission(t *testing.T) {
	e := permission.NewEnforcer()
	require.NoError(t, e.SetGrants("steve", []string{"myplugin.help.**"}))

	s := e.For("steve")
	assert.Equal(t, "steve", s.Name())
	assert.True(t, s.HasPermission("myplugin.help.admin"))
	assert.False(t, s.HasPermission("otherplugin.help"))

	assert.False(t, permission.Subject{}.HasPermission("x"))
}

func TestEnforcer_ConcurrentAccess(t *testing.T) {
	e := permission.NewEnforcer()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = e.SetGrants("steve", []string{"a.*"})
		}()
		go func() {
			defer wg.Done()
			_ = e.Check("steve", "a.b")
		}()
	}
	wg.Wait()
	assert.True(t, e.Check("steve", "a.b"))
}
