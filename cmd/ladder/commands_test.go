package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mauv0809/elo-ladder/internal/ladder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI against db and returns what it printed.
func run(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := execute(append([]string{"--db", db}, args...), &out)
	return out.String(), err
}

func newDB(t *testing.T) string {
	t.Helper()
	t.Chdir(t.TempDir())
	return filepath.Join(t.TempDir(), "ladder.db")
}

func TestAddAndLadder(t *testing.T) {
	db := newDB(t)

	out, err := run(t, db, "add", "alice")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "Added alice"))

	_, err = run(t, db, "add", "1s", "bob")
	require.NoError(t, err)

	out, err = run(t, db, "ladder", "1s")
	require.NoError(t, err)
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "bob")
	assert.Contains(t, out, "1000.00")
	assert.Contains(t, out, "Rank")

	out, err = run(t, db, "l")
	require.NoError(t, err)
	for _, mode := range []string{"1s", "2s", "ffa"} {
		assert.Contains(t, out, mode)
	}
}

func TestAdd_Duplicate(t *testing.T) {
	db := newDB(t)
	_, err := run(t, db, "add", "1s", "alice")
	require.NoError(t, err)

	_, err = run(t, db, "add", "1s", "alice")
	assert.ErrorIs(t, err, ladder.ErrAlreadyExists)

	out, err := run(t, db, "add", "all", "alice")
	assert.ErrorIs(t, err, ladder.ErrAlreadyExists)
	assert.Contains(t, out, "Skipped 1s")
	assert.Equal(t, 2, strings.Count(out, "Added alice"))
}

func TestMatch(t *testing.T) {
	db := newDB(t)
	_, err := run(t, db, "add", "1s", "alice")
	require.NoError(t, err)
	_, err = run(t, db, "add", "1s", "bob")
	require.NoError(t, err)

	out, err := run(t, db, "m", "alice", "bob")
	require.NoError(t, err)
	assert.Contains(t, out, "+16.00")
	assert.Contains(t, out, "1016.00")
	assert.Contains(t, out, "-16.00")
	assert.Contains(t, out, "984.00")

	out, err = run(t, db, "odds", "alice", "bob")
	require.NoError(t, err)
	assert.Contains(t, out, "alice beats bob in 1s")
}

func TestTeamAndFreeForAll(t *testing.T) {
	db := newDB(t)
	for _, name := range []string{"a", "b", "c", "d"} {
		_, err := run(t, db, "add", name)
		require.NoError(t, err)
	}

	out, err := run(t, db, "team", "a", "b", "c", "d")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "1016.00"))
	assert.Equal(t, 2, strings.Count(out, "984.00"))

	out, err = run(t, db, "ffa", "a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "1016.00"))
	assert.Equal(t, 2, strings.Count(out, "984.00"))
}

func TestArgumentErrors(t *testing.T) {
	db := newDB(t)
	cases := []struct {
		name string
		args []string
		err  error
	}{
		{"match with one player", []string{"match", "alice"}, ladder.ErrInvalidArgumentCount},
		{"team with three players", []string{"team", "a", "b", "c"}, ladder.ErrInvalidArgumentCount},
		{"ffa with four players", []string{"ffa", "a", "b", "c", "d"}, ladder.ErrInvalidArgumentCount},
		{"add without a name", []string{"add"}, ladder.ErrInvalidArgumentCount},
		{"unknown mode", []string{"ladder", "3s"}, ladder.ErrInvalidMode},
		{"unknown player", []string{"match", "ghost", "phantom"}, ladder.ErrPlayerNotFound},
		{"same player twice", []string{"match", "alice", "alice"}, ladder.ErrDuplicateParticipant},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, db, tc.args...)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}
