package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCommands(t *testing.T) {
	cmds := getCommands()

	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"migrate", "create-master-key", "rotate-keys", "verify"}, names)

	rotate := cmds[2]
	aliases := map[string]string{}
	for _, f := range rotate.Flags {
		flagNames := f.Names()
		require.Len(t, flagNames, 2)
		aliases[flagNames[0]] = flagNames[1]
	}
	assert.Equal(t, map[string]string{
		"database-key":      "k",
		"database-key-file": "f",
		"generate-new-key":  "g",
	}, aliases)
}
