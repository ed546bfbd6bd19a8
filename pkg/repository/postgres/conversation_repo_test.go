package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/botivate/troubleshoot/pkg/support"
)

func TestMarshalTurns(t *testing.T) {
	b, err := marshalTurns(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b))

	b, err = marshalTurns([]support.Turn{
		{Role: support.RoleHuman, Content: "sheet not syncing"},
		{Role: support.RoleAssistant, Content: "check the trigger"},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"role":"human","content":"sheet not syncing"},{"role":"assistant","content":"check the trigger"}]`, string(b))
}
