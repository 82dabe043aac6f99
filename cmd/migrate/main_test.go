package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-catalog/pkg/postgres"
)

func TestPrint(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"print"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, postgres.Schema(), out.String())
}

func TestUpRequiresDSN(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"up"})
	assert.ErrorContains(t, cmd.Execute(), "POSTGRES_DSN is required")
}
