package tfvars

import (
	"strings"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderKeepsOrderAndAligns(t *testing.T) {
	out, err := Render([]Var{
		{Name: "primary_region", Value: "us-east-1"},
		{Name: "environment", Value: "prod"},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `primary_region = "us-east-1"`, lines[0])
	assert.Equal(t, `environment    = "prod"`, lines[1])
}

func TestRenderParsesBack(t *testing.T) {
	out, err := Render([]Var{
		{Name: "app_name", Value: "your-app-name"},
		{Name: "domain_name", Value: "yourdomain.com"},
	})
	require.NoError(t, err)

	file, diags := hclsyntax.ParseConfig(out, "terraform.tfvars", hcl.InitialPos)
	require.False(t, diags.HasErrors(), diags.Error())

	attrs, diags := file.Body.JustAttributes()
	require.False(t, diags.HasErrors(), diags.Error())
	require.Contains(t, attrs, "domain_name")

	val, diags := attrs["domain_name"].Expr.Value(nil)
	require.False(t, diags.HasErrors(), diags.Error())
	assert.Equal(t, "yourdomain.com", val.AsString())
}

func TestRenderRejectsBadNames(t *testing.T) {
	_, err := Render([]Var{{Name: "", Value: "x"}})
	require.ErrorIs(t, err, ErrInvalidName)

	_, err = Render([]Var{{Name: "1region", Value: "x"}})
	require.ErrorIs(t, err, ErrInvalidName)

	_, err = Render([]Var{{Name: "a", Value: "x"}, {Name: "a", Value: "y"}})
	require.ErrorIs(t, err, ErrInvalidName)
}
