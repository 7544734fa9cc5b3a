// Package tfvars renders the sample terraform.tfvars shown on the
// Terraform Setup panel.
package tfvars

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

var ErrInvalidName = errors.New("invalid variable name")

type Var struct {
	Name  string
	Value string
}

// Render returns the formatted HCL for vars, in the order given.
func Render(vars []Var) ([]byte, error) {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	seen := make(map[string]bool, len(vars))
	for _, v := range vars {
		if !hclsyntax.ValidIdentifier(v.Name) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidName, v.Name)
		}
		if seen[v.Name] {
			return nil, fmt.Errorf("%w: %q declared twice", ErrInvalidName, v.Name)
		}
		seen[v.Name] = true
		body.SetAttributeValue(v.Name, cty.StringVal(v.Value))
	}

	return hclwrite.Format(f.Bytes()), nil
}
