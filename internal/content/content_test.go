package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatures(t *testing.T) {
	require.Len(t, Features, 4)

	titles := make([]string, len(Features))
	for i, f := range Features {
		titles[i] = f.Title
		assert.NotEmpty(t, f.Icon)
		assert.NotEmpty(t, f.Description)
		assert.NotEmpty(t, f.Body)
	}
	assert.Equal(t, []string{
		"Global Edge Network",
		"Multi-Region Backend",
		"Infrastructure as Code",
		"High Availability",
	}, titles)
}

func TestChecklists(t *testing.T) {
	assert.Len(t, RequiredTools.Items, 5)
	assert.Len(t, RequiredCredentials.Items, 3)
	assert.Equal(t, "Terraform CLI (v1.0+)", RequiredTools.Items[0].Label)
	assert.Equal(t, "GitHub Personal Access Token", RequiredCredentials.Items[2].Label)
}

func TestSectionsHaveFourSteps(t *testing.T) {
	for name, s := range map[string]Section{
		"terraform": TerraformSection("x = \"y\"\n"),
		"cicd":      CICDSection,
		"vercel":    VercelSection,
	} {
		assert.Len(t, s.Steps, 4, name)
	}
}

func TestSecrets(t *testing.T) {
	assert.Equal(t, Secrets, CICDSection.Steps[0].List)
	assert.Len(t, Secrets, 6)
}
