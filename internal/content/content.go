// Package content holds the literal copy shown on the landing page and the
// deployment guide.
package content

import "github.com/3-lines-studio/infraguide/internal/tfvars"

type Icon string

const (
	IconGlobe       Icon = "globe"
	IconServer      Icon = "server"
	IconCloud       Icon = "cloud"
	IconShield      Icon = "shield"
	IconAlertCircle Icon = "alert-circle"
	IconCheckCircle Icon = "check-circle-2"
)

type Feature struct {
	Icon        Icon
	Title       string
	Description string
	Body        string
}

const (
	SiteTitle  = "Multi-Region Infrastructure"
	GuideTitle = "Multi-Region Deployment Guide"
	GuideCTA   = "View Deployment Guide"

	SiteDescription  = "Frontend on Vercel's edge network, backend across two AWS regions, all managed with Terraform."
	GuideDescription = "Step-by-step setup of the multi-region AWS and Vercel infrastructure with Terraform and GitHub Actions."
)

var Features = []Feature{
	{
		Icon:        IconGlobe,
		Title:       "Global Edge Network",
		Description: "Vercel's global edge network for frontend delivery",
		Body:        "Frontend deployed to Vercel's global edge network with automatic scaling and redundancy.",
	},
	{
		Icon:        IconServer,
		Title:       "Multi-Region Backend",
		Description: "AWS infrastructure across multiple regions",
		Body:        "Backend services deployed across multiple AWS regions with automated failover.",
	},
	{
		Icon:        IconCloud,
		Title:       "Infrastructure as Code",
		Description: "Terraform for infrastructure provisioning",
		Body:        "All infrastructure defined and managed through Terraform for consistency and repeatability.",
	},
	{
		Icon:        IconShield,
		Title:       "High Availability",
		Description: "Resilient architecture with failover",
		Body:        "Automatic failover between regions ensures high availability and disaster recovery.",
	},
}

type Notice struct {
	Title string
	Body  string
}

var GuideNotice = Notice{
	Title: "Important",
	Body:  "This guide assumes you have AWS and Vercel accounts set up with appropriate permissions.",
}

type CheckItem struct {
	Label string
	Note  string
}

type Checklist struct {
	Title       string
	Description string
	Items       []CheckItem
}

var RequiredTools = Checklist{
	Title:       "Required Tools",
	Description: "Software you'll need to install",
	Items: []CheckItem{
		{Label: "Terraform CLI (v1.0+)", Note: "Infrastructure as Code tool"},
		{Label: "AWS CLI", Note: "For AWS authentication and management"},
		{Label: "Git", Note: "For source control"},
		{Label: "GitHub Account", Note: "For CI/CD integration"},
		{Label: "Vercel Account", Note: "For frontend deployment"},
	},
}

var RequiredCredentials = Checklist{
	Title:       "Required Credentials",
	Description: "API keys and access tokens",
	Items: []CheckItem{
		{Label: "AWS Access Key & Secret Key", Note: "With permissions to create EC2, VPC, ELB, and Route53 resources"},
		{Label: "Vercel API Token", Note: "For Terraform to manage Vercel resources"},
		{Label: "GitHub Personal Access Token", Note: "For CI/CD workflow"},
	},
}

// Step is one numbered instruction inside a guide section. Body is
// Markdown; Code, when set, is rendered as a highlighted block in Lang.
type Step struct {
	Title string
	Body  string
	Code  string
	Lang  string
	List  []string
}

type Section struct {
	Title       string
	Description string
	Steps       []Step
}

// SampleVars is the terraform.tfvars a reader is asked to create.
var SampleVars = []tfvars.Var{
	{Name: "primary_region", Value: "us-east-1"},
	{Name: "secondary_region", Value: "us-west-2"},
	{Name: "environment", Value: "prod"},
	{Name: "instance_type", Value: "t3.medium"},
	{Name: "app_name", Value: "your-app-name"},
	{Name: "domain_name", Value: "yourdomain.com"},
	{Name: "github_org", Value: "your-github-org"},
	{Name: "github_repo", Value: "your-github-repo"},
}

// TerraformSection returns the Terraform Setup panel. tfvarsSrc is the
// rendered sample variables file.
func TerraformSection(tfvarsSrc string) Section {
	return Section{
		Title:       "Terraform Configuration",
		Description: "Setting up your infrastructure code",
		Steps: []Step{
			{
				Title: "Clone the Repository",
				Code:  "git clone https://github.com/your-org/multi-region-infra.git",
				Lang:  "bash",
			},
			{
				Title: "Initialize Terraform",
				Code:  "cd terraform\nterraform init",
				Lang:  "bash",
			},
			{
				Title: "Configure Variables",
				Body:  "Create a `terraform.tfvars` file with your configuration:",
				Code:  tfvarsSrc,
				Lang:  "hcl",
			},
			{
				Title: "Plan and Apply",
				Code:  "terraform plan\nterraform apply",
				Lang:  "bash",
			},
		},
	}
}

var Secrets = []string{
	"AWS_ACCESS_KEY_ID",
	"AWS_SECRET_ACCESS_KEY",
	"VERCEL_API_TOKEN",
	"DOMAIN_NAME",
	"GITHUB_ORG",
	"GITHUB_REPO",
}

var CICDSection = Section{
	Title:       "CI/CD Pipeline Setup",
	Description: "Automating your infrastructure deployment",
	Steps: []Step{
		{
			Title: "Set Up GitHub Secrets",
			Body:  "Add the following secrets to your GitHub repository:",
			List:  Secrets,
		},
		{
			Title: "Create GitHub Actions Workflow",
			Body:  "Copy the `deploy.yml` file to `.github/workflows/` in your repository",
		},
		{
			Title: "Commit and Push",
			Code:  "git add .\ngit commit -m \"Add CI/CD workflow\"\ngit push origin main",
			Lang:  "bash",
		},
		{
			Title: "Monitor Workflow",
			Body:  "Check the Actions tab in your GitHub repository to monitor the deployment",
		},
	},
}

var VercelSection = Section{
	Title:       "Vercel Integration",
	Description: "Connecting your frontend with the backend infrastructure",
	Steps: []Step{
		{
			Title: "Generate Vercel API Token",
			Body:  "Create a token in the Vercel dashboard under Account Settings → Tokens",
		},
		{
			Title: "Connect GitHub Repository",
			Body:  "Terraform will automatically connect your GitHub repository to Vercel",
		},
		{
			Title: "Environment Variables",
			Body: "Terraform will automatically set up the `API_URL` environment variable in Vercel\n\n" +
				"You can add additional environment variables in the Vercel dashboard or through Terraform",
		},
		{
			Title: "Custom Domains",
			Body: "Terraform will configure your custom domain in Vercel\n\n" +
				"Ensure your domain's DNS is properly configured to point to Vercel",
		},
	},
}
