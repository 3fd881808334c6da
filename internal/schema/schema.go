// Package schema defines the HCL-specific decoding structures for workflow
// definition files. They are translated into the format-agnostic model by the
// hcl loader and never leave it.
package schema

import "github.com/hashicorp/hcl/v2"

// Step represents a `step` block from a user's workflow file.
//
//	step "enrich_profiles" {
//	  skill      = "agent_crm.enrich"
//	  params     = { region = "emea", batch = 25 }
//	  depends_on = ["load_accounts"]
//	}
type Step struct {
	Name      string         `hcl:"name,label"`
	Skill     string         `hcl:"skill,optional"`
	Params    hcl.Expression `hcl:"params,optional"`
	DependsOn []string       `hcl:"depends_on,optional"`
}

// WorkflowFile represents the top-level structure of a workflow file,
// containing all defined steps. The remain body tolerates unrelated blocks so
// workflow files can live next to other configuration.
type WorkflowFile struct {
	Steps []*Step  `hcl:"step,block"`
	Body  hcl.Body `hcl:",remain"`
}
