// Package hcl implements the config.Loader interface for HCL workflow
// definition files. It owns all HCL-specific parsing and translation; nothing
// outside this package sees an hcl.Expression.
package hcl
