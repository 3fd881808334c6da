// Package config defines the format-agnostic workflow definition model and
// the Loader interface implemented by the format-specific loaders (HCL,
// YAML). Consumers of the model never see which format a workflow came from.
package config
