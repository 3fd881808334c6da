// Package app wires the workflow loaders, the resolution engine, and the
// lessons sink into a runnable application: load a workflow definition,
// resolve a plan or a readiness report, and emit the result envelope as JSON.
package app
