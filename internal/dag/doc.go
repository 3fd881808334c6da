// Package dag is the dependency resolution core of the application. It turns
// a flat task list into an interned dependency graph, produces deterministic
// layered execution plans (Kahn's algorithm with lexicographic layering), and
// computes incremental readiness reports against a caller-owned completed
// set. It never executes a task payload; it only decides what may run next.
package dag
