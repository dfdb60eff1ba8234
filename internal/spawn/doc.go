// Package spawn renders per-agent prompt files from a template and emits the
// Task invocation descriptors an orchestrating runtime copy-pastes to dispatch
// the swarm. It powers the "swarmgen spawn", "list", and "clean" commands.
package spawn
