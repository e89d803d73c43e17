// Package toolhub aggregates tools from a set of backend providers and routes
// tool calls across them.
//
// A Provider is an external capability source exposing a list-tools/call-tool
// contract. The Catalog queries every registered provider and normalizes the
// results into a uniform descriptor list; one misbehaving provider never
// breaks catalog assembly. The Dispatcher routes a single call through the
// providers in registration order and returns the first successful result — a
// first-success fallback chain, not a load balancer.
//
// Tool names are not globally unique. If two providers export the same name,
// the catalog keeps both entries and Snapshot.Find resolves to the first
// registered; the dispatcher resolves ambiguity procedurally by whichever
// provider answers first.
package toolhub
