// Package devserver serves a live demo session over HTTP for inspection.
//
// Routes:
//
//	GET  /                    page with the rendered markup, kept live over /ws
//	GET  /tree                JSON surface tree
//	GET  /journal             lifecycle journal of the demo
//	POST /events/{id}/{event} dispatch event at the element with that id
//	GET  /snapshots           stored snapshot names (with a store)
//	POST /snapshots/{name}    store the current surface
//	GET  /snapshots/{name}    load a stored snapshot
//	GET  /metrics             Prometheus metrics (with a gatherer)
//	GET  /ws                  commit stream
//
// The session's loop runs on its own goroutine while the server is
// started. Handlers reach the session only through Session.Do, so every
// read and dispatch happens on the loop goroutine.
package devserver
