// Package sessions provides the SessionStore adapters that persist each
// browser session's to-do collection between requests. Two backends are
// available: an in-process map for single-instance deployments and tests,
// and a SQLite database for state that survives restarts.
//
// Both stores hold the collection as the JSON encoding of
// [todolist.CollectionRecord], so a session written by one backend reads
// identically from the other.
package sessions
