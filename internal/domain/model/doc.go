// Package model holds the in-memory publishing graph: authors, magazines and the
// articles that join them.
//
// An Article always references exactly one Author and one Magazine, and both of them
// list the article among their own articles. Assigning a new author or magazine moves
// the article between those lists, so forward and back references never disagree.
//
// Magazines and articles are recorded in a Registry, which answers registry-wide
// questions such as TopPublisher. The graph does no locking; callers must not share a
// Registry, or the entities created through it, between goroutines.
package model
