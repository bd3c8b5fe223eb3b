// Package aport implements APORT (A Proximate Optimistic Radix Tree), a
// prefix-compressed associative container with two retrieval disciplines.
//
// The mutating operations (Insert, Erase, GetOrInsert) and Contains always
// behave exactly like a conventional radix tree. Get is where the two
// disciplines diverge:
//
//   - A tree built with NewRadix verifies every prefix byte during Get, so
//     lookups are exact and never report a key that was not inserted.
//
//   - A tree built with New retrieves optimistically: Get compares lengths
//     only and verifies actual key bytes solely at disambiguation points —
//     nodes where the tree branches and the next byte selects a child. Every
//     other byte of every prefix along the path is taken on faith. This makes
//     lookups cheaper when keys share long common prefixes, at the cost of
//     occasional false positives: Get may return the value of a different key
//     of the same length that agrees on all consulted branch bytes.
//
// Inserting "al", "arnold" and "andrew" produces:
//
//	"" ─── "a" ──┬── "l"
//	             ├── "ndrew"
//	             └── "rnold"
//
// On that tree an optimistic Get("arnolf") returns the value of "arnold"
// (same length, branch bytes 'a' and 'r' both match), while Get("astrid")
// fails because 's' selects no child of "a". Contains is exact in both
// disciplines, so it can be used to confirm a suspect hit.
//
// Iteration visits entries in most-recently-inserted-first order and carries
// no sorting guarantee. Trees are not safe for concurrent use; guard them
// externally when shared.
package aport
