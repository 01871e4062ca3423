// Package builder turns an eligibility relation into the unit-capacity flow
// network solved by package flow.
//
// The package offers the following key components:
//
//   - NetworkBuilder: owns the relation and both label↔index mappings.
//     Every builder starts empty, so repeated runs (tests, batch solving)
//     never observe each other's labels.
//   - Network: the built (P+J+2)×(P+J+2) capacity matrix plus lookups
//     between node indices and labels.
//   - Readers:
//     – Read:     "<left>><right1>,<right2>,..." lines.
//     – ReadYAML: a mapping of left label to a list of right labels.
//     – ReadFile: picks a reader by file extension.
//
// Node layout:
//
//	0            super-source
//	1..P         left entities, first-seen order
//	P+1..P+J     right entities, first-seen order
//	P+J+1        super-sink
//
// Every edge has capacity 1: source→left, left→eligible right, right→sink.
// An empty relation (P = 0) builds the 2-node network {source, sink}.
//
// Errors:
//
//   - ErrEmptyLabel, ErrMalformedLine, ErrUnreadableInput
//     are matched with errors.Is.
//   - *ParseError carries the 1-based line of malformed input.
package builder
