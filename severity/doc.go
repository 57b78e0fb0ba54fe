// Package severity defines the ordered log severity scale used throughout
// logtree.
//
// Levels are numeric ranks from 1 (Fatal, most severe) to 8 (Trace, least
// severe). The special rank 0 (None) disables emission entirely. A logger
// with level L emits exactly the ranks 1..L.
package severity
