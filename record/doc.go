// Package record defines the log record value type carried from a logger
// to its channel. A record is immutable once handed to a channel.
package record
