// Package datasource fetches raw measurement row sets from the
// materials database.
//
// A pipeline run takes one Snapshot: the connection is acquired, the
// fixed set of queries runs, and the connection is released before any
// transform stage executes. There is no caching between runs and no
// retry on failure; a failed query aborts the whole fetch.
package datasource
