// Package duet runs two copies of a listing against each other.
//
// Each Program wraps a CPU with a FIFO receive queue. A value sent by one
// Program is pushed on the queue of the other, and a receive with an empty
// queue leaves the Program waiting. The Scheduler alternates the two
// Programs, one tick each per round, until neither is runnable.
//
// The same Program can also be run alone with Drain, collecting what it
// sends until it waits on its empty queue.
package duet
