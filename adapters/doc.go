// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Sink adapters binding the frame encoder to concrete transports:
// io.Writer streams, FIFO-queued asynchronous delivery, and Linux
// writev(2) gather output.
package adapters
