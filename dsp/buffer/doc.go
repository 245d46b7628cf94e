// Package buffer turns an arbitrary-length complex sample stream into
// fixed-size analysis frames. [Ring] is an owned, bounds-checked circular
// buffer; [Framer] builds on it to emit one frame per hop of new samples.
package buffer
