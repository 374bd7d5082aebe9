package sha512

// Writer adapts a Context to io.Writer for streaming callers such as
// io.Copy. Unlike Context it is a mutable accumulator; use Context directly
// when branching or value semantics matter.
type Writer struct {
	ctx Context
}

// NewWriter creates a Writer over a fresh SHA-512 context.
func NewWriter() *Writer {
	return &Writer{ctx: New()}
}

// NewWriterContext creates a Writer that continues hashing from ctx.
func NewWriterContext(ctx Context) *Writer {
	return &Writer{ctx: ctx}
}

// Write adds data to the hash state. It never fails.
func (w *Writer) Write(p []byte) (int, error) {
	w.ctx = w.ctx.Update(p)
	return len(p), nil
}

// Sum returns the digest of everything written so far. Further writes may
// follow.
func (w *Writer) Sum() Digest { return w.ctx.Finalize() }

// SumHex returns the lowercase hex digest of everything written so far.
func (w *Writer) SumHex() string { return w.ctx.Finalize().Hex() }

// Context returns a snapshot of the current hashing state, suitable for
// branching or resuming later with NewWriterContext.
func (w *Writer) Context() Context { return w.ctx }
