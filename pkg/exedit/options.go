package exedit

// Options configures how a batch of edits is applied to a workbook.
type Options struct {
	// Format controls whether numeric writes receive a display format.
	// If nil, defaults to true.
	Format *bool
	// Output is the path the edited workbook is saved to. If empty, the
	// workbook is saved in place.
	Output string
}

// DefaultOptions returns default apply options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldFormat returns whether numeric writes receive a display format.
func (o Options) ShouldFormat() bool {
	if o.Format != nil {
		return *o.Format
	}
	return true
}
