package openapierror

type (
	// Option configures a Definition at Compile, Extend or WithOptions.
	// Definitions created by Extend inherit the options of their parent.
	Option interface {
		// ApplyOption applies this option to the given applier.
		ApplyOption(a OptionApplier)
	}

	// OptionApplier provides the settings an Option can change.
	OptionApplier interface {
		// DisableTrace disables stack trace collection.
		DisableTrace()
		// AddStackSkip adds frames to skip during stack trace collection.
		AddStackSkip(skip int)
	}

	optionApplier struct {
		def *Definition
	}

	noTrace struct{}

	stackSkip struct {
		skip int
	}
)

// NoTrace disables stack trace collection.
func NoTrace() Option {
	return &noTrace{}
}

// StackSkip adds to the number of frames to skip during stack trace collection.
// It is meant for helpers that create errors on behalf of their callers.
func StackSkip(skip int) Option {
	return &stackSkip{skip: skip}
}

func (d *Definition) applyOptions(opts []Option) {
	a := &optionApplier{def: d}
	for _, opt := range opts {
		if opt != nil {
			opt.ApplyOption(a)
		}
	}
}

func (a *optionApplier) DisableTrace() {
	a.def.noTrace = true
}

func (a *optionApplier) AddStackSkip(skip int) {
	a.def.stackSkip += skip
}

func (o *noTrace) ApplyOption(a OptionApplier) {
	a.DisableTrace()
}

func (o *stackSkip) ApplyOption(a OptionApplier) {
	a.AddStackSkip(o.skip)
}
