package msgalloc

// Config holds everything New needs to build an Allocator. Zero value is
// not usable directly — use NewConfig for the documented defaults, then
// apply Options.
type Config struct {
	// ArenaSize is N, the fixed arena capacity in bytes.
	ArenaSize int
	// RxQueueCapacity is M, the RX-ready and dispatch queue capacity.
	RxQueueCapacity int
	// TxQueueCapacity bounds the TX task list. NewConfig sets it to the
	// same value as RxQueueCapacity; New rejects zero.
	TxQueueCapacity int
	// MaxPayloadSize is MAX, the largest payload SetMessage will inject
	// without truncating (data_size = min(msg.size, MAX) + H).
	MaxPayloadSize int

	HeaderCodec HeaderCodec
	HAL         HAL
	Stats       StatsSink
	Logger      Logger

	// AllowCaseCWindow controls whether SetTxTask's Case C briefly
	// re-enables interrupts mid-insertion to bound ISR latency while
	// relocating a header. Defaults to true. Set false for the fully-masked
	// conservative alternative.
	AllowCaseCWindow bool
}

// Option mutates a Config during New: an unexported function field behind
// an exported interface, so a nil Option in a slice is safe to pass through.
type Option interface {
	apply(*Config) error
}

type optionFunc func(*Config) error

func (f optionFunc) apply(c *Config) error { return f(c) }

// WithTxQueueCapacity overrides the default (RxQueueCapacity) TX queue
// bound.
func WithTxQueueCapacity(n int) Option {
	return optionFunc(func(c *Config) error {
		c.TxQueueCapacity = n
		return nil
	})
}

// WithMaxPayloadSize overrides MAX.
func WithMaxPayloadSize(n int) Option {
	return optionFunc(func(c *Config) error {
		c.MaxPayloadSize = n
		return nil
	})
}

// WithHeaderCodec overrides the default FixedHeaderCodec.
func WithHeaderCodec(codec HeaderCodec) Option {
	return optionFunc(func(c *Config) error {
		c.HeaderCodec = codec
		return nil
	})
}

// WithHAL overrides the default MutexHAL, e.g. to bind to a real interrupt
// controller.
func WithHAL(hal HAL) Option {
	return optionFunc(func(c *Config) error {
		c.HAL = hal
		return nil
	})
}

// WithStats overrides the default DefaultStats sink.
func WithStats(sink StatsSink) Option {
	return optionFunc(func(c *Config) error {
		c.Stats = sink
		return nil
	})
}

// WithLogger overrides the default NoopLogger.
func WithLogger(logger Logger) Option {
	return optionFunc(func(c *Config) error {
		c.Logger = logger
		return nil
	})
}

// WithCaseCWindow toggles the Case C interrupt re-enable window.
func WithCaseCWindow(allow bool) Option {
	return optionFunc(func(c *Config) error {
		c.AllowCaseCWindow = allow
		return nil
	})
}

// NewConfig returns a Config with the documented defaults for the given
// arena size, header size, and queue capacity, ready for New or further
// Option application.
func NewConfig(arenaSize, headerSize, queueCapacity int) Config {
	return Config{
		ArenaSize:        arenaSize,
		RxQueueCapacity:  queueCapacity,
		TxQueueCapacity:  queueCapacity,
		MaxPayloadSize:   arenaSize,
		HeaderCodec:      FixedHeaderCodec{H: headerSize},
		HAL:              NewMutexHAL(),
		Stats:            &DefaultStats{},
		Logger:           NoopLogger{},
		AllowCaseCWindow: true,
	}
}

func resolveOptions(cfg Config, opts []Option) (Config, error) {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(&cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.HeaderCodec == nil {
		return configError("HeaderCodec", ErrNilHeaderCodec)
	}
	if c.ArenaSize < c.HeaderCodec.HeaderSize()+2 {
		return configError("ArenaSize", ErrArenaTooSmall)
	}
	if c.RxQueueCapacity <= 0 {
		return configError("RxQueueCapacity", ErrZeroCapacity)
	}
	if c.TxQueueCapacity <= 0 {
		return configError("TxQueueCapacity", ErrZeroCapacity)
	}
	if c.MaxPayloadSize <= 0 {
		return configError("MaxPayloadSize", ErrZeroCapacity)
	}
	if c.HAL == nil {
		return configError("HAL", ErrNilHAL)
	}
	return nil
}
