package dllist

import (
	"fmt"

	"github.com/sirkon/errors"
)

// Option тип опции для построения списка функцией From.
type Option interface {
	String() string
	apply(c *config) error
}

// WithLogger задаёт логгер создаваемого списка.
func WithLogger(logger Logger) Option {
	return loggerOption{logger: logger}
}

// WithCapacity задаёт начальную ёмкость арены узлов.
func WithCapacity(capacity int) Option {
	return capacityOption(capacity)
}

type config struct {
	logger   Logger
	capacity int
}

func newConfig(opts []Option) (*config, error) {
	var c config
	for _, opt := range opts {
		if err := opt.apply(&c); err != nil {
			return nil, errors.Wrap(err, "apply option").Str("option", opt.String())
		}
	}

	return &c, nil
}

func (c *config) log() Logger {
	if c.logger == nil {
		return nopLogger{}
	}

	return c.logger
}

type loggerOption struct {
	logger Logger
}

func (o loggerOption) String() string {
	return fmt.Sprintf("set logger %T", o.logger)
}

func (o loggerOption) apply(c *config) error {
	c.logger = o.logger
	return nil
}

type capacityOption int

func (o capacityOption) String() string {
	return fmt.Sprintf("preallocate %d nodes", o)
}

func (o capacityOption) apply(c *config) error {
	if o < 0 {
		return errors.Newf("capacity cannot be negative, got %d", o)
	}

	c.capacity = int(o)
	return nil
}
