package mock

import "github.com/fwojciec/phytocure"

var _ phytocure.Converter = (*Converter)(nil)

// Converter is a mock implementation of phytocure.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
