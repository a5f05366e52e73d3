package poly

import "sort"

// Algorithm identifiers accepted by the -algo flag and the HTTP API.
const (
	AlgoFFT   = "fft"
	AlgoNaive = "naive"
)

// MultiplierFactory provides access to the registered multiplication
// algorithms by name. It decouples algorithm selection (config, CLI, server)
// from the concrete implementations.
type MultiplierFactory interface {
	// Get returns the multiplier registered under name, or false if none is.
	Get(name string) (Multiplier, bool)
	// GetAll returns every registered multiplier, ordered by name.
	GetAll() []Multiplier
	// List returns the sorted names of the registered multipliers.
	List() []string
}

type defaultFactory struct {
	multipliers map[string]Multiplier
}

// NewDefaultFactory returns a factory with the two built-in algorithms
// registered: the FFT convolution path and the schoolbook ground truth.
func NewDefaultFactory() MultiplierFactory {
	return &defaultFactory{
		multipliers: map[string]Multiplier{
			AlgoFFT:   NewMultiplier(&FFTMultiplier{}),
			AlgoNaive: NewMultiplier(&NaiveMultiplier{}),
		},
	}
}

func (f *defaultFactory) Get(name string) (Multiplier, bool) {
	m, ok := f.multipliers[name]
	return m, ok
}

func (f *defaultFactory) GetAll() []Multiplier {
	all := make([]Multiplier, 0, len(f.multipliers))
	for _, name := range f.List() {
		all = append(all, f.multipliers[name])
	}
	return all
}

func (f *defaultFactory) List() []string {
	names := make([]string, 0, len(f.multipliers))
	for name := range f.multipliers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
