package picker

// PickerBuilderOption is a functional option for configuring a Picker.
type PickerBuilderOption func(*pickerImpl)

// WithWorkers sets the worker pool size used for large candidate sets.
// Values below 2 disable the pool and every pick runs serially.
//
// Parameters:
//   - n: number of workers (default runtime.NumCPU())
//
// Returns:
//   - PickerBuilderOption: functional option to set the worker count
func WithWorkers(n int) PickerBuilderOption {
	return func(p *pickerImpl) {
		p.workers = n
	}
}

// WithParallelThreshold sets the candidate count at which picks fan out to the pool.
//
// Parameters:
//   - n: minimum candidate count for parallel picking (default 512)
//
// Returns:
//   - PickerBuilderOption: functional option to set the threshold
func WithParallelThreshold(n int) PickerBuilderOption {
	return func(p *pickerImpl) {
		if n > 0 {
			p.parallelThreshold = n
		}
	}
}
