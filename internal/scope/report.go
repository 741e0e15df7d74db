package scope

import "golang.org/x/sync/errgroup"

// Report bundles the scopes computed for one frame.
type Report struct {
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Histogram   *Histogram    `json:"histogram"`
	Vectorscope []ChromaPoint `json:"vectorscope"`
}

// Analyze computes the histogram and vectorscope of f. The two scopes read
// the frame independently and run concurrently.
func Analyze(f *Frame) *Report {
	rep := &Report{Width: f.Width, Height: f.Height}

	var g errgroup.Group
	g.Go(func() error {
		rep.Histogram = ComputeHistogram(f)
		return nil
	})
	g.Go(func() error {
		rep.Vectorscope = Vectorscope(f)
		return nil
	})
	_ = g.Wait()

	return rep
}
