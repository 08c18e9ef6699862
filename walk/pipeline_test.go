package walk

import (
	"errors"
	"testing"
)

type record struct {
	n int
}

type doubleStage struct{}

func (doubleStage) Init()  {}
func (doubleStage) Close() {}
func (doubleStage) Run(r *record) error {
	r.n *= 2
	return nil
}

type rejectOddStage struct{}

func (rejectOddStage) Init()  {}
func (rejectOddStage) Close() {}
func (rejectOddStage) Run(r *record) error {
	if r.n%2 != 0 {
		return errOdd
	}
	return nil
}

var errOdd = errors.New("odd")

func TestPipelineRunsStagesAndCollectsOutput(t *testing.T) {
	records := []*record{{n: 1}, {n: 2}, {n: 3}}

	var failed []*record
	p := NewPipeline(records, len(records), func(r *record) {
		failed = append(failed, r)
	})
	p.Add(func() Stage[record] { return doubleStage{} }, 2)

	var out []*record
	p.Drain(func(r *record) { out = append(out, r) })

	if len(out) != 3 {
		t.Fatalf("len(out) = %d, want 3", len(out))
	}
	sum := 0
	for _, r := range out {
		sum += r.n
	}
	if sum != 12 { // (1+2+3)*2
		t.Errorf("sum = %d, want 12", sum)
	}
	if len(failed) != 0 {
		t.Errorf("expected no failures, got %d", len(failed))
	}
}

func TestPipelineRoutesFailuresToOnFailed(t *testing.T) {
	records := []*record{{n: 1}, {n: 2}, {n: 4}}

	var failed []*record
	p := NewPipeline(records, len(records), func(r *record) {
		failed = append(failed, r)
	})
	p.Add(func() Stage[record] { return rejectOddStage{} }, 1)

	var out []*record
	p.Drain(func(r *record) { out = append(out, r) })

	if len(out) != 2 {
		t.Errorf("len(out) = %d, want 2 (even records)", len(out))
	}
	if len(failed) != 1 {
		t.Errorf("len(failed) = %d, want 1 (the odd record)", len(failed))
	}
}
