package metrics

import "time"

// Window accumulates training stats across multiple epochs.
type Window struct {
	samples  int
	compute  time.Duration
	epochs   int
	lossSum  float64
	lastLoss float64
	lastAcc  float64
}

// Record adds one epoch's measurement to the window.
func (w *Window) Record(samples int, computeTime time.Duration, loss, accuracy float64) {
	w.samples += samples
	w.compute += computeTime
	w.epochs++
	w.lossSum += loss
	w.lastLoss = loss
	w.lastAcc = accuracy
}

// Snapshot returns aggregated metrics and resets the window.
func (w *Window) Snapshot() Snapshot {
	snap := Snapshot{Epochs: w.epochs}
	if w.compute > 0 {
		snap.SamplesPerSec = float64(w.samples) / w.compute.Seconds()
	}
	if w.epochs > 0 {
		snap.AvgComputeMS = (w.compute.Seconds() * 1000) / float64(w.epochs)
		snap.MeanLoss = w.lossSum / float64(w.epochs)
	}
	snap.LastLoss = w.lastLoss
	snap.LastAccuracy = w.lastAcc

	*w = Window{}
	return snap
}

// Snapshot represents loggable metrics.
type Snapshot struct {
	Epochs        int
	SamplesPerSec float64
	AvgComputeMS  float64
	MeanLoss      float64
	LastLoss      float64
	LastAccuracy  float64
}
