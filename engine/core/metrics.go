package core

import "github.com/spaghettifunk/camrig/engine/containers"

const AVG_COUNT uint8 = 30

/**
 * @brief Rolling frame statistics: the average frame time over the last
 * AVG_COUNT frames, refreshed every AVG_COUNT frames, and the number of
 * frames in the last full second.
 */
type Metrics struct {
	FrameAVGCounter    uint8
	MStimes            *containers.RingQueue[float64]
	MSavg              float64
	Frames             int32
	AccumulatedFrameMS float64
	FPS                float64
}

func NewMetrics() *Metrics {
	return &Metrics{
		MStimes: containers.NewRingQueue[float64](int(AVG_COUNT)),
	}
}

// Update records one frame that took frameElapsedTime seconds.
func (m *Metrics) Update(frameElapsedTime float64) {
	// Calculate frame ms average
	frameMS := frameElapsedTime * 1000.0
	if m.MStimes.IsFull() {
		_, _ = m.MStimes.Dequeue()
	}
	_ = m.MStimes.Enqueue(frameMS)
	m.FrameAVGCounter++
	if m.FrameAVGCounter == AVG_COUNT {
		m.MSavg = 0
		times := m.MStimes.Values()
		for _, t := range times {
			m.MSavg += t
		}
		m.MSavg /= float64(len(times))
		m.FrameAVGCounter = 0
	}

	// Count all Frames.
	m.Frames++

	// Calculate Frames per second.
	m.AccumulatedFrameMS += frameMS
	if m.AccumulatedFrameMS >= 1000 {
		m.FPS = float64(m.Frames)
		m.AccumulatedFrameMS -= 1000
		m.Frames = 0
	}
}

func (m *Metrics) FrameTime() float64 {
	return m.MSavg
}

func (m *Metrics) Frame() (float64, float64) {
	return m.FPS, m.MSavg
}
