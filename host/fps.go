package host

import "fmt"

// fpsMeter keeps the FPS/TPS readout, refreshed about twice a second.
type fpsMeter struct {
	text    string
	elapsed float32
}

func (m *fpsMeter) tick(dt float32, fps, tps float64) {
	m.elapsed += dt
	if m.text != "" && m.elapsed < 0.5 {
		return
	}
	m.elapsed = 0
	m.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps)
}
