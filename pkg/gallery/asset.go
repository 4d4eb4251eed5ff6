package gallery

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/fogleman/gg"

	"github.com/drawnet/drawnet/pkg/prim"
)

var (
	sampleOnce sync.Once
	samplePath string
	sampleErr  error
)

// sampleImage writes a small network thumbnail into the system temp
// directory and returns its path. Scenes with image shapes reference it
// so the gallery works without files shipped beside the binary.
func sampleImage() (string, error) {
	sampleOnce.Do(func() {
		samplePath = filepath.Join(os.TempDir(), "drawnet-sample.png")
		sampleErr = writeSampleImage(samplePath)
	})
	return samplePath, sampleErr
}

func writeSampleImage(path string) error {
	const w, h = 160, 100

	// Three columns of nodes, fully connected, echoing the dense scene.
	cols := [][2]float64{{30, 4}, {80, 6}, {130, 3}}
	nodes := func(c [2]float64) []float64 {
		n := int(c[1])
		ys := make([]float64, n)
		step := float64(h) / float64(n+1)
		for i := range ys {
			ys[i] = step * float64(i+1)
		}
		return ys
	}

	dc := gg.NewContext(w, h)
	dc.SetColor(prim.White)
	dc.Clear()

	dc.SetColor(prim.Gray(0.75))
	dc.SetLineWidth(1)
	for i := 0; i < len(cols)-1; i++ {
		for _, y1 := range nodes(cols[i]) {
			for _, y2 := range nodes(cols[i+1]) {
				dc.DrawLine(cols[i][0], y1, cols[i+1][0], y2)
				dc.Stroke()
			}
		}
	}

	dc.SetColor(prim.Gray(0.25))
	for _, c := range cols {
		for _, y := range nodes(c) {
			dc.DrawCircle(c[0], y, 5)
			dc.Fill()
		}
	}

	if err := dc.SavePNG(path); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
