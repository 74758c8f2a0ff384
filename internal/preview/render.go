// Package preview renders a skeleton to a 2D image so a generated or
// normalized rig can be inspected without loading it into a 3D host.
package preview

import (
	"image"
	"io"
	"math"

	"github.com/HugoSmits86/nativewebp"

	"mixamo-rig-tools/internal/mathutil"
	"mixamo-rig-tools/internal/scene"
)

// Options controls the render. Zero values pick sensible defaults.
type Options struct {
	Size        int     // output edge length in pixels (default 512)
	Supersample int     // render at Size*N then downsample (default 2)
	ElevDeg     float64 // camera elevation, degrees
	TurnDeg     float64 // rotation around the up axis, degrees
}

const fillRatio = 0.9

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = 512
	}
	if o.Supersample <= 0 {
		o.Supersample = 2
	}
	return o
}

// Render draws every bone as a head→tail segment under an orthographic
// projection, fit and centered to the frame.
func Render(arm *scene.Armature, opts Options) *image.NRGBA {
	opts = opts.withDefaults()
	size := opts.Size * opts.Supersample
	fb := newFrameBuffer(size)

	// The skeleton is Z-up; tilt it into screen space (Y up on screen)
	// and apply the requested view angles.
	view := mathutil.Mat3Mul(
		mathutil.RotX(mathutil.Deg2Rad(opts.ElevDeg-90)),
		mathutil.RotZ(mathutil.Deg2Rad(opts.TurnDeg)),
	)

	bones := arm.Bones()
	heads := make([]mathutil.Vec3, len(bones))
	tails := make([]mathutil.Vec3, len(bones))
	minB := mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	maxB := mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for i, b := range bones {
		heads[i] = view.MulVec3(b.Head)
		tails[i] = view.MulVec3(b.Tail)
		for _, p := range []mathutil.Vec3{heads[i], tails[i]} {
			for k := 0; k < 3; k++ {
				minB[k] = math.Min(minB[k], p[k])
				maxB[k] = math.Max(maxB[k], p[k])
			}
		}
	}
	if len(bones) == 0 {
		return fb.toImage()
	}

	center := minB.Add(maxB).Scale(0.5)
	extent := math.Max(maxB[0]-minB[0], maxB[1]-minB[1])
	if extent < 1e-9 {
		extent = 1e-9
	}
	scale := float64(size) * fillRatio / extent
	half := float64(size) / 2

	project := func(p mathutil.Vec3) (float64, float64) {
		return (p[0]-center[0])*scale + half, -(p[1]-center[1])*scale + half
	}

	for i, b := range bones {
		hx, hy := project(heads[i])
		tx, ty := project(tails[i])
		c := boneColor(b)
		fb.line(hx, hy, tx, ty, c)
		fb.dot(hx, hy, opts.Supersample, jointColor)
	}

	return fb.toImage()
}

// Encode writes the image as WebP.
func Encode(w io.Writer, img image.Image) error {
	return nativewebp.Encode(w, img, nil)
}

type rgba [4]uint8

var (
	segmentColor   = rgba{210, 210, 215, 255}
	connectedColor = rgba{120, 190, 255, 255}
	jointColor     = rgba{255, 170, 60, 255}
)

func boneColor(b *scene.Bone) rgba {
	if b.Connected {
		return connectedColor
	}
	return segmentColor
}

// frameBuffer is a flat RGBA target, same layout as the renderer this
// was adapted from.
type frameBuffer struct {
	size int
	pix  []uint8
}

func newFrameBuffer(size int) *frameBuffer {
	return &frameBuffer{size: size, pix: make([]uint8, size*size*4)}
}

func (fb *frameBuffer) set(x, y int, c rgba) {
	if x < 0 || y < 0 || x >= fb.size || y >= fb.size {
		return
	}
	i := (y*fb.size + x) * 4
	fb.pix[i] = c[0]
	fb.pix[i+1] = c[1]
	fb.pix[i+2] = c[2]
	fb.pix[i+3] = c[3]
}

// line steps along the segment at sub-pixel resolution. Good enough at
// supersampled sizes; no need for a full Bresenham here.
func (fb *frameBuffer) line(x0, y0, x1, y1 float64, c rgba) {
	steps := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + (x1-x0)*t
		y := y0 + (y1-y0)*t
		fb.set(int(x+0.5), int(y+0.5), c)
	}
}

func (fb *frameBuffer) dot(x, y float64, r int, c rgba) {
	cx, cy := int(x+0.5), int(y+0.5)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			fb.set(cx+dx, cy+dy, c)
		}
	}
}

func (fb *frameBuffer) toImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.size, fb.size))
	copy(img.Pix, fb.pix)
	return img
}
