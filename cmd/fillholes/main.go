// Command fillholes in-paints the masked region of a PGM image by
// solving the discrete Dirichlet problem over the hole.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jvlmdr/dirichlet-fill/dirichlet"
	"github.com/jvlmdr/dirichlet-fill/maskutil"
	"github.com/jvlmdr/dirichlet-fill/pgm"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage:", os.Args[0], "[flags] image.pgm [mask.pgm] out.pgm")
		fmt.Fprintln(os.Stderr, "  mask.pgm is read when -polygon is not given, and skipped when it is.")
		flag.PrintDefaults()
	}
}

func main() {
	var (
		approx    = flag.Bool("approx", false, "Use the bilinear-accelerated approximate solver instead of the exact one.")
		cg        = flag.Bool("cg", false, "Solve with conjugate gradient instead of direct Cholesky factorisation.")
		threshold = flag.Int("threshold", 128, "Mask pixels strictly above this value mark the hole (ignored with -polygon).")
		polygon   = flag.String("polygon", "", "Hand-drawn hole as semicolon-separated x,y vertex pairs, e.g. \"10,10;40,10;40,40;10,40\"; rasterised instead of reading mask.pgm.")
	)
	flag.Parse()

	var imageFile, maskFile, outFile string
	switch {
	case *polygon != "" && flag.NArg() == 2:
		imageFile, outFile = flag.Arg(0), flag.Arg(1)
	case *polygon == "" && flag.NArg() == 3:
		imageFile, maskFile, outFile = flag.Arg(0), flag.Arg(1), flag.Arg(2)
	default:
		flag.Usage()
		os.Exit(1)
	}

	img, err := pgm.ReadFile(imageFile)
	if err != nil {
		log.Fatalln("load image:", err)
	}

	var mask []uint8
	if *polygon != "" {
		verts, err := parsePolygon(*polygon)
		if err != nil {
			log.Fatalln("parse polygon:", err)
		}
		log.Printf("rasterising %d-vertex polygon", len(verts))
		mask = boolMaskToUint8(maskutil.FillPolygon(verts, img.Width, img.Height))
	} else {
		maskImg, err := pgm.ReadFile(maskFile)
		if err != nil {
			log.Fatalln("load mask:", err)
		}
		if maskImg.Width != img.Width || maskImg.Height != img.Height {
			log.Fatalf("mask is %dx%d, want %dx%d to match image", maskImg.Width, maskImg.Height, img.Width, img.Height)
		}
		tc := maskutil.Threshold(maskImg.Pix, maskImg.Width, maskImg.Height, byte(*threshold))
		mask = coordsToUint8Mask(tc.Coords, img.Width, img.Height)
	}

	method := dirichlet.MethodCholesky
	if *cg {
		method = dirichlet.MethodCG
	}

	pix := make([]float32, len(img.Pix))
	for i, v := range img.Pix {
		pix[i] = float32(v)
	}
	comp := dirichlet.NewComponent(pix, 1)

	if *approx {
		log.Print("analyse hole for bilinear acceleration")
		solver, err := dirichlet.NewApprox(mask, img.Width, img.Height, method)
		if err != nil {
			log.Fatalln("build approximate solver:", err)
		}
		log.Printf("solving %d unknowns (%d squares accelerated)", solver.N(), len(solver.Squares()))
		if _, err := dirichlet.ApplyApprox(solver, comp); err != nil {
			log.Fatalln("solve:", err)
		}
	} else {
		solver, err := dirichlet.NewExactFromMask(mask, img.Width, img.Height, method)
		if err != nil {
			log.Fatalln("build exact solver:", err)
		}
		log.Printf("solving %d unknowns", solver.N())
		if _, err := dirichlet.ApplyExact(solver, comp); err != nil {
			log.Fatalln("solve:", err)
		}
	}

	out := &pgm.Image{Width: img.Width, Height: img.Height, Maxval: 255, Pix: make([]byte, len(pix))}
	for i, v := range pix {
		out.Pix[i] = clampByte(v)
	}
	if err := pgm.WriteFile(outFile, out); err != nil {
		log.Fatalln("write output:", err)
	}
}

// parsePolygon reads a semicolon-separated list of "x,y" vertex pairs.
func parsePolygon(s string) ([]maskutil.Point, error) {
	parts := strings.Split(s, ";")
	verts := make([]maskutil.Point, 0, len(parts))
	for _, p := range parts {
		xy := strings.SplitN(strings.TrimSpace(p), ",", 2)
		if len(xy) != 2 {
			return nil, fmt.Errorf("vertex %q is not \"x,y\"", p)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xy[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("vertex %q: %w", p, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(xy[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("vertex %q: %w", p, err)
		}
		verts = append(verts, maskutil.Point{X: x, Y: y})
	}
	return verts, nil
}

func boolMaskToUint8(mask []bool) []uint8 {
	out := make([]uint8, len(mask))
	for i, v := range mask {
		if v {
			out[i] = 1
		}
	}
	return out
}

func coordsToUint8Mask(coords []dirichlet.Coord, w, h int) []uint8 {
	mask := make([]uint8, w*h)
	for _, p := range coords {
		mask[p.Row*w+p.Col] = 1
	}
	return mask
}

func clampByte(v float32) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v + 0.5)
}
