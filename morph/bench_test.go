package morph_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/binmorph/binimg"
	"github.com/katalvlaran/binmorph/morph"
)

func benchImage(b *testing.B, w, h int) *binimg.Image {
	b.Helper()
	img, err := binimg.New(w, h)
	if err != nil {
		b.Fatal(err)
	}
	scatter(img, 99)
	return img
}

func BenchmarkDilation(b *testing.B) {
	img := benchImage(b, 512, 512)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := morph.Dilation(img,
			morph.WithConnectivity(2), morph.WithIterations(3)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPropagation_UntilStability(b *testing.B) {
	mask := benchImage(b, 512, 512)
	seed, err := binimg.New(512, 512)
	if err != nil {
		b.Fatal(err)
	}
	if err = seed.Set(true, 256, 256); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := morph.Propagation(seed, mask); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkConditionalThinning2D(b *testing.B) {
	img, err := binimg.New(256, 256)
	if err != nil {
		b.Fatal(err)
	}
	for y := 64; y < 192; y++ {
		for x := 32; x < 224; x++ {
			if err = img.Set(true, x, y); err != nil {
				b.Fatal(err)
			}
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := morph.ConditionalThinning2D(img, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCountNeighbors(b *testing.B) {
	img := benchImage(b, 512, 512)
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers-%d", workers), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := morph.CountNeighbors(img,
					morph.WithMode(morph.CountAll), morph.WithWorkers(workers)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
