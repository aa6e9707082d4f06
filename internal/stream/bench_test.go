package stream

import (
	"runtime"
	"testing"
)

var benchSizes = []struct {
	name string
	size int64
}{
	{"64Ki", 64 * 1024},
	{"1Mi", 1024 * 1024},
	{"8Mi", 8 * 1024 * 1024},
}

func benchmarkKernel(b *testing.B, k Kernel) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			p := NewPool(1, tc.size)
			defer p.Close()
			p.Initialize()

			b.SetBytes(k.Words() * ElementBytes * tc.size)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				p.RunKernel(k)
			}
		})
	}
}

func BenchmarkCopy(b *testing.B)  { benchmarkKernel(b, Copy) }
func BenchmarkScale(b *testing.B) { benchmarkKernel(b, Scale) }
func BenchmarkAdd(b *testing.B)   { benchmarkKernel(b, Add) }
func BenchmarkTriad(b *testing.B) { benchmarkKernel(b, Triad) }

// BenchmarkTriadAllCores runs the heaviest kernel across a full pool, the
// configuration the CLI reports.
func BenchmarkTriadAllCores(b *testing.B) {
	workers := runtime.GOMAXPROCS(0)
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			p := NewPool(workers, tc.size/int64(workers))
			defer p.Close()
			p.Initialize()

			b.SetBytes(Triad.Words() * ElementBytes * p.ArraySize() * int64(workers))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				p.RunKernel(Triad)
			}
		})
	}
}
