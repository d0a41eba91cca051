package armel

import (
	"testing"
)

func BenchmarkAlloc(b *testing.B) {
	b.Run("Arena", func(b *testing.B) {
		a := New(64*KB, 16, NoFlag)
		defer a.Free()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			if a.Remaining() < 64 {
				a.Reset()
			}
			a.Alloc(64)
		}
	})

	b.Run("Arena/Zeros", func(b *testing.B) {
		a := New(64*KB, 16, Zeros)
		defer a.Free()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			if a.Remaining() < 64 {
				a.Reset()
			}
			a.Alloc(64)
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		var sink []byte
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			sink = make([]byte, 64)
		}
		_ = sink
	})
}

func BenchmarkMake(b *testing.B) {
	type payload struct {
		ID   int64
		Data [56]byte
	}

	b.Run("Arena", func(b *testing.B) {
		a := New(64*KB, 16, NoFlag)
		defer a.Free()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			if a.Remaining() < 64 {
				a.Reset()
			}
			p, _ := Make[payload](&a.Arena)
			p.ID = int64(i)
		}
	})

	b.Run("Builtin", func(b *testing.B) {
		var sink *payload
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			sink = &payload{ID: int64(i)}
		}
		_ = sink
	})
}

func BenchmarkMarkRewind(b *testing.B) {
	a := New(64*KB, 16, NoFlag)
	defer a.Free()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		m := a.Mark()
		a.Alloc(256)
		a.Rewind(m)
	}
}

func BenchmarkReset(b *testing.B) {
	// Reset is O(1) without Zeros and O(capacity) with it.
	b.Run("NoFlag", func(b *testing.B) {
		a := New(1*MB, 16, NoFlag)
		defer a.Free()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			a.Alloc(1 * KB)
			a.Reset()
		}
	})

	b.Run("Zeros", func(b *testing.B) {
		a := New(1*MB, 16, Zeros)
		defer a.Free()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			a.Alloc(1 * KB)
			a.Reset()
		}
	})
}
