package atlasshift_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	atlasshift "github.com/reoring/atlasshift"
)

// generateAtlas returns an atlas with numFrames frames of the form:
// {"filename":"f_0.png","frame":{...},"rotated":false,"trimmed":true,"spriteSourceSize":{...},"sourceSize":{...}}
func generateAtlas(numFrames int) []byte {
	var buf bytes.Buffer
	buf.Grow(numFrames * 192)
	buf.WriteString(`{"frames":[`)
	for i := 0; i < numFrames; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `{"filename":"f_%d.png",`, i)
		fmt.Fprintf(&buf, `"frame":{"x":%d,"y":%d,"w":32,"h":32},`, (i%64)*32, (i/64)*32)
		buf.WriteString(`"rotated":false,"trimmed":true,`)
		fmt.Fprintf(&buf, `"spriteSourceSize":{"x":%d,"y":%d,"w":30,"h":30},`, i%2, i%3)
		buf.WriteString(`"sourceSize":{"w":32,"h":32}}`)
	}
	buf.WriteString(`],"meta":{"app":"bench","version":"1.0","size":{"w":2048,"h":2048},"scale":"1"}}`)
	return buf.Bytes()
}

func benchTransform(b *testing.B, driver string, numFrames int) {
	ctx := context.Background()
	s, err := atlasshift.NewShifter(atlasshift.Options{Delta: 1, Indent: 2, ASCIIOnly: true, Driver: driver}, nil)
	if err != nil {
		b.Fatal(err)
	}
	data := generateAtlas(numFrames)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := s.Transform(ctx, data); err != nil {
			b.Fatal(err)
		}
	}
}

// ---- Transform per driver ----

func Benchmark_Transform_Small(b *testing.B) {
	for _, d := range atlasshift.JSONDriverNames() {
		b.Run(d, func(b *testing.B) { benchTransform(b, d, 16) })
	}
}

func Benchmark_Transform_Large(b *testing.B) {
	for _, d := range atlasshift.JSONDriverNames() {
		b.Run(d, func(b *testing.B) { benchTransform(b, d, 10_000) })
	}
}

// ---- Codec halves ----

func Benchmark_Decode(b *testing.B) {
	data := generateAtlas(10_000)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := atlasshift.Decode(data); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Encode(b *testing.B) {
	v, err := atlasshift.Decode(generateAtlas(10_000))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := atlasshift.Encode(v, atlasshift.EncodeOptions{Indent: 2, ASCIIOnly: true}); err != nil {
			b.Fatal(err)
		}
	}
}
