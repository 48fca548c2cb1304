package async

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chewxy/math32"

	"github.com/gogpu/textkit"
	"github.com/gogpu/textkit/internal/image"
	"github.com/gogpu/textkit/text"
	"github.com/gogpu/textkit/text/fonts/fontstest"
)

func near(a, b float32) bool {
	return math32.Abs(a-b) < 1e-3
}

func textParams(rt RequestType, s string, width, height float32) Parameters {
	p := DefaultParameters()
	p.RequestType = rt
	p.Text = s
	p.Width, p.Height = width, height
	return p
}

func TestTextLoader_Load(t *testing.T) {
	tests := []struct {
		name       string
		p          Parameters
		wantBuffer bool
		wantW      int
		wantH      int
		wantLines  int
	}{
		{"fixed size", textParams(RenderFixedSize, "Hi", 40, 20), true, 40, 20, 1},
		{"fixed width", textParams(RenderFixedWidth, "Hi", 40, 0), true, 40, 12, 1},
		{"fixed width capped", textParams(RenderFixedWidth, "Hi", 40, 5), true, 40, 5, 1},
		{"constraint", textParams(RenderConstraint, "Hi", 100, 100), true, 12, 12, 1},
		{"constraint narrower than text", textParams(RenderConstraint, "Hello", 20, 100), true, 20, 12, 1},
		{"empty text", textParams(RenderConstraint, "", 100, 100), false, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewTextLoader(fontstest.New())
			info := l.Load(tt.p)
			if info.Err != nil {
				t.Fatalf("Load: %v", info.Err)
			}
			if (info.Buffer != nil) != tt.wantBuffer {
				t.Fatalf("Buffer = %v, want buffer %v", info.Buffer, tt.wantBuffer)
			}
			if info.Width != tt.wantW || info.Height != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", info.Width, info.Height, tt.wantW, tt.wantH)
			}
			if info.Buffer != nil && (info.Buffer.Width() != tt.wantW || info.Buffer.Height() != tt.wantH) {
				t.Errorf("buffer = %dx%d, want %dx%d", info.Buffer.Width(), info.Buffer.Height(), tt.wantW, tt.wantH)
			}
			if info.LineCount != tt.wantLines {
				t.Errorf("LineCount = %d, want %d", info.LineCount, tt.wantLines)
			}
			if info.RequestType != tt.p.RequestType {
				t.Errorf("RequestType = %v, want %v", info.RequestType, tt.p.RequestType)
			}
		})
	}
}

func TestTextLoader_Compute(t *testing.T) {
	l := NewTextLoader(fontstest.New())

	info := l.Load(textParams(ComputeNaturalSize, "Hello", 0, 0))
	if info.Buffer != nil || info.Err != nil {
		t.Fatalf("ComputeNaturalSize: buffer %v, err %v", info.Buffer, info.Err)
	}
	if !near(info.NaturalSize.Width, 30) || !near(info.NaturalSize.Height, 12) {
		t.Errorf("NaturalSize = %v, want 30x12", info.NaturalSize)
	}

	p := textParams(ComputeHeightForWidth, "Hello world", 40, 0)
	p.MultiLine = true
	info = l.Load(p)
	if info.Buffer != nil || info.Err != nil {
		t.Fatalf("ComputeHeightForWidth: buffer %v, err %v", info.Buffer, info.Err)
	}
	if info.Height != 24 || !near(info.ControlSize.Height, 24) {
		t.Errorf("height = %d (%v), want 24", info.Height, info.ControlSize.Height)
	}
}

func TestTextLoader_Pixels(t *testing.T) {
	l := NewTextLoader(fontstest.New())
	p := textParams(RenderFixedSize, "a", 20, 20)
	p.TextColor = textkit.Red
	info := l.Load(p)
	if info.Err != nil {
		t.Fatalf("Load: %v", info.Err)
	}
	if got := info.Buffer.At(2, 5); got.R != 255 || got.A != 255 || got.G != 0 {
		t.Errorf("glyph pixel = %v, want opaque red", got)
	}
	if got := info.Buffer.At(15, 5); got.A != 0 {
		t.Errorf("background pixel = %v, want transparent", got)
	}
}

func TestTextLoader_RTL(t *testing.T) {
	l := NewTextLoader(fontstest.New())
	info := l.Load(textParams(RenderConstraint, "مرحبا", 100, 100))
	if info.Err != nil {
		t.Fatalf("Load: %v", info.Err)
	}
	if !info.IsTextDirectionRTL {
		t.Error("IsTextDirectionRTL = false for Arabic text")
	}
}

func TestTextLoader_Markup(t *testing.T) {
	l := NewTextLoader(fontstest.New())
	p := textParams(RenderConstraint, "<color value=red>ab</color>", 100, 100)
	p.EnableMarkup = true
	info := l.Load(p)
	if info.Err != nil {
		t.Fatalf("Load: %v", info.Err)
	}
	if info.Width != 12 {
		t.Errorf("Width = %d, want 12 for two characters", info.Width)
	}
	if got := info.Buffer.At(2, 5); got.R != 255 || got.A != 255 {
		t.Errorf("glyph pixel = %v, want opaque red", got)
	}
}

func TestTextLoader_InvalidFormat(t *testing.T) {
	l := NewTextLoader(fontstest.New())
	p := textParams(RenderFixedSize, "a", 10, 10)
	p.Format = image.Format(42)
	info := l.Load(p)
	if !errors.Is(info.Err, image.ErrUnsupportedFormat) {
		t.Errorf("Err = %v, want ErrUnsupportedFormat", info.Err)
	}
}

func TestTextLoader_Locale(t *testing.T) {
	l := NewTextLoader(fontstest.New())
	if err := l.SetLocale("ja-jp"); err != nil {
		t.Fatalf("SetLocale: %v", err)
	}
	if got := l.Locale(); got != "ja-JP" {
		t.Errorf("Locale() = %q, want ja-JP", got)
	}
	if err := l.SetLocale("not a locale!"); !errors.Is(err, text.ErrInvalidLocale) {
		t.Errorf("SetLocale(invalid) = %v, want ErrInvalidLocale", err)
	}
	l.ClearCache()
}

func TestManager_TextLoaderEndToEnd(t *testing.T) {
	m := NewManager(TextLoaderFactory(fontstest.New()), WithLoaders(2))
	defer m.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go m.Run(ctx)

	results := make(chan RenderInfo, 3)
	obs := ObserverFunc(func(id TaskID, success bool, info RenderInfo) {
		if !success {
			t.Errorf("task %d failed: %v", id, info.Err)
		}
		results <- info
	})
	m.RequestLoad(textParams(RenderFixedSize, "one", 40, 20), &obs)
	m.RequestLoad(textParams(RenderConstraint, "two", 100, 100), &obs)
	m.RequestLoad(textParams(ComputeNaturalSize, "three", 0, 0), &obs)

	got := map[RequestType]RenderInfo{}
	for range 3 {
		select {
		case info := <-results:
			got[info.RequestType] = info
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for results")
		}
	}
	if info := got[RenderFixedSize]; info.Buffer == nil || info.Width != 40 {
		t.Errorf("RenderFixedSize = %+v", info)
	}
	if info := got[RenderConstraint]; info.Width != 18 || info.Height != 12 {
		t.Errorf("RenderConstraint size = %dx%d, want 18x12", info.Width, info.Height)
	}
	if info := got[ComputeNaturalSize]; !near(info.NaturalSize.Width, 30) {
		t.Errorf("ComputeNaturalSize = %v, want width 30", info.NaturalSize)
	}
}
