// Command textdemo renders markup text into a PNG through the text pipeline.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/textkit"
	"github.com/gogpu/textkit/internal/image"
	"github.com/gogpu/textkit/text"
	"github.com/gogpu/textkit/text/async"
	"github.com/gogpu/textkit/text/fonts"
)

const sample = `<b>textkit</b> renders <color value=#1E64C8>colored</color>, <u>underlined</u> and <s>struck</s> text.
Mixed scripts: English, العربية, עברית.`

func main() {
	var (
		width     = flag.Int("width", 480, "image width, or the width constraint")
		height    = flag.Int("height", 0, "image height, 0 fits the text")
		output    = flag.String("output", "text.png", "output file")
		input     = flag.String("text", sample, "markup text to render")
		file      = flag.String("file", "", "read the markup text from a file")
		fontFile  = flag.String("font", "", "extra TrueType/OpenType font file")
		size      = flag.Float64("size", 16, "font size in points")
		color     = flag.String("color", "black", "text color name or hex")
		align     = flag.String("align", "begin", "horizontal alignment: begin, center, end")
		format    = flag.String("format", "RGBA8", "pixel format: L8, RGBA8, BGRA8")
		rtl       = flag.Bool("rtl", false, "lay out in a right to left control")
		useAsync  = flag.Bool("async", false, "render through the async manager")
		verbose   = flag.Bool("v", false, "debug logging")
		underline = flag.Bool("underline", false, "underline the whole text")
	)
	flag.Parse()

	if *verbose {
		textkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	registry := fonts.NewRegistry()
	if err := fonts.RegisterGoFonts(registry); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	if *fontFile != "" {
		data, err := os.ReadFile(*fontFile)
		if err != nil {
			log.Fatalf("Failed to read font: %v", err)
		}
		if err := registry.Register(data); err != nil {
			log.Fatalf("Failed to register font: %v", err)
		}
	}

	markup := *input
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			log.Fatalf("Failed to read text: %v", err)
		}
		markup = string(data)
	}

	p := async.DefaultParameters()
	p.Text = markup
	p.EnableMarkup = true
	p.MultiLine = true
	p.PointSize = float32(*size)
	p.Width, p.Height = float32(*width), float32(*height)
	p.RequestType = async.RenderFixedWidth
	if *height > 0 {
		p.RequestType = async.RenderFixedSize
	}
	p.UnderlineEnabled = *underline

	var ok bool
	if p.TextColor, ok = textkit.ParseColor(*color); !ok {
		log.Fatalf("Unknown color %q", *color)
	}
	if p.Format, ok = image.ParseFormat(*format); !ok {
		log.Fatalf("Unknown pixel format %q", *format)
	}
	if p.HorizontalAlignment, ok = text.ParseHorizontalAlignment(*align); !ok {
		log.Fatalf("Unknown alignment %q", *align)
	}
	if *rtl {
		p.LayoutDirection = text.LayoutDirectionRTL
	}

	var info async.RenderInfo
	if *useAsync {
		info = renderAsync(registry, p)
	} else {
		info = async.NewTextLoader(registry).Load(p)
	}
	if info.Err != nil {
		log.Fatalf("Failed to render: %v", info.Err)
	}
	if info.Buffer == nil {
		log.Fatalf("Nothing to render")
	}

	if err := info.Buffer.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Text saved to %s (%dx%d, %d lines)\n", *output, info.Width, info.Height, info.LineCount)
}

// renderAsync renders p on the async manager and waits for the result.
func renderAsync(service fonts.Service, p async.Parameters) async.RenderInfo {
	m := async.NewManager(async.TextLoaderFactory(service), async.WithLoaders(1))
	defer m.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result := make(chan async.RenderInfo, 1)
	obs := async.ObserverFunc(func(id async.TaskID, success bool, info async.RenderInfo) {
		result <- info
		cancel()
	})
	id := m.RequestLoad(p, &obs)
	log.Printf("Requested task %d\n", id)

	if err := m.Run(ctx); err != nil && ctx.Err() == context.DeadlineExceeded {
		log.Fatalf("Timed out waiting for task %d", id)
	}
	return <-result
}
