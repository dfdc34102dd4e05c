package thumbnail

import (
	"fmt"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"tubeseo/types"
)

// Preview dimensions match the standard 16:9 thumbnail frame.
const (
	previewWidth  = 1280
	previewHeight = 720
)

// RenderPreview draws a local preview card for a concept when the image API is
// disabled: a two-color gradient from the palette with the overlay text
// centered on top. Requires an ffmpeg binary on PATH.
func RenderPreview(concept types.ThumbnailConcept, outputPath string) error {
	c0, c1 := gradientColors(concept.ColorPalette)

	source := fmt.Sprintf("gradients=s=%dx%d:c0=%s:c1=%s:n=2",
		previewWidth, previewHeight, c0, c1)
	stream := ffmpeg.Input(source, ffmpeg.KwArgs{"f": "lavfi"})

	text := concept.OverlayText
	if text == "" {
		text = "THUMBNAIL"
	}
	stream = stream.Filter("drawtext", ffmpeg.Args{}, ffmpeg.KwArgs{
		"text":        escapeDrawtext(text),
		"fontsize":    96,
		"fontcolor":   "white",
		"borderw":     4,
		"bordercolor": "black",
		"x":           "(w-text_w)/2",
		"y":           "(h-text_h)/2",
	})

	err := stream.Output(outputPath, ffmpeg.KwArgs{"frames:v": 1}).
		OverWriteOutput().Run()
	if err != nil {
		return fmt.Errorf("preview render failed: %w", err)
	}
	return nil
}

// gradientColors picks the first two usable palette entries, with the
// original preview's blue/white default.
func gradientColors(palette []string) (string, string) {
	colors := make([]string, 0, 2)
	for _, c := range palette {
		c = normalizeHex(c)
		if c != "" {
			colors = append(colors, c)
		}
		if len(colors) == 2 {
			break
		}
	}
	switch len(colors) {
	case 0:
		return "0x3366CC", "0xFFFFFF"
	case 1:
		return colors[0], "0xFFFFFF"
	default:
		return colors[0], colors[1]
	}
}

// normalizeHex converts "#RRGGBB" to ffmpeg's "0xRRGGBB" form.
func normalizeHex(c string) string {
	c = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(c), "#"))
	if len(c) != 6 {
		return ""
	}
	for _, r := range c {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return ""
		}
	}
	return "0x" + strings.ToUpper(c)
}

// escapeDrawtext escapes the characters drawtext treats specially.
func escapeDrawtext(text string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, `:`, `\:`, `%`, `\%`)
	return r.Replace(text)
}
