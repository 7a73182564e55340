// Command sevensegdemo renders a seven-segment LED display to a PNG file.
package main

import (
	"flag"
	"image"
	"log"
	"os"

	_ "image/jpeg"
	_ "image/png"

	"github.com/gogpu/sevenseg"
)

func main() {
	var (
		value   = flag.Int("value", 0, "value to display (-2 blank, -1 minus line)")
		digits  = flag.Int("digits", 4, "number of digit cells")
		radix   = flag.Int("radix", 10, "numeral base: 2, 8, 10 or 16")
		gap     = flag.Float64("gap", 10, "logical gap between digit cells")
		leading = flag.Bool("leading", false, "show leading zeroes")
		skew    = flag.Float64("skew", 0.1, "shear factor for the leaning-LED look")
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 320, "image height")
		on      = flag.String("on", "#FF2A00", "lit segment color (hex)")
		off     = flag.String("off", "#2B0B06", "unlit segment color (hex)")
		bg      = flag.String("bg", "#000000", "background color (hex)")
		grad    = flag.Bool("gradient", false, "fill lit segments with a vertical gradient")
		imgPath = flag.String("image", "", "fill lit segments with an image file")
		output  = flag.String("output", "sevenseg.png", "output file")
	)
	flag.Parse()

	d := sevenseg.NewDisplay(*digits)
	d.SetRadix(*radix)
	d.SetGap(*gap)
	d.SetHasLeadingZeroes(*leading)
	d.SetSkew(*skew)
	d.SetValue(*value)
	d.SetBackground(sevenseg.Hex(*bg))
	d.SetOffBrush(sevenseg.SolidHex(*off))

	switch {
	case *imgPath != "":
		src, err := loadImage(*imgPath)
		if err != nil {
			log.Fatalf("Failed to load fill image: %v", err)
		}
		size := d.DrawingSize()
		rect := sevenseg.RectXYWH(0, 0, size.Width, size.Height)
		d.SetOnBrush(sevenseg.NewImageBrush(src, rect))
	case *grad:
		onColor := sevenseg.Hex(*on)
		d.SetOnBrush(sevenseg.NewLinearGradientBrush(0, 0, 0, sevenseg.CellHeight).
			AddColorStop(0, sevenseg.White.Lerp(onColor, 0.6)).
			AddColorStop(0.5, onColor).
			AddColorStop(1, onColor.Lerp(sevenseg.Black, 0.35)))
	default:
		d.SetOnBrush(sevenseg.SolidHex(*on))
	}

	r := sevenseg.NewRenderer(*width, *height)
	pm := r.Render(d)
	if err := pm.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Display saved to %s (%dx%d, value %d, radix %d)\n",
		*output, *width, *height, d.Value(), d.Radix())
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}
