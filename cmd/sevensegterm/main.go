// Command sevensegterm shows a live seven-segment display in the
// terminal, rendered as half-block cells. It counts seconds by default or
// shows a wall clock with -clock.
//
// Keys: q or ESC quits, r cycles the radix, l toggles leading zeroes.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/sevenseg"
)

var radixCycle = []int{2, 8, 10, 16}

func main() {
	var (
		digits = flag.Int("digits", 6, "number of digit cells")
		radix  = flag.Int("radix", 10, "numeral base: 2, 8, 10 or 16")
		clock  = flag.Bool("clock", false, "show wall clock (HHMMSS) instead of counting")
		skew   = flag.Float64("skew", 0.08, "shear factor")
	)
	flag.Parse()

	d := sevenseg.NewDisplay(*digits)
	d.SetRadix(*radix)
	d.SetSkew(*skew)
	d.SetHasLeadingZeroes(*clock)
	d.SetOnBrush(sevenseg.NewLinearGradientBrush(0, 0, 0, sevenseg.CellHeight).
		AddColorStop(0, sevenseg.Hex("#FF7040")).
		AddColorStop(1, sevenseg.Hex("#C81800")))

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	counter := 0
	update := func() {
		if *clock {
			now := time.Now()
			d.SetValue(now.Hour()*10000 + now.Minute()*100 + now.Second())
		} else {
			d.SetValue(counter)
			counter++
			if counter > d.MaxValue() {
				counter = 0
			}
		}
		draw(screen, d)
	}
	update()

	for {
		select {
		case <-ticker.C:
			update()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				draw(screen, d)
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
					return
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					return
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
					d.SetRadix(nextRadix(d.Radix()))
					draw(screen, d)
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'l':
					d.SetHasLeadingZeroes(!d.HasLeadingZeroes())
					draw(screen, d)
				}
			}
		}
	}
}

func nextRadix(r int) int {
	for i, v := range radixCycle {
		if v == r {
			return radixCycle[(i+1)%len(radixCycle)]
		}
	}
	return 16
}

// draw rasterizes the display at twice the terminal row count and folds
// pixel pairs into half-block characters, giving square-ish pixels.
func draw(screen tcell.Screen, d *sevenseg.Display) {
	cols, rows := screen.Size()
	if cols < 2 || rows < 2 {
		return
	}

	r := sevenseg.NewRenderer(cols, rows*2)
	pm := r.Render(d)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			upper := pm.GetPixel(x, y*2)
			lower := pm.GetPixel(x, y*2+1)
			style := tcell.StyleDefault.
				Foreground(toTcell(upper)).
				Background(toTcell(lower))
			screen.SetContent(x, y, '▀', nil, style)
		}
	}
	screen.Show()
}

func toTcell(c sevenseg.RGBA) tcell.Color {
	return tcell.NewRGBColor(
		int32(c.R*255),
		int32(c.G*255),
		int32(c.B*255),
	)
}
