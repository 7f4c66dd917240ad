package main

import (
	"flag"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/roffe/litechart/pkg/debug"
	"github.com/roffe/litechart/pkg/presets"
	"github.com/roffe/litechart/pkg/theme"
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
}

func main() {
	debugFlag := flag.Bool("debug", false, "write diagnostics to "+debug.DefaultFile)
	flag.Parse()

	if *debugFlag {
		if err := debug.Open(debug.DefaultFile); err != nil {
			log.Println(err)
		}
		defer debug.Close()
	}

	a := app.NewWithID("com.roffe.litechart")
	a.Settings().SetTheme(&theme.ChartTheme{})
	if err := presets.Load(a); err != nil {
		log.Printf("failed to load presets: %v", err)
	}

	mw := newMainWindow(a)
	mw.Resize(fyne.NewSize(1024, 768))
	mw.ShowAndRun()
}
