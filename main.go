package main

import (
	"github.com/diamondburned/cchat-bubble/internal/gts"
	"github.com/diamondburned/cchat-bubble/internal/log"
	"github.com/diamondburned/cchat-bubble/internal/ui/config"
	"github.com/diamondburned/cchat-bubble/internal/ui/preview"
)

func main() {
	gts.Main("Bubbles", func() gts.WindowHeaderer {
		// Restore the configs before anything is rendered.
		if err := config.Restore(); err != nil {
			log.Error(err)
		}

		return preview.New()
	})
}
