package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"axisviz/internal/render"
	"axisviz/internal/viewer"
)

const termFrame = 40 * time.Millisecond

func newTermCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Interactive viewer in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd)
			if err != nil {
				return err
			}
			v, err := viewer.New(cfg, log)
			if err != nil {
				return err
			}

			s, err := tcell.NewScreen()
			if err != nil {
				return errors.Wrap(err, "screen init failed")
			}
			if err := s.Init(); err != nil {
				return errors.Wrap(err, "screen start failed")
			}
			defer s.Fini()

			return runTerm(s, v)
		},
	}
}

// runTerm reads keys on a goroutine and redraws on a ticker until Esc, Ctrl-C
// or the screen goes away.
func runTerm(s tcell.Screen, v *viewer.Viewer) error {
	keys := make(chan rune)
	quit := make(chan struct{})

	go func() {
		defer close(quit)
		for {
			switch ev := s.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					return
				case tcell.KeyUp:
					keys <- 'w'
				case tcell.KeyDown:
					keys <- 's'
				case tcell.KeyLeft:
					keys <- 'a'
				case tcell.KeyRight:
					keys <- 'd'
				case tcell.KeyRune:
					keys <- ev.Rune()
				}
			case *tcell.EventResize:
				s.Sync()
			}
		}
	}()

	canvas := render.NewTerminal(s)
	ticker := time.NewTicker(termFrame)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-quit:
			return nil
		case r := <-keys:
			if !v.Hold(r) {
				v.Press(r)
			}
		case now := <-ticker.C:
			v.Tick(now.Sub(last).Seconds())
			last = now

			s.Clear()
			render.Draw(canvas, v.Frame())
			s.Show()
		}
	}
}
