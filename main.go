package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/ticker/internal/feed"
	"github.com/olivier-w/ticker/internal/ui"
)

func main() {
	f := feed.Default()
	if len(os.Args) > 1 {
		loaded, err := feed.Load(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		f = loaded
	}

	program := tea.NewProgram(ui.New(f), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
