package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"lum-reader/lum"
)

func Start() {
	lum.RegisterLUM()
	fileSelector := CreateFileSelector()
	if err := tea.NewProgram(fileSelector).Start(); err != nil {
		panic(err)
	}
}
