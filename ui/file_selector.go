package ui

import (
	"fmt"
	"io/fs"
	"io/ioutil"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/afero"

	"lum-reader/lum"
)

type (
	FileName string

	// FileSelector lists the .lum files of the current directory and
	// shows the decoded header of whichever one is selected.
	FileSelector struct {
		cwd    string
		files  []FileName
		cursor int
		info   string
	}
)

func CreateFileSelector() FileSelector {
	cwd, err := os.Getwd()
	if err != nil {
		err := errors.Wrap(err, "CreateFileSelector get current working directory error")
		log.Panic(err)
	}
	return FileSelector{
		cwd:   cwd,
		files: ReadDirectory(cwd),
	}
}

// ReadDirectory returns the .lum files within path.
func ReadDirectory(path string) []FileName {
	files, err := ioutil.ReadDir(path)
	if err != nil {
		log.Fatal(err)
	}

	lumFiles := lo.Filter(
		files,
		func(t fs.FileInfo, _ int) bool {
			return !t.IsDir() && strings.HasSuffix(strings.ToLower(t.Name()), ".lum")
		},
	)
	fileNames := lo.Map(
		lumFiles,
		func(t fs.FileInfo, _ int) FileName {
			return FileName(t.Name())
		},
	)
	return fileNames
}

func (s FileSelector) Init() tea.Cmd {
	return nil
}

func (s FileSelector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch keyMsg.String() {
	case "q", "ctrl+c":
		return s, tea.Quit
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.files)-1 {
			s.cursor++
		}
	case "enter":
		if len(s.files) > 0 {
			s.info = describeFile(string(s.files[s.cursor]))
		}
	}
	return s, nil
}

func (s FileSelector) View() string {
	output := "LUM READER\n\n"
	output += "Current directory: " + s.cwd + "\n\n"

	if len(s.files) == 0 {
		output += "No .lum files here.\n"
	}
	for i, file := range s.files {
		marker := "  "
		if i == s.cursor {
			marker = "> "
		}
		output += marker + string(file) + "\n"
	}
	if s.info != "" {
		output += "\n" + s.info + "\n"
	}
	output += "\n(enter: inspect, q: quit)\n"
	return output
}

func describeFile(path string) string {
	dataset, err := lum.OpenPath(afero.NewOsFs(), path, lum.AccessReadOnly)
	if err != nil {
		return "cannot open: " + err.Error()
	}
	defer dataset.Close()

	width, height := dataset.RasterSize()
	band, err := dataset.RasterBand(1)
	if err != nil {
		return "cannot read band: " + err.Error()
	}
	return fmt.Sprintf("%s: %d x %d, %s, grayscale", path, width, height, band.SampleType())
}
