package cli

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"lum-reader/lum"
	"lum-reader/lum/lband"
	"lum-reader/lum/limage"
	"lum-reader/ui"
)

type (
	Args struct {
		Info        *InfoCmd        `arg:"subcommand:info"`
		Create      *CreateCmd      `arg:"subcommand:create"`
		Convert     *ConvertCmd     `arg:"subcommand:convert"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive"`
	}
	InfoCmd struct {
		Path string `arg:"positional,required" help:"path to a .lum file" placeholder:"image.lum"`
	}
	CreateCmd struct {
		Path   string `arg:"positional,required" help:"path of the file to create" placeholder:"image.lum"`
		Width  int    `arg:"-W,--width,required" help:"raster width in pixels"`
		Height int    `arg:"-H,--height,required" help:"raster height in pixels"`
		Bits   int    `arg:"--bits" default:"8" help:"sample depth, 8 or 16"`
		Fill   int    `arg:"--fill" default:"0" help:"sample value to fill every pixel with"`
	}
	ConvertCmd struct {
		From  string `arg:"required" help:"path to source file" placeholder:"image.lum"`
		To    string `arg:"required" help:"path to destination file" placeholder:"image.png"`
		Force bool   `help:"overwrite the destination file"`
	}
	InteractiveCmd struct{}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"LUM READER\n",
			"A CLI utility to inspect, create, and convert rasters in the LUM format",
			"(12-byte header plus raw grayscale samples) in the command line.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

func Start() {
	lum.RegisterLUM()
	fs := afero.NewOsFs()

	args := Args{}
	parser := arg.MustParse(&args)
	switch {
	case args.Info != nil:
		StartInfo(fs, args.Info.Path)
	case args.Create != nil:
		StartCreating(fs, *args.Create)
	case args.Convert != nil:
		StartConverting(fs, args.Convert.From, args.Convert.To, args.Convert.Force)
	case args.Interactive != nil:
		ui.Start()
	default:
		parser.WriteHelp(os.Stdout)
	}
}

func StartInfo(fs afero.Fs, path string) {
	if !CheckExistence(path) {
		println("Source file does not exist!")
		return
	}
	dataset, err := lum.OpenAny(fs, path, lum.AccessReadOnly)
	if err != nil {
		println("Error happened opening file: " + err.Error())
		return
	}
	defer dataset.Close()

	width, height := dataset.RasterSize()
	band, err := dataset.RasterBand(1)
	if err != nil {
		println("Error happened reading band info: " + err.Error())
		return
	}
	transform, err := dataset.GeoTransform()
	if err != nil {
		println("Error happened reading geotransform: " + err.Error())
		return
	}

	fmt.Printf("Size:         %d x %d\n", width, height)
	fmt.Printf("Bands:        %d (grayscale)\n", dataset.RasterCount())
	fmt.Printf("Sample type:  %s\n", band.SampleType())
	fmt.Printf("Geotransform: %v\n", transform)
}

func StartCreating(fs afero.Fs, cmd CreateCmd) {
	if CheckExistence(cmd.Path) {
		println("Destination file existed. Please remove it first!")
		return
	}
	sampleType := lband.SampleUint8
	if cmd.Bits == 16 {
		sampleType = lband.SampleUint16
	} else if cmd.Bits != 8 {
		println("Only 8 and 16 bit samples are supported!")
		return
	}

	dataset, err := lum.Create(fs, cmd.Path, cmd.Width, cmd.Height, 1, sampleType, nil)
	if err != nil {
		println("Error happened creating file: " + err.Error())
		return
	}
	defer dataset.Close()

	if cmd.Fill != 0 {
		band, err := dataset.RasterBand(1)
		if err == nil {
			err = band.Fill(uint16(cmd.Fill))
		}
		if err != nil {
			println("Error happened filling pixels: " + err.Error())
			return
		}
	}
	println("Done creating. Please check your result file at: " + cmd.Path)
}

func StartConverting(fs afero.Fs, from string, to string, force bool) {
	if !CheckExistence(from) {
		println("Source file does not exist!")
		return
	}
	if CheckExistence(to) && !force {
		println("Destination file existed. Please type the command again with --force to allow overwriting!")
		return
	}

	var err error
	switch strings.ToLower(filepath.Ext(to)) {
	case ".png":
		err = convertToPNG(fs, from, to)
	case ".lum":
		err = convertToLUM(fs, from, to)
	default:
		println("Destination must end in .png or .lum!")
		return
	}
	if err != nil {
		println("Error happened converting: " + err.Error())
		return
	}
	println("Done converting. Please check your result file at: " + to)
}

func convertToPNG(fs afero.Fs, from string, to string) error {
	dataset, err := lum.OpenAny(fs, from, lum.AccessReadOnly)
	if err != nil {
		return err
	}
	defer dataset.Close()

	img, err := limage.Image(dataset)
	if err != nil {
		return err
	}

	file, err := fs.Create(to)
	if err != nil {
		return errors.Wrapf(err, "create %q", to)
	}
	defer file.Close()
	return png.Encode(file, img)
}

func convertToLUM(fs afero.Fs, from string, to string) error {
	file, err := fs.Open(from)
	if err != nil {
		return errors.Wrapf(err, "open %q", from)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return errors.Wrapf(err, "decode %q", from)
	}

	sampleType := lband.SampleUint8
	if _, ok := img.(*image.Gray16); ok {
		sampleType = lband.SampleUint16
	}

	bounds := img.Bounds()
	dataset, err := lum.Create(fs, to, bounds.Dx(), bounds.Dy(), 1, sampleType, nil)
	if err != nil {
		return err
	}
	defer dataset.Close()
	return limage.Draw(dataset, img)
}
