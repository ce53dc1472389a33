package main

import (
	"bufio"
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/picbin"
	"github.com/bodgit/picbin/chart"
	"github.com/bodgit/picbin/image"
	"github.com/bodgit/picbin/palette"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newPicbin(c *cli.Context) (*picbin.Picbin, func(), error) {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	var catalog *picbin.Catalog
	if db := c.String("db"); db != "" {
		var err error
		if catalog, err = picbin.NewCatalog(db); err != nil {
			return nil, nil, err
		}
	}

	return picbin.New(catalog, logger, c.Bool("overwrite")), func() {
		if catalog != nil {
			catalog.Close()
		}
	}, nil
}

func writeChart(c *cli.Context) error {
	file := c.String("image")
	if file == "" {
		return palette.WriteChart(c.App.Writer)
	}

	format, err := image.Format(file)
	if err != nil {
		return err
	}

	if err := picbin.CheckDestination(file, c.Bool("overwrite")); err != nil {
		return err
	}

	m, err := chart.Render(chart.Options{
		Cell:   c.Int("cell"),
		Labels: c.Bool("labels"),
	})
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := image.Encode(w, m, format); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}

	return f.Close()
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "picbin"
	app.Usage = "Convert any file into an image and back"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"PICBIN_DB"},
			Usage:   "path to catalog of encoded images",
		},
		&cli.BoolFlag{
			Name:    "overwrite",
			Aliases: []string{"o"},
			EnvVars: []string{"PICBIN_OVERWRITE"},
			Usage:   "overwrite the existing destination",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "encode",
			Usage:       "Encode a binary file into an image file",
			Description: "The image format is chosen by the extension of DESTINATION; one of .png, .gif, .bmp, .tif, .tiff or .qoi.",
			ArgsUsage:   "FILE DESTINATION",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				p, closer, err := newPicbin(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closer()

				if err := p.Encode(c.Args().Get(0), c.Args().Get(1)); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "decode",
			Usage:       "Decode a binary file from an image file",
			Description: "",
			ArgsUsage:   "IMAGE DESTINATION",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				p, closer, err := newPicbin(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closer()

				if err := p.Decode(c.Args().Get(0), c.Args().Get(1)); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "color-chart",
			Usage:       "Print the color used for each byte value",
			Description: "Without --image the chart is printed as text, sixteen colors to a line.",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "image",
					Usage: "render the chart as an image to `FILE`",
				},
				&cli.IntFlag{
					Name:  "cell",
					Value: chart.DefaultCell,
					Usage: "size of each cell in pixels",
				},
				&cli.BoolFlag{
					Name:  "labels",
					Usage: "label each cell with its byte value",
				},
			},
			Action: func(c *cli.Context) error {
				if err := writeChart(c); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "batch",
			Usage:       "Encode every file in a directory",
			Description: "Each file is encoded to an image alongside it with the format extension appended.",
			ArgsUsage:   "DIRECTORY",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "format",
					Value: image.PNG,
					Usage: "image format to encode to",
				},
				&cli.IntFlag{
					Name:  "workers",
					Value: picbin.DefaultWorkers,
					Usage: "number of files to encode concurrently",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				p, closer, err := newPicbin(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer closer()

				if err := p.Batch(c.Args().First(), c.String("format"), c.Int("workers")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
