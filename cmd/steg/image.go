package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/urfave/cli/v3"

	"github.com/subrosa-io/steg"
	"github.com/subrosa-io/steg/pngio"
)

func imageCmd() *cli.Command {
	return &cli.Command{
		Name:  "image",
		Usage: "Hide or reveal a message in an image carrier",
		Commands: []*cli.Command{
			imageHideCmd(),
			imageRevealCmd(),
			imageCapacityCmd(),
		},
	}
}

func imageHideCmd() *cli.Command {
	var (
		in     string
		out    string
		secret string
	)

	return &cli.Command{
		Name:  "hide",
		Usage: "Embed a secret in the least-significant bits of an image",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:        "in",
				Aliases:     []string{"i"},
				Usage:       "carrier image path",
				Required:    true,
				Destination: &in,
			},
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "output path (always written as PNG)",
				Required:    true,
				Destination: &out,
			},
			&cli.StringFlag{
				Name:        "secret",
				Aliases:     []string{"s"},
				Usage:       "secret message to hide",
				Required:    true,
				Destination: &secret,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := newLogger(cmd, cfg)

			if !pngio.IsSupported(in) {
				return fmt.Errorf("unsupported carrier format: %s", in)
			}
			if pngio.IsLossy(out) {
				return fmt.Errorf("refusing lossy output format: %s (lossy re-compression destroys the payload)", out)
			}

			pixels, w, h, err := readCarrier(in)
			if err != nil {
				return err
			}

			encoded, err := steg.ImageEncode(pixels, w, h, secret, password)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := pngio.EncodePNG(&buf, encoded, w, h); err != nil {
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return err
			}

			log.Info("encoded message into image",
				"characters", utf8.RuneCountInString(secret),
				"width", w, "height", h, "out", out)
			return nil
		},
	}
}

func imageRevealCmd() *cli.Command {
	var in string

	return &cli.Command{
		Name:  "reveal",
		Usage: "Recover a secret hidden in an image",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:        "in",
				Aliases:     []string{"i"},
				Usage:       "carrier image path",
				Required:    true,
				Destination: &in,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			pixels, _, _, err := readCarrier(in)
			if err != nil {
				return err
			}

			secret, err := steg.ImageDecode(pixels, password)
			if err != nil {
				return err
			}
			fmt.Println(secret)
			return nil
		},
	}
}

func imageCapacityCmd() *cli.Command {
	var in string

	return &cli.Command{
		Name:  "capacity",
		Usage: "Report how many characters an image can hold",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "in",
				Aliases:     []string{"i"},
				Usage:       "carrier image path",
				Required:    true,
				Destination: &in,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, w, h, err := readCarrier(in)
			if err != nil {
				return err
			}
			fmt.Printf("%dx%d image holds up to %d characters\n",
				w, h, max(steg.ImageCapacity(w*h), 0))
			return nil
		},
	}
}

func readCarrier(path string) ([]byte, int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()
	return pngio.DecodeRGB(f)
}
