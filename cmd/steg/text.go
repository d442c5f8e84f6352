package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/subrosa-io/steg"
)

func textCmd() *cli.Command {
	return &cli.Command{
		Name:  "text",
		Usage: "Hide or reveal a message in cover text",
		Commands: []*cli.Command{
			textHideCmd(),
			textRevealCmd(),
		},
	}
}

func textHideCmd() *cli.Command {
	var (
		cover     string
		coverFile string
		secret    string
		out       string
	)

	return &cli.Command{
		Name:  "hide",
		Usage: "Splice a secret into cover text as zero-width characters",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:        "cover",
				Aliases:     []string{"c"},
				Usage:       "cover text",
				Destination: &cover,
			},
			&cli.StringFlag{
				Name:        "cover-file",
				Usage:       "read cover text from a file",
				Destination: &coverFile,
			},
			&cli.StringFlag{
				Name:        "secret",
				Aliases:     []string{"s"},
				Usage:       "secret message to hide",
				Required:    true,
				Destination: &secret,
			},
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "write result to a file instead of stdout",
				Destination: &out,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if coverFile != "" {
				data, err := os.ReadFile(coverFile)
				if err != nil {
					return err
				}
				cover = string(data)
			}

			result, err := steg.TextEncode(cover, secret, password)
			if err != nil {
				return err
			}

			if out != "" {
				return os.WriteFile(out, []byte(result), 0o644)
			}
			fmt.Println(result)
			return nil
		},
	}
}

func textRevealCmd() *cli.Command {
	var (
		text string
		in   string
	)

	return &cli.Command{
		Name:  "reveal",
		Usage: "Recover a secret hidden in text",
		Flags: append(commonFlags(),
			&cli.StringFlag{
				Name:        "text",
				Aliases:     []string{"t"},
				Usage:       "steganographic text",
				Destination: &text,
			},
			&cli.StringFlag{
				Name:        "in",
				Aliases:     []string{"i"},
				Usage:       "read steganographic text from a file",
				Destination: &in,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if in != "" {
				data, err := os.ReadFile(in)
				if err != nil {
					return err
				}
				text = string(data)
			}

			secret, err := steg.TextDecode(text, password)
			if err != nil {
				return err
			}
			fmt.Println(secret)
			return nil
		},
	}
}
