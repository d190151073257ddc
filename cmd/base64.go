package cmd

import (
	"bytes"
	"fmt"
	"io"

	"common-utils/core/codec"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBase64Cmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "base64",
		Short: "Encode or decode base64",
		Long:  `Reads the named file, or standard input when no file is given, and writes the result to standard output.`,
	}
	c.PersistentFlags().Bool("url", false, "Use the URL-safe alphabet without padding")

	c.AddCommand(
		&cobra.Command{
			Use:   "encode [file]",
			Short: "Encode input as base64",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				in, url, err := base64Input(cmd, args)
				if err != nil {
					return err
				}
				encode := codec.Encode
				if url {
					encode = codec.EncodeURL
				}
				out := encode(in)
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", out)
				return err
			},
		},
		&cobra.Command{
			Use:   "decode [file]",
			Short: "Decode base64 input",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				in, url, err := base64Input(cmd, args)
				if err != nil {
					return err
				}
				in = bytes.TrimSpace(in)

				decode := codec.Decode
				if url {
					decode = codec.DecodeURL
				}
				out, err := decode(in)
				if err != nil {
					return fmt.Errorf("failed to decode input: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(out)
				return err
			},
		},
	)
	return c
}

func base64Input(cmd *cobra.Command, args []string) ([]byte, bool, error) {
	e, err := setup(cmd)
	if err != nil {
		return nil, false, err
	}
	url, _ := cmd.Flags().GetBool("url")

	if len(args) == 0 {
		in, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, false, fmt.Errorf("failed to read stdin: %w", err)
		}
		return in, url, nil
	}

	in, err := e.files.ReadFile(args[0])
	if err != nil {
		return nil, false, err
	}
	if in == nil {
		return nil, false, fmt.Errorf("input file %s not found", args[0])
	}
	e.log.Debug("Read base64 input", zap.String("path", args[0]), zap.Int("size", len(in)))
	return in, url, nil
}
