package cmd

import (
	"fmt"
	"io"
	"time"

	"common-utils/core/format"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newFilesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "files",
		Short: "Read, write, copy and delete files",
	}
	c.AddCommand(newFilesReadCmd(), newFilesWriteCmd(), newFilesCopyCmd(), newFilesDeleteCmd())
	return c
}

func newFilesReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <path>",
		Short: "Print the contents of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}

			data, err := e.files.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			if data == nil {
				return fmt.Errorf("file %s not found", args[0])
			}

			e.log.Debug("File read", zap.String("path", args[0]), zap.String("size", format.BinarySize(int64(len(data)))))
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newFilesWriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "write <path>",
		Short: "Replace the contents of a file with standard input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}

			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			if err := e.files.WriteFile(args[0], data); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}

			e.log.Info("File written", zap.String("path", args[0]), zap.String("size", format.BinarySize(int64(len(data)))))
			return nil
		},
	}
}

func newFilesCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <source> <target>",
		Short: "Recursively copy a file or directory",
		Long:  `Copies source to target. A missing source is not an error. A failed copy is not rolled back.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}

			start := time.Now()
			if err := e.files.Copy(args[0], args[1]); err != nil {
				return fmt.Errorf("copy failed: %w", err)
			}

			e.log.Info("Copy completed",
				zap.String("source", args[0]),
				zap.String("target", args[1]),
				zap.Duration("execution_time", time.Since(start)),
			)
			return nil
		},
	}
}

func newFilesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <path>",
		Short: "Recursively delete a file or directory",
		Long:  `Deletes path and everything below it. A missing path is not an error.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}

			if err := e.files.Delete(args[0]); err != nil {
				return fmt.Errorf("delete failed: %w", err)
			}

			e.log.Info("Delete completed", zap.String("path", args[0]))
			return nil
		},
	}
}
