package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"txtpad/internal/editor"
	"txtpad/internal/prompt"
)

var writeFrom string

var (
	lsCmd = &cobra.Command{
		Use:   "ls",
		Short: "List stored files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.log.Close()
			return listFiles(e.store, cmd.OutOrStdout())
		},
	}

	catCmd = &cobra.Command{
		Use:   "cat NAME",
		Short: "Print a stored file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.log.Close()
			return catFile(e.store, args[0], cmd.OutOrStdout())
		},
	}

	writeCmd = &cobra.Command{
		Use:   "write [NAME]",
		Short: "Save text from stdin (or --from) as NAME",
		Long: `Save text as a stored file, the same way the editor's save-as does:
the name gets a .txt extension unless it already has one.
Without NAME the content must come from --from and the name is asked for on stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defer e.log.Close()

			var content []byte
			var asker editor.Prompter
			switch {
			case writeFrom != "":
				content, err = os.ReadFile(writeFrom)
				if err != nil {
					return fmt.Errorf("read %s: %w", writeFrom, err)
				}
			case len(args) == 0:
				return errors.New("a NAME is required when reading content from stdin")
			default:
				content, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			}
			if len(args) > 0 {
				asker = prompt.Fixed(args[0])
			} else {
				asker = prompt.NewLine(cmd.InOrStdin(), cmd.ErrOrStderr())
			}
			return writeFile(e.store, asker, string(content), cmd.OutOrStdout(), e.log.Debugf)
		},
	}
)

func init() {
	writeCmd.Flags().StringVar(&writeFrom, "from", "", "read content from this file instead of stdin")
}

func listFiles(s editor.Storage, w io.Writer) error {
	names, err := s.List()
	if err != nil {
		return err
	}
	for _, n := range names {
		fmt.Fprintln(w, n)
	}
	return nil
}

func catFile(s editor.Storage, name string, w io.Writer) error {
	content, err := s.Get(name)
	if err != nil {
		if normalized, ok := editor.NormalizeName(name); ok && normalized != name {
			if c, err2 := s.Get(normalized); err2 == nil {
				content, err = c, nil
			}
		}
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, content)
	return err
}

// writeFile drives an editor context through input and save-as, so the
// stored name follows the editor's naming rules. It prints the final label.
func writeFile(s editor.Storage, asker editor.Prompter, content string, w io.Writer, logf func(string, ...any)) error {
	var label string
	buf := editor.NewStringBuffer("")
	ctx := editor.New(buf,
		editor.WithStorage(s),
		editor.WithPrompter(asker),
		editor.WithLabeler(editor.LabelFunc(func(l string) { label = l })),
		editor.WithLogger(logf),
	)
	buf.SetText(content)
	ctx.HandleInput()
	if err := ctx.SaveAs(); err != nil {
		return err
	}
	if _, ok := ctx.State().Filename(); !ok {
		return errors.New("no file name given: nothing saved")
	}
	fmt.Fprintln(w, label)
	return nil
}
