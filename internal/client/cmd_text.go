package client

import (
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-idiotic-api/idiotic"
	"github.com/MKhiriev/go-idiotic-api/models"
	"github.com/spf13/cobra"
)

func (a *App) textCommand() *cobra.Command {
	var (
		style  string
		toCopy bool
	)

	cmd := &cobra.Command{
		Use:   "text <endpoint> <text>",
		Short: "Restyle text (development only)",
		Long: `Call a text styling endpoint and print the result.

Examples:
  idiotic --env development text owoify "hello there"
  idiotic --env development text tinytext "small" --style superscript
  idiotic --env development text vaporwave "aesthetic" --copy`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := cmd.Context()
			ep, err := s.services.GeneratorService.Describe(ctx, args[0])
			if err != nil {
				return err
			}
			if ep.Result != models.Text {
				return fmt.Errorf("%w: %s returns an image, use the image command", idiotic.ErrWrongResultKind, ep.Name)
			}

			values := url.Values{"text": {args[1]}}
			if style != "" {
				values.Set("style", style)
			}

			res, err := s.services.GeneratorService.Generate(ctx, ep.Name, values)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), res.Text)

			if toCopy {
				if err = a.copyText(res.Text); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), faintStyle.Render("copied to clipboard"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&style, "style", "", "Style for tinytext (tiny, superscript, subscript) or cursive (bold, normal)")
	cmd.Flags().BoolVar(&toCopy, "copy", false, "Copy the result to the clipboard")

	return cmd
}
