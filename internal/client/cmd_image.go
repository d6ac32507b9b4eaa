package client

import (
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-idiotic-api/idiotic"
	"github.com/MKhiriev/go-idiotic-api/models"
	"github.com/spf13/cobra"
)

func (a *App) imageCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "image <endpoint> [key=value...]",
		Short: "Generate an image and save it as PNG",
		Long: `Call an image endpoint and write the returned PNG.

Examples:
  idiotic image blame name="bob ross"
  idiotic image triggered avatar=https://example.com/a.png -o triggered.png
  idiotic --env development image brightness avatar=https://example.com/a.png brightness=120`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, invalid := idiotic.ParsePairs(args[1:])
			if len(invalid) > 0 {
				return fmt.Errorf("%w: %s", ErrInvalidPairs, strings.Join(invalid, ", "))
			}

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
			if ep.Result != models.BinaryImage {
				return fmt.Errorf("%w: %s returns text, use the text command", idiotic.ErrWrongResultKind, ep.Name)
			}

			res, err := s.services.GeneratorService.Generate(ctx, ep.Name, values)
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = ep.Name + res.Extension()
			}
			if err = os.WriteFile(path, res.Data, 0o644); err != nil {
				return fmt.Errorf("write image: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				okStyle.Render("saved"), path, faintStyle.Render(fmt.Sprintf("(%d bytes)", len(res.Data))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: <endpoint>.png)")

	return cmd
}
