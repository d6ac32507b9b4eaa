package client

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-idiotic-api/internal/config"
	"github.com/MKhiriev/go-idiotic-api/internal/workers"
	"github.com/MKhiriev/go-idiotic-api/models"
	"github.com/spf13/cobra"
)

func (a *App) batchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <jobs.yaml>",
		Short: "Run a YAML file of endpoint calls concurrently",
		Long: `Run every job of a YAML batch file and write each result to the output
directory. A failing job does not stop the others.

Example file:
  jobs:
    - name: blame-bob
      endpoint: blame
      params:
        name: bob
    - endpoint: triggered
      params:
        avatar: https://example.com/a.png
      output: triggered.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := workers.LoadJobs(args[0])
			if err != nil {
				return err
			}

			s, err := a.openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			batch := workers.NewBatchWorker(s.services.GeneratorService, file,
				s.cfg.Batch.OutputDir, s.cfg.Batch.Concurrency, s.logger)

			runErr := workers.NewWorkers(batch).Run(cmd.Context())
			failed := renderOutcomes(cmd.OutOrStdout(), batch.Outcomes())

			if runErr != nil {
				s.logger.Debug().Err(runErr).Msg("batch finished with errors")
				return fmt.Errorf("%w: %d of %d", ErrBatchFailed, failed, len(file.Jobs))
			}
			return nil
		},
	}

	config.BindBatchFlags(cmd.Flags(), a.flagCfg)

	return cmd
}

func renderOutcomes(w io.Writer, outcomes []models.BatchOutcome) int {
	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			fmt.Fprintf(w, "%s %s: %v\n", failStyle.Render("FAIL"), o.Job.Name, o.Err)
			continue
		}
		fmt.Fprintf(w, "%s %s -> %s %s\n", okStyle.Render(" OK "), o.Job.Name, o.Path,
			faintStyle.Render(fmt.Sprintf("(%d bytes, %s)", o.Size, o.Duration.Round(time.Millisecond))))
	}
	return failed
}

// IsBatchFailure reports whether err came from a batch with failed jobs.
func IsBatchFailure(err error) bool {
	return errors.Is(err, ErrBatchFailed)
}
