package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resume-search/internal/service"
)

func newBuildCommand(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Rebuild the index from the PDF directory",
		Long:  "Re-extract every PDF in the directory and overwrite the cache artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := app.container.IndexService.Build()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d résumés into %s\n",
				index.Len(), app.container.IndexRepository.Path())
			return nil
		},
	}
}

func newSearchCommand(app *app) *cobra.Command {
	var showPreview bool

	cmd := &cobra.Command{
		Use:   "search [keyword]",
		Short: "Search names and full text",
		Long:  "Case-insensitive substring search over names and full text. Without a keyword every record is listed.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyword := ""
			if len(args) == 1 {
				keyword = args[0]
			}

			_, results, err := app.container.SearchService.Search(keyword)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d results\n", len(results))
			for _, res := range results {
				fmt.Fprintf(out, "%s｜%s\n", res.Name, res.Filename)
				if showPreview {
					fmt.Fprintf(out, "%s\n\n", res.Preview)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&showPreview, "preview", "p", false, "Print the text preview of each result")
	return cmd
}

func newExportCommand(app *app) *cobra.Command {
	var (
		out   string
		query string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the index as an XLSX workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}

			n, err := app.container.SearchService.Export(f, query)
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				os.Remove(out)
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d résumés to %s (sheet %q)\n", n, out, service.ExportSheet)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "resumes.xlsx", "Output file")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Only export records matching this keyword")
	return cmd
}
