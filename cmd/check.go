package cmd

import (
	"context"
	"fmt"
	"path"

	"github.com/spf13/cobra"

	"github.com/Amor-Self-learning/docview/internal/content"
	"github.com/Amor-Self-learning/docview/internal/markdown"
	"github.com/Amor-Self-learning/docview/internal/progress"
	"github.com/Amor-Self-learning/docview/internal/registry"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the registry and render every document",
	Long:  `Checks that the configuration and section registry are valid, that every listed file exists, and that each one renders through the markdown pipeline.`,
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	reg := cfg.Registry()

	var problems []string
	for _, e := range registry.VerifyFiles(cfg.DocsDir, reg) {
		problems = append(problems, e.Error())
	}

	fetcher := &content.FileFetcher{Dir: cfg.DocsDir}
	pipeline := markdown.NewPipeline()
	ctx := context.Background()

	// The home document plus every section file.
	type doc struct{ label, path string }
	docs := []doc{{cfg.Home, cfg.Home}}
	for _, sec := range reg.Sections() {
		for _, f := range sec.Files {
			docs = append(docs, doc{sec.ID + "/" + f, path.Join(sec.Root, f)})
		}
	}

	reporter := progress.NewReporter()
	reporter.Start(len(docs))
	for i, d := range docs {
		reporter.Update(i+1, d.label)
		data, err := fetcher.Fetch(ctx, d.path)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", d.label, err))
			continue
		}
		if _, err := pipeline.Render(data); err != nil {
			problems = append(problems, fmt.Sprintf("%s: render: %v", d.label, err))
		}
	}
	reporter.Finish()

	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Println(p)
		}
		return fmt.Errorf("%d problems found", len(problems))
	}
	fmt.Printf("All %d documents verified.\n", len(docs))
	return nil
}
