package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/viant/patchly/patch"
	"github.com/viant/patchly/project"
	"github.com/viant/patchly/verify"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "patchly: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configURL  = flag.String("config", "", "optional YAML configuration location")
		source     = flag.String("src", "", "document to normalize; overrides config")
		callee     = flag.String("callee", "", "query-execution function name; overrides config")
		mapper     = flag.String("mapper", "", "row-mapping function name; overrides config")
		dryRun     = flag.Bool("dry-run", false, "print a unified diff instead of writing")
		verifyFlag = flag.Bool("verify", true, "parse the rewritten document and abort on syntax errors")
	)
	flag.Parse()
	ctx := context.Background()

	config := patch.DefaultConfig()
	if *configURL != "" {
		loaded, err := patch.LoadConfig(ctx, *configURL)
		if err != nil {
			return err
		}
		config = loaded
	}
	// flags set on the command line win over the config file
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["src"] {
		config.Source = *source
	}
	if set["callee"] {
		config.Callee = *callee
	}
	if set["mapper"] {
		config.Mapper = *mapper
	}
	if set["dry-run"] {
		config.DryRun = *dryRun
	}
	if set["verify"] {
		config.Verify = *verifyFlag
	}

	workDir, err := os.Getwd()
	if err != nil {
		return err
	}
	if config.Source, err = project.New().Resolve(workDir, config.Source); err != nil {
		return err
	}

	patcher, err := patch.New(config, verify.New())
	if err != nil {
		return err
	}
	report, err := patcher.Apply(ctx)
	if err != nil {
		return err
	}
	if report.Diff != "" {
		fmt.Print(report.Diff)
	}
	switch {
	case config.DryRun:
		fmt.Printf("Dry run: %v %v call(s) would be rewritten in %v\n", report.Rewritten, config.Callee, report.Source)
	case report.Changed:
		fmt.Printf("Fixed %v %v call(s) in %v\n", report.Rewritten, config.Callee, report.Source)
	default:
		fmt.Printf("No %v call needed rewriting in %v\n", config.Callee, report.Source)
	}
	return nil
}
