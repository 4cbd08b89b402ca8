package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/phrazzld/namemagic/internal/domain"
	"github.com/phrazzld/namemagic/internal/service"
	"github.com/phrazzld/namemagic/internal/web"
	"github.com/spf13/cobra"
)

type revealOptions struct {
	language string
	share    bool
	json     bool
}

func newRevealCmd(d deps, logLevel *string) *cobra.Command {
	opts := &revealOptions{}

	cmd := &cobra.Command{
		Use:   "reveal [name]",
		Short: "Reveal the meaning of a name",
		Long: `Builds the prompt for the name, calls the provider once and prints the
meaning with markdown emphasis removed.

Example:
  namemagic reveal --lang marathi Aria`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReveal(cmd, d, *logLevel, opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVarP(&opts.language, "lang", "l", string(domain.LanguageEnglish), "response language (english, hindi, marathi)")
	cmd.Flags().BoolVar(&opts.share, "share", false, "print the share payload after the meaning")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the result as JSON")

	return cmd
}

func runReveal(cmd *cobra.Command, d deps, logLevel string, opts *revealOptions, name string) error {
	lang, err := domain.ParseLanguage(opts.language)
	if err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return errors.New("a name is required")
	}

	ctx := cmd.Context()
	log := commandLogger(d, logLevel)

	cfg, gen, err := loadGenerator(ctx, d, log)
	if err != nil {
		return err
	}

	prompts, err := service.NewPromptBuilderFromFile(cfg.LLM.PromptTemplatePath)
	if err != nil {
		return err
	}

	svc, err := service.NewMeaningService(gen, log,
		service.WithPromptBuilder(prompts),
		service.WithShareURL(cfg.LLM.SiteURL))
	if err != nil {
		return err
	}

	session := domain.NewSession(name, lang)
	result, err := svc.Submit(ctx, session)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	snap := session.Snapshot()

	if opts.json {
		enc := json.NewEncoder(out)
		if err := enc.Encode(struct {
			domain.Snapshot
			Source service.Source `json:"source"`
		}{snap, result.Source}); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	} else {
		fmt.Fprintf(out, "%s, you are a...\n%s\n", web.Capitalize(snap.Name), snap.Meaning)
	}

	if opts.share {
		if err := svc.Share(ctx, service.NewWriterSharer(out), session); err != nil {
			return err
		}
	}
	return nil
}
