package cli

import (
	stderrors "errors"
	"fmt"

	"resumecraft/internal/common"
	"resumecraft/internal/editor"
	"resumecraft/internal/enhance"
	"resumecraft/internal/export"
	"resumecraft/internal/resume"

	"github.com/spf13/cobra"
)

var enhanceCmd = &cobra.Command{
	Use:   "enhance [document-file]",
	Short: "Enhance one section of a resume document",
	Long: `Enhance one section of a resume document through the configured
enhancement provider. The suggestion is printed for review; pass --apply to
accept it and write the updated document back.

Sections:
- summary:    enhances the summary text
- experience: enhances one entry's description (requires --entry)
- education:  enhances one entry's honors text (requires --entry)
- skills:     enhances the joined text of all skills; the suggestion is
              informational only and cannot be applied`,
	Args: cobra.ExactArgs(1),
	RunE: runEnhance,
}

var (
	enhanceSection  string
	enhanceEntryID  string
	enhanceApply    bool
	enhanceProvider string
	enhanceOutput   string
)

func init() {
	enhanceCmd.Flags().StringVar(&enhanceSection, "section", "", "Section to enhance: summary, experience, skills, or education")
	enhanceCmd.Flags().StringVar(&enhanceEntryID, "entry", "", "Entry id for experience or education sections")
	enhanceCmd.Flags().BoolVar(&enhanceApply, "apply", false, "Accept the suggestion and write the updated document back")
	enhanceCmd.Flags().StringVar(&enhanceProvider, "provider", "", "Enhancement provider override: mock, http, or gemini")
	enhanceCmd.Flags().StringVarP(&enhanceOutput, "output", "o", "", "Output file for the updated document (default: the input file)")
	_ = enhanceCmd.MarkFlagRequired("section")

	_ = enhanceCmd.RegisterFlagCompletionFunc("section", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{enhance.SectionSummary, enhance.SectionExperience, enhance.SectionSkills, enhance.SectionEducation}, cobra.ShellCompDirectiveNoFileComp
	})
}

func runEnhance(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	enhanceCfg := cfg.Enhance
	if enhanceProvider != "" {
		enhanceCfg.Provider = enhanceProvider
	}

	service, err := enhance.NewService(&enhanceCfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create enhancement service: %w", err)
	}

	fileProcessor := common.NewFileProcessor(logger)
	doc, err := fileProcessor.LoadDocument(args[0])
	if err != nil {
		return err
	}

	content, session, err := sessionFor(service, doc)
	if err != nil {
		return err
	}

	logger.Info("Requesting enhancement",
		"section", session.Section(),
		"provider", service.Provider.Name(),
		"content_chars", len(content))

	if err := session.Propose(cmd.Context(), content); err != nil {
		return fmt.Errorf("enhancement failed: %w", err)
	}

	suggestion, _ := session.Suggestion()
	fmt.Println("--- Suggestion ---")
	fmt.Println(suggestion)

	if !enhanceApply {
		fmt.Println("--- Not applied (run again with --apply to accept) ---")
		return session.Reject()
	}

	text, err := session.Accept()
	if stderrors.Is(err, enhance.ErrAggregateSuggestion) {
		fmt.Println("--- Informational only: skills suggestions cannot be applied to individual entries ---")
		return nil
	}
	if err != nil {
		return err
	}

	applyText(&doc, text)

	artifact, err := export.GlobalRegistry.Export(doc, "json")
	if err != nil {
		return fmt.Errorf("failed to encode updated document: %w", err)
	}

	target := enhanceOutput
	if target == "" {
		target = args[0]
	}
	if err := fileProcessor.WriteFile(target, artifact.Data); err != nil {
		return err
	}

	logger.Info("Enhancement applied", "section", session.Section(), "file", target)
	return nil
}

// sessionFor resolves the section flag into the content to enhance and the
// session that will own the suggestion.
func sessionFor(service *enhance.Service, doc resume.Document) (string, *enhance.Session, error) {
	switch enhanceSection {
	case enhance.SectionSummary:
		return doc.Summary, enhance.NewSession(service, enhance.SectionSummary), nil

	case enhance.SectionExperience:
		if enhanceEntryID == "" {
			return "", nil, fmt.Errorf("--entry is required for the experience section")
		}
		for _, exp := range doc.Experience {
			if exp.ID == enhanceEntryID {
				return exp.Description, enhance.NewSession(service, enhance.SectionExperience), nil
			}
		}
		return "", nil, fmt.Errorf("no experience entry with id %s", enhanceEntryID)

	case enhance.SectionEducation:
		if enhanceEntryID == "" {
			return "", nil, fmt.Errorf("--entry is required for the education section")
		}
		for _, edu := range doc.Education {
			if edu.ID == enhanceEntryID {
				return edu.Honors, enhance.NewSession(service, enhance.SectionEducation), nil
			}
		}
		return "", nil, fmt.Errorf("no education entry with id %s", enhanceEntryID)

	case enhance.SectionSkills:
		return enhance.JoinSkills(doc), enhance.NewAggregateSession(service), nil

	default:
		return "", nil, fmt.Errorf("invalid section '%s' (must be summary, experience, skills, or education)", enhanceSection)
	}
}

// applyText routes an accepted suggestion back into the document field the
// session was created for.
func applyText(doc *resume.Document, text string) {
	switch enhanceSection {
	case enhance.SectionSummary:
		doc.Summary = text
	case enhance.SectionExperience:
		doc.Experience = editor.UpdateExperience(doc.Experience, enhanceEntryID,
			editor.ExperiencePatch{Description: &text})
	case enhance.SectionEducation:
		doc.Education = editor.UpdateEducation(doc.Education, enhanceEntryID,
			editor.EducationPatch{Honors: &text})
	}
}
