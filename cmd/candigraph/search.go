package candigraph

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/candigraph/candigraph/pkg/config"
	"github.com/candigraph/candigraph/pkg/driver"
	"github.com/candigraph/candigraph/pkg/logger"
	"github.com/candigraph/candigraph/pkg/search"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run a one-shot candidate search from the command line",
	Long: `Run a candidate search against the graph store and print results as a table.

A candidate ID or an ID number is required; all other criteria are optional
and match by containment.`,
	RunE: runSearch,
}

var searchFlags struct {
	candidateID        string
	idNumber           string
	fullName           string
	birthDate          string
	phoneNumber        string
	email              string
	address            string
	registrationNumber string
	examID             string
	schoolID           string
	caseSensitive      bool
	page               int
	pageSize           int
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchFlags.candidateID, "candidate-id", "", "Candidate ID (strong identifier)")
	searchCmd.Flags().StringVar(&searchFlags.idNumber, "id-number", "", "National ID number (strong identifier)")
	searchCmd.Flags().StringVar(&searchFlags.fullName, "full-name", "", "Full name")
	searchCmd.Flags().StringVar(&searchFlags.birthDate, "birth-date", "", "Birth date (YYYY-MM-DD)")
	searchCmd.Flags().StringVar(&searchFlags.phoneNumber, "phone", "", "Phone number")
	searchCmd.Flags().StringVar(&searchFlags.email, "email", "", "Email address")
	searchCmd.Flags().StringVar(&searchFlags.address, "address", "", "Address")
	searchCmd.Flags().StringVar(&searchFlags.registrationNumber, "registration-number", "", "Exam registration number")
	searchCmd.Flags().StringVar(&searchFlags.examID, "exam-id", "", "Exam ID")
	searchCmd.Flags().StringVar(&searchFlags.schoolID, "school-id", "", "School ID")
	searchCmd.Flags().BoolVar(&searchFlags.caseSensitive, "case-sensitive", false, "Match string fields case sensitively")
	searchCmd.Flags().IntVar(&searchFlags.page, "page", 1, "Result page (1-based)")
	searchCmd.Flags().IntVar(&searchFlags.pageSize, "page-size", search.DefaultPageSize, "Results per page")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.FromConfig(cfg.Log.Level, cfg.Log.Format)

	criteria, err := criteriaFromFlags()
	if err != nil {
		return err
	}
	if !criteria.HasStrongIdentifier() {
		color.Red("A candidate ID (--candidate-id) or ID number (--id-number) is required.")
		return search.ErrMissingIdentifier
	}

	exec, err := driver.NewNeo4jExecutor(cfg.Database.URI, cfg.Database.Username,
		cfg.Database.Password, cfg.Database.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to graph store: %w", err)
	}
	defer exec.Close(context.Background())

	limits := search.PageLimits{
		DefaultPageSize: cfg.Search.DefaultPageSize,
		MaxPageSize:     cfg.Search.MaxPageSize,
	}
	service := search.NewService(search.NewRepository(exec, log, limits), log)

	result, err := service.SearchCandidates(cmd.Context(), criteria,
		searchFlags.page, searchFlags.pageSize)
	if err != nil {
		return err
	}

	if len(result.Candidates) == 0 {
		color.Yellow("No candidates matched.")
		return nil
	}

	color.Cyan("Found %d candidate(s), page %d (%d per page)",
		result.Total, result.Page, result.PageSize)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Candidate ID", "Full Name", "Birth Date", "ID Number", "Phone", "Email"})
	for _, c := range result.Candidates {
		birth := ""
		if c.BirthDate != nil {
			birth = c.BirthDate.Format("2006-01-02")
		}
		table.Append([]string{c.CandidateID, c.FullName, birth, c.IDNumber, c.PhoneNumber, c.Email})
	}
	table.Render()

	return nil
}

func criteriaFromFlags() (search.Criteria, error) {
	criteria := search.Criteria{
		CandidateID:        optionalFlag(searchFlags.candidateID),
		IDNumber:           optionalFlag(searchFlags.idNumber),
		FullName:           optionalFlag(searchFlags.fullName),
		PhoneNumber:        optionalFlag(searchFlags.phoneNumber),
		Email:              optionalFlag(searchFlags.email),
		Address:            optionalFlag(searchFlags.address),
		RegistrationNumber: optionalFlag(searchFlags.registrationNumber),
		ExamID:             optionalFlag(searchFlags.examID),
		SchoolID:           optionalFlag(searchFlags.schoolID),
		CaseSensitive:      searchFlags.caseSensitive,
	}

	if searchFlags.birthDate != "" {
		birth, err := time.Parse("2006-01-02", searchFlags.birthDate)
		if err != nil {
			return search.Criteria{}, fmt.Errorf("invalid --birth-date, expected YYYY-MM-DD: %w", err)
		}
		criteria.BirthDate = &birth
	}

	return criteria, nil
}

func optionalFlag(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
