package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ritika/selfmap/internal/bank"
	"github.com/ritika/selfmap/internal/runner"
	"github.com/ritika/selfmap/internal/scoring"
	"github.com/ritika/selfmap/internal/store"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start or resume an assessment",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAssessment(cmd)
	},
}

// runAssessment opens the store and administers the assessment on
// stdin/stdout.
func runAssessment(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	deps := runner.Deps{
		Results:     st.ResultRepo(),
		Progress:    st.ProgressRepo(),
		Respondents: st.RespondentRepo(),
		Events:      st.EventRepo(),
	}
	in := bufio.NewScanner(os.Stdin)

	sess, err := openSession(ctx, deps, st, in)
	if err != nil {
		return err
	}

	lastModule := bank.ModuleID("")
	for !sess.Done() {
		m := sess.CurrentModule()
		if m.ID != lastModule {
			printModuleHeader(m)
			lastModule = m.ID
		}

		item := sess.CurrentItem()
		input, err := askItem(in, m, item, sess.ItemIndex())
		if err != nil {
			return err
		}
		for !sess.CanAdvance(input) {
			if m.Kind == bank.KindOpenEnded {
				fmt.Printf("   A bit more, please: at least %d words.\n", item.MinWords)
			} else {
				fmt.Printf("   Please pick an option between 1 and %d.\n", len(item.Options))
			}
			input, err = askItem(in, m, item, sess.ItemIndex())
			if err != nil {
				return err
			}
		}
		if err := sess.Answer(ctx, input); err != nil {
			return fmt.Errorf("record answer: %w", err)
		}
	}

	fmt.Println()
	fmt.Println("All four modules complete. Run 'selfmap report' to see the results.")
	return nil
}

// openSession resumes an unfinished attempt when the user wants to,
// otherwise starts a new one.
func openSession(ctx context.Context, deps runner.Deps, st *store.Store, in *bufio.Scanner) (*runner.Session, error) {
	latest, err := st.RespondentRepo().Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	if latest != nil {
		prog, err := st.ProgressRepo().Load(ctx, latest.AttemptID)
		if err != nil {
			return nil, fmt.Errorf("load progress: %w", err)
		}
		if prog != nil && !prog.IsComplete {
			name := latest.Name
			if name == "" {
				name = "the previous respondent"
			}
			fmt.Printf("Found an unfinished attempt by %s (module %s). Resume it? [Y/n] ", name, prog.CurrentModule)
			answer, err := readLine(in)
			if err != nil {
				return nil, err
			}
			if answer == "" || strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes") {
				sess, err := runner.Resume(ctx, deps, latest.AttemptID)
				if err != nil {
					return nil, fmt.Errorf("resume attempt: %w", err)
				}
				return sess, nil
			}
		}
	}

	fmt.Print("Your name: ")
	name, err := readLine(in)
	if err != nil {
		return nil, err
	}
	fmt.Print("Parent or guardian contact (optional, press enter to skip): ")
	parent, err := readLine(in)
	if err != nil {
		return nil, err
	}

	sess, err := runner.Start(ctx, deps, name, parent)
	if err != nil {
		return nil, fmt.Errorf("start attempt: %w", err)
	}
	return sess, nil
}

func printModuleHeader(m bank.Module) {
	fmt.Println()
	fmt.Printf("── Module %s: %s ", m.ID, m.Title)
	fmt.Println(strings.Repeat("─", 20))

	switch m.Kind {
	case bank.KindForcedChoice:
		fmt.Println("Pick the option that sounds most like you. There are no wrong answers.")
	case bank.KindTimedChoice:
		fmt.Println("Answer as quickly as you can. Speed counts here.")
	case bank.KindOpenEnded:
		fmt.Println("Answer in your own words. Finish each answer with an empty line.")
	case bank.KindFriction:
		fmt.Println("Pick the option that matches how each situation feels.")
	}
	fmt.Println()
}

// askItem prompts for one item. Invalid or blank input yields an input
// the session will refuse, so the caller re-asks; the clock keeps
// running on timed items either way.
func askItem(in *bufio.Scanner, m bank.Module, item bank.Item, index int) (runner.Input, error) {
	fmt.Printf("%d. %s\n", index+1, item.Prompt)

	if m.Kind == bank.KindOpenEnded {
		fmt.Printf("   (aim for %d-%d words)\n", item.MinWords, item.MaxWords)
		text, err := readParagraph(in)
		if err != nil {
			return runner.Input{}, err
		}
		return runner.Input{OptionIndex: scoring.NoSelection, Text: text}, nil
	}

	for i, opt := range item.Options {
		fmt.Printf("   %d) %s\n", i+1, opt.Text)
	}
	fmt.Print("> ")
	answer, err := readLine(in)
	if err != nil {
		return runner.Input{}, err
	}
	n, convErr := strconv.Atoi(answer)
	if convErr != nil || n < 1 || n > len(item.Options) {
		return runner.Input{OptionIndex: scoring.NoSelection}, nil
	}
	return runner.Input{OptionIndex: n - 1}, nil
}

func readLine(in *bufio.Scanner) (string, error) {
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", fmt.Errorf("input closed before the assessment finished")
	}
	return strings.TrimSpace(in.Text()), nil
}

// readParagraph reads lines until a blank line.
func readParagraph(in *bufio.Scanner) (string, error) {
	var lines []string
	for {
		line, err := readLine(in)
		if err != nil {
			return "", err
		}
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, " "), nil
}
