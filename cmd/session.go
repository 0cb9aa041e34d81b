package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/ajxudir/qcfilter/pkg/config"
	"github.com/ajxudir/qcfilter/pkg/constants"
	"github.com/ajxudir/qcfilter/pkg/errors"
	"github.com/ajxudir/qcfilter/pkg/filtering"
	"github.com/ajxudir/qcfilter/pkg/formats"
	"github.com/ajxudir/qcfilter/pkg/output"
	"github.com/ajxudir/qcfilter/pkg/verbose"
	"github.com/spf13/cobra"
)

var (
	sessionConfigFlag   string
	sessionCategoryFlag string
	sessionAllFlag      bool
)

// waitPollInterval is how often "wait" checks for a pending search pass.
const waitPollInterval = 10 * time.Millisecond

var sessionCmd = &cobra.Command{
	Use:   "session <page>",
	Short: "Drive the page's filter controls with events read from stdin",
	Long: `Read one event per line from stdin and apply it to the listing page.
The count line is printed after every recomputation.

Events:
  check <group> <value>     check a box (group: price, features, senior)
  uncheck <group> <value>   uncheck a box
  type <text>               set the search text (debounced)
  sort <key>                select a sort key
  show                      print the visible cards
  wait                      wait for a pending search to run
  quit                      end the session

Blank lines and lines starting with # are ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: runSession,
}

func init() {
	sessionCmd.Flags().StringVarP(&sessionConfigFlag, "config", "c", "", "Config file path (default: .qcfilter.yml next to the page)")
	sessionCmd.Flags().StringVar(&sessionCategoryFlag, "category", "", "Keep only records of this category (record files only)")
	sessionCmd.Flags().BoolVarP(&sessionAllFlag, "all", "a", false, "List hidden cards in show output too")
}

// session serializes output from event handling and debounced passes.
type session struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
	source string
	ctrl   *filtering.Controller
	cfg    *config.Config
	passes int
}

func (s *session) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *session) errorf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintf(s.errOut, constants.IconError+" "+format, args...)
}

// onPass prints the count line of every completed pass.
func (s *session) onPass(res filtering.Result, err error) {
	s.mu.Lock()
	s.passes++
	s.mu.Unlock()
	if err != nil {
		s.errorf("filter pass aborted: %v\n", err)
		return
	}
	s.printf("%s\n", res.CountText)
}

// runSession executes the session command.
func runSession(cmd *cobra.Command, args []string) error {
	return runEvents(args[0], cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// runEvents loads path and applies the events read from in.
//
// A search still pending when input ends is run before returning, as it
// would be once the debounce window elapsed.
//
// Parameters:
//   - path: The listing file
//   - in: Event lines
//   - out: Count lines and show output
//   - errOut: Rejected events and aborted passes
//
// Returns:
//   - error: An ExitError with ExitPartialFailure when some events failed,
//     or the load error
func runEvents(path string, in io.Reader, out, errOut io.Writer) error {
	s := &session{out: out, errOut: errOut, source: path}
	ctrl, cfg, err := openListing(path, sessionConfigFlag, formats.LoadOptions{Category: sessionCategoryFlag},
		filtering.WithPassListener(s.onPass))
	if err != nil {
		return err
	}
	s.ctrl, s.cfg = ctrl, cfg
	defer ctrl.Close()

	scanner := bufio.NewScanner(in)
	total, failed, lineNo := 0, 0, 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimLeftFunc(scanner.Text(), unicode.IsSpace)
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		total++
		quit, err := s.handle(line)
		if err != nil {
			failed++
			if isEventError(err) || isUsageError(err) {
				s.errorf("line %d: %v\n", lineNo, err)
			}
		}
		if quit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.NewExitError(errors.ExitFailure, fmt.Errorf("failed to read events: %w", err))
	}

	ctrl.FlushSearch()

	if failed > 0 {
		return errors.NewExitErrorf(errors.ExitPartialFailure, "%d of %d events failed", failed, total)
	}
	return nil
}

// usageError marks a malformed event line.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func isUsageError(err error) bool {
	_, ok := err.(usageError)
	return ok
}

// handle applies one event line. It reports whether the session should end.
// Pass errors are reported by onPass and only returned for counting.
//
// The text of a type event is everything after the first space, untrimmed,
// since the search box matches its raw value.
func (s *session) handle(line string) (bool, error) {
	verb, text, _ := strings.Cut(line, " ")
	rest := strings.TrimSpace(text)
	verbose.Printf("Session event: %s %q", verb, text)

	switch strings.ToLower(verb) {
	case "check", "uncheck":
		group, value, ok := strings.Cut(rest, " ")
		value = strings.TrimSpace(value)
		if !ok || value == "" {
			return false, usageError{fmt.Sprintf("usage: %s <group> <value>", verb)}
		}
		_, err := s.ctrl.SetChecked(group, value, strings.EqualFold(verb, "check"))
		return false, err
	case "type":
		return false, s.ctrl.Input(text)
	case "sort":
		if rest == "" {
			return false, usageError{"usage: sort <key>"}
		}
		_, err := s.ctrl.SelectSort(rest)
		return false, err
	case "show":
		return false, s.show()
	case "wait":
		s.wait()
		return false, nil
	case "quit", "exit":
		return true, nil
	default:
		return false, usageError{fmt.Sprintf("unknown event %q", verb)}
	}
}

// show prints the visible cards as a table.
func (s *session) show() error {
	result := output.NewFilterResult(s.source, s.ctrl.LastResult(), s.ctrl.OrderedCards(), sessionAllFlag, nil)
	var buf bytes.Buffer
	if err := output.WriteFilterResult(&buf, output.FormatTable, result); err != nil {
		return err
	}
	s.printf("%s", buf.String())
	return nil
}

func (s *session) passCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.passes
}

// wait blocks until a pending search pass has completed, giving up after
// twice the debounce window plus a second.
func (s *session) wait() {
	before := s.passCount()
	if !s.ctrl.SearchPending() {
		return
	}
	deadline := time.Now().Add(2*s.cfg.DebounceWait() + time.Second)
	for s.passCount() == before && time.Now().Before(deadline) {
		time.Sleep(waitPollInterval)
	}
}
