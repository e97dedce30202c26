package lockclient

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"github.com/ValentinKolb/lockey/lib/lockmgr"
	"github.com/lni/dragonboat/v4/logger"
	"io"
	"strings"
)

var Logger = logger.GetLogger("lockclient")

const sessionHelp = `commands:
  acquire <requester> <resource>   acquire a lock
  release <requester> <resource>   release the lock of the requester
  holding <requester>              show the resource held by the requester
  stats                            show the lock manager statistics
  help                             show this help`

// Session executes line based lock commands against a Client.
// Every command is answered with exactly one line (help excepted).
// Blank lines and lines starting with # are ignored.
type Session struct {
	client *Client
	prompt string
}

// NewSession creates a new session for the given client.
// If prompt is not empty it is written before each command is read.
func NewSession(client *Client, prompt string) *Session {
	return &Session{
		client: client,
		prompt: prompt,
	}
}

// Run reads commands from in until EOF or until ctx is done and writes the
// answers to out. Failed lock operations are reported on out and never end
// the session. The returned error is non-nil only if reading or writing fails
// or ctx is cancelled.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.prompt != "" {
			if _, err := io.WriteString(out, s.prompt); err != nil {
				return err
			}
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if _, err := fmt.Fprintln(out, s.Execute(line)); err != nil {
			return err
		}
	}
}

// Execute runs a single command line and returns the answer.
func (s *Session) Execute(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "error: empty command"
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	Logger.Debugf("executing %s %v", cmd, args)

	switch cmd {
	case "acquire":
		if len(args) != 2 {
			return "error: usage: acquire <requester> <resource>"
		}
		return formatResult(s.client.Acquire(args[0], args[1]))
	case "release":
		if len(args) != 2 {
			return "error: usage: release <requester> <resource>"
		}
		return formatResult(s.client.Release(args[0], args[1]))
	case "holding":
		if len(args) != 1 {
			return "error: usage: holding <requester>"
		}
		if resource, ok := s.client.Holding(args[0]); ok {
			return fmt.Sprintf("%s -> %s", args[0], resource)
		}
		return fmt.Sprintf("%s holds nothing", args[0])
	case "stats":
		return formatStats(s.client.Stats())
	case "help":
		return sessionHelp
	default:
		return fmt.Sprintf("error: unknown command %q (try help)", fields[0])
	}
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// formatResult translates the result of a lock operation into an answer line
func formatResult(err error) string {
	var acqErr *lockmgr.AcquireError
	var relErr *lockmgr.ReleaseError

	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &acqErr):
		return fmt.Sprintf("error: already_locked (%s holds %s)", acqErr.Descriptor.RequesterID, acqErr.Held)
	case errors.As(err, &relErr):
		return fmt.Sprintf("error: not_locked (%s holds nothing)", relErr.Descriptor.RequesterID)
	default:
		return fmt.Sprintf("error: %v", err)
	}
}

func formatStats(st lockmgr.Stats) string {
	return fmt.Sprintf("acquired=%d released=%d acquire_rejected=%d release_rejected=%d held=%d",
		st.Acquired, st.Released, st.AcquireRejected, st.ReleaseRejected, st.Held)
}
