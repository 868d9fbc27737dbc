// Package conversation parses shell commands and notifies the user.
package conversation

import (
	"strconv"
	"strings"

	"github.com/hammamikhairi/dustcook/internal/logger"
)

// Kind identifies a shell command.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvShow
	KindInvAdd
	KindInvRemove
	KindInvClear
	KindSurplusShow
	KindSurplusMark
	KindSurplusUnmark
	KindTop
	KindSolve
	KindSolved
	KindHelp
	KindQuit
)

// String returns a short label for logging.
func (k Kind) String() string {
	switch k {
	case KindInvShow:
		return "inv-show"
	case KindInvAdd:
		return "inv-add"
	case KindInvRemove:
		return "inv-remove"
	case KindInvClear:
		return "inv-clear"
	case KindSurplusShow:
		return "surplus-show"
	case KindSurplusMark:
		return "surplus-mark"
	case KindSurplusUnmark:
		return "surplus-unmark"
	case KindTop:
		return "top"
	case KindSolve:
		return "solve"
	case KindSolved:
		return "solved"
	case KindHelp:
		return "help"
	case KindQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is one parsed line of user input. Args carries ingredient queries
// (comma-separated in the input) or the raw line for unknown commands. N is
// the top-N override for KindTop, 0 meaning the default.
type Command struct {
	Kind Kind
	Args []string
	N    int
}

// Parser turns REPL lines into commands. Matching is keyword-based; queries
// are resolved against the catalog later, so the parser never needs it.
type Parser struct {
	log *logger.Logger
}

// NewParser creates a command parser.
func NewParser(log *logger.Logger) *Parser {
	return &Parser{log: log}
}

// Parse converts one input line into a Command. It never fails; input it
// cannot place comes back as KindUnknown with the raw line in Args.
func (p *Parser) Parse(input string) Command {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Command{Kind: KindUnknown}
	}
	p.log.Debug("parsing input: %q", trimmed)

	head, rest := splitHead(trimmed)
	switch strings.ToLower(head) {
	case "inv", "inventory", "i":
		return p.parseInv(rest)
	case "surplus", "sur":
		return p.parseSurplus(rest)
	case "top", "report", "best":
		return p.parseTop(rest)
	case "solve":
		if rest == "" {
			return Command{Kind: KindUnknown, Args: []string{trimmed}}
		}
		return Command{Kind: KindSolve, Args: []string{rest}}
	case "solved", "unsolved":
		return Command{Kind: KindSolved}
	case "help", "h", "?":
		return Command{Kind: KindHelp}
	case "quit", "exit", "q":
		return Command{Kind: KindQuit}
	}
	return Command{Kind: KindUnknown, Args: []string{trimmed}}
}

func (p *Parser) parseInv(rest string) Command {
	head, tail := splitHead(rest)
	switch strings.ToLower(head) {
	case "":
		return Command{Kind: KindInvShow}
	case "clear":
		return Command{Kind: KindInvClear}
	case "add":
		return Command{Kind: KindInvAdd, Args: splitQueries(tail)}
	case "rm", "remove", "del":
		return Command{Kind: KindInvRemove, Args: splitQueries(tail)}
	default:
		// Bare ingredient list: "inv water, salt" adds.
		return Command{Kind: KindInvAdd, Args: splitQueries(rest)}
	}
}

func (p *Parser) parseSurplus(rest string) Command {
	head, tail := splitHead(rest)
	switch strings.ToLower(head) {
	case "":
		return Command{Kind: KindSurplusShow}
	case "rm", "remove", "del":
		return Command{Kind: KindSurplusUnmark, Args: splitQueries(tail)}
	default:
		return Command{Kind: KindSurplusMark, Args: splitQueries(rest)}
	}
}

func (p *Parser) parseTop(rest string) Command {
	cmd := Command{Kind: KindTop}
	for _, field := range strings.Fields(rest) {
		if n, err := strconv.Atoi(field); err == nil && n > 0 {
			cmd.N = n
			continue
		}
		cmd.Args = append(cmd.Args, strings.ToLower(field))
	}
	return cmd
}

// splitHead returns the first whitespace-delimited token and the rest.
func splitHead(s string) (string, string) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], strings.TrimSpace(s[i+1:])
	}
	return s, ""
}

// splitQueries splits a comma-separated ingredient list, dropping empties.
func splitQueries(s string) []string {
	var queries []string
	for _, part := range strings.Split(s, ",") {
		if q := strings.TrimSpace(part); q != "" {
			queries = append(queries, q)
		}
	}
	return queries
}
