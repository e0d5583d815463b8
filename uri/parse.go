package uri

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/weburi/internal/constraints"
	"github.com/ghettovoice/weburi/internal/grammar"
	"github.com/ghettovoice/weburi/log"
)

// Parse decomposes s into a [URI] using a parser with default options.
//
// Parsing is lenient: any text yields a result, a relative reference becomes a path-only URI.
// The only failure is an explicit port that is not a run of decimal digits,
// it is reported as [*PortError] matching [ErrInvalidPort].
// Text after the first NUL byte is ignored.
func Parse[T constraints.Byteseq](s T) (*URI, error) {
	return errtrace.Wrap2(defParser.Parse(string(s)))
}

var defParser = NewParser(nil)

// ParserOptions are used to configure a [Parser].
type ParserOptions struct {
	// Logger receives parser state transitions and results at debug level.
	// If nil, [log.Default] is used.
	Logger *slog.Logger
}

func (o *ParserOptions) log() *slog.Logger {
	if o == nil || o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

// Parser parses URI strings. It is safe for concurrent use.
type Parser struct {
	opts ParserOptions
}

// NewParser creates a new parser. Options are optional.
func NewParser(opts *ParserOptions) *Parser {
	p := new(Parser)
	if opts != nil {
		p.opts = *opts
	}
	return p
}

// Parse decomposes src into a [URI]. See [Parse] for details.
func (p *Parser) Parse(src string) (*URI, error) {
	return errtrace.Wrap2(p.ParseContext(context.Background(), src))
}

// ParseContext is like [Parser.Parse] but passes ctx to the logger.
func (p *Parser) ParseContext(ctx context.Context, src string) (*URI, error) {
	if i := strings.IndexByte(src, 0); i >= 0 {
		src = src[:i]
	}

	logger := p.opts.log()
	if src == "" {
		return &URI{}, nil
	}

	s := newScanner(src, logger)
	u, err := s.run(ctx)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelDebug, "failed to parse URI", slog.Any("error", err))
		return nil, errtrace.Wrap(err)
	}
	logger.LogAttrs(ctx, slog.LevelDebug, "URI parsed", slog.Any("uri", u))
	return u, nil
}

type parseState string

const (
	stateStart    parseState = "start"
	stateScheme   parseState = "scheme"
	stateHostinfo parseState = "hostinfo"
	stateUserinfo parseState = "userinfo"
	stateHost     parseState = "host"
	statePath     parseState = "path"
	stateQuery    parseState = "query"
	stateFragment parseState = "fragment"
	stateDone     parseState = "done"
)

type parseEvent string

const (
	evtScheme   parseEvent = "scheme"
	evtHostinfo parseEvent = "hostinfo"
	evtUserinfo parseEvent = "userinfo"
	evtHost     parseEvent = "host"
	evtPath     parseEvent = "path"
	evtQuery    parseEvent = "query"
	evtFragment parseEvent = "fragment"
	evtEnd      parseEvent = "end"
)

// scanner holds the state of a single parse.
type scanner struct {
	src string
	pos int
	// end of the hostinfo section and start of the host inside it
	hostEnd, hostStart int

	uri   URI
	err   error
	state parseState
	next  parseEvent
	log   *slog.Logger
	fsm   *stateless.StateMachine
}

func newScanner(src string, logger *slog.Logger) *scanner {
	s := &scanner{
		src:   src,
		state: stateStart,
		log:   logger,
	}
	s.initFSM()
	return s
}

func (s *scanner) initFSM() {
	s.fsm = stateless.NewStateMachineWithExternalStorage(
		func(context.Context) (stateless.State, error) { return s.state, nil },
		func(_ context.Context, st stateless.State) error {
			s.state = st.(parseState) //nolint:forcetypeassert
			return nil
		},
		stateless.FiringImmediate,
	)

	s.fsm.Configure(stateStart).
		Permit(evtScheme, stateScheme).
		Permit(evtPath, statePath)

	s.fsm.Configure(stateScheme).
		OnEntry(s.actScheme).
		Permit(evtHostinfo, stateHostinfo).
		Permit(evtPath, statePath)

	s.fsm.Configure(stateHostinfo).
		OnEntry(s.actHostinfo).
		Permit(evtUserinfo, stateUserinfo).
		Permit(evtHost, stateHost)

	s.fsm.Configure(stateUserinfo).
		OnEntry(s.actUserinfo).
		Permit(evtHost, stateHost)

	s.fsm.Configure(stateHost).
		OnEntry(s.actHost).
		Permit(evtPath, statePath)

	s.fsm.Configure(statePath).
		OnEntry(s.actPath).
		Permit(evtQuery, stateQuery).
		Permit(evtFragment, stateFragment).
		Permit(evtEnd, stateDone)

	s.fsm.Configure(stateQuery).
		OnEntry(s.actQuery).
		Permit(evtFragment, stateFragment).
		Permit(evtEnd, stateDone)

	s.fsm.Configure(stateFragment).
		OnEntry(s.actFragment).
		Permit(evtEnd, stateDone)

	s.fsm.Configure(stateDone)

	s.fsm.OnTransitioned(func(ctx context.Context, t stateless.Transition) {
		s.log.LogAttrs(ctx, slog.LevelDebug, "URI parser transition",
			slog.Any("from", t.Source),
			slog.Any("to", t.Destination),
			slog.Any("event", t.Trigger),
		)
	})
}

func (s *scanner) run(ctx context.Context) (*URI, error) {
	s.start()
	for s.state != stateDone {
		if err := s.fsm.FireCtx(ctx, s.next); err != nil {
			if s.err != nil {
				return nil, errtrace.Wrap(s.err)
			}
			return nil, errtrace.Wrap(err)
		}
	}
	u := s.uri
	return &u, nil
}

func (s *scanner) start() {
	if c := s.src[0]; c == '/' || !grammar.IsAlpha(c) {
		s.next = evtPath
		return
	}
	s.next = evtScheme
}

func (s *scanner) actScheme(context.Context, ...any) error {
	i := grammar.Scan(s.src, 0, grammar.StopScheme)
	if i == len(s.src) || !strings.HasPrefix(s.src[i:], "://") {
		// relative reference, the whole text goes to the path
		s.pos = 0
		s.next = evtPath
		return nil
	}
	s.uri.Scheme = s.src[:i]
	s.pos = i + len("://")
	s.next = evtHostinfo
	return nil
}

func (s *scanner) actHostinfo(context.Context, ...any) error {
	s.hostEnd = grammar.Scan(s.src, s.pos, grammar.StopHostinfo)
	// the password may contain '@', so the last one delimits the user info
	if at := strings.LastIndexByte(s.src[s.pos:s.hostEnd], '@'); at >= 0 {
		s.hostStart = s.pos + at + 1
		s.next = evtUserinfo
		return nil
	}
	s.hostStart = s.pos
	s.next = evtHost
	return nil
}

func (s *scanner) actUserinfo(context.Context, ...any) error {
	ui := s.src[s.pos : s.hostStart-1]
	if i := strings.IndexByte(ui, ':'); i >= 0 {
		s.uri.User, s.uri.Password, s.uri.HasPassword = ui[:i], ui[i+1:], true
	} else {
		s.uri.User = ui
	}
	s.pos = s.hostStart
	s.next = evtHost
	return nil
}

func (s *scanner) actHost(context.Context, ...any) error {
	hp := s.src[s.pos:s.hostEnd]
	colon := portColon(hp)
	if colon < 0 {
		s.uri.Hostname = hp
		s.uri.Port = DefaultPort(s.uri.Scheme)
	} else {
		s.uri.Hostname = hp[:colon]
		s.uri.PortText = hp[colon+1:]
		port, err := s.parsePort(s.pos + colon + 1)
		if err != nil {
			s.err = err
			return errtrace.Wrap(err)
		}
		s.uri.Port = port
	}
	s.pos = s.hostEnd
	s.next = evtPath
	return nil
}

// portColon returns the index of the colon separating the port or -1.
// Colons inside a bracketed IP literal are skipped.
func portColon(hp string) int {
	if len(hp) > 0 && hp[0] == '[' {
		rb := strings.IndexByte(hp, ']')
		if rb < 0 {
			return -1
		}
		if i := strings.IndexByte(hp[rb:], ':'); i >= 0 {
			return rb + i
		}
		return -1
	}
	return strings.IndexByte(hp, ':')
}

func (s *scanner) parsePort(off int) (uint32, error) {
	txt := s.uri.PortText
	if txt == "" {
		return DefaultPort(s.uri.Scheme), nil
	}
	for i := 0; i < len(txt); i++ {
		if !grammar.IsDigit(txt[i]) {
			return 0, errtrace.Wrap(&PortError{
				Input:  s.src,
				Port:   txt,
				Offset: off + i,
				Reason: "invalid character",
			})
		}
	}
	n, err := strconv.ParseUint(txt, 10, 32)
	if err != nil {
		// only overflow is possible here
		return math.MaxUint32, nil
	}
	return uint32(n), nil
}

func (s *scanner) actPath(context.Context, ...any) error {
	end := grammar.Scan(s.src, s.pos, grammar.StopPath)
	s.uri.Path = s.src[s.pos:end]
	s.pos = end
	switch {
	case end == len(s.src):
		s.next = evtEnd
	case s.src[end] == '?':
		s.next = evtQuery
	default:
		s.next = evtFragment
	}
	return nil
}

func (s *scanner) actQuery(context.Context, ...any) error {
	s.pos++
	s.uri.HasQuery = true
	rest := s.src[s.pos:]
	if i := strings.IndexByte(rest, '#'); i >= 0 {
		s.uri.Query = rest[:i]
		s.pos += i
		s.next = evtFragment
		return nil
	}
	s.uri.Query = rest
	s.pos = len(s.src)
	s.next = evtEnd
	return nil
}

func (s *scanner) actFragment(context.Context, ...any) error {
	s.uri.HasFragment = true
	s.uri.Fragment = s.src[s.pos+1:]
	s.pos = len(s.src)
	s.next = evtEnd
	return nil
}
