package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"city-explorer/internal/config"
	"city-explorer/internal/domain"
	"city-explorer/internal/platform/loop"
)

// Controller is what the input bindings drive.
type Controller interface {
	Search(city string) error
	HandleMapClick(c domain.Coordinates) error
	HandleResize()
}

// Bindings maps input lines to controller calls:
//
//	search <city>         search button
//	<city>                Enter in the city field
//	click <lat> <lon>     map click
//	resize                window resize
//	categories a,b        tick exactly these categories
//	check <id>            tick one category
//	uncheck <id>          untick one category
//	quit                  stop reading input
//
// Every action is posted to the event loop, so input is handled in order
// with in-flight query callbacks.
type Bindings struct {
	ctrl     Controller
	controls *Checkboxes
	loop     loop.Scheduler
	out      io.Writer
}

func NewBindings(ctrl Controller, controls *Checkboxes, l loop.Scheduler, out io.Writer) *Bindings {
	return &Bindings{ctrl: ctrl, controls: controls, loop: l, out: out}
}

const usage = `commands: search <city> | <city> | click <lat> <lon> | resize | categories a,b | check <id> | uncheck <id> | quit`

// Run reads commands until EOF, "quit" or ctx cancellation.
func (b *Bindings) Run(ctx context.Context, in io.Reader) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !b.Handle(sc.Text()) {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

// Handle dispatches one input line. It returns false when input should stop.
func (b *Bindings) Handle(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}

	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(cmd) {
	case "quit", "exit":
		return false
	case "help":
		fmt.Fprintln(b.out, usage)
	case "search":
		b.loop.Post(func() { b.logIgnored(b.ctrl.Search(rest)) })
	case "click":
		c, err := parseCoordinates(rest)
		if err != nil {
			fmt.Fprintf(b.out, "! %v\n", err)
			return true
		}
		b.loop.Post(func() { b.logIgnored(b.ctrl.HandleMapClick(c)) })
	case "resize":
		b.loop.Post(b.ctrl.HandleResize)
	case "categories":
		ids := config.SplitList(rest)
		b.loop.Post(func() { b.controls.Set(ids) })
	case "check":
		b.loop.Post(func() { b.controls.Check(rest) })
	case "uncheck":
		b.loop.Post(func() { b.controls.Uncheck(rest) })
	default:
		b.loop.Post(func() { b.logIgnored(b.ctrl.Search(line)) })
	}
	return true
}

// Validation errors are already shown by the controller.
func (b *Bindings) logIgnored(err error) {
	if err != nil {
		log.Printf("input rejected: %v", err)
	}
}

func parseCoordinates(s string) (domain.Coordinates, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' })
	if len(fields) != 2 {
		return domain.Coordinates{}, fmt.Errorf("click needs <lat> <lon>, got %q", s)
	}
	lat, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("invalid latitude %q", fields[0])
	}
	lon, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("invalid longitude %q", fields[1])
	}
	return domain.Coordinates{Lat: lat, Lon: lon}, nil
}
