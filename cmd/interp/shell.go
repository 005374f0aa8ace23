package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/sgostarter/i/l"

	"github.com/katalvlaran/lvlath-interp/poly"
	"github.com/katalvlaran/lvlath-interp/session"
)

const prompt = "> "

const helpText = `Commands:
  add x y    add the point (x, y)
  list       show the points, * marks the selection
  select i   select the i-th point (0-based)
  remove     remove the selected point
  calc       calculate the interpolation polynomial
  poly       show the current polynomial
  eval x     evaluate the polynomial at x
  d1         show the first derivative
  d2         show the second derivative
  help       show this text
  quit       exit`

// shell reads commands line by line and drives a Session.
type shell struct {
	s      *session.Session
	out    io.Writer
	logger l.Wrapper
}

func newShell(s *session.Session, out io.Writer, logger l.Wrapper) *shell {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	return &shell{s: s, out: out, logger: logger.WithFields(l.StringField(l.ClsKey, "Shell"))}
}

// run processes in until EOF or quit.
func (sh *shell) run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	fmt.Fprint(sh.out, prompt)
	for sc.Scan() {
		if !sh.exec(sc.Text()) {
			return nil
		}
		fmt.Fprint(sh.out, prompt)
	}
	fmt.Fprintln(sh.out)

	return sc.Err()
}

// exec runs one command line and reports whether the shell should continue.
func (sh *shell) exec(line string) bool {
	args, err := shlex.Split(line)
	if err != nil {
		sh.println("Malformed command: " + err.Error())

		return true
	}
	if len(args) == 0 {
		return true
	}
	cmd, args := strings.ToLower(args[0]), args[1:]
	sh.logger.WithFields(l.StringField("cmd", cmd), l.IntField("args", len(args))).Debug("exec")

	switch cmd {
	case "quit", "exit":
		return false
	case "help":
		sh.println(helpText)
	case "add":
		if sh.arity(args, 2, "add x y") {
			sh.add(args[0], args[1])
		}
	case "list":
		if sh.arity(args, 0, "list") {
			sh.list()
		}
	case "select":
		if sh.arity(args, 1, "select i") {
			sh.selectPoint(args[0])
		}
	case "remove":
		if sh.arity(args, 0, "remove") {
			sh.remove()
		}
	case "calc":
		if sh.arity(args, 0, "calc") {
			sh.calc()
		}
	case "poly":
		if sh.arity(args, 0, "poly") {
			sh.showPoly()
		}
	case "eval":
		if sh.arity(args, 1, "eval x") {
			sh.eval(args[0])
		}
	case "d1":
		if sh.arity(args, 0, "d1") {
			sh.derivative("First Derivative: ", sh.s.FirstDerivative)
		}
	case "d2":
		if sh.arity(args, 0, "d2") {
			sh.derivative("Second Derivative: ", sh.s.SecondDerivative)
		}
	default:
		sh.println(fmt.Sprintf("Unknown command %q. Type help for a list of commands.", cmd))
	}

	return true
}

func (sh *shell) println(msg string) { fmt.Fprintln(sh.out, msg) }

func (sh *shell) fail(err error) { sh.println(session.Message(err)) }

func (sh *shell) arity(args []string, n int, usage string) bool {
	if len(args) != n {
		sh.println("Usage: " + usage)

		return false
	}

	return true
}

func (sh *shell) add(x, y string) {
	p, err := sh.s.AddPoint(x, y)
	if err != nil {
		sh.fail(err)

		return
	}
	sh.println("Added " + p.String() + ".")
}

func (sh *shell) list() {
	pts := sh.s.Points()
	if len(pts) == 0 {
		sh.println("No points.")

		return
	}
	sel, hasSel := sh.s.Selected()
	marked := false
	for i, p := range pts {
		mark := " "
		if hasSel && !marked && p == sel {
			mark, marked = "*", true
		}
		sh.println(fmt.Sprintf("%s%d: %s", mark, i, p))
	}
}

func (sh *shell) selectPoint(text string) {
	i, err := strconv.Atoi(text)
	if err != nil {
		sh.fail(session.ErrParse)

		return
	}
	p, err := sh.s.Select(i)
	if err != nil {
		sh.fail(err)

		return
	}
	sh.println("Selected " + p.String() + ".")
}

func (sh *shell) remove() {
	p, err := sh.s.RemoveSelected()
	if err != nil {
		sh.fail(err)

		return
	}
	sh.println("Removed " + p.String() + ".")
}

func (sh *shell) calc() {
	res, err := sh.s.Calculate()
	switch {
	case errors.Is(err, session.ErrExport):
		sh.fail(err)
	case err != nil:
		sh.fail(err)

		return
	case res.ExportPath != "":
		sh.println("Calculation complete. LaTeX file saved to " + res.ExportPath + ".")
	default:
		sh.println("Calculation complete.")
	}
	sh.println("P(x) = " + poly.Format(res.Coefficients))
}

func (sh *shell) showPoly() {
	c, err := sh.s.Coefficients()
	if err != nil {
		sh.fail(err)

		return
	}
	sh.println("P(x) = " + poly.Format(c))
}

func (sh *shell) eval(x string) {
	ev, err := sh.s.Evaluate(x)
	if err != nil {
		sh.fail(err)

		return
	}
	sh.println(ev.String())
}

func (sh *shell) derivative(label string, fn func() (poly.Coefficients, error)) {
	d, err := fn()
	if err != nil {
		sh.fail(err)

		return
	}
	sh.println(label + poly.Format(d))
}
