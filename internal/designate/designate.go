// Package designate binds call arguments to parameters when some arguments
// name their parameter with a designator, as in
//
//	func f(.a, .b = 0)
//	f(.b = 1, .a = 2)
//
// Parameters and designators are matched by name identity: both sides carry
// a names.Name built by the same context, so lookup is a map probe.
package designate

import (
	"fmt"

	"declname/internal/diag"
	"declname/internal/names"
	"declname/internal/source"
)

// Param is one parameter of a callee.
type Param struct {
	Name         names.Name // empty for unnamed parameters
	Designatable bool
	HasDefault   bool
	Variadic     bool // trailing pack, absorbs extra positional arguments
	Span         source.Span
}

// Func is the parameter list of a callee.
type Func struct {
	Name   names.Name
	Params []Param
	Span   source.Span
}

// Arg is one argument at a call site.
type Arg struct {
	Designator     names.Name // empty for positional arguments
	DesignatorSpan source.Span
	Span           source.Span
}

// IsDesignated reports an argument written as ".name = value".
func (a Arg) IsDesignated() bool { return !a.Designator.IsEmpty() }

// Call is a call site.
type Call struct {
	Args []Arg
	Span source.Span
}

// Binding maps each argument to the index of the parameter it initialises,
// or -1 when the argument was rejected.
type Binding []int

// Match binds call to fn and reports every problem to r. It returns false if
// any error was reported.
func Match(fn *Func, call *Call, r diag.Reporter) (Binding, bool) {
	m := matcher{fn: fn, call: call, r: r, ok: true}
	return m.run(), m.ok
}

type matcher struct {
	fn   *Func
	call *Call
	r    diag.Reporter
	ok   bool
}

func (m *matcher) run() Binding {
	binding := make(Binding, len(m.call.Args))
	for i := range binding {
		binding[i] = -1
	}
	dup := m.duplicates()

	byName := make(map[names.Name]int, len(m.fn.Params))
	variadic := -1
	for i, p := range m.fn.Params {
		if p.Variadic {
			variadic = i
			continue
		}
		if !p.Name.IsEmpty() {
			byName[p.Name] = i
		}
	}

	assigned := make([]int, len(m.fn.Params))
	for i := range assigned {
		assigned[i] = -1
	}
	next := 0
	for i, arg := range m.call.Args {
		if dup[i] {
			continue
		}
		var p int
		if arg.IsDesignated() {
			idx, found := byName[arg.Designator]
			switch {
			case !found:
				m.errorf(diag.DesNoSuchParameter, arg.DesignatorSpan, "no corresponding designatable parameter for '%s'", arg.Designator)
				continue
			case !m.fn.Params[idx].Designatable:
				m.report(diag.DesNotDesignatable, arg.DesignatorSpan,
					fmt.Sprintf("parameter '%s' is not designatable", arg.Designator)).
					WithNote(m.fn.Params[idx].Span, "declared here").Emit()
				m.ok = false
				continue
			}
			p = idx
		} else {
			p = next
			if variadic >= 0 && p >= variadic {
				binding[i] = variadic
				continue
			}
			if p >= len(m.fn.Params) {
				m.errorf(diag.DesIndexOutOfBounds, arg.Span, "argument index %d is out of bounds", i+1)
				continue
			}
		}
		if prev := assigned[p]; prev >= 0 {
			m.report(diag.DesMultipleArguments, arg.Span,
				fmt.Sprintf("multiple arguments provided for %s parameter", Ordinal(p+1))).
				WithNote(m.call.Args[prev].Span, "previous argument is here").Emit()
			m.ok = false
			continue
		}
		assigned[p] = i
		binding[i] = p
		next = p + 1
	}

	for i, p := range m.fn.Params {
		if assigned[i] < 0 && !p.HasDefault && !p.Variadic {
			m.report(diag.DesMissingArgument, m.call.Span,
				fmt.Sprintf("missing argument for %s parameter", Ordinal(i+1))).
				WithNote(p.Span, "declared here").Emit()
			m.ok = false
		}
	}
	return binding
}

// duplicates reports repeated designators and returns the rejected args.
func (m *matcher) duplicates() map[int]bool {
	first := make(map[names.Name]int)
	dup := make(map[int]bool)
	for i, arg := range m.call.Args {
		if !arg.IsDesignated() {
			continue
		}
		if prev, seen := first[arg.Designator]; seen {
			m.report(diag.DesDuplicate, arg.DesignatorSpan, "duplicate designators").
				WithNote(m.call.Args[prev].DesignatorSpan, "previous designator is here").Emit()
			m.ok = false
			dup[i] = true
			continue
		}
		first[arg.Designator] = i
	}
	return dup
}

func (m *matcher) report(code diag.Code, sp source.Span, msg string) *diag.ReportBuilder {
	return diag.ReportError(m.r, code, sp, msg)
}

func (m *matcher) errorf(code diag.Code, sp source.Span, format string, args ...any) {
	diag.Errorf(m.r, code, sp, format, args...).Emit()
	m.ok = false
}

// Ordinal spells n as "1st", "2nd", "3rd", "4th", "11th", "21st" and so on.
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
