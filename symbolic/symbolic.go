// Package symbolic analyses circuit expressions with binary decision
// diagrams.
//
// Every signal is treated as a free boolean variable: an expression is not
// expanded with the updates that assign the signals it reads.
//
package symbolic

import (
	"math/big"
	"strconv"

	"github.com/dalzilio/rudd"
	"github.com/pkg/errors"
	"github.com/s224268/hwsim"
)

// Space maps signal names to BDD variables.
//
type Space struct {
	bdd   *rudd.BDD
	vars  map[string]int
	total *big.Int // number of assignments of all variables
}

// NewSpace returns a space with one variable per distinct name.
//
func NewSpace(names ...string) (*Space, error) {
	vars := make(map[string]int, len(names))
	for _, n := range names {
		if _, ok := vars[n]; !ok {
			vars[n] = len(vars)
		}
	}
	if len(vars) == 0 {
		return nil, errors.New("empty variable set")
	}
	b, err := rudd.New(len(vars), rudd.Nodesize(1000), rudd.Cachesize(500))
	if err != nil {
		return nil, errors.Wrap(err, "create BDD")
	}
	return &Space{
		bdd:   b,
		vars:  vars,
		total: new(big.Int).Lsh(big.NewInt(1), uint(len(vars))),
	}, nil
}

// Node returns the BDD of e.
//
func (s *Space) Node(e hwsim.Expr) (rudd.Node, error) {
	switch e := e.(type) {
	case hwsim.Signal:
		v, ok := s.vars[string(e)]
		if !ok {
			return nil, errors.Errorf("signal %q not in variable set", string(e))
		}
		return s.bdd.Ithvar(v), nil
	case *hwsim.Not:
		x, err := s.Node(e.X)
		if err != nil {
			return nil, err
		}
		return s.bdd.Not(x), nil
	case *hwsim.And:
		x, y, err := s.node2(e.X, e.Y)
		if err != nil {
			return nil, err
		}
		return s.bdd.And(x, y), nil
	case *hwsim.Or:
		x, y, err := s.node2(e.X, e.Y)
		if err != nil {
			return nil, err
		}
		return s.bdd.Or(x, y), nil
	}
	return nil, errors.Errorf("unsupported expression type %T", e)
}

func (s *Space) node2(x, y hwsim.Expr) (rudd.Node, rudd.Node, error) {
	a, err := s.Node(x)
	if err != nil {
		return nil, nil, err
	}
	b, err := s.Node(y)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// Constant reports whether e has the same value for every assignment of its
// signals and, if so, that value.
//
func (s *Space) Constant(e hwsim.Expr) (value, ok bool, err error) {
	n, err := s.Node(e)
	if err != nil {
		return false, false, err
	}
	return s.constant(n)
}

func (s *Space) constant(n rudd.Node) (value, ok bool, err error) {
	c := s.bdd.Satcount(n)
	if msg := s.bdd.Error(); msg != "" {
		return false, false, errors.New(msg)
	}
	switch {
	case c.Sign() == 0:
		return false, true, nil
	case c.Cmp(s.total) == 0:
		return true, true, nil
	}
	return false, false, nil
}

// Equivalent reports whether a and b have the same value for every
// assignment of their signals.
//
func (s *Space) Equivalent(a, b hwsim.Expr) (bool, error) {
	x, y, err := s.node2(a, b)
	if err != nil {
		return false, err
	}
	return s.equivalent(x, y)
}

func (s *Space) equivalent(x, y rudd.Node) (bool, error) {
	eq := s.bdd.Or(s.bdd.And(x, y), s.bdd.And(s.bdd.Not(x), s.bdd.Not(y)))
	v, ok, err := s.constant(eq)
	return ok && v, err
}

// Equivalent reports whether a and b have the same value for every
// assignment of their signals.
//
func Equivalent(a, b hwsim.Expr) (bool, error) {
	s, err := NewSpace(append(hwsim.Signals(a), hwsim.Signals(b)...)...)
	if err != nil {
		return false, err
	}
	return s.Equivalent(a, b)
}

// Constant reports whether e is a tautology or a contradiction, and which.
//
func Constant(e hwsim.Expr) (value, ok bool, err error) {
	s, err := NewSpace(hwsim.Signals(e)...)
	if err != nil {
		return false, false, err
	}
	return s.Constant(e)
}

// FindingKind is the kind of a Finding.
//
type FindingKind int

// Finding kinds.
//
const (
	ConstantUpdate FindingKind = iota
	DuplicateUpdate
)

// A Finding reports a suspicious update in a circuit.
//
type Finding struct {
	Kind   FindingKind
	Update string // update target
	Value  bool   // constant value, for ConstantUpdate
	Other  string // equivalent earlier update, for DuplicateUpdate
}

func (f Finding) String() string {
	if f.Kind == ConstantUpdate {
		return "update " + f.Update + " is always " + strconv.FormatBool(f.Value)
	}
	return "update " + f.Update + " is equivalent to update " + f.Other
}

// Check looks for updates whose expression is constant or equivalent to the
// expression of an earlier update.
//
func Check(c *hwsim.Circuit) ([]Finding, error) {
	if len(c.Updates) == 0 {
		return nil, nil
	}
	var names []string
	for _, u := range c.Updates {
		names = append(names, hwsim.Signals(u.Expr)...)
	}
	s, err := NewSpace(names...)
	if err != nil {
		return nil, err
	}

	var fs []Finding
	nodes := make([]rudd.Node, len(c.Updates))
	for i, u := range c.Updates {
		n, err := s.Node(u.Expr)
		if err != nil {
			return nil, errors.Wrap(err, "update "+u.Name)
		}
		nodes[i] = n
		v, ok, err := s.constant(n)
		if err != nil {
			return nil, errors.Wrap(err, "update "+u.Name)
		}
		if ok {
			fs = append(fs, Finding{Kind: ConstantUpdate, Update: u.Name, Value: v})
			continue
		}
		for j := 0; j < i; j++ {
			if c.Updates[j].Name == u.Name {
				continue
			}
			if eq, err := s.equivalent(nodes[j], n); err != nil {
				return nil, err
			} else if eq {
				fs = append(fs, Finding{Kind: DuplicateUpdate, Update: u.Name, Other: c.Updates[j].Name})
				break
			}
		}
	}
	return fs, nil
}
