// Package parse builds pattern trees from YAML documents so patterns
// can travel as data (over HTTP, in config files) rather than only as
// code. A document is one node; composite nodes carry lists:
//
//	seq:
//	  - subtype: map
//	  - attribute: bar
//	  - attribute: foo
//	  - bind: v
//
// Scalar nodes "anything" and "nothing" stand alone. bind names a
// variable; all occurrences of one name share a cell and the table of
// cells is returned alongside the pattern so the caller can read them
// per match.
package parse

import (
	"fmt"

	yaml "gopkg.in/yaml.v2"

	"github.com/retro-framework/go-unify/framework/pattern"
	"github.com/retro-framework/go-unify/framework/unify"
)

type Error struct {
	Op  string
	Err error
}

func (e Error) Error() string {
	return fmt.Sprintf("parse: op: %q err: %q", e.Op, e.Err)
}

// Pattern compiles a YAML pattern document. Malformed documents are
// construction errors (the fatal class), never non-matches.
func Pattern(src []byte) (unify.Pattern, map[string]*unify.Variable, error) {
	var doc interface{}
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, nil, Error{"yaml-unmarshal", err}
	}
	if doc == nil {
		return nil, nil, Error{"parse-node", fmt.Errorf("empty pattern document")}
	}
	p := &parser{vars: map[string]*unify.Variable{}}
	pat, err := p.node(doc)
	if err != nil {
		return nil, nil, err
	}
	return pat, p.vars, nil
}

type parser struct {
	vars map[string]*unify.Variable
}

func (p *parser) node(doc interface{}) (unify.Pattern, error) {
	switch n := doc.(type) {
	case string:
		switch n {
		case "anything":
			return pattern.Anything(), nil
		case "nothing":
			return pattern.Nothing(), nil
		}
		return nil, Error{"parse-node", fmt.Errorf("unknown pattern %q", n)}
	case map[interface{}]interface{}:
		if len(n) != 1 {
			return nil, Error{"parse-node", fmt.Errorf("pattern node must have exactly one key, has %d", len(n))}
		}
		for k, arg := range n {
			key, ok := k.(string)
			if !ok {
				return nil, Error{"parse-node", fmt.Errorf("pattern node key must be a string, got %T", k)}
			}
			return p.keyed(key, arg)
		}
	}
	return nil, Error{"parse-node", fmt.Errorf("can't build a pattern node from %T", doc)}
}

func (p *parser) keyed(key string, arg interface{}) (unify.Pattern, error) {
	switch key {
	case "attribute":
		name, err := p.str(key, arg)
		if err != nil {
			return nil, err
		}
		return pattern.Attribute(name), nil
	case "attribute_glob":
		g, err := p.str(key, arg)
		if err != nil {
			return nil, err
		}
		return pattern.AttributeGlob(g), nil
	case "subtype":
		name, err := p.str(key, arg)
		if err != nil {
			return nil, err
		}
		return pattern.Subtype(name), nil
	case "bind":
		name, err := p.str(key, arg)
		if err != nil {
			return nil, err
		}
		v, exists := p.vars[name]
		if !exists {
			v = unify.NewVariable()
			p.vars[name] = v
		}
		return pattern.Bind(v), nil
	case "constant":
		return pattern.Constant(normalize(arg)), nil
	case "glob":
		g, err := p.str(key, arg)
		if err != nil {
			return nil, err
		}
		return pattern.Glob(g), nil
	case "index":
		i, ok := arg.(int)
		if !ok {
			return nil, Error{"parse-" + key, fmt.Errorf("index wants an integer, got %T", arg)}
		}
		return pattern.Index(i), nil
	case "seq":
		ps, err := p.list(key, arg)
		if err != nil {
			return nil, err
		}
		return pattern.Seq(ps...), nil
	case "or":
		ps, err := p.list(key, arg)
		if err != nil {
			return nil, err
		}
		return pattern.Or(ps...), nil
	case "and":
		ps, err := p.list(key, arg)
		if err != nil {
			return nil, err
		}
		return pattern.And(ps...), nil
	case "each":
		ps, err := p.list(key, arg)
		if err != nil {
			return nil, err
		}
		return pattern.Each(ps...), nil
	case "first":
		ps, err := p.list(key, arg)
		if err != nil {
			return nil, err
		}
		return pattern.First(ps...), nil
	}
	return nil, Error{"parse-node", fmt.Errorf("unknown pattern key %q", key)}
}

func (p *parser) str(key string, arg interface{}) (string, error) {
	s, ok := arg.(string)
	if !ok {
		return "", Error{"parse-" + key, fmt.Errorf("%s wants a string, got %T", key, arg)}
	}
	return s, nil
}

func (p *parser) list(key string, arg interface{}) ([]unify.Pattern, error) {
	items, ok := arg.([]interface{})
	if !ok {
		return nil, Error{"parse-" + key, fmt.Errorf("%s wants a list, got %T", key, arg)}
	}
	var ps []unify.Pattern
	for _, item := range items {
		sub, err := p.node(item)
		if err != nil {
			return nil, err
		}
		ps = append(ps, sub)
	}
	return ps, nil
}

// normalize widens YAML integers to float64 because the object graphs
// these patterns usually run against are decoded from JSON, where
// every number is a float64.
func normalize(arg interface{}) interface{} {
	switch n := arg.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return arg
}
