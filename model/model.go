package model

import (
	"fmt"
	"sort"

	"github.com/Joellate/Sparse-Matrix/sstable"
)

var operators = make(map[string]*Operator)

// Operator is a binary matrix operation the cli can dispatch to
type Operator struct {
	// operation name used on the command line, e.g. "add"
	Name string
	// human readable name, e.g. "Addition"
	Title string
	// menu key of the interactive prompt, e.g. "1"
	Choice string
	Apply  func(a, b *sstable.SparseMatrix) (*sstable.SparseMatrix, error)
}

// new operations should register themselves using this function
func Register(op *Operator) {
	if _, ok := operators[op.Name]; ok {
		panic(fmt.Sprintf("operator %s registered twice", op.Name))
	}
	operators[op.Name] = op
}

// GetOperator looks an operator up by name or by menu choice
func GetOperator(key string) (*Operator, error) {
	if op, ok := operators[key]; ok {
		return op, nil
	}
	for _, op := range operators {
		if op.Choice == key {
			return op, nil
		}
	}
	return nil, fmt.Errorf("operator %s not registered", key)
}

// Operators lists the registered operators ordered by menu choice
func Operators() []*Operator {
	ops := make([]*Operator, 0, len(operators))
	for _, op := range operators {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool {
		return ops[i].Choice < ops[j].Choice
	})
	return ops
}
