package model

import "github.com/Joellate/Sparse-Matrix/sstable"

func init() {
	Register(&Operator{Name: "add", Title: "Addition", Choice: "1", Apply: sstable.Add})
	Register(&Operator{Name: "subtract", Title: "Subtraction", Choice: "2", Apply: sstable.Subtract})
	Register(&Operator{Name: "multiply", Title: "Multiplication", Choice: "3", Apply: sstable.Multiply})
}
